package csvenc

import (
	"encoding/csv"
	"io"
	"strconv"

	"github.com/alsopranab/restaurant-analytics/internal/report/domain"
)

// Header is the fixed output column order.
var Header = []string{
	"order_id",
	"order_date",
	"order_hour",
	"category",
	"item_name",
	"price",
	"item_order_count",
	"total_spend",
	"category_total_orders",
	"category_total_revenue",
	"category_avg_price",
}

const dateLayout = "2006-01-02"

// Encode writes the header and one record per report row. Dates are ISO-8601
// calendar dates; money columns keep two decimal places and the average price
// keeps the full division precision. Identical input yields identical bytes.
func Encode(w io.Writer, rows []domain.ReportRow) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(Header); err != nil {
		return err
	}
	for _, row := range rows {
		record := []string{
			strconv.FormatInt(row.OrderID, 10),
			row.OrderDate.Format(dateLayout),
			strconv.Itoa(row.OrderHour),
			row.Category,
			row.ItemName,
			row.Price.StringFixed(2),
			strconv.Itoa(row.ItemOrderCount),
			row.TotalSpend.StringFixed(2),
			strconv.Itoa(row.CategoryTotalOrders),
			row.CategoryTotalRevenue.StringFixed(2),
			row.CategoryAvgPrice.String(),
		}
		if err := cw.Write(record); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}
