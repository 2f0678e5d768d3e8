package csvenc

import (
	"bytes"
	"testing"
	"time"

	"github.com/alsopranab/restaurant-analytics/internal/report/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleRows() []domain.ReportRow {
	return []domain.ReportRow{
		{
			OrderID:              2,
			OrderDate:            time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC),
			OrderHour:            11,
			Category:             "Asian",
			ItemName:             "Tofu Pad Thai",
			Price:                decimal.RequireFromString("14.50"),
			ItemOrderCount:       1,
			TotalSpend:           decimal.RequireFromString("29.00"),
			CategoryTotalOrders:  3,
			CategoryTotalRevenue: decimal.RequireFromString("43.50"),
			CategoryAvgPrice:     decimal.RequireFromString("14.5"),
		},
		{
			OrderID:              7,
			OrderDate:            time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC),
			OrderHour:            19,
			Category:             "American",
			ItemName:             "Cheeseburger, Deluxe",
			Price:                decimal.RequireFromString("9.95"),
			ItemOrderCount:       4,
			TotalSpend:           decimal.RequireFromString("9.95"),
			CategoryTotalOrders:  4,
			CategoryTotalRevenue: decimal.RequireFromString("39.80"),
			CategoryAvgPrice:     decimal.RequireFromString("9.95"),
		},
	}
}

func TestEncode_FixedHeaderAndStableFormatting(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Encode(&buf, sampleRows()))

	want := "order_id,order_date,order_hour,category,item_name,price,item_order_count,total_spend,category_total_orders,category_total_revenue,category_avg_price\n" +
		"2,2026-08-01,11,Asian,Tofu Pad Thai,14.50,1,29.00,3,43.50,14.5\n" +
		"7,2026-08-01,19,American,\"Cheeseburger, Deluxe\",9.95,4,9.95,4,39.80,9.95\n"
	assert.Equal(t, want, buf.String())
}

func TestEncode_EmptyTableKeepsHeader(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Encode(&buf, nil))
	assert.Equal(t, "order_id,order_date,order_hour,category,item_name,price,item_order_count,total_spend,category_total_orders,category_total_revenue,category_avg_price\n", buf.String())
}

func TestEncode_IdenticalInputYieldsIdenticalBytes(t *testing.T) {
	var first, second bytes.Buffer
	require.NoError(t, Encode(&first, sampleRows()))
	require.NoError(t, Encode(&second, sampleRows()))
	assert.Equal(t, first.Bytes(), second.Bytes())
}
