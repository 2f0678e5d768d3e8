package service

import (
	"fmt"

	"github.com/alsopranab/restaurant-analytics/internal/report/domain"
)

// Assemble broadcasts the three aggregates back onto every joined row. Every
// lookup key must exist because each aggregate was derived from the same
// joined set; a miss is an internal bug, never a soft failure.
func Assemble(
	rows []domain.JoinedRow,
	popularity map[domain.ItemKey]int,
	orders map[int64]domain.OrderValue,
	categories map[string]domain.CategoryPerformance,
) ([]domain.ReportRow, error) {
	out := make([]domain.ReportRow, 0, len(rows))
	for _, row := range rows {
		count, ok := popularity[domain.ItemKey{Name: row.Name, Category: row.Category}]
		if !ok {
			return nil, fmt.Errorf("%w: no popularity group for item %q category %q",
				domain.ErrAssemblyInvariant, row.Name, row.Category)
		}
		order, ok := orders[row.OrderID]
		if !ok {
			return nil, fmt.Errorf("%w: no order value for order %d",
				domain.ErrAssemblyInvariant, row.OrderID)
		}
		perf, ok := categories[row.Category]
		if !ok {
			return nil, fmt.Errorf("%w: no performance group for category %q",
				domain.ErrAssemblyInvariant, row.Category)
		}

		out = append(out, domain.ReportRow{
			OrderID:              row.OrderID,
			OrderDate:            row.OrderDate,
			OrderHour:            row.OrderHour,
			Category:             row.Category,
			ItemName:             row.Name,
			Price:                row.UnitPrice,
			ItemOrderCount:       count,
			TotalSpend:           order.TotalSpend,
			CategoryTotalOrders:  perf.TotalOrders,
			CategoryTotalRevenue: perf.TotalRevenue,
			CategoryAvgPrice:     perf.AvgPrice,
		})
	}

	if err := auditIntegrity(out, len(rows)); err != nil {
		return nil, err
	}
	return out, nil
}

// auditIntegrity verifies the assembled table before anything is written:
// one output row per joined row and no empty value in any column.
func auditIntegrity(rows []domain.ReportRow, joined int) error {
	if len(rows) != joined {
		return fmt.Errorf("%w: assembled %d rows from %d joined rows",
			domain.ErrDataIntegrity, len(rows), joined)
	}
	for i, row := range rows {
		switch {
		case row.OrderID == 0:
			return fmt.Errorf("%w: row %d has no order id", domain.ErrDataIntegrity, i)
		case row.OrderDate.IsZero():
			return fmt.Errorf("%w: row %d has no order date", domain.ErrDataIntegrity, i)
		case row.OrderHour < 0 || row.OrderHour > 23:
			return fmt.Errorf("%w: row %d has order hour %d", domain.ErrDataIntegrity, i, row.OrderHour)
		case row.Category == "":
			return fmt.Errorf("%w: row %d has no category", domain.ErrDataIntegrity, i)
		case row.ItemName == "":
			return fmt.Errorf("%w: row %d has no item name", domain.ErrDataIntegrity, i)
		case row.ItemOrderCount < 1:
			return fmt.Errorf("%w: row %d has item order count %d", domain.ErrDataIntegrity, i, row.ItemOrderCount)
		case row.CategoryTotalOrders < 1:
			return fmt.Errorf("%w: row %d has category total orders %d", domain.ErrDataIntegrity, i, row.CategoryTotalOrders)
		}
	}
	return nil
}
