package service

import (
	"time"

	"github.com/alsopranab/restaurant-analytics/internal/report/domain"
)

// Join produces the inner equijoin of order lines and menu items on item_id.
// Output order follows the order-line input order. Lines whose item_id has no
// menu match are dropped, not reported as an error.
func Join(lines []domain.OrderLine, items []domain.MenuItem) []domain.JoinedRow {
	index := make(map[int64]domain.MenuItem, len(items))
	for _, it := range items {
		index[it.ItemID] = it
	}

	joined := make([]domain.JoinedRow, 0, len(lines))
	for _, ln := range lines {
		it, ok := index[ln.ItemID]
		if !ok {
			continue
		}
		joined = append(joined, domain.JoinedRow{
			OrderLineID: ln.OrderLineID,
			OrderID:     ln.OrderID,
			OrderDate:   time.Time(ln.OrderDate),
			OrderTime:   ln.OrderTime,
			ItemID:      ln.ItemID,
			Name:        it.Name,
			Category:    it.Category,
			UnitPrice:   it.UnitPrice,
		})
	}
	return joined
}
