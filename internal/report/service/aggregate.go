package service

import (
	"sort"
	"strings"

	"github.com/alsopranab/restaurant-analytics/internal/report/domain"
	"github.com/shopspring/decimal"
)

const itemListSeparator = ", "

// AggregateItemPopularity counts joined rows per (name, category) group.
func AggregateItemPopularity(rows []domain.JoinedRow) map[domain.ItemKey]int {
	counts := make(map[domain.ItemKey]int)
	for _, row := range rows {
		counts[domain.ItemKey{Name: row.Name, Category: row.Category}]++
	}
	return counts
}

// AggregateOrderValues sums unit prices per order and joins item names with
// ", " in the order the rows appear in the joined set, never sorted.
func AggregateOrderValues(rows []domain.JoinedRow) map[int64]domain.OrderValue {
	type acc struct {
		total decimal.Decimal
		names []string
	}
	accs := make(map[int64]*acc)
	for _, row := range rows {
		a, ok := accs[row.OrderID]
		if !ok {
			a = &acc{total: decimal.Zero}
			accs[row.OrderID] = a
		}
		a.total = a.total.Add(row.UnitPrice)
		a.names = append(a.names, row.Name)
	}

	values := make(map[int64]domain.OrderValue, len(accs))
	for orderID, a := range accs {
		values[orderID] = domain.OrderValue{
			OrderID:     orderID,
			TotalSpend:  a.total,
			ItemsBought: strings.Join(a.names, itemListSeparator),
		}
	}
	return values
}

// AggregateCategoryPerformance computes line-item count, revenue sum, and
// mean unit price per category. Categories absent from the joined set are
// absent from the result.
func AggregateCategoryPerformance(rows []domain.JoinedRow) map[string]domain.CategoryPerformance {
	perf := make(map[string]domain.CategoryPerformance)
	for _, row := range rows {
		p, ok := perf[row.Category]
		if !ok {
			p = domain.CategoryPerformance{
				Category:     row.Category,
				TotalRevenue: decimal.Zero,
			}
		}
		p.TotalOrders++
		p.TotalRevenue = p.TotalRevenue.Add(row.UnitPrice)
		perf[row.Category] = p
	}
	for category, p := range perf {
		p.AvgPrice = p.TotalRevenue.Div(decimal.NewFromInt(int64(p.TotalOrders)))
		perf[category] = p
	}
	return perf
}

// RankItems orders popularity groups by count (descending unless ascending
// is set) and breaks ties by name ascending, so the most- and least-ordered
// item is deterministic.
func RankItems(counts map[domain.ItemKey]int, ascending bool) []domain.ItemPopularity {
	ranked := make([]domain.ItemPopularity, 0, len(counts))
	for key, count := range counts {
		ranked = append(ranked, domain.ItemPopularity{
			Name:       key.Name,
			Category:   key.Category,
			OrderCount: count,
		})
	}
	sort.Slice(ranked, func(i, j int) bool {
		if ranked[i].OrderCount != ranked[j].OrderCount {
			if ascending {
				return ranked[i].OrderCount < ranked[j].OrderCount
			}
			return ranked[i].OrderCount > ranked[j].OrderCount
		}
		return ranked[i].Name < ranked[j].Name
	})
	return ranked
}
