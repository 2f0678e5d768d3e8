package service

import (
	"testing"
	"time"

	"github.com/alsopranab/restaurant-analytics/internal/report/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"gorm.io/datatypes"
)

func date(y int, m time.Month, d int) datatypes.Date {
	return datatypes.Date(time.Date(y, m, d, 0, 0, 0, 0, time.UTC))
}

func menuFixture() []domain.MenuItem {
	return []domain.MenuItem{
		{ItemID: 108, Name: "Tofu Pad Thai", Category: "Asian", UnitPrice: decimal.RequireFromString("14.50")},
		{ItemID: 124, Name: "Spaghetti", Category: "Italian", UnitPrice: decimal.RequireFromString("14.50")},
		{ItemID: 130, Name: "Cheeseburger", Category: "American", UnitPrice: decimal.RequireFromString("9.95")},
	}
}

func TestJoin_InnerJoinOnItemID(t *testing.T) {
	lines := []domain.OrderLine{
		{OrderLineID: 1, OrderID: 2, OrderDate: date(2026, 8, 1), OrderTime: "11:57:40", ItemID: 108},
		{OrderLineID: 2, OrderID: 2, OrderDate: date(2026, 8, 1), OrderTime: "11:57:40", ItemID: 124},
		{OrderLineID: 3, OrderID: 3, OrderDate: date(2026, 8, 1), OrderTime: "18:12:03", ItemID: 999},
	}

	joined := Join(lines, menuFixture())

	assert.Len(t, joined, 2, "line with unmatched item_id must be dropped")
	known := map[int64]bool{108: true, 124: true, 130: true}
	for _, row := range joined {
		assert.True(t, known[row.ItemID], "joined item_id must exist in menu set")
	}
	assert.Equal(t, "Tofu Pad Thai", joined[0].Name)
	assert.Equal(t, "Asian", joined[0].Category)
	assert.True(t, joined[0].UnitPrice.Equal(decimal.RequireFromString("14.50")))
}

func TestJoin_PreservesOrderLineOrder(t *testing.T) {
	lines := []domain.OrderLine{
		{OrderLineID: 10, OrderID: 5, OrderDate: date(2026, 8, 2), OrderTime: "09:00:00", ItemID: 130},
		{OrderLineID: 11, OrderID: 5, OrderDate: date(2026, 8, 2), OrderTime: "09:00:00", ItemID: 108},
		{OrderLineID: 12, OrderID: 6, OrderDate: date(2026, 8, 2), OrderTime: "10:30:00", ItemID: 124},
	}

	joined := Join(lines, menuFixture())

	ids := make([]int64, 0, len(joined))
	for _, row := range joined {
		ids = append(ids, row.OrderLineID)
	}
	assert.Equal(t, []int64{10, 11, 12}, ids)
}

func TestJoin_EmptyInputs(t *testing.T) {
	assert.Empty(t, Join(nil, menuFixture()))
	assert.Empty(t, Join([]domain.OrderLine{
		{OrderLineID: 1, OrderID: 1, OrderDate: date(2026, 8, 1), OrderTime: "12:00:00", ItemID: 108},
	}, nil))
	assert.Empty(t, Join(nil, nil))
}
