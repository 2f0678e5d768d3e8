package domain

import (
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/datatypes"
)

// OrderLine is one line item of one customer order, as stored in the
// order_details table. Immutable once read.
type OrderLine struct {
	OrderLineID int64          `gorm:"column:order_details_id;primaryKey" json:"order_line_id"`
	OrderID     int64          `gorm:"column:order_id;not null;index" json:"order_id"`
	OrderDate   datatypes.Date `gorm:"column:order_date;not null" json:"order_date"`
	OrderTime   string         `gorm:"column:order_time;not null" json:"order_time"`
	ItemID      int64          `gorm:"column:item_id;not null;index" json:"item_id"`
}

func (OrderLine) TableName() string { return "order_details" }

// MenuItem is one sellable item. Immutable reference data.
type MenuItem struct {
	ItemID    int64           `gorm:"column:menu_item_id;primaryKey" json:"item_id"`
	Name      string          `gorm:"column:item_name;not null" json:"name"`
	Category  string          `gorm:"column:category;not null" json:"category"`
	UnitPrice decimal.Decimal `gorm:"column:price;type:decimal(10,2);not null" json:"unit_price"`
}

func (MenuItem) TableName() string { return "menu_items" }

// JoinedRow is the inner join of OrderLine and MenuItem on item_id.
// OrderHour is filled in by the normalizer from the elapsed-since-midnight
// order time, never from a wall clock.
type JoinedRow struct {
	OrderLineID int64
	OrderID     int64
	OrderDate   time.Time
	OrderTime   string
	OrderHour   int
	ItemID      int64
	Name        string
	Category    string
	UnitPrice   decimal.Decimal
}

// ItemKey identifies an item popularity group.
type ItemKey struct {
	Name     string
	Category string
}

// ItemPopularity is the line-item count for one (name, category) group.
type ItemPopularity struct {
	Name       string
	Category   string
	OrderCount int
}

// OrderValue summarizes one order: the spend across its lines and the item
// names joined with ", " in original line order.
type OrderValue struct {
	OrderID     int64
	TotalSpend  decimal.Decimal
	ItemsBought string
}

// CategoryPerformance summarizes one category over the line-item population.
// TotalOrders counts line items, not distinct orders.
type CategoryPerformance struct {
	Category     string
	TotalOrders  int
	TotalRevenue decimal.Decimal
	AvgPrice     decimal.Decimal
}

// ReportRow is one assembled output row: a JoinedRow with every aggregate
// broadcast back onto it. Field order mirrors the output column order.
type ReportRow struct {
	OrderID              int64
	OrderDate            time.Time
	OrderHour            int
	Category             string
	ItemName             string
	Price                decimal.Decimal
	ItemOrderCount       int
	TotalSpend           decimal.Decimal
	CategoryTotalOrders  int
	CategoryTotalRevenue decimal.Decimal
	CategoryAvgPrice     decimal.Decimal
}
