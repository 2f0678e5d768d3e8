package service

import (
	"testing"

	"github.com/alsopranab/restaurant-analytics/internal/report/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func assembleInputs(t *testing.T) ([]domain.JoinedRow, map[domain.ItemKey]int, map[int64]domain.OrderValue, map[string]domain.CategoryPerformance) {
	t.Helper()
	rows := normalizedFixture()
	return rows,
		AggregateItemPopularity(rows),
		AggregateOrderValues(rows),
		AggregateCategoryPerformance(rows)
}

func TestAssemble_BroadcastsAggregatesOntoEveryRow(t *testing.T) {
	rows, popularity, orders, categories := assembleInputs(t)

	out, err := Assemble(rows, popularity, orders, categories)
	require.NoError(t, err)
	require.Len(t, out, len(rows), "aggregates must broadcast back, never collapse rows")

	first := out[0]
	assert.Equal(t, int64(2), first.OrderID)
	assert.Equal(t, 11, first.OrderHour)
	assert.Equal(t, "Asian", first.Category)
	assert.Equal(t, "Tofu Pad Thai", first.ItemName)
	assert.Equal(t, 2, first.ItemOrderCount)
	assert.True(t, first.TotalSpend.Equal(decimal.RequireFromString("29.00")))
	assert.Equal(t, 2, first.CategoryTotalOrders)
	assert.True(t, first.CategoryTotalRevenue.Equal(decimal.RequireFromString("29.00")))
	assert.True(t, first.CategoryAvgPrice.Equal(decimal.RequireFromString("14.50")))
}

func TestAssemble_MissingAggregateKeyIsInvariantViolation(t *testing.T) {
	rows, popularity, orders, categories := assembleInputs(t)

	delete(popularity, domain.ItemKey{Name: "Spaghetti", Category: "Italian"})
	_, err := Assemble(rows, popularity, orders, categories)
	assert.ErrorIs(t, err, domain.ErrAssemblyInvariant)

	rows, popularity, orders, categories = assembleInputs(t)
	delete(orders, 3)
	_, err = Assemble(rows, popularity, orders, categories)
	assert.ErrorIs(t, err, domain.ErrAssemblyInvariant)

	rows, popularity, orders, categories = assembleInputs(t)
	delete(categories, "American")
	_, err = Assemble(rows, popularity, orders, categories)
	assert.ErrorIs(t, err, domain.ErrAssemblyInvariant)
}

func TestAssemble_EmptyValuesFailIntegrityAudit(t *testing.T) {
	rows := normalizedFixture()
	rows[2].Category = ""

	_, err := Assemble(rows,
		AggregateItemPopularity(rows),
		AggregateOrderValues(rows),
		AggregateCategoryPerformance(rows),
	)
	assert.ErrorIs(t, err, domain.ErrDataIntegrity)
}

func TestAssemble_OutOfRangeHourFailsIntegrityAudit(t *testing.T) {
	rows := normalizedFixture()
	rows[0].OrderHour = 24

	_, err := Assemble(rows,
		AggregateItemPopularity(rows),
		AggregateOrderValues(rows),
		AggregateCategoryPerformance(rows),
	)
	assert.ErrorIs(t, err, domain.ErrDataIntegrity)
}

func TestAssemble_EmptyInput(t *testing.T) {
	out, err := Assemble(nil, map[domain.ItemKey]int{}, map[int64]domain.OrderValue{}, map[string]domain.CategoryPerformance{})
	require.NoError(t, err)
	assert.Empty(t, out)
}
