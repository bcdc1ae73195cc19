package inventory_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/restocker-api/internal/domain/entity"
	"github.com/jhoicas/restocker-api/internal/domain/inventory"
)

func TestRestockList(t *testing.T) {
	table := inventory.DefaultPolicy().DeriveTable(entity.InventoryTable{
		Variant: entity.VariantSingle,
		Rows: []entity.InventoryRow{
			{Product: "Seguro", CurrentStock: 30, AverageDailySales: 1, LeadTimeDays: 10},
			{Product: "Poco", CurrentStock: 25, AverageDailySales: 3, LeadTimeDays: 10},  // gap -5
			{Product: "Mucho", CurrentStock: 0, AverageDailySales: 2, LeadTimeDays: 10},  // gap -20
			{Product: "Rápido", CurrentStock: 15, AverageDailySales: 4, LeadTimeDays: 5}, // gap -5, vende más
		},
	})

	list := inventory.RestockList(table)

	require.Len(t, list, 3)
	assert.Equal(t, "Mucho", list[0].Product)
	assert.Equal(t, 20.0, list[0].SuggestedOrderQty)
	assert.Equal(t, "Rápido", list[1].Product)
	assert.Equal(t, "Poco", list[2].Product)
	assert.Equal(t, []int{1, 2, 3}, []int{list[0].Priority, list[1].Priority, list[2].Priority})
}

func TestRestockList_SinRiesgo(t *testing.T) {
	table := inventory.DefaultPolicy().DeriveTable(entity.InventoryTable{
		Rows: []entity.InventoryRow{{Product: "A", CurrentStock: 10, AverageDailySales: 1, LeadTimeDays: 1}},
	})

	assert.Empty(t, inventory.RestockList(table))
	assert.NotNil(t, inventory.RestockList(entity.InventoryTable{}))
}
