package inventory_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/restocker-api/internal/domain/entity"
	"github.com/jhoicas/restocker-api/internal/domain/inventory"
)

// ──────────────────────────────────────────────────────────────────────────────
// Clasificación: fronteras exactas del umbral.
// ──────────────────────────────────────────────────────────────────────────────

func TestClassify_Fronteras(t *testing.T) {
	cases := []struct {
		gap  float64
		want entity.StockStatus
	}{
		{-0.01, entity.StockoutRisk},
		{-1000, entity.StockoutRisk},
		{0, entity.SafeStock},
		{25, entity.SafeStock},
		{50, entity.SafeStock},
		{50.01, entity.Overstock},
		{1e6, entity.Overstock},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, inventory.Classify(tc.gap), "gap=%v", tc.gap)
	}
}

func TestClassify_UmbralConfigurable(t *testing.T) {
	p := inventory.Policy{OverstockThreshold: 10}

	assert.Equal(t, entity.SafeStock, p.Classify(10))
	assert.Equal(t, entity.Overstock, p.Classify(10.5))
	assert.Equal(t, entity.StockoutRisk, p.Classify(-0.5))
}

func TestStockStatus_Etiquetas(t *testing.T) {
	assert.Equal(t, "Stockout Risk", entity.StockoutRisk.String())
	assert.Equal(t, "Overstock", entity.Overstock.String())
	assert.Equal(t, "Safe Stock", entity.SafeStock.String())

	b, err := entity.Overstock.MarshalJSON()
	require.NoError(t, err)
	assert.JSONEq(t, `"Overstock"`, string(b))
}

// ──────────────────────────────────────────────────────────────────────────────
// Derivación: escenarios de referencia.
// ──────────────────────────────────────────────────────────────────────────────

func TestDerive_Escenarios(t *testing.T) {
	p := inventory.DefaultPolicy()
	cases := []struct {
		name   string
		stock  float64
		demand float64
		gap    float64
		status entity.StockStatus
	}{
		{"sobrestock", 100, 30, 70, entity.Overstock},
		{"riesgo de quiebre", 20, 30, -10, entity.StockoutRisk},
		{"stock seguro", 40, 30, 10, entity.SafeStock},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			row := p.Derive(entity.InventoryRow{
				Product:           "Widget",
				CurrentStock:      tc.stock,
				AverageDailySales: 10,
				LeadTimeDays:      3,
			})
			assert.Equal(t, tc.demand, row.EstimatedDemand)
			assert.Equal(t, tc.gap, row.StockGap)
			assert.Equal(t, tc.status, row.Status)
		})
	}
}

// Las fórmulas se aplican sin redondeo, igual que la aritmética float64 directa.
func TestDerive_SinRedondeo(t *testing.T) {
	sales, lead, stock := 0.1, 3.0, 0.7
	row := inventory.DefaultPolicy().Derive(entity.InventoryRow{
		CurrentStock: stock, AverageDailySales: sales, LeadTimeDays: lead,
	})

	assert.Equal(t, sales*lead, row.EstimatedDemand)
	assert.Equal(t, stock-sales*lead, row.StockGap)
}

// Valores negativos no se validan: se propagan a la aritmética.
func TestDerive_NegativosSePropagan(t *testing.T) {
	row := inventory.DefaultPolicy().Derive(entity.InventoryRow{
		CurrentStock: 5, AverageDailySales: -2, LeadTimeDays: 4,
	})

	assert.Equal(t, -8.0, row.EstimatedDemand)
	assert.Equal(t, 13.0, row.StockGap)
	assert.Equal(t, entity.SafeStock, row.Status)
}

// Recalcular sobre una tabla ya derivada produce los mismos valores.
func TestDeriveTable_Idempotente(t *testing.T) {
	p := inventory.DefaultPolicy()
	table := entity.InventoryTable{
		Variant: entity.VariantSingle,
		Columns: []string{"Product", "Current_Stock", "Average_Daily_Sales", "Lead_Time_Days"},
		Rows: []entity.InventoryRow{
			{Product: "A", CurrentStock: 100, AverageDailySales: 10, LeadTimeDays: 3},
			{Product: "B", CurrentStock: 1.5, AverageDailySales: 0.3, LeadTimeDays: 7},
		},
	}

	once := p.DeriveTable(table)
	twice := p.DeriveTable(once)

	assert.Equal(t, once, twice)
}

func TestDeriveTable_NoModificaEntrada(t *testing.T) {
	table := entity.InventoryTable{
		Rows: []entity.InventoryRow{{Product: "A", CurrentStock: 1, AverageDailySales: 1, LeadTimeDays: 1}},
	}

	_ = inventory.DefaultPolicy().DeriveTable(table)

	assert.Zero(t, table.Rows[0].EstimatedDemand, "la tabla original no debe tener columnas derivadas")
}

func TestSummarize(t *testing.T) {
	table := inventory.DefaultPolicy().DeriveTable(entity.InventoryTable{
		Rows: []entity.InventoryRow{
			{CurrentStock: 100, AverageDailySales: 10, LeadTimeDays: 3},
			{CurrentStock: 20, AverageDailySales: 10, LeadTimeDays: 3},
			{CurrentStock: 40, AverageDailySales: 10, LeadTimeDays: 3},
		},
	})

	s := inventory.Summarize(table)

	assert.Equal(t, inventory.Summary{
		Rows: 3, StockoutRisk: 1, Overstock: 1, SafeStock: 1,
		TotalCurrentStock: 160, TotalEstimatedDemand: 90,
	}, s)
}
