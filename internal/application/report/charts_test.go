package report_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/restocker-api/internal/application/dto"
	"github.com/jhoicas/restocker-api/internal/application/report"
	"github.com/jhoicas/restocker-api/internal/domain/entity"
	"github.com/jhoicas/restocker-api/internal/domain/inventory"
)

func TestBuildCharts_Single(t *testing.T) {
	charts := report.BuildCharts(sampleTable())
	require.Len(t, charts, 2)

	bar := charts[0]
	assert.Equal(t, dto.ChartBar, bar.Kind)
	assert.Equal(t, []string{"Stock_Gap"}, bar.YColumns)
	require.Len(t, bar.Series, 1)
	assert.Equal(t, []dto.ChartPointDTO{
		{X: "Widget", Y: 70, Color: "green"},
		{X: "Gadget", Y: -10, Color: "red"},
	}, bar.Series[0].Points)

	line := charts[1]
	assert.Equal(t, dto.ChartLine, line.Kind)
	assert.Equal(t, []string{"Current_Stock", "Estimated_Demand"}, line.YColumns)
	require.Len(t, line.Series, 2)
	assert.Equal(t, 100.0, line.Series[0].Points[0].Y)
	assert.Equal(t, 30.0, line.Series[1].Points[0].Y)
}

func TestBuildCharts_CompareAgrupaPorEmpresa(t *testing.T) {
	table := inventory.DefaultPolicy().DeriveTable(entity.InventoryTable{
		Variant: entity.VariantCompare,
		Rows: []entity.InventoryRow{
			{Company: "Acme", Product: "A", CurrentStock: 10, AverageDailySales: 1, LeadTimeDays: 5},
			{Company: "Globex", Product: "A", CurrentStock: 10, AverageDailySales: 2, LeadTimeDays: 5},
			{Company: "Acme", Product: "B", CurrentStock: 0, AverageDailySales: 1, LeadTimeDays: 1},
		},
	})

	charts := report.BuildCharts(table)
	require.Len(t, charts, 2)

	bar := charts[0]
	assert.Equal(t, "Company_Name", bar.GroupBy)
	require.Len(t, bar.Series, 2)
	assert.Equal(t, "Acme", bar.Series[0].Name)
	assert.Equal(t, []dto.ChartPointDTO{{X: "A", Y: 5}, {X: "B", Y: -1}}, bar.Series[0].Points)
	assert.Equal(t, []dto.ChartPointDTO{{X: "A", Y: 0}}, bar.Series[1].Points)

	demand := charts[1]
	assert.Equal(t, []string{"Estimated_Demand"}, demand.YColumns)
	assert.Equal(t, 10.0, demand.Series[1].Points[0].Y)
}

// Tabla vacía (selección vacía): gráficos sin puntos, sin pánico.
func TestBuildCharts_TablaVacia(t *testing.T) {
	for _, v := range []entity.Variant{entity.VariantSingle, entity.VariantCompare} {
		charts := report.BuildCharts(entity.InventoryTable{Variant: v})
		require.Len(t, charts, 2)
		for _, c := range charts {
			for _, s := range c.Series {
				assert.Empty(t, s.Points)
			}
		}
	}
}
