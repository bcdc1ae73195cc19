package terminal

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jhoicas/restocker-api/internal/application/dto"
	"github.com/jhoicas/restocker-api/internal/application/report"
	"github.com/jhoicas/restocker-api/internal/domain/entity"
	"github.com/jhoicas/restocker-api/internal/domain/inventory"
)

func TestRender_Single(t *testing.T) {
	table := inventory.DefaultPolicy().DeriveTable(entity.InventoryTable{
		Variant: entity.VariantSingle,
		Rows: []entity.InventoryRow{
			{Product: "Widget", CurrentStock: 100, AverageDailySales: 10, LeadTimeDays: 3},
			{Product: "Gadget", CurrentStock: 20, AverageDailySales: 2.5, LeadTimeDays: 12},
		},
	})

	out := Render(report.BuildCharts(table), 60)

	assert.Contains(t, out, "Stock Gap per Product")
	assert.Contains(t, out, "Current Stock vs Predicted Demand")
	assert.Contains(t, out, "Gadget: -10")
	assert.Contains(t, out, "base del eje: -10")
	assert.Contains(t, out, "1=Gadget")
}

func TestRender_Vacio(t *testing.T) {
	out := Render(report.BuildCharts(entity.InventoryTable{Variant: entity.VariantCompare}), 0)

	assert.Contains(t, out, "Stock Gap per Product by Company")
	assert.Contains(t, out, "sin datos")
}

func TestRender_AgrupadoPorEmpresa(t *testing.T) {
	charts := []dto.ChartDTO{{
		Kind:    dto.ChartBar,
		Title:   "gap",
		GroupBy: "Company_Name",
		Series: []dto.ChartSeriesDTO{
			{Name: "Acme", Points: []dto.ChartPointDTO{{X: "A", Y: 5}}},
			{Name: "Globex", Points: []dto.ChartPointDTO{{X: "A", Y: 0}}},
		},
	}}

	out := Render(charts, 40)

	assert.Contains(t, out, "Acme/A: 5")
	assert.Contains(t, out, "Globex/A: 0")
	assert.NotContains(t, out, "base del eje")
}

func TestShorten(t *testing.T) {
	assert.Equal(t, "abc", shorten("abc", 5))
	assert.Equal(t, "abcd…", shorten("abcdefgh", 5))
}
