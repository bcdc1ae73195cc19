package report_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/restocker-api/internal/application/report"
	"github.com/jhoicas/restocker-api/internal/domain"
	"github.com/jhoicas/restocker-api/internal/domain/entity"
	"github.com/jhoicas/restocker-api/internal/domain/inventory"
)

func sheet(header []string, records ...[]string) *entity.RawSheet {
	return &entity.RawSheet{Header: header, Records: records}
}

var singleHeader = []string{"Product", "Current_Stock", "Average_Daily_Sales", "Lead_Time_Days"}

func TestLoad_DerivaYClasifica(t *testing.T) {
	s := sheet(singleHeader,
		[]string{"Widget", "100", "10", "3"},
		[]string{"Gadget", "20", "10", "3"},
		[]string{"Gizmo", " 40 ", "10", "3"},
	)

	table, err := report.Load(s, entity.VariantSingle, inventory.DefaultPolicy())
	require.NoError(t, err)
	require.Equal(t, 3, table.Len())

	assert.Equal(t, 30.0, table.Rows[0].EstimatedDemand)
	assert.Equal(t, 70.0, table.Rows[0].StockGap)
	assert.Equal(t, entity.Overstock, table.Rows[0].Status)
	assert.Equal(t, entity.StockoutRisk, table.Rows[1].Status)
	assert.Equal(t, -10.0, table.Rows[1].StockGap)
	assert.Equal(t, entity.SafeStock, table.Rows[2].Status)
	assert.Equal(t, 10.0, table.Rows[2].StockGap)
}

// Falta una columna: se corta antes de cualquier cálculo y se nombran todas las faltantes.
func TestLoad_SinColumnasObligatorias(t *testing.T) {
	s := sheet([]string{"Product", "Current_Stock"}, []string{"Widget", "abc"})

	table, err := report.Load(s, entity.VariantSingle, inventory.DefaultPolicy())

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrMissingColumns)
	assert.Contains(t, err.Error(), "Average_Daily_Sales")
	assert.Contains(t, err.Error(), "Lead_Time_Days")
	assert.Empty(t, table.Rows, "no debe aparecer ninguna fila derivada")
}

func TestLoad_CompareExigeCompanyName(t *testing.T) {
	s := sheet(singleHeader, []string{"Widget", "1", "1", "1"})

	_, err := report.Load(s, entity.VariantCompare, inventory.DefaultPolicy())

	require.ErrorIs(t, err, domain.ErrMissingColumns)
	assert.Contains(t, err.Error(), "Company_Name")
}

func TestLoad_ValorNoNumerico(t *testing.T) {
	cases := map[string]string{
		"texto": "diez",
		"vacío": "",
		"NaN":   "NaN",
		"Inf":   "+Inf",
	}
	for name, bad := range cases {
		t.Run(name, func(t *testing.T) {
			s := sheet(singleHeader,
				[]string{"Widget", "100", "10", "3"},
				[]string{"Gadget", "20", bad, "3"},
			)

			_, err := report.Load(s, entity.VariantSingle, inventory.DefaultPolicy())

			require.ErrorIs(t, err, domain.ErrInvalidNumber)
			assert.Contains(t, err.Error(), "fila 2")
			assert.Contains(t, err.Error(), "Average_Daily_Sales")
		})
	}
}

// Los números admiten espacios alrededor; las celdas de texto se conservan tal cual.
func TestLoad_RecortaSoloCeldasNumericas(t *testing.T) {
	s := sheet(
		[]string{"Company_Name", "Product", "Current_Stock", "Average_Daily_Sales", "Lead_Time_Days", "Note"},
		[]string{" Acme ", "  Widget  ", " 100 ", "10 ", " 3", "  keep  spaces "},
	)

	table, err := report.Load(s, entity.VariantCompare, inventory.DefaultPolicy())
	require.NoError(t, err)

	row := table.Rows[0]
	assert.Equal(t, " Acme ", row.Company)
	assert.Equal(t, "  Widget  ", row.Product)
	assert.Equal(t, "  keep  spaces ", row.Extra["Note"])
	assert.Equal(t, 100.0, row.CurrentStock)
	assert.Equal(t, 70.0, row.StockGap)
}

func TestLoad_ColumnaDuplicada(t *testing.T) {
	s := sheet([]string{"Product", "Product", "Current_Stock", "Average_Daily_Sales", "Lead_Time_Days"})

	_, err := report.Load(s, entity.VariantSingle, inventory.DefaultPolicy())

	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

// Columnas adicionales pasan sin tocar; derivadas previas se recalculan.
func TestLoad_ColumnasExtraYDerivadasPrevias(t *testing.T) {
	s := sheet(
		[]string{"SKU", "Product", "Current_Stock", "Average_Daily_Sales", "Lead_Time_Days", "Stock_Gap", "Supplier"},
		[]string{"A-1", "Widget", "100", "10", "3", "999", "Acme Supplies"},
	)

	table, err := report.Load(s, entity.VariantSingle, inventory.DefaultPolicy())
	require.NoError(t, err)

	assert.Equal(t, []string{"SKU", "Product", "Current_Stock", "Average_Daily_Sales", "Lead_Time_Days", "Supplier"}, table.Columns)
	assert.Equal(t, map[string]string{"SKU": "A-1", "Supplier": "Acme Supplies"}, table.Rows[0].Extra)
	assert.Equal(t, 70.0, table.Rows[0].StockGap, "Stock_Gap del archivo se ignora y se recalcula")
	assert.Equal(t,
		[]string{"SKU", "Product", "Current_Stock", "Average_Daily_Sales", "Lead_Time_Days", "Supplier",
			"Estimated_Demand", "Stock_Gap", "Stock_Status"},
		table.AllColumns())
}

func TestLoad_UmbralDePolitica(t *testing.T) {
	s := sheet(singleHeader, []string{"Widget", "100", "10", "3"})

	table, err := report.Load(s, entity.VariantSingle, inventory.Policy{OverstockThreshold: 100})
	require.NoError(t, err)

	assert.Equal(t, entity.SafeStock, table.Rows[0].Status)
}
