package spreadsheet_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
	"golang.org/x/text/encoding/charmap"

	"github.com/jhoicas/restocker-api/internal/domain"
	"github.com/jhoicas/restocker-api/internal/infrastructure/spreadsheet"
)

func newReader(t *testing.T, enc string) *spreadsheet.Reader {
	t.Helper()
	r, err := spreadsheet.NewReader(enc)
	require.NoError(t, err)
	return r
}

func TestRead_XLSX(t *testing.T) {
	f := excelize.NewFile()
	defer f.Close()
	require.NoError(t, f.SetSheetRow("Sheet1", "A1", &[]interface{}{"Product", "Current_Stock", "Average_Daily_Sales", "Lead_Time_Days"}))
	require.NoError(t, f.SetSheetRow("Sheet1", "A2", &[]interface{}{"Widget", 100, 2.5, 3}))
	require.NoError(t, f.SetSheetRow("Sheet1", "A3", &[]interface{}{"Gadget", 20, 1, 12}))
	buf, err := f.WriteToBuffer()
	require.NoError(t, err)

	sheet, err := newReader(t, "").Read("stock.XLSX", bytes.NewReader(buf.Bytes()))
	require.NoError(t, err)

	assert.Equal(t, []string{"Product", "Current_Stock", "Average_Daily_Sales", "Lead_Time_Days"}, sheet.Header)
	require.Len(t, sheet.Records, 2)
	assert.Equal(t, []string{"Widget", "100", "2.5", "3"}, sheet.Records[0])
}

func TestRead_XLSXCorrupto(t *testing.T) {
	_, err := newReader(t, "").Read("stock.xlsx", strings.NewReader("no es un zip"))

	assert.ErrorIs(t, err, domain.ErrUnsupportedFormat)
}

func TestRead_CSV(t *testing.T) {
	in := " Product , Current_Stock\nWidget,100\n\n,\nGadget\n"

	sheet, err := newReader(t, "utf-8").Read("stock.csv", strings.NewReader(in))
	require.NoError(t, err)

	assert.Equal(t, []string{"Product", "Current_Stock"}, sheet.Header)
	require.Len(t, sheet.Records, 2, "las filas vacías se descartan")
	assert.Equal(t, []string{"Gadget", ""}, sheet.Records[1], "filas cortas se completan")
}

func TestRead_CSVConservaEspaciosEnCeldas(t *testing.T) {
	in := "Product,Current_Stock,Note\n  Widget  , 100,  keep  spaces \n"

	sheet, err := newReader(t, "utf-8").Read("stock.csv", strings.NewReader(in))
	require.NoError(t, err)

	assert.Equal(t, []string{"  Widget  ", " 100", "  keep  spaces "}, sheet.Records[0])
}

func TestRead_CSVPuntoYComa(t *testing.T) {
	in := "Product;Current_Stock;Average_Daily_Sales\nWidget;100;2.5\n"

	sheet, err := newReader(t, "").Read("stock.csv", strings.NewReader(in))
	require.NoError(t, err)

	assert.Equal(t, []string{"Product", "Current_Stock", "Average_Daily_Sales"}, sheet.Header)
	assert.Equal(t, []string{"Widget", "100", "2.5"}, sheet.Records[0])
}

func TestRead_CSVConBOM(t *testing.T) {
	in := "\xef\xbb\xbfProduct,Current_Stock\nWidget,1\n"

	sheet, err := newReader(t, "windows-1252").Read("stock.csv", strings.NewReader(in))
	require.NoError(t, err)

	assert.Equal(t, "Product", sheet.Header[0])
}

func TestRead_CSVWindows1252(t *testing.T) {
	encoded, err := charmap.Windows1252.NewEncoder().String("Product,Current_Stock\nCafé molido,10\n")
	require.NoError(t, err)

	sheet, err := newReader(t, "cp1252").Read("stock.csv", strings.NewReader(encoded))
	require.NoError(t, err)

	assert.Equal(t, "Café molido", sheet.Records[0][0])
}

func TestRead_FormatoNoSoportado(t *testing.T) {
	_, err := newReader(t, "").Read("stock.json", strings.NewReader("{}"))

	assert.ErrorIs(t, err, domain.ErrUnsupportedFormat)
}

func TestRead_ArchivoVacio(t *testing.T) {
	_, err := newReader(t, "").Read("stock.csv", strings.NewReader(""))

	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestNewReader_CodificacionDesconocida(t *testing.T) {
	_, err := spreadsheet.NewReader("ebcdic")

	assert.Error(t, err)
}
