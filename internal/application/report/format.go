package report

import (
	"math"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/restocker-api/internal/domain/entity"
)

// FormatNumber imprime el float en su forma más corta (30, -10, 2.5), sin notación científica.
func FormatNumber(f float64) string {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return strconv.FormatFloat(f, 'g', -1, 64)
	}
	return decimal.NewFromFloat(f).String()
}

// CellValue valor de texto de una columna (original o derivada) en una fila.
func CellValue(r entity.InventoryRow, col string) string {
	switch col {
	case entity.ColumnProduct:
		return r.Product
	case entity.ColumnCompany:
		return r.Company
	case entity.ColumnCurrentStock:
		return FormatNumber(r.CurrentStock)
	case entity.ColumnAverageDailySales:
		return FormatNumber(r.AverageDailySales)
	case entity.ColumnLeadTimeDays:
		return FormatNumber(r.LeadTimeDays)
	case entity.ColumnEstimatedDemand:
		return FormatNumber(r.EstimatedDemand)
	case entity.ColumnStockGap:
		return FormatNumber(r.StockGap)
	case entity.ColumnStockStatus:
		return r.Status.String()
	default:
		return r.Extra[col]
	}
}

// FormatTable representación en texto plano de la tabla completa (columnas originales + derivadas),
// con índice de fila desde 0 y columnas alineadas a la derecha. Es el bloque que se envía al modelo.
func FormatTable(t entity.InventoryTable) string {
	cols := t.AllColumns()
	if len(t.Rows) == 0 {
		return "Empty DataFrame\nColumns: [" + strings.Join(cols, ", ") + "]\nIndex: []"
	}

	cells := make([][]string, len(t.Rows))
	widths := make([]int, len(cols))
	for j, c := range cols {
		widths[j] = utf8.RuneCountInString(c)
	}
	indexWidth := len(strconv.Itoa(len(t.Rows) - 1))
	for i, r := range t.Rows {
		cells[i] = make([]string, len(cols))
		for j, c := range cols {
			v := CellValue(r, c)
			cells[i][j] = v
			if n := utf8.RuneCountInString(v); n > widths[j] {
				widths[j] = n
			}
		}
	}

	var b strings.Builder
	b.WriteString(strings.Repeat(" ", indexWidth))
	for j, c := range cols {
		b.WriteString("  ")
		b.WriteString(padLeft(c, widths[j]))
	}
	for i := range cells {
		b.WriteByte('\n')
		idx := strconv.Itoa(i)
		b.WriteString(idx + strings.Repeat(" ", indexWidth-len(idx)))
		for j, v := range cells[i] {
			b.WriteString("  ")
			b.WriteString(padLeft(v, widths[j]))
		}
	}
	return b.String()
}

func padLeft(s string, width int) string {
	if n := utf8.RuneCountInString(s); n < width {
		return strings.Repeat(" ", width-n) + s
	}
	return s
}
