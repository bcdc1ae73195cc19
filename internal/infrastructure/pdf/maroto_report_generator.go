// Package pdf genera el reporte de inventario en PDF.
//
// Layout de la página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: Título + archivo      │  Fecha de generación        │
//	│  EMPRESAS (solo modo compare)                                │
//	│  ─────────────────────────────────────────────────────────  │
//	│  RESUMEN: filas / riesgo / sobrestock / seguro               │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TABLA: Producto | Stock | Ventas | Lead | Demanda | Gap ... │
//	│  REPOSICIÓN SUGERIDA (productos en riesgo, por urgencia)     │
//	│  ─────────────────────────────────────────────────────────  │
//	│  ANÁLISIS IA (si ya fue generado)                            │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"context"
	"fmt"
	"strings"
	"time"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"

	"github.com/jhoicas/restocker-api/internal/application/ports"
	"github.com/jhoicas/restocker-api/internal/application/report"
	"github.com/jhoicas/restocker-api/internal/domain/entity"
	"github.com/jhoicas/restocker-api/internal/domain/inventory"
)

// Verificar en tiempo de compilación que MarotoReportGenerator implementa ReportPDFGenerator.
var _ ports.ReportPDFGenerator = (*MarotoReportGenerator)(nil)

// ── Paleta de colores ─────────────────────────────────────────────────────────

var (
	colorPrimary   = &props.Color{Red: 0, Green: 70, Blue: 127}
	colorGray      = &props.Color{Red: 100, Green: 100, Blue: 100}
	colorRisk      = &props.Color{Red: 192, Green: 0, Blue: 0}
	colorSafe      = &props.Color{Red: 170, Green: 130, Blue: 0}
	colorOverstock = &props.Color{Red: 0, Green: 128, Blue: 0}
)

// insightLineWidth caracteres por línea del bloque de análisis.
const insightLineWidth = 110

// tableColumn columna del PDF: encabezado, ancho en la grilla de 12 y valor.
type tableColumn struct {
	label string
	size  int
	align align.Type
	value func(entity.InventoryRow) string
}

// ── Generator ─────────────────────────────────────────────────────────────────

// MarotoReportGenerator implementa ports.ReportPDFGenerator usando Maroto v2.
type MarotoReportGenerator struct {
	now func() time.Time
}

// NewMarotoReportGenerator construye el generador.
func NewMarotoReportGenerator() *MarotoReportGenerator {
	return &MarotoReportGenerator{now: time.Now}
}

// GenerateReportPDF genera el PDF y devuelve sus bytes.
func (g *MarotoReportGenerator) GenerateReportPDF(_ context.Context, in ports.ReportPDF) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle(in.Title, true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow(in, g.now()))
	if in.Table.Variant == entity.VariantCompare {
		m.AddRows(companiesRow(in.Companies))
	}
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(summaryRow(in))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))

	columns := tableColumns(in.Table.Variant)
	m.AddRows(tableHeaderRow(columns))
	if in.Table.Len() == 0 {
		m.AddRows(row.New(8).Add(col.New(12).Add(
			text.New("Sin filas para mostrar.", props.Text{Size: 8, Align: align.Center, Color: colorGray, Top: 2}),
		)))
	}
	for _, r := range tableDetailRows(columns, in.Table.Rows) {
		m.AddRows(r)
	}

	if len(in.Restock) > 0 {
		m.AddRows(line.NewRow(3))
		m.AddRows(restockRows(in.Restock)...)
	}

	if in.Insight != "" {
		m.AddRows(line.NewRow(3))
		m.AddRows(line.NewRow(1, props.Line{Color: colorGray, Thickness: 0.3}))
		m.AddRows(insightRows(in.Insight)...)
	}

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

// ── Secciones ─────────────────────────────────────────────────────────────────

func headerRow(in ports.ReportPDF, now time.Time) core.Row {
	return row.New(16).Add(
		col.New(8).Add(
			text.New(in.Title, props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1,
			}),
			text.New("Archivo: "+nonEmpty(in.FileName, "—"), props.Text{
				Size: 9, Top: 9, Color: colorGray,
			}),
		),
		col.New(4).Add(
			text.New("Generado: "+now.Format("02/01/2006 15:04"), props.Text{
				Size: 8, Align: align.Right, Top: 3, Color: colorGray,
			}),
		),
	)
}

func companiesRow(companies []string) core.Row {
	return row.New(8).Add(col.New(12).Add(
		text.New("Empresas: "+nonEmpty(strings.Join(companies, ", "), "ninguna seleccionada"), props.Text{
			Style: fontstyle.Bold, Size: 9, Top: 1,
		}),
	))
}

func summaryRow(in ports.ReportPDF) core.Row {
	s := in.Summary
	cell := func(label, value string, c *props.Color) core.Col {
		return col.New(3).Add(
			text.New(label, props.Text{Size: 7, Color: colorGray, Align: align.Center, Top: 1}),
			text.New(value, props.Text{Style: fontstyle.Bold, Size: 12, Color: c, Align: align.Center, Top: 5}),
		)
	}
	return row.New(14).Add(
		cell("Productos", fmt.Sprint(s.Rows), colorPrimary),
		cell(entity.StockoutRisk.String(), fmt.Sprint(s.StockoutRisk), colorRisk),
		cell(entity.Overstock.String(), fmt.Sprint(s.Overstock), colorOverstock),
		cell(entity.SafeStock.String(), fmt.Sprint(s.SafeStock), colorSafe),
	)
}

// tableColumns las columnas base suman 12 en la grilla; las columnas extra del archivo no se imprimen.
func tableColumns(v entity.Variant) []tableColumn {
	num := func(f func(entity.InventoryRow) float64) func(entity.InventoryRow) string {
		return func(r entity.InventoryRow) string { return report.FormatNumber(f(r)) }
	}
	product := tableColumn{"Producto", 3, align.Left, func(r entity.InventoryRow) string { return r.Product }}
	cols := []tableColumn{
		{"Stock", 1, align.Right, num(func(r entity.InventoryRow) float64 { return r.CurrentStock })},
		{"Venta diaria", 2, align.Right, num(func(r entity.InventoryRow) float64 { return r.AverageDailySales })},
		{"Lead", 1, align.Right, num(func(r entity.InventoryRow) float64 { return r.LeadTimeDays })},
		{"Demanda", 1, align.Right, num(func(r entity.InventoryRow) float64 { return r.EstimatedDemand })},
		{"Gap", 1, align.Right, num(func(r entity.InventoryRow) float64 { return r.StockGap })},
		{"Estado", 3, align.Center, func(r entity.InventoryRow) string { return r.Status.String() }},
	}
	if v == entity.VariantCompare {
		product.size = 2
		cols[1].size = 1
		company := tableColumn{"Empresa", 2, align.Left, func(r entity.InventoryRow) string { return r.Company }}
		return append([]tableColumn{company, product}, cols...)
	}
	return append([]tableColumn{product}, cols...)
}

func tableHeaderRow(columns []tableColumn) core.Row {
	cols := make([]core.Col, 0, len(columns))
	for _, c := range columns {
		cols = append(cols, col.New(c.size).Add(text.New(c.label, props.Text{
			Style: fontstyle.Bold, Size: 8, Align: c.align,
			Color: colorPrimary, Top: 2, Left: 1, Right: 1,
		})))
	}
	return row.New(8).Add(cols...)
}

// tableDetailRows: una fila por producto; el estado va coloreado.
func tableDetailRows(columns []tableColumn, rows []entity.InventoryRow) []core.Row {
	result := make([]core.Row, 0, len(rows))
	for _, r := range rows {
		cols := make([]core.Col, 0, len(columns))
		for i, c := range columns {
			p := props.Text{Size: 8, Align: c.align, Top: 1, Left: 1, Right: 1}
			if i == len(columns)-1 {
				p.Style = fontstyle.Bold
				p.Color = statusColor(r.Status)
			}
			cols = append(cols, col.New(c.size).Add(text.New(c.value(r), p)))
		}
		result = append(result, row.New(6).Add(cols...))
	}
	return result
}

func restockRows(list []inventory.RestockSuggestion) []core.Row {
	rows := []core.Row{
		row.New(7).Add(col.New(12).Add(
			text.New("REPOSICIÓN SUGERIDA", props.Text{Style: fontstyle.Bold, Size: 9, Color: colorPrimary, Top: 1}),
		)),
	}
	for _, r := range list {
		name := r.Product
		if r.Company != "" {
			name = r.Company + " / " + r.Product
		}
		rows = append(rows, row.New(5).Add(
			col.New(1).Add(text.New(fmt.Sprintf("%d.", r.Priority), props.Text{Size: 8, Align: align.Right, Top: 0.5, Right: 1})),
			col.New(7).Add(text.New(name, props.Text{Size: 8, Top: 0.5})),
			col.New(4).Add(text.New("pedir "+report.FormatNumber(r.SuggestedOrderQty), props.Text{
				Style: fontstyle.Bold, Size: 8, Align: align.Right, Color: colorRisk, Top: 0.5,
			})),
		))
	}
	return rows
}

func insightRows(insight string) []core.Row {
	rows := []core.Row{
		row.New(7).Add(col.New(12).Add(
			text.New("ANÁLISIS IA", props.Text{Style: fontstyle.Bold, Size: 9, Color: colorPrimary, Top: 1}),
		)),
	}
	for _, paragraph := range strings.Split(strings.ReplaceAll(insight, "\r\n", "\n"), "\n") {
		if strings.TrimSpace(paragraph) == "" {
			rows = append(rows, row.New(2))
			continue
		}
		for _, l := range wrapWords(paragraph, insightLineWidth) {
			rows = append(rows, row.New(4.5).Add(col.New(12).Add(
				text.New(l, props.Text{Size: 8, Top: 0.5}),
			)))
		}
	}
	return rows
}

// ── helpers ───────────────────────────────────────────────────────────────────

func statusColor(s entity.StockStatus) *props.Color {
	switch s {
	case entity.StockoutRisk:
		return colorRisk
	case entity.Overstock:
		return colorOverstock
	default:
		return colorSafe
	}
}

func nonEmpty(s, fallback string) string {
	if s != "" {
		return s
	}
	return fallback
}

// wrapWords parte s en líneas de como máximo n runas sin cortar palabras
// (una palabra más larga que n queda sola en su línea).
func wrapWords(s string, n int) []string {
	var (
		lines []string
		cur   strings.Builder
		width int
	)
	for _, w := range strings.Fields(s) {
		wl := len([]rune(w))
		if width > 0 && width+1+wl > n {
			lines = append(lines, cur.String())
			cur.Reset()
			width = 0
		}
		if width > 0 {
			cur.WriteByte(' ')
			width++
		}
		cur.WriteString(w)
		width += wl
	}
	if width > 0 {
		lines = append(lines, cur.String())
	}
	return lines
}
