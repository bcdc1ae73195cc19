// Package terminal dibuja los gráficos del reporte en la terminal (CLI).
package terminal

import (
	"fmt"
	"math"
	"strings"

	"github.com/NimbleMarkets/ntcharts/barchart"
	"github.com/NimbleMarkets/ntcharts/canvas"
	"github.com/NimbleMarkets/ntcharts/canvas/runes"
	"github.com/NimbleMarkets/ntcharts/linechart/wavelinechart"
	"github.com/charmbracelet/lipgloss"

	"github.com/jhoicas/restocker-api/internal/application/dto"
	"github.com/jhoicas/restocker-api/internal/application/report"
)

const (
	defaultWidth = 72
	chartHeight  = 12
	labelWidth   = 10
)

var (
	titleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("51")).
			Bold(true)

	dimStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("245"))

	// colores nombrados de los puntos (ver report.BuildCharts)
	pointColors = map[string]lipgloss.Color{
		"red":    lipgloss.Color("196"),
		"yellow": lipgloss.Color("226"),
		"green":  lipgloss.Color("46"),
	}

	// una por serie (empresa o columna), en orden
	seriesPalette = []lipgloss.Color{"45", "214", "177", "118", "203", "229"}
)

// Render dibuja todos los gráficos uno debajo del otro. width <= 0 usa el ancho por defecto.
func Render(charts []dto.ChartDTO, width int) string {
	if width <= 0 {
		width = defaultWidth
	}
	parts := make([]string, 0, len(charts))
	for _, c := range charts {
		switch c.Kind {
		case dto.ChartBar:
			parts = append(parts, renderBar(c, width))
		case dto.ChartLine:
			parts = append(parts, renderLine(c, width))
		}
	}
	return strings.Join(parts, "\n\n")
}

func isEmpty(c dto.ChartDTO) bool {
	for _, s := range c.Series {
		if len(s.Points) > 0 {
			return false
		}
	}
	return true
}

func seriesStyle(i int) lipgloss.Style {
	return lipgloss.NewStyle().Foreground(seriesPalette[i%len(seriesPalette)])
}

// renderBar las barras no admiten valores negativos: si hay brechas negativas se
// desplaza la base al mínimo y la leyenda muestra el valor real.
func renderBar(c dto.ChartDTO, width int) string {
	var b strings.Builder
	b.WriteString(titleStyle.Render(c.Title))
	b.WriteString("\n")
	if isEmpty(c) {
		b.WriteString(dimStyle.Render("sin datos"))
		return b.String()
	}

	base := 0.0
	for _, s := range c.Series {
		for _, p := range s.Points {
			base = math.Min(base, p.Y)
		}
	}

	grouped := c.GroupBy != ""
	var (
		bars   []barchart.BarData
		legend []string
	)
	for i, s := range c.Series {
		for _, p := range s.Points {
			style := seriesStyle(i)
			if col, ok := pointColors[p.Color]; ok {
				style = lipgloss.NewStyle().Foreground(col)
			}
			label := p.X
			if grouped {
				label = s.Name + "/" + p.X
			}
			bars = append(bars, barchart.BarData{
				Label:  shorten(label, labelWidth),
				Values: []barchart.BarValue{{Name: s.Name, Value: p.Y - base, Style: style}},
			})
			legend = append(legend, style.Render(fmt.Sprintf("%s: %s", label, report.FormatNumber(p.Y))))
		}
	}

	chart := barchart.New(width, chartHeight)
	chart.PushAll(bars)
	chart.Draw()
	b.WriteString(chart.View())
	b.WriteString("\n")
	if base < 0 {
		b.WriteString(dimStyle.Render(fmt.Sprintf("base del eje: %s", report.FormatNumber(base))))
		b.WriteString("\n")
	}
	b.WriteString(strings.Join(legend, "  "))
	return b.String()
}

// renderLine una línea por serie; el eje X es la posición del producto en la tabla.
func renderLine(c dto.ChartDTO, width int) string {
	var b strings.Builder
	b.WriteString(titleStyle.Render(c.Title))
	b.WriteString("\n")
	if isEmpty(c) {
		b.WriteString(dimStyle.Render("sin datos"))
		return b.String()
	}

	minY, maxY := math.Inf(1), math.Inf(-1)
	maxX := 1
	for _, s := range c.Series {
		for i, p := range s.Points {
			minY = math.Min(minY, p.Y)
			maxY = math.Max(maxY, p.Y)
			if i > maxX {
				maxX = i
			}
		}
	}
	if minY == maxY {
		minY, maxY = minY-1, maxY+1
	}

	chart := wavelinechart.New(width, chartHeight,
		wavelinechart.WithXRange(0, float64(maxX)),
		wavelinechart.WithYRange(minY, maxY),
	)
	legend := make([]string, 0, len(c.Series))
	for i, s := range c.Series {
		style := seriesStyle(i)
		chart.SetDataSetStyles(s.Name, runes.ArcLineStyle, style)
		for j, p := range s.Points {
			chart.PlotDataSet(s.Name, canvas.Float64Point{X: float64(j), Y: p.Y})
		}
		legend = append(legend, style.Render("━ "+s.Name))
	}
	chart.DrawAll()

	b.WriteString(chart.View())
	b.WriteString("\n")
	b.WriteString(strings.Join(legend, "  "))
	b.WriteString("\n")
	b.WriteString(dimStyle.Render("X: " + strings.Join(xLabels(c), ", ")))
	return b.String()
}

// xLabels etiquetas del eje X de la serie más larga.
func xLabels(c dto.ChartDTO) []string {
	var longest []dto.ChartPointDTO
	for _, s := range c.Series {
		if len(s.Points) > len(longest) {
			longest = s.Points
		}
	}
	labels := make([]string, len(longest))
	for i, p := range longest {
		labels[i] = fmt.Sprintf("%d=%s", i, p.X)
	}
	return labels
}

func shorten(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n-1]) + "…"
}
