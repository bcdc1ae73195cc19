package report

import (
	"github.com/jhoicas/restocker-api/internal/application/dto"
	"github.com/jhoicas/restocker-api/internal/domain/entity"
	"github.com/jhoicas/restocker-api/internal/domain/inventory"
)

// Colores de la brecha en el gráfico de barras del modo single.
const (
	colorRisk      = "red"
	colorSafe      = "yellow"
	colorOverstock = "green"
)

// BuildCharts devuelve los dos gráficos del reporte a partir de la tabla (ya filtrada).
// Una tabla vacía produce gráficos sin puntos, nunca un error.
func BuildCharts(t entity.InventoryTable) []dto.ChartDTO {
	if t.Variant == entity.VariantCompare {
		return []dto.ChartDTO{compareGapChart(t), compareDemandChart(t)}
	}
	return []dto.ChartDTO{gapChart(t), stockVsDemandChart(t)}
}

func gapChart(t entity.InventoryTable) dto.ChartDTO {
	points := make([]dto.ChartPointDTO, 0, len(t.Rows))
	for _, r := range t.Rows {
		points = append(points, dto.ChartPointDTO{X: r.Product, Y: r.StockGap, Color: statusColor(r.Status)})
	}
	return dto.ChartDTO{
		Kind:     dto.ChartBar,
		Title:    "Stock Gap per Product",
		XColumn:  entity.ColumnProduct,
		YColumns: []string{entity.ColumnStockGap},
		Series:   []dto.ChartSeriesDTO{{Name: entity.ColumnStockGap, Points: points}},
	}
}

func stockVsDemandChart(t entity.InventoryTable) dto.ChartDTO {
	stock := make([]dto.ChartPointDTO, 0, len(t.Rows))
	demand := make([]dto.ChartPointDTO, 0, len(t.Rows))
	for _, r := range t.Rows {
		stock = append(stock, dto.ChartPointDTO{X: r.Product, Y: r.CurrentStock})
		demand = append(demand, dto.ChartPointDTO{X: r.Product, Y: r.EstimatedDemand})
	}
	return dto.ChartDTO{
		Kind:     dto.ChartLine,
		Title:    "Current Stock vs Predicted Demand",
		XColumn:  entity.ColumnProduct,
		YColumns: []string{entity.ColumnCurrentStock, entity.ColumnEstimatedDemand},
		Series: []dto.ChartSeriesDTO{
			{Name: entity.ColumnCurrentStock, Points: stock},
			{Name: entity.ColumnEstimatedDemand, Points: demand},
		},
	}
}

func compareGapChart(t entity.InventoryTable) dto.ChartDTO {
	return dto.ChartDTO{
		Kind:     dto.ChartBar,
		Title:    "Stock Gap per Product by Company",
		XColumn:  entity.ColumnProduct,
		YColumns: []string{entity.ColumnStockGap},
		GroupBy:  entity.ColumnCompany,
		Series:   seriesByCompany(t, func(r entity.InventoryRow) float64 { return r.StockGap }),
	}
}

func compareDemandChart(t entity.InventoryTable) dto.ChartDTO {
	return dto.ChartDTO{
		Kind:     dto.ChartLine,
		Title:    "Estimated Demand by Company",
		XColumn:  entity.ColumnProduct,
		YColumns: []string{entity.ColumnEstimatedDemand},
		GroupBy:  entity.ColumnCompany,
		Series:   seriesByCompany(t, func(r entity.InventoryRow) float64 { return r.EstimatedDemand }),
	}
}

// seriesByCompany una serie por empresa, en el orden en que aparecen en la tabla.
func seriesByCompany(t entity.InventoryTable, value func(entity.InventoryRow) float64) []dto.ChartSeriesDTO {
	companies := inventory.DistinctCompanies(t)
	pos := make(map[string]int, len(companies))
	series := make([]dto.ChartSeriesDTO, len(companies))
	for i, c := range companies {
		pos[c] = i
		series[i] = dto.ChartSeriesDTO{Name: c, Points: []dto.ChartPointDTO{}}
	}
	for _, r := range t.Rows {
		i := pos[r.Company]
		series[i].Points = append(series[i].Points, dto.ChartPointDTO{X: r.Product, Y: value(r)})
	}
	return series
}

func statusColor(s entity.StockStatus) string {
	switch s {
	case entity.StockoutRisk:
		return colorRisk
	case entity.Overstock:
		return colorOverstock
	default:
		return colorSafe
	}
}
