// Package inventory contiene los servicios de dominio del reporte de inventario:
// cálculo de demanda estimada y brecha, clasificación de estado y filtro por empresa.
// Todo es puro: no hay E/S ni estado compartido.
package inventory

import "github.com/jhoicas/restocker-api/internal/domain/entity"

// DefaultOverstockThreshold brecha (en unidades) por encima de la cual hay sobrestock.
const DefaultOverstockThreshold = 50.0

// Policy umbrales de clasificación.
type Policy struct {
	OverstockThreshold float64
}

// DefaultPolicy política con el umbral por defecto (50 unidades).
func DefaultPolicy() Policy {
	return Policy{OverstockThreshold: DefaultOverstockThreshold}
}

// Classify clasifica una brecha de stock:
//
//	gap < 0          → StockoutRisk
//	gap > umbral     → Overstock
//	0 <= gap <= umbral → SafeStock
func (p Policy) Classify(gap float64) entity.StockStatus {
	switch {
	case gap < 0:
		return entity.StockoutRisk
	case gap > p.OverstockThreshold:
		return entity.Overstock
	default:
		return entity.SafeStock
	}
}

// Classify clasifica con la política por defecto.
func Classify(gap float64) entity.StockStatus {
	return DefaultPolicy().Classify(gap)
}

// EstimatedDemand = ventas diarias promedio * días de reposición.
func EstimatedDemand(averageDailySales, leadTimeDays float64) float64 {
	return averageDailySales * leadTimeDays
}

// StockGap = stock actual - demanda estimada. Negativo indica faltante proyectado.
func StockGap(currentStock, estimatedDemand float64) float64 {
	return currentStock - estimatedDemand
}

// Derive recalcula los campos derivados de la fila a partir de sus tres entradas numéricas.
// Sin redondeo ni validación de rangos: valores negativos se propagan tal cual.
func (p Policy) Derive(row entity.InventoryRow) entity.InventoryRow {
	row.EstimatedDemand = EstimatedDemand(row.AverageDailySales, row.LeadTimeDays)
	row.StockGap = StockGap(row.CurrentStock, row.EstimatedDemand)
	row.Status = p.Classify(row.StockGap)
	return row
}

// DeriveTable devuelve una tabla nueva con las columnas derivadas calculadas en cada fila.
// La tabla de entrada no se modifica.
func (p Policy) DeriveTable(t entity.InventoryTable) entity.InventoryTable {
	rows := make([]entity.InventoryRow, len(t.Rows))
	for i, r := range t.Rows {
		rows[i] = p.Derive(r)
	}
	return t.WithRows(rows)
}

// Summary conteo por estado y totales de una tabla derivada.
type Summary struct {
	Rows                 int     `json:"rows"`
	StockoutRisk         int     `json:"stockout_risk"`
	Overstock            int     `json:"overstock"`
	SafeStock            int     `json:"safe_stock"`
	TotalCurrentStock    float64 `json:"total_current_stock"`
	TotalEstimatedDemand float64 `json:"total_estimated_demand"`
}

// Summarize resume una tabla ya derivada.
func Summarize(t entity.InventoryTable) Summary {
	s := Summary{Rows: len(t.Rows)}
	for _, r := range t.Rows {
		switch r.Status {
		case entity.StockoutRisk:
			s.StockoutRisk++
		case entity.Overstock:
			s.Overstock++
		default:
			s.SafeStock++
		}
		s.TotalCurrentStock += r.CurrentStock
		s.TotalEstimatedDemand += r.EstimatedDemand
	}
	return s
}
