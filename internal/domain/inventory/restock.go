package inventory

import (
	"sort"

	"github.com/jhoicas/restocker-api/internal/domain/entity"
)

// RestockSuggestion un producto en riesgo de quiebre con la cantidad que cubre la demanda del lead time.
type RestockSuggestion struct {
	Priority          int     `json:"priority"` // 1 = más urgente
	Company           string  `json:"company,omitempty"`
	Product           string  `json:"product"`
	CurrentStock      float64 `json:"current_stock"`
	EstimatedDemand   float64 `json:"estimated_demand"`
	SuggestedOrderQty float64 `json:"suggested_order_qty"`
}

// RestockList devuelve los productos en Stockout Risk ordenados por urgencia:
// mayor déficit primero, luego mayor venta diaria. Empates conservan el orden del archivo.
// SuggestedOrderQty = -Stock_Gap, es decir lo que falta para cubrir la demanda estimada.
func RestockList(t entity.InventoryTable) []RestockSuggestion {
	type candidate struct {
		row     entity.InventoryRow
		deficit float64
	}
	var candidates []candidate
	for _, r := range t.Rows {
		if r.Status == entity.StockoutRisk {
			candidates = append(candidates, candidate{row: r, deficit: -r.StockGap})
		}
	}

	sort.SliceStable(candidates, func(i, j int) bool {
		a, b := candidates[i], candidates[j]
		if a.deficit != b.deficit {
			return a.deficit > b.deficit
		}
		return a.row.AverageDailySales > b.row.AverageDailySales
	})

	out := make([]RestockSuggestion, 0, len(candidates))
	for i, c := range candidates {
		out = append(out, RestockSuggestion{
			Priority:          i + 1,
			Company:           c.row.Company,
			Product:           c.row.Product,
			CurrentStock:      c.row.CurrentStock,
			EstimatedDemand:   c.row.EstimatedDemand,
			SuggestedOrderQty: c.deficit,
		})
	}
	return out
}
