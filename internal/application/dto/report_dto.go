package dto

import "github.com/jhoicas/restocker-api/internal/domain/inventory"

// ReportDTO respuesta de POST /api/reports y GET /api/reports/:id.
// Rows y Summary corresponden a la vista filtrada (en modo compare, solo empresas seleccionadas).
type ReportDTO struct {
	ID        string                        `json:"id"`
	FileName  string                        `json:"file_name"`
	Mode      string                        `json:"mode"` // single | compare
	Columns   []string                      `json:"columns"`
	Rows      []InventoryRowDTO             `json:"rows"`
	Summary   inventory.Summary             `json:"summary"`
	Restock   []inventory.RestockSuggestion `json:"restock"`           // productos en riesgo, por urgencia
	Companies []string                      `json:"companies,omitempty"` // empresas distintas del archivo
	Selected  []string                      `json:"selected"`            // empresas seleccionadas; null en modo single
	Charts    []ChartDTO                    `json:"charts"`
}

// InventoryRowDTO una fila con sus columnas derivadas.
type InventoryRowDTO struct {
	Product           string            `json:"product"`
	Company           string            `json:"company,omitempty"`
	CurrentStock      float64           `json:"current_stock"`
	AverageDailySales float64           `json:"average_daily_sales"`
	LeadTimeDays      float64           `json:"lead_time_days"`
	EstimatedDemand   float64           `json:"estimated_demand"`
	StockGap          float64           `json:"stock_gap"`
	StockStatus       string            `json:"stock_status"`
	Extra             map[string]string `json:"extra,omitempty"` // columnas adicionales del archivo
}

// SelectCompaniesRequest body para PUT /api/reports/:id/companies.
type SelectCompaniesRequest struct {
	Companies []string `json:"companies"`
}

// QuestionRequest body para POST /api/reports/:id/questions.
type QuestionRequest struct {
	Question string `json:"question"`
}

// InsightDTO análisis narrativo del modelo. Text se devuelve tal cual lo entrega el proveedor.
type InsightDTO struct {
	Text    string `json:"text"`
	Model   string `json:"model"`
	Cached  bool   `json:"cached"`  // true si no hubo llamada al proveedor
	Skipped bool   `json:"skipped"` // true si la tabla filtrada está vacía
	Reason  string `json:"reason,omitempty"`
}

// AnswerDTO respuesta a una pregunta libre sobre la tabla.
type AnswerDTO struct {
	Question string `json:"question"`
	InsightDTO
}
