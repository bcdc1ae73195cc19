package dto

// Tipos de gráfico.
const (
	ChartBar  = "bar"
	ChartLine = "line"
)

// ChartDTO especificación de un gráfico para el renderizador del cliente.
// Solo describe qué columnas se grafican; no contiene lógica de negocio.
type ChartDTO struct {
	Kind     string           `json:"kind"` // bar | line
	Title    string           `json:"title"`
	XColumn  string           `json:"x_column"`
	YColumns []string         `json:"y_columns"`
	GroupBy  string           `json:"group_by,omitempty"` // Company_Name en modo compare
	Series   []ChartSeriesDTO `json:"series"`
}

// ChartSeriesDTO una serie del gráfico.
type ChartSeriesDTO struct {
	Name   string          `json:"name"`
	Points []ChartPointDTO `json:"points"`
}

// ChartPointDTO un punto (producto, valor). Color solo en la brecha del modo single.
type ChartPointDTO struct {
	X     string  `json:"x"`
	Y     float64 `json:"y"`
	Color string  `json:"color,omitempty"`
}
