package entity

import (
	"encoding/json"
	"fmt"
)

// StockStatus clasificación de una fila según su brecha de stock.
type StockStatus int

const (
	SafeStock StockStatus = iota
	StockoutRisk
	Overstock
)

var stockStatusLabels = map[StockStatus]string{
	SafeStock:    "Safe Stock",
	StockoutRisk: "Stockout Risk",
	Overstock:    "Overstock",
}

// String etiqueta legible (la misma que se envía al modelo y en JSON).
func (s StockStatus) String() string {
	if l, ok := stockStatusLabels[s]; ok {
		return l
	}
	return fmt.Sprintf("StockStatus(%d)", int(s))
}

// MarshalJSON serializa por etiqueta.
func (s StockStatus) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.String())
}
