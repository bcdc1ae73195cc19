package entity

// Nombres de columna del archivo de inventario (deben coincidir exactamente con el encabezado).
const (
	ColumnProduct           = "Product"
	ColumnCompany           = "Company_Name"
	ColumnCurrentStock      = "Current_Stock"
	ColumnAverageDailySales = "Average_Daily_Sales"
	ColumnLeadTimeDays      = "Lead_Time_Days"

	// Columnas derivadas, se agregan al final de la tabla.
	ColumnEstimatedDemand = "Estimated_Demand"
	ColumnStockGap        = "Stock_Gap"
	ColumnStockStatus     = "Stock_Status"
)

// DerivedColumns columnas que agrega el cálculo de métricas, en orden.
var DerivedColumns = []string{ColumnEstimatedDemand, ColumnStockGap, ColumnStockStatus}

// Variant modo del reporte.
type Variant string

const (
	VariantSingle  Variant = "single"  // reporte de una sola empresa
	VariantCompare Variant = "compare" // comparación entre empresas (requiere Company_Name)
)

// ParseVariant normaliza el modo recibido; vacío equivale a single.
func ParseVariant(s string) (Variant, bool) {
	switch Variant(s) {
	case "", VariantSingle:
		return VariantSingle, true
	case VariantCompare:
		return VariantCompare, true
	default:
		return "", false
	}
}

// RequiredColumns devuelve las columnas obligatorias del modo.
func (v Variant) RequiredColumns() []string {
	cols := []string{ColumnProduct, ColumnCurrentStock, ColumnAverageDailySales, ColumnLeadTimeDays}
	if v == VariantCompare {
		cols = append(cols, ColumnCompany)
	}
	return cols
}

// InventoryRow una fila del archivo: un producto, opcionalmente de una empresa.
// EstimatedDemand, StockGap y Status son derivados; solo los escribe inventory.Derive.
type InventoryRow struct {
	Product           string
	Company           string
	CurrentStock      float64
	AverageDailySales float64
	LeadTimeDays      float64
	EstimatedDemand   float64
	StockGap          float64
	Status            StockStatus
	Extra             map[string]string // columnas adicionales sin tocar
}

// InventoryTable tabla en memoria de una sesión. Columns conserva el orden del encabezado original.
type InventoryTable struct {
	Variant Variant
	Columns []string
	Rows    []InventoryRow
}

// Len número de filas.
func (t InventoryTable) Len() int { return len(t.Rows) }

// AllColumns columnas originales más las derivadas.
func (t InventoryTable) AllColumns() []string {
	cols := make([]string, 0, len(t.Columns)+len(DerivedColumns))
	cols = append(cols, t.Columns...)
	return append(cols, DerivedColumns...)
}

// WithRows devuelve una copia de la tabla con otras filas (mismo esquema).
func (t InventoryTable) WithRows(rows []InventoryRow) InventoryTable {
	return InventoryTable{Variant: t.Variant, Columns: t.Columns, Rows: rows}
}

// RawSheet hoja leída del archivo subido, sin interpretar: encabezado y celdas como texto.
type RawSheet struct {
	Header  []string
	Records [][]string
}
