package report

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/jhoicas/restocker-api/internal/domain"
	"github.com/jhoicas/restocker-api/internal/domain/entity"
	"github.com/jhoicas/restocker-api/internal/domain/inventory"
)

// Load convierte la hoja cruda en una tabla derivada.
//
// Orden estricto:
//  1. Esquema: si falta alguna columna obligatoria se devuelve ErrMissingColumns y no se calcula nada.
//  2. Tipos: cada celda numérica debe ser un número finito; la primera inválida corta con ErrInvalidNumber.
//  3. Métricas y clasificación (inventory.Policy).
//
// Columnas derivadas que ya vinieran en el archivo se descartan y se recalculan.
func Load(sheet *entity.RawSheet, variant entity.Variant, policy inventory.Policy) (entity.InventoryTable, error) {
	if sheet == nil {
		return entity.InventoryTable{}, fmt.Errorf("%w: hoja vacía", domain.ErrInvalidInput)
	}

	index := make(map[string]int, len(sheet.Header))
	for i, h := range sheet.Header {
		if h == "" {
			continue
		}
		if _, dup := index[h]; dup {
			return entity.InventoryTable{}, fmt.Errorf("%w: columna duplicada %q", domain.ErrInvalidInput, h)
		}
		index[h] = i
	}

	var missing []string
	for _, col := range variant.RequiredColumns() {
		if _, ok := index[col]; !ok {
			missing = append(missing, col)
		}
	}
	if len(missing) > 0 {
		return entity.InventoryTable{}, fmt.Errorf("%w: %s", domain.ErrMissingColumns, strings.Join(missing, ", "))
	}

	columns := make([]string, 0, len(sheet.Header))
	for _, h := range sheet.Header {
		if h == "" || isDerived(h) {
			continue
		}
		columns = append(columns, h)
	}

	rows := make([]entity.InventoryRow, 0, len(sheet.Records))
	for i, rec := range sheet.Records {
		row, err := parseRow(rec, index, columns, i+1)
		if err != nil {
			return entity.InventoryTable{}, err
		}
		rows = append(rows, row)
	}

	table := entity.InventoryTable{Variant: variant, Columns: columns, Rows: rows}
	return policy.DeriveTable(table), nil
}

func parseRow(rec []string, index map[string]int, columns []string, line int) (entity.InventoryRow, error) {
	cell := func(col string) string {
		i, ok := index[col]
		if !ok || i >= len(rec) {
			return ""
		}
		return rec[i]
	}
	// Solo las celdas numéricas se recortan; el texto pasa tal cual.
	number := func(col string) (float64, error) {
		raw := strings.TrimSpace(cell(col))
		f, err := strconv.ParseFloat(raw, 64)
		if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
			return 0, fmt.Errorf("%w: fila %d, columna %s: %q", domain.ErrInvalidNumber, line, col, raw)
		}
		return f, nil
	}

	row := entity.InventoryRow{
		Product: cell(entity.ColumnProduct),
		Company: cell(entity.ColumnCompany),
	}
	var err error
	if row.CurrentStock, err = number(entity.ColumnCurrentStock); err != nil {
		return row, err
	}
	if row.AverageDailySales, err = number(entity.ColumnAverageDailySales); err != nil {
		return row, err
	}
	if row.LeadTimeDays, err = number(entity.ColumnLeadTimeDays); err != nil {
		return row, err
	}

	for _, col := range columns {
		if isKnown(col) {
			continue
		}
		if row.Extra == nil {
			row.Extra = make(map[string]string)
		}
		row.Extra[col] = cell(col)
	}
	return row, nil
}

func isDerived(col string) bool {
	for _, d := range entity.DerivedColumns {
		if col == d {
			return true
		}
	}
	return false
}

func isKnown(col string) bool {
	switch col {
	case entity.ColumnProduct, entity.ColumnCompany, entity.ColumnCurrentStock,
		entity.ColumnAverageDailySales, entity.ColumnLeadTimeDays:
		return true
	}
	return false
}
