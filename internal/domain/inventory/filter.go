package inventory

import "github.com/jhoicas/restocker-api/internal/domain/entity"

// defaultSelectionSize empresas preseleccionadas en el modo comparación.
const defaultSelectionSize = 2

// DistinctCompanies empresas distintas en el orden en que aparecen en el archivo.
func DistinctCompanies(t entity.InventoryTable) []string {
	seen := make(map[string]struct{})
	out := make([]string, 0)
	for _, r := range t.Rows {
		if _, ok := seen[r.Company]; ok {
			continue
		}
		seen[r.Company] = struct{}{}
		out = append(out, r.Company)
	}
	return out
}

// DefaultSelection las dos primeras empresas distintas (o menos si no hay tantas).
func DefaultSelection(t entity.InventoryTable) []string {
	companies := DistinctCompanies(t)
	if len(companies) > defaultSelectionSize {
		companies = companies[:defaultSelectionSize]
	}
	return companies
}

// FilterByCompanies filas cuya empresa está en selected, en el orden original.
// Selección vacía → tabla vacía. No hay límite de empresas seleccionadas.
func FilterByCompanies(t entity.InventoryTable, selected []string) entity.InventoryTable {
	set := make(map[string]struct{}, len(selected))
	for _, c := range selected {
		set[c] = struct{}{}
	}
	rows := make([]entity.InventoryRow, 0, len(t.Rows))
	for _, r := range t.Rows {
		if _, ok := set[r.Company]; ok {
			rows = append(rows, r)
		}
	}
	return t.WithRows(rows)
}

// UnknownCompanies nombres de selected que no existen en la tabla.
func UnknownCompanies(t entity.InventoryTable, selected []string) []string {
	known := make(map[string]struct{})
	for _, c := range DistinctCompanies(t) {
		known[c] = struct{}{}
	}
	var unknown []string
	for _, c := range selected {
		if _, ok := known[c]; !ok {
			unknown = append(unknown, c)
		}
	}
	return unknown
}
