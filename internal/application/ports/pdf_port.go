package ports

import (
	"context"

	"github.com/jhoicas/restocker-api/internal/domain/entity"
	"github.com/jhoicas/restocker-api/internal/domain/inventory"
)

// ReportPDF datos que necesita el generador de PDF.
type ReportPDF struct {
	Title     string
	FileName  string
	Companies []string // solo modo comparación
	Table     entity.InventoryTable
	Summary   inventory.Summary
	Restock   []inventory.RestockSuggestion
	Insight   string // vacío si aún no se generó
}

// ReportPDFGenerator genera la representación PDF del reporte.
type ReportPDFGenerator interface {
	GenerateReportPDF(ctx context.Context, in ReportPDF) ([]byte, error)
}
