package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/restocker-api/internal/application/report"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	Report         *report.UseCase
	MaxUploadBytes int
}

// Router registra las rutas de la API.
// No hay autenticación: cada sesión se identifica solo por su id.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	reports := api.Group("/reports")
	reportHandler := NewReportHandler(deps.Report, deps.MaxUploadBytes)
	reports.Post("/", reportHandler.Upload)
	reports.Get("/:id", reportHandler.Get)
	reports.Delete("/:id", reportHandler.Delete)
	reports.Put("/:id/companies", reportHandler.SelectCompanies)
	reports.Get("/:id/charts", reportHandler.Charts)
	reports.Post("/:id/insight", reportHandler.Insight)
	reports.Post("/:id/questions", reportHandler.Ask)
	reports.Get("/:id/pdf", reportHandler.PDF)
}
