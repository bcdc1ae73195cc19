package http

import (
	"fmt"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/restocker-api/internal/application/dto"
	"github.com/jhoicas/restocker-api/internal/application/report"
)

// ReportHandler maneja los endpoints del reporte de inventario.
type ReportHandler struct {
	uc             *report.UseCase
	maxUploadBytes int
}

// NewReportHandler construye el handler. maxUploadBytes <= 0 desactiva el control de tamaño.
func NewReportHandler(uc *report.UseCase, maxUploadBytes int) *ReportHandler {
	return &ReportHandler{uc: uc, maxUploadBytes: maxUploadBytes}
}

// Upload godoc
// @Summary      Subir archivo de inventario
// @Description  Recibe un .xlsx o .csv, valida columnas y números, calcula demanda, brecha y estado.
//               mode=compare exige Company_Name y preselecciona las dos primeras empresas.
// @Tags         reports
// @Accept       multipart/form-data
// @Produce      json
// @Param        file  formData  file    true   "Archivo .xlsx o .csv"
// @Param        mode  formData  string  false  "single (defecto) o compare"
// @Success      201   {object}  dto.ReportDTO
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      415   {object}  dto.ErrorResponse
// @Failure      422   {object}  dto.ErrorResponse
// @Router       /api/reports [post]
func (h *ReportHandler) Upload(c *fiber.Ctx) error {
	fh, err := c.FormFile("file")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Code: "MISSING_FILE", Message: "adjunte el archivo en el campo file",
		})
	}
	if h.maxUploadBytes > 0 && fh.Size > int64(h.maxUploadBytes) {
		return c.Status(fiber.StatusRequestEntityTooLarge).JSON(dto.ErrorResponse{
			Code: "VALIDATION", Message: fmt.Sprintf("el archivo supera el máximo de %d bytes", h.maxUploadBytes),
		})
	}
	f, err := fh.Open()
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "no se pudo leer el archivo"})
	}
	defer f.Close()

	mode := c.FormValue("mode", c.Query("mode"))
	rep, err := h.uc.Upload(c.UserContext(), fh.Filename, f, mode)
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(rep)
}

// Get godoc
// @Summary      Ver reporte
// @Description  Tabla (filtrada por la selección en modo compare), resumen y gráficos.
// @Tags         reports
// @Produce      json
// @Param        id   path      string  true  "ID de la sesión"
// @Success      200  {object}  dto.ReportDTO
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/reports/{id} [get]
func (h *ReportHandler) Get(c *fiber.Ctx) error {
	rep, err := h.uc.Get(c.UserContext(), c.Params("id"))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(rep)
}

// SelectCompanies godoc
// @Summary      Seleccionar empresas (modo compare)
// @Description  Reemplaza la selección. Una lista vacía deja la tabla y los gráficos vacíos.
// @Tags         reports
// @Accept       json
// @Produce      json
// @Param        id    path  string                      true  "ID de la sesión"
// @Param        body  body  dto.SelectCompaniesRequest  true  "Empresas a comparar"
// @Success      200   {object}  dto.ReportDTO
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/reports/{id}/companies [put]
func (h *ReportHandler) SelectCompanies(c *fiber.Ctx) error {
	var req dto.SelectCompaniesRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo de la petición inválido"})
	}
	if req.Companies == nil {
		req.Companies = []string{}
	}
	rep, err := h.uc.SelectCompanies(c.UserContext(), c.Params("id"), req.Companies)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(rep)
}

// Charts godoc
// @Summary      Gráficos del reporte
// @Tags         reports
// @Produce      json
// @Param        id   path  string  true  "ID de la sesión"
// @Success      200  {array}   dto.ChartDTO
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/reports/{id}/charts [get]
func (h *ReportHandler) Charts(c *fiber.Ctx) error {
	charts, err := h.uc.Charts(c.UserContext(), c.Params("id"))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(charts)
}

// Insight godoc
// @Summary      Análisis narrativo con IA
// @Description  Envía la tabla serializada al proveedor de chat-completion. La respuesta se guarda
//               en caché por contenido; la tabla vacía no genera llamada (skipped=true).
// @Tags         reports
// @Produce      json
// @Param        id   path  string  true  "ID de la sesión"
// @Success      200  {object}  dto.InsightDTO
// @Failure      404  {object}  dto.ErrorResponse
// @Failure      502  {object}  dto.ErrorResponse
// @Failure      504  {object}  dto.ErrorResponse
// @Router       /api/reports/{id}/insight [post]
func (h *ReportHandler) Insight(c *fiber.Ctx) error {
	insight, err := h.uc.Insight(c.UserContext(), c.Params("id"))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(insight)
}

// Ask godoc
// @Summary      Pregunta libre sobre la tabla
// @Description  Cada pregunta es independiente: no hay historial de conversación.
// @Tags         reports
// @Accept       json
// @Produce      json
// @Param        id    path  string               true  "ID de la sesión"
// @Param        body  body  dto.QuestionRequest  true  "Pregunta"
// @Success      200   {object}  dto.AnswerDTO
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      502   {object}  dto.ErrorResponse
// @Failure      504   {object}  dto.ErrorResponse
// @Router       /api/reports/{id}/questions [post]
func (h *ReportHandler) Ask(c *fiber.Ctx) error {
	var req dto.QuestionRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo de la petición inválido"})
	}
	answer, err := h.uc.Ask(c.UserContext(), c.Params("id"), req.Question)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(answer)
}

// PDF godoc
// @Summary      Exportar reporte en PDF
// @Description  Incluye el análisis de IA solo si ya fue generado; nunca llama al proveedor.
// @Tags         reports
// @Produce      application/pdf
// @Param        id   path  string  true  "ID de la sesión"
// @Success      200  {file}    binary
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/reports/{id}/pdf [get]
func (h *ReportHandler) PDF(c *fiber.Ctx) error {
	doc, name, err := h.uc.PDF(c.UserContext(), c.Params("id"))
	if err != nil {
		return writeError(c, err)
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf("attachment; filename=%q", name))
	return c.Send(doc)
}

// Delete godoc
// @Summary      Descartar sesión
// @Tags         reports
// @Param        id   path  string  true  "ID de la sesión"
// @Success      204
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/reports/{id} [delete]
func (h *ReportHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.UserContext(), c.Params("id")); err != nil {
		return writeError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
