// Package report orquesta el pipeline del reporte de inventario:
// archivo → esquema → tipos → métricas → clasificación → filtro → gráficos → prompt → modelo.
package report

import (
	"context"
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strings"
	"time"

	"github.com/jhoicas/restocker-api/internal/application/dto"
	"github.com/jhoicas/restocker-api/internal/application/ports"
	"github.com/jhoicas/restocker-api/internal/application/session"
	"github.com/jhoicas/restocker-api/internal/domain"
	"github.com/jhoicas/restocker-api/internal/domain/entity"
	"github.com/jhoicas/restocker-api/internal/domain/inventory"
	"github.com/jhoicas/restocker-api/pkg/logger"
)

// ErrAI el proveedor de chat-completion falló (red, cuota, respuesta mal formada).
// No hay reintentos: el error llega al usuario y solo aborta esa interacción.
var ErrAI = errors.New("servicio de IA")

const (
	defaultMemoSize = 256
	defaultMemoTTL  = time.Hour
)

// emptyViewReason motivo cuando no hay filas que enviar al modelo.
const emptyViewReason = "no hay filas para analizar: la selección de empresas está vacía o el archivo no tiene datos"

// Deps dependencias del caso de uso.
type Deps struct {
	Reader   ports.SheetReader
	LLM      ports.LLMService
	PDF      ports.ReportPDFGenerator
	Sessions *session.Store
	Memo     *Memo
	Policy   inventory.Policy
	Timeout  time.Duration // por llamada al modelo; 0 = sin timeout propio
	Metrics  ports.ReportMetrics
	Log      *logger.Logger
}

type nopMetrics struct{}

func (nopMetrics) ObserveMemo(string, bool)         {}
func (nopMetrics) ObserveUpload(string, int, error) {}

// UseCase caso de uso del reporte de inventario.
type UseCase struct {
	reader   ports.SheetReader
	llm      ports.LLMService
	pdf      ports.ReportPDFGenerator
	sessions *session.Store
	memo     *Memo
	policy   inventory.Policy
	timeout  time.Duration
	metrics  ports.ReportMetrics
	log      *logger.Logger
}

// NewUseCase construye el caso de uso inyectando sus dependencias.
func NewUseCase(d Deps) *UseCase {
	log := d.Log
	if log == nil {
		log = logger.Nop()
	}
	memo := d.Memo
	if memo == nil {
		memo = NewMemo(defaultMemoSize, defaultMemoTTL)
	}
	var metrics ports.ReportMetrics = nopMetrics{}
	if d.Metrics != nil {
		metrics = d.Metrics
	}
	return &UseCase{
		reader:   d.Reader,
		llm:      d.LLM,
		pdf:      d.PDF,
		sessions: d.Sessions,
		memo:     memo,
		policy:   d.Policy,
		timeout:  d.Timeout,
		metrics:  metrics,
		log:      log,
	}
}

// Upload lee el archivo, valida, deriva y abre una sesión nueva.
// mode: "single" (defecto) o "compare".
func (uc *UseCase) Upload(ctx context.Context, fileName string, src io.Reader, mode string) (*dto.ReportDTO, error) {
	variant, ok := entity.ParseVariant(strings.ToLower(strings.TrimSpace(mode)))
	if !ok {
		return nil, fmt.Errorf("%w: mode debe ser single o compare", domain.ErrInvalidInput)
	}

	table, err := uc.load(fileName, src, variant)
	uc.metrics.ObserveUpload(string(variant), table.Len(), err)
	if err != nil {
		uc.log.Warn().Err(err).Str("file", filepath.Base(fileName)).Msg("archivo de inventario rechazado")
		return nil, err
	}

	sess := uc.sessions.Create(filepath.Base(fileName), table)
	uc.log.Info().
		Str("session", sess.ID).
		Str("mode", string(variant)).
		Int("rows", table.Len()).
		Msg("archivo de inventario cargado")
	return toReportDTO(sess), nil
}

func (uc *UseCase) load(fileName string, src io.Reader, variant entity.Variant) (entity.InventoryTable, error) {
	sheet, err := uc.reader.Read(fileName, src)
	if err != nil {
		return entity.InventoryTable{}, err
	}
	return Load(sheet, variant, uc.policy)
}

// Get vista actual de la sesión.
func (uc *UseCase) Get(_ context.Context, id string) (*dto.ReportDTO, error) {
	sess, err := uc.sessions.Get(id)
	if err != nil {
		return nil, err
	}
	return toReportDTO(sess), nil
}

// SelectCompanies cambia la selección (modo compare). No invoca al modelo.
func (uc *UseCase) SelectCompanies(_ context.Context, id string, companies []string) (*dto.ReportDTO, error) {
	sess, err := uc.sessions.Select(id, companies)
	if err != nil {
		return nil, err
	}
	return toReportDTO(sess), nil
}

// TableText la vista actual serializada como texto, igual que la recibe el modelo.
func (uc *UseCase) TableText(_ context.Context, id string) (string, error) {
	sess, err := uc.sessions.Get(id)
	if err != nil {
		return "", err
	}
	return FormatTable(sess.View()), nil
}

// Charts los dos gráficos de la vista actual.
func (uc *UseCase) Charts(_ context.Context, id string) ([]dto.ChartDTO, error) {
	sess, err := uc.sessions.Get(id)
	if err != nil {
		return nil, err
	}
	return BuildCharts(sess.View()), nil
}

// Delete descarta la sesión.
func (uc *UseCase) Delete(_ context.Context, id string) error {
	return uc.sessions.Delete(id)
}

// Insight análisis narrativo de la vista actual. Con la vista vacía no se llama al modelo.
func (uc *UseCase) Insight(ctx context.Context, id string) (*dto.InsightDTO, error) {
	sess, err := uc.sessions.Get(id)
	if err != nil {
		return nil, err
	}
	view := sess.View()
	if view.Len() == 0 {
		return &dto.InsightDTO{Model: uc.llm.Model(), Skipped: true, Reason: emptyViewReason}, nil
	}

	text, cached, err := uc.complete(ctx, kindInsight, InsightRequest(view, sess.Selected))
	if err != nil {
		return nil, err
	}
	return &dto.InsightDTO{Text: text, Model: uc.llm.Model(), Cached: cached}, nil
}

// Ask responde una pregunta libre. Cada pregunta es independiente (sin historial)
// y se envía literal, sin recortar.
func (uc *UseCase) Ask(ctx context.Context, id, question string) (*dto.AnswerDTO, error) {
	if strings.TrimSpace(question) == "" {
		return nil, fmt.Errorf("%w: question es obligatorio", domain.ErrInvalidInput)
	}
	sess, err := uc.sessions.Get(id)
	if err != nil {
		return nil, err
	}
	view := sess.View()
	if view.Len() == 0 {
		return &dto.AnswerDTO{
			Question:   question,
			InsightDTO: dto.InsightDTO{Model: uc.llm.Model(), Skipped: true, Reason: emptyViewReason},
		}, nil
	}

	text, cached, err := uc.complete(ctx, kindQuestion, QuestionRequest(view, question))
	if err != nil {
		return nil, err
	}
	return &dto.AnswerDTO{
		Question:   question,
		InsightDTO: dto.InsightDTO{Text: text, Model: uc.llm.Model(), Cached: cached},
	}, nil
}

// PDF genera el reporte en PDF de la vista actual. Incluye el análisis solo si ya está en caché:
// descargar el PDF nunca dispara una llamada al modelo.
func (uc *UseCase) PDF(ctx context.Context, id string) ([]byte, string, error) {
	if uc.pdf == nil {
		return nil, "", fmt.Errorf("pdf: generador no configurado")
	}
	sess, err := uc.sessions.Get(id)
	if err != nil {
		return nil, "", err
	}
	view := sess.View()

	var insight string
	if view.Len() > 0 {
		key := MemoKey(kindInsight, uc.llm.Model(), InsightRequest(view, sess.Selected))
		insight, _ = uc.memo.Get(key)
	}

	doc, err := uc.pdf.GenerateReportPDF(ctx, ports.ReportPDF{
		Title:     reportTitle(view.Variant),
		FileName:  sess.FileName,
		Companies: sess.Selected,
		Table:     view,
		Summary:   inventory.Summarize(view),
		Restock:   inventory.RestockList(view),
		Insight:   insight,
	})
	if err != nil {
		return nil, "", err
	}
	name := strings.TrimSuffix(sess.FileName, filepath.Ext(sess.FileName)) + "-report.pdf"
	return doc, name, nil
}

// complete consulta la caché y, si no hay respuesta guardada, llama al modelo una sola vez.
func (uc *UseCase) complete(ctx context.Context, kind string, req ports.ChatRequest) (string, bool, error) {
	key := MemoKey(kind, uc.llm.Model(), req)
	text, ok := uc.memo.Get(key)
	uc.metrics.ObserveMemo(kind, ok)
	if ok {
		uc.log.Debug().Str("kind", kind).Msg("respuesta de IA desde caché")
		return text, true, nil
	}

	if uc.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, uc.timeout)
		defer cancel()
	}

	start := time.Now()
	text, err := uc.llm.Complete(ctx, req)
	if err != nil {
		uc.log.Error().Err(err).Str("kind", kind).Dur("elapsed", time.Since(start)).Msg("llamada a IA fallida")
		if ctxErr := ctx.Err(); ctxErr != nil && !errors.Is(err, ctxErr) {
			return "", false, fmt.Errorf("%w: %w: %w", ErrAI, ctxErr, err)
		}
		return "", false, fmt.Errorf("%w: %w", ErrAI, err)
	}

	uc.memo.Add(key, text)
	uc.log.Info().Str("kind", kind).Dur("elapsed", time.Since(start)).Msg("respuesta de IA generada")
	return text, false, nil
}

func reportTitle(v entity.Variant) string {
	if v == entity.VariantCompare {
		return "Multi-Company Inventory Comparison"
	}
	return "Inventory Report"
}

func toReportDTO(sess session.Session) *dto.ReportDTO {
	view := sess.View()
	rows := make([]dto.InventoryRowDTO, 0, view.Len())
	for _, r := range view.Rows {
		rows = append(rows, dto.InventoryRowDTO{
			Product:           r.Product,
			Company:           r.Company,
			CurrentStock:      r.CurrentStock,
			AverageDailySales: r.AverageDailySales,
			LeadTimeDays:      r.LeadTimeDays,
			EstimatedDemand:   r.EstimatedDemand,
			StockGap:          r.StockGap,
			StockStatus:       r.Status.String(),
			Extra:             r.Extra,
		})
	}
	return &dto.ReportDTO{
		ID:        sess.ID,
		FileName:  sess.FileName,
		Mode:      string(sess.Table.Variant),
		Columns:   view.AllColumns(),
		Rows:      rows,
		Summary:   inventory.Summarize(view),
		Restock:   inventory.RestockList(view),
		Companies: sess.Companies,
		Selected:  sess.Selected,
		Charts:    BuildCharts(view),
	}
}
