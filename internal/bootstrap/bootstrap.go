// Package bootstrap arma el caso de uso de reportes a partir de la configuración.
// Lo comparten el servidor HTTP y la CLI.
package bootstrap

import (
	"context"
	"errors"

	"github.com/jhoicas/restocker-api/internal/application/ports"
	"github.com/jhoicas/restocker-api/internal/application/report"
	"github.com/jhoicas/restocker-api/internal/application/session"
	"github.com/jhoicas/restocker-api/internal/domain/inventory"
	"github.com/jhoicas/restocker-api/internal/infrastructure/ai"
	"github.com/jhoicas/restocker-api/internal/infrastructure/metrics"
	"github.com/jhoicas/restocker-api/internal/infrastructure/pdf"
	"github.com/jhoicas/restocker-api/internal/infrastructure/spreadsheet"
	"github.com/jhoicas/restocker-api/pkg/config"
	"github.com/jhoicas/restocker-api/pkg/logger"
)

// ErrAIDisabled la IA fue desactivada explícitamente (CLI --no-ai).
var ErrAIDisabled = errors.New("IA desactivada")

// Options ajustes de armado.
type Options struct {
	// DisableAI no construye el proveedor; Insight y Ask fallan con ErrAIDisabled.
	DisableAI bool
}

// NewReportUseCase construye lector, proveedor de IA, PDF, sesiones y caché desde cfg.
func NewReportUseCase(cfg *config.Config, log *logger.Logger, opts Options) (*report.UseCase, error) {
	reader, err := spreadsheet.NewReader(cfg.Upload.CSVEncoding)
	if err != nil {
		return nil, err
	}

	var llm ports.LLMService = disabledLLM{}
	if !opts.DisableAI {
		llm, err = ai.New(cfg.AI, log.Named("ai"))
		if err != nil {
			return nil, err
		}
	}

	return report.NewUseCase(report.Deps{
		Reader:   reader,
		LLM:      llm,
		PDF:      pdf.NewMarotoReportGenerator(),
		Sessions: session.NewStore(cfg.Session.MaxSize, cfg.Session.TTL),
		Memo:     report.NewMemo(cfg.AI.CacheSize, cfg.AI.CacheTTL),
		Policy:   inventory.Policy{OverstockThreshold: cfg.Stock.OverstockThreshold},
		Timeout:  cfg.AI.Timeout,
		Metrics:  metrics.Recorder{},
		Log:      log.Named("report"),
	}), nil
}

type disabledLLM struct{}

func (disabledLLM) Complete(context.Context, ports.ChatRequest) (string, error) {
	return "", ErrAIDisabled
}

func (disabledLLM) Model() string { return "none" }
