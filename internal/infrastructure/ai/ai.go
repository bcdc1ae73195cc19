// Package ai contiene los adaptadores de chat-completion (Groq, OpenAI, Anthropic, Gemini)
// y los decoradores comunes: límite de tasa y métricas.
package ai

import (
	"context"
	"errors"
	"fmt"
	"time"

	"golang.org/x/time/rate"

	"github.com/jhoicas/restocker-api/internal/application/ports"
	"github.com/jhoicas/restocker-api/internal/infrastructure/metrics"
	"github.com/jhoicas/restocker-api/pkg/config"
	"github.com/jhoicas/restocker-api/pkg/logger"
)

// maxResponseBytes tope de lectura del cuerpo de respuesta de los proveedores REST.
const maxResponseBytes = 256 * 1024

var errEmptyResponse = errors.New("el proveedor devolvió una respuesta vacía")

// New construye el servicio del proveedor configurado, con límite de tasa y métricas.
func New(cfg config.AIConfig, log *logger.Logger) (ports.LLMService, error) {
	var (
		svc ports.LLMService
		err error
	)
	switch cfg.Provider {
	case config.ProviderGroq:
		svc, err = NewOpenAIService(cfg.APIKey, cfg.Model, orDefault(cfg.BaseURL, groqBaseURL))
	case config.ProviderOpenAI:
		svc, err = NewOpenAIService(cfg.APIKey, cfg.Model, orDefault(cfg.BaseURL, openAIBaseURL))
	case config.ProviderAnthropic:
		svc = NewAnthropicService(cfg.APIKey, cfg.Model, cfg.BaseURL)
	case config.ProviderGemini:
		svc = NewGeminiService(cfg.APIKey, cfg.Model, cfg.BaseURL)
	default:
		return nil, fmt.Errorf("AI: proveedor desconocido %q", cfg.Provider)
	}
	if err != nil {
		return nil, err
	}

	if cfg.RatePerSecond > 0 {
		svc = WithRateLimit(svc, cfg.RatePerSecond, cfg.Burst)
	}
	if log != nil {
		log.Info().Str("provider", cfg.Provider).Str("model", cfg.Model).Msg("proveedor de IA configurado")
	}
	return Instrument(svc, cfg.Provider), nil
}

func orDefault(v, def string) string {
	if v == "" {
		return def
	}
	return v
}

func truncate(s string) string {
	const limit = 512
	if len(s) <= limit {
		return s
	}
	return s[:limit] + "…"
}

// ── Límite de tasa ────────────────────────────────────────────────────────────

type rateLimited struct {
	next    ports.LLMService
	limiter *rate.Limiter
}

// WithRateLimit limita las llamadas salientes al proveedor (token bucket).
// Si el contexto vence esperando turno la llamada falla sin salir a la red.
func WithRateLimit(next ports.LLMService, perSecond float64, burst int) ports.LLMService {
	if burst < 1 {
		burst = 1
	}
	return &rateLimited{next: next, limiter: rate.NewLimiter(rate.Limit(perSecond), burst)}
}

func (r *rateLimited) Model() string { return r.next.Model() }

func (r *rateLimited) Complete(ctx context.Context, in ports.ChatRequest) (string, error) {
	if err := r.limiter.Wait(ctx); err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return "", fmt.Errorf("AI: esperando cupo del limitador: %w", ctxErr)
		}
		return "", fmt.Errorf("AI: limitador: %w", err)
	}
	return r.next.Complete(ctx, in)
}

// ── Métricas ──────────────────────────────────────────────────────────────────

type instrumented struct {
	next     ports.LLMService
	provider string
}

// Instrument registra latencia y resultado de cada llamada en Prometheus.
func Instrument(next ports.LLMService, provider string) ports.LLMService {
	return &instrumented{next: next, provider: provider}
}

func (m *instrumented) Model() string { return m.next.Model() }

func (m *instrumented) Complete(ctx context.Context, in ports.ChatRequest) (string, error) {
	start := time.Now()
	text, err := m.next.Complete(ctx, in)
	metrics.ObserveLLM(m.provider, time.Since(start), err)
	return text, err
}
