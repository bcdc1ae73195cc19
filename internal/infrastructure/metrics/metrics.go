// Package metrics expone los contadores Prometheus del servicio.
// Se registran en el registry por defecto; /metrics los publica vía promhttp.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/jhoicas/restocker-api/internal/application/ports"
)

// Verificar en tiempo de compilación que Recorder implementa ReportMetrics.
var _ ports.ReportMetrics = Recorder{}

const namespace = "restocker"

// Resultados posibles de una operación instrumentada.
const (
	ResultOK    = "ok"
	ResultError = "error"
)

var (
	llmRequests = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "llm",
		Name:      "requests_total",
		Help:      "Llamadas al proveedor de chat-completion por proveedor y resultado.",
	}, []string{"provider", "result"})

	llmDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: namespace,
		Subsystem: "llm",
		Name:      "request_duration_seconds",
		Help:      "Latencia de las llamadas al proveedor de chat-completion.",
		Buckets:   []float64{0.25, 0.5, 1, 2, 5, 10, 20, 30, 60},
	}, []string{"provider"})

	memoLookups = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "llm",
		Name:      "memo_lookups_total",
		Help:      "Consultas a la caché de respuestas por tipo (insight/question) y resultado (hit/miss).",
	}, []string{"kind", "result"})

	uploads = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "reports",
		Name:      "uploads_total",
		Help:      "Archivos de inventario subidos por modo y resultado.",
	}, []string{"mode", "result"})

	uploadRows = promauto.NewHistogram(prometheus.HistogramOpts{
		Namespace: namespace,
		Subsystem: "reports",
		Name:      "upload_rows",
		Help:      "Filas por archivo cargado.",
		Buckets:   prometheus.ExponentialBuckets(1, 4, 8),
	})
)

// ObserveLLM registra una llamada al proveedor.
func ObserveLLM(provider string, elapsed time.Duration, err error) {
	result := ResultOK
	if err != nil {
		result = ResultError
	}
	llmRequests.WithLabelValues(provider, result).Inc()
	llmDuration.WithLabelValues(provider).Observe(elapsed.Seconds())
}

// Recorder adaptador de ports.ReportMetrics sobre los colectores del paquete.
type Recorder struct{}

// ObserveMemo registra un acierto o fallo de la caché de respuestas.
func (Recorder) ObserveMemo(kind string, hit bool) {
	result := "miss"
	if hit {
		result = "hit"
	}
	memoLookups.WithLabelValues(kind, result).Inc()
}

// ObserveUpload registra una carga de archivo.
func (Recorder) ObserveUpload(mode string, rows int, err error) {
	if err != nil {
		uploads.WithLabelValues(mode, ResultError).Inc()
		return
	}
	uploads.WithLabelValues(mode, ResultOK).Inc()
	uploadRows.Observe(float64(rows))
}
