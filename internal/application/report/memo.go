package report

import (
	"strconv"
	"time"

	"github.com/cespare/xxhash/v2"
	"github.com/hashicorp/golang-lru/v2/expirable"

	"github.com/jhoicas/restocker-api/internal/application/ports"
)

// Tipos de llamada al modelo (parte de la llave de caché).
const (
	kindInsight  = "insight"
	kindQuestion = "question"
)

// Memo caché de respuestas del modelo. La llave es el hash del prompt completo, que ya
// incluye la tabla serializada y la pregunta: misma tabla + misma consulta = misma respuesta.
// Los errores nunca se guardan.
type Memo struct {
	cache *expirable.LRU[uint64, string]
}

// NewMemo construye la caché con tamaño máximo y TTL por entrada.
func NewMemo(size int, ttl time.Duration) *Memo {
	return &Memo{cache: expirable.NewLRU[uint64, string](size, nil, ttl)}
}

// MemoKey hash xxhash de (tipo, modelo, system, user) separados por un byte nulo.
func MemoKey(kind, model string, req ports.ChatRequest) uint64 {
	d := xxhash.New()
	for _, part := range []string{kind, model, req.System, req.User} {
		_, _ = d.WriteString(strconv.Itoa(len(part)))
		_, _ = d.WriteString("\x00")
		_, _ = d.WriteString(part)
	}
	return d.Sum64()
}

// Get respuesta guardada, si existe y no expiró.
func (m *Memo) Get(key uint64) (string, bool) {
	return m.cache.Get(key)
}

// Add guarda una respuesta exitosa.
func (m *Memo) Add(key uint64, text string) {
	m.cache.Add(key, text)
}

// Len entradas vigentes.
func (m *Memo) Len() int {
	return m.cache.Len()
}
