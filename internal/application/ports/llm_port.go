package ports

import "context"

// ChatRequest una petición de chat-completion: un mensaje system y un mensaje user.
type ChatRequest struct {
	System string
	User   string
}

// LLMService define el puerto de salida hacia el proveedor de chat-completion.
// Cualquier adaptador (Groq/OpenAI, Anthropic, Gemini, mock) debe implementar esta interfaz.
// La aplicación solo conoce este contrato, no la implementación concreta.
type LLMService interface {
	// Complete envía la petición y devuelve el texto de la respuesta sin modificar.
	// El contexto debe llevar un timeout para evitar bloqueos en llamadas externas.
	Complete(ctx context.Context, req ChatRequest) (string, error)

	// Model identificador fijo del modelo usado (forma parte de la llave de caché).
	Model() string
}
