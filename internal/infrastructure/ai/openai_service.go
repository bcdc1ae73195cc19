package ai

import (
	"context"
	"fmt"

	"github.com/tmc/langchaingo/llms"
	"github.com/tmc/langchaingo/llms/openai"

	"github.com/jhoicas/restocker-api/internal/application/ports"
)

// Verificar en tiempo de compilación que OpenAIService implementa LLMService.
var _ ports.LLMService = (*OpenAIService)(nil)

const (
	groqBaseURL   = "https://api.groq.com/openai/v1"
	openAIBaseURL = "https://api.openai.com/v1"
)

// OpenAIService adaptador para APIs compatibles con OpenAI chat-completions (Groq, OpenAI).
// Delegamos el protocolo en el cliente de langchaingo.
type OpenAIService struct {
	llm   llms.Model
	model string
}

// NewOpenAIService construye el adaptador contra baseURL (ej. https://api.groq.com/openai/v1).
func NewOpenAIService(apiKey, model, baseURL string) (*OpenAIService, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("AI: API key no configurada")
	}
	llm, err := openai.New(
		openai.WithToken(apiKey),
		openai.WithModel(model),
		openai.WithBaseURL(baseURL),
	)
	if err != nil {
		return nil, fmt.Errorf("AI: crear cliente OpenAI-compatible: %w", err)
	}
	return &OpenAIService{llm: llm, model: model}, nil
}

// Model identificador del modelo configurado.
func (s *OpenAIService) Model() string { return s.model }

// Complete envía un mensaje system y uno user; devuelve el contenido de la primera opción.
func (s *OpenAIService) Complete(ctx context.Context, in ports.ChatRequest) (string, error) {
	messages := make([]llms.MessageContent, 0, 2)
	if in.System != "" {
		messages = append(messages, llms.MessageContent{
			Role:  llms.ChatMessageTypeSystem,
			Parts: []llms.ContentPart{llms.TextContent{Text: in.System}},
		})
	}
	messages = append(messages, llms.MessageContent{
		Role:  llms.ChatMessageTypeHuman,
		Parts: []llms.ContentPart{llms.TextContent{Text: in.User}},
	})

	resp, err := s.llm.GenerateContent(ctx, messages)
	if err != nil {
		if ctx.Err() != nil {
			return "", fmt.Errorf("AI: timeout o cancelación: %w", ctx.Err())
		}
		return "", fmt.Errorf("AI: chat-completion fallido: %w", err)
	}
	if len(resp.Choices) == 0 || resp.Choices[0].Content == "" {
		return "", fmt.Errorf("AI: %w (%s)", errEmptyResponse, s.model)
	}
	return resp.Choices[0].Content, nil
}
