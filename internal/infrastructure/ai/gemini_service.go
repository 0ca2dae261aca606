package ai

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"google.golang.org/genai"

	"github.com/girochef/girochef-api/internal/application/ports"
)

// Verificar en tiempo de compilación que GeminiService implementa LLMService.
var _ ports.LLMService = (*GeminiService)(nil)

// ErrNoAPIKey la credencial del proveedor no está configurada.
var ErrNoAPIKey = errors.New("AI: API key no configurada")

// GeminiService adaptador que implementa LLMService con el SDK oficial de Gemini.
type GeminiService struct {
	client *genai.Client
	model  string
}

// NewGeminiService construye el adaptador. model suele ser "gemini-2.0-flash".
// Si apiKey está vacío no se crea cliente y las llamadas devuelven ErrNoAPIKey.
func NewGeminiService(ctx context.Context, apiKey, model string) (*GeminiService, error) {
	s := &GeminiService{model: model}
	if apiKey == "" {
		return s, nil
	}
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("AI: crear cliente Gemini: %w", err)
	}
	s.client = client
	return s, nil
}

// Complete envía el prompt como un único turno de usuario y devuelve el texto de la respuesta.
func (s *GeminiService) Complete(ctx context.Context, prompt string) (string, error) {
	if s.client == nil {
		return "", fmt.Errorf("%w: GEMINI_API_KEY", ErrNoAPIKey)
	}
	resp, err := s.client.Models.GenerateContent(ctx, s.model, genai.Text(prompt), &genai.GenerateContentConfig{
		Temperature: genai.Ptr[float32](0.7),
	})
	if err != nil {
		if ctx.Err() != nil {
			return "", fmt.Errorf("AI: timeout o cancelación: %w", ctx.Err())
		}
		return "", fmt.Errorf("AI: Gemini: %w", err)
	}
	text := strings.TrimSpace(resp.Text())
	if text == "" {
		return "", fmt.Errorf("AI: Gemini devolvió respuesta vacía")
	}
	return text, nil
}
