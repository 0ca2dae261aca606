package ports

import "context"

// LLMService define el puerto de salida hacia el modelo de lenguaje del asesor.
// Cualquier adaptador (Gemini, Anthropic, fake de pruebas) implementa esta interfaz;
// la aplicación solo conoce este contrato.
type LLMService interface {
	// Complete envía un prompt de texto y devuelve la respuesta en texto plano
	// (normalmente Markdown). El contexto debe llevar un timeout.
	Complete(ctx context.Context, prompt string) (string, error)
}
