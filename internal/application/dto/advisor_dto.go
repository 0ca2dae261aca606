package dto

import "time"

// Roles del chat del asesor.
const (
	RoleUser      = "user"
	RoleAssistant = "assistant"
)

// AskRequest pregunta al asesor.
type AskRequest struct {
	Question string `json:"question"`
}

// ChatMessage mensaje del historial del asesor. HTML es el contenido Markdown renderizado.
type ChatMessage struct {
	Role      string    `json:"role"`
	Content   string    `json:"content"`
	HTML      string    `json:"html,omitempty"`
	Timestamp time.Time `json:"timestamp"`
}

// AdvisorReply respuesta del asesor. Fallback indica que el LLM falló y se devolvió el texto fijo.
type AdvisorReply struct {
	Message  ChatMessage `json:"message"`
	Fallback bool        `json:"fallback"`
}
