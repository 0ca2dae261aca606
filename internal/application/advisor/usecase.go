// Package advisor arma los prompts del asesor IA a partir de la foto del estado de
// la empresa, llama al modelo y conserva el historial de chat por empresa.
package advisor

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"

	"github.com/girochef/girochef-api/internal/application/dto"
	"github.com/girochef/girochef-api/internal/application/ports"
	"github.com/girochef/girochef-api/internal/domain"
	"github.com/girochef/girochef-api/pkg/logger"
)

// SnapshotProvider entrega la foto del estado de una empresa.
type SnapshotProvider interface {
	Snapshot(companyID string) (*dto.SnapshotDTO, error)
}

// UseCase asesor IA. La llamada al modelo se hace fuera del lock del almacén:
// la foto se copia antes de armar el prompt.
type UseCase struct {
	llm       ports.LLMService
	snapshots SnapshotProvider
	timeout   time.Duration
	now       func() time.Time
	log       *logger.Logger
	md        goldmark.Markdown

	mu      sync.Mutex
	history map[string][]dto.ChatMessage
}

// Options parámetros opcionales del asesor.
type Options struct {
	Timeout time.Duration    // 0 = sin límite propio; rige el contexto del caller
	Now     func() time.Time // time.Now si es nil
}

// NewUseCase construye el asesor.
func NewUseCase(llm ports.LLMService, snapshots SnapshotProvider, log *logger.Logger, opts Options) *UseCase {
	if opts.Now == nil {
		opts.Now = time.Now
	}
	if log == nil {
		log = logger.Nop()
	}
	return &UseCase{
		llm:       llm,
		snapshots: snapshots,
		timeout:   opts.Timeout,
		now:       opts.Now,
		log:       log.Named("advisor"),
		md:        goldmark.New(goldmark.WithExtensions(extension.GFM)),
		history:   map[string][]dto.ChatMessage{},
	}
}

// Insight genera el resumen ejecutivo de la empresa y lo agrega al historial.
func (uc *UseCase) Insight(ctx context.Context, companyID string) (*dto.AdvisorReply, error) {
	snap, err := uc.snapshotJSON(companyID)
	if err != nil {
		return nil, err
	}
	reply := uc.complete(ctx, companyID, InsightPrompt(snap), emptyInsightReply)
	uc.append(companyID, reply.Message)
	return reply, nil
}

// Ask envía la pregunta del usuario con la foto de la empresa. La pregunta y la
// respuesta quedan en el historial.
func (uc *UseCase) Ask(ctx context.Context, companyID, question string) (*dto.AdvisorReply, error) {
	question = strings.TrimSpace(question)
	if question == "" {
		return nil, domain.InvalidInput("question es obligatorio")
	}
	snap, err := uc.snapshotJSON(companyID)
	if err != nil {
		return nil, err
	}
	uc.append(companyID, dto.ChatMessage{Role: dto.RoleUser, Content: question, Timestamp: uc.now()})
	reply := uc.complete(ctx, companyID, QuestionPrompt(question, snap), emptyAnswerReply)
	uc.append(companyID, reply.Message)
	return reply, nil
}

// History devuelve una copia del historial de la empresa.
func (uc *UseCase) History(companyID string) []dto.ChatMessage {
	uc.mu.Lock()
	defer uc.mu.Unlock()
	return append([]dto.ChatMessage{}, uc.history[companyID]...)
}

// Reset borra el historial de la empresa.
func (uc *UseCase) Reset(companyID string) {
	uc.mu.Lock()
	defer uc.mu.Unlock()
	delete(uc.history, companyID)
}

func (uc *UseCase) append(companyID string, msg dto.ChatMessage) {
	uc.mu.Lock()
	defer uc.mu.Unlock()
	uc.history[companyID] = append(uc.history[companyID], msg)
}

func (uc *UseCase) snapshotJSON(companyID string) (string, error) {
	snap, err := uc.snapshots.Snapshot(companyID)
	if err != nil {
		return "", fmt.Errorf("advisor: foto de la empresa: %w", err)
	}
	raw, err := json.Marshal(snap)
	if err != nil {
		return "", fmt.Errorf("advisor: serializar foto: %w", err)
	}
	return string(raw), nil
}

// complete llama al modelo una sola vez, sin reintentos. Cualquier error se
// registra y se reemplaza por FallbackReply; una respuesta vacía usa emptyReply.
func (uc *UseCase) complete(ctx context.Context, companyID, prompt, emptyReply string) *dto.AdvisorReply {
	if uc.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, uc.timeout)
		defer cancel()
	}

	fallback := false
	text, err := uc.llm.Complete(ctx, prompt)
	switch {
	case err != nil:
		uc.log.Warn().Err(fmt.Errorf("%w: %w", domain.ErrAIFailure, err)).Str("company_id", companyID).Msg("consulta al modelo fallida, se usa respuesta fija")
		text, fallback = FallbackReply, true
	case strings.TrimSpace(text) == "":
		text = emptyReply
	}

	return &dto.AdvisorReply{
		Message: dto.ChatMessage{
			Role:      dto.RoleAssistant,
			Content:   text,
			HTML:      uc.renderHTML(text),
			Timestamp: uc.now(),
		},
		Fallback: fallback,
	}
}

// renderHTML convierte la respuesta Markdown a HTML; ante un error devuelve "".
func (uc *UseCase) renderHTML(text string) string {
	var buf bytes.Buffer
	if err := uc.md.Convert([]byte(text), &buf); err != nil {
		uc.log.Debug().Err(err).Msg("markdown inválido")
		return ""
	}
	return buf.String()
}
