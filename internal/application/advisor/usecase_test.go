package advisor_test

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/girochef/girochef-api/internal/application/advisor"
	"github.com/girochef/girochef-api/internal/application/dto"
	"github.com/girochef/girochef-api/internal/domain"
	"github.com/girochef/girochef-api/internal/domain/entity"
	"github.com/girochef/girochef-api/pkg/logger"
)

// fakeLLM registra los prompts recibidos y responde con reply/err.
type fakeLLM struct {
	prompts []string
	reply   string
	err     error
	wait    time.Duration
}

func (f *fakeLLM) Complete(ctx context.Context, prompt string) (string, error) {
	f.prompts = append(f.prompts, prompt)
	if f.wait > 0 {
		select {
		case <-time.After(f.wait):
		case <-ctx.Done():
			return "", ctx.Err()
		}
	}
	return f.reply, f.err
}

type fakeSnapshots struct{}

func (fakeSnapshots) Snapshot(companyID string) (*dto.SnapshotDTO, error) {
	if companyID != "1" {
		return nil, domain.ErrNotFound
	}
	return &dto.SnapshotDTO{Company: entity.Company{ID: "1", Name: "Burger Lab"}}, nil
}

var fixedNow = time.Date(2025, 12, 31, 14, 30, 0, 0, time.UTC)

func newAdvisor(llm *fakeLLM, timeout time.Duration) *advisor.UseCase {
	return advisor.NewUseCase(llm, fakeSnapshots{}, logger.Nop(), advisor.Options{
		Timeout: timeout,
		Now:     func() time.Time { return fixedNow },
	})
}

func TestInsight_PromptConFoto(t *testing.T) {
	llm := &fakeLLM{reply: "- **Margem** saudável"}
	uc := newAdvisor(llm, 0)

	reply, err := uc.Insight(context.Background(), "1")
	require.NoError(t, err)

	require.Len(t, llm.prompts, 1)
	assert.Contains(t, llm.prompts[0], "Dê um resumo executivo baseado nesses dados: {")
	assert.Contains(t, llm.prompts[0], `"Burger Lab"`)
	assert.False(t, reply.Fallback)
	assert.Equal(t, "- **Margem** saudável", reply.Message.Content)
	assert.Contains(t, reply.Message.HTML, "<strong>Margem</strong>")
	assert.Len(t, uc.History("1"), 1)
}

func TestAsk_GuardaPreguntaYRespuesta(t *testing.T) {
	llm := &fakeLLM{reply: "Reduza o desperdício de carne."}
	uc := newAdvisor(llm, 0)

	_, err := uc.Ask(context.Background(), "1", "Como melhorar o lucro?")
	require.NoError(t, err)

	assert.Contains(t, llm.prompts[0], `A pergunta do usuário é: "Como melhorar o lucro?"`)
	hist := uc.History("1")
	require.Len(t, hist, 2)
	assert.Equal(t, dto.RoleUser, hist[0].Role)
	assert.Equal(t, dto.RoleAssistant, hist[1].Role)
}

func TestAsk_PreguntaVacia(t *testing.T) {
	llm := &fakeLLM{}
	_, err := newAdvisor(llm, 0).Ask(context.Background(), "1", "   ")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
	assert.Empty(t, llm.prompts)
}

func TestAsk_FalloDelModeloDevuelveRespuestaFija(t *testing.T) {
	uc := newAdvisor(&fakeLLM{err: errors.New("quota exceeded")}, 0)

	reply, err := uc.Ask(context.Background(), "1", "Oi?")
	require.NoError(t, err)

	assert.True(t, reply.Fallback)
	assert.Equal(t, advisor.FallbackReply, reply.Message.Content)
}

func TestAsk_TimeoutDevuelveRespuestaFija(t *testing.T) {
	uc := newAdvisor(&fakeLLM{reply: "tarde", wait: time.Second}, 10*time.Millisecond)

	reply, err := uc.Ask(context.Background(), "1", "Oi?")
	require.NoError(t, err)
	assert.True(t, reply.Fallback)
}

func TestInsight_RespuestaVacia(t *testing.T) {
	reply, err := newAdvisor(&fakeLLM{reply: "  "}, 0).Insight(context.Background(), "1")
	require.NoError(t, err)
	assert.False(t, reply.Fallback)
	assert.Equal(t, "Olá! Como posso ajudar sua operação hoje?", reply.Message.Content)
}

func TestInsight_EmpresaInexistente(t *testing.T) {
	_, err := newAdvisor(&fakeLLM{}, 0).Insight(context.Background(), "zz")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestTranscript(t *testing.T) {
	uc := newAdvisor(&fakeLLM{reply: "Resposta"}, 0)
	_, err := uc.Ask(context.Background(), "1", "Pergunta")
	require.NoError(t, err)

	content, filename := uc.Transcript("1", "Burger Lab")

	assert.Equal(t, "consultoria_completa_burger_lab.txt", filename)
	assert.True(t, strings.HasPrefix(content, "HISTÓRICO COMPLETO DE CONSULTORIA - GIROCHEF AI\n"))
	assert.Contains(t, content, "Data de exportação: 31/12/2025 14:30:00\n")
	assert.Contains(t, content, "Empresa: Burger Lab\n")
	assert.Contains(t, content, "VOCÊ:\nPergunta\n\n")
	assert.Contains(t, content, "CHEF AI:\nResposta\n\n")

	uc.Reset("1")
	content, _ = uc.Transcript("1", "Burger Lab")
	assert.Empty(t, content)
}

func TestSingleMessage(t *testing.T) {
	uc := newAdvisor(&fakeLLM{reply: "Resposta"}, 0)
	_, err := uc.Ask(context.Background(), "1", "Pergunta")
	require.NoError(t, err)

	content, filename, ok := uc.SingleMessage("1", "Burger Lab", 1)
	require.True(t, ok)
	assert.Equal(t, "insight_chef_ai_1767191400000.txt", filename)
	assert.Contains(t, content, "CHEF AI (Insight):\nResposta\n\n")

	_, _, ok = uc.SingleMessage("1", "Burger Lab", 5)
	assert.False(t, ok)
}
