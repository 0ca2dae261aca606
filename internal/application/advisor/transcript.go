package advisor

import (
	"fmt"
	"strings"
	"time"

	"github.com/girochef/girochef-api/internal/application/dto"
	"github.com/girochef/girochef-api/pkg/slug"
)

const separator = "=========================================="

// brTimestamp formato dd/mm/aaaa hh:mm:ss usado en los encabezados.
func brTimestamp(t time.Time) string { return t.Format("02/01/2006 15:04:05") }

// Transcript arma el texto plano del historial completo y el nombre de archivo.
// Devuelve "" si el historial está vacío.
func (uc *UseCase) Transcript(companyID, companyName string) (content, filename string) {
	msgs := uc.History(companyID)
	if len(msgs) == 0 {
		return "", ""
	}
	var b strings.Builder
	b.WriteString("HISTÓRICO COMPLETO DE CONSULTORIA - GIROCHEF AI\n")
	fmt.Fprintf(&b, "Data de exportação: %s\n", brTimestamp(uc.now()))
	fmt.Fprintf(&b, "Empresa: %s\n", companyName)
	b.WriteString(separator + "\n\n")
	for _, m := range msgs {
		role := "CHEF AI"
		if m.Role == dto.RoleUser {
			role = "VOCÊ"
		}
		fmt.Fprintf(&b, "%s:\n%s\n\n", role, m.Content)
		b.WriteString("------------------------------------------\n\n")
	}
	return b.String(), "consultoria_completa_" + slug.Make(companyName) + ".txt"
}

// SingleMessage arma el texto de un mensaje del historial por su posición.
// ok=false si la posición no existe.
func (uc *UseCase) SingleMessage(companyID, companyName string, index int) (content, filename string, ok bool) {
	msgs := uc.History(companyID)
	if index < 0 || index >= len(msgs) {
		return "", "", false
	}
	m := msgs[index]
	label, prefix := "CHEF AI (Insight)", "insight"
	if m.Role == dto.RoleUser {
		label, prefix = "VOCÊ (Pergunta)", "pergunta"
	}
	now := uc.now()
	var b strings.Builder
	b.WriteString("INSIGHT INDIVIDUAL - GIROCHEF AI\n")
	fmt.Fprintf(&b, "Data: %s\n", brTimestamp(now))
	fmt.Fprintf(&b, "Empresa: %s\n", companyName)
	b.WriteString(separator + "\n\n")
	fmt.Fprintf(&b, "%s:\n%s\n\n", label, m.Content)
	b.WriteString(separator + "\n")
	return b.String(), fmt.Sprintf("%s_chef_ai_%d.txt", prefix, now.UnixMilli()), true
}
