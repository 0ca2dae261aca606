package advisor

import "fmt"

// Textos fijos del asesor. El modelo responde en portugués, el idioma de la interfaz.
const (
	// FallbackReply se devuelve como respuesta normal cuando el modelo falla por
	// cualquier motivo (red, cuota, timeout o respuesta inválida).
	FallbackReply = "Desculpe, tive um problema ao analisar seus dados. Tente novamente em breve."

	emptyInsightReply = "Olá! Como posso ajudar sua operação hoje?"
	emptyAnswerReply  = "Não consegui processar sua dúvida."

	personaPrompt = `Aja como uma PM Sênior e Consultora de Negócios para Delivery.
Analise o seguinte contexto financeiro de uma operação de restaurante e dê insights estratégicos curtos, práticos e acionáveis sobre rentabilidade, engenharia de cardápio e fluxo de caixa.

Contexto: %s

Formate a resposta em Markdown, use bullet points e seja direto ao ponto.`
)

// InsightPrompt prompt del resumen ejecutivo sobre la foto JSON de la empresa.
func InsightPrompt(snapshotJSON string) string {
	return fmt.Sprintf(personaPrompt, "Dê um resumo executivo baseado nesses dados: "+snapshotJSON)
}

// QuestionPrompt prompt de una pregunta del usuario con la foto JSON como contexto.
func QuestionPrompt(question, snapshotJSON string) string {
	return fmt.Sprintf(personaPrompt, fmt.Sprintf("A pergunta do usuário é: %q. Use estes dados para responder: %s", question, snapshotJSON))
}
