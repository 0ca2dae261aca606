package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/girochef/girochef-api/internal/application/advisor"
	"github.com/girochef/girochef-api/internal/application/dto"
	"github.com/girochef/girochef-api/internal/application/export"
)

// AIHandler maneja los endpoints del asesor IA (Chef AI).
type AIHandler struct {
	uc *advisor.UseCase
}

// NewAIHandler construye el handler.
func NewAIHandler(uc *advisor.UseCase) *AIHandler {
	return &AIHandler{uc: uc}
}

// Insight godoc
// @Summary      Resumen ejecutivo de la empresa generado por IA
// @Description  Envía al modelo la foto del estado de la empresa (menú, insumos, salidas e
//               indicadores). Si el modelo falla o excede el timeout se devuelve un texto fijo
//               con fallback=true; nunca se responde con error por fallas del modelo.
// @Tags         advisor
// @Produce      json
// @Success      200  {object}  dto.AdvisorReply
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/advisor/insight [post]
func (h *AIHandler) Insight(c *fiber.Ctx) error {
	out, err := h.uc.Insight(c.UserContext(), GetCompanyID(c))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// Ask godoc
// @Summary      Pregunta libre al asesor IA
// @Tags         advisor
// @Accept       json
// @Produce      json
// @Param        body  body  dto.AskRequest  true  "question (obligatorio)"
// @Success      200   {object}  dto.AdvisorReply
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/advisor/ask [post]
func (h *AIHandler) Ask(c *fiber.Ctx) error {
	var req dto.AskRequest
	if err := c.BodyParser(&req); err != nil {
		return invalidBody(c)
	}
	out, err := h.uc.Ask(c.UserContext(), GetCompanyID(c), req.Question)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// History GET /api/advisor/history
func (h *AIHandler) History(c *fiber.Ctx) error {
	return c.JSON(dto.NewList(h.uc.History(GetCompanyID(c))))
}

// Reset DELETE /api/advisor/history
func (h *AIHandler) Reset(c *fiber.Ctx) error {
	h.uc.Reset(GetCompanyID(c))
	return c.SendStatus(fiber.StatusNoContent)
}

// Transcript GET /api/advisor/transcript → historial completo en texto plano.
func (h *AIHandler) Transcript(c *fiber.Ctx) error {
	content, name := h.uc.Transcript(GetCompanyID(c), GetCompanyName(c))
	if content == "" {
		return notFound(c, "nenhuma conversa para exportar")
	}
	return sendFile(c, name, export.ContentTypeText, []byte(content))
}

// Message GET /api/advisor/history/:index/export → un mensaje del historial.
func (h *AIHandler) Message(c *fiber.Ctx) error {
	idx, err := c.ParamsInt("index")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "índice inválido"})
	}
	content, name, ok := h.uc.SingleMessage(GetCompanyID(c), GetCompanyName(c), idx)
	if !ok {
		return notFound(c, "mensagem não encontrada")
	}
	return sendFile(c, name, export.ContentTypeText, []byte(content))
}
