package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/girochef/girochef-api/internal/application/usecase"
)

// NotificationHandler alertas derivadas de stock bajo y desperdicio alto.
type NotificationHandler struct {
	uc *usecase.NotificationUseCase
}

// NewNotificationHandler construye el handler.
func NewNotificationHandler(uc *usecase.NotificationUseCase) *NotificationHandler {
	return &NotificationHandler{uc: uc}
}

// List GET /api/notifications → items + conteo de no leídas.
func (h *NotificationHandler) List(c *fiber.Ctx) error {
	return c.JSON(h.uc.List(GetCompanyID(c)))
}

// MarkRead POST /api/notifications/:id/read
func (h *NotificationHandler) MarkRead(c *fiber.Ctx) error {
	if !h.uc.MarkRead(GetCompanyID(c), c.Params("id")) {
		return notFound(c, "notificação não encontrada")
	}
	return c.JSON(h.uc.List(GetCompanyID(c)))
}

// MarkAllRead POST /api/notifications/read-all
func (h *NotificationHandler) MarkAllRead(c *fiber.Ctx) error {
	return c.JSON(h.uc.MarkAllRead(GetCompanyID(c)))
}
