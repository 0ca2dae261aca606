package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/girochef/girochef-api/internal/application/dto"
	"github.com/girochef/girochef-api/internal/application/usecase"
)

// MenuHandler platos del menú, su clasificación y sus fichas técnicas.
type MenuHandler struct {
	uc *usecase.MenuUseCase
}

// NewMenuHandler construye el handler.
func NewMenuHandler(uc *usecase.MenuUseCase) *MenuHandler {
	return &MenuHandler{uc: uc}
}

// List godoc
// @Summary      Menú con cuadrante y promedios de margen y volumen
// @Tags         menu
// @Produce      json
// @Success      200  {object}  dto.MenuResponse
// @Router       /api/menu [get]
func (h *MenuHandler) List(c *fiber.Ctx) error {
	return c.JSON(h.uc.List(GetCompanyID(c)))
}

// GetByID GET /api/menu/:id
func (h *MenuHandler) GetByID(c *fiber.Ctx) error {
	out := h.uc.Get(GetCompanyID(c), c.Params("id"))
	if out == nil {
		return notFound(c, "prato não encontrado")
	}
	return c.JSON(out)
}

// Create godoc
// @Summary      Crear plato
// @Tags         menu
// @Accept       json
// @Produce      json
// @Param        body  body  dto.MenuItemRequest  true  "Plato"
// @Success      201   {object}  dto.MenuItemResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/menu [post]
func (h *MenuHandler) Create(c *fiber.Ctx) error {
	var in dto.MenuItemRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	out, err := h.uc.Create(c.UserContext(), GetCompanyID(c), in)
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// Update PUT /api/menu/:id
func (h *MenuHandler) Update(c *fiber.Ctx) error {
	var in dto.MenuItemRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	out, err := h.uc.Update(c.UserContext(), GetCompanyID(c), c.Params("id"), in)
	if err != nil {
		return writeError(c, err)
	}
	if out == nil {
		return notFound(c, "prato não encontrado")
	}
	return c.JSON(out)
}

// Delete DELETE /api/menu/:id
func (h *MenuHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.UserContext(), GetCompanyID(c), c.Params("id")); err != nil {
		return writeError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// AddIngredient POST /api/menu/:id/ingredients
func (h *MenuHandler) AddIngredient(c *fiber.Ctx) error {
	var in dto.IngredientRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	out, err := h.uc.AddIngredient(c.UserContext(), GetCompanyID(c), c.Params("id"), in)
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// UpdateIngredient PUT /api/menu/:id/ingredients/:ingredientId
func (h *MenuHandler) UpdateIngredient(c *fiber.Ctx) error {
	var in dto.IngredientRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	out, err := h.uc.UpdateIngredient(c.UserContext(), GetCompanyID(c), c.Params("id"), c.Params("ingredientId"), in)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// RemoveIngredient DELETE /api/menu/:id/ingredients/:ingredientId
func (h *MenuHandler) RemoveIngredient(c *fiber.Ctx) error {
	out, err := h.uc.RemoveIngredient(c.UserContext(), GetCompanyID(c), c.Params("id"), c.Params("ingredientId"))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}
