package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/girochef/girochef-api/internal/application/dto"
	"github.com/girochef/girochef-api/internal/application/export"
	"github.com/girochef/girochef-api/internal/application/usecase"
)

// ShoppingHandler listas de compras manuales, sugerencia por stock bajo y exportación.
type ShoppingHandler struct {
	uc     *usecase.ShoppingUseCase
	export *export.UseCase
}

// NewShoppingHandler construye el handler.
func NewShoppingHandler(uc *usecase.ShoppingUseCase, exp *export.UseCase) *ShoppingHandler {
	return &ShoppingHandler{uc: uc, export: exp}
}

// List godoc
// @Summary      Listar listas de compras
// @Tags         shopping
// @Produce      json
// @Param        search  query  string  false  "Busca por nombre"
// @Success      200  {object}  dto.ListResponse[entity.ManualShoppingList]
// @Router       /api/shopping-lists [get]
func (h *ShoppingHandler) List(c *fiber.Ctx) error {
	return c.JSON(dto.NewList(h.uc.List(GetCompanyID(c), c.Query("search"))))
}

// Suggested godoc
// @Summary      Insumos en o por debajo del umbral de stock bajo
// @Tags         shopping
// @Produce      json
// @Success      200  {object}  dto.ListResponse[entity.Product]
// @Router       /api/shopping-lists/suggested [get]
func (h *ShoppingHandler) Suggested(c *fiber.Ctx) error {
	return c.JSON(dto.NewList(h.uc.Suggested(GetCompanyID(c))))
}

// GetByID GET /api/shopping-lists/:id
func (h *ShoppingHandler) GetByID(c *fiber.Ctx) error {
	out := h.uc.Get(GetCompanyID(c), c.Params("id"))
	if out == nil {
		return notFound(c, "lista não encontrada")
	}
	return c.JSON(out)
}

// Create godoc
// @Summary      Crear lista de compras
// @Description  Sin nombre usa "Lista de Compras - dd/mm/aaaa". Los ítems con product_id se
//               precargan desde el insumo y se omiten si ya hay uno con el mismo nombre.
// @Tags         shopping
// @Accept       json
// @Produce      json
// @Param        body  body  dto.ShoppingListRequest  true  "Lista"
// @Success      201   {object}  entity.ManualShoppingList
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/shopping-lists [post]
func (h *ShoppingHandler) Create(c *fiber.Ctx) error {
	var in dto.ShoppingListRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	out, err := h.uc.Create(c.UserContext(), GetCompanyID(c), in)
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// Update PUT /api/shopping-lists/:id
func (h *ShoppingHandler) Update(c *fiber.Ctx) error {
	var in dto.ShoppingListRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	out, err := h.uc.Update(c.UserContext(), GetCompanyID(c), c.Params("id"), in)
	if err != nil {
		return writeError(c, err)
	}
	if out == nil {
		return notFound(c, "lista não encontrada")
	}
	return c.JSON(out)
}

// Delete DELETE /api/shopping-lists/:id
func (h *ShoppingHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.UserContext(), GetCompanyID(c), c.Params("id")); err != nil {
		return writeError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// AddItem POST /api/shopping-lists/:id/items
func (h *ShoppingHandler) AddItem(c *fiber.Ctx) error {
	var in dto.ShoppingItemRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	out, err := h.uc.AddItem(c.UserContext(), GetCompanyID(c), c.Params("id"), in)
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// RemoveItem DELETE /api/shopping-lists/:id/items/:itemId
func (h *ShoppingHandler) RemoveItem(c *fiber.Ctx) error {
	out, err := h.uc.RemoveItem(c.UserContext(), GetCompanyID(c), c.Params("id"), c.Params("itemId"))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// Launch godoc
// @Summary      Precarga de insumo a partir de un ítem de la lista
// @Tags         shopping
// @Produce      json
// @Param        id      path  string  true  "ID de la lista"
// @Param        itemId  path  string  true  "ID del ítem"
// @Success      200  {object}  entity.ProductPrefill
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/shopping-lists/{id}/items/{itemId}/launch [post]
func (h *ShoppingHandler) Launch(c *fiber.Ctx) error {
	out, err := h.uc.Launch(GetCompanyID(c), c.Params("id"), c.Params("itemId"))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// Share godoc
// @Summary      Texto y enlace de WhatsApp de la lista
// @Tags         shopping
// @Produce      json
// @Param        id   path  string  true  "ID de la lista"
// @Success      200  {object}  dto.ShareResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/shopping-lists/{id}/share [get]
func (h *ShoppingHandler) Share(c *fiber.Ctx) error {
	out, err := h.export.Share(GetCompanyID(c), c.Params("id"))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// PDF GET /api/shopping-lists/:id/pdf
func (h *ShoppingHandler) PDF(c *fiber.Ctx) error {
	file, err := h.export.ShoppingListPDF(c.UserContext(), GetCompanyID(c), c.Params("id"))
	if err != nil {
		return writeError(c, err)
	}
	return sendFile(c, file.Name, file.ContentType, file.Data)
}
