package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/girochef/girochef-api/internal/application/dto"
	"github.com/girochef/girochef-api/internal/application/inventory"
)

// InventoryHandler maneja las salidas de stock, el desperdicio por insumo y la
// sugerencia de reposición.
type InventoryHandler struct {
	outputs       *inventory.OutputUseCase
	replenishment *inventory.ReplenishmentUseCase
}

// NewInventoryHandler construye el handler.
func NewInventoryHandler(outputs *inventory.OutputUseCase, replenishment *inventory.ReplenishmentUseCase) *InventoryHandler {
	return &InventoryHandler{outputs: outputs, replenishment: replenishment}
}

// ListOutputs godoc
// @Summary      Listar salidas de stock (más recientes primero)
// @Tags         outputs
// @Produce      json
// @Param        search  query  string  false  "Busca en insumo y motivo"
// @Success      200  {object}  dto.ListResponse[entity.ProductOutput]
// @Router       /api/outputs [get]
func (h *InventoryHandler) ListOutputs(c *fiber.Ctx) error {
	return c.JSON(dto.NewList(h.outputs.List(GetCompanyID(c), c.Query("search"))))
}

// RegisterOutput godoc
// @Summary      Registrar salida de stock
// @Description  Descuenta la cantidad del insumo (nunca por debajo de cero) y guarda el costo
//               estimado. Con insumo inexistente o cantidad <= 0 no aplica nada (applied=false).
// @Tags         outputs
// @Accept       json
// @Produce      json
// @Param        body  body  dto.OutputRequest  true  "product_id, quantity, reason (sale|waste|internal_use|expiry|other), date"
// @Success      201   {object}  dto.OutputResult
// @Success      200   {object}  dto.OutputResult  "applied=false"
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/outputs [post]
func (h *InventoryHandler) RegisterOutput(c *fiber.Ctx) error {
	var in dto.OutputRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	res, err := h.outputs.Register(c.UserContext(), GetCompanyID(c), in)
	if err != nil {
		return writeError(c, err)
	}
	if !res.Applied {
		return c.JSON(res)
	}
	return c.Status(fiber.StatusCreated).JSON(res)
}

// EditOutput godoc
// @Summary      Editar salida de stock
// @Description  Devuelve la cantidad anterior al insumo original y descuenta la nueva del
//               insumo destino, sin piso en cero.
// @Tags         outputs
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID de la salida"
// @Param        body  body  dto.OutputRequest  true  "Nuevos datos"
// @Success      200   {object}  dto.OutputResult
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/outputs/{id} [put]
func (h *InventoryHandler) EditOutput(c *fiber.Ctx) error {
	var in dto.OutputRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	res, err := h.outputs.Edit(c.UserContext(), GetCompanyID(c), c.Params("id"), in)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(res)
}

// DeleteOutput elimina una salida y devuelve la cantidad al insumo.
// DELETE /api/outputs/:id
func (h *InventoryHandler) DeleteOutput(c *fiber.Ctx) error {
	res, err := h.outputs.Delete(c.UserContext(), GetCompanyID(c), c.Params("id"))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(res)
}

// WasteByProduct GET /api/outputs/waste
func (h *InventoryHandler) WasteByProduct(c *fiber.Ctx) error {
	return c.JSON(dto.NewList(h.outputs.WasteByProduct(GetCompanyID(c))))
}

// GetReplenishmentList godoc
// @Summary      Lista de reposición sugerida
// @Description  Insumos en o por debajo del umbral de stock bajo, con cantidad sugerida para
//               llegar al stock ideal y consumo/desperdicio de los últimos 90 días.
// @Tags         inventory
// @Produce      json
// @Success      200  {object}  dto.ListResponse[dto.ReplenishmentSuggestionDTO]
// @Router       /api/inventory/replenishment [get]
func (h *InventoryHandler) GetReplenishmentList(c *fiber.Ctx) error {
	return c.JSON(dto.NewList(h.replenishment.GenerateReplenishmentList(GetCompanyID(c))))
}
