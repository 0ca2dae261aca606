package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/girochef/girochef-api/internal/application/dto"
	"github.com/girochef/girochef-api/internal/application/export"
	"github.com/girochef/girochef-api/internal/application/usecase"
)

// TransactionHandler flujo de caja de la empresa resuelta.
type TransactionHandler struct {
	uc     *usecase.TransactionUseCase
	export *export.UseCase
}

// NewTransactionHandler construye el handler.
func NewTransactionHandler(uc *usecase.TransactionUseCase, exp *export.UseCase) *TransactionHandler {
	return &TransactionHandler{uc: uc, export: exp}
}

// List godoc
// @Summary      Listar transacciones (fecha descendente)
// @Tags         transactions
// @Produce      json
// @Param        search  query  string  false  "Busca en descripción y categoría"
// @Param        type    query  string  false  "inflow | outflow"
// @Success      200  {object}  dto.ListResponse[entity.Transaction]
// @Router       /api/transactions [get]
func (h *TransactionHandler) List(c *fiber.Ctx) error {
	var f dto.TransactionFilter
	if err := c.QueryParser(&f); err != nil {
		return invalidBody(c)
	}
	return c.JSON(dto.NewList(h.uc.List(GetCompanyID(c), f)))
}

// Create godoc
// @Summary      Registrar transacción
// @Tags         transactions
// @Accept       json
// @Produce      json
// @Param        body  body  dto.TransactionRequest  true  "Transacción"
// @Success      201   {object}  entity.Transaction
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/transactions [post]
func (h *TransactionHandler) Create(c *fiber.Ctx) error {
	var in dto.TransactionRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	out, err := h.uc.Create(c.UserContext(), GetCompanyID(c), in)
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// Update godoc
// @Summary      Editar transacción
// @Tags         transactions
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID"
// @Param        body  body  dto.TransactionRequest  true  "Transacción"
// @Success      200   {object}  entity.Transaction
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/transactions/{id} [put]
func (h *TransactionHandler) Update(c *fiber.Ctx) error {
	var in dto.TransactionRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	out, err := h.uc.Update(c.UserContext(), GetCompanyID(c), c.Params("id"), in)
	if err != nil {
		return writeError(c, err)
	}
	if out == nil {
		return notFound(c, "lançamento não encontrado")
	}
	return c.JSON(out)
}

// Delete elimina una transacción. DELETE /api/transactions/:id
func (h *TransactionHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.UserContext(), GetCompanyID(c), c.Params("id")); err != nil {
		return writeError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// Export godoc
// @Summary      Exportar flujo de caja
// @Tags         transactions
// @Produce      octet-stream
// @Param        format  query  string  false  "csv | xlsx | pdf"  default(csv)
// @Param        search  query  string  false  "Filtro de búsqueda"
// @Param        type    query  string  false  "inflow | outflow"
// @Success      200
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/transactions/export [get]
func (h *TransactionHandler) Export(c *fiber.Ctx) error {
	var f dto.TransactionFilter
	if err := c.QueryParser(&f); err != nil {
		return invalidBody(c)
	}
	file, err := h.export.CashFlow(c.UserContext(), GetCompanyID(c), c.Query("format"), f)
	if err != nil {
		return writeError(c, err)
	}
	return sendFile(c, file.Name, file.ContentType, file.Data)
}
