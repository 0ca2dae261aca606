package http

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/girochef/girochef-api/internal/application/usecase"
)

// HeaderCompanyID cabecera con la empresa sobre la que opera la petición.
const HeaderCompanyID = "X-Company-ID"

// Locals keys para la empresa resuelta en Fiber.
const (
	LocalCompanyID   = "company_id"
	LocalCompanyName = "company_name"
)

// CompanyMiddleware resuelve la empresa de la petición: X-Company-ID (o ?company_id=)
// si corresponde a una empresa existente; si no, la empresa activa. Carga ID y nombre
// en c.Locals. No hay autenticación: la empresa es solo una partición de datos.
func CompanyMiddleware(companies *usecase.CompanyUseCase) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id := strings.TrimSpace(c.Get(HeaderCompanyID))
		if id == "" {
			id = strings.TrimSpace(c.Query("company_id"))
		}
		company := companies.Resolve(id)
		c.Locals(LocalCompanyID, company.ID)
		c.Locals(LocalCompanyName, company.Name)
		return c.Next()
	}
}

// GetCompanyID devuelve el CompanyID del contexto (después de CompanyMiddleware).
func GetCompanyID(c *fiber.Ctx) string {
	v := c.Locals(LocalCompanyID)
	if v == nil {
		return ""
	}
	s, _ := v.(string)
	return s
}

// GetCompanyName devuelve el nombre de la empresa resuelta.
func GetCompanyName(c *fiber.Ctx) string {
	s, _ := c.Locals(LocalCompanyName).(string)
	return s
}
