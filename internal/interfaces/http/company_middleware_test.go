package http_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/girochef/girochef-api/internal/application/store"
	"github.com/girochef/girochef-api/internal/application/usecase"
	"github.com/girochef/girochef-api/internal/infrastructure/memory"
	apphttp "github.com/girochef/girochef-api/internal/interfaces/http"
	"github.com/girochef/girochef-api/pkg/logger"
)

// ──────────────────────────────────────────────────────────────────────────────
// Helpers de test
// ──────────────────────────────────────────────────────────────────────────────

// buildMiddlewareApp construye una aplicación Fiber mínima con CompanyMiddleware y un
// handler dummy que devuelve la empresa resuelta.
func buildMiddlewareApp(t *testing.T) *fiber.App {
	t.Helper()
	s := store.New(memory.NewKVStore(), logger.Nop(), store.Options{
		KeyPrefix: "girochef_",
		Now:       func() time.Time { return time.Date(2025, 12, 31, 12, 0, 0, 0, time.UTC) },
	})
	s.Load(context.Background())

	app := fiber.New()
	app.Get("/scoped",
		apphttp.CompanyMiddleware(usecase.NewCompanyUseCase(s)),
		func(c *fiber.Ctx) error {
			return c.JSON(fiber.Map{
				"id":   apphttp.GetCompanyID(c),
				"name": apphttp.GetCompanyName(c),
			})
		},
	)
	return app
}

func resolve(t *testing.T, app *fiber.App, target, header string) map[string]string {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, target, nil)
	if header != "" {
		req.Header.Set(apphttp.HeaderCompanyID, header)
	}
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var body map[string]string
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	return body
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests CompanyMiddleware
// ──────────────────────────────────────────────────────────────────────────────

// Sin cabecera se usa la empresa activa.
func TestCompanyMiddleware_SinCabeceraUsaActiva(t *testing.T) {
	body := resolve(t, buildMiddlewareApp(t), "/scoped", "")
	assert.Equal(t, "1", body["id"])
	assert.Equal(t, "Burger Lab", body["name"])
}

// La cabecera selecciona la partición.
func TestCompanyMiddleware_CabeceraSeleccionaEmpresa(t *testing.T) {
	body := resolve(t, buildMiddlewareApp(t), "/scoped", "2")
	assert.Equal(t, "2", body["id"])
	assert.Equal(t, "Sushi Zen", body["name"])
}

// El query param sirve cuando no hay cabecera (descargas desde el navegador).
func TestCompanyMiddleware_QueryParam(t *testing.T) {
	body := resolve(t, buildMiddlewareApp(t), "/scoped?company_id=3", "")
	assert.Equal(t, "3", body["id"])
}

// Una empresa inexistente cae en la activa.
func TestCompanyMiddleware_EmpresaInexistenteUsaActiva(t *testing.T) {
	body := resolve(t, buildMiddlewareApp(t), "/scoped", "no-existe")
	assert.Equal(t, "1", body["id"])
}
