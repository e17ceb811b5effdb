package http_test

import (
	"bytes"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/sm-customers/internal/application/dto"
	apphttp "github.com/jhoicas/sm-customers/internal/interfaces/http"
	"github.com/jhoicas/sm-customers/pkg/logger"
)

// buildVersionedApp aplicación mínima con RequireAPIVersion delante de un handler dummy.
func buildVersionedApp() *fiber.App {
	app := fiber.New(fiber.Config{ErrorHandler: apphttp.ErrorHandler})
	app.Get("/versioned", apphttp.RequireAPIVersion(apphttp.APIVersionV1), func(c *fiber.Ctx) error {
		return c.SendStatus(fiber.StatusOK)
	})
	return app
}

func versionRequest(t *testing.T, app *fiber.App, version string) *http.Response {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, "/versioned", nil)
	if version != "" {
		req.Header.Set(apphttp.APIVersionHeader, version)
	}
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

func TestRequireAPIVersion_V1Pasa(t *testing.T) {
	resp := versionRequest(t, buildVersionedApp(), "V1")
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
}

func TestRequireAPIVersion_SinCabeceraOVersionDesconocida_404(t *testing.T) {
	for _, v := range []string{"", "V2", "1", "v1", "V1.0"} {
		t.Run("version="+v, func(t *testing.T) {
			resp := versionRequest(t, buildVersionedApp(), v)
			require.Equal(t, fiber.StatusNotFound, resp.StatusCode)

			var out dto.ErrorResponse
			decode(t, resp, &out)
			assert.Equal(t, apphttp.CodeAPIVersionNotSupport, out.Code)
		})
	}
}

func TestRouter_RutasSinVersion_404(t *testing.T) {
	env := buildTestApp(t)

	req := httptest.NewRequest(http.MethodGet, "/companies", nil)
	resp, err := env.app.Test(req, -1)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
}

func TestRequestLogger_RegistraEstadoDelErrorHandler(t *testing.T) {
	var buf bytes.Buffer
	log := logger.New(logger.Config{Env: "test", Level: "info", Output: &buf})

	app := fiber.New(fiber.Config{ErrorHandler: apphttp.ErrorHandler})
	app.Use(apphttp.RequestLogger(log))
	app.Get("/boom", func(c *fiber.Ctx) error { return errors.New("fallo inesperado") })
	app.Get("/ok", func(c *fiber.Ctx) error { return c.SendStatus(fiber.StatusNoContent) })

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/boom", nil), -1)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusInternalServerError, resp.StatusCode)
	assert.Contains(t, buf.String(), `"status":500`)
	assert.Contains(t, buf.String(), `"level":"error"`)

	buf.Reset()
	resp, err = app.Test(httptest.NewRequest(http.MethodGet, "/ok", nil), -1)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusNoContent, resp.StatusCode)
	assert.Contains(t, buf.String(), `"path":"/ok"`)
	assert.Contains(t, buf.String(), `"status":204`)
}

func TestErrorHandler_CuerpoNoProcesable_400(t *testing.T) {
	app := fiber.New(fiber.Config{ErrorHandler: apphttp.ErrorHandler})
	app.Post("/parse", func(c *fiber.Ctx) error { return fiber.ErrUnprocessableEntity })

	resp, err := app.Test(httptest.NewRequest(http.MethodPost, "/parse", nil), -1)
	require.NoError(t, err)
	require.Equal(t, fiber.StatusBadRequest, resp.StatusCode)

	var out dto.ErrorResponse
	decode(t, resp, &out)
	assert.Equal(t, apphttp.CodeInvalidBody, out.Code)
}
