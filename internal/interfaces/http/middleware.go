package http

import (
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/sm-customers/internal/application/dto"
	"github.com/jhoicas/sm-customers/pkg/logger"
)

// APIVersionHeader cabecera que selecciona la versión de la API.
const APIVersionHeader = "API_VERSION"

// APIVersionV1 única versión servida.
const APIVersionV1 = "V1"

// RequireAPIVersion responde 404 API_VERSION_NOT_SUPPORTED si la cabecera API_VERSION falta
// o no coincide exactamente (mayúsculas incluidas) con una de las versiones indicadas.
func RequireAPIVersion(versions ...string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		got := strings.TrimSpace(c.Get(APIVersionHeader))
		for _, v := range versions {
			if got == v {
				return c.Next()
			}
		}
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{
			Code:    CodeAPIVersionNotSupport,
			Message: "versión de API no soportada: '" + got + "'",
		})
	}
}

// RequestLogger registra método, ruta, estado, latencia e IP de cada petición.
// Los errores de la cadena se resuelven antes con el ErrorHandler para registrar el estado real.
func RequestLogger(log *logger.Logger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()
		if chainErr := c.Next(); chainErr != nil {
			if err := c.App().Config().ErrorHandler(c, chainErr); err != nil {
				_ = c.SendStatus(fiber.StatusInternalServerError)
			}
		}

		status := c.Response().StatusCode()
		evt := log.Info()
		switch {
		case status >= fiber.StatusInternalServerError:
			evt = log.Error()
		case status >= fiber.StatusBadRequest:
			evt = log.Warn()
		}
		evt.Str("method", c.Method()).
			Str("path", c.Path()).
			Int("status", status).
			Dur("latency", time.Since(start)).
			Str("ip", c.IP()).
			Msg("petición")
		return nil
	}
}
