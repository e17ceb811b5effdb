package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/sm-customers/internal/application/dto"
	"github.com/jhoicas/sm-customers/internal/domain"
)

// Códigos de error de la API.
const (
	CodeValidation           = "VALIDATION"
	CodeMissingPayload       = "MISSING_PAYLOAD"
	CodeInvalidBody          = "INVALID_BODY"
	CodeConflict             = "CONFLICT"
	CodeVersionConflict      = "VERSION_CONFLICT"
	CodeNotFound             = "NOT_FOUND"
	CodeStoreFailure         = "STORE_FAILURE"
	CodeInternal             = "INTERNAL"
	CodeAPIVersionNotSupport = "API_VERSION_NOT_SUPPORTED"
)

// writeError traduce un error de dominio a su respuesta HTTP.
func writeError(c *fiber.Ctx, err error) error {
	var ve *domain.ValidationError
	if errors.As(err, &ve) {
		fields := make([]dto.FieldErrorResponse, 0, len(ve.Fields))
		for _, f := range ve.Fields {
			fields = append(fields, dto.FieldErrorResponse{Field: f.Field, Message: f.Message})
		}
		return c.Status(fiber.StatusBadRequest).JSON(dto.FormErrorResponse{
			Code:        CodeValidation,
			Message:     "validación fallida",
			ObjectName:  ve.Object,
			FieldErrors: fields,
		})
	}

	var fe *fiber.Error
	if errors.As(err, &fe) {
		status, code := fe.Code, CodeInternal
		switch fe.Code {
		case fiber.StatusNotFound:
			code = CodeNotFound
		case fiber.StatusBadRequest, fiber.StatusUnprocessableEntity:
			// un cuerpo ilegible es siempre 400, sea cual sea el Content-Type
			status, code = fiber.StatusBadRequest, CodeInvalidBody
		}
		return c.Status(status).JSON(dto.ErrorResponse{Code: code, Message: fe.Message})
	}

	var se *domain.StoreError
	switch {
	case errors.Is(err, domain.ErrMissingPayload):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: CodeMissingPayload, Message: err.Error()})
	case errors.Is(err, domain.ErrVersionConflict):
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: CodeVersionConflict, Message: err.Error()})
	case errors.Is(err, domain.ErrConflict):
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: CodeConflict, Message: err.Error()})
	case errors.Is(err, domain.ErrNotFound):
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: CodeNotFound, Message: err.Error()})
	case errors.As(err, &se):
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: CodeStoreFailure, Message: "error del almacén: " + se.Op})
	default:
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: CodeInternal, Message: "error interno"})
	}
}

// ErrorHandler respuesta JSON para los errores que llegan a Fiber (rutas inexistentes, panics, etc.).
func ErrorHandler(c *fiber.Ctx, err error) error {
	return writeError(c, err)
}
