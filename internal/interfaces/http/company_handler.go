package http

import (
	"bytes"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/sm-customers/internal/application/dto"
	"github.com/jhoicas/sm-customers/internal/application/usecase"
	"github.com/jhoicas/sm-customers/internal/domain"
)

// CompanyHandler maneja las peticiones HTTP para el recurso Company.
type CompanyHandler struct {
	uc *usecase.CompanyUseCase
}

// NewCompanyHandler construye el handler inyectando el caso de uso.
func NewCompanyHandler(uc *usecase.CompanyUseCase) *CompanyHandler {
	return &CompanyHandler{uc: uc}
}

// Register godoc
// @Summary      Registrar empresa y, opcionalmente, su administrador
// @Tags         companies
// @Accept       json
// @Produce      json
// @Param        API_VERSION  header  string                     true  "Versión de la API"  default(V1)
// @Param        body         body    dto.CompanyAndUserRequest  true  "Empresa y usuario administrador"
// @Success      201  {object}  dto.CompanyAndUserResponse
// @Failure      400  {object}  dto.FormErrorResponse
// @Failure      409  {object}  dto.ErrorResponse
// @Router       /companies [post]
func (h *CompanyHandler) Register(c *fiber.Ctx) error {
	var in *dto.CompanyAndUserRequest
	if err := parseBody(c, &in); err != nil {
		return writeError(c, err)
	}
	out, err := h.uc.Register(c.UserContext(), in)
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out.Response)
}

// GetByCode godoc
// @Summary      Obtener empresa por código
// @Tags         companies
// @Produce      json
// @Param        API_VERSION  header  string  true  "Versión de la API"  default(V1)
// @Param        code         path    string  true  "Código de la empresa"
// @Success      200  {object}  dto.CompanyResource
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /companies/{code} [get]
func (h *CompanyHandler) GetByCode(c *fiber.Ctx) error {
	out, err := h.uc.GetByCode(c.UserContext(), c.Params("code"))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// List godoc
// @Summary      Listar empresas
// @Tags         companies
// @Produce      json
// @Param        API_VERSION  header  string  true  "Versión de la API"  default(V1)
// @Success      200  {array}  dto.CompanyResource
// @Router       /companies [get]
func (h *CompanyHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List(c.UserContext())
	if err != nil {
		return writeError(c, err)
	}
	if out == nil {
		out = []dto.CompanyResource{}
	}
	return c.JSON(out)
}

// Activate godoc
// @Summary      Activar empresa
// @Tags         companies
// @Produce      json
// @Param        API_VERSION  header  string  true  "Versión de la API"  default(V1)
// @Param        code         path    string  true  "Código de la empresa"
// @Param        token        path    string  true  "Token de activación"
// @Success      200  {object}  dto.CompanyResource
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /companies/{code}/activation/{token} [put]
func (h *CompanyHandler) Activate(c *fiber.Ctx) error {
	out, err := h.uc.Activate(c.UserContext(), c.Params("code"), c.Params("token"))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// parseBody decodifica el cuerpo JSON en out. Cuerpo vacío -> domain.ErrMissingPayload;
// un "null" deja out en nil y lo rechaza el caso de uso.
func parseBody(c *fiber.Ctx, out interface{}) error {
	if len(bytes.TrimSpace(c.Body())) == 0 {
		return domain.ErrMissingPayload
	}
	if err := c.BodyParser(out); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "cuerpo inválido")
	}
	return nil
}
