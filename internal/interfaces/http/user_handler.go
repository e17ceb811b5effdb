package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/sm-customers/internal/application/dto"
	"github.com/jhoicas/sm-customers/internal/application/usecase"
)

// UserHandler maneja las peticiones HTTP para el recurso User.
type UserHandler struct {
	uc *usecase.UserUseCase
}

// NewUserHandler construye el handler inyectando el caso de uso.
func NewUserHandler(uc *usecase.UserUseCase) *UserHandler {
	return &UserHandler{uc: uc}
}

// Register godoc
// @Summary      Registrar usuario
// @Tags         users
// @Accept       json
// @Produce      json
// @Param        API_VERSION  header  string            true  "Versión de la API"  default(V1)
// @Param        body         body    dto.UserResource  true  "Datos del usuario"
// @Success      201  {object}  dto.UserResource
// @Failure      400  {object}  dto.FormErrorResponse
// @Failure      409  {object}  dto.ErrorResponse
// @Router       /users [post]
func (h *UserHandler) Register(c *fiber.Ctx) error {
	var in *dto.UserResource
	if err := parseBody(c, &in); err != nil {
		return writeError(c, err)
	}
	out, err := h.uc.Register(c.UserContext(), in)
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// GetByUsername godoc
// @Summary      Obtener usuario por username
// @Tags         users
// @Produce      json
// @Param        API_VERSION  header  string  true  "Versión de la API"  default(V1)
// @Param        username     path    string  true  "Username"
// @Success      200  {object}  dto.UserResource
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /users/{username} [get]
func (h *UserHandler) GetByUsername(c *fiber.Ctx) error {
	out, err := h.uc.GetByUsername(c.UserContext(), c.Params("username"))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// List godoc
// @Summary      Listar usuarios
// @Tags         users
// @Produce      json
// @Param        API_VERSION  header  string  true  "Versión de la API"  default(V1)
// @Success      200  {array}  dto.UserResource
// @Router       /users [get]
func (h *UserHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List(c.UserContext())
	if err != nil {
		return writeError(c, err)
	}
	if out == nil {
		out = []dto.UserResource{}
	}
	return c.JSON(out)
}

// Activate godoc
// @Summary      Activar usuario
// @Tags         users
// @Produce      json
// @Param        API_VERSION  header  string  true  "Versión de la API"  default(V1)
// @Param        username     path    string  true  "Username"
// @Param        code         path    string  true  "Clave de activación"
// @Success      200  {object}  dto.UserResource
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /users/{username}/activation/{code} [put]
func (h *UserHandler) Activate(c *fiber.Ctx) error {
	out, err := h.uc.Activate(c.UserContext(), c.Params("username"), c.Params("code"))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}
