package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/sm-customers/internal/application/usecase"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	CompanyUC *usecase.CompanyUseCase
	UserUC    *usecase.UserUseCase
}

// Router registra las rutas de la API. Todas exigen la cabecera API_VERSION.
func Router(app *fiber.App, deps RouterDeps) {
	companies := app.Group("/companies", RequireAPIVersion(APIVersionV1))
	companyHandler := NewCompanyHandler(deps.CompanyUC)
	companies.Get("/", companyHandler.List)
	companies.Post("/", companyHandler.Register)
	companies.Get("/:code", companyHandler.GetByCode)
	companies.Put("/:code/activation/:token", companyHandler.Activate)

	users := app.Group("/users", RequireAPIVersion(APIVersionV1))
	userHandler := NewUserHandler(deps.UserUC)
	users.Get("/", userHandler.List)
	users.Post("/", userHandler.Register)
	users.Get("/:username", userHandler.GetByUsername)
	users.Put("/:username/activation/:code", userHandler.Activate)
}
