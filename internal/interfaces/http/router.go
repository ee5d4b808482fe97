package http

import (
	"context"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Usuarios-api/internal/application/dto"
	"github.com/jhoicas/Usuarios-api/internal/application/usecase"
	"github.com/jhoicas/Usuarios-api/pkg/logger"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	UsuariosUC *usecase.UsuariosUseCase
	Log        *logger.Logger
	AppName    string
	Pagination PaginationConfig
	JWTSecret  string                          // vacío = API sin autenticación
	Health     func(ctx context.Context) error // opcional: ping al almacén
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	app.Get("/health", func(c *fiber.Ctx) error {
		if deps.Health != nil {
			if err := deps.Health(c.UserContext()); err != nil {
				return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{"status": "down", "service": deps.AppName})
			}
		}
		return c.JSON(fiber.Map{"status": "ok", "service": deps.AppName})
	})

	api := app.Group("/api")
	if deps.JWTSecret != "" {
		api.Use(AuthMiddleware(deps.JWTSecret))
	}

	usuarios := api.Group("/usuarios")
	h := NewUsuariosHandler(deps.UsuariosUC, deps.Log, deps.AppName, deps.Pagination)
	usuarios.Post("/", h.Create)
	usuarios.Get("/", h.List)
	usuarios.Get("/:id", h.GetByID)
	usuarios.Put("/:id", h.Update)
	usuarios.Patch("/:id", h.PartialUpdate)
	usuarios.Delete("/:id", h.Delete)

	// PUT/PATCH sin id en la ruta
	usuarios.Put("/", methodNotAllowed)
	usuarios.Patch("/", methodNotAllowed)
}

func methodNotAllowed(c *fiber.Ctx) error {
	return c.Status(fiber.StatusMethodNotAllowed).JSON(dto.ErrorResponse{Code: "METHOD_NOT_ALLOWED", Message: "se requiere id en la ruta"})
}
