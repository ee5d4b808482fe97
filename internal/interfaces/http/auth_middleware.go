package http

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Usuarios-api/internal/application/dto"
	"github.com/jhoicas/Usuarios-api/pkg/jwt"
)

// Locals keys para el login y las autoridades en Fiber.
const (
	LocalLogin       = "login"
	LocalAuthorities = "authorities"
)

// AuthMiddleware valida el Bearer Token JWT y guarda login y autoridades en c.Locals.
func AuthMiddleware(jwtSecret string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		authHeader := c.Get(fiber.HeaderAuthorization)
		if authHeader == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "MISSING_TOKEN", Message: "Authorization header requerido"})
		}
		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "INVALID_TOKEN", Message: "formato: Bearer <token>"})
		}
		tokenString := strings.TrimSpace(parts[1])
		if tokenString == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "MISSING_TOKEN", Message: "token vacío"})
		}
		login, authorities, err := jwt.Parse(jwtSecret, tokenString)
		if err != nil {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "INVALID_TOKEN", Message: "token inválido o expirado"})
		}
		c.Locals(LocalLogin, login)
		c.Locals(LocalAuthorities, authorities)
		return c.Next()
	}
}

// GetLogin devuelve el login del contexto (después del middleware de auth).
func GetLogin(c *fiber.Ctx) string {
	s, _ := c.Locals(LocalLogin).(string)
	return s
}

// GetAuthorities devuelve las autoridades del contexto (después del middleware de auth).
func GetAuthorities(c *fiber.Ctx) []string {
	a, _ := c.Locals(LocalAuthorities).([]string)
	return a
}
