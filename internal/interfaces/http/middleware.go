package http

import (
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/google/uuid"

	"github.com/jhoicas/Usuarios-api/internal/application/dto"
)

// localRequestID clave de c.Locals donde requestid deja el identificador.
const localRequestID = "requestid"

// RequestID asigna un UUID por petición (header X-Request-ID) salvo que el cliente ya envíe uno.
func RequestID() fiber.Handler {
	return requestid.New(requestid.Config{
		Header:     fiber.HeaderXRequestID,
		Generator:  uuid.NewString,
		ContextKey: localRequestID,
	})
}

// GetRequestID devuelve el identificador de la petición actual.
func GetRequestID(c *fiber.Ctx) string {
	if s, ok := c.Locals(localRequestID).(string); ok {
		return s
	}
	return c.GetRespHeader(fiber.HeaderXRequestID)
}

// CORS permite los orígenes indicados (separados por coma) y expone los headers de alerta
// (X-<appName>-alert, -error, -params) y de paginación.
func CORS(appName, allowedOrigins string) fiber.Handler {
	return cors.New(cors.Config{
		AllowOrigins: allowedOrigins,
		AllowHeaders: "Origin, Content-Type, Accept, Authorization",
		AllowMethods: "GET,POST,PUT,PATCH,DELETE,OPTIONS",
		ExposeHeaders: strings.Join([]string{
			fiber.HeaderAuthorization,
			"Link",
			"X-Total-Count",
			fiber.HeaderXRequestID,
			"X-" + appName + "-alert",
			"X-" + appName + "-error",
			"X-" + appName + "-params",
		}, ","),
	})
}

// RateLimit limita a maxRequests peticiones por IP en cada ventana.
func RateLimit(maxRequests int, window time.Duration) fiber.Handler {
	return limiter.New(limiter.Config{
		Max:        maxRequests,
		Expiration: window,
		LimitReached: func(c *fiber.Ctx) error {
			return c.Status(fiber.StatusTooManyRequests).JSON(dto.ErrorResponse{Code: "RATE_LIMITED", Message: "demasiadas peticiones"})
		},
	})
}
