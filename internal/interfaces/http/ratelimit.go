package http

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/limiter"
)

// RateLimitWrite limita las escrituras (POST, PUT, DELETE) a limit por minuto por usuario,
// o por IP si no hay sesión. Las lecturas no cuentan. limit <= 0 desactiva el límite.
func RateLimitWrite(limit int) fiber.Handler {
	if limit <= 0 {
		return func(c *fiber.Ctx) error { return c.Next() }
	}
	return limiter.New(limiter.Config{
		Max:        limit,
		Expiration: time.Minute,
		Next: func(c *fiber.Ctx) bool {
			return c.Method() == fiber.MethodGet || c.Method() == fiber.MethodHead
		},
		KeyGenerator: func(c *fiber.Ctx) string {
			if u := GetCurrentUser(c); u.ID != "" {
				return u.ID
			}
			return c.IP()
		},
		LimitReached: func(c *fiber.Ctx) error {
			if IsHTMX(c) {
				NewHTMXResponse().Error("Demasiadas solicitudes, espere un momento").Apply(c)
			}
			return c.Status(fiber.StatusTooManyRequests).JSON(fiber.Map{"error": "too_many_requests"})
		},
	})
}
