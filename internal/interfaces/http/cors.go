package http

import (
	"strings"

	"github.com/gofiber/fiber/v2"
)

// CORSConfig lista blanca de orígenes que se anuncia en Access-Control-Allow-Origin.
type CORSConfig struct {
	AllowedOrigins []string
}

const (
	corsAllowMethods = "GET, POST, PUT, DELETE, OPTIONS"
	corsAllowHeaders = "Content-Type, Authorization"
)

// CORS escribe las cuatro cabeceras CORS en toda respuesta (éxito, error o preflight) y
// responde OPTIONS con 204 sin cuerpo, sin llegar al enrutado.
// Las cabeceras se escriben antes de c.Next() para que el ErrorHandler las conserve.
func CORS(cfg CORSConfig) fiber.Handler {
	origins := strings.Join(cfg.AllowedOrigins, ",")
	return func(c *fiber.Ctx) error {
		c.Set(fiber.HeaderAccessControlAllowOrigin, origins)
		c.Set(fiber.HeaderAccessControlAllowMethods, corsAllowMethods)
		c.Set(fiber.HeaderAccessControlAllowHeaders, corsAllowHeaders)
		c.Set(fiber.HeaderAccessControlAllowCredentials, "true")

		if c.Method() == fiber.MethodOptions {
			c.Status(fiber.StatusNoContent)
			return nil
		}
		return c.Next()
	}
}
