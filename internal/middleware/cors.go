package middleware

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/localnerve/httpassert/internal/config"
)

// CORS writes the four Access-Control-Allow-* headers on every response and
// answers preflight requests with 204. Lists are joined with ", ".
func CORS(cfg *config.Config) fiber.Handler {
	headers := strings.Join(cfg.CORSHeaders, ", ")
	methods := strings.Join(cfg.CORSMethods, ", ")

	return func(c *fiber.Ctx) error {
		c.Set(fiber.HeaderAccessControlAllowOrigin, cfg.CORSOrigin)
		c.Set(fiber.HeaderAccessControlAllowCredentials, cfg.CORSCredentials)
		c.Set(fiber.HeaderAccessControlAllowHeaders, headers)
		c.Set(fiber.HeaderAccessControlAllowMethods, methods)

		if c.Method() == fiber.MethodOptions {
			return c.SendStatus(fiber.StatusNoContent)
		}

		return c.Next()
	}
}
