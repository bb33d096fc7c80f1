package middleware

import (
	"errors"
	"fmt"

	"github.com/gofiber/fiber/v2"
	"github.com/localnerve/httpassert/internal/services"
	"github.com/localnerve/httpassert/internal/types"
	"gorm.io/gorm"
)

// AuthSession requires a session cookie naming a stored session. A missing
// cookie is 403, an unknown session is 401.
func AuthSession(db *gorm.DB, cookieName string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		token := c.Cookies(cookieName)
		if token == "" {
			return &types.CustomError{
				Code:    fiber.StatusForbidden,
				Message: fmt.Sprintf("cookie %q not found", cookieName),
				Type:    "session.missing",
			}
		}

		session, err := services.LookupSession(db, token)
		if errors.Is(err, services.ErrNotFound) {
			return &types.CustomError{
				Code:    fiber.StatusUnauthorized,
				Message: "Invalid session",
				Type:    "session.invalid",
			}
		}
		if err != nil {
			return err
		}

		c.Locals("user", session.UserName)

		return c.Next()
	}
}
