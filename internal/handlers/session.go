// session.go
//
// Fluent HTTP assertions for exercising in-process web applications in tests
// Copyright (c) 2026 Alex Grant <info@localnerve.com> (https://www.localnerve.com), LocalNerve LLC
//
// This file is part of httpassert.
// httpassert is free software: you can redistribute it and/or modify it
// under the terms of the GNU Affero General Public License as published by the Free Software
// Foundation, either version 3 of the License, or (at your option) any later version.
// httpassert is distributed in the hope that it will be useful, but WITHOUT ANY WARRANTY;
// without even the implied warranty of MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.
// See the GNU Affero General Public License for more details.
// You should have received a copy of the GNU Affero General Public License along with httpassert.
// If not, see <https://www.gnu.org/licenses/>.
// Additional terms under GNU AGPL version 3 section 7:
// a) The reasonable legal notice of original copyright and author attribution must be preserved
//    by including the string: "Copyright (c) 2026 Alex Grant <info@localnerve.com> (https://www.localnerve.com), LocalNerve LLC"
//    in this material, copies, or source code of derived works.

package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/localnerve/httpassert/internal/services"
	"gorm.io/gorm"
)

// ThemeCookie is set alongside the session cookie on login
const ThemeCookie = "theme"

// SessionHandler handles login, logout and the session-guarded route
type SessionHandler struct {
	DB     *gorm.DB
	Cookie string
}

// CreateSession logs a user in and sets the session and theme cookies
// POST /api/session
func (h *SessionHandler) CreateSession(c *fiber.Ctx) error {
	session, err := services.CreateSession(h.DB, c.FormValue("user"))
	if err != nil {
		return serviceError(c, err, "")
	}

	c.Cookie(&fiber.Cookie{
		Name:     h.Cookie,
		Value:    session.Token,
		Path:     "/",
		HTTPOnly: true,
		SameSite: fiber.CookieSameSiteLaxMode,
	})
	c.Cookie(&fiber.Cookie{
		Name:  ThemeCookie,
		Value: c.FormValue("theme", "light"),
		Path:  "/",
	})

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"user":  session.UserName,
		"token": session.Token,
	})
}

// DeleteSession logs out and expires the session cookie
// DELETE /api/session
func (h *SessionHandler) DeleteSession(c *fiber.Ctx) error {
	if token := c.Cookies(h.Cookie); token != "" {
		if err := services.DeleteSession(h.DB, token); err != nil {
			return err
		}
	}
	c.ClearCookie(h.Cookie)
	return c.SendStatus(fiber.StatusNoContent)
}

// Private returns the user of the current session
// GET /api/private
func (h *SessionHandler) Private(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"user": c.Locals("user"),
	})
}
