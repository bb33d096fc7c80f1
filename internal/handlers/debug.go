// debug.go
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
	"fmt"

	"github.com/gofiber/fiber/v2"
	"github.com/localnerve/httpassert/internal/types"
)

// Echo reports the request as the application saw it
// ALL /api/echo
func Echo(c *fiber.Ctx) error {
	cookies := make(map[string]string)
	c.Request().Header.VisitAllCookie(func(key, value []byte) {
		cookies[string(key)] = string(value)
	})

	return c.JSON(fiber.Map{
		"method":  c.Method(),
		"path":    c.Path(),
		"query":   argsToMap(c.Context().QueryArgs()),
		"headers": c.GetReqHeaders(),
		"cookies": cookies,
		"form":    argsToMap(c.Request().PostArgs()),
	})
}

// Status responds with the status code named in the path
// GET /api/status/:code
func Status(c *fiber.Ctx) error {
	code, err := c.ParamsInt("code")
	if err != nil || code < 100 || code > 599 {
		return types.NewError(fiber.StatusBadRequest,
			fmt.Sprintf("Invalid status code %q", c.Params("code")), "validation")
	}
	return c.SendStatus(code)
}

// Panic always panics; the recover middleware turns it into a 500
// GET /api/panic
func Panic(c *fiber.Ctx) error {
	panic("panic route called")
}

// Text returns a plain text body
// GET /api/text
func Text(c *fiber.Ctx) error {
	return c.SendString("hello, world")
}
