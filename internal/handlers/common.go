// common.go
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
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/localnerve/httpassert/internal/services"
	"github.com/localnerve/httpassert/internal/types"
	"github.com/localnerve/httpassert/internal/utils"
	"github.com/valyala/fasthttp"
)

// argsToMap collects every value of every key, keeping repeats in order.
func argsToMap(args *fasthttp.Args) map[string][]string {
	values := make(map[string][]string)
	for key, value := range args.All() {
		k := string(key)
		values[k] = append(values[k], string(value))
	}
	return values
}

// bindNote reads a note from a JSON body or from form fields. Form tags may be
// repeated or comma separated.
func bindNote(c *fiber.Ctx) (services.NoteInput, error) {
	var in services.NoteInput

	if strings.HasPrefix(c.Get(fiber.HeaderContentType), fiber.MIMEApplicationJSON) {
		if err := c.BodyParser(&in); err != nil {
			return in, types.NewError(fiber.StatusBadRequest, "Invalid JSON body", "validation")
		}
		return in, nil
	}

	in.Title = c.FormValue("title")
	in.Body = c.FormValue("body")

	var tags []string
	for _, v := range c.Request().PostArgs().PeekMulti("tags") {
		tags = append(tags, string(v))
	}
	in.Tags = types.Split[string](strings.Join(tags, ","))

	if err := in.Version.Parse(c.FormValue("version")); err != nil {
		return in, types.NewError(fiber.StatusBadRequest, err.Error(), "validation")
	}
	return in, nil
}

// serviceError maps service sentinel errors to responses.
func serviceError(c *fiber.Ctx, err error, notFound string) error {
	switch {
	case errors.Is(err, services.ErrNotFound):
		return utils.NotFoundResponse(c, notFound)
	case errors.Is(err, services.ErrInvalid):
		return utils.ValidationErrorResponse(c, err.Error())
	case errors.Is(err, services.ErrVersion):
		return utils.VersionErrorResponse(c)
	}
	return err
}
