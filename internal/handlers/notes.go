// notes.go
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

// NotesHandler handles the note resource
type NotesHandler struct {
	DB *gorm.DB
}

// ListNotes returns all notes
// GET /api/notes
func (h *NotesHandler) ListNotes(c *fiber.Ctx) error {
	notes, err := services.ListNotes(h.DB)
	if err != nil {
		return err
	}
	return c.JSON(notes)
}

// GetNote returns one note
// GET /api/notes/:id
func (h *NotesHandler) GetNote(c *fiber.Ctx) error {
	note, err := services.GetNote(h.DB, c.Params("id"))
	if err != nil {
		return serviceError(c, err, "Note not found")
	}
	return c.JSON(note)
}

// CreateNote stores a note from form or JSON input
// POST /api/notes
func (h *NotesHandler) CreateNote(c *fiber.Ctx) error {
	in, err := bindNote(c)
	if err != nil {
		return err
	}

	note, err := services.CreateNote(h.DB, in)
	if err != nil {
		return serviceError(c, err, "")
	}

	c.Location("/api/notes/" + note.ID)
	return c.Status(fiber.StatusCreated).JSON(note)
}

// UpdateNote replaces a note
// PUT /api/notes/:id
func (h *NotesHandler) UpdateNote(c *fiber.Ctx) error {
	in, err := bindNote(c)
	if err != nil {
		return err
	}

	note, err := services.UpdateNote(h.DB, c.Params("id"), in)
	if err != nil {
		return serviceError(c, err, "Note not found")
	}
	return c.JSON(note)
}

// DeleteNote removes a note
// DELETE /api/notes/:id
func (h *NotesHandler) DeleteNote(c *fiber.Ctx) error {
	if err := services.DeleteNote(h.DB, c.Params("id")); err != nil {
		return serviceError(c, err, "Note not found")
	}
	return c.SendStatus(fiber.StatusNoContent)
}
