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

package services

import (
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/localnerve/httpassert/internal/models"
	"github.com/localnerve/httpassert/internal/types"
	"gorm.io/gorm"
	"gorm.io/hints"
)

var (
	// ErrNotFound is returned when a record does not exist
	ErrNotFound = errors.New("not found")
	// ErrInvalid is returned when input fails validation
	ErrInvalid = errors.New("invalid input")
	// ErrVersion is returned when an update names a stale version
	ErrVersion = errors.New("E_VERSION")
)

// NoteInput is the body accepted by create and update, as form or JSON
type NoteInput struct {
	Title   string                 `json:"title"`
	Body    string                 `json:"body"`
	Tags    types.FlexList[string] `json:"tags"`
	Version types.FlexUint64       `json:"version"`
}

// NoteView is the API representation of a note
type NoteView struct {
	ID      string   `json:"id"`
	Title   string   `json:"title"`
	Body    string   `json:"body"`
	Tags    []string `json:"tags"`
	Version uint64   `json:"version"`
}

func (in NoteInput) validate() error {
	if strings.TrimSpace(in.Title) == "" {
		return fmt.Errorf("%w: title is required", ErrInvalid)
	}
	if len(in.Title) > 255 {
		return fmt.Errorf("%w: title is longer than 255 characters", ErrInvalid)
	}
	return nil
}

func viewOf(n models.Note) NoteView {
	return NoteView{
		ID:      n.NoteID,
		Title:   n.Title,
		Body:    n.Body,
		Tags:    n.Tags.Strings(),
		Version: n.Version,
	}
}

// ListNotes returns every note, oldest first
func ListNotes(db *gorm.DB) ([]NoteView, error) {
	var notes []models.Note
	err := db.Clauses(hints.Comment("select", "notes.list")).
		Order("created_at, note_id").
		Find(&notes).Error
	if err != nil {
		return nil, err
	}

	views := make([]NoteView, 0, len(notes))
	for _, n := range notes {
		views = append(views, viewOf(n))
	}
	return views, nil
}

// GetNote returns one note by id
func GetNote(db *gorm.DB, id string) (NoteView, error) {
	note, err := findNote(db, id)
	if err != nil {
		return NoteView{}, err
	}
	return viewOf(note), nil
}

// CreateNote validates and stores a new note at version 1
func CreateNote(db *gorm.DB, in NoteInput) (NoteView, error) {
	if err := in.validate(); err != nil {
		return NoteView{}, err
	}

	tags, err := models.NewJSON(in.Tags.Slice())
	if err != nil {
		return NoteView{}, fmt.Errorf("failed to encode tags: %w", err)
	}

	note := models.Note{
		NoteID:  uuid.NewString(),
		Title:   in.Title,
		Body:    in.Body,
		Tags:    tags,
		Version: 1,
	}
	if err := db.Create(&note).Error; err != nil {
		return NoteView{}, fmt.Errorf("failed to create note: %w", err)
	}
	return viewOf(note), nil
}

// UpdateNote replaces a note's fields. A non-zero input version must match the
// stored version.
func UpdateNote(db *gorm.DB, id string, in NoteInput) (NoteView, error) {
	if err := in.validate(); err != nil {
		return NoteView{}, err
	}

	var view NoteView
	err := db.Transaction(func(tx *gorm.DB) error {
		note, err := findNote(tx, id)
		if err != nil {
			return err
		}
		if v := in.Version.Uint64(); v != 0 && v != note.Version {
			return ErrVersion
		}

		tags, err := models.NewJSON(in.Tags.Slice())
		if err != nil {
			return fmt.Errorf("failed to encode tags: %w", err)
		}

		note.Title = in.Title
		note.Body = in.Body
		note.Tags = tags
		note.Version++
		if err := tx.Save(&note).Error; err != nil {
			return fmt.Errorf("failed to update note: %w", err)
		}
		view = viewOf(note)
		return nil
	})
	return view, err
}

// DeleteNote removes a note by id
func DeleteNote(db *gorm.DB, id string) error {
	result := db.Where("note_id = ?", id).Delete(&models.Note{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func findNote(db *gorm.DB, id string) (models.Note, error) {
	var note models.Note
	err := db.Clauses(hints.Comment("select", "notes.get")).
		Where("note_id = ?", id).
		First(&note).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return note, ErrNotFound
	}
	return note, err
}
