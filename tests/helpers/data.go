// data.go
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

package helpers

import (
	"testing"

	"github.com/localnerve/httpassert/internal/services"
	"github.com/localnerve/httpassert/internal/types"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

// CreateTestNote stores a note directly and returns it
func CreateTestNote(t *testing.T, db *gorm.DB, title string, tags ...string) services.NoteView {
	t.Helper()
	note, err := services.CreateNote(db, services.NoteInput{
		Title: title,
		Body:  "body of " + title,
		Tags:  types.FlexList[string](tags),
	})
	require.NoError(t, err, "Failed to create note")
	return note
}

// CountNotes returns the number of stored notes
func CountNotes(t *testing.T, db *gorm.DB) int {
	t.Helper()
	notes, err := services.ListNotes(db)
	require.NoError(t, err, "Failed to list notes")
	return len(notes)
}
