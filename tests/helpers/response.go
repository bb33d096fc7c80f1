// response.go
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
	"encoding/json"
	"testing"

	"github.com/localnerve/httpassert/tests/harness"
	"github.com/stretchr/testify/require"
)

// ParseJSON decodes the response body into the target
func ParseJSON(t *testing.T, resp *harness.Response, target any) {
	t.Helper()
	body := resp.Content()
	require.NoError(t, json.Unmarshal([]byte(body), target), "Failed to decode JSON. Body: %s", body)
}

// ErrorBody is the JSON error envelope the notes application renders
type ErrorBody struct {
	Status       int    `json:"status"`
	Message      string `json:"message"`
	Ok           bool   `json:"ok"`
	URL          string `json:"url"`
	Type         string `json:"type"`
	VersionError bool   `json:"versionError"`
}
