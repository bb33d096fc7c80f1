// integration_test.go
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

package integration

import (
	"net/url"
	"os"
	"testing"

	"github.com/localnerve/httpassert/internal/database"
	"github.com/localnerve/httpassert/tests/harness"
	"github.com/localnerve/httpassert/tests/helpers"
	"github.com/stretchr/testify/suite"
)

// DatabaseSuite runs the notes application against a real database container.
// Set DB_IMAGE (for example mariadb:11) to enable it.
type DatabaseSuite struct {
	harness.Suite
	container *helpers.DatabaseContainer
}

func (s *DatabaseSuite) SetupSuite() {
	container, err := helpers.StartDatabase(s.T())
	s.Require().NoError(err)
	s.container = container
	s.Fixture = harness.NewFixture(helpers.AppFactory(container.Config), helpers.DispatcherOptions(s.T())...)
}

func (s *DatabaseSuite) TearDownSuite() {
	s.Suite.TearDownSuite()
	if s.container != nil {
		s.container.Terminate(s.T())
	}
}

func (s *DatabaseSuite) TestHealth() {
	s.Get("/health").
		AssertOk().
		AssertJSONPath("status", "healthy").
		AssertJSONPath("details.database_type", s.container.Config.DBType)
}

func (s *DatabaseSuite) TestNoteLifecycle() {
	resp := s.Post("/api/notes", url.Values{"title": {"container"}, "tags": {"db"}}).
		AssertCreated().
		AssertJSONPath("tags.0", "db")
	id := resp.JSON().Get("id").String()

	s.Put("/api/notes/"+id, url.Values{"title": {"renamed"}, "version": {"1"}}).
		AssertOk().
		AssertJSONPath("version", 2)

	s.Get("/api/notes/"+id).AssertOk().AssertJSONPath("title", "renamed")
	s.Delete("/api/notes/" + id).AssertNoContent()
	s.Get("/api/notes/" + id).AssertNotFound()
}

func (s *DatabaseSuite) TestSessionRoundTrip() {
	cookie := helpers.Login(s.Client(), "ada")

	s.Get("/api/private", harness.WithCookies(cookie)).
		AssertOk().
		AssertJSONPath("user", "ada")
}

func (s *DatabaseSuite) TestClose() {
	db, err := helpers.NewTestDB(s.container.Config)
	s.Require().NoError(err)
	s.NoError(database.Close(db))
}

func TestDatabaseSuite(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping container test in short mode")
	}
	if os.Getenv("DB_IMAGE") == "" {
		t.Skip("DB_IMAGE is not set")
	}
	suite.Run(t, new(DatabaseSuite))
}
