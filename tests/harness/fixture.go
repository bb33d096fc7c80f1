// fixture.go
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

package harness

import (
	"fmt"
	"io"
	"net/url"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

// AppFactory builds a fresh application instance. A built application that
// implements io.Closer is closed when the fixture drops it.
type AppFactory func() (Handler, error)

// Fixture owns one lazily built application and reuses it until Reset.
type Fixture struct {
	newApp AppFactory
	opts   []DispatcherOption
	app    Handler
}

// NewFixture returns a Fixture that builds its application with newApp.
// opts apply to every Dispatcher the fixture creates.
func NewFixture(newApp AppFactory, opts ...DispatcherOption) *Fixture {
	return &Fixture{newApp: newApp, opts: opts}
}

// App returns the cached application, building it on first use.
func (f *Fixture) App() (Handler, error) {
	if f.app != nil {
		return f.app, nil
	}
	return f.Refresh()
}

// Refresh closes the cached application, rebuilds it and caches the new
// instance.
func (f *Fixture) Refresh() (Handler, error) {
	if f.newApp == nil {
		return nil, fmt.Errorf("fixture has no application factory")
	}
	if err := f.Reset(); err != nil {
		return nil, err
	}
	app, err := f.newApp()
	if err != nil {
		return nil, fmt.Errorf("creating application: %w", err)
	}
	f.app = app
	return app, nil
}

// Reset drops the cached application, closing it when it is an io.Closer.
// The next App call builds a new one.
func (f *Fixture) Reset() error {
	app := f.app
	f.app = nil
	if closer, ok := app.(io.Closer); ok {
		if err := closer.Close(); err != nil {
			return fmt.Errorf("closing application: %w", err)
		}
	}
	return nil
}

// Built reports whether an application is currently cached.
func (f *Fixture) Built() bool {
	return f.app != nil
}

// Dispatcher returns a Dispatcher bound to the cached application.
func (f *Fixture) Dispatcher(opts ...DispatcherOption) (*Dispatcher, error) {
	app, err := f.App()
	if err != nil {
		return nil, err
	}
	all := make([]DispatcherOption, 0, len(f.opts)+len(opts))
	all = append(all, f.opts...)
	all = append(all, opts...)
	return NewDispatcher(app, all...), nil
}

// Client returns a Client for t bound to the cached application.
func (f *Fixture) Client(t TestingT, opts ...DispatcherOption) *Client {
	if h, ok := t.(tHelper); ok {
		h.Helper()
	}
	d, err := f.Dispatcher(opts...)
	require.NoError(t, err)
	return NewClient(t, d)
}

// Suite is a testify suite with a Fixture. Embedders set Fixture in
// SetupSuite; SetupTest builds the application only when none is cached and
// TearDownSuite releases it. Embedders that define their own SetupTest or
// TearDownSuite should call the Suite version.
type Suite struct {
	suite.Suite
	Fixture *Fixture
}

func (s *Suite) SetupTest() {
	s.Require().NotNil(s.Fixture, "Suite.Fixture must be set before tests run")
	if s.Fixture.Built() {
		return
	}
	_, err := s.Fixture.Refresh()
	s.Require().NoError(err)
}

func (s *Suite) TearDownSuite() {
	if s.Fixture == nil {
		return
	}
	s.Require().NoError(s.Fixture.Reset())
}

// Client returns a Client for the current test.
func (s *Suite) Client() *Client {
	return s.Fixture.Client(s.T())
}

func (s *Suite) Get(uri string, opts ...RequestOption) *Response {
	return s.Client().Get(uri, opts...)
}

func (s *Suite) Post(uri string, body url.Values, opts ...RequestOption) *Response {
	return s.Client().Post(uri, body, opts...)
}

func (s *Suite) Put(uri string, body url.Values, opts ...RequestOption) *Response {
	return s.Client().Put(uri, body, opts...)
}

func (s *Suite) Delete(uri string, opts ...RequestOption) *Response {
	return s.Client().Delete(uri, opts...)
}

func (s *Suite) Options(uri string, opts ...RequestOption) *Response {
	return s.Client().Options(uri, opts...)
}
