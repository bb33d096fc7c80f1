// dispatcher.go
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
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
)

// Handler is the application entry point the dispatcher hands requests to.
// *fiber.App satisfies it directly.
type Handler interface {
	Test(req *http.Request, msTimeout ...int) (*http.Response, error)
}

// HTTPHandler adapts a standard http.Handler to Handler. The timeout is ignored;
// the handler runs to completion on the calling goroutine.
func HTTPHandler(h http.Handler) Handler {
	return httpHandler{h}
}

type httpHandler struct {
	h http.Handler
}

func (a httpHandler) Test(req *http.Request, _ ...int) (*http.Response, error) {
	rec := httptest.NewRecorder()
	a.h.ServeHTTP(rec, req)
	resp := rec.Result()

	// the recorder keeps keys exactly as the handler wrote them
	header := make(http.Header, len(resp.Header))
	for key, values := range resp.Header {
		canonical := http.CanonicalHeaderKey(key)
		header[canonical] = append(header[canonical], values...)
	}
	resp.Header = header
	return resp, nil
}

// RequestFactory creates the base request for a method and URI.
type RequestFactory interface {
	NewRequest(method, uri string) (*http.Request, error)
}

// RequestFactoryFunc lets a plain function serve as a RequestFactory.
type RequestFactoryFunc func(method, uri string) (*http.Request, error)

// NewRequest calls f.
func (f RequestFactoryFunc) NewRequest(method, uri string) (*http.Request, error) {
	return f(method, uri)
}

// DefaultHost is used for relative URIs, matching net/http/httptest.
const DefaultHost = "example.com"

// DefaultRequestFactory builds server-style requests like httptest.NewRequest,
// but reports bad input as an error instead of panicking.
var DefaultRequestFactory RequestFactory = RequestFactoryFunc(func(method, uri string) (*http.Request, error) {
	req, err := http.NewRequest(method, uri, nil)
	if err != nil {
		return nil, err
	}
	if req.Host == "" {
		req.Host = DefaultHost
	}
	req.RequestURI = req.URL.RequestURI()
	req.RemoteAddr = "192.0.2.1:1234"
	return req, nil
})

// RequestScope receives the built request right before the application handles it.
type RequestScope interface {
	Bind(req *http.Request)
}

// ScopeFunc lets a plain function serve as a RequestScope.
type ScopeFunc func(req *http.Request)

// Bind calls f.
func (f ScopeFunc) Bind(req *http.Request) {
	f(req)
}

// Dispatcher builds synthetic requests and passes them to an application.
type Dispatcher struct {
	app           Handler
	factory       RequestFactory
	scope         RequestScope
	timeout       time.Duration
	legacyCookies bool
	log           *logrus.Logger
}

// DispatcherOption configures a Dispatcher.
type DispatcherOption func(*Dispatcher)

// WithRequestFactory replaces DefaultRequestFactory.
func WithRequestFactory(f RequestFactory) DispatcherOption {
	return func(d *Dispatcher) {
		d.factory = f
	}
}

// WithRequestScope binds every built request to scope before handling.
func WithRequestScope(scope RequestScope) DispatcherOption {
	return func(d *Dispatcher) {
		d.scope = scope
	}
}

// WithTimeout sets the Fiber test timeout. Zero or less disables it.
func WithTimeout(timeout time.Duration) DispatcherOption {
	return func(d *Dispatcher) {
		d.timeout = timeout
	}
}

// WithLegacyCookieHeader sends request cookies as raw Set-Cookie request
// headers instead of a Cookie header. Older suites rely on it.
func WithLegacyCookieHeader(enabled bool) DispatcherOption {
	return func(d *Dispatcher) {
		d.legacyCookies = enabled
	}
}

// WithLogger sets the logger used for dispatch tracing.
func WithLogger(log *logrus.Logger) DispatcherOption {
	return func(d *Dispatcher) {
		d.log = log
	}
}

// NewDispatcher returns a Dispatcher for app.
func NewDispatcher(app Handler, opts ...DispatcherOption) *Dispatcher {
	d := &Dispatcher{
		app:     app,
		factory: DefaultRequestFactory,
		timeout: time.Second,
		log:     logrus.StandardLogger(),
	}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// Call builds and sends method uri with an optional form body.
func (d *Dispatcher) Call(method, uri string, body url.Values, opts ...RequestOption) (*http.Response, error) {
	return d.Do(NewRequest(method, uri).WithBody(body).Apply(opts...))
}

// Do builds r, binds it to the request scope and returns the application's response.
func (d *Dispatcher) Do(r Request) (*http.Response, error) {
	req, err := d.Build(r)
	if err != nil {
		return nil, err
	}

	if d.scope != nil {
		d.scope.Bind(req)
	}

	start := time.Now()
	resp, err := d.app.Test(req, d.timeoutMs())
	if err != nil {
		return nil, fmt.Errorf("handling %s %s: %w", r.Method, r.URI, err)
	}

	d.log.WithFields(logrus.Fields{
		"method":   r.Method,
		"uri":      req.URL.RequestURI(),
		"status":   resp.StatusCode,
		"duration": time.Since(start),
	}).Debug("dispatched request")

	return resp, nil
}

// Build turns r into an *http.Request without sending it.
func (d *Dispatcher) Build(r Request) (*http.Request, error) {
	req, err := d.factory.NewRequest(r.Method, r.URI)
	if err != nil {
		return nil, fmt.Errorf("building %s %s: %w", r.Method, r.URI, err)
	}

	if len(r.Body) > 0 {
		attachForm(req, r.Body)
	}

	for _, h := range r.Headers {
		req.Header.Add(h.Name, h.Value)
	}

	for _, raw := range r.Cookies {
		if d.legacyCookies {
			req.Header.Add("Set-Cookie", raw)
			continue
		}
		c, err := requestCookie(raw)
		if err != nil {
			return nil, fmt.Errorf("building %s %s: %w", r.Method, r.URI, err)
		}
		req.AddCookie(c)
	}

	if len(r.Query) > 0 {
		req.URL.RawQuery = r.Query.Encode()
		req.RequestURI = req.URL.RequestURI()
	}

	return req, nil
}

func (d *Dispatcher) timeoutMs() int {
	if d.timeout <= 0 {
		return -1
	}
	return int(d.timeout.Milliseconds())
}

func attachForm(req *http.Request, body url.Values) {
	encoded := body.Encode()
	req.Body = io.NopCloser(strings.NewReader(encoded))
	req.ContentLength = int64(len(encoded))
	req.GetBody = func() (io.ReadCloser, error) {
		return io.NopCloser(strings.NewReader(encoded)), nil
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.PostForm = cloneValues(body)
}
