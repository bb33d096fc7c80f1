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

package harness

import (
	"io"
	"net/http"
	"strings"
	"sync"

	"github.com/stretchr/testify/require"
	"github.com/tidwall/gjson"
)

const invalidJSONMessage = "Invalid JSON was returned from the route."

// Response wraps one completed response with readers and fluent assertions.
// It never modifies the response; the body and cookies are read once and cached.
type Response struct {
	t   TestingT
	raw *http.Response

	bodyOnce sync.Once
	body     string

	cookieOnce sync.Once
	cookies    []Cookie
}

// Wrap returns a Response reporting failures to t.
func Wrap(t TestingT, resp *http.Response) *Response {
	return &Response{t: t, raw: resp}
}

func (r *Response) StatusCode() int {
	return r.raw.StatusCode
}

func (r *Response) IsSuccessful() bool {
	return r.StatusCode() >= 200 && r.StatusCode() < 300
}

func (r *Response) IsRedirect() bool {
	return r.StatusCode() >= 300 && r.StatusCode() < 400
}

func (r *Response) IsClientError() bool {
	return r.StatusCode() >= 400 && r.StatusCode() < 500
}

func (r *Response) IsServerError() bool {
	return r.StatusCode() >= 500 && r.StatusCode() < 600
}

// HasHeader reports whether name is present, ignoring case.
func (r *Response) HasHeader(name string) bool {
	return len(r.headerValues(name)) > 0
}

// Header returns every value of name joined with ", ", or "" when absent.
func (r *Response) Header(name string) string {
	return strings.Join(r.headerValues(name), ", ")
}

// headerValues also matches keys a handler stored without canonicalizing.
func (r *Response) headerValues(name string) []string {
	if values := r.raw.Header.Values(name); len(values) > 0 {
		return values
	}
	var values []string
	for key, v := range r.raw.Header {
		if strings.EqualFold(key, name) {
			values = append(values, v...)
		}
	}
	return values
}

// Content returns the full body.
func (r *Response) Content() string {
	r.bodyOnce.Do(func() {
		if r.raw.Body == nil {
			return
		}
		b, err := io.ReadAll(r.raw.Body)
		_ = r.raw.Body.Close()
		if h, ok := r.t.(tHelper); ok {
			h.Helper()
		}
		require.NoError(r.t, err, "Failed to read response body")
		r.body = string(b)
	})
	return r.body
}

// Cookies returns the cookies from every Set-Cookie header, in header order.
func (r *Response) Cookies() []Cookie {
	r.cookieOnce.Do(func() {
		r.cookies = ParseSetCookies(r.headerValues("Set-Cookie"))
	})
	return r.cookies
}

// Cookie returns the named cookie. When a name is set more than once the
// last Set-Cookie wins, as it would in a browser.
func (r *Response) Cookie(name string) (Cookie, bool) {
	cookies := r.Cookies()
	for i := len(cookies) - 1; i >= 0; i-- {
		if cookies[i].Name == name {
			return cookies[i], true
		}
	}
	return Cookie{}, false
}

// JSON returns the body as a gjson result for path queries. It does not
// validate the body; use DecodeJSON for that.
func (r *Response) JSON() gjson.Result {
	return gjson.Parse(r.Content())
}

// DecodeJSON decodes the body. A body that is not valid JSON, or that decodes to
// null or false, fails the test instead of returning a value.
func (r *Response) DecodeJSON() any {
	if h, ok := r.t.(tHelper); ok {
		h.Helper()
	}
	content := r.Content()
	if !gjson.Valid(content) {
		require.Fail(r.t, invalidJSONMessage)
		return nil
	}
	result := gjson.Parse(content)
	if result.Type == gjson.Null || result.Type == gjson.False {
		require.Fail(r.t, invalidJSONMessage)
		return nil
	}
	return result.Value()
}
