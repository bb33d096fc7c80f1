// request.go
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
	"net/http"
	"net/url"
	"sort"
)

// HeaderField is a single request header. Fields are kept in order so that
// repeated names are appended rather than replaced.
type HeaderField struct {
	Name  string
	Value string
}

// Request describes a synthetic request before it is built. It is a value type:
// every With* method returns a copy and leaves the receiver untouched.
type Request struct {
	Method  string
	URI     string
	Body    url.Values
	Headers []HeaderField
	Cookies []string
	Query   url.Values
}

// RequestOption adds optional parts (headers, cookies, query) to a Request.
type RequestOption func(Request) Request

// NewRequest returns a Request for method and uri with nothing else attached.
func NewRequest(method, uri string) Request {
	return Request{Method: method, URI: uri}
}

// WithBody returns a copy of r carrying body as its form payload.
func (r Request) WithBody(body url.Values) Request {
	r.Body = cloneValues(body)
	return r
}

// WithHeader returns a copy of r with name: value appended to its headers.
func (r Request) WithHeader(name, value string) Request {
	headers := make([]HeaderField, len(r.Headers), len(r.Headers)+1)
	copy(headers, r.Headers)
	r.Headers = append(headers, HeaderField{Name: name, Value: value})
	return r
}

// WithCookie returns a copy of r with a raw cookie string appended.
func (r Request) WithCookie(raw string) Request {
	cookies := make([]string, len(r.Cookies), len(r.Cookies)+1)
	copy(cookies, r.Cookies)
	r.Cookies = append(cookies, raw)
	return r
}

// WithQuery returns a copy of r whose query parameters are replaced by query.
func (r Request) WithQuery(query url.Values) Request {
	r.Query = cloneValues(query)
	return r
}

// Apply runs opts over r in order.
func (r Request) Apply(opts ...RequestOption) Request {
	for _, opt := range opts {
		if opt != nil {
			r = opt(r)
		}
	}
	return r
}

// WithHeader appends a single header.
func WithHeader(name, value string) RequestOption {
	return func(r Request) Request {
		return r.WithHeader(name, value)
	}
}

// WithHeaders appends every header in headers, in sorted name order.
func WithHeaders(headers map[string]string) RequestOption {
	return func(r Request) Request {
		names := make([]string, 0, len(headers))
		for name := range headers {
			names = append(names, name)
		}
		sort.Strings(names)
		for _, name := range names {
			r = r.WithHeader(name, headers[name])
		}
		return r
	}
}

// WithCookies appends raw cookie strings such as "theme=dark; Path=/".
func WithCookies(raw ...string) RequestOption {
	return func(r Request) Request {
		for _, c := range raw {
			r = r.WithCookie(c)
		}
		return r
	}
}

// WithQuery replaces the query parameters parsed from the URI.
func WithQuery(query url.Values) RequestOption {
	return func(r Request) Request {
		return r.WithQuery(query)
	}
}

// Methods sent by the Client verbs.
const (
	MethodGet     = http.MethodGet
	MethodPost    = http.MethodPost
	MethodPut     = http.MethodPut
	MethodDelete  = http.MethodDelete
	MethodOptions = http.MethodOptions
)

func cloneValues(v url.Values) url.Values {
	if v == nil {
		return nil
	}
	out := make(url.Values, len(v))
	for k, vals := range v {
		out[k] = append([]string(nil), vals...)
	}
	return out
}
