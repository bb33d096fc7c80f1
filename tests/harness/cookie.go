// cookie.go
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
	"net/http"
	"strings"
	"time"

	"github.com/valyala/fasthttp"
)

// Cookie is one cookie parsed from a Set-Cookie header.
type Cookie struct {
	Name     string
	Value    string
	Path     string
	Domain   string
	Expires  time.Time
	MaxAge   int
	Secure   bool
	HTTPOnly bool
	SameSite string
	Raw      string
}

// String renders the cookie as name=value.
func (c Cookie) String() string {
	return c.Name + "=" + c.Value
}

// ParseSetCookie parses a single Set-Cookie header value. A leading pair
// without "=" names a cookie with an empty value.
func ParseSetCookie(raw string) (Cookie, error) {
	fc := fasthttp.AcquireCookie()
	defer fasthttp.ReleaseCookie(fc)

	if err := fc.Parse(withPairSeparator(raw)); err != nil {
		return Cookie{}, fmt.Errorf("parse cookie %q: %w", raw, err)
	}
	if len(fc.Key()) == 0 {
		return Cookie{}, fmt.Errorf("parse cookie %q: missing name", raw)
	}

	return Cookie{
		Name:     string(fc.Key()),
		Value:    string(fc.Value()),
		Path:     string(fc.Path()),
		Domain:   string(fc.Domain()),
		Expires:  fc.Expire(),
		MaxAge:   fc.MaxAge(),
		Secure:   fc.Secure(),
		HTTPOnly: fc.HTTPOnly(),
		SameSite: sameSiteName(fc.SameSite()),
		Raw:      raw,
	}, nil
}

// ParseSetCookies parses every value in order, skipping the ones that do not parse.
func ParseSetCookies(values []string) []Cookie {
	cookies := make([]Cookie, 0, len(values))
	for _, raw := range values {
		c, err := ParseSetCookie(raw)
		if err != nil {
			continue
		}
		cookies = append(cookies, c)
	}
	return cookies
}

// withPairSeparator turns "flag; Path=/" into "flag=; Path=/" so the name
// survives parsing.
func withPairSeparator(raw string) string {
	pair, attrs, hasAttrs := strings.Cut(raw, ";")
	if strings.Contains(pair, "=") || strings.TrimSpace(pair) == "" {
		return raw
	}
	pair = strings.TrimSpace(pair) + "="
	if hasAttrs {
		return pair + ";" + attrs
	}
	return pair
}

func sameSiteName(mode fasthttp.CookieSameSite) string {
	switch mode {
	case fasthttp.CookieSameSiteLaxMode:
		return "Lax"
	case fasthttp.CookieSameSiteStrictMode:
		return "Strict"
	case fasthttp.CookieSameSiteNoneMode:
		return "None"
	case fasthttp.CookieSameSiteDefaultMode:
		return "Default"
	}
	return ""
}

// requestCookie reduces a Set-Cookie style string to the name/value pair a
// client would send back.
func requestCookie(raw string) (*http.Cookie, error) {
	c, err := ParseSetCookie(raw)
	if err != nil {
		return nil, err
	}
	return &http.Cookie{Name: c.Name, Value: c.Value}, nil
}
