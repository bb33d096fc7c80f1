// assert.go
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
	"strconv"
	"strings"

	"github.com/stretchr/testify/require"
	"github.com/tidwall/gjson"
	"github.com/xeipuuv/gojsonschema"
)

func (r *Response) helper() {
	if h, ok := r.t.(tHelper); ok {
		h.Helper()
	}
}

func (r *Response) AssertOk() *Response {
	r.helper()
	return r.AssertStatus(http.StatusOK)
}

func (r *Response) AssertCreated() *Response {
	r.helper()
	return r.AssertStatus(http.StatusCreated)
}

func (r *Response) AssertNoContent() *Response {
	r.helper()
	return r.AssertStatus(http.StatusNoContent)
}

func (r *Response) AssertNotFound() *Response {
	r.helper()
	return r.AssertStatus(http.StatusNotFound)
}

func (r *Response) AssertForbidden() *Response {
	r.helper()
	return r.AssertStatus(http.StatusForbidden)
}

func (r *Response) AssertUnauthorized() *Response {
	r.helper()
	return r.AssertStatus(http.StatusUnauthorized)
}

func (r *Response) AssertUnprocessable() *Response {
	r.helper()
	return r.AssertStatus(http.StatusUnprocessableEntity)
}

func (r *Response) AssertBadRequest() *Response {
	r.helper()
	return r.AssertStatus(http.StatusBadRequest)
}

// AssertServerError checks for any status in [500, 600).
func (r *Response) AssertServerError() *Response {
	r.helper()
	require.True(r.t, r.IsServerError(), statusMessage(">=500, < 600", r.StatusCode()))
	return r
}

// AssertStatus checks for exactly status.
func (r *Response) AssertStatus(status int) *Response {
	r.helper()
	actual := r.StatusCode()
	require.Equal(r.t, status, actual, statusMessage(strconv.Itoa(status), actual))
	return r
}

// AssertHasHeader checks that name is present.
func (r *Response) AssertHasHeader(name string) *Response {
	r.helper()
	require.True(r.t, r.HasHeader(name), headerMissingMessage(name))
	return r
}

// AssertHeader checks that name is present and, when a value is given, that the
// joined header value equals it.
func (r *Response) AssertHeader(name string, value ...string) *Response {
	r.helper()
	require.True(r.t, r.HasHeader(name), headerMissingMessage(name))

	if len(value) == 0 {
		return r
	}
	actual := r.Header(name)
	require.Equal(r.t, value[0], actual,
		fmt.Sprintf("Header [%s] was found, but value [%s] does not match [%s].", name, actual, value[0]))
	return r
}

// AssertHeaderMissing checks that name is absent.
func (r *Response) AssertHeaderMissing(name string) *Response {
	r.helper()
	require.False(r.t, r.HasHeader(name), fmt.Sprintf("Unexpected header [%s] is present on response.", name))
	return r
}

// AssertCookie checks that the cookie is set and, when a value is given, that
// its value matches exactly.
func (r *Response) AssertCookie(name string, value ...string) *Response {
	r.helper()
	cookie, ok := r.Cookie(name)
	require.True(r.t, ok, cookieMissingMessage(name))

	if len(value) == 0 {
		return r
	}
	require.Equal(r.t, value[0], cookie.Value,
		fmt.Sprintf("Cookie [%s] was found, but value [%s] does not match [%s].", name, cookie.Value, value[0]))
	return r
}

// AssertHasCookie checks that the cookie is set.
func (r *Response) AssertHasCookie(name string) *Response {
	r.helper()
	_, ok := r.Cookie(name)
	require.True(r.t, ok, cookieMissingMessage(name))
	return r
}

// AssertCookieMissing checks that no Set-Cookie names the cookie.
func (r *Response) AssertCookieMissing(name string) *Response {
	r.helper()
	_, ok := r.Cookie(name)
	require.False(r.t, ok, fmt.Sprintf("Unexpected cookie [%s] is present on response.", name))
	return r
}

// AssertContent checks the raw body.
func (r *Response) AssertContent(value string) *Response {
	r.helper()
	require.Equal(r.t, value, r.Content())
	return r
}

// AssertJSON checks that the body is JSON equal to expected, including the
// order of object keys. See expectedJSON for the accepted forms of expected.
func (r *Response) AssertJSON(expected any) *Response {
	r.helper()
	r.DecodeJSON()

	raw, err := expectedJSON(expected)
	require.NoError(r.t, err)

	require.Equal(r.t, prettyJSON(canonicalJSON(raw)), prettyJSON(canonicalJSON(r.Content())))
	return r
}

// AssertJSONPath checks the value at a gjson path. Numbers are compared by value.
func (r *Response) AssertJSONPath(path string, expected any) *Response {
	r.helper()
	r.DecodeJSON()

	result := gjson.Get(r.Content(), path)
	require.True(r.t, result.Exists(), fmt.Sprintf("JSON path [%s] not present on response.", path))
	require.EqualValues(r.t, expected, result.Value(),
		fmt.Sprintf("JSON path [%s] was found, but value [%s] does not match.", path, result.Raw))
	return r
}

// AssertJSONSchema validates the body against a JSON schema document.
func (r *Response) AssertJSONSchema(schema string) *Response {
	r.helper()
	r.DecodeJSON()

	result, err := gojsonschema.Validate(
		gojsonschema.NewStringLoader(schema),
		gojsonschema.NewStringLoader(r.Content()),
	)
	require.NoError(r.t, err, "Failed to load JSON schema")

	if !result.Valid() {
		problems := make([]string, 0, len(result.Errors()))
		for _, e := range result.Errors() {
			problems = append(problems, e.String())
		}
		require.Fail(r.t, "Response does not match JSON schema.", strings.Join(problems, "\n"))
	}
	return r
}

// AssertCors checks the four Access-Control-Allow-* headers. credentials
// defaults to "true". It ends a chain.
func (r *Response) AssertCors(headers, methods []string, origin string, credentials ...string) {
	r.helper()
	allowCredentials := "true"
	if len(credentials) > 0 {
		allowCredentials = credentials[0]
	}

	r.assertHeaderEquals("Access-Control-Allow-Credentials", allowCredentials)
	r.assertHeaderEquals("Access-Control-Allow-Origin", origin)
	r.assertHeaderEquals("Access-Control-Allow-Headers", strings.Join(headers, ", "))
	r.assertHeaderEquals("Access-Control-Allow-Methods", strings.Join(methods, ", "))
}

func (r *Response) assertHeaderEquals(name, expected string) {
	r.helper()
	require.Equal(r.t, expected, r.Header(name), fmt.Sprintf("Header [%s] does not match.", name))
}

func statusMessage(expected string, actual int) string {
	return fmt.Sprintf("Expected response status code [%s] but received %d.", expected, actual)
}

func headerMissingMessage(name string) string {
	return fmt.Sprintf("Header [%s] not present on response.", name)
}

func cookieMissingMessage(name string) string {
	return fmt.Sprintf("Cookie [%s] not present on response.", name)
}
