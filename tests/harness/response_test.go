package harness

import (
	"errors"
	"net/http"
	"reflect"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatusClassification(t *testing.T) {
	tests := []struct {
		status                                    int
		success, redirect, clientError, serverErr bool
	}{
		{status: 200, success: true},
		{status: 204, success: true},
		{status: 302, redirect: true},
		{status: 404, clientError: true},
		{status: 422, clientError: true},
		{status: 500, serverErr: true},
		{status: 599, serverErr: true},
		{status: 600},
	}

	for _, tt := range tests {
		r := Wrap(t, stubResponse(tt.status, nil, ""))
		assert.Equal(t, tt.status, r.StatusCode())
		assert.Equal(t, tt.success, r.IsSuccessful(), "IsSuccessful(%d)", tt.status)
		assert.Equal(t, tt.redirect, r.IsRedirect(), "IsRedirect(%d)", tt.status)
		assert.Equal(t, tt.clientError, r.IsClientError(), "IsClientError(%d)", tt.status)
		assert.Equal(t, tt.serverErr, r.IsServerError(), "IsServerError(%d)", tt.status)
	}
}

func TestHeaderReaders(t *testing.T) {
	header := http.Header{}
	header.Add("Vary", "Origin")
	header.Add("Vary", "Accept")
	header.Set("Content-Type", "application/json")
	r := Wrap(t, stubResponse(200, header, ""))

	assert.True(t, r.HasHeader("content-type"))
	assert.False(t, r.HasHeader("X-Missing"))
	assert.Equal(t, "Origin, Accept", r.Header("Vary"))
	assert.Equal(t, "", r.Header("X-Missing"))
}

func TestContentIsReadOnce(t *testing.T) {
	r := Wrap(t, stubResponse(200, nil, "hello"))

	assert.Equal(t, "hello", r.Content())
	assert.Equal(t, "hello", r.Content())
}

func TestContentWithNilBody(t *testing.T) {
	r := Wrap(t, &http.Response{StatusCode: 204, Header: http.Header{}})

	assert.Equal(t, "", r.Content())
}

type failingReader struct{}

func (failingReader) Read([]byte) (int, error) { return 0, errors.New("broken pipe") }
func (failingReader) Close() error             { return nil }

func TestContentReadErrorFails(t *testing.T) {
	rt := captureFailure(func(ft TestingT) {
		Wrap(ft, &http.Response{StatusCode: 200, Body: failingReader{}}).Content()
	})

	assert.True(t, rt.Failed())
	assert.Contains(t, rt.Output(), "Failed to read response body")
}

func TestCookiesParsesEverySetCookie(t *testing.T) {
	header := http.Header{}
	header.Add("Set-Cookie", "cookie_session=abc; Path=/; HttpOnly; SameSite=Lax")
	header.Add("Set-Cookie", "theme=dark; Max-Age=60; Secure")
	header.Add("Set-Cookie", "=broken")
	r := Wrap(t, stubResponse(200, header, ""))

	cookies := r.Cookies()
	require.Len(t, cookies, 2)

	assert.Equal(t, "cookie_session", cookies[0].Name)
	assert.Equal(t, "abc", cookies[0].Value)
	assert.Equal(t, "/", cookies[0].Path)
	assert.True(t, cookies[0].HTTPOnly)
	assert.Equal(t, "Lax", cookies[0].SameSite)

	assert.Equal(t, "theme", cookies[1].Name)
	assert.Equal(t, 60, cookies[1].MaxAge)
	assert.True(t, cookies[1].Secure)
	assert.Equal(t, "theme=dark", cookies[1].String())
}

func TestCookieLastWins(t *testing.T) {
	header := http.Header{}
	header.Add("Set-Cookie", "theme=light")
	header.Add("Set-Cookie", "theme=dark")
	r := Wrap(t, stubResponse(200, header, ""))

	c, ok := r.Cookie("theme")
	require.True(t, ok)
	assert.Equal(t, "dark", c.Value)

	_, ok = r.Cookie("missing")
	assert.False(t, ok)
}

func TestDecodeJSON(t *testing.T) {
	r := Wrap(t, stubResponse(200, nil, `{"a":1,"b":[true,"x"]}`))

	decoded := r.DecodeJSON()

	assert.Equal(t, map[string]any{"a": float64(1), "b": []any{true, "x"}}, decoded)
}

func TestDecodeJSONAcceptsScalars(t *testing.T) {
	assert.Equal(t, float64(0), Wrap(t, stubResponse(200, nil, "0")).DecodeJSON())
	assert.Equal(t, true, Wrap(t, stubResponse(200, nil, "true")).DecodeJSON())
	assert.Equal(t, "", Wrap(t, stubResponse(200, nil, `""`)).DecodeJSON())
}

func TestDecodeJSONInvalidBodies(t *testing.T) {
	for _, body := range []string{"not json", "", "{", "null", "false"} {
		rt := captureFailure(func(ft TestingT) {
			Wrap(ft, stubResponse(200, nil, body)).DecodeJSON()
		})

		assert.True(t, rt.Failed(), "body %q", body)
		assert.Contains(t, rt.Output(), "Invalid JSON was returned from the route.", "body %q", body)
	}
}

func TestJSONReader(t *testing.T) {
	r := Wrap(t, stubResponse(200, nil, `{"note":{"tags":["a","b"]}}`))

	assert.Equal(t, "b", r.JSON().Get("note.tags.1").String())
	assert.Equal(t, int64(2), r.JSON().Get("note.tags.#").Int())
}

func TestParseSetCookieErrors(t *testing.T) {
	_, err := ParseSetCookie("=value")
	assert.Error(t, err)

	c, err := ParseSetCookie("a=b; Domain=example.com")
	require.NoError(t, err)
	assert.Equal(t, "example.com", c.Domain)
	assert.Equal(t, "a=b; Domain=example.com", c.Raw)
}

func TestParseSetCookieWithoutValue(t *testing.T) {
	c, err := ParseSetCookie("flag")
	require.NoError(t, err)
	assert.Equal(t, "flag", c.Name)
	assert.Equal(t, "", c.Value)
	assert.Equal(t, "flag", c.Raw)

	c, err = ParseSetCookie("flag; Path=/admin; HttpOnly")
	require.NoError(t, err)
	assert.Equal(t, "flag", c.Name)
	assert.Equal(t, "", c.Value)
	assert.Equal(t, "/admin", c.Path)
	assert.True(t, c.HTTPOnly)

	header := http.Header{}
	header.Add("Set-Cookie", "flag")
	Wrap(t, stubResponse(200, header, "")).
		AssertHasCookie("flag").
		AssertCookie("flag", "")
}

func TestHeaderReadersIgnoreKeyCase(t *testing.T) {
	header := http.Header{}
	header["x-lower"] = []string{"a"}
	header["set-cookie"] = []string{"token=abc"}
	r := Wrap(t, stubResponse(200, header, ""))

	assert.True(t, r.HasHeader("x-lower"))
	assert.True(t, r.HasHeader("X-Lower"))
	assert.Equal(t, "a", r.Header("X-LOWER"))
	r.AssertCookie("token", "abc")

	rt := captureFailure(func(ft TestingT) {
		Wrap(ft, stubResponse(200, header, "")).AssertHeaderMissing("X-Lower")
	})
	assert.True(t, rt.Failed())
	assert.Contains(t, rt.Output(), "Unexpected header [X-Lower] is present on response.")
}

func TestResponseDoesNotExposeHTTPResponse(t *testing.T) {
	raw := reflect.TypeOf((*http.Response)(nil))
	typ := reflect.TypeOf((*Response)(nil))
	for i := 0; i < typ.NumMethod(); i++ {
		m := typ.Method(i)
		for j := 0; j < m.Type.NumOut(); j++ {
			assert.NotEqual(t, raw, m.Type.Out(j), "method %s returns the wrapped response", m.Name)
		}
	}
}
