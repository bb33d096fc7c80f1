package helpers

import (
	"net/url"

	"github.com/localnerve/httpassert/tests/harness"
)

// SessionCookie is the default session cookie name
const SessionCookie = "cookie_session"

// Login creates a session for user and returns the cookie pair to send back
// with harness.WithCookies
func Login(client *harness.Client, user string) string {
	resp := client.Post("/api/session", url.Values{"user": {user}}).
		AssertCreated().
		AssertHasCookie(SessionCookie)

	cookie, _ := resp.Cookie(SessionCookie)
	return cookie.Name + "=" + cookie.Value
}
