package harness

import (
	"fmt"
	"io"
	"net/http"
	"runtime"
	"strings"
	"sync"

	"github.com/gofiber/fiber/v2"
)

// recordingT is a TestingT that records failures. FailNow stops the calling
// goroutine the way testing.T does, so it must run under captureFailure.
type recordingT struct {
	mu       sync.Mutex
	messages []string
	failed   bool
}

func (r *recordingT) Errorf(format string, args ...any) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.messages = append(r.messages, fmt.Sprintf(format, args...))
	r.failed = true
}

func (r *recordingT) FailNow() {
	r.mu.Lock()
	r.failed = true
	r.mu.Unlock()
	runtime.Goexit()
}

func (r *recordingT) Helper() {}

func (r *recordingT) Failed() bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.failed
}

func (r *recordingT) Output() string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return strings.Join(r.messages, "\n")
}

// captureFailure runs fn with a recordingT on its own goroutine and waits for
// it to return or stop.
func captureFailure(fn func(t TestingT)) *recordingT {
	rt := &recordingT{}
	done := make(chan struct{})
	go func() {
		defer close(done)
		fn(rt)
	}()
	<-done
	return rt
}

func stubResponse(status int, header http.Header, body string) *http.Response {
	if header == nil {
		header = http.Header{}
	}
	return &http.Response{
		StatusCode: status,
		Header:     header,
		Body:       io.NopCloser(strings.NewReader(body)),
	}
}

// newEchoApp returns a small Fiber app used across the harness tests.
func newEchoApp() *fiber.App {
	app := fiber.New(fiber.Config{DisableStartupMessage: true})

	app.All("/echo", func(c *fiber.Ctx) error {
		cookies := map[string]string{}
		c.Request().Header.VisitAllCookie(func(key, value []byte) {
			cookies[string(key)] = string(value)
		})
		query := map[string][]string{}
		for key, value := range c.Context().QueryArgs().All() {
			query[string(key)] = append(query[string(key)], string(value))
		}
		form := map[string][]string{}
		for key, value := range c.Request().PostArgs().All() {
			form[string(key)] = append(form[string(key)], string(value))
		}
		return c.JSON(fiber.Map{
			"method":  c.Method(),
			"path":    c.Path(),
			"headers": c.GetReqHeaders(),
			"cookies": cookies,
			"query":   query,
			"form":    form,
		})
	})

	app.Get("/status/:code", func(c *fiber.Ctx) error {
		code, err := c.ParamsInt("code")
		if err != nil {
			return fiber.ErrBadRequest
		}
		return c.SendStatus(code)
	})

	app.Get("/json", func(c *fiber.Ctx) error {
		c.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
		return c.SendString(c.Query("body", `{"a":1}`))
	})

	app.Get("/login", func(c *fiber.Ctx) error {
		c.Cookie(&fiber.Cookie{Name: "cookie_session", Value: "abc123", Path: "/", HTTPOnly: true})
		c.Cookie(&fiber.Cookie{Name: "theme", Value: "dark"})
		return c.SendStatus(fiber.StatusOK)
	})

	app.Options("/cors", func(c *fiber.Ctx) error {
		c.Set(fiber.HeaderAccessControlAllowCredentials, "true")
		c.Set(fiber.HeaderAccessControlAllowOrigin, "https://example.com")
		c.Set(fiber.HeaderAccessControlAllowHeaders, "X-A")
		c.Set(fiber.HeaderAccessControlAllowMethods, "GET, POST")
		return c.SendStatus(fiber.StatusNoContent)
	})

	app.Put("/resource", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"name": c.FormValue("name")})
	})

	return app
}
