package unit

import (
	"net/url"
	"testing"

	"github.com/localnerve/httpassert/internal/config"
	"github.com/localnerve/httpassert/tests/harness"
	"github.com/localnerve/httpassert/tests/helpers"
	"github.com/stretchr/testify/suite"
)

type AppSuite struct {
	harness.Suite
	cfg *config.Config
}

func (s *AppSuite) SetupSuite() {
	s.cfg = helpers.TestConfig()
	s.Fixture = harness.NewFixture(helpers.AppFactory(s.cfg), helpers.DispatcherOptions(s.T())...)
}

func (s *AppSuite) TestHealth() {
	s.Get("/health").
		AssertOk().
		AssertJSONPath("status", "healthy").
		AssertJSONPath("database", "ok").
		AssertJSONPath("details.database_type", "sqlite")
}

func (s *AppSuite) TestMetrics() {
	s.Get("/api/text").AssertOk()

	resp := s.Get("/metrics").AssertOk().AssertHasHeader("Content-Type")
	s.Contains(resp.Content(), "# TYPE")
}

func (s *AppSuite) TestUnknownRouteIsNotFound() {
	s.Get("/nope").
		AssertNotFound().
		AssertJSONPath("message", "[404] Resource Not Found").
		AssertJSONPath("url", "/nope")
}

func (s *AppSuite) TestVersionHeaderIsEchoed() {
	s.Get("/api/text").AssertHeader("X-Api-Version", "1.0.0")
	s.Get("/api/text", harness.WithHeader("X-Api-Version", "1.0")).AssertHeader("X-Api-Version", "1.0.0")
	s.Get("/api/text", harness.WithHeader("X-Api-Version", "2.1.0")).AssertHeader("X-Api-Version", "2.1.0")
}

func (s *AppSuite) TestRequestID() {
	s.Get("/api/text").AssertHasHeader("X-Request-Id")
	s.Get("/api/text", harness.WithHeader("X-Request-Id", "req-1")).AssertHeader("X-Request-Id", "req-1")
	s.Get("/health").AssertHeaderMissing("X-Request-Id")
}

func (s *AppSuite) TestCors() {
	s.Options("/api/notes").
		AssertNoContent().
		AssertCors(s.cfg.CORSHeaders, s.cfg.CORSMethods, s.cfg.CORSOrigin)

	s.Get("/api/text").
		AssertOk().
		AssertCors([]string{"Content-Type", "X-Api-Version"}, []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"}, "*", "true")
}

func (s *AppSuite) TestText() {
	s.Get("/api/text").
		AssertOk().
		AssertHeader("Content-Type", "text/plain; charset=utf-8").
		AssertContent("hello, world")
}

func (s *AppSuite) TestEcho() {
	s.Post("/api/echo?page=2", url.Values{"title": {"first"}, "tags": {"a", "b"}},
		harness.WithHeaders(map[string]string{"X-Custom": "yes", "X-Other": "no"}),
		harness.WithCookies("theme=dark; Path=/"),
	).
		AssertOk().
		AssertJSONPath("method", "POST").
		AssertJSONPath("path", "/api/echo").
		AssertJSONPath("query.page.0", "2").
		AssertJSONPath("form.tags.#", 2).
		AssertJSONPath("form.title.0", "first").
		AssertJSONPath("headers.X-Custom.0", "yes").
		AssertJSONPath("headers.X-Other.0", "no").
		AssertJSONPath("cookies.theme", "dark")
}

func (s *AppSuite) TestEchoQueryOptionReplacesURIQuery() {
	s.Get("/api/echo?a=1", harness.WithQuery(url.Values{"b": {"2"}})).
		AssertOk().
		AssertJSONPath("query.b.0", "2")

	s.False(s.Get("/api/echo?a=1", harness.WithQuery(url.Values{"b": {"2"}})).JSON().Get("query.a").Exists())
}

func (s *AppSuite) TestStatusRoute() {
	s.Get("/api/status/201").AssertCreated()
	s.Get("/api/status/404").AssertNotFound()
	s.Get("/api/status/503").AssertServerError()
	s.Get("/api/status/abc").
		AssertBadRequest().
		AssertJSONPath("type", "validation")
}

func (s *AppSuite) TestPanicIsServerError() {
	s.Get("/api/panic").
		AssertServerError().
		AssertStatus(500).
		AssertJSONPath("ok", false)
}

func TestAppSuite(t *testing.T) {
	suite.Run(t, new(AppSuite))
}
