package helpers

import (
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/localnerve/httpassert/internal/app"
	"github.com/localnerve/httpassert/internal/config"
	"github.com/localnerve/httpassert/internal/database"
	"github.com/localnerve/httpassert/tests/harness"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

// TestConfig returns the default configuration on an in-memory SQLite database
func TestConfig() *config.Config {
	cfg := config.Defaults()
	cfg.LogLevel = "error"
	return cfg
}

// NewTestDB connects to the configured database and migrates it
func NewTestDB(cfg *config.Config) (*gorm.DB, error) {
	db, err := database.Connect(cfg)
	if err != nil {
		return nil, err
	}
	if err := database.AutoMigrate(db); err != nil {
		_ = database.Close(db)
		return nil, err
	}
	return db, nil
}

// App is the notes application together with the database it owns
type App struct {
	*fiber.App
	DB *gorm.DB
}

// Close closes the database. The app never listens, so there is no server to
// shut down.
func (a *App) Close() error {
	return database.Close(a.DB)
}

// AppFactory builds the notes application on a freshly migrated database each
// time it is called. The harness fixture closes the database when it drops
// the application.
func AppFactory(cfg *config.Config) harness.AppFactory {
	return func() (harness.Handler, error) {
		db, err := NewTestDB(cfg)
		if err != nil {
			return nil, err
		}
		return &App{App: app.New(cfg, db), DB: db}, nil
	}
}

// AppOnDB builds the notes application on an existing database
func AppOnDB(cfg *config.Config, db *gorm.DB) harness.AppFactory {
	return func() (harness.Handler, error) {
		return app.New(cfg, db), nil
	}
}

// DispatcherOptions reads the HARNESS_* environment into dispatcher options
func DispatcherOptions(t *testing.T) []harness.DispatcherOption {
	t.Helper()
	hc, err := config.LoadHarness()
	require.NoError(t, err)

	level, err := logrus.ParseLevel(hc.LogLevel)
	require.NoError(t, err, "invalid HARNESS_LOG_LEVEL")
	log := logrus.New()
	log.SetLevel(level)

	return []harness.DispatcherOption{
		harness.WithTimeout(time.Duration(hc.TimeoutMs) * time.Millisecond),
		harness.WithLegacyCookieHeader(hc.LegacyCookieHeader),
		harness.WithLogger(log),
	}
}
