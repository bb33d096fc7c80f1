// app.go
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

package app

import (
	"errors"
	"time"

	"github.com/ansrivas/fiberprometheus/v2"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/compress"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/localnerve/httpassert/internal/config"
	"github.com/localnerve/httpassert/internal/handlers"
	"github.com/localnerve/httpassert/internal/middleware"
	"github.com/localnerve/httpassert/internal/services"
	"github.com/localnerve/httpassert/internal/types"
	"github.com/localnerve/httpassert/internal/utils"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// New builds the Fiber application. Each call gets its own metrics registry,
// so an application can be rebuilt in the same process.
func New(cfg *config.Config, db *gorm.DB) *fiber.App {
	app := fiber.New(fiber.Config{
		ErrorHandler:          customErrorHandler,
		DisableStartupMessage: true,
	})

	// Global middleware
	app.Use(recover.New())
	if cfg.AccessLog {
		app.Use(logger.New(logger.Config{
			Output: logrus.StandardLogger().WriterLevel(logrus.InfoLevel),
		}))
	}
	app.Use(compress.New())

	// Prometheus metrics
	metrics := fiberprometheus.NewWithRegistry(prometheus.NewRegistry(), "httpassert", "", "", nil)
	metrics.RegisterAt(app, "/metrics")
	app.Use(metrics.Middleware)

	app.Get("/health", func(c *fiber.Ctx) error {
		result := services.HealthCheck(cfg, db)
		if !result.Healthy() {
			return c.Status(fiber.StatusServiceUnavailable).JSON(result)
		}
		return c.JSON(result)
	})

	// API routes under /api
	api := app.Group("/api")
	api.Use(middleware.VersionMiddleware())
	api.Use(middleware.RequestID())
	api.Use(middleware.CORS(cfg))

	api.All("/echo", handlers.Echo)
	api.Get("/status/:code", handlers.Status)
	api.Get("/panic", handlers.Panic)
	api.Get("/text", handlers.Text)

	notes := &handlers.NotesHandler{DB: db}
	api.Get("/notes", notes.ListNotes)
	api.Post("/notes", notes.CreateNote)
	api.Get("/notes/:id", notes.GetNote)
	api.Put("/notes/:id", notes.UpdateNote)
	api.Delete("/notes/:id", notes.DeleteNote)

	sessions := &handlers.SessionHandler{DB: db, Cookie: cfg.SessionCookie}
	api.Post("/session", sessions.CreateSession)
	api.Delete("/session", sessions.DeleteSession)
	api.Get("/private", middleware.AuthSession(db, cfg.SessionCookie), sessions.Private)

	// 404 handler
	app.Use(func(c *fiber.Ctx) error {
		return utils.NotFoundResponse(c, "[404] Resource Not Found")
	})

	return app
}

// customErrorHandler renders every returned error as the JSON error envelope
func customErrorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError
	message := err.Error()
	errorType := "unknown"

	var customErr *types.CustomError
	var fiberErr *fiber.Error
	switch {
	case errors.As(err, &customErr):
		code = customErr.Code
		message = customErr.Message
		errorType = customErr.Type
	case errors.As(err, &fiberErr):
		code = fiberErr.Code
		message = fiberErr.Message
	}

	if code >= fiber.StatusInternalServerError {
		logrus.WithFields(logrus.Fields{
			"method": c.Method(),
			"url":    c.OriginalURL(),
		}).WithError(err).Error("request failed")
	}

	return c.Status(code).JSON(utils.ErrorResponseStruct{
		Status:    code,
		Message:   message,
		Ok:        false,
		Timestamp: time.Now().UTC().Format(time.RFC3339),
		URL:       c.OriginalURL(),
		Type:      errorType,
	})
}
