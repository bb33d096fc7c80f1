package services

import (
	"fmt"

	"github.com/localnerve/httpassert/internal/config"
	"github.com/localnerve/httpassert/internal/utils"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// HealthCheckResult represents the result of a health check
type HealthCheckResult struct {
	Status       string            `json:"status"`
	Database     string            `json:"database"`
	Details      map[string]string `json:"details,omitempty"`
	ErrorMessage string            `json:"error,omitempty"`
}

// Healthy reports whether every check passed
func (r HealthCheckResult) Healthy() bool {
	return r.Status == "healthy"
}

// HealthCheck checks that the database host is reachable and answers a ping
func HealthCheck(cfg *config.Config, db *gorm.DB) HealthCheckResult {
	result := HealthCheckResult{
		Status:  "healthy",
		Details: make(map[string]string),
	}

	if cfg.DBType != "sqlite" && cfg.DBHost != "" {
		if err := utils.PingDatabase(cfg.DBType, cfg.DBHost, cfg.DBPort, utils.DefaultPingTimeout); err != nil {
			return unhealthy(result, "unreachable", "database_host_error", err)
		}
	}

	// Check database connectivity
	sqlDB, err := db.DB()
	if err != nil {
		return unhealthy(result, "error", "database_error", err)
	}
	if err := sqlDB.Ping(); err != nil {
		return unhealthy(result, "unreachable", "database_ping_error", err)
	}

	result.Database = "ok"
	result.Details["database_type"] = cfg.DBType
	result.Details["database_name"] = cfg.DBDatabase

	logrus.Debug("health check passed")
	return result
}

func unhealthy(result HealthCheckResult, state, key string, err error) HealthCheckResult {
	result.Status = "unhealthy"
	result.Database = state
	result.Details[key] = err.Error()
	result.ErrorMessage = fmt.Sprintf("Database check failed: %v", err)
	logrus.WithError(err).Warn("health check failed")
	return result
}
