package helpers

import (
	"context"
	"fmt"
	"os"
	"testing"
	"time"

	"github.com/docker/go-connections/nat"
	"github.com/localnerve/httpassert/internal/config"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
)

// DatabaseContainer is a database started for integration tests
type DatabaseContainer struct {
	Container testcontainers.Container
	Config    *config.Config
}

// Terminate stops the container
func (dc *DatabaseContainer) Terminate(t *testing.T) {
	if dc.Container == nil {
		return
	}
	if err := dc.Container.Terminate(context.Background()); err != nil {
		logMessage(t, "Failed to terminate database: %v", err)
	}
}

// StartDatabase starts DB_IMAGE (MariaDB, MySQL or Postgres, chosen by DB_TYPE)
// and returns a configuration that points at its mapped port
func StartDatabase(t *testing.T) (*DatabaseContainer, error) {
	ctx := context.Background()

	dbType := getenv("DB_TYPE", "mariadb")
	containerPort := "3306"
	if dbType == "postgres" {
		containerPort = "5432"
	}

	tcpDbPort, err := nat.NewPort("tcp", containerPort)
	if err != nil {
		return nil, fmt.Errorf("failed to create DB port: %w", err)
	}

	cfg := TestConfig()
	cfg.DBType = dbType
	cfg.DBDatabase = getenv("DB_DATABASE", "notes")
	cfg.DBUser = getenv("DB_USER", "notes")
	cfg.DBPassword = getenv("DB_PASSWORD", "notes-password")

	container, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: testcontainers.ContainerRequest{
			Image:        os.Getenv("DB_IMAGE"),
			ExposedPorts: []string{string(tcpDbPort)},
			Env:          getDBInitEnvMap(cfg),
			WaitingFor:   wait.ForListeningPort(tcpDbPort).WithStartupTimeout(60 * time.Second),
		},
		Started: true,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to start database: %w", err)
	}
	dc := &DatabaseContainer{Container: container, Config: cfg}

	host, err := container.Host(ctx)
	if err != nil {
		dc.Terminate(t)
		return nil, err
	}
	port, err := container.MappedPort(ctx, tcpDbPort)
	if err != nil {
		dc.Terminate(t)
		return nil, err
	}
	cfg.DBHost = host
	cfg.DBPort = port.Port()

	logMessage(t, "database %s listening at %s:%s", dbType, host, cfg.DBPort)
	return dc, nil
}

func getDBInitEnvMap(cfg *config.Config) map[string]string {
	if cfg.DBType == "postgres" {
		return map[string]string{
			"POSTGRES_PASSWORD": cfg.DBPassword,
			"POSTGRES_USER":     cfg.DBUser,
			"POSTGRES_DB":       cfg.DBDatabase,
		}
	}
	return map[string]string{
		"MYSQL_ROOT_PASSWORD": cfg.DBPassword,
		"MYSQL_DATABASE":      cfg.DBDatabase,
		"MYSQL_USER":          cfg.DBUser,
		"MYSQL_PASSWORD":      cfg.DBPassword,
	}
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func logMessage(t *testing.T, format string, args ...any) {
	if t != nil {
		t.Logf(format, args...)
	} else {
		fmt.Printf(format+"\n", args...)
	}
}
