package utils

import (
	"fmt"
	"net"
	"time"
)

// DefaultPingTimeout bounds database host dials made by health checks
const DefaultPingTimeout = 1500 * time.Millisecond

var defaultDBPorts = map[string]string{
	"mysql":      "3306",
	"mariadb":    "3306",
	"postgres":   "5432",
	"postgresql": "5432",
	"sqlserver":  "1433",
	"mssql":      "1433",
}

// PingDatabase dials the database host over TCP. An empty port falls back to
// the usual port for dbType.
func PingDatabase(dbType, host, port string, timeout time.Duration) error {
	if host == "" {
		return fmt.Errorf("no host configured for %s", dbType)
	}
	if port == "" {
		port = defaultDBPorts[dbType]
	}
	if port == "" {
		return fmt.Errorf("no default port for database type %s", dbType)
	}

	address := net.JoinHostPort(host, port)
	conn, err := net.DialTimeout("tcp", address, timeout)
	if err != nil {
		return fmt.Errorf("%s host %s unreachable: %w", dbType, address, err)
	}
	return conn.Close()
}
