package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Config holds all application configuration
type Config struct {
	// Server configuration
	Port      string `yaml:"port"`
	LogLevel  string `yaml:"log_level"`
	AccessLog bool   `yaml:"access_log"`

	// Database configuration
	DBType            string `yaml:"db_type"` // sqlite, mysql, postgres, sqlserver
	DBHost            string `yaml:"db_host"`
	DBPort            string `yaml:"db_port"`
	DBDatabase        string `yaml:"db_database"`
	DBUser            string `yaml:"db_user"`
	DBPassword        string `yaml:"db_password"`
	DBConnectionLimit int    `yaml:"db_connection_limit"`

	// CORS configuration
	CORSOrigin      string   `yaml:"cors_origin"`
	CORSHeaders     []string `yaml:"cors_headers"`
	CORSMethods     []string `yaml:"cors_methods"`
	CORSCredentials string   `yaml:"cors_credentials"`

	// Session cookie name
	SessionCookie string `yaml:"session_cookie"`
}

// HarnessConfig holds settings for the request dispatcher used by tests
type HarnessConfig struct {
	TimeoutMs          int
	LogLevel           string
	LegacyCookieHeader bool
}

// Defaults returns the configuration used when nothing is set
func Defaults() *Config {
	return &Config{
		Port:              "3000",
		LogLevel:          "info",
		DBType:            "sqlite",
		DBDatabase:        ":memory:",
		DBConnectionLimit: 5,
		CORSOrigin:        "*",
		CORSHeaders:       []string{"Content-Type", "X-Api-Version"},
		CORSMethods:       []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		CORSCredentials:   "true",
		SessionCookie:     "cookie_session",
	}
}

// Load loads configuration from an optional .env file (ENV_FILE), an optional
// YAML file (CONFIG_FILE) and then environment variables, in that order
func Load() (*Config, error) {
	if err := loadEnvFile(); err != nil {
		return nil, err
	}

	cfg := Defaults()

	if path := os.Getenv("CONFIG_FILE"); path != "" {
		if err := loadYAML(path, cfg); err != nil {
			return nil, err
		}
	}

	cfg.Port = getEnv("PORT", cfg.Port)
	cfg.LogLevel = getEnv("LOG_LEVEL", cfg.LogLevel)
	cfg.AccessLog = getEnvAsBool("ACCESS_LOG", cfg.AccessLog)
	cfg.DBType = getEnv("DB_TYPE", cfg.DBType)
	cfg.DBHost = getEnv("DB_HOST", cfg.DBHost)
	cfg.DBPort = getEnv("DB_PORT", cfg.DBPort)
	cfg.DBDatabase = getEnv("DB_DATABASE", cfg.DBDatabase)
	cfg.DBUser = getEnv("DB_USER", cfg.DBUser)
	cfg.DBPassword = getEnv("DB_PASSWORD", cfg.DBPassword)
	cfg.DBConnectionLimit = getEnvAsInt("DB_CONNECTION_LIMIT", cfg.DBConnectionLimit)
	cfg.CORSOrigin = getEnv("CORS_ORIGIN", cfg.CORSOrigin)
	cfg.CORSHeaders = getEnvAsList("CORS_HEADERS", cfg.CORSHeaders)
	cfg.CORSMethods = getEnvAsList("CORS_METHODS", cfg.CORSMethods)
	cfg.CORSCredentials = getEnv("CORS_CREDENTIALS", cfg.CORSCredentials)
	cfg.SessionCookie = getEnv("SESSION_COOKIE", cfg.SessionCookie)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate checks required fields for the configured database type
func (c *Config) Validate() error {
	switch c.DBType {
	case "sqlite":
	case "mysql", "mariadb", "postgres", "postgresql", "sqlserver", "mssql":
		if c.DBHost == "" {
			return fmt.Errorf("DB_HOST is required for %s", c.DBType)
		}
		if c.DBUser == "" {
			return fmt.Errorf("DB_USER is required for %s", c.DBType)
		}
	default:
		return fmt.Errorf("unsupported database type: %s", c.DBType)
	}
	if c.DBDatabase == "" {
		return fmt.Errorf("DB_DATABASE is required")
	}
	if c.SessionCookie == "" {
		return fmt.Errorf("SESSION_COOKIE must not be empty")
	}
	return nil
}

// LoadHarness loads dispatcher settings from environment variables
func LoadHarness() (*HarnessConfig, error) {
	if err := loadEnvFile(); err != nil {
		return nil, err
	}

	return &HarnessConfig{
		TimeoutMs:          getEnvAsInt("HARNESS_TIMEOUT_MS", 1000),
		LogLevel:           getEnv("HARNESS_LOG_LEVEL", "warn"),
		LegacyCookieHeader: getEnvAsBool("HARNESS_LEGACY_COOKIES", false),
	}, nil
}

func loadEnvFile() error {
	path := os.Getenv("ENV_FILE")
	if path == "" {
		return nil
	}
	if err := godotenv.Load(path); err != nil {
		return fmt.Errorf("failed to load env file %s: %w", path, err)
	}
	return nil
}

func loadYAML(path string, cfg *Config) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read config file %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("failed to parse config file %s: %w", path, err)
	}
	return nil
}

// getEnv gets an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getEnvAsInt gets an environment variable as an integer or returns a default value
func getEnvAsInt(key string, defaultValue int) int {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}
	value, err := strconv.Atoi(valueStr)
	if err != nil {
		return defaultValue
	}
	return value
}

// getEnvAsBool gets an environment variable as a boolean or returns a default value
func getEnvAsBool(key string, defaultValue bool) bool {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}
	value, err := strconv.ParseBool(valueStr)
	if err != nil {
		return defaultValue
	}
	return value
}

// getEnvAsList splits a comma separated environment variable
func getEnvAsList(key string, defaultValue []string) []string {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}
	var out []string
	for _, v := range strings.Split(valueStr, ",") {
		if v = strings.TrimSpace(v); v != "" {
			out = append(out, v)
		}
	}
	return out
}
