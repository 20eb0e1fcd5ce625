// internal/config/config.go
package config

import (
	"fmt"
	"net/url"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Host         string
	Port         string
	Environment  string
	QueryTimeout time.Duration
	Database     DatabaseConfig
	CORS         CORSConfig
	Logging      LoggingConfig
}

type DatabaseConfig struct {
	Driver         string
	URL            string
	ConnectTimeout time.Duration
}

type CORSConfig struct {
	AllowedOrigins []string
}

type LoggingConfig struct {
	Level  string // debug, info, warn, error
	Format string // json, text
}

// Load reads the configuration from the environment. A .env file in the
// working directory is applied first when present; real environment
// variables win over it.
func Load() (*Config, error) {
	_ = godotenv.Load()

	queryTimeout, err := getDuration("QUERY_TIMEOUT", 5*time.Second)
	if err != nil {
		return nil, err
	}
	connectTimeout, err := getDuration("DB_CONNECT_TIMEOUT", 30*time.Second)
	if err != nil {
		return nil, err
	}

	cfg := &Config{
		Host:         getEnv("HOST", "0.0.0.0"),
		Port:         getEnv("PORT", "3000"),
		Environment:  getEnv("ENVIRONMENT", "development"),
		QueryTimeout: queryTimeout,
		Database: DatabaseConfig{
			Driver:         getEnv("DB_DRIVER", "postgres"),
			URL:            databaseURL(),
			ConnectTimeout: connectTimeout,
		},
		CORS: CORSConfig{
			AllowedOrigins: splitList(getEnv("CORS_ALLOWED_ORIGINS", "*")),
		},
		Logging: LoggingConfig{
			Level:  strings.ToLower(getEnv("LOG_LEVEL", "info")),
			Format: strings.ToLower(getEnv("LOG_FORMAT", "json")),
		},
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func databaseURL() string {
	if dsn := os.Getenv("DATABASE_URL"); dsn != "" {
		return dsn
	}

	host := getEnv("DB_HOST", "localhost")
	port := getEnv("DB_PORT", "5432")
	user := getEnv("DB_USER", "clovis")
	password := getEnv("DB_PASSWORD", "clovis")
	dbName := getEnv("DB_NAME", "francofolies")

	u := &url.URL{
		Scheme: "postgres",
		User:   url.UserPassword(user, password),
		Host:   host + ":" + port,
		Path:   dbName,
	}
	q := u.Query()
	q.Set("sslmode", getEnv("DB_SSLMODE", "disable"))
	u.RawQuery = q.Encode()
	return u.String()
}

// Addr is the listen address of the HTTP server.
func (c *Config) Addr() string {
	return c.Host + ":" + c.Port
}

func (c *Config) Validate() error {
	var problems []string

	if port, err := strconv.Atoi(c.Port); err != nil || port < 1 || port > 65535 {
		problems = append(problems, "PORT must be between 1 and 65535")
	}
	if c.Database.URL == "" {
		problems = append(problems, "DATABASE_URL is required")
	}
	switch c.Database.Driver {
	case "postgres", "pgx":
	default:
		problems = append(problems, "DB_DRIVER must be one of: postgres, pgx")
	}
	if c.Database.ConnectTimeout <= 0 {
		problems = append(problems, "DB_CONNECT_TIMEOUT must be positive")
	}
	if c.QueryTimeout <= 0 {
		problems = append(problems, "QUERY_TIMEOUT must be positive")
	}
	switch c.Logging.Level {
	case "debug", "info", "warn", "error":
	default:
		problems = append(problems, "LOG_LEVEL must be one of: debug, info, warn, error")
	}
	switch c.Logging.Format {
	case "json", "text":
	default:
		problems = append(problems, "LOG_FORMAT must be one of: json, text")
	}

	if len(problems) > 0 {
		return fmt.Errorf("invalid configuration:\n  - %s", strings.Join(problems, "\n  - "))
	}
	return nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getDuration(key string, defaultValue time.Duration) (time.Duration, error) {
	raw := os.Getenv(key)
	if raw == "" {
		return defaultValue, nil
	}
	d, err := time.ParseDuration(raw)
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %w", key, err)
	}
	return d, nil
}

func splitList(raw string) []string {
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}
