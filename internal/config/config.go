// Package config loads runtime settings from the environment, with an
// optional .env file for local development.
package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Server transport modes.
const (
	ModeStdio = "stdio"
	ModeHTTP  = "http"
)

// Defaults for optional settings.
const (
	DefaultHost      = "0.0.0.0"
	DefaultPort      = 3000
	DefaultRateLimit = 20
	DefaultLogLevel  = "info"
)

// Validation errors.
var (
	ErrMissingAPIURL    = errors.New("N8N_API_URL is required")
	ErrMissingAuthToken = errors.New("MCP_AUTH_TOKEN is required in http mode")
	ErrInvalidMode      = errors.New("MCP_MODE must be \"stdio\" or \"http\"")
	ErrInvalidPort      = errors.New("MCP_PORT must be between 1 and 65535")
)

// Config holds the full runtime configuration: the n8n connection
// settings consumed by the API client and the serving settings consumed
// by the MCP server.
type Config struct {
	// n8n connection.
	APIURL         string
	APIKey         string
	WebhookBaseURL string
	Timeout        time.Duration
	MaxRetries     int
	RetryDelay     time.Duration

	// MCP serving.
	Mode       string
	Host       string
	Port       int
	AuthToken  string
	CORSOrigin string
	RateLimit  int

	LogLevel string
}

// Load reads configuration from the environment. A .env file in the
// working directory is loaded first but never overrides variables
// already set in the process environment.
func Load() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{
		APIURL:         os.Getenv("N8N_API_URL"),
		APIKey:         os.Getenv("N8N_API_KEY"),
		WebhookBaseURL: os.Getenv("N8N_WEBHOOK_BASE_URL"),
		Mode:           envOr("MCP_MODE", ModeStdio),
		Host:           envOr("MCP_HOST", DefaultHost),
		AuthToken:      os.Getenv("MCP_AUTH_TOKEN"),
		CORSOrigin:     envOr("MCP_CORS_ORIGIN", "*"),
		LogLevel:       envOr("LOG_LEVEL", DefaultLogLevel),
	}

	var err error
	if cfg.Timeout, err = envDuration("N8N_TIMEOUT"); err != nil {
		return nil, err
	}
	if cfg.RetryDelay, err = envDuration("N8N_RETRY_DELAY"); err != nil {
		return nil, err
	}
	if cfg.MaxRetries, err = envInt("N8N_MAX_RETRIES", 0); err != nil {
		return nil, err
	}
	if cfg.Port, err = envInt("MCP_PORT", DefaultPort); err != nil {
		return nil, err
	}
	if cfg.RateLimit, err = envInt("MCP_RATE_LIMIT", DefaultRateLimit); err != nil {
		return nil, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks the configuration for consistency. It is called by
// Load and again by the command layer after flag overrides.
func (c *Config) Validate() error {
	if c.APIURL == "" {
		return ErrMissingAPIURL
	}
	if c.Mode != ModeStdio && c.Mode != ModeHTTP {
		return fmt.Errorf("%w, got %q", ErrInvalidMode, c.Mode)
	}
	if c.Port < 1 || c.Port > 65535 {
		return fmt.Errorf("%w, got %d", ErrInvalidPort, c.Port)
	}
	if c.Mode == ModeHTTP && c.AuthToken == "" {
		return ErrMissingAuthToken
	}
	if c.MaxRetries < 0 {
		return fmt.Errorf("N8N_MAX_RETRIES must be non-negative, got %d", c.MaxRetries)
	}
	return nil
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func envInt(key string, fallback int) (int, error) {
	v := os.Getenv(key)
	if v == "" {
		return fallback, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, fmt.Errorf("%s must be an integer, got %q", key, v)
	}
	return n, nil
}

// envDuration parses a Go duration string ("5s", "250ms"). A bare
// integer is read as seconds, which keeps plain-number values from
// docker-compose environments working.
func envDuration(key string) (time.Duration, error) {
	v := os.Getenv(key)
	if v == "" {
		return 0, nil
	}
	if n, err := strconv.Atoi(v); err == nil {
		return time.Duration(n) * time.Second, nil
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return 0, fmt.Errorf("%s must be a duration, got %q", key, v)
	}
	return d, nil
}
