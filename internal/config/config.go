package config

import (
	"fmt"
	"time"

	"github.com/kelseyhightower/envconfig"
)

// Config holds all application configuration.
type Config struct {
	Server ServerConfig
	App    AppConfig
	UID    UIDConfig
}

// ServerConfig holds HTTP server configuration.
type ServerConfig struct {
	Port            string        `envconfig:"SERVER_PORT" required:"true"`
	Host            string        `envconfig:"SERVER_HOST" required:"true"`
	ReadTimeout     time.Duration `envconfig:"SERVER_READ_TIMEOUT" required:"true"`
	WriteTimeout    time.Duration `envconfig:"SERVER_WRITE_TIMEOUT" required:"true"`
	IdleTimeout     time.Duration `envconfig:"SERVER_IDLE_TIMEOUT" required:"true"`
	ShutdownTimeout time.Duration `envconfig:"SERVER_SHUTDOWN_TIMEOUT" required:"true"`
}

// Validate validates the server configuration.
func (c *ServerConfig) Validate() error {
	if c.Port == "" {
		return fmt.Errorf("port cannot be empty")
	}
	if c.Host == "" {
		return fmt.Errorf("host cannot be empty")
	}
	if c.ReadTimeout <= 0 {
		return fmt.Errorf("read timeout must be positive")
	}
	if c.WriteTimeout <= 0 {
		return fmt.Errorf("write timeout must be positive")
	}
	if c.IdleTimeout <= 0 {
		return fmt.Errorf("idle timeout must be positive")
	}
	if c.ShutdownTimeout <= 0 {
		return fmt.Errorf("shutdown timeout must be positive")
	}
	return nil
}

// AppConfig holds application-specific configuration.
type AppConfig struct {
	Environment    string `envconfig:"APP_ENV" required:"true"`   // development, staging, production, test
	LogLevel       string `envconfig:"LOG_LEVEL" required:"true"` // debug, info, warn, error
	ServiceName    string `envconfig:"APP_SERVICE_NAME" default:"uidgen"`
	ServiceVersion string `envconfig:"APP_SERVICE_VERSION" default:"dev"`
}

// Validate validates the app configuration.
func (c *AppConfig) Validate() error {
	validEnvs := map[string]bool{
		"development": true,
		"staging":     true,
		"production":  true,
		"test":        true,
	}
	if !validEnvs[c.Environment] {
		return fmt.Errorf("invalid environment: %s (must be one of: development, staging, production, test)", c.Environment)
	}

	validLogLevels := map[string]bool{
		"debug": true,
		"info":  true,
		"warn":  true,
		"error": true,
	}
	if !validLogLevels[c.LogLevel] {
		return fmt.Errorf("invalid log level: %s (must be one of: debug, info, warn, error)", c.LogLevel)
	}
	return nil
}

// UIDConfig holds identifier generation configuration.
type UIDConfig struct {
	DefaultLength int `envconfig:"UID_DEFAULT_LENGTH" default:"8"`
	MaxLength     int `envconfig:"UID_MAX_LENGTH" default:"64"`
	MaxBatch      int `envconfig:"UID_MAX_BATCH" default:"1000"`
}

// Validate validates the UID configuration.
func (c *UIDConfig) Validate() error {
	if c.DefaultLength <= 0 {
		return fmt.Errorf("default length must be positive")
	}
	if c.MaxLength <= 0 {
		return fmt.Errorf("max length must be positive")
	}
	if c.DefaultLength > c.MaxLength {
		return fmt.Errorf("default length (%d) cannot be greater than max length (%d)", c.DefaultLength, c.MaxLength)
	}
	if c.MaxBatch <= 0 {
		return fmt.Errorf("max batch must be positive")
	}
	return nil
}

// Load loads configuration from environment variables only.
// (.env loading for dev happens in the app bootstrap, not here.)
func Load() (*Config, error) {
	cfg := &Config{}

	if err := envconfig.Process("", &cfg.Server); err != nil {
		return nil, fmt.Errorf("failed to load Server config: %w", err)
	}
	if err := cfg.Server.Validate(); err != nil {
		return nil, fmt.Errorf("invalid Server config: %w", err)
	}

	if err := envconfig.Process("", &cfg.App); err != nil {
		return nil, fmt.Errorf("failed to load App config: %w", err)
	}
	if err := cfg.App.Validate(); err != nil {
		return nil, fmt.Errorf("invalid App config: %w", err)
	}

	if err := envconfig.Process("", &cfg.UID); err != nil {
		return nil, fmt.Errorf("failed to load UID config: %w", err)
	}
	if err := cfg.UID.Validate(); err != nil {
		return nil, fmt.Errorf("invalid UID config: %w", err)
	}

	return cfg, nil
}
