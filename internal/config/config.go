// Package config loads server settings from the environment.
package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"

	"github.com/windmill-labs/windmill-homepage/pkg/logging"
)

// Config is the runtime configuration shared by every command.
type Config struct {
	Addr            string        `env:"WINDMILL_HOMEPAGE_ADDR"             envDefault:":8080"`
	BaseURL         string        `env:"WINDMILL_HOMEPAGE_BASE_URL"         envDefault:"https://windmill.dev"`
	ContentFile     string        `env:"WINDMILL_HOMEPAGE_CONTENT_FILE"`
	StaticDir       string        `env:"WINDMILL_HOMEPAGE_STATIC_DIR"       envDefault:"static"`
	LogLevel        string        `env:"WINDMILL_HOMEPAGE_LOG_LEVEL"        envDefault:"info"`
	LogBackend      string        `env:"WINDMILL_HOMEPAGE_LOG_BACKEND"      envDefault:"slog"`
	LogJSON         bool          `env:"WINDMILL_HOMEPAGE_LOG_JSON"`
	OTelEndpoint    string        `env:"WINDMILL_HOMEPAGE_OTEL_ENDPOINT"`
	ServiceName     string        `env:"WINDMILL_HOMEPAGE_SERVICE_NAME"     envDefault:"windmill-homepage"`
	ShutdownTimeout time.Duration `env:"WINDMILL_HOMEPAGE_SHUTDOWN_TIMEOUT" envDefault:"10s"`
	ReloadDebounce  time.Duration `env:"WINDMILL_HOMEPAGE_RELOAD_DEBOUNCE"  envDefault:"150ms"`
}

// Load parses the environment into a Config and validates it.
func Load() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate reports settings that cannot work together.
func (c Config) Validate() error {
	if c.Addr == "" {
		return errors.New("config: addr is required")
	}
	if _, err := logging.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("config: log level: %w", err)
	}
	switch c.LogBackend {
	case logging.BackendSlog, logging.BackendZap:
	default:
		return fmt.Errorf("config: unknown log backend %q", c.LogBackend)
	}
	if c.ShutdownTimeout <= 0 {
		return fmt.Errorf("config: shutdown timeout must be positive, got %s", c.ShutdownTimeout)
	}
	if c.ReloadDebounce < 0 {
		return fmt.Errorf("config: reload debounce must not be negative, got %s", c.ReloadDebounce)
	}
	return nil
}

// Logging returns the logger options described by c.
func (c Config) Logging() logging.Options {
	return logging.Options{Backend: c.LogBackend, Level: c.LogLevel, JSON: c.LogJSON}
}
