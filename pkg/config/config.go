// Package config reads the wizard settings from FORMWIZARD_* environment
// variables and builds the process logger.
package config

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"time"
)

// Store backends.
const (
	StoreBBolt  = "bbolt"
	StoreSQLite = "sqlite"
	StoreMemory = "memory"
)

// Log formats.
const (
	LogFormatText = "text"
	LogFormatJSON = "json"
)

// ErrInvalid wraps every validation failure.
var ErrInvalid = errors.New("config: invalid configuration")

// Config holds the runtime settings.
type Config struct {
	Store           string        `env:"FORMWIZARD_STORE" envDefault:"bbolt"`
	StorePath       string        `env:"FORMWIZARD_STORE_PATH"`
	StoreKey        string        `env:"FORMWIZARD_STORE_KEY" envDefault:"userInfo"`
	Locale          string        `env:"FORMWIZARD_LOCALE" envDefault:"en-US"`
	Theme           string        `env:"FORMWIZARD_THEME" envDefault:"classic"`
	ThemeVariant    string        `env:"FORMWIZARD_THEME_VARIANT"`
	LogLevel        string        `env:"FORMWIZARD_LOG_LEVEL" envDefault:"warn"`
	LogFormat       string        `env:"FORMWIZARD_LOG_FORMAT" envDefault:"text"`
	TransitionDelay time.Duration `env:"FORMWIZARD_TRANSITION_DELAY" envDefault:"300ms"`
	CatalogFile     string        `env:"FORMWIZARD_CATALOG_FILE"`
	TemplateDir     string        `env:"FORMWIZARD_TEMPLATE_DIR"`
}

// Default returns the settings used when nothing is configured, with an
// in-memory store so library callers never touch the filesystem.
func Default() Config {
	return Config{
		Store:           StoreMemory,
		StoreKey:        "userInfo",
		Locale:          "en-US",
		Theme:           "classic",
		LogLevel:        "warn",
		LogFormat:       LogFormatText,
		TransitionDelay: 300 * time.Millisecond,
	}
}

// Load parses the environment and validates the result.
func Load() (Config, error) {
	var cfg Config
	if err := ParseEnv(&cfg); err != nil {
		return Config{}, err
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate normalises the values and rejects unsupported ones.
func (c *Config) Validate() error {
	c.Store = strings.ToLower(strings.TrimSpace(c.Store))
	c.LogFormat = strings.ToLower(strings.TrimSpace(c.LogFormat))
	c.StoreKey = strings.TrimSpace(c.StoreKey)

	switch c.Store {
	case StoreBBolt, StoreSQLite, StoreMemory:
	default:
		return fmt.Errorf("%w: FORMWIZARD_STORE %q (allowed: bbolt, sqlite, memory)", ErrInvalid, c.Store)
	}
	if c.StoreKey == "" {
		return fmt.Errorf("%w: FORMWIZARD_STORE_KEY is empty", ErrInvalid)
	}
	switch c.LogFormat {
	case LogFormatText, LogFormatJSON:
	default:
		return fmt.Errorf("%w: FORMWIZARD_LOG_FORMAT %q (allowed: text, json)", ErrInvalid, c.LogFormat)
	}
	if _, err := parseLogLevel(c.LogLevel); err != nil {
		return fmt.Errorf("%w: FORMWIZARD_LOG_LEVEL: %v", ErrInvalid, err)
	}
	if c.TransitionDelay < 0 {
		return fmt.Errorf("%w: FORMWIZARD_TRANSITION_DELAY must not be negative", ErrInvalid)
	}
	return nil
}

// ResolvedStorePath returns StorePath or the backend's default file name.
func (c Config) ResolvedStorePath() string {
	if path := strings.TrimSpace(c.StorePath); path != "" {
		return path
	}
	switch c.Store {
	case StoreSQLite:
		return "formwizard.sqlite"
	case StoreBBolt:
		return "formwizard.db"
	default:
		return ""
	}
}

// Level returns the configured slog level, defaulting to info.
func (c Config) Level() slog.Level {
	level, err := parseLogLevel(c.LogLevel)
	if err != nil {
		return slog.LevelInfo
	}
	return level
}

// NewLogger builds a text or JSON logger writing to w.
func (c Config) NewLogger(w io.Writer) *slog.Logger {
	opts := &slog.HandlerOptions{Level: c.Level()}

	var handler slog.Handler
	if c.LogFormat == LogFormatJSON {
		handler = slog.NewJSONHandler(w, opts)
	} else {
		handler = slog.NewTextHandler(w, opts)
	}
	return slog.New(handler)
}

func parseLogLevel(level string) (slog.Level, error) {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "debug":
		return slog.LevelDebug, nil
	case "", "info":
		return slog.LevelInfo, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return slog.LevelInfo, fmt.Errorf("unknown level %q (allowed: debug, info, warn, error)", level)
	}
}
