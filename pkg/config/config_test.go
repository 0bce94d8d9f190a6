package config

import (
	"bytes"
	"encoding/json"
	"errors"
	"log/slog"
	"strings"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}

	want := Config{
		Store:           StoreBBolt,
		StoreKey:        "userInfo",
		Locale:          "en-US",
		Theme:           "classic",
		LogLevel:        "warn",
		LogFormat:       LogFormatText,
		TransitionDelay: 300 * time.Millisecond,
	}
	if diff := cmp.Diff(want, cfg); diff != "" {
		t.Fatalf("defaults mismatch (-want +got):\n%s", diff)
	}
	if cfg.ResolvedStorePath() != "formwizard.db" {
		t.Fatalf("unexpected default path %q", cfg.ResolvedStorePath())
	}
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("FORMWIZARD_STORE", "SQLite")
	t.Setenv("FORMWIZARD_STORE_PATH", "/tmp/wizard.sqlite")
	t.Setenv("FORMWIZARD_LOCALE", "ru-RU")
	t.Setenv("FORMWIZARD_TRANSITION_DELAY", "0s")
	t.Setenv("FORMWIZARD_LOG_LEVEL", "debug")
	t.Setenv("FORMWIZARD_LOG_FORMAT", "json")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Store != StoreSQLite || cfg.ResolvedStorePath() != "/tmp/wizard.sqlite" {
		t.Fatalf("unexpected store settings %+v", cfg)
	}
	if cfg.Locale != "ru-RU" || cfg.TransitionDelay != 0 {
		t.Fatalf("unexpected locale/delay %+v", cfg)
	}
	if cfg.Level() != slog.LevelDebug {
		t.Fatalf("expected debug level, got %v", cfg.Level())
	}
}

func TestLoadRejectsInvalidValues(t *testing.T) {
	cases := map[string]string{
		"FORMWIZARD_STORE":            "redis",
		"FORMWIZARD_LOG_FORMAT":       "xml",
		"FORMWIZARD_LOG_LEVEL":        "loud",
		"FORMWIZARD_TRANSITION_DELAY": "-1s",
		"FORMWIZARD_STORE_KEY":        "  ",
	}
	for key, value := range cases {
		t.Run(key, func(t *testing.T) {
			t.Setenv(key, value)
			_, err := Load()
			if !errors.Is(err, ErrInvalid) {
				t.Fatalf("expected ErrInvalid for %s=%q, got %v", key, value, err)
			}
		})
	}
}

func TestLoadParseError(t *testing.T) {
	t.Setenv("FORMWIZARD_TRANSITION_DELAY", "soon")

	_, err := Load()
	if err == nil {
		t.Fatal("expected error")
	}
	if !strings.Contains(err.Error(), "parse env:") {
		t.Fatalf("expected parse env prefix, got %v", err)
	}
}

func TestNewLogger(t *testing.T) {
	var buf bytes.Buffer
	cfg := Config{LogLevel: "info", LogFormat: LogFormatJSON}
	logger := cfg.NewLogger(&buf)

	logger.Debug("hidden")
	logger.Info("wizard started", "session", "abc")

	var entry map[string]any
	if err := json.Unmarshal(buf.Bytes(), &entry); err != nil {
		t.Fatalf("expected a single json line, got %q: %v", buf.String(), err)
	}
	if entry["msg"] != "wizard started" || entry["session"] != "abc" {
		t.Fatalf("unexpected entry %v", entry)
	}

	buf.Reset()
	Config{LogLevel: "error", LogFormat: LogFormatText}.NewLogger(&buf).Warn("dropped")
	if buf.Len() != 0 {
		t.Fatalf("expected warn to be filtered, got %q", buf.String())
	}
}

func TestDefaultIsValid(t *testing.T) {
	cfg := Default()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("default config invalid: %v", err)
	}
	if cfg.Store != StoreMemory || cfg.ResolvedStorePath() != "" {
		t.Fatalf("expected memory store without a path, got %+v", cfg)
	}
}
