package wizard

import (
	"context"
	"log/slog"
	"strings"

	"github.com/goliatone/go-formwizard/pkg/model"
)

// Persister writes the confirmed record. *store.Bridge satisfies it.
type Persister interface {
	Save(ctx context.Context, key string, record model.UserRecord) error
}

// Option configures a Machine.
type Option func(*Machine)

// WithPresenter routes view updates to p.
func WithPresenter(p Presenter) Option {
	return func(m *Machine) {
		if p != nil {
			m.presenter = p
		}
	}
}

// WithOptionsProvider replaces the embedded department catalog.
func WithOptionsProvider(provider OptionsProvider) Option {
	return func(m *Machine) {
		if provider != nil {
			m.options = provider
		}
	}
}

// WithPersister sets where Confirm writes the record.
func WithPersister(p Persister) Option {
	return func(m *Machine) {
		if p != nil {
			m.persister = p
		}
	}
}

// WithStoreKey overrides the key the record is persisted under.
func WithStoreKey(key string) Option {
	return func(m *Machine) {
		if key = strings.TrimSpace(key); key != "" {
			m.storeKey = key
		}
	}
}

// WithLogger sets the structured logger.
func WithLogger(logger *slog.Logger) Option {
	return func(m *Machine) {
		if logger != nil {
			m.logger = logger
		}
	}
}

// WithSessionID fixes the session identifier attached to log records.
func WithSessionID(id string) Option {
	return func(m *Machine) {
		if id = strings.TrimSpace(id); id != "" {
			m.sessionID = id
		}
	}
}
