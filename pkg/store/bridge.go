package store

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/goliatone/go-formwizard/pkg/model"
)

// Bridge serialises user records to and from a KV.
type Bridge struct {
	kv     KV
	logger *slog.Logger
}

// BridgeOption configures a Bridge.
type BridgeOption func(*Bridge)

// WithLogger routes swallowed read errors to logger.
func WithLogger(logger *slog.Logger) BridgeOption {
	return func(b *Bridge) {
		if logger != nil {
			b.logger = logger
		}
	}
}

// NewBridge wraps kv.
func NewBridge(kv KV, opts ...BridgeOption) *Bridge {
	b := &Bridge{
		kv:     kv,
		logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		if opt == nil {
			continue
		}
		opt(b)
	}
	return b
}

// Save stores record under key as JSON. The password confirmation is never
// written.
func (b *Bridge) Save(ctx context.Context, key string, record model.UserRecord) error {
	if b == nil || b.kv == nil {
		return fmt.Errorf("store: bridge is not configured")
	}
	if strings.TrimSpace(key) == "" {
		return fmt.Errorf("store: key is required")
	}

	payload, err := json.Marshal(record.Persistable())
	if err != nil {
		return fmt.Errorf("store: marshal record: %w", err)
	}
	if err := b.kv.Put(ctx, key, string(payload)); err != nil {
		return fmt.Errorf("store: put %q: %w", key, err)
	}
	b.logger.Debug("record saved", "key", key, "bytes", len(payload))
	return nil
}

// Load returns the record stored under key. Absent and malformed values are
// reported as (zero, false) and never surface as errors.
func (b *Bridge) Load(ctx context.Context, key string) (model.UserRecord, bool) {
	record, err := b.LoadDetailed(ctx, key)
	if err != nil {
		if b != nil && b.logger != nil {
			b.logger.Debug("stored record unavailable", "key", key, "error", err)
		}
		return model.UserRecord{}, false
	}
	return record, true
}

// LoadDetailed is Load with the read error exposed. Errors wrap ErrAbsent
// or ErrMalformed, or come from the KV itself.
func (b *Bridge) LoadDetailed(ctx context.Context, key string) (model.UserRecord, error) {
	if b == nil || b.kv == nil {
		return model.UserRecord{}, fmt.Errorf("store: bridge is not configured")
	}

	raw, err := b.kv.Get(ctx, key)
	if err != nil {
		if errors.Is(err, ErrAbsent) {
			return model.UserRecord{}, err
		}
		return model.UserRecord{}, fmt.Errorf("store: get %q: %w", key, err)
	}

	trimmed := bytes.TrimSpace([]byte(raw))
	if len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null")) {
		return model.UserRecord{}, ErrAbsent
	}

	var record model.UserRecord
	if err := json.Unmarshal(trimmed, &record); err != nil {
		return model.UserRecord{}, fmt.Errorf("%w: %v", ErrMalformed, err)
	}
	return record, nil
}
