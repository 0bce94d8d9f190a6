package memory

import (
	"context"
	"sync"

	"github.com/goliatone/go-formwizard/pkg/store"
)

// Store is an in-process KV. Values vanish with the process.
type Store struct {
	mu     sync.RWMutex
	values map[string]string
}

// New returns an empty store, optionally seeded with values.
func New(seed map[string]string) *Store {
	values := make(map[string]string, len(seed))
	for k, v := range seed {
		values[k] = v
	}
	return &Store{values: values}
}

// Get implements store.KV.
func (s *Store) Get(ctx context.Context, key string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	s.mu.RLock()
	defer s.mu.RUnlock()

	value, ok := s.values[key]
	if !ok {
		return "", store.ErrAbsent
	}
	return value, nil
}

// Put implements store.KV.
func (s *Store) Put(ctx context.Context, key, value string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.values == nil {
		s.values = make(map[string]string)
	}
	s.values[key] = value
	return nil
}

// Close is a no-op.
func (s *Store) Close() error { return nil }

var _ store.Backend = (*Store)(nil)
