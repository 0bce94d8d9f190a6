package store

import (
	"context"
	"errors"
	"io"
)

// DefaultKey is the store key the wizard persists the user record under.
const DefaultKey = "userInfo"

var (
	// ErrAbsent indicates no value is stored under the key.
	ErrAbsent = errors.New("store: record absent")
	// ErrMalformed indicates the stored value could not be decoded.
	ErrMalformed = errors.New("store: malformed record")
)

// KV is the durable local key -> string mapping the persistence bridge
// writes to. Get returns ErrAbsent for missing keys.
type KV interface {
	Get(ctx context.Context, key string) (string, error)
	Put(ctx context.Context, key, value string) error
}

// Backend is a KV that owns resources.
type Backend interface {
	KV
	io.Closer
}
