package bbolt

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"go.etcd.io/bbolt"

	"github.com/goliatone/go-formwizard/pkg/store"
)

const valuesBucket = "values"

// Store provides a BoltDB-backed KV.
type Store struct {
	db *bbolt.DB
}

// Open opens (or creates) a BoltDB file at path.
func Open(path string) (*Store, error) {
	if strings.TrimSpace(path) == "" {
		return nil, fmt.Errorf("storage path is required")
	}

	cleanPath := filepath.Clean(path)
	db, err := bbolt.Open(cleanPath, 0o600, &bbolt.Options{Timeout: time.Second})
	if err != nil {
		return nil, fmt.Errorf("open storage db: %w", err)
	}

	s := &Store{db: db}
	if err := s.ensureBuckets(); err != nil {
		_ = db.Close()
		return nil, err
	}
	return s, nil
}

// Close closes the underlying BoltDB database.
func (s *Store) Close() error {
	if s == nil || s.db == nil {
		return nil
	}
	return s.db.Close()
}

// Put stores value under key.
func (s *Store) Put(ctx context.Context, key, value string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if s == nil || s.db == nil {
		return fmt.Errorf("storage is not configured")
	}
	if strings.TrimSpace(key) == "" {
		return fmt.Errorf("key is required")
	}

	return s.db.Update(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket([]byte(valuesBucket))
		if bucket == nil {
			return fmt.Errorf("values bucket is missing")
		}
		return bucket.Put([]byte(key), []byte(value))
	})
}

// Get fetches the value stored under key.
func (s *Store) Get(ctx context.Context, key string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	if s == nil || s.db == nil {
		return "", fmt.Errorf("storage is not configured")
	}

	var value string
	err := s.db.View(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket([]byte(valuesBucket))
		if bucket == nil {
			return fmt.Errorf("values bucket is missing")
		}
		payload := bucket.Get([]byte(key))
		if payload == nil {
			return store.ErrAbsent
		}
		// payload is only valid inside the transaction.
		value = string(payload)
		return nil
	})
	if err != nil {
		return "", err
	}
	return value, nil
}

func (s *Store) ensureBuckets() error {
	return s.db.Update(func(tx *bbolt.Tx) error {
		if _, err := tx.CreateBucketIfNotExists([]byte(valuesBucket)); err != nil {
			return fmt.Errorf("create values bucket: %w", err)
		}
		return nil
	})
}

var _ store.Backend = (*Store)(nil)
