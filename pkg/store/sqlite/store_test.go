package sqlite

import (
	"context"
	"errors"
	"path/filepath"
	"testing"
	"time"

	"github.com/goliatone/go-formwizard/pkg/model"
	"github.com/goliatone/go-formwizard/pkg/store"
)

func openTempStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open(filepath.Join(t.TempDir(), "formwizard.sqlite"))
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	t.Cleanup(func() { _ = s.Close() })
	return s
}

func TestOpenRequiresPath(t *testing.T) {
	if _, err := Open(""); err == nil {
		t.Fatal("expected error for empty path")
	}
}

func TestPutUpsertsAndStampsTime(t *testing.T) {
	s := openTempStore(t)
	fixed := time.Date(2026, 2, 1, 10, 0, 0, 0, time.UTC)
	s.now = func() time.Time { return fixed }

	ctx := context.Background()
	if err := s.Put(ctx, "userInfo", "v1"); err != nil {
		t.Fatalf("put: %v", err)
	}
	if err := s.Put(ctx, "userInfo", "v2"); err != nil {
		t.Fatalf("put again: %v", err)
	}

	var count int
	var updatedAt int64
	row := s.sqlDB.QueryRow("SELECT COUNT(*), MAX(updated_at) FROM kv WHERE key = ?", "userInfo")
	if err := row.Scan(&count, &updatedAt); err != nil {
		t.Fatalf("scan: %v", err)
	}
	if count != 1 {
		t.Fatalf("expected a single row, got %d", count)
	}
	if updatedAt != fixed.Unix() {
		t.Fatalf("expected updated_at %d, got %d", fixed.Unix(), updatedAt)
	}

	got, err := s.Get(ctx, "userInfo")
	if err != nil || got != "v2" {
		t.Fatalf("expected v2, got %q (%v)", got, err)
	}
}

func TestGetNotFound(t *testing.T) {
	s := openTempStore(t)
	if _, err := s.Get(context.Background(), "missing"); !errors.Is(err, store.ErrAbsent) {
		t.Fatalf("expected not found, got %v", err)
	}
}

func TestBridgeOverSQLite(t *testing.T) {
	s := openTempStore(t)
	bridge := store.NewBridge(s)
	ctx := context.Background()

	record := model.UserRecord{
		FirstName:  "John",
		LastName:   "Doe",
		Login:      "jdoe",
		Email:      "jdoe@example.com",
		Password:   "Abc123!x",
		Department: "Sales",
		Vacancy:    "Sales Manager",
	}
	if err := bridge.Save(ctx, store.DefaultKey, record); err != nil {
		t.Fatalf("save: %v", err)
	}
	got, ok := bridge.Load(ctx, store.DefaultKey)
	if !ok || got != record {
		t.Fatalf("round trip mismatch: %+v", got)
	}
}
