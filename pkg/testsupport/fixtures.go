package testsupport

import (
	"bytes"
	"io"
	"testing"

	"github.com/goliatone/go-formwizard/pkg/model"
	"github.com/goliatone/go-formwizard/pkg/store"
	"github.com/goliatone/go-formwizard/pkg/store/memory"
)

// SampleRecord returns a complete record that passes every validation rule.
func SampleRecord() model.UserRecord {
	return model.UserRecord{
		FirstName:  "John",
		LastName:   "Doe",
		Login:      "jdoe",
		Email:      "jdoe@example.com",
		Password:   "Abc123!x",
		Company:    "Acme",
		Department: "Technology",
		Vacancy:    "Front End",
	}
}

// MemoryBridge returns a persistence bridge over a fresh in-memory store,
// plus the store so tests can inspect the raw payload.
func MemoryBridge(t *testing.T, seed map[string]string) (*store.Bridge, *memory.Store) {
	t.Helper()
	kv := memory.New(seed)
	t.Cleanup(func() { _ = kv.Close() })
	return store.NewBridge(kv), kv
}

// CaptureTemplateOutput executes a render function that writes to an io.Writer,
// returning both the string result and the writer contents. Tests can assert
// the renderer returns and writes the same payload without duplicating buffer
// setup.
func CaptureTemplateOutput(t *testing.T, render func(io.Writer) (string, error)) (string, string) {
	t.Helper()

	var buf bytes.Buffer
	out, err := render(&buf)
	if err != nil {
		t.Fatalf("render template: %v", err)
	}

	return out, buf.String()
}
