package fields

import (
	"strings"
	"sync"

	"github.com/goliatone/go-formwizard/pkg/model"
)

// Form identifiers for the two sub-forms the wizard collects.
const (
	FormIdentity = "user-form"
	FormRole     = "spec-form"
)

// ControlKind tells the presentation layer which kind of control backs a
// field.
type ControlKind string

const (
	ControlInput    ControlKind = "input"
	ControlPassword ControlKind = "password"
	ControlSelect   ControlKind = "select"
)

// Field describes where a logical field lives in the presentation layer.
type Field struct {
	Name     string
	Control  string
	Form     string
	Kind     ControlKind
	LabelKey string
	Optional bool
}

// Registry maps logical field names to presentation controls. Registration
// order is preserved so forms render fields in a stable sequence.
type Registry struct {
	mu     sync.RWMutex
	fields []Field
	index  map[string]int
}

// NewRegistry constructs a registry holding the supplied fields. Later
// registrations with the same name replace earlier ones in place.
func NewRegistry(fields ...Field) *Registry {
	reg := &Registry{index: make(map[string]int)}
	for _, field := range fields {
		reg.Register(field)
	}
	return reg
}

var (
	defaultOnce     sync.Once
	defaultRegistry *Registry
)

// Default returns the registry describing the wizard's built-in forms.
func Default() *Registry {
	defaultOnce.Do(func() {
		defaultRegistry = NewRegistry(
			Field{Name: model.FieldFirstName, Control: "first-name", Form: FormIdentity, Kind: ControlInput},
			Field{Name: model.FieldLastName, Control: "last-name", Form: FormIdentity, Kind: ControlInput},
			Field{Name: model.FieldLogin, Control: "login", Form: FormIdentity, Kind: ControlInput},
			Field{Name: model.FieldEmail, Control: "email", Form: FormIdentity, Kind: ControlInput},
			Field{Name: model.FieldCompany, Control: "company", Form: FormIdentity, Kind: ControlInput, Optional: true},
			Field{Name: model.FieldPassword, Control: "password", Form: FormIdentity, Kind: ControlPassword},
			Field{Name: model.FieldPasswordConfirm, Control: "password-confirm", Form: FormIdentity, Kind: ControlPassword},
			Field{Name: model.FieldDepartment, Control: "department", Form: FormRole, Kind: ControlSelect},
			Field{Name: model.FieldVacancy, Control: "vacancy", Form: FormRole, Kind: ControlSelect},
		)
	})
	return defaultRegistry
}

// Register adds or replaces a field. Entries without a name are ignored and
// the label key defaults to "field.<name>".
func (r *Registry) Register(field Field) {
	if r == nil {
		return
	}
	field.Name = strings.TrimSpace(field.Name)
	if field.Name == "" {
		return
	}
	if field.Control == "" {
		field.Control = field.Name
	}
	if field.LabelKey == "" {
		field.LabelKey = "field." + field.Name
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if r.index == nil {
		r.index = make(map[string]int)
	}
	if idx, ok := r.index[field.Name]; ok {
		r.fields[idx] = field
		return
	}
	r.index[field.Name] = len(r.fields)
	r.fields = append(r.fields, field)
}

// Lookup returns the field registered under name.
func (r *Registry) Lookup(name string) (Field, bool) {
	if r == nil {
		return Field{}, false
	}
	r.mu.RLock()
	defer r.mu.RUnlock()

	idx, ok := r.index[name]
	if !ok {
		return Field{}, false
	}
	return r.fields[idx], true
}

// Control returns the presentation identifier for a logical field name.
func (r *Registry) Control(name string) (string, bool) {
	field, ok := r.Lookup(name)
	if !ok {
		return "", false
	}
	return field.Control, true
}

// ForForm lists the fields that belong to form in registration order.
func (r *Registry) ForForm(form string) []Field {
	if r == nil {
		return nil
	}
	r.mu.RLock()
	defer r.mu.RUnlock()

	var out []Field
	for _, field := range r.fields {
		if field.Form == form {
			out = append(out, field)
		}
	}
	return out
}
