package render

import (
	"strings"

	"github.com/goliatone/go-formwizard/pkg/fields"
	"github.com/goliatone/go-formwizard/pkg/validation"
)

// ErrorMapping splits the messages shown on a form into field-level entries,
// keyed by presentation control id, and form-level entries.
type ErrorMapping struct {
	Fields map[string][]string
	Form   []string
}

func (m ErrorMapping) clone() ErrorMapping {
	out := ErrorMapping{Form: append([]string(nil), m.Form...)}
	if len(m.Fields) > 0 {
		out.Fields = make(map[string][]string, len(m.Fields))
		for control, messages := range m.Fields {
			out.Fields[control] = append([]string(nil), messages...)
		}
	}
	return out
}

// Empty reports whether nothing is shown.
func (m ErrorMapping) Empty() bool {
	return len(m.Fields) == 0 && len(m.Form) == 0
}

// MergeFormErrors concatenates and normalises form-level error slices,
// trimming whitespace and removing duplicates while preserving order.
func MergeFormErrors(existing []string, extras ...string) []string {
	combined := make([]string, 0, len(existing)+len(extras))
	combined = append(combined, existing...)
	combined = append(combined, extras...)
	return normalizeMessages(combined)
}

// ErrorBoard tracks the validation messages currently shown per form. Marking
// and clearing are idempotent: repeated Mark calls never duplicate a message.
type ErrorBoard struct {
	registry   *fields.Registry
	translator Translator
	locale     string
	onMissing  MissingTranslationHandler
	forms      map[string]ErrorMapping
}

// BoardOption configures an ErrorBoard.
type BoardOption func(*ErrorBoard)

// WithFieldRegistry maps logical fields to controls through registry.
func WithFieldRegistry(registry *fields.Registry) BoardOption {
	return func(b *ErrorBoard) {
		if registry != nil {
			b.registry = registry
		}
	}
}

// WithTranslator renders messages through t in locale.
func WithTranslator(t Translator, locale string) BoardOption {
	return func(b *ErrorBoard) {
		b.translator = t
		b.locale = strings.TrimSpace(locale)
	}
}

// WithMissingTranslation overrides the fallback for unknown message keys.
func WithMissingTranslation(handler MissingTranslationHandler) BoardOption {
	return func(b *ErrorBoard) {
		if handler != nil {
			b.onMissing = handler
		}
	}
}

// NewErrorBoard builds a board using the default field registry and the
// embedded message catalogs.
func NewErrorBoard(opts ...BoardOption) *ErrorBoard {
	b := &ErrorBoard{
		registry:  fields.Default(),
		locale:    BaseLocale,
		onMissing: missingTranslationDefault,
		forms:     make(map[string]ErrorMapping),
	}
	if messages, err := DefaultMessages(); err == nil {
		b.translator = messages
	}
	for _, opt := range opts {
		if opt == nil {
			continue
		}
		opt(b)
	}
	return b
}

// Message returns the human-readable text for kind.
func (b *ErrorBoard) Message(kind validation.Kind) string {
	return Translate(b.translator, b.locale, kind.MessageKey(), string(kind), b.onMissing)
}

// Clear removes every message shown on form.
func (b *ErrorBoard) Clear(form string) {
	delete(b.forms, form)
}

// ClearField removes the messages shown for one logical field.
func (b *ErrorBoard) ClearField(form, field string) {
	mapping, ok := b.forms[form]
	if !ok {
		return
	}
	control, scoped := b.control(form, field)
	if !scoped {
		return
	}
	delete(mapping.Fields, control)
	if mapping.Empty() {
		delete(b.forms, form)
		return
	}
	b.forms[form] = mapping
}

// Mark shows errs on form. Errors for fields that are unknown or belong to
// another form are kept as form-level messages so they are not lost.
func (b *ErrorBoard) Mark(form string, errs validation.Errors) ErrorMapping {
	mapping := b.forms[form]
	for _, fe := range errs {
		message := b.Message(fe.Kind)
		control, scoped := b.control(form, fe.Field)
		if !scoped {
			mapping.Form = MergeFormErrors(mapping.Form, message)
			continue
		}
		if mapping.Fields == nil {
			mapping.Fields = make(map[string][]string)
		}
		mapping.Fields[control] = MergeFormErrors(mapping.Fields[control], message)
	}
	if mapping.Empty() {
		return ErrorMapping{}
	}
	b.forms[form] = mapping
	return mapping.clone()
}

// Errors returns a copy of what is shown on form.
func (b *ErrorBoard) Errors(form string) ErrorMapping {
	return b.forms[form].clone()
}

// FieldMessages returns the messages shown for a logical field.
func (b *ErrorBoard) FieldMessages(form, field string) []string {
	control, scoped := b.control(form, field)
	if !scoped {
		return nil
	}
	return append([]string(nil), b.forms[form].Fields[control]...)
}

// Invalid reports whether the group holding field is marked invalid.
func (b *ErrorBoard) Invalid(form, field string) bool {
	return len(b.FieldMessages(form, field)) > 0
}

func (b *ErrorBoard) control(form, field string) (string, bool) {
	entry, ok := b.registry.Lookup(field)
	if !ok || entry.Form != form {
		return "", false
	}
	return entry.Control, true
}

func normalizeMessages(messages []string) []string {
	if len(messages) == 0 {
		return nil
	}

	out := make([]string, 0, len(messages))
	seen := make(map[string]struct{}, len(messages))

	for _, message := range messages {
		trimmed := strings.TrimSpace(message)
		if trimmed == "" {
			continue
		}
		if _, exists := seen[trimmed]; exists {
			continue
		}
		seen[trimmed] = struct{}{}
		out = append(out, trimmed)
	}

	if len(out) == 0 {
		return nil
	}
	return out
}
