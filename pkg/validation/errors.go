package validation

import (
	"fmt"
	"strings"
)

// Kind identifies why a field failed validation. Values double as message
// catalog keys (prefixed with "validation.").
type Kind string

const (
	KindRequired         Kind = "required"
	KindLettersOnly      Kind = "lettersOnly"
	KindInvalidEmail     Kind = "invalidEmail"
	KindWeakPassword     Kind = "weakPassword"
	KindPasswordMismatch Kind = "passwordMismatch"
	KindUnknownOption    Kind = "unknownOption"
)

// MessageKey returns the catalog key used to translate the kind.
func (k Kind) MessageKey() string {
	return "validation." + string(k)
}

// FieldError pairs a logical field name with the rule it violated.
type FieldError struct {
	Field string `json:"field"`
	Kind  Kind   `json:"kind"`
}

func (e FieldError) Error() string {
	return fmt.Sprintf("validation: %s: %s", e.Field, e.Kind)
}

// Errors is the outcome of one validation pass. A nil or empty slice means
// the step is clean.
type Errors []FieldError

func (e Errors) Error() string {
	if len(e) == 0 {
		return "validation: no errors"
	}
	parts := make([]string, 0, len(e))
	for _, fe := range e {
		parts = append(parts, fe.Field+": "+string(fe.Kind))
	}
	return "validation: " + strings.Join(parts, ", ")
}

// Empty reports whether the pass produced no errors.
func (e Errors) Empty() bool {
	return len(e) == 0
}

// Has reports whether field failed with kind.
func (e Errors) Has(field string, kind Kind) bool {
	for _, fe := range e {
		if fe.Field == field && fe.Kind == kind {
			return true
		}
	}
	return false
}

// For returns the kind recorded for field, if any.
func (e Errors) For(field string) (Kind, bool) {
	for _, fe := range e {
		if fe.Field == field {
			return fe.Kind, true
		}
	}
	return "", false
}

// Fields lists the failing fields in the order they were reported.
func (e Errors) Fields() []string {
	if len(e) == 0 {
		return nil
	}
	out := make([]string, 0, len(e))
	for _, fe := range e {
		out = append(out, fe.Field)
	}
	return out
}

// Err returns e as an error, or nil when the pass was clean.
func (e Errors) Err() error {
	if len(e) == 0 {
		return nil
	}
	return e
}
