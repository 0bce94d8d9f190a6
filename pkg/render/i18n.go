package render

import (
	"errors"
	"strings"
)

var (
	// ErrMissingTranslator is reported when a lookup happens without a
	// translator configured.
	ErrMissingTranslator = errors.New("render: translator is not configured")
	// ErrMissingMessage is returned by Translate for unknown keys.
	ErrMissingMessage = errors.New("render: message not found")
)

// Translator resolves message keys for a locale.
type Translator interface {
	Translate(locale, key string, args ...any) (string, error)
}

// MissingTranslationHandler decides what to show when a key cannot be
// translated. args carries a {"default": fallback} map when a fallback exists.
type MissingTranslationHandler func(locale, key string, args []any, err error) string

func missingTranslationDefault(_ string, key string, args []any, _ error) string {
	for _, arg := range args {
		values, ok := arg.(map[string]any)
		if !ok {
			continue
		}
		fallback, _ := values["default"].(string)
		if fallback = strings.TrimSpace(fallback); fallback != "" {
			return fallback
		}
	}
	return key
}

// Translate looks key up through t, falling back to fallback (or key) when the
// lookup fails. onMissing may be nil.
func Translate(t Translator, locale, key, fallback string, onMissing MissingTranslationHandler) string {
	key = strings.TrimSpace(key)
	if key == "" {
		return fallback
	}
	if onMissing == nil {
		onMissing = missingTranslationDefault
	}

	if t == nil {
		return onMissing(locale, key, []any{map[string]any{"default": fallback}}, ErrMissingTranslator)
	}

	result, err := t.Translate(locale, key)
	if err == nil && strings.TrimSpace(result) != "" {
		return result
	}
	return onMissing(locale, key, []any{map[string]any{"default": fallback}}, err)
}
