package render_test

import (
	"errors"
	"strings"
	"testing"
	"testing/fstest"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-formwizard/pkg/render"
)

func TestDefaultMessages_Locales(t *testing.T) {
	messages := render.MustDefaultMessages()
	if diff := cmp.Diff([]string{"en-US", "ru-RU"}, messages.Locales()); diff != "" {
		t.Fatalf("locales mismatch (-want +got):\n%s", diff)
	}
}

func TestMessages_Resolve(t *testing.T) {
	messages := render.MustDefaultMessages()

	cases := map[string]string{
		"":         "en-US",
		"en":       "en-US",
		"en-GB":    "en-US",
		"ru":       "ru-RU",
		"ru-RU":    "ru-RU",
		"de-DE":    "en-US",
		"garbage!": "en-US",
	}
	for in, want := range cases {
		if got := messages.Resolve(in); got != want {
			t.Fatalf("Resolve(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestMessages_TranslateKeepsLiteralPercent(t *testing.T) {
	messages := render.MustDefaultMessages()

	got, err := messages.Translate("en-US", "validation.weakPassword")
	if err != nil {
		t.Fatalf("translate: %v", err)
	}
	if !strings.HasSuffix(got, "(!@#$%^&*~)") {
		t.Fatalf("unexpected message %q", got)
	}
}

func TestMessages_TranslateMissingKey(t *testing.T) {
	messages := render.MustDefaultMessages()
	if _, err := messages.Translate("en-US", "nope"); !errors.Is(err, render.ErrMissingMessage) {
		t.Fatalf("expected ErrMissingMessage, got %v", err)
	}
}

func TestMessages_FallBackToBaseLocale(t *testing.T) {
	fsys := fstest.MapFS{
		"locales/en-US.yaml": {Data: []byte("locale: en-US\nmessages:\n  greeting: \"Hello\"\n  farewell: \"Bye\"\n")},
		"locales/ru-RU.yaml": {Data: []byte("locale: ru-RU\nmessages:\n  greeting: \"Привет\"\n")},
	}
	messages, err := render.LoadMessages(fsys)
	if err != nil {
		t.Fatalf("load messages: %v", err)
	}

	if got, _ := messages.Translate("ru-RU", "greeting"); got != "Привет" {
		t.Fatalf("expected russian greeting, got %q", got)
	}
	if got, _ := messages.Translate("ru-RU", "farewell"); got != "Bye" {
		t.Fatalf("expected base locale fallback, got %q", got)
	}
}

func TestLoadMessages_RejectsBadCatalogs(t *testing.T) {
	cases := map[string]fstest.MapFS{
		"empty": {},
		"no base locale": {
			"locales/ru-RU.yaml": {Data: []byte("locale: ru-RU\nmessages:\n  a: \"b\"\n")},
		},
		"locale mismatch": {
			"locales/en-US.yaml": {Data: []byte("locale: ru-RU\nmessages:\n  a: \"b\"\n")},
		},
		"no messages": {
			"locales/en-US.yaml": {Data: []byte("locale: en-US\n")},
		},
	}
	for name, fsys := range cases {
		if _, err := render.LoadMessages(fsys); err == nil {
			t.Fatalf("%s: expected error", name)
		}
	}
}

type stubTranslator map[string]string

func (s stubTranslator) Translate(_ string, key string, _ ...any) (string, error) {
	if msg, ok := s[key]; ok {
		return msg, nil
	}
	return "", errors.New("missing translation")
}

func TestTranslate_Fallbacks(t *testing.T) {
	tr := stubTranslator{"known": "Known"}

	if got := render.Translate(tr, "en", "known", "fallback", nil); got != "Known" {
		t.Fatalf("expected translation, got %q", got)
	}
	if got := render.Translate(tr, "en", "unknown", "fallback", nil); got != "fallback" {
		t.Fatalf("expected fallback, got %q", got)
	}
	if got := render.Translate(tr, "en", "unknown", "", nil); got != "unknown" {
		t.Fatalf("expected key, got %q", got)
	}
	custom := func(locale, key string, _ []any, _ error) string { return locale + ":" + key }
	if got := render.Translate(nil, "ru", "k", "f", custom); got != "ru:k" {
		t.Fatalf("expected custom handler output, got %q", got)
	}
}
