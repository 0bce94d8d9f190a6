package tui

import (
	"errors"
	"testing"
)

func TestResolveTheme(t *testing.T) {
	classic, err := ResolveTheme(nil, "", "")
	if err != nil {
		t.Fatalf("resolve default: %v", err)
	}
	if classic.Name != DefaultThemeName || classic.ErrorPrefix != "✗ " || classic.HeaderPrefix != "== " {
		t.Fatalf("unexpected default theme %+v", classic)
	}

	ascii, err := ResolveTheme(nil, "classic", "ascii")
	if err != nil {
		t.Fatalf("resolve variant: %v", err)
	}
	if ascii.ErrorPrefix != "! " || ascii.HeaderPrefix != "-- " {
		t.Fatalf("variant tokens not applied: %+v", ascii)
	}

	plain, err := ResolveTheme(nil, "plain", "")
	if err != nil {
		t.Fatalf("resolve plain: %v", err)
	}
	if plain != (Theme{Name: "plain"}) {
		t.Fatalf("unexpected plain theme %+v", plain)
	}
}

func TestResolveTheme_EveryBuiltin(t *testing.T) {
	selector, err := NewManifestSelector()
	if err != nil {
		t.Fatalf("new selector: %v", err)
	}
	for _, manifest := range BuiltinManifests() {
		variants := []string{""}
		for name := range manifest.Variants {
			variants = append(variants, name)
		}
		for _, variant := range variants {
			resolved, err := ResolveTheme(selector, manifest.Name, variant)
			if err != nil {
				t.Fatalf("resolve %s/%s: %v", manifest.Name, variant, err)
			}
			if resolved.Name != manifest.Name || resolved.Variant != variant {
				t.Fatalf("resolved %s/%s as %+v", manifest.Name, variant, resolved)
			}
		}
	}
}

func TestBuiltinManifestsRegister(t *testing.T) {
	for _, manifest := range BuiltinManifests() {
		if err := manifest.Validate(); err != nil {
			t.Fatalf("manifest %q: %v", manifest.Name, err)
		}
	}
}

func TestNewWithoutOptions(t *testing.T) {
	r, err := New()
	if err != nil {
		t.Fatalf("new renderer: %v", err)
	}
	if r.theme.Name != DefaultThemeName || r.theme.HeaderPrefix != "== " {
		t.Fatalf("unexpected default theme %+v", r.theme)
	}
	if r.theme.PromptPrefix != "" || r.theme.InfoPrefix != "" {
		t.Fatalf("expected blank prompt and info prefixes, got %+v", r.theme)
	}
}

func TestResolveTheme_Errors(t *testing.T) {
	if _, err := ResolveTheme(nil, "neon", ""); !errors.Is(err, ErrUnknownTheme) {
		t.Fatalf("expected ErrUnknownTheme, got %v", err)
	}
	if _, err := ResolveTheme(nil, "plain", "ascii"); !errors.Is(err, ErrUnknownVariant) {
		t.Fatalf("expected ErrUnknownVariant, got %v", err)
	}
}

func TestThemedRendererUsesPrefixes(t *testing.T) {
	themed, err := ResolveTheme(nil, "classic", "ascii")
	if err != nil {
		t.Fatalf("resolve: %v", err)
	}
	driver := &stubDriver{}
	r := newRenderer(t, driver, WithTheme(themed))

	if err := r.header(t.Context(), "step.role", "Position"); err != nil {
		t.Fatalf("header: %v", err)
	}
	if got := driver.infoMessages[len(driver.infoMessages)-1]; got != "-- Position" {
		t.Fatalf("unexpected header %q", got)
	}
}
