package tui

import (
	"fmt"
	"strings"
	"sync"

	theme "github.com/goliatone/go-theme"
)

// Token names read from a theme manifest.
const (
	TokenPromptPrefix = "prompt.prefix"
	TokenInfoPrefix   = "info.prefix"
	TokenErrorPrefix  = "error.prefix"
	TokenHeaderPrefix = "header.prefix"
)

// DefaultThemeName is used when no theme is requested.
const DefaultThemeName = "classic"

// Theme captures the message prefixes the renderer prints. Keep minimal to
// avoid coupling renderer logic to ANSI specifics.
type Theme struct {
	Name         string
	Variant      string
	PromptPrefix string
	InfoPrefix   string
	ErrorPrefix  string
	HeaderPrefix string
}

// BuiltinManifests returns the themes shipped with the renderer. go-theme
// rejects blank token values, so a prefix that prints nothing is left out of
// Tokens and resolves to "".
func BuiltinManifests() []*theme.Manifest {
	return []*theme.Manifest{
		{
			Name:      DefaultThemeName,
			Version:   "1.0.0",
			Templates: viewTemplates(),
			Tokens: map[string]string{
				TokenErrorPrefix:  "✗ ",
				TokenHeaderPrefix: "== ",
			},
			Variants: map[string]theme.Variant{
				"ascii": {
					Tokens: map[string]string{
						TokenErrorPrefix:  "! ",
						TokenHeaderPrefix: "-- ",
					},
				},
			},
		},
		{
			Name:      "plain",
			Version:   "1.0.0",
			Templates: viewTemplates(),
		},
	}
}

func viewTemplates() map[string]string {
	return map[string]string{
		"views.summary": "summary.tpl",
		"views.regards": "regards.tpl",
	}
}

// ManifestSelector resolves theme selections from a fixed set of manifests.
// It satisfies theme.ThemeSelector.
type ManifestSelector struct {
	mu        sync.RWMutex
	provider  theme.ThemeProvider
	manifests map[string]*theme.Manifest
}

var _ theme.ThemeSelector = (*ManifestSelector)(nil)

// NewManifestSelector registers manifests (the built-in ones when none are
// given) with a go-theme registry and indexes them by name.
func NewManifestSelector(manifests ...*theme.Manifest) (*ManifestSelector, error) {
	if len(manifests) == 0 {
		manifests = BuiltinManifests()
	}
	registry := theme.NewRegistry()
	s := &ManifestSelector{
		provider:  registry,
		manifests: make(map[string]*theme.Manifest, len(manifests)),
	}
	for _, manifest := range manifests {
		if manifest == nil {
			continue
		}
		if err := registry.Register(manifest); err != nil {
			return nil, fmt.Errorf("tui: register theme %q: %w", manifest.Name, err)
		}
		s.manifests[manifest.Name] = manifest
	}
	return s, nil
}

// Provider exposes the go-theme registry holding the manifests.
func (s *ManifestSelector) Provider() theme.ThemeProvider {
	return s.provider
}

// Select resolves name and variant. Blank names select the default theme.
func (s *ManifestSelector) Select(name, variant string, _ ...theme.QueryOption) (*theme.Selection, error) {
	name = strings.TrimSpace(name)
	variant = strings.TrimSpace(variant)
	if name == "" {
		name = DefaultThemeName
	}

	s.mu.RLock()
	manifest, ok := s.manifests[name]
	s.mu.RUnlock()
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownTheme, name)
	}
	if variant != "" {
		if _, ok := manifest.Variants[variant]; !ok {
			return nil, fmt.Errorf("%w: %q has no %q", ErrUnknownVariant, name, variant)
		}
	}
	return &theme.Selection{Theme: name, Variant: variant, Manifest: manifest}, nil
}

// ThemeFromSelection flattens a selection into prefixes. Variant tokens
// override the manifest's; absent tokens yield empty prefixes.
func ThemeFromSelection(selection *theme.Selection) Theme {
	if selection == nil || selection.Manifest == nil {
		return Theme{}
	}
	tokens := selection.Manifest.TokensForVariant(selection.Variant)
	return Theme{
		Name:         selection.Theme,
		Variant:      selection.Variant,
		PromptPrefix: tokens[TokenPromptPrefix],
		InfoPrefix:   tokens[TokenInfoPrefix],
		ErrorPrefix:  tokens[TokenErrorPrefix],
		HeaderPrefix: tokens[TokenHeaderPrefix],
	}
}

// ResolveTheme selects name/variant through selector and flattens the result.
func ResolveTheme(selector theme.ThemeSelector, name, variant string) (Theme, error) {
	if selector == nil {
		var err error
		selector, err = NewManifestSelector()
		if err != nil {
			return Theme{}, err
		}
	}
	selection, err := selector.Select(name, variant)
	if err != nil {
		return Theme{}, err
	}
	return ThemeFromSelection(selection), nil
}
