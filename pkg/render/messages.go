package render

import (
	"embed"
	"fmt"
	"io/fs"
	"path"
	"sort"
	"strings"
	"sync"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/message/catalog"
	"gopkg.in/yaml.v3"
)

// BaseLocale is the locale every catalog must define and the fallback for
// unsupported locales.
const BaseLocale = "en-US"

//go:embed locales/*.yaml
var localesFS embed.FS

type localeFile struct {
	Locale   string            `yaml:"locale"`
	Messages map[string]string `yaml:"messages"`
}

// Messages is a set of locale catalogs registered with x/text. Message values
// are x/text format strings, so a literal percent sign is written as "%%".
type Messages struct {
	locales  []string
	entries  map[string]map[string]string
	matcher  language.Matcher
	builder  *catalog.Builder
	printers sync.Map
}

var (
	defaultMessagesOnce sync.Once
	defaultMessages     *Messages
	defaultMessagesErr  error
)

// DefaultMessages returns the embedded en-US and ru-RU catalogs.
func DefaultMessages() (*Messages, error) {
	defaultMessagesOnce.Do(func() {
		defaultMessages, defaultMessagesErr = LoadMessages(localesFS)
	})
	return defaultMessages, defaultMessagesErr
}

// MustDefaultMessages panics when the embedded catalogs cannot be loaded.
func MustDefaultMessages() *Messages {
	messages, err := DefaultMessages()
	if err != nil {
		panic(err)
	}
	return messages
}

// LoadMessages reads every locales/*.yaml file in fsys.
func LoadMessages(fsys fs.FS) (*Messages, error) {
	paths, err := fs.Glob(fsys, "locales/*.yaml")
	if err != nil {
		return nil, fmt.Errorf("render: glob locale catalogs: %w", err)
	}
	if len(paths) == 0 {
		return nil, fmt.Errorf("render: no locale catalogs found")
	}
	sort.Strings(paths)

	entries := make(map[string]map[string]string, len(paths))
	for _, p := range paths {
		data, err := fs.ReadFile(fsys, p)
		if err != nil {
			return nil, fmt.Errorf("render: read catalog %s: %w", p, err)
		}
		var file localeFile
		if err := yaml.Unmarshal(data, &file); err != nil {
			return nil, fmt.Errorf("render: parse catalog %s: %w", p, err)
		}

		locale := strings.TrimSpace(file.Locale)
		if want := strings.TrimSuffix(path.Base(p), path.Ext(p)); locale != want {
			return nil, fmt.Errorf("render: catalog %s: locale %q must match file name %q", p, locale, want)
		}
		if _, exists := entries[locale]; exists {
			return nil, fmt.Errorf("render: locale %q defined twice", locale)
		}
		if len(file.Messages) == 0 {
			return nil, fmt.Errorf("render: catalog %s: messages are required", p)
		}
		entries[locale] = file.Messages
	}
	return newMessages(entries)
}

func newMessages(entries map[string]map[string]string) (*Messages, error) {
	if _, ok := entries[BaseLocale]; !ok {
		return nil, fmt.Errorf("render: base locale %s is not defined", BaseLocale)
	}

	locales := make([]string, 0, len(entries))
	for locale := range entries {
		if locale != BaseLocale {
			locales = append(locales, locale)
		}
	}
	sort.Strings(locales)
	locales = append([]string{BaseLocale}, locales...)

	builder := catalog.NewBuilder(catalog.Fallback(language.MustParse(BaseLocale)))
	tags := make([]language.Tag, 0, len(locales))
	for _, locale := range locales {
		tag, err := language.Parse(locale)
		if err != nil {
			return nil, fmt.Errorf("render: parse locale tag %q: %w", locale, err)
		}
		tags = append(tags, tag)

		keys := make([]string, 0, len(entries[locale]))
		for key := range entries[locale] {
			keys = append(keys, key)
		}
		sort.Strings(keys)
		for _, key := range keys {
			trimmed := strings.TrimSpace(key)
			if trimmed == "" {
				return nil, fmt.Errorf("render: locale %s: message key cannot be blank", locale)
			}
			if err := builder.SetString(tag, trimmed, entries[locale][key]); err != nil {
				return nil, fmt.Errorf("render: register %s/%s: %w", locale, trimmed, err)
			}
		}
	}

	return &Messages{
		locales: locales,
		entries: entries,
		matcher: language.NewMatcher(tags),
		builder: builder,
	}, nil
}

// Locales lists the supported locales, base locale first.
func (m *Messages) Locales() []string {
	if m == nil {
		return nil
	}
	return append([]string{}, m.locales...)
}

// Resolve maps any BCP 47 locale onto the closest supported one. Unknown or
// empty locales resolve to BaseLocale.
func (m *Messages) Resolve(locale string) string {
	if m == nil || len(m.locales) == 0 {
		return BaseLocale
	}
	locale = strings.TrimSpace(locale)
	if locale == "" {
		return m.locales[0]
	}
	tag, err := language.Parse(locale)
	if err != nil {
		return m.locales[0]
	}
	_, idx, confidence := m.matcher.Match(tag)
	if confidence == language.No {
		return m.locales[0]
	}
	return m.locales[idx]
}

// Has reports whether key is defined for locale or the base locale.
func (m *Messages) Has(locale, key string) bool {
	if m == nil {
		return false
	}
	if _, ok := m.entries[m.Resolve(locale)][key]; ok {
		return true
	}
	_, ok := m.entries[BaseLocale][key]
	return ok
}

// Translate implements Translator. Keys missing from the resolved locale fall
// back to BaseLocale.
func (m *Messages) Translate(locale, key string, args ...any) (string, error) {
	if m == nil {
		return "", ErrMissingTranslator
	}
	key = strings.TrimSpace(key)
	resolved := m.Resolve(locale)
	if _, ok := m.entries[resolved][key]; !ok {
		if _, ok := m.entries[BaseLocale][key]; !ok {
			return "", fmt.Errorf("%w: %s", ErrMissingMessage, key)
		}
		resolved = BaseLocale
	}
	return m.printer(resolved).Sprintf(key, args...), nil
}

func (m *Messages) printer(locale string) *message.Printer {
	if cached, ok := m.printers.Load(locale); ok {
		return cached.(*message.Printer)
	}
	printer := message.NewPrinter(language.MustParse(locale), message.Catalog(m.builder))
	actual, _ := m.printers.LoadOrStore(locale, printer)
	return actual.(*message.Printer)
}

var _ Translator = (*Messages)(nil)
