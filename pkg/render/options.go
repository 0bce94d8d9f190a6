package render

import (
	"github.com/goliatone/go-formwizard/pkg/fields"
	"github.com/goliatone/go-formwizard/pkg/model"
)

// View names understood by the bundled renderers.
const (
	ViewSummary = "summary"
	ViewRegards = "regards"
)

// View is the read-only data a renderer turns into output.
type View struct {
	Name   string
	Record model.UserRecord
}

// RenderOptions describe per-call settings renderers use to localise their
// output.
type RenderOptions struct {
	// Locale selects the message catalog. Empty means BaseLocale.
	Locale string
	// Translator resolves labels. Nil falls back to the embedded catalogs.
	Translator Translator
	// OnMissing decides the text of untranslated keys.
	OnMissing MissingTranslationHandler
}

// Labeler resolves message keys with the options' translator and locale.
func (o RenderOptions) Labeler() func(key, fallback string) string {
	t := o.Translator
	if t == nil {
		if messages, err := DefaultMessages(); err == nil {
			t = messages
		}
	}
	return func(key, fallback string) string {
		return Translate(t, o.Locale, key, fallback, o.OnMissing)
	}
}

// SummaryLine is one labelled value of the summary view.
type SummaryLine struct {
	Field string `json:"field"`
	Label string `json:"label"`
	Value string `json:"value"`
}

// SummaryLines lists the non-secret record values in registry order with
// localized labels and sanitised values. The name fields are joined into a
// single line the way the summary view shows them.
func SummaryLines(record model.UserRecord, registry *fields.Registry, options RenderOptions) []SummaryLine {
	if registry == nil {
		registry = fields.Default()
	}
	label := options.Labeler()
	values := SanitizeValues(record.Values())

	lines := []SummaryLine{{
		Field: "name",
		Label: label("summary.name", "Name"),
		Value: SanitizeText(record.FullName()),
	}}
	for _, form := range []string{fields.FormIdentity, fields.FormRole} {
		for _, field := range registry.ForForm(form) {
			switch field.Name {
			case model.FieldFirstName, model.FieldLastName:
				continue
			}
			value, ok := values[field.Name]
			if !ok {
				continue
			}
			lines = append(lines, SummaryLine{
				Field: field.Name,
				Label: label(field.LabelKey, field.Name),
				Value: value,
			})
		}
	}
	return lines
}
