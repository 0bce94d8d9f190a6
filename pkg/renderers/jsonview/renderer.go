// Package jsonview renders wizard views as JSON documents for scripting.
package jsonview

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/goliatone/go-formwizard/pkg/fields"
	"github.com/goliatone/go-formwizard/pkg/render"
)

// ErrUnknownView is returned for view names the renderer does not know.
var ErrUnknownView = errors.New("jsonview renderer: unknown view")

// Option customises the renderer configuration.
type Option func(*Renderer)

// WithIndent pretty prints the output with the given indent.
func WithIndent(indent string) Option {
	return func(r *Renderer) {
		r.indent = indent
	}
}

// WithFieldRegistry orders summary lines by a custom registry.
func WithFieldRegistry(registry *fields.Registry) Option {
	return func(r *Renderer) {
		if registry != nil {
			r.registry = registry
		}
	}
}

// Renderer encodes wizard views as JSON.
type Renderer struct {
	indent   string
	registry *fields.Registry
}

var _ render.Renderer = (*Renderer)(nil)

type document struct {
	View   string               `json:"view"`
	Locale string               `json:"locale"`
	Title  string               `json:"title"`
	Body   string               `json:"body,omitempty"`
	Lines  []render.SummaryLine `json:"lines,omitempty"`
}

// New constructs the JSON renderer.
func New(options ...Option) *Renderer {
	r := &Renderer{registry: fields.Default()}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(r)
	}
	return r
}

func (r *Renderer) Name() string {
	return "json"
}

func (r *Renderer) ContentType() string {
	return "application/json; charset=utf-8"
}

func (r *Renderer) Render(ctx context.Context, view render.View, options render.RenderOptions) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	locale := options.Locale
	if locale == "" {
		locale = render.BaseLocale
	}
	label := options.Labeler()

	doc := document{View: view.Name, Locale: locale}
	switch view.Name {
	case render.ViewSummary:
		doc.Title = label("step.review", "Check your data")
		doc.Lines = render.SummaryLines(view.Record, r.registry, options)
	case render.ViewRegards:
		doc.Title = label("regards.title", "Thank you!")
		doc.Body = label("regards.body", "Your application has been sent.")
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownView, view.Name)
	}

	var (
		payload []byte
		err     error
	)
	if r.indent != "" {
		payload, err = json.MarshalIndent(doc, "", r.indent)
	} else {
		payload, err = json.Marshal(doc)
	}
	if err != nil {
		return nil, fmt.Errorf("jsonview renderer: encode view: %w", err)
	}
	return payload, nil
}
