package tui

import (
	"io"
	"log/slog"
	"time"

	"github.com/goliatone/go-formwizard/pkg/fields"
	"github.com/goliatone/go-formwizard/pkg/render"
)

// DefaultTransitionDelay is the pause between a step decision and the next
// prompt.
const DefaultTransitionDelay = 300 * time.Millisecond

// Option configures the TUI renderer.
type Option func(*Renderer)

// WithPromptDriver overrides the prompt driver used by the renderer.
func WithPromptDriver(driver PromptDriver) Option {
	return func(r *Renderer) {
		if driver != nil {
			r.driver = driver
		}
	}
}

// WithOutput sets where the default survey driver prints messages.
func WithOutput(w io.Writer) Option {
	return func(r *Renderer) {
		if w != nil {
			r.out = w
		}
	}
}

// WithTheme applies message prefixes.
func WithTheme(theme Theme) Option {
	return func(r *Renderer) {
		r.theme = theme
		r.themed = true
	}
}

// WithTranslator localises labels and error messages.
func WithTranslator(t render.Translator, locale string) Option {
	return func(r *Renderer) {
		if t != nil {
			r.translator = t
		}
		r.locale = locale
	}
}

// WithFieldRegistry overrides the registry that orders prompts and maps
// errors to fields.
func WithFieldRegistry(registry *fields.Registry) Option {
	return func(r *Renderer) {
		if registry != nil {
			r.registry = registry
		}
	}
}

// WithTransitionDelay overrides DefaultTransitionDelay. Zero disables it.
func WithTransitionDelay(delay time.Duration) Option {
	return func(r *Renderer) {
		if delay >= 0 {
			r.delay = delay
		}
	}
}

// WithViewRenderer selects the renderer used for the summary and regards
// views. The plain-text renderer is the default.
func WithViewRenderer(views render.Renderer) Option {
	return func(r *Renderer) {
		if views != nil {
			r.views = views
		}
	}
}

// WithLogger attaches a structured logger.
func WithLogger(logger *slog.Logger) Option {
	return func(r *Renderer) {
		if logger != nil {
			r.logger = logger
		}
	}
}
