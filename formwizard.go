// Package formwizard wires the wizard state machine, the terminal presenter,
// the persistence bridge and the view renderers into a runnable application.
package formwizard

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/goliatone/go-formwizard/pkg/config"
	"github.com/goliatone/go-formwizard/pkg/model"
	"github.com/goliatone/go-formwizard/pkg/options"
	"github.com/goliatone/go-formwizard/pkg/render"
	"github.com/goliatone/go-formwizard/pkg/renderers/jsonview"
	"github.com/goliatone/go-formwizard/pkg/renderers/text"
	"github.com/goliatone/go-formwizard/pkg/renderers/tui"
	"github.com/goliatone/go-formwizard/pkg/store"
	"github.com/goliatone/go-formwizard/pkg/wizard"
)

// UserRecord aliases model.UserRecord for callers of the root package.
type UserRecord = model.UserRecord

// RenderOptions aliases render.RenderOptions.
type RenderOptions = render.RenderOptions

// Option configures an App.
type Option func(*App)

// WithConfig replaces config.Default().
func WithConfig(cfg config.Config) Option {
	return func(a *App) {
		a.cfg = cfg
	}
}

// WithLogger attaches a structured logger.
func WithLogger(logger *slog.Logger) Option {
	return func(a *App) {
		if logger != nil {
			a.logger = logger
		}
	}
}

// WithStore supplies an already opened backend. The App closes it.
func WithStore(kv store.Backend) Option {
	return func(a *App) {
		if kv != nil {
			a.kv = kv
		}
	}
}

// WithCatalog overrides the department catalog.
func WithCatalog(catalog *options.Catalog) Option {
	return func(a *App) {
		if catalog != nil {
			a.catalog = catalog
		}
	}
}

// WithTUIOptions forwards options to the terminal presenter, typically a
// prompt driver in tests.
func WithTUIOptions(opts ...tui.Option) Option {
	return func(a *App) {
		a.tuiOptions = append(a.tuiOptions, opts...)
	}
}

// App is a configured wizard application.
type App struct {
	cfg        config.Config
	logger     *slog.Logger
	kv         store.Backend
	bridge     *store.Bridge
	catalog    *options.Catalog
	messages   *render.Messages
	locale     string
	views      *render.Registry
	tuiOptions []tui.Option
}

// New builds an App. Without options it uses config.Default().
func New(opts ...Option) (*App, error) {
	a := &App{
		cfg:    config.Default(),
		logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		if opt == nil {
			continue
		}
		opt(a)
	}
	if err := a.cfg.Validate(); err != nil {
		return nil, err
	}

	if a.catalog == nil {
		catalog, err := loadCatalog(a.cfg.CatalogFile)
		if err != nil {
			return nil, err
		}
		a.catalog = catalog
	}

	messages, err := render.DefaultMessages()
	if err != nil {
		return nil, fmt.Errorf("formwizard: load messages: %w", err)
	}
	a.messages = messages
	a.locale = messages.Resolve(a.cfg.Locale)

	textViews, err := text.New(text.WithTemplatesDir(a.cfg.TemplateDir))
	if err != nil {
		return nil, fmt.Errorf("formwizard: configure text views: %w", err)
	}
	a.views, err = render.NewRegistry(textViews, jsonview.New(jsonview.WithIndent("  ")))
	if err != nil {
		return nil, fmt.Errorf("formwizard: register views: %w", err)
	}

	if a.kv == nil {
		kv, err := OpenStore(a.cfg)
		if err != nil {
			return nil, err
		}
		a.kv = kv
	}
	a.bridge = store.NewBridge(a.kv, store.WithLogger(a.logger))
	return a, nil
}

// Config returns the validated settings.
func (a *App) Config() config.Config {
	return a.cfg
}

// Locale returns the catalog locale the configured one resolved to.
func (a *App) Locale() string {
	return a.locale
}

// Catalog returns the department catalog.
func (a *App) Catalog() *options.Catalog {
	return a.catalog
}

// Views lists the registered view renderer names.
func (a *App) Views() []string {
	return a.views.List()
}

// NewMachine builds a wizard machine bound to the App's catalog and store.
func (a *App) NewMachine(presenter wizard.Presenter) *wizard.Machine {
	return wizard.New(
		wizard.WithPresenter(presenter),
		wizard.WithOptionsProvider(a.catalog),
		wizard.WithPersister(a.bridge),
		wizard.WithStoreKey(a.cfg.StoreKey),
		wizard.WithLogger(a.logger),
	)
}

// Run prompts through the wizard in the terminal until the record is saved.
func (a *App) Run(ctx context.Context) error {
	theme, err := tui.ResolveTheme(nil, a.cfg.Theme, a.cfg.ThemeVariant)
	if err != nil {
		return err
	}
	textViews, err := a.views.Get("text")
	if err != nil {
		return err
	}

	presenterOpts := []tui.Option{
		tui.WithTheme(theme),
		tui.WithTranslator(a.messages, a.locale),
		tui.WithTransitionDelay(a.cfg.TransitionDelay),
		tui.WithViewRenderer(textViews),
		tui.WithLogger(a.logger),
	}
	presenter, err := tui.New(append(presenterOpts, a.tuiOptions...)...)
	if err != nil {
		return err
	}
	return presenter.Run(ctx, a.NewMachine(presenter))
}

// Stored returns the persisted record. It reports store.ErrAbsent or
// store.ErrMalformed when nothing usable is stored.
func (a *App) Stored(ctx context.Context) (UserRecord, error) {
	return a.bridge.LoadDetailed(ctx, a.cfg.StoreKey)
}

// Show renders the persisted record as a summary in the named view format.
func (a *App) Show(ctx context.Context, format string) ([]byte, error) {
	renderer, err := a.views.Get(format)
	if err != nil {
		return nil, err
	}
	record, err := a.Stored(ctx)
	if err != nil {
		return nil, err
	}
	return renderer.Render(ctx, render.View{Name: render.ViewSummary, Record: record}, RenderOptions{
		Locale:     a.locale,
		Translator: a.messages,
	})
}

// Close releases the store.
func (a *App) Close() error {
	if a.kv == nil {
		return nil
	}
	return a.kv.Close()
}

func loadCatalog(path string) (*options.Catalog, error) {
	if path == "" {
		return options.DefaultCatalog()
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("formwizard: open catalog: %w", err)
	}
	defer f.Close()

	catalog, err := options.LoadCatalog(f)
	if err != nil {
		return nil, fmt.Errorf("formwizard: load catalog %s: %w", path, err)
	}
	return catalog, nil
}
