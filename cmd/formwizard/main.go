package main

import (
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/goliatone/go-formwizard"
	"github.com/goliatone/go-formwizard/pkg/config"
	"github.com/goliatone/go-formwizard/pkg/renderers/tui"
	"github.com/goliatone/go-formwizard/pkg/store"
)

const usage = `usage: formwizard <command> [flags]

commands:
  run          fill in the application form interactively
  show         print the stored application
  departments  list departments and vacancies

Settings are read from FORMWIZARD_* environment variables; flags override them.`

// errUsage marks command line mistakes that exit with status 2.
var errUsage = errors.New("invalid arguments")

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err := run(ctx, os.Args[1:], os.Stdout)
	stop()

	switch {
	case err == nil, errors.Is(err, flag.ErrHelp):
	case errors.Is(err, errUsage):
		fmt.Fprintf(os.Stderr, "%v\n\n%s\n", err, usage)
		os.Exit(2)
	case errors.Is(err, tui.ErrAborted), errors.Is(err, context.Canceled):
		os.Exit(130)
	default:
		config.Exitf("formwizard: %v", err)
	}
}

func run(ctx context.Context, args []string, stdout io.Writer) error {
	if len(args) == 0 {
		return fmt.Errorf("%w: missing command", errUsage)
	}

	cmd, args := args[0], args[1:]
	switch cmd {
	case "-h", "--help", "help":
		_, err := fmt.Fprintln(stdout, usage)
		return err
	case "run", "show", "departments":
	default:
		return fmt.Errorf("%w: unknown command %q", errUsage, cmd)
	}

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("config: %w", err)
	}

	switch cmd {
	case "run":
		err = runCmd(ctx, cfg, args)
	case "show":
		err = showCmd(ctx, cfg, args, stdout)
	case "departments":
		err = departmentsCmd(cfg, args, stdout)
	}
	if err != nil {
		return fmt.Errorf("%s: %w", cmd, err)
	}
	return nil
}

// bindStoreFlags registers flags that override the store settings in cfg.
func bindStoreFlags(fs *flag.FlagSet, cfg *config.Config) {
	fs.StringVar(&cfg.Store, "store", cfg.Store, "store backend: bbolt, sqlite or memory")
	fs.StringVar(&cfg.StorePath, "store-path", cfg.StorePath, "store file path")
	fs.StringVar(&cfg.StoreKey, "key", cfg.StoreKey, "key the record is stored under")
	fs.StringVar(&cfg.Locale, "locale", cfg.Locale, "message locale (en-US, ru-RU)")
}

func openApp(cfg config.Config, logger *slog.Logger) (*formwizard.App, error) {
	return formwizard.New(
		formwizard.WithConfig(cfg),
		formwizard.WithLogger(logger),
	)
}

func runCmd(ctx context.Context, cfg config.Config, args []string) error {
	fs := flag.NewFlagSet("run", flag.ContinueOnError)
	bindStoreFlags(fs, &cfg)
	fs.StringVar(&cfg.Theme, "theme", cfg.Theme, "terminal theme (classic, plain)")
	fs.StringVar(&cfg.ThemeVariant, "variant", cfg.ThemeVariant, "theme variant")
	fs.DurationVar(&cfg.TransitionDelay, "delay", cfg.TransitionDelay, "pause between steps")
	fs.StringVar(&cfg.TemplateDir, "templates", cfg.TemplateDir, "directory with summary.tpl/regards.tpl overrides")
	if err := fs.Parse(args); err != nil {
		return err
	}

	app, err := openApp(cfg, cfg.NewLogger(os.Stderr))
	if err != nil {
		return err
	}
	defer app.Close()

	return app.Run(ctx)
}

func showCmd(ctx context.Context, cfg config.Config, args []string, out io.Writer) error {
	fs := flag.NewFlagSet("show", flag.ContinueOnError)
	bindStoreFlags(fs, &cfg)
	format := fs.String("format", "text", "output format (text, json)")
	output := fs.String("output", "", "output file (stdout if empty)")
	if err := fs.Parse(args); err != nil {
		return err
	}

	logger := cfg.NewLogger(os.Stderr)
	app, err := openApp(cfg, logger)
	if err != nil {
		return err
	}
	defer app.Close()

	payload, err := app.Show(ctx, *format)
	if errors.Is(err, store.ErrAbsent) || errors.Is(err, store.ErrMalformed) {
		logger.Debug("stored record unavailable", "key", cfg.StoreKey, "error", err)
		return fmt.Errorf("nothing stored under %q yet", cfg.StoreKey)
	}
	if err != nil {
		return err
	}

	if *output != "" {
		if err := os.WriteFile(*output, payload, 0o644); err != nil {
			return fmt.Errorf("write output: %w", err)
		}
		fmt.Fprintf(out, "Summary written to %s\n", *output)
		return nil
	}
	_, err = fmt.Fprintln(out, strings.TrimRight(string(payload), "\n"))
	return err
}

// departmentListing is one entry of `departments -json`, in catalog order.
type departmentListing struct {
	Department string   `json:"department"`
	Roles      []string `json:"roles"`
}

func departmentsCmd(cfg config.Config, args []string, out io.Writer) error {
	fs := flag.NewFlagSet("departments", flag.ContinueOnError)
	fs.StringVar(&cfg.CatalogFile, "catalog", cfg.CatalogFile, "yaml catalog overriding the built-in one")
	asJSON := fs.Bool("json", false, "print JSON")
	if err := fs.Parse(args); err != nil {
		return err
	}

	cfg.Store = config.StoreMemory
	app, err := openApp(cfg, cfg.NewLogger(os.Stderr))
	if err != nil {
		return err
	}
	defer app.Close()

	catalog := app.Catalog()
	if *asJSON {
		listing := make([]departmentListing, 0, len(catalog.Departments()))
		for _, department := range catalog.Departments() {
			listing = append(listing, departmentListing{Department: department, Roles: catalog.RolesFor(department)})
		}
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(listing)
	}

	for _, department := range catalog.Departments() {
		fmt.Fprintln(out, department)
		for _, role := range catalog.RolesFor(department) {
			fmt.Fprintf(out, "  - %s\n", role)
		}
	}
	return nil
}
