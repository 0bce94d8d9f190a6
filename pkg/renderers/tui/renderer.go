package tui

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"time"

	"github.com/goliatone/go-formwizard/pkg/fields"
	"github.com/goliatone/go-formwizard/pkg/model"
	"github.com/goliatone/go-formwizard/pkg/options"
	"github.com/goliatone/go-formwizard/pkg/render"
	"github.com/goliatone/go-formwizard/pkg/renderers/text"
	"github.com/goliatone/go-formwizard/pkg/validation"
	"github.com/goliatone/go-formwizard/pkg/wizard"
)

// Machine is the part of *wizard.Machine the step loop drives.
type Machine interface {
	Start(ctx context.Context) error
	State() wizard.State
	SubmitIdentity(ctx context.Context, in validation.IdentityInput) (wizard.Result, error)
	EditField(ctx context.Context, field string) (wizard.Result, error)
	ChangeDepartment(ctx context.Context, department string) (wizard.Result, error)
	SubmitRole(ctx context.Context, in validation.RoleInput) (wizard.Result, error)
	Confirm(ctx context.Context) (wizard.Result, error)
	Edit(ctx context.Context) (wizard.Result, error)
}

var _ Machine = (*wizard.Machine)(nil)

// Renderer is the terminal presentation layer. It implements
// wizard.Presenter and runs the prompt loop that feeds events to the machine.
type Renderer struct {
	driver     PromptDriver
	out        io.Writer
	theme      Theme
	themed     bool
	translator render.Translator
	locale     string
	registry   *fields.Registry
	delay      time.Duration
	views      render.Renderer
	logger     *slog.Logger

	board *render.ErrorBoard
	label func(key, fallback string) string
	state State
}

var _ wizard.Presenter = (*Renderer)(nil)

// New constructs a TUI renderer with defaults (survey driver, classic theme,
// plain-text views, embedded message catalogs).
func New(opts ...Option) (*Renderer, error) {
	r := &Renderer{
		delay:  DefaultTransitionDelay,
		logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		if opt == nil {
			continue
		}
		opt(r)
	}

	if r.driver == nil {
		r.driver = newSurveyDriver(r.out)
	}
	if r.registry == nil {
		r.registry = fields.Default()
	}
	if !r.themed {
		resolved, err := ResolveTheme(nil, "", "")
		if err != nil {
			return nil, err
		}
		r.theme = resolved
	}
	if r.views == nil {
		views, err := text.New(text.WithFieldRegistry(r.registry))
		if err != nil {
			return nil, fmt.Errorf("tui: configure views: %w", err)
		}
		r.views = views
	}

	boardOpts := []render.BoardOption{render.WithFieldRegistry(r.registry)}
	if r.translator != nil {
		boardOpts = append(boardOpts, render.WithTranslator(r.translator, r.locale))
	} else if r.locale != "" {
		if messages, err := render.DefaultMessages(); err == nil {
			boardOpts = append(boardOpts, render.WithTranslator(messages, r.locale))
		}
	}
	r.board = render.NewErrorBoard(boardOpts...)
	r.label = r.renderOptions().Labeler()
	return r, nil
}

// Name reports the renderer identifier.
func (r *Renderer) Name() string {
	return "tui"
}

// State returns what the presenter currently shows.
func (r *Renderer) State() State {
	return r.state
}

// Errors returns the messages currently shown on form.
func (r *Renderer) Errors(form string) render.ErrorMapping {
	return r.board.Errors(form)
}

// Enter implements wizard.Presenter.
func (r *Renderer) Enter(view wizard.StepView) {
	r.state.enter(view)
}

// Exit implements wizard.Presenter.
func (r *Renderer) Exit(state wizard.State) {
	r.board.Clear(state.Form())
	r.state.exit(state)
}

// ClearErrors implements wizard.Presenter.
func (r *Renderer) ClearErrors(form string) {
	r.board.Clear(form)
}

// ShowErrors implements wizard.Presenter.
func (r *Renderer) ShowErrors(form string, errs validation.Errors) {
	r.board.Mark(form, errs)
}

// ClearFieldError implements wizard.Presenter.
func (r *Renderer) ClearFieldError(form, field string) {
	r.board.ClearField(form, field)
}

// UpdateRoles implements wizard.Presenter.
func (r *Renderer) UpdateRoles(view wizard.RoleView) {
	r.state.updateRoles(view)
}

// Run starts a fresh session on m and prompts until the record is confirmed,
// the user aborts or ctx is cancelled.
func (r *Renderer) Run(ctx context.Context, m Machine) error {
	if m == nil {
		return ErrMachineRequired
	}
	if err := m.Start(ctx); err != nil {
		return err
	}

	for {
		state := m.State()
		var err error
		switch state {
		case wizard.StateCollectingIdentity:
			err = r.collectIdentity(ctx, m)
		case wizard.StateCollectingRole:
			err = r.collectRole(ctx, m)
		case wizard.StateReviewingConfirmation:
			err = r.review(ctx, m)
		case wizard.StateConfirmed:
			return r.regards(ctx)
		default:
			return fmt.Errorf("tui: unexpected state %s", state)
		}
		if err != nil {
			return err
		}
		if m.State() != state {
			if err := r.pause(ctx); err != nil {
				return err
			}
		}
	}
}

func (r *Renderer) collectIdentity(ctx context.Context, m Machine) error {
	view := r.state.View()
	in := view.Identity
	keepPassword := view.EditMode && view.Record.Password != ""

	if err := r.header(ctx, "step.identity", "Personal data"); err != nil {
		return err
	}

	pending := r.registry.ForForm(fields.FormIdentity)
	for {
		for _, field := range pending {
			if r.board.Invalid(fields.FormIdentity, field.Name) {
				if _, err := m.EditField(ctx, field.Name); err != nil {
					return err
				}
			}
			value, err := r.promptField(ctx, field, identityValue(in, field.Name), keepPassword)
			if err != nil {
				return err
			}
			if value == "" && keepPassword && field.Kind == fields.ControlPassword {
				continue
			}
			setIdentityValue(&in, field.Name, value)
		}

		result, err := m.SubmitIdentity(ctx, in)
		if err != nil {
			return err
		}
		if result.Advanced() {
			return nil
		}
		if err := r.printErrors(ctx, fields.FormIdentity); err != nil {
			return err
		}
		pending = r.invalidFields(fields.FormIdentity)
	}
}

func (r *Renderer) collectRole(ctx context.Context, m Machine) error {
	if err := r.header(ctx, "step.role", "Position"); err != nil {
		return err
	}

	for {
		departments := r.state.View().Departments
		roles := r.state.Roles()

		if r.board.Invalid(fields.FormRole, model.FieldDepartment) {
			if _, err := m.EditField(ctx, model.FieldDepartment); err != nil {
				return err
			}
		}
		department, err := r.choose(ctx, "field.department", options.DepartmentPlaceholder, departments, roles.Department)
		if err != nil {
			return err
		}
		if department != roles.Department {
			if _, err := m.ChangeDepartment(ctx, department); err != nil {
				return err
			}
			roles = r.state.Roles()
		}

		vacancy := ""
		if roles.Enabled {
			if r.board.Invalid(fields.FormRole, model.FieldVacancy) {
				if _, err := m.EditField(ctx, model.FieldVacancy); err != nil {
					return err
				}
			}
			vacancy, err = r.choose(ctx, "field.vacancy", options.VacancyPlaceholder, roles.Roles, roles.Vacancy)
			if err != nil {
				return err
			}
		} else if err := r.info(ctx, r.theme.InfoPrefix+r.label("prompt.selectDepartmentFirst", "Select a department first")); err != nil {
			return err
		}

		result, err := m.SubmitRole(ctx, validation.RoleInput{Department: department, Vacancy: vacancy})
		if err != nil {
			return err
		}
		if result.Advanced() {
			return nil
		}
		if err := r.printErrors(ctx, fields.FormRole); err != nil {
			return err
		}
	}
}

func (r *Renderer) review(ctx context.Context, m Machine) error {
	summary, err := r.renderView(ctx, render.ViewSummary)
	if err != nil {
		return err
	}
	if err := r.info(ctx, summary); err != nil {
		return err
	}

	actions := []string{r.label("action.confirm", "Send"), r.label("action.edit", "Edit")}
	idx, err := r.driver.Select(ctx, SelectConfig{
		Message: r.theme.PromptPrefix + r.label("action.choose", "What next?"),
		Options: actions,
	})
	if err != nil {
		return err
	}
	if idx == 1 {
		_, err := m.Edit(ctx)
		return err
	}

	for {
		_, saveErr := m.Confirm(ctx)
		if saveErr == nil {
			return nil
		}
		if ctx.Err() != nil || m.State() != wizard.StateReviewingConfirmation {
			return saveErr
		}
		r.logger.Warn("save failed", "error", saveErr)
		if err := r.info(ctx, r.theme.ErrorPrefix+saveErr.Error()); err != nil {
			return err
		}
		retry, err := r.driver.Confirm(ctx, ConfirmConfig{
			Message: r.theme.PromptPrefix + r.label("prompt.retry", "Could not save. Try again?"),
			Default: true,
		})
		if err != nil {
			return err
		}
		if !retry {
			return saveErr
		}
	}
}

func (r *Renderer) regards(ctx context.Context) error {
	out, err := r.renderView(ctx, render.ViewRegards)
	if err != nil {
		return err
	}
	return r.info(ctx, out)
}

func (r *Renderer) promptField(ctx context.Context, field fields.Field, current string, keepPassword bool) (string, error) {
	message := r.theme.PromptPrefix + r.label(field.LabelKey, field.Name)
	if field.Optional {
		message += " (" + r.label("prompt.optional", "optional") + ")"
	}

	if field.Kind == fields.ControlPassword {
		if keepPassword {
			message += " (" + r.label("prompt.keepPassword", "leave blank to keep the current password") + ")"
		}
		return r.driver.Password(ctx, InputConfig{Message: message})
	}
	return r.driver.Input(ctx, InputConfig{Message: message, Default: current})
}

// choose prompts a select whose first entry is the placeholder. Picking the
// placeholder yields "".
func (r *Renderer) choose(ctx context.Context, labelKey, placeholder string, values []string, current string) (string, error) {
	choices := append([]string{r.label(labelKey, placeholder)}, values...)
	idx, err := r.driver.Select(ctx, SelectConfig{
		Message:      r.theme.PromptPrefix + r.label(labelKey, placeholder),
		Options:      choices,
		DefaultIndex: indexOf(values, current) + 1,
	})
	if err != nil {
		return "", err
	}
	if idx <= 0 || idx >= len(choices) {
		return "", nil
	}
	return choices[idx], nil
}

func (r *Renderer) printErrors(ctx context.Context, form string) error {
	mapping := r.board.Errors(form)
	for _, message := range mapping.Form {
		if err := r.info(ctx, r.theme.ErrorPrefix+message); err != nil {
			return err
		}
	}
	for _, field := range r.registry.ForForm(form) {
		label := r.label(field.LabelKey, field.Name)
		for _, message := range r.board.FieldMessages(form, field.Name) {
			if err := r.info(ctx, r.theme.ErrorPrefix+label+": "+message); err != nil {
				return err
			}
		}
	}
	return nil
}

// invalidFields lists the fields of form that carry an error, or every field
// when only form-level errors are shown.
func (r *Renderer) invalidFields(form string) []fields.Field {
	all := r.registry.ForForm(form)
	var out []fields.Field
	for _, field := range all {
		if r.board.Invalid(form, field.Name) {
			out = append(out, field)
		}
	}
	if len(out) == 0 {
		return all
	}
	return out
}

func (r *Renderer) header(ctx context.Context, key, fallback string) error {
	return r.info(ctx, r.theme.HeaderPrefix+r.label(key, fallback))
}

func (r *Renderer) info(ctx context.Context, msg string) error {
	return r.driver.Info(ctx, msg)
}

func (r *Renderer) renderView(ctx context.Context, name string) (string, error) {
	out, err := r.views.Render(ctx, render.View{Name: name, Record: r.state.View().Record}, r.renderOptions())
	if err != nil {
		return "", fmt.Errorf("tui: render %s: %w", name, err)
	}
	return strings.TrimRight(string(out), "\n"), nil
}

func (r *Renderer) renderOptions() render.RenderOptions {
	return render.RenderOptions{Locale: r.locale, Translator: r.translator}
}

func (r *Renderer) pause(ctx context.Context) error {
	if r.delay <= 0 {
		return nil
	}
	timer := time.NewTimer(r.delay)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
