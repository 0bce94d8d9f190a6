package wizard

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/google/uuid"

	"github.com/goliatone/go-formwizard/pkg/model"
	"github.com/goliatone/go-formwizard/pkg/options"
	"github.com/goliatone/go-formwizard/pkg/store"
	"github.com/goliatone/go-formwizard/pkg/store/memory"
	"github.com/goliatone/go-formwizard/pkg/validation"
)

// Machine sequences the wizard steps.
type Machine struct {
	presenter Presenter
	options   OptionsProvider
	persister Persister
	storeKey  string
	logger    *slog.Logger
	sessionID string

	state    State
	record   model.UserRecord
	editMode bool
	role     RoleView

	bus         *bus
	unsubscribe []func()
}

// New constructs a machine. Without options it uses the embedded catalog, a
// no-op presenter and an in-memory store.
func New(opts ...Option) *Machine {
	m := &Machine{
		presenter: NopPresenter{},
		storeKey:  store.DefaultKey,
		logger:    slog.New(slog.NewTextHandler(io.Discard, nil)),
		bus:       newBus(),
	}
	for _, opt := range opts {
		if opt == nil {
			continue
		}
		opt(m)
	}
	if m.options == nil {
		m.options = options.MustDefault()
	}
	if m.persister == nil {
		m.persister = store.NewBridge(memory.New(nil))
	}
	if m.sessionID == "" {
		m.sessionID = uuid.NewString()
	}
	m.logger = m.logger.With("session", m.sessionID)
	m.role = DeriveRoleView(m.options, "", "")
	return m
}

// Start enters the initial step with an empty record. Calling Start again
// restarts the session.
func (m *Machine) Start(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if m.state != 0 {
		m.leave()
	}
	m.record = model.UserRecord{}
	m.editMode = false
	m.role = DeriveRoleView(m.options, "", "")
	m.enter(StateCollectingIdentity)
	m.logger.Info("wizard started", "state", m.state.String())
	return nil
}

// State returns the current step.
func (m *Machine) State() State { return m.state }

// SessionID returns the identifier attached to log records.
func (m *Machine) SessionID() string { return m.sessionID }

// Accepts reports whether kind has a live subscription in the current step.
func (m *Machine) Accepts(kind EventKind) bool {
	_, ok := m.bus.lookup(kind)
	return ok
}

// Accepted lists the event kinds the current step handles.
func (m *Machine) Accepted() []EventKind {
	return m.bus.kinds()
}

// Snapshot returns a copy of the observable state.
func (m *Machine) Snapshot() Snapshot {
	return Snapshot{
		SessionID: m.sessionID,
		State:     m.state,
		Record:    m.record,
		EditMode:  m.editMode,
		Role:      m.role.clone(),
	}
}

// Dispatch routes event to the handler subscribed by the current step.
func (m *Machine) Dispatch(ctx context.Context, event Event) (Result, error) {
	current := Result{From: m.state, To: m.state}
	if err := ctx.Err(); err != nil {
		return current, err
	}
	switch {
	case m.state == 0:
		return current, ErrNotStarted
	case m.state.Terminal():
		return current, ErrTerminal
	}

	fn, ok := m.bus.lookup(event.Kind)
	if !ok {
		m.logger.Debug("event rejected", "event", string(event.Kind), "state", m.state.String())
		return current, fmt.Errorf("%w: %s in %s", ErrEventNotAccepted, event.Kind, m.state)
	}
	return fn(ctx, event)
}

// SubmitIdentity dispatches EventSubmitIdentity.
func (m *Machine) SubmitIdentity(ctx context.Context, in validation.IdentityInput) (Result, error) {
	return m.Dispatch(ctx, Event{Kind: EventSubmitIdentity, Identity: in})
}

// EditField dispatches EventEditField, clearing the error shown for field.
func (m *Machine) EditField(ctx context.Context, field string) (Result, error) {
	return m.Dispatch(ctx, Event{Kind: EventEditField, Field: field})
}

// ChangeDepartment dispatches EventChangeDepartment. An empty department
// clears the selection.
func (m *Machine) ChangeDepartment(ctx context.Context, department string) (Result, error) {
	return m.Dispatch(ctx, Event{Kind: EventChangeDepartment, Department: department})
}

// SubmitRole dispatches EventSubmitRole.
func (m *Machine) SubmitRole(ctx context.Context, in validation.RoleInput) (Result, error) {
	return m.Dispatch(ctx, Event{Kind: EventSubmitRole, Role: in})
}

// Confirm dispatches EventConfirm.
func (m *Machine) Confirm(ctx context.Context) (Result, error) {
	return m.Dispatch(ctx, Event{Kind: EventConfirm})
}

// Edit dispatches EventEdit.
func (m *Machine) Edit(ctx context.Context) (Result, error) {
	return m.Dispatch(ctx, Event{Kind: EventEdit})
}

func (m *Machine) handlers(state State) map[EventKind]handler {
	switch state {
	case StateCollectingIdentity:
		return map[EventKind]handler{
			EventSubmitIdentity: m.onSubmitIdentity,
			EventEditField:      m.onEditField,
		}
	case StateCollectingRole:
		return map[EventKind]handler{
			EventChangeDepartment: m.onChangeDepartment,
			EventEditField:        m.onEditField,
			EventSubmitRole:       m.onSubmitRole,
		}
	case StateReviewingConfirmation:
		return map[EventKind]handler{
			EventConfirm: m.onConfirm,
			EventEdit:    m.onEdit,
		}
	default:
		return nil
	}
}

func (m *Machine) onSubmitIdentity(_ context.Context, event Event) (Result, error) {
	from := m.state
	form := from.Form()

	m.presenter.ClearErrors(form)
	errs := validation.ValidateIdentity(event.Identity)
	if !errs.Empty() {
		m.presenter.ShowErrors(form, errs)
		m.logger.Debug("step rejected", "state", from.String(), "fields", errs.Fields())
		return Result{From: from, To: from, Errors: errs}, nil
	}

	event.Identity.Apply(&m.record)
	m.transition(StateCollectingRole)
	return Result{From: from, To: m.state, Role: m.role.clone()}, nil
}

func (m *Machine) onEditField(_ context.Context, event Event) (Result, error) {
	m.presenter.ClearFieldError(m.state.Form(), event.Field)
	return Result{From: m.state, To: m.state}, nil
}

func (m *Machine) onChangeDepartment(_ context.Context, event Event) (Result, error) {
	m.role = DeriveRoleView(m.options, event.Department, "")
	m.presenter.ClearFieldError(m.state.Form(), model.FieldDepartment)
	m.presenter.UpdateRoles(m.role.clone())
	return Result{From: m.state, To: m.state, Role: m.role.clone()}, nil
}

func (m *Machine) onSubmitRole(_ context.Context, event Event) (Result, error) {
	from := m.state
	form := from.Form()

	m.presenter.ClearErrors(form)
	errs := validation.ValidateRoleCatalog(event.Role, m.options)
	if !errs.Empty() {
		m.presenter.ShowErrors(form, errs)
		m.logger.Debug("step rejected", "state", from.String(), "fields", errs.Fields())
		return Result{From: from, To: from, Errors: errs, Role: m.role.clone()}, nil
	}

	event.Role.Apply(&m.record)
	m.role = DeriveRoleView(m.options, m.record.Department, m.record.Vacancy)
	m.transition(StateReviewingConfirmation)
	return Result{From: from, To: m.state}, nil
}

func (m *Machine) onConfirm(ctx context.Context, _ Event) (Result, error) {
	from := m.state
	wasEditing := m.editMode
	m.editMode = false

	if err := m.persister.Save(ctx, m.storeKey, m.record.Persistable()); err != nil {
		m.editMode = wasEditing
		m.logger.Error("persist record failed", "key", m.storeKey, "error", err)
		return Result{From: from, To: from}, fmt.Errorf("wizard: persist record: %w", err)
	}
	m.logger.Info("record persisted", "key", m.storeKey)

	m.transition(StateConfirmed)
	return Result{From: from, To: m.state}, nil
}

func (m *Machine) onEdit(_ context.Context, _ Event) (Result, error) {
	from := m.state
	m.editMode = true
	m.transition(StateCollectingIdentity)
	return Result{From: from, To: m.state}, nil
}

func (m *Machine) transition(to State) {
	from := m.state
	m.leave()
	m.enter(to)
	m.logger.Info("wizard transition", "from", from.String(), "to", to.String(), "edit_mode", m.editMode)
}

func (m *Machine) leave() {
	for _, unsubscribe := range m.unsubscribe {
		unsubscribe()
	}
	m.unsubscribe = nil
	m.presenter.Exit(m.state)
}

func (m *Machine) enter(to State) {
	m.state = to
	for kind, fn := range m.handlers(to) {
		m.unsubscribe = append(m.unsubscribe, m.bus.subscribe(kind, fn))
	}

	if to == StateCollectingRole {
		if m.editMode && m.record.Department != "" {
			m.role = DeriveRoleView(m.options, m.record.Department, m.record.Vacancy)
		} else {
			m.role = DeriveRoleView(m.options, "", "")
		}
	}
	m.presenter.Enter(m.view())
}

func (m *Machine) view() StepView {
	view := StepView{
		State:    m.state,
		Form:     m.state.Form(),
		EditMode: m.editMode,
		Record:   m.record.Persistable(),
		Role:     m.role.clone(),
	}
	switch m.state {
	case StateCollectingIdentity:
		if m.editMode {
			view.Identity = validation.IdentityFromRecord(m.record)
		}
	case StateCollectingRole:
		view.Departments = m.options.Departments()
	}
	return view
}
