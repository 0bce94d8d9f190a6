package wizard

import (
	"github.com/goliatone/go-formwizard/pkg/model"
	"github.com/goliatone/go-formwizard/pkg/validation"
)

// StepView is what the presentation layer needs to render a step on entry.
type StepView struct {
	State    State
	Form     string
	EditMode bool
	// Record is the accumulated record. PasswordConfirm is always empty.
	Record model.UserRecord
	// Identity pre-fills the identity form. It is zero unless the step is
	// re-entered in edit mode.
	Identity    validation.IdentityInput
	Departments []string
	Role        RoleView
}

// Presenter is the presentation layer the machine drives. Methods are called
// synchronously from the dispatching goroutine.
type Presenter interface {
	// Enter instantiates the view of a newly entered step.
	Enter(view StepView)
	// Exit tears down the view of the step being left.
	Exit(state State)
	// ClearErrors removes every error shown on form.
	ClearErrors(form string)
	// ShowErrors marks each failing field of form invalid.
	ShowErrors(form string, errs validation.Errors)
	// ClearFieldError removes the error shown for one field.
	ClearFieldError(form, field string)
	// UpdateRoles repopulates the role selector.
	UpdateRoles(view RoleView)
}

// NopPresenter discards every call. It is the default presenter.
type NopPresenter struct{}

func (NopPresenter) Enter(StepView)                       {}
func (NopPresenter) Exit(State)                           {}
func (NopPresenter) ClearErrors(string)                   {}
func (NopPresenter) ShowErrors(string, validation.Errors) {}
func (NopPresenter) ClearFieldError(string, string)       {}
func (NopPresenter) UpdateRoles(RoleView)                 {}

var _ Presenter = NopPresenter{}
