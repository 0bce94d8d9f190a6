package tui

import (
	"github.com/goliatone/go-formwizard/pkg/model"
	"github.com/goliatone/go-formwizard/pkg/validation"
	"github.com/goliatone/go-formwizard/pkg/wizard"
)

// State mirrors what the machine last told the presenter: the active step
// view, the role selector and the steps left so far.
type State struct {
	view   wizard.StepView
	roles  wizard.RoleView
	exited []wizard.State
}

// View returns the view of the active step.
func (s State) View() wizard.StepView {
	return s.view
}

// Roles returns the current role selector.
func (s State) Roles() wizard.RoleView {
	return s.roles
}

// Exited lists the states the presenter tore down, oldest first.
func (s State) Exited() []wizard.State {
	return append([]wizard.State(nil), s.exited...)
}

func (s *State) enter(view wizard.StepView) {
	s.view = view
	s.roles = view.Role
}

func (s *State) exit(state wizard.State) {
	s.exited = append(s.exited, state)
}

func (s *State) updateRoles(view wizard.RoleView) {
	s.roles = view
}

func identityValue(in validation.IdentityInput, field string) string {
	switch field {
	case model.FieldFirstName:
		return in.FirstName
	case model.FieldLastName:
		return in.LastName
	case model.FieldLogin:
		return in.Login
	case model.FieldEmail:
		return in.Email
	case model.FieldPassword:
		return in.Password
	case model.FieldPasswordConfirm:
		return in.PasswordConfirm
	case model.FieldCompany:
		return in.Company
	default:
		return ""
	}
}

func setIdentityValue(in *validation.IdentityInput, field, value string) {
	switch field {
	case model.FieldFirstName:
		in.FirstName = value
	case model.FieldLastName:
		in.LastName = value
	case model.FieldLogin:
		in.Login = value
	case model.FieldEmail:
		in.Email = value
	case model.FieldPassword:
		in.Password = value
	case model.FieldPasswordConfirm:
		in.PasswordConfirm = value
	case model.FieldCompany:
		in.Company = value
	}
}
