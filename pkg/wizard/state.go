package wizard

import (
	"errors"

	"github.com/goliatone/go-formwizard/pkg/fields"
	"github.com/goliatone/go-formwizard/pkg/model"
	"github.com/goliatone/go-formwizard/pkg/validation"
)

// State enumerates the wizard steps.
type State int

const (
	StateCollectingIdentity State = iota + 1
	StateCollectingRole
	StateReviewingConfirmation
	StateConfirmed
)

func (s State) String() string {
	switch s {
	case StateCollectingIdentity:
		return "collecting-identity"
	case StateCollectingRole:
		return "collecting-role"
	case StateReviewingConfirmation:
		return "reviewing-confirmation"
	case StateConfirmed:
		return "confirmed"
	default:
		return "unstarted"
	}
}

// Form returns the sub-form collected in s, or "" for read-only steps.
func (s State) Form() string {
	switch s {
	case StateCollectingIdentity:
		return fields.FormIdentity
	case StateCollectingRole:
		return fields.FormRole
	default:
		return ""
	}
}

// Terminal reports whether no further transitions leave s.
func (s State) Terminal() bool {
	return s == StateConfirmed
}

// EventKind names a user-triggered event.
type EventKind string

const (
	EventSubmitIdentity   EventKind = "submit-identity"
	EventEditField        EventKind = "edit-field"
	EventChangeDepartment EventKind = "change-department"
	EventSubmitRole       EventKind = "submit-role"
	EventConfirm          EventKind = "confirm"
	EventEdit             EventKind = "edit"
)

// Event carries the payload of a dispatched event. Only the members relevant
// to Kind are read.
type Event struct {
	Kind       EventKind
	Identity   validation.IdentityInput
	Role       validation.RoleInput
	Department string
	Field      string
}

var (
	// ErrEventNotAccepted is returned when no handler for the event is
	// subscribed in the current state.
	ErrEventNotAccepted = errors.New("wizard: event not accepted")
	// ErrTerminal is returned for events dispatched after confirmation.
	ErrTerminal = errors.New("wizard: session already confirmed")
	// ErrNotStarted is returned for events dispatched before Start.
	ErrNotStarted = errors.New("wizard: not started")
)

// Result reports the outcome of a dispatched event. Errors holds validation
// failures; they keep the machine in From and are not returned as error.
type Result struct {
	From   State
	To     State
	Errors validation.Errors
	Role   RoleView
}

// Advanced reports whether the event caused a transition.
func (r Result) Advanced() bool {
	return r.From != r.To
}

// Snapshot is a copy of the machine's observable state.
type Snapshot struct {
	SessionID string
	State     State
	Record    model.UserRecord
	EditMode  bool
	Role      RoleView
}
