// Package wizard implements the step state machine behind the registration
// wizard.
//
// The Machine owns the in-progress model.UserRecord and the edit-mode flag.
// Each state subscribes its event handlers on entry and drops them on exit,
// so an event dispatched outside its step is rejected with
// ErrEventNotAccepted instead of mutating the record. Presentation happens
// through the Presenter interface; persistence through Persister.
//
// A Machine is driven from a single goroutine and is not safe for concurrent
// use.
package wizard
