package tui

import "errors"

var (
	// ErrAborted signals the user aborted input (e.g., Ctrl+C).
	ErrAborted = errors.New("tui: aborted")
	// ErrMachineRequired is returned by Run without a wizard machine.
	ErrMachineRequired = errors.New("tui: wizard machine is required")
	// ErrUnknownTheme is returned when a theme name has no manifest.
	ErrUnknownTheme = errors.New("tui: unknown theme")
	// ErrUnknownVariant is returned when a theme lacks the requested variant.
	ErrUnknownVariant = errors.New("tui: unknown theme variant")
)
