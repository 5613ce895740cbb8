// Package screen defines the contract between the app shell and screens.
package screen

import (
	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/edgefinder/internal/ui/layout"
)

// Screen defines the interface for all application screens.
type Screen interface {
	// Init returns an initial command when the screen is first created.
	Init() tea.Cmd

	// Update handles messages and returns updated screen + command.
	Update(msg tea.Msg) (Screen, tea.Cmd)

	// View renders the screen content (excluding header/footer).
	View(width, height int) string

	// Title returns the screen name for the header.
	Title() string
}

// KeyHintProvider is an optional interface that screens can implement
// to provide custom footer key hints.
type KeyHintProvider interface {
	KeyHints() []layout.KeyHint
}

// InputCapturer is implemented by screens that sometimes need every key,
// including esc and q (an open overlay, a focused filter input). While
// CapturesInput is true the shell forwards keys without interpreting them.
type InputCapturer interface {
	CapturesInput() bool
}

// Disposer is implemented by screens holding timers. Dispose is called
// when the screen leaves the stack.
type Disposer interface {
	Dispose()
}

// StatusProvider is implemented by screens that contribute the status
// text on the right of the header.
type StatusProvider interface {
	Status() string
}
