// Package modal implements the presentation lifecycle of the setup detail
// overlay: Closed → Opening → Open → Closing → Closed, with a delayed,
// cancelable teardown so the exit transition can finish.
package modal

import (
	"time"

	"github.com/abhisek/edgefinder/internal/timer"
)

// TeardownDelay is how long the overlay stays mounted after a close request.
const TeardownDelay = 200 * time.Millisecond

// Phase is the lifecycle phase of the overlay.
type Phase int

const (
	Closed Phase = iota
	Opening
	Open
	Closing
)

func (p Phase) String() string {
	switch p {
	case Closed:
		return "closed"
	case Opening:
		return "opening"
	case Open:
		return "open"
	case Closing:
		return "closing"
	}
	return "unknown"
}

// Event drives phase transitions.
type Event int

const (
	EventOpen     Event = iota // user asked to show a setup
	EventMounted               // overlay attached; immediate after open
	EventClose                 // user dismissed the overlay
	EventTeardown              // teardown delay elapsed
)

// Next is the pure transition function. Events that do not apply to a
// phase leave it unchanged.
func Next(p Phase, e Event) Phase {
	switch e {
	case EventOpen:
		switch p {
		case Closed:
			return Opening
		case Closing:
			// A reopen before teardown keeps the live instance.
			return Open
		}
	case EventMounted:
		if p == Opening {
			return Open
		}
	case EventClose:
		if p == Opening || p == Open {
			return Closing
		}
	case EventTeardown:
		if p == Closing {
			return Closed
		}
	}
	return p
}

// Machine owns the overlay phase, its visibility flag, and the pending
// teardown timer.
type Machine struct {
	phase    Phase
	visible  bool
	teardown timer.Slot
}

// Phase returns the current phase.
func (m *Machine) Phase() Phase {
	return m.phase
}

// Visible reports whether the presentation layer should show the overlay
// (false while the exit transition plays).
func (m *Machine) Visible() bool {
	return m.visible
}

// Live reports whether an overlay instance exists.
func (m *Machine) Live() bool {
	return m.phase != Closed
}

// ScrollLocked reports whether background scrolling is suppressed.
// It holds for every phase except Closed.
func (m *Machine) ScrollLocked() bool {
	return m.phase != Closed
}

// TeardownPending reports whether a teardown is scheduled.
func (m *Machine) TeardownPending() bool {
	return m.teardown.Pending()
}

// Open requests the overlay. From Closed it mounts a new instance
// (Opening, visible); while Closing it cancels the pending teardown and
// returns to Open. It returns true when a new instance was mounted and
// Mounted must follow.
func (m *Machine) Open() bool {
	prev := m.phase
	m.phase = Next(prev, EventOpen)
	m.teardown.Cancel()
	m.visible = true
	return prev == Closed
}

// Mounted completes the Opening phase.
func (m *Machine) Mounted() {
	m.phase = Next(m.phase, EventMounted)
}

// Close hides the overlay immediately and schedules the teardown. It
// returns false, with no request, when there is nothing to close.
func (m *Machine) Close() (timer.Request, bool) {
	next := Next(m.phase, EventClose)
	if next == m.phase {
		return timer.Request{}, false
	}
	m.phase = next
	m.visible = false
	return m.teardown.Arm(TeardownDelay), true
}

// Teardown handles a fired teardown timer. Only the currently armed token
// tears the overlay down; stale tokens are ignored and return false.
func (m *Machine) Teardown(tok timer.Token) bool {
	if !m.teardown.Fire(tok) {
		return false
	}
	m.phase = Next(m.phase, EventTeardown)
	m.visible = false
	return m.phase == Closed
}

// Dispose tears the overlay down at once and suppresses any pending
// teardown callback.
func (m *Machine) Dispose() {
	m.teardown.Cancel()
	m.phase = Closed
	m.visible = false
}
