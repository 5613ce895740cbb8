// Package timer models delayed callbacks that can be superseded.
//
// Bubble Tea has no way to cancel a tea.Tick once it is scheduled, so every
// scheduled callback carries a Token. The owner keeps a Slot and only acts on
// a fired token if it is still the armed one. Disarming the slot (Cancel, or
// arming a newer token) suppresses the late callback.
package timer

import (
	"time"

	tea "charm.land/bubbletea/v2"
)

// Token identifies one scheduled callback. The zero Token is never armed.
type Token uint64

// Request describes a callback the owner wants delivered after a delay.
type Request struct {
	Token Token
	After time.Duration
}

// Valid reports whether the request carries an armed token.
func (r Request) Valid() bool {
	return r.Token != 0
}

// Slot holds at most one pending callback.
type Slot struct {
	last  Token
	armed Token
}

// Arm cancels any pending callback and returns a request for a new one.
func (s *Slot) Arm(after time.Duration) Request {
	s.last++
	s.armed = s.last
	return Request{Token: s.armed, After: after}
}

// Cancel drops the pending callback, if any.
func (s *Slot) Cancel() {
	s.armed = 0
}

// Pending reports whether a callback is armed.
func (s *Slot) Pending() bool {
	return s.armed != 0
}

// Fire consumes tok. It returns true only when tok is the armed token;
// stale or cancelled tokens return false and leave the slot unchanged.
func (s *Slot) Fire(tok Token) bool {
	if tok == 0 || tok != s.armed {
		return false
	}
	s.armed = 0
	return true
}

// Cmd turns a request into a tea.Tick that delivers wrap(token).
// An invalid request yields a nil command.
func Cmd(r Request, wrap func(Token) tea.Msg) tea.Cmd {
	if !r.Valid() {
		return nil
	}
	return tea.Tick(r.After, func(time.Time) tea.Msg {
		return wrap(r.Token)
	})
}
