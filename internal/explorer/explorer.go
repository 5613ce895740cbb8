// Package explorer composes the setup detail view: the selected setup,
// the overlay lifecycle, the rule-section tabs and the pattern diagram.
//
// Every method runs on the UI goroutine. Methods that start timed work
// return timer.Requests; the caller schedules them (timer.Cmd) and feeds
// the fired tokens back in. Superseded tokens are ignored.
package explorer

import (
	"time"

	"github.com/abhisek/edgefinder/internal/catalog"
	"github.com/abhisek/edgefinder/internal/chart"
	"github.com/abhisek/edgefinder/internal/modal"
	"github.com/abhisek/edgefinder/internal/pattern"
	"github.com/abhisek/edgefinder/internal/tabs"
	"github.com/abhisek/edgefinder/internal/timer"
)

// RuleStagger is the delay between revealing consecutive rule items.
const RuleStagger = 50 * time.Millisecond

// Section is a rule list of the detail view.
type Section string

const (
	Spot  Section = "spot"
	Entry Section = "entry"
	Exit  Section = "exit"
)

// Sections lists the detail sections in tab order.
var Sections = []Section{Spot, Entry, Exit}

// Label returns the tab caption.
func (s Section) Label() string {
	switch s {
	case Spot:
		return "How to Spot"
	case Entry:
		return "Entry Rules"
	case Exit:
		return "Exit Rules"
	}
	return string(s)
}

// Requests are the timers a transition wants scheduled. Invalid entries
// need no scheduling.
type Requests struct {
	Frame  timer.Request
	Reveal timer.Request
	// Changed is set when the shown setup was replaced, false when Select
	// only cancelled a pending teardown.
	Changed bool
}

// Explorer owns the detail view state.
type Explorer struct {
	selection *catalog.Selection
	modal     modal.Machine
	tabs      tabs.Navigator[Section]
	chart     chart.Renderer

	shown    string
	revealed int
	stagger  timer.Slot
	instant  bool
}

// New returns a closed explorer over c. With instant set the diagram and
// rule lists appear fully drawn.
func New(c *catalog.Catalog, instant bool) *Explorer {
	return &Explorer{
		selection: catalog.NewSelection(c),
		tabs:      tabs.New(Sections...),
		chart:     chart.Renderer{Instant: instant},
		instant:   instant,
	}
}

// Select shows the setup id. From closed it opens the overlay; while
// open it swaps the content in place with no close in between; while
// closing it cancels the pending teardown. New content resets the tab to
// Spot and restarts the diagram. Ids not in the catalog are ignored and
// reported with ok=false.
func (e *Explorer) Select(id string) (reqs Requests, ok bool) {
	if !e.selection.Select(id) {
		return Requests{}, false
	}
	if e.modal.Open() {
		e.modal.Mounted()
	} else if id == e.shown {
		return Requests{}, true
	}

	setup, _ := e.selection.Selected()
	e.shown = id
	e.tabs.Reset()
	reqs.Frame = e.chart.Load(pattern.Resolve(setup.Pattern))
	reqs.Reveal = e.restartReveal()
	reqs.Changed = true
	return reqs, true
}

// Close hides the overlay and returns the teardown request. Selection
// stays intact until the teardown fires.
func (e *Explorer) Close() (timer.Request, bool) {
	return e.modal.Close()
}

// Teardown handles a fired teardown token. When tok is current the
// overlay is detached and the selection cleared.
func (e *Explorer) Teardown(tok timer.Token) bool {
	if !e.modal.Teardown(tok) {
		return false
	}
	e.reset()
	return true
}

// Dispose tears everything down at once and suppresses pending timers.
func (e *Explorer) Dispose() {
	e.modal.Dispose()
	e.reset()
}

func (e *Explorer) reset() {
	e.selection.Clear()
	e.chart.Stop()
	e.stagger.Cancel()
	e.tabs.Reset()
	e.shown = ""
	e.revealed = 0
}

// Frame advances the diagram clock.
func (e *Explorer) Frame(tok timer.Token) (timer.Request, bool) {
	return e.chart.Frame(tok)
}

// Reveal shows the next rule item of the active section.
func (e *Explorer) Reveal(tok timer.Token) (timer.Request, bool) {
	if !e.stagger.Fire(tok) {
		return timer.Request{}, false
	}
	e.revealed++
	if e.revealed >= len(e.Rules()) {
		e.revealed = len(e.Rules())
		return timer.Request{}, true
	}
	return e.stagger.Arm(RuleStagger), true
}

// SelectTab switches the rule section. Unknown sections panic.
func (e *Explorer) SelectTab(s Section) timer.Request {
	if s == e.tabs.Active() {
		return timer.Request{}
	}
	e.tabs.Select(s)
	return e.restartReveal()
}

// NextTab moves to the following section, wrapping.
func (e *Explorer) NextTab() timer.Request {
	e.tabs.Next()
	return e.restartReveal()
}

// PrevTab moves to the preceding section, wrapping.
func (e *Explorer) PrevTab() timer.Request {
	e.tabs.Prev()
	return e.restartReveal()
}

func (e *Explorer) restartReveal() timer.Request {
	e.stagger.Cancel()
	if e.instant {
		e.revealed = len(e.Rules())
		return timer.Request{}
	}
	e.revealed = 0
	return e.stagger.Arm(0)
}

// Section returns the active rule section.
func (e *Explorer) Section() Section {
	return e.tabs.Active()
}

// Rules returns the active section's rules for the selected setup.
func (e *Explorer) Rules() []string {
	s, ok := e.selection.Selected()
	if !ok {
		return nil
	}
	switch e.tabs.Active() {
	case Entry:
		return s.EntryRules
	case Exit:
		return s.ExitRules
	}
	return s.HowToSpot
}

// VisibleRules returns the rule items revealed so far.
func (e *Explorer) VisibleRules() []string {
	rules := e.Rules()
	return rules[:min(e.revealed, len(rules))]
}

// Current returns the selected setup.
func (e *Explorer) Current() (catalog.Setup, bool) {
	return e.selection.Selected()
}

// Phase returns the overlay phase.
func (e *Explorer) Phase() modal.Phase {
	return e.modal.Phase()
}

// Visible reports whether the overlay should be shown.
func (e *Explorer) Visible() bool {
	return e.modal.Visible()
}

// Live reports whether an overlay instance exists.
func (e *Explorer) Live() bool {
	return e.modal.Live()
}

// ScrollLocked reports whether the background list must ignore scrolling.
func (e *Explorer) ScrollLocked() bool {
	return e.modal.ScrollLocked()
}

// Chart returns the diagram renderer.
func (e *Explorer) Chart() *chart.Renderer {
	return &e.chart
}
