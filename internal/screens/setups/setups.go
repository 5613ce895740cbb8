// Package setups is the catalog screen: a list of setup cards and the
// detail overlay with the animated pattern diagram.
package setups

import (
	"context"
	"io"

	"charm.land/bubbles/v2/key"
	tea "charm.land/bubbletea/v2"
	clog "github.com/charmbracelet/log"

	"github.com/abhisek/edgefinder/internal/catalog"
	"github.com/abhisek/edgefinder/internal/explorer"
	"github.com/abhisek/edgefinder/internal/modal"
	"github.com/abhisek/edgefinder/internal/screen"
	"github.com/abhisek/edgefinder/internal/timer"
	"github.com/abhisek/edgefinder/internal/ui/components"
	"github.com/abhisek/edgefinder/internal/ui/layout"
)

// Recorder receives study events. It may be nil.
type Recorder interface {
	SetupViewed(ctx context.Context, setupID string) error
}

// Options configures the screen.
type Options struct {
	Catalog  *catalog.Catalog
	Recorder Recorder
	Logger   *clog.Logger
	Motion   string // config motion level
}

type (
	teardownMsg struct{ token timer.Token }
	frameMsg    struct{ token timer.Token }
	revealMsg   struct{ token timer.Token }
	motionMsg   struct{ token timer.Token }
	recordedMsg struct {
		id  string
		err error
	}
)

// Screen lists setups and hosts the detail overlay.
type Screen struct {
	catalog  *catalog.Catalog
	explorer *explorer.Explorer
	recorder Recorder
	log      *clog.Logger
	keys     keyMap

	cursor  components.Cursor
	filter  components.FilterInput
	visible []int // indexes into catalog.Setups passing the filter

	motion     modal.Motion
	motionTick timer.Slot
}

var _ screen.Screen = (*Screen)(nil)

// New creates the setups screen.
func New(opts Options) *Screen {
	logger := opts.Logger
	if logger == nil {
		logger = clog.New(io.Discard)
	}
	s := &Screen{
		catalog:  opts.Catalog,
		explorer: explorer.New(opts.Catalog, opts.Motion == "off"),
		recorder: opts.Recorder,
		log:      logger.WithPrefix("setups"),
		keys:     defaultKeys(),
		filter:   components.NewFilterInput("filter setups", 32),
		motion:   modal.NewMotion(opts.Motion),
		cursor:   components.NewCursor(0),
	}
	s.refilter()
	return s
}

func (s *Screen) Init() tea.Cmd {
	return nil
}

func (s *Screen) Title() string {
	return "Top Setups"
}

// CapturesInput is true while the overlay is shown or the filter is
// focused, so esc and q reach this screen.
func (s *Screen) CapturesInput() bool {
	return s.explorer.Visible() || s.filter.Focused()
}

// Dispose drops the overlay and every pending timer.
func (s *Screen) Dispose() {
	s.explorer.Dispose()
	s.motionTick.Cancel()
}

// Explorer exposes the detail state for the shell header and tests.
func (s *Screen) Explorer() *explorer.Explorer {
	return s.explorer
}

func (s *Screen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case teardownMsg:
		if s.explorer.Teardown(msg.token) {
			s.log.Debug("overlay torn down")
		}
		return s, nil

	case frameMsg:
		req, _ := s.explorer.Frame(msg.token)
		return s, timer.Cmd(req, wrapFrame)

	case revealMsg:
		req, _ := s.explorer.Reveal(msg.token)
		return s, timer.Cmd(req, wrapReveal)

	case motionMsg:
		if !s.motionTick.Fire(msg.token) {
			return s, nil
		}
		if s.motion.Step(s.motionTarget()) {
			return s, nil
		}
		return s, timer.Cmd(s.motionTick.Arm(modal.MotionInterval), wrapMotion)

	case recordedMsg:
		if msg.err != nil {
			s.log.Warn("record setup view", "setup", msg.id, "err", msg.err)
		}
		return s, nil

	case tea.KeyPressMsg:
		if s.explorer.Visible() {
			return s, s.overlayKey(msg)
		}
		if s.filter.Focused() {
			return s, s.filterKey(msg)
		}
		return s, s.listKey(msg)
	}

	if s.filter.Focused() {
		var cmd tea.Cmd
		s.filter, cmd = s.filter.Update(msg)
		return s, cmd
	}
	return s, nil
}

func (s *Screen) listKey(msg tea.KeyPressMsg) tea.Cmd {
	switch {
	case key.Matches(msg, s.keys.Open):
		id, ok := s.cursorSetup()
		if !ok {
			return nil
		}
		return s.open(id)
	case key.Matches(msg, s.keys.Filter):
		if s.explorer.ScrollLocked() {
			return nil
		}
		return s.filter.Focus()
	case key.Matches(msg, s.keys.Clear):
		if s.filter.Query() != "" {
			s.filter.Reset()
			s.refilter()
		}
		return nil
	}
	// The list stays put while an overlay is live, even mid-exit.
	if s.explorer.ScrollLocked() {
		return nil
	}
	s.cursor, _ = s.cursor.Update(msg)
	return nil
}

func (s *Screen) filterKey(msg tea.KeyPressMsg) tea.Cmd {
	switch {
	case key.Matches(msg, s.keys.Clear):
		s.filter.Reset()
		s.refilter()
		return nil
	case key.Matches(msg, s.keys.Accept):
		s.filter.Blur()
		return nil
	}
	var cmd tea.Cmd
	s.filter, cmd = s.filter.Update(msg)
	s.refilter()
	return cmd
}

func (s *Screen) overlayKey(msg tea.KeyPressMsg) tea.Cmd {
	switch {
	case key.Matches(msg, s.keys.Close):
		req, ok := s.explorer.Close()
		if !ok {
			return nil
		}
		return tea.Batch(timer.Cmd(req, wrapTeardown), s.startMotion())
	case key.Matches(msg, s.keys.NextTab):
		return timer.Cmd(s.explorer.NextTab(), wrapReveal)
	case key.Matches(msg, s.keys.PrevTab):
		return timer.Cmd(s.explorer.PrevTab(), wrapReveal)
	case key.Matches(msg, s.keys.Spot):
		return timer.Cmd(s.explorer.SelectTab(explorer.Spot), wrapReveal)
	case key.Matches(msg, s.keys.Entry):
		return timer.Cmd(s.explorer.SelectTab(explorer.Entry), wrapReveal)
	case key.Matches(msg, s.keys.Exit):
		return timer.Cmd(s.explorer.SelectTab(explorer.Exit), wrapReveal)
	case key.Matches(msg, s.keys.NextSet):
		return s.step(1)
	case key.Matches(msg, s.keys.PrevSet):
		return s.step(-1)
	}
	return nil
}

// step swaps the overlay to the neighbouring setup without closing it.
func (s *Screen) step(delta int) tea.Cmd {
	if len(s.visible) == 0 {
		return nil
	}
	next := s.cursor.Index + delta
	if next < 0 || next >= len(s.visible) {
		return nil
	}
	s.cursor.Index = next
	id, _ := s.cursorSetup()
	return s.open(id)
}

func (s *Screen) open(id string) tea.Cmd {
	reqs, ok := s.explorer.Select(id)
	if !ok {
		s.log.Debug("ignoring unknown setup", "setup", id)
		return nil
	}
	s.log.Debug("overlay open", "setup", id, "phase", s.explorer.Phase(), "changed", reqs.Changed)
	cmds := []tea.Cmd{
		timer.Cmd(reqs.Frame, wrapFrame),
		timer.Cmd(reqs.Reveal, wrapReveal),
		s.startMotion(),
	}
	if reqs.Changed {
		cmds = append(cmds, s.record(id))
	}
	return tea.Batch(cmds...)
}

func (s *Screen) record(id string) tea.Cmd {
	if s.recorder == nil {
		return nil
	}
	rec := s.recorder
	return func() tea.Msg {
		return recordedMsg{id: id, err: rec.SetupViewed(context.Background(), id)}
	}
}

func (s *Screen) motionTarget() float64 {
	if s.explorer.Visible() {
		return 1
	}
	return 0
}

func (s *Screen) startMotion() tea.Cmd {
	if s.motion.Settled(s.motionTarget()) {
		return nil
	}
	return timer.Cmd(s.motionTick.Arm(modal.MotionInterval), wrapMotion)
}

func (s *Screen) refilter() {
	s.visible = s.visible[:0]
	for i, setup := range s.catalog.Setups {
		if s.filter.Matches(setup.Name) {
			s.visible = append(s.visible, i)
		}
	}
	s.cursor = s.cursor.Resize(len(s.visible))
}

func (s *Screen) cursorSetup() (string, bool) {
	if s.cursor.Index < 0 || s.cursor.Index >= len(s.visible) {
		return "", false
	}
	return s.catalog.Setups[s.visible[s.cursor.Index]].ID, true
}

func (s *Screen) KeyHints() []layout.KeyHint {
	switch {
	case s.explorer.Visible():
		return []layout.KeyHint{
			hint(s.keys.Close),
			hint(s.keys.NextTab),
			{Key: "1-3", Description: "Jump to section"},
			hint(s.keys.NextSet),
		}
	case s.filter.Focused():
		return []layout.KeyHint{hint(s.keys.Accept), hint(s.keys.Clear)}
	}
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Navigate"},
		hint(s.keys.Open),
		hint(s.keys.Filter),
	}
}

func hint(b key.Binding) layout.KeyHint {
	h := b.Help()
	return layout.KeyHint{Key: h.Key, Description: h.Desc}
}

func wrapTeardown(t timer.Token) tea.Msg { return teardownMsg{token: t} }
func wrapFrame(t timer.Token) tea.Msg    { return frameMsg{token: t} }
func wrapReveal(t timer.Token) tea.Msg   { return revealMsg{token: t} }
func wrapMotion(t timer.Token) tea.Msg   { return motionMsg{token: t} }
