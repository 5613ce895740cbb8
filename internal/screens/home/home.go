// Package home is the main shell: the TOP SETUPS, LEARN and PRACTICE
// sections behind a top tab bar.
package home

import (
	"fmt"
	"strings"

	"charm.land/bubbles/v2/key"
	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/edgefinder/internal/catalog"
	"github.com/abhisek/edgefinder/internal/router"
	"github.com/abhisek/edgefinder/internal/screen"
	"github.com/abhisek/edgefinder/internal/screens/history"
	"github.com/abhisek/edgefinder/internal/screens/learn"
	"github.com/abhisek/edgefinder/internal/screens/placeholder"
	"github.com/abhisek/edgefinder/internal/screens/setups"
	"github.com/abhisek/edgefinder/internal/store"
	"github.com/abhisek/edgefinder/internal/tabs"
	"github.com/abhisek/edgefinder/internal/ui/layout"
)

// Section identifies a top-level section.
type Section string

const (
	SectionSetups   Section = "setups"
	SectionLearn    Section = "learn"
	SectionPractice Section = "practice"
)

var sectionLabels = map[Section]string{
	SectionSetups:   "TOP SETUPS",
	SectionLearn:    "LEARN",
	SectionPractice: "PRACTICE",
}

// HomeScreen hosts one screen per section and shows the active one.
type HomeScreen struct {
	catalog  *catalog.Catalog
	tabs     tabs.Navigator[Section]
	setups   *setups.Screen
	learn    *learn.Screen
	practice screen.Screen
	events   store.EventRepo

	next, prev, history key.Binding
	jump                []key.Binding
}

var _ screen.Screen = (*HomeScreen)(nil)

// New creates the shell around already built section screens. With a nil
// events repo the history screen is unavailable.
func New(c *catalog.Catalog, setupsScreen *setups.Screen, learnScreen *learn.Screen, events store.EventRepo) *HomeScreen {
	return &HomeScreen{
		catalog:  c,
		tabs:     tabs.New(SectionSetups, SectionLearn, SectionPractice),
		setups:   setupsScreen,
		learn:    learnScreen,
		practice: placeholder.Practice(),
		events:   events,
		next:     key.NewBinding(key.WithKeys("tab", "]"), key.WithHelp("tab", "Section")),
		prev:     key.NewBinding(key.WithKeys("shift+tab", "[")),
		history:  key.NewBinding(key.WithKeys("h"), key.WithHelp("h", "History")),
		jump: []key.Binding{
			key.NewBinding(key.WithKeys("1")),
			key.NewBinding(key.WithKeys("2")),
			key.NewBinding(key.WithKeys("3")),
		},
	}
}

func (h *HomeScreen) Init() tea.Cmd {
	return tea.Batch(h.setups.Init(), h.learn.Init(), h.practice.Init())
}

// Active returns the active section.
func (h *HomeScreen) Active() Section {
	return h.tabs.Active()
}

func (h *HomeScreen) active() screen.Screen {
	switch h.tabs.Active() {
	case SectionLearn:
		return h.learn
	case SectionPractice:
		return h.practice
	}
	return h.setups
}

// CapturesInput delegates to the active section.
func (h *HomeScreen) CapturesInput() bool {
	c, ok := h.active().(screen.InputCapturer)
	return ok && c.CapturesInput()
}

// Dispose releases every section's timers.
func (h *HomeScreen) Dispose() {
	for _, s := range []screen.Screen{h.setups, h.learn, h.practice} {
		if d, ok := s.(screen.Disposer); ok {
			d.Dispose()
		}
	}
}

func (h *HomeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	kmsg, isKey := msg.(tea.KeyPressMsg)
	if !isKey {
		// Timer and persistence results carry their own tokens; every
		// section sees them and ignores what is not its own.
		var cmds []tea.Cmd
		for _, s := range []screen.Screen{h.setups, h.learn, h.practice} {
			_, cmd := s.Update(msg)
			cmds = append(cmds, cmd)
		}
		return h, tea.Batch(cmds...)
	}

	if !h.CapturesInput() {
		switch {
		case key.Matches(kmsg, h.next):
			h.tabs.Next()
			return h, nil
		case key.Matches(kmsg, h.prev):
			h.tabs.Prev()
			return h, nil
		case key.Matches(kmsg, h.history) && h.events != nil:
			next := history.New(h.events, h.catalog)
			return h, func() tea.Msg { return router.PushScreenMsg{Screen: next} }
		}
		for i, b := range h.jump {
			if key.Matches(kmsg, b) {
				h.tabs.Select(h.tabs.IDs()[i])
				return h, nil
			}
		}
	}

	_, cmd := h.active().Update(msg)
	return h, cmd
}

func (h *HomeScreen) View(width, height int) string {
	ids := h.tabs.IDs()
	bar := make([]layout.Tab, 0, len(ids))
	for _, id := range ids {
		t := layout.Tab{Label: sectionLabels[id], Active: id == h.tabs.Active()}
		if id == SectionSetups {
			t.Badge = fmt.Sprintf("%d", len(h.catalog.Setups))
		}
		bar = append(bar, t)
	}
	tabBar := layout.RenderTabBar(bar)

	body := h.active().View(width, max(0, height-2))
	return strings.Join([]string{tabBar, "", body}, "\n")
}

func (h *HomeScreen) Title() string {
	return h.active().Title()
}

// Status is the header summary: catalog size and lesson progress.
func (h *HomeScreen) Status() string {
	return fmt.Sprintf("%d setups · %d%% learned", len(h.catalog.Setups), h.learn.Percentage())
}

func (h *HomeScreen) KeyHints() []layout.KeyHint {
	var hints []layout.KeyHint
	if p, ok := h.active().(screen.KeyHintProvider); ok {
		hints = p.KeyHints()
	}
	if !h.CapturesInput() {
		hints = append(hints, layout.KeyHint{Key: "tab", Description: "Section"})
		if h.events != nil {
			hints = append(hints, layout.KeyHint{Key: "h", Description: "History"})
		}
	}
	return hints
}
