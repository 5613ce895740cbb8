// Package history lists past study sessions and what was studied in each.
package history

import (
	"context"
	"fmt"
	"image/color"
	"strings"

	"charm.land/bubbles/v2/key"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/edgefinder/internal/catalog"
	"github.com/abhisek/edgefinder/internal/screen"
	"github.com/abhisek/edgefinder/internal/store"
	"github.com/abhisek/edgefinder/internal/ui/components"
	"github.com/abhisek/edgefinder/internal/ui/layout"
	"github.com/abhisek/edgefinder/internal/ui/theme"
)

// loadLimit caps how many events the screen reads.
const loadLimit = 500

type historyLoadedMsg struct {
	Events []store.StudyEventRecord
	Err    error
}

// session groups the events of one study session, oldest first.
type session struct {
	ID     string
	Events []store.StudyEventRecord
}

func (s session) count(kind string) int {
	n := 0
	for _, e := range s.Events {
		if e.Kind == kind {
			n++
		}
	}
	return n
}

// HistoryScreen displays past sessions, expandable to their events.
type HistoryScreen struct {
	eventRepo store.EventRepo
	catalog   *catalog.Catalog
	sessions  []session
	cursor    components.Cursor
	expanded  map[string]bool
	loaded    bool
	errMsg    string
	toggle    key.Binding
}

var _ screen.Screen = (*HistoryScreen)(nil)
var _ screen.KeyHintProvider = (*HistoryScreen)(nil)

// New creates a new HistoryScreen.
func New(eventRepo store.EventRepo, c *catalog.Catalog) *HistoryScreen {
	return &HistoryScreen{
		eventRepo: eventRepo,
		catalog:   c,
		cursor:    components.NewCursor(0),
		expanded:  make(map[string]bool),
		toggle:    key.NewBinding(key.WithKeys("enter", "space")),
	}
}

func (s *HistoryScreen) Init() tea.Cmd {
	repo := s.eventRepo
	return func() tea.Msg {
		events, err := repo.QueryStudyEvents(context.Background(), store.QueryOpts{Limit: loadLimit})
		return historyLoadedMsg{Events: events, Err: err}
	}
}

func (s *HistoryScreen) Title() string {
	return "History"
}

func (s *HistoryScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Enter", Description: "Details"},
		{Key: "↑↓", Description: "Navigate"},
		{Key: "Esc", Description: "Back"},
	}
}

// groupSessions turns newest-first events into sessions, newest session
// first, each holding its events oldest first.
func groupSessions(events []store.StudyEventRecord) []session {
	var out []session
	index := make(map[string]int)
	for _, e := range events {
		i, ok := index[e.SessionID]
		if !ok {
			i = len(out)
			index[e.SessionID] = i
			out = append(out, session{ID: e.SessionID})
		}
		out[i].Events = append(out[i].Events, e)
	}
	for _, sess := range out {
		for l, r := 0, len(sess.Events)-1; l < r; l, r = l+1, r-1 {
			sess.Events[l], sess.Events[r] = sess.Events[r], sess.Events[l]
		}
	}
	return out
}

func (s *HistoryScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case historyLoadedMsg:
		if msg.Err != nil {
			s.errMsg = msg.Err.Error()
		} else {
			s.sessions = groupSessions(msg.Events)
			s.cursor = s.cursor.Resize(len(s.sessions))
		}
		s.loaded = true
		return s, nil

	case tea.KeyPressMsg:
		if key.Matches(msg, s.toggle) && s.cursor.Index < len(s.sessions) {
			id := s.sessions[s.cursor.Index].ID
			s.expanded[id] = !s.expanded[id]
			return s, nil
		}
		s.cursor, _ = s.cursor.Update(msg)
	}
	return s, nil
}

func (s *HistoryScreen) View(width, height int) string {
	if s.errMsg != "" {
		return lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).Foreground(theme.Red).
			Render(fmt.Sprintf("\n\nError: %s", s.errMsg))
	}
	if !s.loaded {
		return lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).Foreground(theme.TextDim).
			Render("\n\n  Loading history...")
	}
	if len(s.sessions) == 0 {
		return lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).Foreground(theme.TextDim).Italic(true).
			Render("\n\n  No sessions yet. Open a setup or finish a lesson!")
	}

	var b strings.Builder
	b.WriteString("\n")

	for i, sess := range s.sessions {
		start := sess.Events[0].Timestamp.Local()
		line := fmt.Sprintf("%s  %s  %d setups viewed  %d lessons completed",
			start.Format("Jan 02, 2006"), start.Format("15:04"),
			sess.count(store.KindSetupViewed), sess.count(store.KindLessonCompleted))

		prefix := "  "
		style := lipgloss.NewStyle().Foreground(theme.Text)
		if i == s.cursor.Index {
			prefix = "> "
			style = style.Foreground(theme.Cyan).Bold(true)
		}
		b.WriteString("  " + style.Render(prefix+line) + "\n")

		if !s.expanded[sess.ID] {
			continue
		}
		for _, e := range sess.Events {
			if e.Kind == store.KindSessionStarted {
				continue
			}
			detail := fmt.Sprintf("      %s  %s", e.Timestamp.Local().Format("15:04:05"), s.describe(e))
			b.WriteString(lipgloss.NewStyle().Foreground(kindColor(e.Kind)).Render(detail) + "\n")
		}
	}

	return b.String()
}

func (s *HistoryScreen) describe(e store.StudyEventRecord) string {
	switch e.Kind {
	case store.KindSetupViewed:
		if setup, ok := s.catalog.Setup(e.SubjectID); ok {
			return "Viewed " + setup.Name
		}
	case store.KindLessonCompleted, store.KindLessonUncompleted:
		verb := "Completed "
		if e.Kind == store.KindLessonUncompleted {
			verb = "Reopened "
		}
		if lesson, ok := s.catalog.Lesson(e.SubjectID); ok {
			return verb + lesson.Title
		}
	}
	return e.Kind + " " + e.SubjectID
}

func kindColor(kind string) color.Color {
	switch kind {
	case store.KindLessonCompleted:
		return theme.Green
	case store.KindLessonUncompleted:
		return theme.Amber
	case store.KindSetupViewed:
		return theme.Body
	default:
		return theme.TextDim
	}
}
