// Package learn is the lesson list: expandable readings with completion
// tracking that survives restarts through the journal.
package learn

import (
	"context"
	"fmt"
	"io"
	"strings"

	"charm.land/bubbles/v2/key"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	"github.com/charmbracelet/glamour"
	clog "github.com/charmbracelet/log"

	"github.com/abhisek/edgefinder/internal/catalog"
	"github.com/abhisek/edgefinder/internal/progress"
	"github.com/abhisek/edgefinder/internal/screen"
	"github.com/abhisek/edgefinder/internal/ui/components"
	"github.com/abhisek/edgefinder/internal/ui/layout"
	"github.com/abhisek/edgefinder/internal/ui/theme"
)

// wrapWidth is the markdown wrap width of expanded lessons.
const wrapWidth = 76

// Recorder persists completion changes. It may be nil.
type Recorder interface {
	LessonToggled(ctx context.Context, revision int64, lessonID string, done bool, completed []string) error
}

// Options configures the screen.
type Options struct {
	Lessons   []catalog.Lesson
	Completed []string // restored from the last snapshot
	Recorder  Recorder
	Logger    *clog.Logger
}

type keyMap struct {
	Expand   key.Binding
	Complete key.Binding
}

type savedMsg struct {
	id  string
	err error
}

// Screen lists lessons with one optionally expanded.
type Screen struct {
	lessons   []catalog.Lesson
	completed progress.Set
	expansion progress.Expansion
	cursor    components.Cursor
	keys      keyMap
	recorder  Recorder
	revision  int64 // bumped on every toggle
	log       *clog.Logger

	markdown *glamour.TermRenderer
	rendered map[string]string
}

var _ screen.Screen = (*Screen)(nil)

// New creates the learn screen.
func New(opts Options) *Screen {
	logger := opts.Logger
	if logger == nil {
		logger = clog.New(io.Discard)
	}
	renderer, err := glamour.NewTermRenderer(
		glamour.WithStandardStyle("dark"),
		glamour.WithWordWrap(wrapWidth),
	)
	if err != nil {
		logger.Warn("markdown renderer unavailable", "err", err)
		renderer = nil
	}
	restored := knownLessons(opts.Lessons, opts.Completed)
	if dropped := len(opts.Completed) - len(restored); dropped > 0 {
		logger.Warn("ignoring progress for lessons not in the catalog", "count", dropped)
	}
	return &Screen{
		lessons:   opts.Lessons,
		completed: progress.Restore(restored),
		cursor:    components.NewCursor(len(opts.Lessons)),
		keys: keyMap{
			Expand:   key.NewBinding(key.WithKeys("enter", "space"), key.WithHelp("enter", "Expand")),
			Complete: key.NewBinding(key.WithKeys("x", "c"), key.WithHelp("x", "Mark complete")),
		},
		recorder: opts.Recorder,
		log:      logger.WithPrefix("learn"),
		markdown: renderer,
		rendered: make(map[string]string),
	}
}

// knownLessons keeps the ids that name a lesson in lessons. Snapshots can
// outlive a lesson that was renamed or removed.
func knownLessons(lessons []catalog.Lesson, ids []string) []string {
	known := make(map[string]bool, len(lessons))
	for _, l := range lessons {
		known[l.ID] = true
	}
	out := make([]string, 0, len(ids))
	for _, id := range ids {
		if known[id] {
			out = append(out, id)
		}
	}
	return out
}

func (s *Screen) Init() tea.Cmd {
	return nil
}

func (s *Screen) Title() string {
	return "Learn"
}

// Percentage is the share of completed lessons, rounded.
func (s *Screen) Percentage() int {
	return s.completed.Percentage(len(s.lessons))
}

// Completed returns the completed lesson ids, sorted.
func (s *Screen) Completed() []string {
	return s.completed.IDs()
}

// Expanded returns the expanded lesson id, if any.
func (s *Screen) Expanded() (string, bool) {
	return s.expansion.Expanded()
}

func (s *Screen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case savedMsg:
		if msg.err != nil {
			s.log.Warn("save lesson progress", "lesson", msg.id, "err", msg.err)
		}
		return s, nil

	case tea.KeyPressMsg:
		switch {
		case key.Matches(msg, s.keys.Expand):
			if id, ok := s.current(); ok {
				s.expansion = s.expansion.Toggle(id)
			}
			return s, nil
		case key.Matches(msg, s.keys.Complete):
			id, ok := s.current()
			if !ok {
				return s, nil
			}
			return s, s.toggle(id)
		}
		s.cursor, _ = s.cursor.Update(msg)
	}
	return s, nil
}

func (s *Screen) toggle(id string) tea.Cmd {
	s.completed = s.completed.Toggle(id)
	done := s.completed.Has(id)
	s.log.Debug("lesson toggled", "lesson", id, "done", done, "percent", s.Percentage())
	if s.recorder == nil {
		return nil
	}
	s.revision++
	rec, rev, ids := s.recorder, s.revision, s.completed.IDs()
	return func() tea.Msg {
		return savedMsg{id: id, err: rec.LessonToggled(context.Background(), rev, id, done, ids)}
	}
}

func (s *Screen) current() (string, bool) {
	if s.cursor.Index < 0 || s.cursor.Index >= len(s.lessons) {
		return "", false
	}
	return s.lessons[s.cursor.Index].ID, true
}

func (s *Screen) KeyHints() []layout.KeyHint {
	expand := s.keys.Expand.Help()
	complete := s.keys.Complete.Help()
	if id, ok := s.current(); ok && s.expansion.Is(id) {
		expand.Desc = "Collapse"
	}
	if id, ok := s.current(); ok && s.completed.Has(id) {
		complete.Desc = "Mark incomplete"
	}
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Navigate"},
		{Key: expand.Key, Description: expand.Desc},
		{Key: complete.Key, Description: complete.Desc},
	}
}

func (s *Screen) View(width, height int) string {
	inner := min(width-4, 100)

	var head []string
	head = append(head,
		"  "+lipgloss.NewStyle().Foreground(theme.Text).Render("Learn the ")+
			lipgloss.NewStyle().Foreground(theme.Amber).Bold(true).Render("Fundamentals"),
		"  "+theme.Subtitle.Render("Master the concepts behind each setup. Understanding the \"why\" makes spotting opportunities intuitive."),
		"",
		s.progressBox(inner),
		"",
	)

	var body []string
	focus := 0
	for i, lesson := range s.lessons {
		if i == s.cursor.Index {
			focus = len(body)
		}
		body = append(body, strings.Split(s.lessonBlock(lesson, inner, i == s.cursor.Index), "\n")...)
	}

	headLines := strings.Split(strings.Join(head, "\n"), "\n")
	rows := max(1, height-len(headLines))
	// Scroll so the focused lesson sits in the top third.
	start := 0
	if focus > rows*2/3 {
		start = min(focus-rows/3, max(0, len(body)-rows))
	}
	end := min(len(body), start+rows)
	return strings.Join(append(headLines, body[start:end]...), "\n")
}

func (s *Screen) progressBox(width int) string {
	inner := width - 4
	pct := s.Percentage()
	top := theme.Subtitle.Render("YOUR PROGRESS")
	pctText := lipgloss.NewStyle().Foreground(theme.Cyan).Bold(true).Render(fmt.Sprintf("%d%%", pct))
	gap := max(1, inner-lipgloss.Width(top)-lipgloss.Width(pctText))
	bar := components.NewProgressBar("", pct, false, inner).View()
	count := theme.Label.Render(fmt.Sprintf("%d of %d lessons completed", s.completed.Len(), len(s.lessons)))

	return lipgloss.NewStyle().PaddingLeft(2).Render(
		theme.Card.Width(width).Render(top + strings.Repeat(" ", gap) + pctText + "\n" + bar + "\n" + count))
}

func (s *Screen) lessonBlock(lesson catalog.Lesson, width int, focused bool) string {
	expanded := s.expansion.Is(lesson.ID)
	inner := width - 4

	chevron := "▸"
	if expanded {
		chevron = "▾"
	}
	right := theme.Subtitle.Render(chevron)
	if s.completed.Has(lesson.ID) {
		right = lipgloss.NewStyle().Foreground(theme.Green).Render("✓ ") + right
	}
	titleStyle := theme.Title
	if focused {
		titleStyle = theme.Accent
	}
	left := lesson.Icon + "  " + titleStyle.Render(lesson.Title)
	gap := max(1, inner-lipgloss.Width(left)-lipgloss.Width(right))
	header := left + strings.Repeat(" ", gap) + right + "\n" +
		strings.Repeat(" ", lipgloss.Width(lesson.Icon)+2) + theme.Subtitle.Render(lesson.Duration+" read")

	content := header
	if expanded {
		content += "\n\n" + s.renderLesson(lesson) + "\n" + s.completeButton(lesson.ID, inner)
	}

	style := theme.Card
	switch {
	case focused:
		style = theme.CardSelected
	case expanded:
		style = style.BorderForeground(theme.Hover)
	}
	return lipgloss.NewStyle().PaddingLeft(2).Render(style.Width(width).Render(content))
}

func (s *Screen) completeButton(id string, width int) string {
	label, c := "MARK AS COMPLETE", theme.Cyan
	if s.completed.Has(id) {
		label, c = "✓ COMPLETED", theme.Green
	}
	return lipgloss.NewStyle().
		Foreground(c).
		Border(lipgloss.RoundedBorder()).
		BorderForeground(c).
		Width(width).
		Align(lipgloss.Center).
		Render(label)
}

// renderLesson renders paragraphs and tips as markdown, cached per lesson.
func (s *Screen) renderLesson(lesson catalog.Lesson) string {
	if out, ok := s.rendered[lesson.ID]; ok {
		return out
	}
	md := lessonMarkdown(lesson)
	out := md
	if s.markdown != nil {
		if r, err := s.markdown.Render(md); err == nil {
			out = strings.Trim(r, "\n")
		} else {
			s.log.Warn("render lesson", "lesson", lesson.ID, "err", err)
		}
	}
	s.rendered[lesson.ID] = out
	return out
}

func lessonMarkdown(lesson catalog.Lesson) string {
	var b strings.Builder
	for _, p := range lesson.Content {
		b.WriteString(p)
		b.WriteString("\n\n")
	}
	if len(lesson.Tips) > 0 {
		b.WriteString("### PRO TIPS\n\n")
		for _, tip := range lesson.Tips {
			b.WriteString("- ")
			b.WriteString(tip)
			b.WriteString("\n")
		}
	}
	return b.String()
}
