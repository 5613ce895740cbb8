package learn

import (
	"context"
	"testing"

	tea "charm.land/bubbletea/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/edgefinder/internal/catalog"
)

type toggle struct {
	revision  int64
	id        string
	done      bool
	completed []string
}

type fakeRecorder struct {
	toggles []toggle
}

func (f *fakeRecorder) LessonToggled(_ context.Context, revision int64, id string, done bool, completed []string) error {
	f.toggles = append(f.toggles, toggle{revision: revision, id: id, done: done, completed: completed})
	return nil
}

func newScreen(t *testing.T, completed []string) (*Screen, *fakeRecorder) {
	t.Helper()
	c, err := catalog.Default()
	require.NoError(t, err)
	rec := &fakeRecorder{}
	return New(Options{Lessons: c.Lessons, Completed: completed, Recorder: rec}), rec
}

func press(r rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: r, Text: string(r)}
}

func run(s *Screen, msg tea.Msg) {
	_, cmd := s.Update(msg)
	if cmd != nil {
		s.Update(cmd())
	}
}

func TestCompletionPersistsThroughRecorder(t *testing.T) {
	s, rec := newScreen(t, nil)

	run(s, press('x'))
	require.Len(t, rec.toggles, 1)
	assert.Equal(t, "vwap-basics", rec.toggles[0].id)
	assert.True(t, rec.toggles[0].done)
	assert.Equal(t, []string{"vwap-basics"}, rec.toggles[0].completed)
	assert.Equal(t, 17, s.Percentage())

	run(s, press('x'))
	require.Len(t, rec.toggles, 2)
	assert.False(t, rec.toggles[1].done)
	assert.Empty(t, rec.toggles[1].completed)
	assert.Greater(t, rec.toggles[1].revision, rec.toggles[0].revision)
	assert.Equal(t, 0, s.Percentage())
}

func TestThreeCompletedThenUndo(t *testing.T) {
	s, _ := newScreen(t, nil)

	for i := 0; i < 3; i++ {
		run(s, press('x'))
		run(s, press('j'))
	}
	assert.Equal(t, 50, s.Percentage())
	assert.Contains(t, s.View(100, 60), "3 of 6 lessons completed")

	run(s, press('k'))
	run(s, press('x'))
	assert.Equal(t, 33, s.Percentage())
}

func TestRestoreCompleted(t *testing.T) {
	s, _ := newScreen(t, []string{"gaps", "trend-days"})
	assert.Equal(t, 33, s.Percentage())
	assert.Equal(t, []string{"gaps", "trend-days"}, s.Completed())
}

func TestRestoreDropsUnknownLessons(t *testing.T) {
	lessons := []catalog.Lesson{
		{ID: "a", Title: "Alpha", Duration: "5 min read", Content: []string{"x"}},
		{ID: "b", Title: "Beta", Duration: "5 min read", Content: []string{"y"}},
	}
	s := New(Options{Lessons: lessons, Completed: []string{"a", "b", "gone-1", "gone-2"}})

	assert.Equal(t, 100, s.Percentage())
	assert.Equal(t, []string{"a", "b"}, s.Completed())
	assert.Contains(t, s.View(100, 40), "2 of 2 lessons completed")
}

func TestExpansionIsSingleAndIndependent(t *testing.T) {
	s, _ := newScreen(t, nil)

	run(s, tea.KeyPressMsg{Code: tea.KeyEnter})
	id, ok := s.Expanded()
	require.True(t, ok)
	assert.Equal(t, "vwap-basics", id)

	run(s, press('x'))
	id, ok = s.Expanded()
	assert.True(t, ok, "completion leaves expansion alone")
	assert.Equal(t, "vwap-basics", id)

	run(s, press('j'))
	run(s, tea.KeyPressMsg{Code: tea.KeyEnter})
	id, _ = s.Expanded()
	assert.Equal(t, "opening-range", id, "expanding another collapses the first")

	run(s, tea.KeyPressMsg{Code: tea.KeyEnter})
	_, ok = s.Expanded()
	assert.False(t, ok)
	assert.Equal(t, 1, len(s.Completed()))
}

func TestExpandedViewShowsTips(t *testing.T) {
	s, _ := newScreen(t, nil)
	run(s, tea.KeyPressMsg{Code: tea.KeyEnter})

	view := s.View(100, 80)
	assert.Contains(t, view, "5 min read")
	assert.Contains(t, view, "TIPS")
	assert.Contains(t, view, "MARK AS COMPLETE")
}

func TestLessonMarkdown(t *testing.T) {
	md := lessonMarkdown(catalog.Lesson{Content: []string{"one", "two"}, Tips: []string{"tip"}})
	assert.Equal(t, "one\n\ntwo\n\n### PRO TIPS\n\n- tip\n", md)
}
