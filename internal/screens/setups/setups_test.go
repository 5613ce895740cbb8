package setups

import (
	"context"
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"
	"github.com/charmbracelet/x/ansi"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/edgefinder/internal/catalog"
	"github.com/abhisek/edgefinder/internal/explorer"
	"github.com/abhisek/edgefinder/internal/modal"
)

type fakeRecorder struct {
	viewed []string
}

func (f *fakeRecorder) SetupViewed(_ context.Context, id string) error {
	f.viewed = append(f.viewed, id)
	return nil
}

func newScreen(t *testing.T) (*Screen, *fakeRecorder) {
	t.Helper()
	c, err := catalog.Default()
	require.NoError(t, err)
	rec := &fakeRecorder{}
	return New(Options{Catalog: c, Recorder: rec, Motion: "off"}), rec
}

func keyCode(code rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: code}
}

func keyText(r rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: r, Text: string(r)}
}

// drain runs cmd and every command it produces, feeding the messages
// back into s. With motion off nothing re-arms forever.
func drain(t *testing.T, s *Screen, cmd tea.Cmd) {
	t.Helper()
	queue := []tea.Cmd{cmd}
	for steps := 0; len(queue) > 0; steps++ {
		require.Less(t, steps, 100, "commands did not settle")
		next := queue[0]
		queue = queue[1:]
		if next == nil {
			continue
		}
		msg := next()
		if batch, ok := msg.(tea.BatchMsg); ok {
			queue = append(queue, batch...)
			continue
		}
		_, follow := s.Update(msg)
		queue = append(queue, follow)
	}
}

func send(t *testing.T, s *Screen, msg tea.Msg) {
	t.Helper()
	_, cmd := s.Update(msg)
	drain(t, s, cmd)
}

func TestOpenShowsDetailAndRecordsView(t *testing.T) {
	s, rec := newScreen(t)

	send(t, s, keyCode(tea.KeyEnter))

	setup, ok := s.Explorer().Current()
	require.True(t, ok)
	assert.Equal(t, s.catalog.Setups[0].ID, setup.ID)
	assert.Equal(t, modal.Open, s.Explorer().Phase())
	assert.True(t, s.CapturesInput())
	assert.Equal(t, []string{setup.ID}, rec.viewed)

	view := ansi.Strip(s.View(100, 40))
	assert.Contains(t, view, setup.Name)
	assert.Contains(t, view, "How to Spot")
	assert.Contains(t, view, "RISK:REWARD")
}

func TestSectionKeysSwitchRules(t *testing.T) {
	s, _ := newScreen(t)
	send(t, s, keyCode(tea.KeyEnter))
	setup, _ := s.Explorer().Current()

	assert.Equal(t, setup.HowToSpot, s.Explorer().VisibleRules())

	send(t, s, keyText('2'))
	assert.Equal(t, explorer.Entry, s.Explorer().Section())
	assert.Equal(t, setup.EntryRules, s.Explorer().VisibleRules())

	send(t, s, keyCode(tea.KeyTab))
	assert.Equal(t, explorer.Exit, s.Explorer().Section())

	send(t, s, keyCode(tea.KeyTab))
	assert.Equal(t, explorer.Spot, s.Explorer().Section(), "tabs wrap")
}

func TestNextSetupSwapsInPlace(t *testing.T) {
	s, rec := newScreen(t)
	send(t, s, keyCode(tea.KeyEnter))
	send(t, s, keyText('2'))

	send(t, s, keyCode(tea.KeyDown))

	setup, ok := s.Explorer().Current()
	require.True(t, ok)
	assert.Equal(t, s.catalog.Setups[1].ID, setup.ID)
	assert.Equal(t, modal.Open, s.Explorer().Phase(), "no close in between")
	assert.Equal(t, explorer.Spot, s.Explorer().Section(), "new content starts on the first section")
	assert.Len(t, rec.viewed, 2)
}

func TestCloseTearsDownAfterDelay(t *testing.T) {
	s, _ := newScreen(t)
	send(t, s, keyCode(tea.KeyEnter))

	_, cmd := s.Update(keyCode(tea.KeyEscape))
	assert.Equal(t, modal.Closing, s.Explorer().Phase())
	assert.False(t, s.CapturesInput())

	// The list ignores scrolling during the exit transition.
	s.Update(keyText('j'))
	assert.Equal(t, 0, s.cursor.Index)

	drain(t, s, cmd)
	assert.Equal(t, modal.Closed, s.Explorer().Phase())
	_, ok := s.Explorer().Current()
	assert.False(t, ok)

	s.Update(keyText('j'))
	assert.Equal(t, 1, s.cursor.Index)
}

func TestReopenDuringTeardownKeepsOverlay(t *testing.T) {
	s, rec := newScreen(t)
	send(t, s, keyCode(tea.KeyEnter))

	_, closeCmd := s.Update(keyCode(tea.KeyEscape))
	send(t, s, keyCode(tea.KeyEnter))
	require.Equal(t, modal.Open, s.Explorer().Phase())

	// The superseded teardown fires late and is ignored.
	drain(t, s, closeCmd)
	assert.Equal(t, modal.Open, s.Explorer().Phase())
	setup, ok := s.Explorer().Current()
	assert.True(t, ok)
	assert.Equal(t, []string{setup.ID}, rec.viewed, "reopening the shown setup is not a new view")
}

func TestFilterNarrowsList(t *testing.T) {
	s, _ := newScreen(t)

	// Cursor blink commands re-arm forever, so filter keys are not drained.
	s.Update(keyText('/'))
	require.True(t, s.filter.Focused())
	assert.True(t, s.CapturesInput())
	for _, r := range "gap" {
		s.Update(keyText(r))
	}
	require.NotEmpty(t, s.visible)
	for _, i := range s.visible {
		assert.Contains(t, strings.ToLower(s.catalog.Setups[i].Name), "gap")
	}

	s.Update(keyCode(tea.KeyEscape))
	assert.False(t, s.filter.Focused())
	assert.Len(t, s.visible, len(s.catalog.Setups))
}

func TestDisposeDropsOverlay(t *testing.T) {
	s, _ := newScreen(t)
	send(t, s, keyCode(tea.KeyEnter))

	_, cmd := s.Update(keyCode(tea.KeyEscape))
	s.Dispose()
	drain(t, s, cmd)

	assert.Equal(t, modal.Closed, s.Explorer().Phase())
	assert.False(t, s.motionTick.Pending())
}
