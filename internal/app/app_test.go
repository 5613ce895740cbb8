package app

import (
	"testing"

	tea "charm.land/bubbletea/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/edgefinder/internal/catalog"
	"github.com/abhisek/edgefinder/internal/config"
	"github.com/abhisek/edgefinder/internal/router"
	"github.com/abhisek/edgefinder/internal/screens/home"
)

func newModel(t *testing.T) AppModel {
	t.Helper()
	c, err := catalog.Default()
	require.NoError(t, err)
	cfg := config.DefaultConfig()
	cfg.Motion = config.MotionOff
	m := newAppModel(Options{Catalog: c, Config: cfg, Completed: []string{"gaps"}})

	next, _ := m.Update(tea.WindowSizeMsg{Width: 120, Height: 40})
	return next.(AppModel)
}

func update(m AppModel, msg tea.Msg) (AppModel, tea.Cmd) {
	next, cmd := m.Update(msg)
	return next.(AppModel), cmd
}

// enterHome dismisses the splash.
func enterHome(t *testing.T, m AppModel) AppModel {
	t.Helper()
	m, cmd := update(m, tea.KeyPressMsg{Code: ' ', Text: " "})
	require.NotNil(t, cmd)
	msg := cmd()
	require.IsType(t, router.ReplaceScreenMsg{}, msg)
	m, _ = update(m, msg)
	require.IsType(t, &home.HomeScreen{}, m.router.Active())
	return m
}

func TestSplashThenHome(t *testing.T) {
	m := newModel(t)
	m = enterHome(t, m)

	content := m.render()
	assert.Contains(t, content, "EDGE")
	assert.Contains(t, content, "learned")
}

func TestQuitKeys(t *testing.T) {
	m := enterHome(t, newModel(t))

	_, cmd := update(m, tea.KeyPressMsg{Code: 'q', Text: "q"})
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
}

func TestOverlayCapturesQuitAndEsc(t *testing.T) {
	m := enterHome(t, newModel(t))
	m, _ = update(m, tea.KeyPressMsg{Code: tea.KeyEnter})
	require.True(t, m.capturing())

	m, _ = update(m, tea.KeyPressMsg{Code: 'q', Text: "q"})
	assert.False(t, m.capturing(), "q closes the overlay instead of quitting")
}

func TestTooSmall(t *testing.T) {
	m := newModel(t)
	m, _ = update(m, tea.WindowSizeMsg{Width: 40, Height: 10})
	assert.Contains(t, m.render(), "Terminal too small")
}
