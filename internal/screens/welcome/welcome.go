// Package welcome is the splash screen: a price line draws itself, then
// the banner appears and any key moves on to the shell.
package welcome

import (
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/edgefinder/internal/router"
	"github.com/abhisek/edgefinder/internal/screen"
	"github.com/abhisek/edgefinder/internal/ui/theme"
)

const (
	tickInterval = 100 * time.Millisecond
	lineEnd      = 800 * time.Millisecond
	bannerAt     = 1200 * time.Millisecond
	totalDur     = 2000 * time.Millisecond
)

// sparkline is the splash price line, revealed left to right.
const sparkline = "▁▂▂▃▂▃▄▃▄▅▅▄▅▆▅▆▇▆▇█"

type tickMsg time.Time

// WelcomeScreen shows the splash until a key is pressed.
type WelcomeScreen struct {
	homeFactory  func() screen.Screen
	elapsed      time.Duration
	tickCount    int
	transitioned bool
}

var _ screen.Screen = (*WelcomeScreen)(nil)

// New creates a WelcomeScreen that will transition to the screen produced by homeFactory.
func New(homeFactory func() screen.Screen) *WelcomeScreen {
	return &WelcomeScreen{
		homeFactory: homeFactory,
	}
}

// NewStatic returns a splash that starts fully drawn, for reduced motion.
func NewStatic(homeFactory func() screen.Screen) *WelcomeScreen {
	w := New(homeFactory)
	w.elapsed = totalDur
	return w
}

func (w *WelcomeScreen) Title() string {
	return ""
}

func (w *WelcomeScreen) Init() tea.Cmd {
	return tick()
}

func tick() tea.Cmd {
	return tea.Tick(tickInterval, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

func (w *WelcomeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg.(type) {
	case tickMsg:
		if w.transitioned {
			return w, nil
		}
		if w.elapsed < totalDur {
			w.elapsed += tickInterval
		}
		w.tickCount++
		return w, tick()

	case tea.KeyPressMsg:
		return w, w.transition()
	}

	return w, nil
}

func (w *WelcomeScreen) transition() tea.Cmd {
	if w.transitioned {
		return nil
	}
	w.transitioned = true
	next := w.homeFactory()
	return func() tea.Msg {
		return router.ReplaceScreenMsg{Screen: next}
	}
}

func (w *WelcomeScreen) View(width, height int) string {
	var sections []string

	shown := len([]rune(sparkline))
	if w.elapsed < lineEnd {
		shown = shown * int(w.elapsed) / int(lineEnd)
	}
	line := string([]rune(sparkline)[:shown])
	sections = append(sections, lipgloss.NewStyle().Foreground(theme.Cyan).Render(line))

	if w.elapsed >= bannerAt {
		sections = append(sections, "", RenderBanner(width), "")

		tagline := lipgloss.NewStyle().
			Foreground(theme.TextDim).
			Render("High-probability SPX intraday setups, decoded.")
		sections = append(sections, tagline)

		dot := "●"
		if w.tickCount%10 >= 5 {
			dot = "○"
		}
		live := lipgloss.NewStyle().Foreground(theme.Green).Render(dot) + " " +
			theme.Hint.Render("press any key to continue")
		sections = append(sections, "", live)
	}

	content := lipgloss.JoinVertical(lipgloss.Center, strings.Split(strings.Join(sections, "\n"), "\n")...)
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, content)
}
