// Package app wires the screens into the root Bubble Tea model.
package app

import (
	"fmt"
	"io"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	clog "github.com/charmbracelet/log"

	"github.com/abhisek/edgefinder/internal/catalog"
	"github.com/abhisek/edgefinder/internal/config"
	"github.com/abhisek/edgefinder/internal/router"
	"github.com/abhisek/edgefinder/internal/screen"
	"github.com/abhisek/edgefinder/internal/screens/home"
	"github.com/abhisek/edgefinder/internal/screens/learn"
	"github.com/abhisek/edgefinder/internal/screens/setups"
	"github.com/abhisek/edgefinder/internal/screens/welcome"
	"github.com/abhisek/edgefinder/internal/store"
	"github.com/abhisek/edgefinder/internal/ui/layout"
)

// Options holds the dependencies of the TUI.
type Options struct {
	Catalog *catalog.Catalog
	Config  config.Config
	Logger  *clog.Logger

	// Journal persists study events and Events reads them back. Nil runs
	// without persistence.
	Journal *store.Journal
	Events  store.EventRepo
	// Completed seeds the lesson progress.
	Completed []string
}

// AppModel is the root Bubble Tea model.
type AppModel struct {
	router *router.Router
	log    *clog.Logger
	width  int
	height int
}

// newAppModel creates the model with the splash screen on top.
func newAppModel(opts Options) AppModel {
	logger := opts.Logger
	if logger == nil {
		logger = clog.New(io.Discard)
	}

	homeFactory := func() screen.Screen {
		setupOpts := setups.Options{Catalog: opts.Catalog, Logger: logger, Motion: opts.Config.Motion}
		learnOpts := learn.Options{Lessons: opts.Catalog.Lessons, Completed: opts.Completed, Logger: logger}
		if opts.Journal != nil {
			setupOpts.Recorder = opts.Journal
			learnOpts.Recorder = opts.Journal
		}
		return home.New(opts.Catalog, setups.New(setupOpts), learn.New(learnOpts), opts.Events)
	}

	var splash screen.Screen
	if opts.Config.Motion == config.MotionFull {
		splash = welcome.New(homeFactory)
	} else {
		splash = welcome.NewStatic(homeFactory)
	}
	return AppModel{
		router: router.New(splash),
		log:    logger,
	}
}

func (m AppModel) Init() tea.Cmd {
	return m.router.Active().Init()
}

func (m AppModel) capturing() bool {
	c, ok := m.router.Active().(screen.InputCapturer)
	return ok && c.CapturesInput()
}

func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyPressMsg:
		switch msg.String() {
		case "ctrl+c":
			return m, m.quit()
		case "esc":
			if m.capturing() {
				break
			}
			if m.router.Depth() > 1 {
				return m, func() tea.Msg { return router.PopScreenMsg{} }
			}
		case "q":
			if !m.capturing() {
				return m, m.quit()
			}
		}
	}

	cmd := m.router.Update(msg)
	return m, cmd
}

func (m AppModel) quit() tea.Cmd {
	m.router.DisposeAll()
	m.log.Debug("quit", "depth", m.router.Depth())
	return tea.Quit
}

func (m AppModel) View() tea.View {
	v := tea.NewView(m.render())
	v.AltScreen = true
	return v
}

func (m AppModel) render() string {
	if m.width == 0 || m.height == 0 {
		return ""
	}
	if layout.IsTooSmall(m.width, m.height) {
		return layout.RenderMinSizeMessage(m.width, m.height)
	}

	active := m.router.Active()
	title, status := active.Title(), "LIVE"
	if p, ok := active.(screen.StatusProvider); ok {
		status = p.Status()
	}
	header := layout.RenderHeader(title, status, m.width)

	var footerHints []layout.KeyHint
	if p, ok := active.(screen.KeyHintProvider); ok {
		footerHints = p.KeyHints()
	}
	if !m.capturing() {
		footerHints = append(footerHints, layout.KeyHint{Key: "q", Description: "Quit"})
	}
	footer := layout.RenderFooter(footerHints, m.width)

	contentHeight := max(0, m.height-lipgloss.Height(header)-lipgloss.Height(footer))
	content := m.router.View(m.width, contentHeight)
	return layout.RenderFrame(header, content, footer, m.width, m.height)
}

// Run starts the Bubble Tea program.
func Run(opts Options) error {
	if opts.Catalog == nil {
		return fmt.Errorf("app: catalog is required")
	}
	p := tea.NewProgram(newAppModel(opts))
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("run program: %w", err)
	}
	return nil
}
