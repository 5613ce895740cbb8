// Package placeholder renders sections that are announced but not built
// yet, such as Practice.
package placeholder

import (
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/edgefinder/internal/screen"
	"github.com/abhisek/edgefinder/internal/ui/theme"
)

// Screen is a "coming soon" panel.
type Screen struct {
	title   string
	heading string
	body    string
}

var _ screen.Screen = (*Screen)(nil)

// New creates a placeholder with a heading and a short description.
func New(title, heading, body string) *Screen {
	return &Screen{title: title, heading: heading, body: body}
}

// Practice returns the practice mode panel.
func Practice() *Screen {
	return New("Practice",
		"Practice Mode Coming Soon",
		"Test your pattern recognition skills with real historical SPX charts. Identify setups in real-time simulation.")
}

func (p *Screen) Init() tea.Cmd {
	return nil
}

func (p *Screen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	return p, nil
}

func (p *Screen) View(width, height int) string {
	icon := lipgloss.NewStyle().
		Foreground(theme.Amber).
		Border(lipgloss.RoundedBorder()).
		BorderForeground(theme.Amber).
		Padding(0, 2).
		Render("💡")
	heading := theme.Title.Render(p.heading)
	body := theme.Subtitle.Width(min(width-8, 60)).Align(lipgloss.Center).Render(p.body)

	return lipgloss.NewStyle().
		Width(width).
		Height(height).
		Align(lipgloss.Center, lipgloss.Center).
		Render(lipgloss.JoinVertical(lipgloss.Center, icon, "", heading, "", body))
}

func (p *Screen) Title() string {
	return p.title
}
