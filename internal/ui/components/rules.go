package components

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/edgefinder/internal/ui/theme"
)

// Bullet selects how rule items are marked.
type Bullet int

const (
	Numbered Bullet = iota
	Check
	Arrow
)

// RuleList renders rule items, each prefixed by its bullet and wrapped
// to width.
func RuleList(items []string, bullet Bullet, width int) string {
	lines := make([]string, 0, len(items))
	for i, item := range items {
		var mark string
		switch bullet {
		case Check:
			mark = lipgloss.NewStyle().Foreground(theme.Green).Render(" ✓ ")
		case Arrow:
			mark = lipgloss.NewStyle().Foreground(theme.Red).Render(" → ")
		default:
			mark = lipgloss.NewStyle().Foreground(theme.Cyan).Render(fmt.Sprintf("%2d ", i+1))
		}
		text := theme.Paragraph.Width(max(width-4, 10)).Render(item)
		lines = append(lines, lipgloss.JoinHorizontal(lipgloss.Top, mark, " ", text))
	}
	return strings.Join(lines, "\n")
}
