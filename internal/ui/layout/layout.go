// Package layout renders the frame around screen content: header, tab
// bar, footer hints and the too-small notice.
package layout

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/edgefinder/internal/ui/theme"
)

// Below this size the shell shows RenderMinSizeMessage instead of a screen.
const (
	MinWidth  = 80
	MinHeight = 24
)

// KeyHint is one "key description" pair in the footer.
type KeyHint struct {
	Key         string
	Description string
}

func IsTooSmall(width, height int) bool {
	return width < MinWidth || height < MinHeight
}

// RenderMinSizeMessage asks the user to grow the terminal.
func RenderMinSizeMessage(width, height int) string {
	return lipgloss.NewStyle().
		Width(width).
		Height(height).
		Align(lipgloss.Center, lipgloss.Center).
		Foreground(theme.Text).
		Render(fmt.Sprintf("Terminal too small (%d×%d).\n\nEdgeFinder needs at least %d×%d.",
			width, height, MinWidth, MinHeight))
}

var (
	brandBadge = lipgloss.NewStyle().Foreground(theme.BgDark).Background(theme.Cyan).Bold(true)
	brandEdge  = lipgloss.NewStyle().Foreground(theme.Text).Bold(true)
	brandFind  = lipgloss.NewStyle().Foreground(theme.Cyan).Bold(true)
	liveDot    = lipgloss.NewStyle().Foreground(theme.Green)
	dim        = lipgloss.NewStyle().Foreground(theme.TextDim)
	hintKey    = lipgloss.NewStyle().Foreground(theme.Cyan).Bold(true)
	boxed      = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(theme.Border)
)

// RenderHeader draws the brand on the left, the screen title centered and
// a live status on the right, inside a rounded box of the given width.
func RenderHeader(title, status string, width int) string {
	left := brandBadge.Render(" SPX ") + brandEdge.Render(" EDGE") + brandFind.Render("FINDER")
	center := lipgloss.NewStyle().Foreground(theme.Text).Render(title)
	right := liveDot.Render("● ") + dim.Render(status)

	inner := max(width-4, 0)
	// Center the title on the full row, then give the rest to the right gap.
	gapL := max((inner-lipgloss.Width(center))/2-lipgloss.Width(left), 1)
	gapR := max(inner-lipgloss.Width(left)-gapL-lipgloss.Width(center)-lipgloss.Width(right), 1)

	row := left + strings.Repeat(" ", gapL) + center + strings.Repeat(" ", gapR) + right
	return boxed.Width(width).Render(row)
}

// Tab is one entry of a tab bar.
type Tab struct {
	Label  string
	Badge  string // optional count shown next to the label
	Active bool
}

// RenderTabBar lays tabs out in a row, highlighting the active one.
func RenderTabBar(tabs []Tab) string {
	var b strings.Builder
	for i, t := range tabs {
		if i > 0 {
			b.WriteString("   ")
		}
		style, badgeColor := theme.TabInactive, theme.TextDim
		if t.Active {
			style, badgeColor = theme.TabActive, theme.Cyan
		}
		b.WriteString(style.Render(t.Label))
		if t.Badge != "" {
			b.WriteString(theme.Tag(t.Badge, badgeColor))
		}
	}
	return " " + b.String()
}

// RenderFooter draws the key hints in a rounded box.
func RenderFooter(hints []KeyHint, width int) string {
	parts := make([]string, len(hints))
	for i, h := range hints {
		parts[i] = hintKey.Render(h.Key) + " " + dim.Render(h.Description)
	}
	return boxed.Width(width).Render("  " + strings.Join(parts, "   "))
}

// RenderFrame stacks header, content and footer, padding the content so
// the frame fills height exactly.
func RenderFrame(header, content, footer string, width, height int) string {
	body := max(height-lipgloss.Height(header)-lipgloss.Height(footer), 0)
	return lipgloss.JoinVertical(lipgloss.Left,
		header,
		lipgloss.NewStyle().Width(width).Height(body).MaxHeight(body).Render(content),
		footer,
	)
}
