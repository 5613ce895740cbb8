package components

import (
	"fmt"
	"image/color"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/edgefinder/internal/catalog"
	"github.com/abhisek/edgefinder/internal/ui/theme"
)

// CardWidth returns the width of a setup card inside a frame.
func CardWidth(frameWidth int) int {
	w := frameWidth - 4
	if w > 96 {
		w = 96
	}
	if w < 40 {
		w = 40
	}
	return w
}

// SetupCard renders the catalog card for s.
func SetupCard(s catalog.Setup, width int, selected bool) string {
	inner := width - 4

	badges := theme.Tag(strings.ToUpper(string(s.Bias)), theme.BiasColor(string(s.Bias))) +
		theme.Tag(string(s.Difficulty), theme.DifficultyColor(string(s.Difficulty)))
	rate := lipgloss.NewStyle().
		Foreground(theme.WinRateColor(s.WinRate)).
		Bold(true).
		Render(fmt.Sprintf("%d%% WIN", s.WinRate))
	top := spread(badges, rate, inner)

	nameStyle := theme.Title
	if selected {
		nameStyle = theme.Accent
	}
	name := nameStyle.Render(s.Name)

	desc := theme.Subtitle.Width(inner).MaxHeight(2).Render(s.Description)

	stats := stat("AVG RETURN", s.AvgReturn, theme.Green) + "   " +
		stat("TIMEFRAME", s.Timeframe, theme.Text) + "   " +
		stat("R:R", s.RiskReward, theme.Amber)

	style := theme.Card
	if selected {
		style = theme.CardSelected
	}
	return style.Width(width).Render(strings.Join([]string{top, name, desc, stats}, "\n"))
}

func stat(label, value string, c color.Color) string {
	return theme.Label.Render(label+" ") + lipgloss.NewStyle().Foreground(c).Render(value)
}

// spread places left and right on one line of the given width.
func spread(left, right string, width int) string {
	gap := width - lipgloss.Width(left) - lipgloss.Width(right)
	if gap < 1 {
		gap = 1
	}
	return left + strings.Repeat(" ", gap) + right
}
