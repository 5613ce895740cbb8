// Package theme holds the terminal palette and shared styles.
package theme

import (
	"image/color"

	"charm.land/lipgloss/v2"
)

// Color palette: near-black trading-terminal background with neon accents.
var (
	Cyan    = lipgloss.Color("#00f0ff")
	Green   = lipgloss.Color("#00ff88")
	Amber   = lipgloss.Color("#ffa726")
	Red     = lipgloss.Color("#ff4757")
	Text    = lipgloss.Color("#e8e8e8")
	TextDim = lipgloss.Color("#6b6b7b")
	TextLow = lipgloss.Color("#4a4a5a")
	Body    = lipgloss.Color("#c8c8d0")
	BgDark  = lipgloss.Color("#0a0a0f")
	BgPanel = lipgloss.Color("#0d0d14")
	BgCard  = lipgloss.Color("#12121a")
	Border  = lipgloss.Color("#1a1a24")
	Hover   = lipgloss.Color("#2a2a3a")
)

// Typography
var (
	Title = lipgloss.NewStyle().
		Bold(true).
		Foreground(Text)

	Accent = lipgloss.NewStyle().
		Bold(true).
		Foreground(Cyan)

	Subtitle = lipgloss.NewStyle().
			Foreground(TextDim)

	Paragraph = lipgloss.NewStyle().
			Foreground(Body)

	Label = lipgloss.NewStyle().
		Foreground(TextLow)

	Hint = lipgloss.NewStyle().
		Foreground(TextDim).
		Italic(true)
)

// Layout
var (
	Header = lipgloss.NewStyle().
		Background(BgDark).
		Padding(0, 2)

	Footer = lipgloss.NewStyle().
		Background(BgPanel).
		Padding(0, 2)

	Card = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(Border).
		Padding(0, 1)

	CardSelected = Card.
			BorderForeground(Cyan)

	Overlay = lipgloss.NewStyle().
		Background(BgPanel).
		Border(lipgloss.RoundedBorder()).
		BorderForeground(Hover).
		Padding(0, 1)
)

// States
var (
	TabActive = lipgloss.NewStyle().
			Foreground(Cyan).
			Bold(true).
			Underline(true)

	TabInactive = lipgloss.NewStyle().
			Foreground(TextDim)

	Selected = lipgloss.NewStyle().
			Foreground(Cyan).
			Bold(true)

	Unselected = lipgloss.NewStyle().
			Foreground(Text)
)

// Components
var (
	ProgressFilled = lipgloss.NewStyle().
			Background(Cyan)

	ProgressEmpty = lipgloss.NewStyle().
			Background(Border)

	Badge = lipgloss.NewStyle().
		Padding(0, 1)
)

// WinRateColor grades a win rate: 65 and up green, 55 and up amber.
func WinRateColor(rate int) color.Color {
	switch {
	case rate >= 65:
		return Green
	case rate >= 55:
		return Amber
	}
	return TextDim
}

// BiasColor maps a directional bias to its accent.
func BiasColor(bias string) color.Color {
	switch bias {
	case "Bullish":
		return Cyan
	case "Bearish":
		return Red
	}
	return Amber
}

// DifficultyColor maps a difficulty grade to its accent.
func DifficultyColor(difficulty string) color.Color {
	switch difficulty {
	case "Easy":
		return Green
	case "Medium":
		return Amber
	}
	return Red
}

// Tag renders text as a small colored badge.
func Tag(text string, c color.Color) string {
	return Badge.Foreground(c).Render(text)
}
