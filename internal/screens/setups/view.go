package setups

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/edgefinder/internal/catalog"
	"github.com/abhisek/edgefinder/internal/chart"
	"github.com/abhisek/edgefinder/internal/explorer"
	"github.com/abhisek/edgefinder/internal/ui/components"
	"github.com/abhisek/edgefinder/internal/ui/layout"
	"github.com/abhisek/edgefinder/internal/ui/theme"
)

// Below this motion position the overlay is not drawn at all.
const overlayThreshold = 0.05

func (s *Screen) View(width, height int) string {
	if s.explorer.Live() && s.motion.Position() > overlayThreshold {
		return s.viewOverlay(width, height)
	}
	return s.viewList(width, height)
}

func (s *Screen) viewList(width, height int) string {
	var b strings.Builder

	b.WriteString(theme.Title.Render("  Top Setups"))
	b.WriteString("\n")
	b.WriteString(theme.Subtitle.Render("  The highest-probability SPX intraday patterns, ranked by win rate."))
	b.WriteString("\n")
	if s.filter.Focused() || s.filter.Query() != "" {
		b.WriteString("  " + s.filter.View())
	}
	b.WriteString("\n\n")

	if len(s.visible) == 0 {
		b.WriteString(theme.Hint.Render("  No setups match the filter."))
		return b.String()
	}

	cardWidth := components.CardWidth(width)
	// Cards are six lines tall with their border.
	rows := max(1, (height-4)/6)
	start, end := s.cursor.Window(rows)
	cards := make([]string, 0, end-start)
	for i := start; i < end; i++ {
		setup := s.catalog.Setups[s.visible[i]]
		cards = append(cards, components.SetupCard(setup, cardWidth, i == s.cursor.Index))
	}
	b.WriteString(lipgloss.NewStyle().PaddingLeft(2).Render(lipgloss.JoinVertical(lipgloss.Left, cards...)))
	return b.String()
}

func (s *Screen) viewOverlay(width, height int) string {
	setup, ok := s.explorer.Current()
	if !ok {
		return s.viewList(width, height)
	}
	panelWidth := min(width-4, 100)
	inner := panelWidth - 4

	var parts []string
	parts = append(parts, detailHeader(setup, inner))
	parts = append(parts, theme.Paragraph.Width(inner).Render(setup.Description))
	parts = append(parts, "")
	parts = append(parts, s.diagram(inner)...)
	parts = append(parts, "")
	parts = append(parts, s.sectionTabs())
	parts = append(parts, "")
	parts = append(parts, components.RuleList(s.explorer.VisibleRules(), bulletFor(s.explorer.Section()), inner))
	parts = append(parts, "")
	parts = append(parts, footerStats(setup))

	panel := theme.Overlay.Width(panelWidth).Render(strings.Join(parts, "\n"))

	// Slide up from the bottom as the spring approaches 1.
	offset := int((1 - s.motion.Position()) * float64(height/2))
	return strings.Repeat("\n", max(0, offset)) + lipgloss.NewStyle().PaddingLeft(1).Render(panel)
}

func detailHeader(setup catalog.Setup, width int) string {
	left := theme.Tag(strings.ToUpper(string(setup.Bias)), theme.BiasColor(string(setup.Bias))) +
		theme.Tag(setup.Timeframe, theme.TextDim)
	right := lipgloss.NewStyle().
		Foreground(theme.WinRateColor(setup.WinRate)).
		Bold(true).
		Render(fmt.Sprintf("%d%% WIN RATE", setup.WinRate))
	gap := max(1, width-lipgloss.Width(left)-lipgloss.Width(right))
	return left + strings.Repeat(" ", gap) + right + "\n" + theme.Accent.Render(setup.Name)
}

// diagram rasterizes the current frame of the pattern animation.
func (s *Screen) diagram(width int) []string {
	cols := min(width, 70)
	// A braille cell is 2×4 dots; keep the view box aspect ratio.
	rows := max(4, int(float64(cols)*2*chart.Height/chart.Width/4+0.5))
	c := chart.NewCanvas(cols, rows)
	c.Draw(s.explorer.Chart().Current())

	frame := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(theme.Border).
		Render(strings.Join(c.Lines(), "\n"))
	return strings.Split(frame, "\n")
}

func (s *Screen) sectionTabs() string {
	tabs := make([]layout.Tab, 0, len(explorer.Sections))
	for i, sec := range explorer.Sections {
		tabs = append(tabs, layout.Tab{
			Label:  fmt.Sprintf("%d %s", i+1, sec.Label()),
			Active: sec == s.explorer.Section(),
		})
	}
	return layout.RenderTabBar(tabs)
}

func bulletFor(sec explorer.Section) components.Bullet {
	switch sec {
	case explorer.Entry:
		return components.Check
	case explorer.Exit:
		return components.Arrow
	}
	return components.Numbered
}

func footerStats(setup catalog.Setup) string {
	best := theme.Label.Render("BEST TIME ") + lipgloss.NewStyle().Foreground(theme.Text).Render(setup.BestTime)
	rr := theme.Label.Render("RISK:REWARD ") + lipgloss.NewStyle().Foreground(theme.Amber).Render(setup.RiskReward)
	ret := theme.Label.Render("AVG RETURN ") + lipgloss.NewStyle().Foreground(theme.Green).Render(setup.AvgReturn)
	return best + "    " + rr + "    " + ret
}
