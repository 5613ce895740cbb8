package welcome

import (
	"charm.land/lipgloss/v2"

	"github.com/abhisek/edgefinder/internal/ui/theme"
)

const edgeArt = `███████╗██████╗  ██████╗ ███████╗
██╔════╝██╔══██╗██╔════╝ ██╔════╝
█████╗  ██║  ██║██║  ███╗█████╗
██╔══╝  ██║  ██║██║   ██║██╔══╝
███████╗██████╔╝╚██████╔╝███████╗
╚══════╝╚═════╝  ╚═════╝ ╚══════╝`

const finderArt = `███████╗██╗███╗   ██╗██████╗ ███████╗██████╗
██╔════╝██║████╗  ██║██╔══██╗██╔════╝██╔══██╗
█████╗  ██║██╔██╗ ██║██║  ██║█████╗  ██████╔╝
██╔══╝  ██║██║╚██╗██║██║  ██║██╔══╝  ██╔══██╗
██║     ██║██║ ╚████║██████╔╝███████╗██║  ██║
╚═╝     ╚═╝╚═╝  ╚═══╝╚═════╝ ╚══════╝╚═╝  ╚═╝`

// RenderBanner returns the EDGEFINDER banner, EDGE in white and FINDER
// in cyan. Terminals narrower than 80 columns get the compact form.
func RenderBanner(width int) string {
	edge := lipgloss.NewStyle().Foreground(theme.Text).Bold(true)
	finder := lipgloss.NewStyle().Foreground(theme.Cyan).Bold(true)

	if width < 80 {
		return edge.Render("E D G E ") + finder.Render("F I N D E R")
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, edge.Render(edgeArt), finder.Render(finderArt))
}
