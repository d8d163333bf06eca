package welcome

import (
	"charm.land/lipgloss/v2"

	"starmath/internal/ui/theme"
)

const bannerArt = `
 ███████╗████████╗ █████╗ ██████╗ ███╗   ███╗ █████╗ ████████╗██╗  ██╗
 ██╔════╝╚══██╔══╝██╔══██╗██╔══██╗████╗ ████║██╔══██╗╚══██╔══╝██║  ██║
 ███████╗   ██║   ███████║██████╔╝██╔████╔██║███████║   ██║   ███████║
 ╚════██║   ██║   ██╔══██║██╔══██╗██║╚██╔╝██║██╔══██║   ██║   ██╔══██║
 ███████║   ██║   ██║  ██║██║  ██║██║ ╚═╝ ██║██║  ██║   ██║   ██║  ██║
 ╚══════╝   ╚═╝   ╚═╝  ╚═╝╚═╝  ╚═╝╚═╝     ╚═╝╚═╝  ╚═╝   ╚═╝   ╚═╝  ╚═╝`

const bannerCompact = "S T A R M A T H"

// RenderBanner returns the STARMATH banner styled in the primary color.
// Uses a compact fallback for terminals narrower than 74 columns.
func RenderBanner(width int) string {
	style := lipgloss.NewStyle().
		Foreground(theme.Primary).
		Bold(true)

	if width < 74 {
		return style.Render(bannerCompact)
	}
	return style.Render(bannerArt)
}
