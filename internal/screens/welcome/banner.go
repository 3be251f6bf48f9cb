package welcome

import (
	"charm.land/lipgloss/v2"

	"github.com/abhisek/intake/internal/ui/layout"
	"github.com/abhisek/intake/internal/ui/theme"
)

const bannerArt = `
 ██╗███╗   ██╗████████╗ █████╗ ██╗  ██╗███████╗
 ██║████╗  ██║╚══██╔══╝██╔══██╗██║ ██╔╝██╔════╝
 ██║██╔██╗ ██║   ██║   ███████║█████╔╝ █████╗
 ██║██║╚██╗██║   ██║   ██╔══██║██╔═██╗ ██╔══╝
 ██║██║ ╚████║   ██║   ██║  ██║██║  ██╗███████╗
 ╚═╝╚═╝  ╚═══╝   ╚═╝   ╚═╝  ╚═╝╚═╝  ╚═╝╚══════╝`

const bannerCompact = "I N T A K E"

// RenderBanner returns the INTAKE banner styled in the primary color.
// Uses a compact fallback for terminals narrower than 50 columns or too
// short to spare six lines on artwork.
func RenderBanner(width, height int) string {
	style := lipgloss.NewStyle().
		Foreground(theme.Primary).
		Bold(true)

	if width < 50 || layout.IsCompactHeight(height) {
		return style.Render(bannerCompact)
	}
	return style.Render(bannerArt)
}
