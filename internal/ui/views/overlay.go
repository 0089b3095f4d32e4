package views

import (
	"regexp"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// OverlayRenderer handles the modal help overlay
type OverlayRenderer struct {
	styles *Styles
}

// NewOverlayRenderer creates a new overlay renderer
func NewOverlayRenderer(styles *Styles) *OverlayRenderer {
	return &OverlayRenderer{styles: styles}
}

// RenderOverlay centers popupContent over a dimmed copy of mainContent
func (o *OverlayRenderer) RenderOverlay(mainContent, popupContent string, width, height int) string {
	popup := o.styles.Overlay.Render(popupContent)
	if width <= 0 || height <= 0 {
		return popup
	}

	base := strings.Split(desaturateANSI(mainContent), "\n")
	for len(base) < height {
		base = append(base, "")
	}
	base = base[:height]

	placed := strings.Split(lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, popup), "\n")
	popupTop := (height - lipgloss.Height(popup)) / 2
	popupBottom := popupTop + lipgloss.Height(popup)

	// Rows covered by the popup come from the placed block; the rest keep the dimmed board
	for row := range base {
		if row >= popupTop && row < popupBottom && row < len(placed) {
			base[row] = placed[row]
		}
	}
	return strings.Join(base, "\n")
}

// ANSI escape sequence regex to strip styles/colors
var ansiRE = regexp.MustCompile(`\x1b\[[0-9;]*m`)

// desaturateANSI strips ANSI color/style codes and recolors text dim gray
func desaturateANSI(s string) string {
	lines := strings.Split(ansiRE.ReplaceAllString(s, ""), "\n")
	gray := lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	for i, line := range lines {
		if line != "" {
			lines[i] = gray.Render(line)
		}
	}
	return strings.Join(lines, "\n")
}
