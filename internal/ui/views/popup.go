package views

import (
	"regexp"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Rect is a screen area in cells
type Rect struct {
	X, Y, W, H int
}

// Contains reports whether the cell (x, y) lies inside r
func (r Rect) Contains(x, y int) bool {
	return x >= r.X && x < r.X+r.W && y >= r.Y && y < r.Y+r.H
}

// PopupRenderer handles popup/modal rendering
type PopupRenderer struct {
	styles *Styles
}

// NewPopupRenderer creates a new popup renderer
func NewPopupRenderer(styles *Styles) *PopupRenderer {
	return &PopupRenderer{
		styles: styles,
	}
}

// RenderPopupOverlay centers a popup over the main content, which is drawn
// greyed out behind it. It returns the screen and the popup's area.
func (pr *PopupRenderer) RenderPopupOverlay(mainContent, popupContent string, height, width int, popupStyle lipgloss.Style) (string, Rect) {
	styledPopup := popupStyle.Render(popupContent)

	modalW := lipgloss.Width(styledPopup)
	modalH := lipgloss.Height(styledPopup)
	x := (width - modalW) / 2
	y := (height - modalH) / 4
	if x < 0 {
		x = 0
	}
	if y < 0 {
		y = 0
	}

	base := strings.Split(desaturateANSI(mainContent), "\n")
	for len(base) < y+modalH {
		base = append(base, "")
	}

	for i, line := range strings.Split(styledPopup, "\n") {
		row := y + i
		base[row] = splice(base[row], line, x, lipgloss.Width(line))
	}

	grey := lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	for i, line := range base {
		if i < y || i >= y+modalH {
			base[i] = grey.Render(line)
		}
	}
	return strings.Join(base, "\n"), Rect{X: x, Y: y, W: modalW, H: modalH}
}

// ANSI escape sequence regex to strip styles/colors
var ansiRE = regexp.MustCompile(`\x1b\[[0-9;]*m`)

// desaturateANSI strips ANSI color/style codes
func desaturateANSI(s string) string {
	return ansiRE.ReplaceAllString(s, "")
}

// splice replaces the cells [x, x+w) of a plain line with overlay
func splice(plain, overlay string, x, w int) string {
	runes := []rune(plain)
	for len(runes) < x+w {
		runes = append(runes, ' ')
	}
	grey := lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	left := grey.Render(string(runes[:x]))
	right := grey.Render(string(runes[x+w:]))
	return left + overlay + right
}
