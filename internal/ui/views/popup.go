package views

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

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

// RenderPopupOverlay draws popupContent centered over a greyed out copy of
// mainContent
func (pr *PopupRenderer) RenderPopupOverlay(mainContent, popupContent string, height, width int) string {
	styledPopup := pr.styles.Popup.Render(popupContent)

	popupLines := strings.Split(styledPopup, "\n")
	if len(popupLines) > height-2 && height > 4 {
		popupLines = popupLines[:height-2]
	}
	modalW := lipgloss.Width(styledPopup)
	if modalW > width {
		modalW = width
	}
	modalH := len(popupLines)

	x := max((width-modalW)/2, 0)
	y := max((height-modalH)/2, 0)

	base := strings.Split(desaturateANSI(mainContent), "\n")
	for len(base) < y+modalH {
		base = append(base, "")
	}

	for i, line := range popupLines {
		row := base[y+i]
		left := ansi.Truncate(row, x, "")
		if pad := x - ansi.StringWidth(left); pad > 0 {
			left += strings.Repeat(" ", pad)
		}
		right := ansi.TruncateLeft(row, x+modalW, "")
		base[y+i] = left + ansi.Truncate(line, modalW, "") + right
	}
	return strings.Join(base, "\n")
}

// desaturateANSI strips ANSI color/style codes and recolors text dim gray
func desaturateANSI(s string) string {
	grey := lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
	lines := strings.Split(ansi.Strip(s), "\n")
	for i, line := range lines {
		lines[i] = grey.Render(line)
	}
	return strings.Join(lines, "\n")
}
