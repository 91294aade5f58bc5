package views

import (
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"magicbook/internal/motion"
)

var faint = lipgloss.NewStyle().Faint(true)

// Animate draws a page body at frame inside a box width cells wide. The
// horizontal offset slides the text, low opacity renders it faint and, when
// hinge is set, a fold line marks the edge the page turns around.
func Animate(body string, frame motion.Variant, width int, hinge bool) string {
	if frame.Opacity >= 1 && frame.OffsetX == 0 {
		return body
	}

	shift := int(math.Round(frame.OffsetX * float64(width)))
	lines := strings.Split(body, "\n")
	for i, line := range lines {
		if frame.Opacity < 0.5 {
			line = faint.Render(ansi.Strip(line))
		}
		switch {
		case shift > 0:
			line = ansi.Truncate(strings.Repeat(" ", shift)+line, width, "")
		case shift < 0:
			line = ansi.TruncateLeft(line, -shift, "")
		}
		if hinge && folding(frame) {
			line = foldEdge(line, frame.Origin, width)
		}
		lines[i] = line
	}
	return strings.Join(lines, "\n")
}

func folding(frame motion.Variant) bool {
	a := math.Abs(frame.RotateY)
	return a >= 1 && a <= 179 && frame.Origin != motion.OriginCenter
}

func foldEdge(line string, origin motion.Origin, width int) string {
	if origin == motion.OriginLeft {
		return "▏" + ansi.Truncate(line, width-1, "")
	}
	line = ansi.Truncate(line, width-1, "")
	if pad := width - 1 - ansi.StringWidth(line); pad > 0 {
		line += strings.Repeat(" ", pad)
	}
	return line + "▕"
}
