// Package overlay draws floating boxes over an already rendered view.
package overlay

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

// Place draws box over base with its top-left corner at column x, line y.
// Lines of box falling outside base are dropped. Base lines shorter than
// the box are padded. ANSI styling on both sides is preserved.
func Place(base, box string, x, y int) string {
	if box == "" {
		return base
	}
	lines := strings.Split(base, "\n")
	x = max(x, 0)
	for i, row := range strings.Split(box, "\n") {
		at := y + i
		if at < 0 || at >= len(lines) {
			continue
		}
		w := ansi.StringWidth(row)
		line := lines[at]
		if lw := ansi.StringWidth(line); lw < x+w {
			line += strings.Repeat(" ", x+w-lw)
		}
		lines[at] = ansi.Cut(line, 0, x) + row + ansi.Cut(line, x+w, ansi.StringWidth(line))
	}
	return strings.Join(lines, "\n")
}

// Bottom centers box horizontally on base, margin lines above its last
// line. The box is cut to width when wider.
func Bottom(base, box string, width, margin int) string {
	if box == "" {
		return base
	}
	bw := lipgloss.Width(box)
	if bw > width {
		box = cut(box, width)
		bw = width
	}
	baseH := strings.Count(base, "\n") + 1
	y := baseH - lipgloss.Height(box) - margin
	return Place(base, box, (width-bw)/2, max(y, 0))
}

func cut(box string, width int) string {
	lines := strings.Split(box, "\n")
	for i, l := range lines {
		lines[i] = ansi.Truncate(l, width, "")
	}
	return strings.Join(lines, "\n")
}
