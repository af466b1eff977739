package recycler

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

// View renders the visible rows, padded to the surface height.
func (m *Model) View() string {
	if m.err != nil || m.Width() <= 0 || m.Height() <= 0 {
		return ""
	}
	m.layout()
	if m.err != nil {
		return ""
	}

	n, height := len(m.slots), m.Height()
	start, end := m.cursor.Visible(n, height, m.rowHeight)
	padLeft, _ := m.spacing.ParentPadding()

	lines := make([]string, 0, height)
	m.lineRows = m.lineRows[:0]
	for i := start; i < end && len(lines) < height; i++ {
		if m.ensureBound(i) != nil {
			return ""
		}
		ins := m.spacing.Offsets(i, n)
		row := lipgloss.NewStyle().
			Margin(ins.Top, ins.Right, ins.Bottom, ins.Left+padLeft).
			Render(m.content(i))
		for _, line := range strings.Split(row, "\n") {
			if len(lines) == height {
				break
			}
			lines = append(lines, ansi.Truncate(line, m.Width(), ""))
			m.lineRows = append(m.lineRows, i)
		}
	}
	for len(lines) < height {
		lines = append(lines, "")
	}
	return strings.Join(lines, "\n")
}

// layout scrolls to the selection, recycles rows that left the viewport
// and binds the rows that entered it.
func (m *Model) layout() {
	if m.err != nil {
		return
	}
	n, height := len(m.slots), m.Height()

	// Heights of freshly bound rows are only known once rendered, so a
	// second pass settles the window.
	for range 2 {
		m.cursor.Follow(n, height, m.rowHeight)
		start, end := m.cursor.Visible(n, height, m.rowHeight)
		for i := range m.slots {
			if i < start || i >= end {
				m.recycle(i)
			}
		}
		for i := start; i < end; i++ {
			if m.ensureBound(i) != nil {
				return
			}
			m.content(i)
		}
	}
}

// rowHeight returns the lines row i takes, insets included. Rows never
// rendered use the last height seen for their view type.
func (m *Model) rowHeight(i int) int {
	h := 1
	if s := m.slots[i]; s != nil && s.cached {
		h = lipgloss.Height(s.content)
	} else if known, ok := m.heights[m.host.ViewTypeAt(i)]; ok {
		h = known
	}
	ins := m.spacing.Offsets(i, len(m.slots))
	return h + ins.Top + ins.Bottom
}

// content returns the cached rendering of bound row i.
func (m *Model) content(i int) string {
	s := m.slots[i]
	key := renderKey{
		width:   m.contentWidth(i),
		focused: m.IsFocused() && i == m.cursor.Pos(),
	}
	if !s.cached || s.key != key {
		s.content = s.container.Render(key.width, key.focused)
		s.key = key
		s.cached = true
		m.heights[s.viewType] = lipgloss.Height(s.content)
		m.stats.Rendered++
	}
	return s.content
}

func (m *Model) contentWidth(i int) int {
	ins := m.spacing.Offsets(i, len(m.slots))
	padLeft, padRight := m.spacing.ParentPadding()
	return max(m.Width()-ins.Left-ins.Right-padLeft-padRight, 1)
}

// rowAt returns the position displayed on screen line y.
func (m *Model) rowAt(y int) (int, bool) {
	line := y - m.top
	if line < 0 || line >= len(m.lineRows) {
		return 0, false
	}
	return m.lineRows[line], true
}
