package recycler

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/llehouerou/broadlist/internal/ui/action"
)

// Update handles navigation keys, enter and mouse input. Clicks are routed
// to the host synchronously; the returned command reports selection changes
// and failures.
func (m *Model) Update(msg tea.Msg) tea.Cmd {
	if m.err != nil {
		return nil
	}
	prev := m.Selected()

	switch msg := msg.(type) {
	case tea.KeyMsg:
		if m.IsFocused() {
			m.handleKey(msg.String())
		}
	case tea.MouseMsg:
		if m.IsFocused() {
			m.handleMouse(msg)
		}
	}

	m.layout()
	if err := m.err; err != nil {
		m.logger.Error("surface stopped", "error", err)
		return action.Cmd(source, Failed{Err: err})
	}
	if pos := m.Selected(); pos != prev {
		return action.Cmd(source, SelectionChanged{Index: pos})
	}
	return nil
}

func (m *Model) handleKey(key string) {
	if m.cursor.HandleKey(key, len(m.slots), m.halfPage()) {
		return
	}
	if key == "enter" {
		m.ClickSelected(RowWidget)
	}
}

func (m *Model) handleMouse(msg tea.MouseMsg) {
	switch msg.Button { //nolint:exhaustive // wheel only, presses below
	case tea.MouseButtonWheelUp:
		m.cursor.Move(-1, len(m.slots))
		return
	case tea.MouseButtonWheelDown:
		m.cursor.Move(1, len(m.slots))
		return
	}

	if msg.Action != tea.MouseActionPress {
		return
	}
	pos, ok := m.rowAt(msg.Y)
	if !ok {
		return
	}
	m.cursor.Jump(pos, len(m.slots))

	switch msg.Button { //nolint:exhaustive // left and right only
	case tea.MouseButtonLeft:
		m.ClickSelected(RowWidget)
	case tea.MouseButtonRight:
		m.LongClickSelected(RowWidget)
	}
}

// halfPage returns half the number of visible rows.
func (m *Model) halfPage() int {
	start, end := m.cursor.Visible(len(m.slots), m.Height(), m.rowHeight)
	return max((end-start)/2, 1)
}
