package sample

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/llehouerou/broadlist/internal/ui/overlay"
	"github.com/llehouerou/broadlist/internal/ui/render"
	"github.com/llehouerou/broadlist/internal/ui/styles"
)

// View implements tea.Model.
func (m *Model) View() string {
	if m.Width() <= 0 || m.Height() <= 0 {
		return ""
	}
	s := styles.T().S()

	header := render.Row(s.Header.Render("broadlist"),
		s.Muted.Render(fmt.Sprintf("%d items", m.adapter.ItemCount())), m.Width())

	listH := m.list.Height()
	var body string
	if m.empty {
		body = lipgloss.Place(m.Width(), listH, lipgloss.Center, lipgloss.Center, s.Empty.Render(EmptyText))
	} else {
		body = m.list.View()
	}

	if box := m.dialog(); box != "" {
		body = overlay.Place(body, box,
			max((m.Width()-lipgloss.Width(box))/2, 0),
			max((listH-lipgloss.Height(box))/2, 0))
	} else if m.toast != "" {
		body = overlay.Bottom(body, s.Toast.Render(m.toast), m.Width(), 0)
	}

	return strings.Join([]string{header, body, m.help.View(m.helpKeys)}, "\n")
}

func (m *Model) dialog() string {
	if v := m.prompt.View(); v != "" {
		return v
	}
	return m.confirm.View()
}

func (m *Model) helpHeight() int {
	return lipgloss.Height(m.help.View(m.helpKeys))
}
