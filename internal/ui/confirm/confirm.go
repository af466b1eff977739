// Package confirm provides a yes/no dialog drawn over the list.
package confirm

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/llehouerou/broadlist/internal/ui/action"
	"github.com/llehouerou/broadlist/internal/ui/styles"
)

const source = "confirm"

// Model is a yes/no question. The zero value is inactive.
type Model struct {
	question string
	tag      string
	active   bool
}

// Ask shows question. tag is echoed back in the Result.
func (m *Model) Ask(question, tag string) {
	m.question = question
	m.tag = tag
	m.active = true
}

// Active reports whether the dialog is waiting for an answer.
func (m *Model) Active() bool {
	return m.active
}

// Update answers the dialog on y/enter or n/esc. Other input is swallowed
// while active.
func (m *Model) Update(msg tea.Msg) tea.Cmd {
	if !m.active {
		return nil
	}
	k, ok := msg.(tea.KeyMsg)
	if !ok {
		return nil
	}
	switch k.String() {
	case "enter", "y", "Y":
		return m.answer(true)
	case "esc", "n", "N", "q":
		return m.answer(false)
	}
	return nil
}

func (m *Model) answer(yes bool) tea.Cmd {
	m.active = false
	return action.Cmd(source, Result{Confirmed: yes, Tag: m.tag})
}

// View renders the dialog box, or "" when inactive.
func (m *Model) View() string {
	if !m.active {
		return ""
	}
	s := styles.T().S()
	body := lipgloss.JoinVertical(lipgloss.Left,
		s.Header.Render(m.question),
		"",
		s.Subtle.Render("y/enter: yes · n/esc: no"),
	)
	return s.Toast.Render(body)
}
