// Package textinput provides a one-line name prompt drawn over the list.
package textinput

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/llehouerou/broadlist/internal/ui/action"
	"github.com/llehouerou/broadlist/internal/ui/styles"
)

const (
	source = "textinput"
	// CharLimit bounds the length of a name.
	CharLimit = 64
)

// Model wraps a bubbles text input with a title and submit/cancel keys.
type Model struct {
	input  textinput.Model
	title  string
	tag    string
	active bool
}

// New creates an inactive prompt.
func New() Model {
	in := textinput.New()
	in.Prompt = "> "
	in.CharLimit = CharLimit
	return Model{input: in}
}

// Start shows the prompt prefilled with initial. tag is echoed back in the
// Result.
func (m *Model) Start(title, initial, tag string, width int) tea.Cmd {
	m.title = title
	m.tag = tag
	m.active = true
	m.input.SetValue(initial)
	m.input.CursorEnd()
	m.input.Width = max(width, 1)
	return m.input.Focus()
}

// Active reports whether the prompt is shown.
func (m *Model) Active() bool {
	return m.active
}

// Value returns the current text.
func (m *Model) Value() string {
	return m.input.Value()
}

// Update handles enter (submit) and esc (cancel); other keys edit the text.
// A blank submission counts as canceled.
func (m *Model) Update(msg tea.Msg) tea.Cmd {
	if !m.active {
		return nil
	}
	if k, ok := msg.(tea.KeyMsg); ok {
		switch k.String() {
		case "enter":
			text := strings.TrimSpace(m.input.Value())
			return m.finish(Result{Text: text, Tag: m.tag, Canceled: text == ""})
		case "esc":
			return m.finish(Result{Tag: m.tag, Canceled: true})
		}
	}
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return cmd
}

func (m *Model) finish(r Result) tea.Cmd {
	m.active = false
	m.input.Blur()
	return action.Cmd(source, r)
}

// View renders the prompt box, or "" when inactive.
func (m *Model) View() string {
	if !m.active {
		return ""
	}
	s := styles.T().S()
	body := lipgloss.JoinVertical(lipgloss.Left,
		s.Header.Render(m.title),
		m.input.View(),
		s.Subtle.Render("enter: confirm · esc: cancel"),
	)
	return s.Toast.Render(body)
}
