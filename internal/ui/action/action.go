// Package action defines the messages UI components send to their parent.
package action

import tea "github.com/charmbracelet/bubbletea"

// Action is something a component reports. ActionType names it for logs.
type Action interface {
	ActionType() string
}

// Msg carries an Action and the name of the component that produced it.
type Msg struct {
	Source string
	Action Action
}

var _ tea.Msg = Msg{}

// Cmd returns a command delivering a as a Msg from source.
func Cmd(source string, a Action) tea.Cmd {
	return func() tea.Msg {
		return Msg{Source: source, Action: a}
	}
}
