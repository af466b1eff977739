// Package testutil provides helpers for testing rendered components.
package testutil

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/x/ansi"
)

// StripANSI removes escape sequences so rendered output can be compared
// as plain text.
func StripANSI(s string) string {
	return ansi.Strip(s)
}

// Lines returns the plain-text lines of a view with trailing spaces removed.
func Lines(view string) []string {
	lines := strings.Split(StripANSI(view), "\n")
	for i, l := range lines {
		lines[i] = strings.TrimRight(l, " ")
	}
	return lines
}

// ContainsLine reports whether any line of output contains substr.
func ContainsLine(output, substr string) bool {
	for line := range strings.SplitSeq(StripANSI(output), "\n") {
		if strings.Contains(line, substr) {
			return true
		}
	}
	return false
}

// FindLine returns the index of the first line containing substr, or -1.
func FindLine(output, substr string) int {
	for i, line := range Lines(output) {
		if strings.Contains(line, substr) {
			return i
		}
	}
	return -1
}

// Key builds the key message for a key name as reported by
// tea.KeyMsg.String: "enter", "up", "down", " " or plain runes.
func Key(name string) tea.KeyMsg {
	switch name {
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "up":
		return tea.KeyMsg{Type: tea.KeyUp}
	case "down":
		return tea.KeyMsg{Type: tea.KeyDown}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEscape}
	case " ":
		return tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(name)}
}

// Press builds a mouse press of button on screen line y.
func Press(button tea.MouseButton, y int) tea.MouseMsg {
	return tea.MouseMsg{X: 1, Y: y, Button: button, Action: tea.MouseActionPress}
}

// Exec runs cmd and returns its message, or nil for a nil command.
func Exec(cmd tea.Cmd) tea.Msg {
	if cmd == nil {
		return nil
	}
	return cmd()
}
