package confirm

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/llehouerou/broadlist/internal/ui/action"
	"github.com/llehouerou/broadlist/internal/ui/testutil"
)

func result(t *testing.T, cmd tea.Cmd) Result {
	t.Helper()
	msg, ok := testutil.Exec(cmd).(action.Msg)
	require.True(t, ok, "expected action.Msg")
	assert.Equal(t, source, msg.Source)
	r, ok := msg.Action.(Result)
	require.True(t, ok, "expected Result, got %T", msg.Action)
	return r
}

func TestAnswers(t *testing.T) {
	tests := []struct {
		key  string
		want bool
	}{
		{"enter", true},
		{"y", true},
		{"Y", true},
		{"esc", false},
		{"n", false},
		{"q", false},
	}
	for _, tt := range tests {
		t.Run(tt.key, func(t *testing.T) {
			var m Model
			m.Ask("Clear the list?", "clear")
			r := result(t, m.Update(testutil.Key(tt.key)))
			assert.Equal(t, tt.want, r.Confirmed)
			assert.Equal(t, "clear", r.Tag)
			assert.False(t, m.Active())
		})
	}
}

func TestOtherKeysSwallowed(t *testing.T) {
	var m Model
	m.Ask("Clear the list?", "clear")
	assert.Nil(t, m.Update(testutil.Key("x")))
	assert.Nil(t, m.Update(tea.WindowSizeMsg{Width: 10, Height: 10}))
	assert.True(t, m.Active())
}

func TestInactive(t *testing.T) {
	var m Model
	assert.Nil(t, m.Update(testutil.Key("y")))
	assert.Empty(t, m.View())
}

func TestView(t *testing.T) {
	var m Model
	m.Ask("Clear the list?", "clear")
	view := m.View()
	assert.True(t, testutil.ContainsLine(view, "Clear the list?"))
	assert.True(t, testutil.ContainsLine(view, "n/esc: no"))
}
