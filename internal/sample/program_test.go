package sample

import (
	"bytes"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/x/exp/teatest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/llehouerou/broadlist/decorator"
	"github.com/llehouerou/broadlist/internal/state"
)

func waitFor(t *testing.T, tm *teatest.TestModel, text string) {
	t.Helper()
	teatest.WaitFor(t, tm.Output(), func(b []byte) bool {
		return bytes.Contains(b, []byte(text))
	}, teatest.WithDuration(3*time.Second), teatest.WithCheckInterval(20*time.Millisecond))
}

func TestProgram(t *testing.T) {
	store := state.NewMock()
	m, err := New(Config{
		Store:           store,
		Spacing:         decorator.Uniform(1),
		ScrollMargin:    1,
		LastItemRefresh: true,
		Now:             clock,
	})
	require.NoError(t, err)
	defer m.Close()

	tm := teatest.NewTestModel(t, m, teatest.WithInitialTermSize(50, 16))
	waitFor(t, tm, EmptyText)

	tm.Send(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'a'}})
	waitFor(t, tm, "New contact")
	tm.Send(tea.KeyMsg{Type: tea.KeyEnter})
	waitFor(t, tm, "1 items")

	tm.Send(tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}})
	waitFor(t, tm, "[x]")

	tm.Send(tea.KeyMsg{Type: tea.KeyEnter})
	waitFor(t, tm, "Item Selected: true")

	tm.Send(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'q'}})
	tm.WaitFinished(t, teatest.WithFinalTimeout(3*time.Second))

	final, ok := tm.FinalModel(t).(*Model)
	require.True(t, ok)
	assert.Equal(t, []string{"Item"}, names(final))
	assert.NoError(t, final.Err())

	saved, err := store.Load()
	require.NoError(t, err)
	require.Len(t, saved, 1)
	assert.True(t, saved[0].Checked)
}
