package keymap

import (
	"slices"
	"testing"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestByContext(t *testing.T) {
	tests := []struct {
		context string
		want    int
	}{
		{"navigation", 6},
		{"row", 5},
		{"edit", 6},
		{"global", 2},
		{"unknown", 0},
	}

	for _, tt := range tests {
		t.Run(tt.context, func(t *testing.T) {
			assert.Len(t, ByContext(tt.context), tt.want)
		})
	}
}

func TestAll_NoKeyBoundTwice(t *testing.T) {
	seen := map[string]Action{}
	for _, b := range All {
		for _, k := range b.Keys {
			if prev, ok := seen[k]; ok {
				t.Errorf("key %q bound to both %s and %s", k, prev, b.Action)
			}
			seen[k] = b.Action
		}
	}
}

func TestBinding_Key(t *testing.T) {
	b := Binding{ActionToggleCheck, []string{" "}, "Toggle check", "row"}

	kb := b.Key()

	assert.Equal(t, "space", kb.Help().Key)
	assert.Equal(t, "toggle check", kb.Help().Desc)
	assert.True(t, key.Matches(tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}, kb))
}

func TestNewHelp(t *testing.T) {
	h := NewHelp(All)

	assert.Len(t, h.ShortHelp(), len(ByContext("row"))+len(ByContext("global")))

	full := h.FullHelp()
	require.Len(t, full, 4)
	assert.Equal(t, "j/down", full[0][0].Help().Key)
	assert.Equal(t, "q/ctrl+c", full[3][1].Help().Key)
}

func TestResolver_Resolve(t *testing.T) {
	r := NewResolver(All)

	tests := []struct {
		key      string
		expected Action
	}{
		{"q", ActionQuit},
		{"ctrl+c", ActionQuit},
		{" ", ActionToggleCheck},
		{"J", ActionMoveItemDown},
		{"j", ActionMoveDown},
		{"a", ActionAddContact},
		{"i", ActionInfo},
		{"/", ActionFind},
		{"x", ""},
		{"", ""},
	}

	for _, tt := range tests {
		t.Run(tt.key, func(t *testing.T) {
			assert.Equal(t, tt.expected, r.Resolve(tt.key))
		})
	}
}

func TestResolver_KeysFor(t *testing.T) {
	r := NewResolver([]Binding{
		{ActionDelete, []string{"d"}, "Delete", "row"},
		{ActionDelete, []string{"d", "delete"}, "Delete", "edit"},
	})

	keys := r.KeysFor(ActionDelete)

	assert.Equal(t, []string{"d", "delete"}, keys)
	assert.True(t, slices.Contains(keys, "delete"))
	assert.Nil(t, r.KeysFor(ActionQuit))
}
