package keymap

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
)

// Binding describes the keys of one action.
type Binding struct {
	Action      Action
	Keys        []string
	Description string
	Context     string // "global", "navigation", "row", "edit"
}

// All contains all key bindings, in help order.
var All = []Binding{
	{ActionMoveDown, []string{"j", "down"}, "Move down", "navigation"},
	{ActionMoveUp, []string{"k", "up"}, "Move up", "navigation"},
	{ActionJumpStart, []string{"g", "home"}, "First item", "navigation"},
	{ActionJumpEnd, []string{"G", "end"}, "Last item", "navigation"},
	{ActionHalfPageDown, []string{"ctrl+d"}, "Half page down", "navigation"},
	{ActionHalfPageUp, []string{"ctrl+u"}, "Half page up", "navigation"},

	{ActionSelect, []string{"enter"}, "Select", "row"},
	{ActionInfo, []string{"i"}, "Info", "row"},
	{ActionLongSelect, []string{"L"}, "Long press info", "row"},
	{ActionToggleCheck, []string{" "}, "Toggle check", "row"},
	{ActionDelete, []string{"d", "delete"}, "Delete", "row"},

	{ActionAddContact, []string{"a"}, "Add contact", "edit"},
	{ActionAddTitle, []string{"t"}, "Add title", "edit"},
	{ActionMoveItemDown, []string{"J"}, "Move item down", "edit"},
	{ActionMoveItemUp, []string{"K"}, "Move item up", "edit"},
	{ActionClear, []string{"c"}, "Clear list", "edit"},
	{ActionFind, []string{"/"}, "Find by name", "edit"},

	{ActionHelp, []string{"?"}, "Toggle help", "global"},
	{ActionQuit, []string{"q", "ctrl+c"}, "Quit", "global"},
}

// ByContext returns key bindings filtered by context.
func ByContext(context string) []Binding {
	var result []Binding
	for _, kb := range All {
		if kb.Context == context {
			result = append(result, kb)
		}
	}
	return result
}

// Key converts the binding for use with bubbles/key and bubbles/help.
func (b Binding) Key() key.Binding {
	return key.NewBinding(
		key.WithKeys(b.Keys...),
		key.WithHelp(helpKeys(b.Keys), strings.ToLower(b.Description)),
	)
}

// helpKeys renders keys as "j/down", spelling out the space bar.
func helpKeys(keys []string) string {
	names := make([]string, len(keys))
	for i, k := range keys {
		if k == " " {
			k = "space"
		}
		names[i] = k
	}
	return strings.Join(names, "/")
}

// Help adapts bindings to help.KeyMap.
type Help struct {
	short []key.Binding
	full  [][]key.Binding
}

// NewHelp builds the help key map. The short view lists the row and global
// bindings; the full view groups every binding by context.
func NewHelp(bindings []Binding) Help {
	var h Help
	groups := map[string]int{}
	for _, b := range bindings {
		kb := b.Key()
		if b.Context == "row" || b.Context == "global" {
			h.short = append(h.short, kb)
		}
		i, ok := groups[b.Context]
		if !ok {
			i = len(h.full)
			groups[b.Context] = i
			h.full = append(h.full, nil)
		}
		h.full[i] = append(h.full[i], kb)
	}
	return h
}

// ShortHelp implements help.KeyMap.
func (h Help) ShortHelp() []key.Binding {
	return h.short
}

// FullHelp implements help.KeyMap.
func (h Help) FullHelp() [][]key.Binding {
	return h.full
}
