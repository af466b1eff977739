// Package keymap defines key bindings and action dispatch for the sample app.
package keymap

// Action represents a user-triggerable action.
type Action string

const (
	// Global actions
	ActionQuit Action = "quit"
	ActionHelp Action = "help"

	// Navigation, handled by the list itself; listed for help
	ActionMoveUp       Action = "move_up"
	ActionMoveDown     Action = "move_down"
	ActionJumpStart    Action = "jump_start"
	ActionJumpEnd      Action = "jump_end"
	ActionHalfPageUp   Action = "half_page_up"
	ActionHalfPageDown Action = "half_page_down"

	// Row actions, routed as clicks on the selected row
	ActionSelect      Action = "select"       // enter
	ActionLongSelect  Action = "long_select"  // L
	ActionToggleCheck Action = "toggle_check" // space
	ActionDelete      Action = "delete"       // d
	ActionInfo        Action = "info"         // i

	// List editing
	ActionAddContact   Action = "add_contact"    // a
	ActionAddTitle     Action = "add_title"      // t
	ActionMoveItemUp   Action = "move_item_up"   // K
	ActionMoveItemDown Action = "move_item_down" // J
	ActionClear        Action = "clear"          // c
	ActionFind         Action = "find"           // /
)
