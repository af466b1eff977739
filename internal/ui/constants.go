// Package ui provides sizing shared by the list components.
package ui

const (
	// ScrollMargin is the number of rows kept visible around the selection.
	ScrollMargin = 2

	// HeaderHeight is the title line above the list.
	HeaderHeight = 1
)
