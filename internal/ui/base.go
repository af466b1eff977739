package ui

// Base holds the focus and size every component needs. Embed it.
type Base struct {
	width, height int
	focused       bool
}

// SetFocused sets whether the component receives input.
func (b *Base) SetFocused(focused bool) {
	b.focused = focused
}

// IsFocused reports whether the component receives input.
func (b Base) IsFocused() bool {
	return b.focused
}

// SetSize sets the component dimensions. Negative values become 0.
func (b *Base) SetSize(width, height int) {
	b.width = max(width, 0)
	b.height = max(height, 0)
}

// Width returns the component width.
func (b Base) Width() int {
	return b.width
}

// Height returns the component height.
func (b Base) Height() int {
	return b.height
}

// Inner returns the size left after removing chrome lines from the height.
func (b Base) Inner(chrome int) (width, height int) {
	return b.width, max(b.height-chrome, 0)
}
