// Package decorator provides pure functions computing the spacing around
// list rows.
package decorator

// Orientation is the scroll direction of the list being decorated.
type Orientation int

const (
	Vertical     Orientation = iota // rows stacked top to bottom
	Horizontal                      // cells laid out left to right
	VerticalGrid                    // rows of GridSpan cells
)

// Insets is the space reserved around one item, in cells.
type Insets struct {
	Top, Right, Bottom, Left int
}

// Spacing configures the space around items. The zero value adds no space.
//
// Defaults: both leading and trailing edges are spaced (the Skip fields
// disable them), the last item uses Vertical as its bottom spacing unless
// Bottom is set, and GridSpan values below 1 mean 1.
type Spacing struct {
	Horizontal  int
	Vertical    int
	Orientation Orientation

	// SkipTopOrLeft disables the leading edge: top in vertical lists,
	// left in horizontal ones.
	SkipTopOrLeft bool
	// SkipBottomOrRight disables the trailing edge.
	SkipBottomOrRight bool

	// Bottom overrides the bottom spacing of the last item only.
	Bottom *int

	// GridSpan is the number of cells per row in VerticalGrid mode.
	GridSpan int
}

// Uniform returns a vertical Spacing with the same value on every side.
func Uniform(spacing int) Spacing {
	return Spacing{Horizontal: spacing, Vertical: spacing}
}

// Offsets returns the insets of the item at index in a list of total items.
func (s Spacing) Offsets(index, total int) Insets {
	lead := !s.SkipTopOrLeft
	trail := !s.SkipBottomOrRight

	var ins Insets
	switch s.Orientation {
	case Horizontal:
		if index == 0 {
			ins.Left = when(lead, s.Horizontal)
		}
		ins.Top = when(lead, s.Vertical)
		ins.Right = when(trail, s.Horizontal)

	case VerticalGrid:
		ins.Left = when(lead, s.Horizontal/2)
		ins.Right = when(trail, s.Horizontal/2)
		if index < s.span() {
			ins.Top = when(lead, s.Vertical)
		}

	default:
		ins.Left = when(lead, s.Horizontal)
		if index == 0 {
			ins.Top = when(lead, s.Vertical)
		}
		ins.Right = when(trail, s.Horizontal)
	}

	ins.Bottom = when(trail, s.Vertical)
	if s.Bottom != nil && total > 0 && index == total-1 {
		ins.Bottom = when(trail, *s.Bottom)
	}
	return ins
}

// ParentPadding returns the horizontal padding the list itself needs.
// Only grids need it, to balance the half-spacing given to each cell.
func (s Spacing) ParentPadding() (left, right int) {
	if s.Orientation != VerticalGrid {
		return 0, 0
	}
	return s.Horizontal / 2, s.Horizontal / 2
}

// RowHeight returns the lines taken by an item of contentHeight lines at
// index, including its vertical insets.
func (s Spacing) RowHeight(contentHeight, index, total int) int {
	ins := s.Offsets(index, total)
	return contentHeight + ins.Top + ins.Bottom
}

// HasLastItemBottom reports whether the last item is decorated differently
// from the others, so inserting after it must refresh it.
func (s Spacing) HasLastItemBottom() bool {
	return s.Bottom != nil && *s.Bottom != s.Vertical && !s.SkipBottomOrRight
}

func (s Spacing) span() int {
	if s.GridSpan < 1 {
		return 1
	}
	return s.GridSpan
}

func when(enabled bool, v int) int {
	if enabled {
		return v
	}
	return 0
}
