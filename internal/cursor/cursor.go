// Package cursor tracks the selected row and scroll offset of a list whose
// rows may have different heights and whose contents change underneath it.
package cursor

// RowHeight returns the number of lines taken by row i.
type RowHeight func(i int) int

// Cursor is a selection position plus the index of the first visible row.
// The list length and viewport height are passed in, since both change.
type Cursor struct {
	pos    int
	offset int
	margin int // rows kept visible above and below the cursor
}

// New creates a Cursor with the given scroll margin.
func New(margin int) Cursor {
	return Cursor{margin: max(margin, 0)}
}

// Pos returns the selected row.
func (c Cursor) Pos() int {
	return c.pos
}

// Offset returns the first visible row.
func (c Cursor) Offset() int {
	return c.offset
}

// Margin returns the scroll margin.
func (c Cursor) Margin() int {
	return c.margin
}

// SetMargin updates the scroll margin.
func (c *Cursor) SetMargin(margin int) {
	c.margin = max(margin, 0)
}

// Move moves the selection by delta rows. No-op on an empty list.
func (c *Cursor) Move(delta, n int) {
	if n == 0 {
		return
	}
	c.pos = clamp(c.pos+delta, n-1)
}

// Jump selects row pos, clamped to the list.
func (c *Cursor) Jump(pos, n int) {
	if n == 0 {
		return
	}
	c.pos = clamp(pos, n-1)
}

// Reset selects the first row and scrolls to the top.
func (c *Cursor) Reset() {
	c.pos = 0
	c.offset = 0
}

// Inserted keeps the selection on the same row after count rows were
// inserted at at, leaving n rows. The first rows of an empty list start
// selected at 0.
func (c *Cursor) Inserted(at, count, n int) {
	if count <= 0 || n == count {
		return
	}
	if at <= c.pos {
		c.pos += count
	}
	if at < c.offset {
		c.offset += count
	}
}

// Removed keeps the selection on the same row after row at was removed.
// When the selected row itself goes, the selection stays at the same index,
// which is now the following row.
func (c *Cursor) Removed(at, n int) {
	if at < c.pos {
		c.pos--
	}
	if at < c.offset {
		c.offset--
	}
	c.Clamp(n)
}

// Moved follows the selected row when a row moves from one index to another.
func (c *Cursor) Moved(from, to int) {
	switch {
	case c.pos == from:
		c.pos = to
	case from < c.pos && to >= c.pos:
		c.pos--
	case from > c.pos && to <= c.pos:
		c.pos++
	}
}

// Clamp brings the selection and offset back inside a list of n rows.
// Returns true if anything changed.
func (c *Cursor) Clamp(n int) bool {
	pos, offset := c.pos, c.offset
	if n == 0 {
		c.pos, c.offset = 0, 0
	} else {
		c.pos = clamp(c.pos, n-1)
		c.offset = clamp(c.offset, n-1)
	}
	return pos != c.pos || offset != c.offset
}

// Follow scrolls so the selected row and its margin fit in a viewport of
// height lines.
func (c *Cursor) Follow(n, height int, rowHeight RowHeight) {
	if n == 0 || height <= 0 {
		c.offset = 0
		return
	}
	c.Clamp(n)

	top := max(c.pos-c.margin, 0)
	if top < c.offset {
		c.offset = top
	}

	bottom := min(c.pos+c.margin, n-1)
	for c.offset < c.pos && span(c.offset, bottom, rowHeight) > height {
		c.offset++
	}

	// Fill the viewport when rows were removed from the end.
	for c.offset > 0 && span(c.offset-1, n-1, rowHeight) <= height {
		c.offset--
	}
}

// Visible returns the rows [start, end) that fit in height lines.
// The last row may be only partially visible.
func (c Cursor) Visible(n, height int, rowHeight RowHeight) (start, end int) {
	if n == 0 || height <= 0 {
		return 0, 0
	}
	start = clamp(c.offset, n-1)
	used := 0
	end = start
	for end < n && used < height {
		used += rowHeight(end)
		end++
	}
	return start, end
}

// HandleKey applies the navigation keys j/down, k/up, g/home, G/end,
// ctrl+d and ctrl+u. page is the number of rows a half-page jump covers.
// Returns true if key was a navigation key.
func (c *Cursor) HandleKey(key string, n, page int) bool {
	switch key {
	case "j", "down":
		c.Move(1, n)
	case "k", "up":
		c.Move(-1, n)
	case "g", "home":
		c.Jump(0, n)
	case "G", "end":
		c.Jump(n-1, n)
	case "ctrl+d":
		c.Move(max(page, 1), n)
	case "ctrl+u":
		c.Move(-max(page, 1), n)
	default:
		return false
	}
	return true
}

func span(from, to int, rowHeight RowHeight) int {
	total := 0
	for i := from; i <= to; i++ {
		total += rowHeight(i)
	}
	return total
}

func clamp(v, maxVal int) int {
	if v < 0 {
		return 0
	}
	if v > maxVal {
		return maxVal
	}
	return v
}
