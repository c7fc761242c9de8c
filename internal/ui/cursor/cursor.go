// Package cursor provides a cursor with a scroll offset for line lists.
package cursor

// Cursor tracks a position and the first visible line of a list.
// The list length and viewport height are passed in on each call since
// both change with filtering and resizing.
type Cursor struct {
	pos    int
	offset int
	margin int // lines kept visible around the cursor
}

// New creates a Cursor with the given scroll margin.
func New(margin int) Cursor {
	return Cursor{margin: margin}
}

// Pos returns the current cursor position.
func (c Cursor) Pos() int {
	return c.pos
}

// Offset returns the first visible line.
func (c Cursor) Offset() int {
	return c.offset
}

// Move moves the cursor by delta, clamped to the list.
func (c *Cursor) Move(delta, listLen, height int) {
	c.Jump(c.pos+delta, listLen, height)
}

// Jump moves the cursor to pos, clamped to the list.
func (c *Cursor) Jump(pos, listLen, height int) {
	if listLen == 0 {
		c.Reset()
		return
	}
	c.pos = clamp(pos, listLen-1)
	c.EnsureVisible(listLen, height)
}

// EnsureVisible scrolls so the cursor sits inside the viewport margins.
func (c *Cursor) EnsureVisible(listLen, height int) {
	if height <= 0 || listLen == 0 {
		return
	}
	margin := min(c.margin, (height-1)/2)

	if c.pos < c.offset+margin {
		c.offset = c.pos - margin
	}
	if c.pos >= c.offset+height-margin {
		c.offset = c.pos - height + margin + 1
	}
	c.offset = clamp(c.offset, max(listLen-height, 0))
}

// Restore puts back a position and offset captured earlier, clamped to
// the current list. The offset is kept as is when the cursor is still
// inside the viewport.
func (c *Cursor) Restore(pos, offset, listLen, height int) {
	if listLen == 0 {
		c.Reset()
		return
	}
	c.pos = clamp(pos, listLen-1)
	c.offset = clamp(offset, max(listLen-height, 0))
	if c.pos < c.offset || (height > 0 && c.pos >= c.offset+height) {
		c.EnsureVisible(listLen, height)
	}
}

// Reset moves the cursor to the top.
func (c *Cursor) Reset() {
	c.pos = 0
	c.offset = 0
}

// VisibleRange returns the visible indices [start, end).
func (c Cursor) VisibleRange(listLen, height int) (start, end int) {
	if listLen == 0 || height <= 0 {
		return 0, 0
	}
	start = min(c.offset, listLen)
	return start, min(start+height, listLen)
}

// HandleKey applies common navigation keys and reports whether key was one.
// Keys: j/down, k/up, g/home, G/end, ctrl+d/pgdown, ctrl+u/pgup.
func (c *Cursor) HandleKey(key string, listLen, height int) bool {
	switch key {
	case "j", "down":
		c.Move(1, listLen, height)
	case "k", "up":
		c.Move(-1, listLen, height)
	case "g", "home":
		c.Jump(0, listLen, height)
	case "G", "end":
		c.Jump(listLen-1, listLen, height)
	case "ctrl+d", "pgdown":
		c.Move(max(height/2, 1), listLen, height)
	case "ctrl+u", "pgup":
		c.Move(-max(height/2, 1), listLen, height)
	default:
		return false
	}
	return true
}

func clamp(v, maxVal int) int {
	return max(0, min(v, maxVal))
}
