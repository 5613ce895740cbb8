package components

import (
	"charm.land/bubbles/v2/key"
	tea "charm.land/bubbletea/v2"
)

// CursorKeys are the bindings a Cursor responds to.
type CursorKeys struct {
	Up   key.Binding
	Down key.Binding
	Home key.Binding
	End  key.Binding
}

// DefaultCursorKeys binds arrows, vim keys, and home/end.
func DefaultCursorKeys() CursorKeys {
	return CursorKeys{
		Up:   key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
		Down: key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
		Home: key.NewBinding(key.WithKeys("home", "g"), key.WithHelp("g", "first")),
		End:  key.NewBinding(key.WithKeys("end", "G"), key.WithHelp("G", "last")),
	}
}

// Cursor is a position in a vertical list of Len items.
type Cursor struct {
	Index int
	Len   int
	Keys  CursorKeys
}

// NewCursor returns a cursor at the first of n items.
func NewCursor(n int) Cursor {
	return Cursor{Len: n, Keys: DefaultCursorKeys()}
}

// Update moves the cursor on key presses. It reports whether the
// message was consumed.
func (c Cursor) Update(msg tea.Msg) (Cursor, bool) {
	kmsg, ok := msg.(tea.KeyPressMsg)
	if !ok || c.Len == 0 {
		return c, false
	}
	switch {
	case key.Matches(kmsg, c.Keys.Up):
		if c.Index > 0 {
			c.Index--
		}
	case key.Matches(kmsg, c.Keys.Down):
		if c.Index < c.Len-1 {
			c.Index++
		}
	case key.Matches(kmsg, c.Keys.Home):
		c.Index = 0
	case key.Matches(kmsg, c.Keys.End):
		c.Index = c.Len - 1
	default:
		return c, false
	}
	return c, true
}

// Resize changes the item count and keeps the cursor in range.
func (c Cursor) Resize(n int) Cursor {
	c.Len = n
	if c.Index >= n {
		c.Index = max(0, n-1)
	}
	return c
}

// Window returns the [start, end) slice of items to show in rows lines
// so that the cursor stays visible.
func (c Cursor) Window(rows int) (int, int) {
	if rows <= 0 || c.Len == 0 {
		return 0, 0
	}
	if c.Len <= rows {
		return 0, c.Len
	}
	start := c.Index - rows/2
	start = max(0, min(start, c.Len-rows))
	return start, start + rows
}
