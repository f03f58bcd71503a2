package cursor

import "fmt"

// Cursor represents an insertion point in a buffer as a line index and a
// byte offset within that line's text. The offset always sits on a
// character boundary, never mid-codepoint.
// Cursor is an immutable value type.
type Cursor struct {
	// Line is the 0-indexed line number.
	Line int
	// Index is the byte offset within the line's text.
	Index int
}

// New creates a cursor at the given line and byte offset.
// Negative values clamp to 0.
func New(line, index int) Cursor {
	if line < 0 {
		line = 0
	}
	if index < 0 {
		index = 0
	}
	return Cursor{Line: line, Index: index}
}

// Compare returns -1 if c < other, 0 if c == other, 1 if c > other,
// ordering by (line, index).
func (c Cursor) Compare(other Cursor) int {
	if c.Line < other.Line {
		return -1
	}
	if c.Line > other.Line {
		return 1
	}
	if c.Index < other.Index {
		return -1
	}
	if c.Index > other.Index {
		return 1
	}
	return 0
}

// Before returns true if c comes before other.
func (c Cursor) Before(other Cursor) bool {
	return c.Compare(other) < 0
}

// After returns true if c comes after other.
func (c Cursor) After(other Cursor) bool {
	return c.Compare(other) > 0
}

// Equal returns true if two cursors are at the same position.
func (c Cursor) Equal(other Cursor) bool {
	return c.Line == other.Line && c.Index == other.Index
}

// String returns a human-readable representation of the cursor.
func (c Cursor) String() string {
	return fmt.Sprintf("(%d:%d)", c.Line, c.Index)
}
