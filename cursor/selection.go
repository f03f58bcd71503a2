package cursor

import "fmt"

// SelectionKind identifies how a selection was initiated, which controls
// how its bounds expand around the anchor.
type SelectionKind uint8

const (
	// SelectionNone indicates no active selection.
	SelectionNone SelectionKind = iota
	// SelectionNormal is a character-granular selection between the
	// anchor and the current cursor.
	SelectionNormal
	// SelectionLine selects whole lines between the anchor's line and
	// the current cursor's line (triple-click).
	SelectionLine
	// SelectionWord expands both endpoints to word boundaries
	// (double-click).
	SelectionWord
)

// String returns a string representation of the selection kind.
func (k SelectionKind) String() string {
	switch k {
	case SelectionNormal:
		return "normal"
	case SelectionLine:
		return "line"
	case SelectionWord:
		return "word"
	default:
		return "none"
	}
}

// Selection records a selection anchor and its kind. The head of the
// selection is the editor's current cursor; a Selection value alone does
// not describe an extent. Selection is an immutable value type.
type Selection struct {
	// Kind is the selection granularity. SelectionNone means no
	// selection is active and Anchor is meaningless.
	Kind SelectionKind
	// Anchor is where the selection started.
	Anchor Cursor
}

// NoSelection returns the inactive selection.
func NoSelection() Selection {
	return Selection{Kind: SelectionNone}
}

// Normal returns a character-granular selection anchored at c.
func Normal(c Cursor) Selection {
	return Selection{Kind: SelectionNormal, Anchor: c}
}

// LineAnchor returns a whole-line selection anchored at c.
func LineAnchor(c Cursor) Selection {
	return Selection{Kind: SelectionLine, Anchor: c}
}

// WordAnchor returns a word-granular selection anchored at c.
func WordAnchor(c Cursor) Selection {
	return Selection{Kind: SelectionWord, Anchor: c}
}

// IsNone returns true if no selection is active.
func (s Selection) IsNone() bool {
	return s.Kind == SelectionNone
}

// String returns a human-readable representation of the selection.
func (s Selection) String() string {
	if s.IsNone() {
		return "Selection(none)"
	}
	return fmt.Sprintf("Selection(%s@%s)", s.Kind, s.Anchor)
}

// Bounds is the normalized extent of an active selection: Start is never
// after End when constructed through NewBounds.
type Bounds struct {
	Start Cursor
	End   Cursor
}

// NewBounds returns the bounds covering a and b, ordered by (line, index).
func NewBounds(a, b Cursor) Bounds {
	if a.After(b) {
		return Bounds{Start: b, End: a}
	}
	return Bounds{Start: a, End: b}
}

// IsEmpty returns true if the bounds cover no text.
func (b Bounds) IsEmpty() bool {
	return b.Start.Equal(b.End)
}

// ContainsLine returns true if line falls within [Start.Line, End.Line].
func (b Bounds) ContainsLine(line int) bool {
	return line >= b.Start.Line && line <= b.End.Line
}

// String returns a human-readable representation of the bounds.
func (b Bounds) String() string {
	return fmt.Sprintf("Bounds(%s..%s)", b.Start, b.End)
}
