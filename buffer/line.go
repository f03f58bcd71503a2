package buffer

import (
	"errors"
	"fmt"
	"unicode/utf8"
)

// ErrInvalidSpan is returned when a line's styled spans violate the
// byte-range invariants (ordered, in-bounds, non-overlapping, on rune
// boundaries).
var ErrInvalidSpan = errors.New("invalid styled span")

// Span is a styled byte range within a line. Section is the index of the
// external styled section the range belongs to; it doubles as the opaque
// style tag for the range.
type Span struct {
	// Start is the inclusive byte offset of the span within the line.
	Start int
	// End is the exclusive byte offset of the span within the line.
	End int
	// Section is the external section index that styles this span.
	Section int
}

// Len returns the span's length in bytes.
func (s Span) Len() int {
	return s.End - s.Start
}

// String returns a human-readable representation of the span.
func (s Span) String() string {
	return fmt.Sprintf("[%d,%d)#%d", s.Start, s.End, s.Section)
}

// Ending is a line's terminator as it appears in the external sections.
type Ending string

const (
	// EndingNone terminates the final line of a buffer.
	EndingNone Ending = ""
	// EndingLF is a bare line feed.
	EndingLF Ending = "\n"
	// EndingCRLF is a carriage return followed by a line feed.
	EndingCRLF Ending = "\r\n"
)

// Line is one line of a buffer: raw text plus its styled spans and line
// ending. Spans are byte-ordered and non-overlapping but may leave gaps;
// gap bytes are "unstyled" and inherit a neighbor's section during
// reconciliation.
type Line struct {
	text   string
	spans  []Span
	ending Ending
}

// NewLine creates a line from text, spans, and an ending.
// The spans are not validated here; call Validate to check them.
func NewLine(text string, spans []Span, ending Ending) Line {
	return Line{text: text, spans: spans, ending: ending}
}

// Text returns the line's raw text, without the ending.
func (l Line) Text() string {
	return l.text
}

// Len returns the length of the line's text in bytes.
func (l Line) Len() int {
	return len(l.text)
}

// Spans returns the line's styled spans in byte order.
// The returned slice is shared; callers must not mutate it.
func (l Line) Spans() []Span {
	return l.spans
}

// Ending returns the line's terminator.
func (l Line) Ending() Ending {
	return l.ending
}

// SectionAt resolves the section index covering the given byte offset.
// Offsets inside a gap resolve to the following span's section, or the
// previous span's section for a trailing gap, mirroring the gap rules
// used during reconciliation. A line with no spans resolves to 0.
func (l Line) SectionAt(index int) int {
	prev := 0
	for _, s := range l.spans {
		if index < s.End {
			return s.Section
		}
		prev = s.Section
	}
	return prev
}

// Validate checks the span byte-range invariants: each span in bounds
// with Start <= End, spans byte-ordered and non-overlapping, and span
// boundaries on rune boundaries. A violation indicates a malformed
// buffer and is wrapped with ErrInvalidSpan.
func (l Line) Validate() error {
	pos := 0
	for _, s := range l.spans {
		if s.Start > s.End {
			return fmt.Errorf("%w: %s is inverted", ErrInvalidSpan, s)
		}
		if s.Start < pos {
			return fmt.Errorf("%w: %s overlaps previous span", ErrInvalidSpan, s)
		}
		if s.End > len(l.text) {
			return fmt.Errorf("%w: %s exceeds line length %d", ErrInvalidSpan, s, len(l.text))
		}
		if !boundary(l.text, s.Start) || !boundary(l.text, s.End) {
			return fmt.Errorf("%w: %s splits a codepoint", ErrInvalidSpan, s)
		}
		pos = s.End
	}
	return nil
}

// boundary reports whether index is a valid rune boundary in text.
func boundary(text string, index int) bool {
	if index == 0 || index == len(text) {
		return true
	}
	if index < 0 || index > len(text) {
		return false
	}
	return utf8.RuneStart(text[index])
}
