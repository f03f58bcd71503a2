package buffer

import (
	"errors"
	"fmt"
	"strings"

	"github.com/dshills/inkwell/cursor"
)

// ErrOutOfBounds is returned when a cursor or line index does not refer
// to a position that exists in the buffer.
var ErrOutOfBounds = errors.New("position out of bounds")

// Buffer is an ordered sequence of styled lines. A buffer always holds
// at least one line. It is owned by a single displayed text node and
// mutated only through the editor.
type Buffer struct {
	lines []Line
}

// New creates an empty buffer holding a single empty line.
func New() *Buffer {
	return &Buffer{lines: []Line{{}}}
}

// FromLines creates a buffer from prepared lines. An empty slice yields
// the same buffer as New. Lines are not validated; call Line.Validate
// when the spans come from an untrusted source.
func FromLines(lines []Line) *Buffer {
	if len(lines) == 0 {
		return New()
	}
	return &Buffer{lines: lines}
}

// LineCount returns the number of lines in the buffer.
func (b *Buffer) LineCount() int {
	return len(b.lines)
}

// Line returns the line at the given index.
func (b *Buffer) Line(i int) (Line, bool) {
	if i < 0 || i >= len(b.lines) {
		return Line{}, false
	}
	return b.lines[i], true
}

// Lines returns the buffer's lines in order.
// The returned slice is shared; callers must not mutate it.
func (b *Buffer) Lines() []Line {
	return b.lines
}

// Text returns the buffer's full text, lines joined by their endings.
func (b *Buffer) Text() string {
	var sb strings.Builder
	for _, l := range b.lines {
		sb.WriteString(l.text)
		sb.WriteString(string(l.ending))
	}
	return sb.String()
}

// check reports an error if c does not refer to a valid position.
func (b *Buffer) check(c cursor.Cursor) error {
	if c.Line < 0 || c.Line >= len(b.lines) {
		return fmt.Errorf("%w: line %d of %d", ErrOutOfBounds, c.Line, len(b.lines))
	}
	l := b.lines[c.Line]
	if c.Index < 0 || c.Index > len(l.text) || !boundary(l.text, c.Index) {
		return fmt.Errorf("%w: index %d in line %d", ErrOutOfBounds, c.Index, c.Line)
	}
	return nil
}

// Insert inserts text (which must not contain line feeds; use SplitLine
// for breaks) at the cursor and returns the cursor after the insertion.
// A span ending exactly at the insertion point absorbs the new text;
// spans at or past the point shift right.
func (b *Buffer) Insert(c cursor.Cursor, text string) (cursor.Cursor, error) {
	if err := b.check(c); err != nil {
		return c, err
	}
	if strings.ContainsRune(text, '\n') {
		return c, fmt.Errorf("%w: text contains a line feed", ErrOutOfBounds)
	}
	if err := b.lines[c.Line].Validate(); err != nil {
		return c, err
	}
	l := b.lines[c.Line]
	n := len(text)
	spans := make([]Span, 0, len(l.spans))
	for _, s := range l.spans {
		switch {
		case c.Index > s.Start && c.Index <= s.End:
			s.End += n
		case c.Index <= s.Start:
			s.Start += n
			s.End += n
		}
		spans = append(spans, s)
	}
	l.text = l.text[:c.Index] + text + l.text[c.Index:]
	l.spans = spans
	b.lines[c.Line] = l
	return cursor.New(c.Line, c.Index+n), nil
}

// Delete removes the text covered by the given bounds and returns the
// cursor at the deletion point. Lines strictly inside the bounds are
// removed; the first and last lines merge.
func (b *Buffer) Delete(bounds cursor.Bounds) (cursor.Cursor, error) {
	if err := b.check(bounds.Start); err != nil {
		return bounds.Start, err
	}
	if err := b.check(bounds.End); err != nil {
		return bounds.Start, err
	}
	start, end := bounds.Start, bounds.End
	if start.Line == end.Line {
		l := b.lines[start.Line]
		cut := end.Index - start.Index
		spans := make([]Span, 0, len(l.spans))
		for _, s := range l.spans {
			s.Start = collapse(s.Start, start.Index, end.Index, cut)
			s.End = collapse(s.End, start.Index, end.Index, cut)
			if s.Len() > 0 {
				spans = append(spans, s)
			}
		}
		l.text = l.text[:start.Index] + l.text[end.Index:]
		l.spans = spans
		b.lines[start.Line] = l
		return start, nil
	}

	first, last := b.lines[start.Line], b.lines[end.Line]
	spans := make([]Span, 0, len(first.spans)+len(last.spans))
	for _, s := range first.spans {
		if s.Start >= start.Index {
			break
		}
		if s.End > start.Index {
			s.End = start.Index
		}
		spans = append(spans, s)
	}
	shift := start.Index - end.Index
	for _, s := range last.spans {
		if s.End <= end.Index {
			continue
		}
		if s.Start < end.Index {
			s.Start = end.Index
		}
		s.Start += shift
		s.End += shift
		spans = append(spans, s)
	}
	merged := Line{
		text:   first.text[:start.Index] + last.text[end.Index:],
		spans:  spans,
		ending: last.ending,
	}
	b.lines[start.Line] = merged
	b.lines = append(b.lines[:start.Line+1], b.lines[end.Line+1:]...)
	return start, nil
}

// collapse maps a byte offset across the removal of [start, end).
func collapse(p, start, end, cut int) int {
	switch {
	case p <= start:
		return p
	case p < end:
		return start
	default:
		return p - cut
	}
}

// SplitLine breaks the line at the cursor. The remainder of the line
// moves to a new following line; the cursor's line takes a line-feed
// ending and the new line inherits the original ending.
func (b *Buffer) SplitLine(c cursor.Cursor) error {
	if err := b.check(c); err != nil {
		return err
	}
	l := b.lines[c.Line]
	var head, tail []Span
	for _, s := range l.spans {
		switch {
		case s.End <= c.Index:
			head = append(head, s)
		case s.Start >= c.Index:
			tail = append(tail, Span{Start: s.Start - c.Index, End: s.End - c.Index, Section: s.Section})
		default:
			head = append(head, Span{Start: s.Start, End: c.Index, Section: s.Section})
			tail = append(tail, Span{Start: 0, End: s.End - c.Index, Section: s.Section})
		}
	}
	next := Line{text: l.text[c.Index:], spans: tail, ending: l.ending}
	l.text = l.text[:c.Index]
	l.spans = head
	l.ending = EndingLF
	b.lines[c.Line] = l
	b.lines = append(b.lines[:c.Line+1], append([]Line{next}, b.lines[c.Line+1:]...)...)
	return nil
}

// JoinLines merges line i+1 into line i, adopting the absorbed line's
// ending. The joined line keeps both lines' spans.
func (b *Buffer) JoinLines(i int) error {
	if i < 0 || i+1 >= len(b.lines) {
		return fmt.Errorf("%w: cannot join line %d of %d", ErrOutOfBounds, i, len(b.lines))
	}
	l, next := b.lines[i], b.lines[i+1]
	shift := len(l.text)
	for _, s := range next.spans {
		l.spans = append(l.spans, Span{Start: s.Start + shift, End: s.End + shift, Section: s.Section})
	}
	l.text += next.text
	l.ending = next.ending
	b.lines[i] = l
	b.lines = append(b.lines[:i+1], b.lines[i+2:]...)
	return nil
}
