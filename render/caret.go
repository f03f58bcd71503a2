package render

import (
	"github.com/rivo/uniseg"

	"github.com/dshills/inkwell/cursor"
	"github.com/dshills/inkwell/shape"
)

// CaretPosition maps a cursor to its pixel position within one layout
// run. It reports false when the cursor's line is not the run's line.
// The x coordinate is the caret's left edge in run-local pixels, the y
// coordinate is the run's top. Pure function; callable once per visible
// run per frame.
func CaretPosition(c cursor.Cursor, run shape.Run) (x, y float64, ok bool) {
	glyph, offset, ok := caretGlyph(c, run)
	if !ok {
		return 0, 0, false
	}
	switch {
	case glyph < len(run.Glyphs):
		g := run.Glyphs[glyph]
		if g.RTL {
			x = g.X + g.W - offset
		} else {
			x = g.X + offset
		}
	case len(run.Glyphs) > 0:
		// Trailing edge of the last glyph.
		g := run.Glyphs[len(run.Glyphs)-1]
		if g.RTL {
			x = g.X
		} else {
			x = g.X + g.W
		}
	default:
		// Empty line: caret at column 0.
		x = 0
	}
	return x, run.LineTop, true
}

// caretGlyph locates the glyph holding the cursor and the x offset into
// it. A cursor strictly inside a glyph's byte range (a multi-codepoint
// cluster shaped as one glyph) interpolates the offset proportionally by
// grapheme count. A cursor at or past the last glyph's end yields the
// index one past the glyphs; an empty line yields glyph 0.
func caretGlyph(c cursor.Cursor, run shape.Run) (glyph int, offset float64, ok bool) {
	if c.Line != run.Line {
		return 0, 0, false
	}
	for i, g := range run.Glyphs {
		if c.Index == g.Start {
			return i, 0, true
		}
		if c.Index > g.Start && c.Index < g.End {
			before, total := 0, 0
			pos := g.Start
			state := -1
			rest := run.Text[g.Start:g.End]
			for len(rest) > 0 {
				var cluster string
				cluster, rest, _, state = uniseg.FirstGraphemeClusterInString(rest, state)
				if pos < c.Index {
					before++
				}
				total++
				pos += len(cluster)
			}
			return i, g.W * float64(before) / float64(total), true
		}
	}
	if len(run.Glyphs) == 0 {
		return 0, 0, true
	}
	if c.Index >= run.Glyphs[len(run.Glyphs)-1].End {
		return len(run.Glyphs), 0, true
	}
	return 0, 0, false
}
