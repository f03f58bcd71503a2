package render

import (
	"testing"

	"github.com/dshills/inkwell/cursor"
	"github.com/dshills/inkwell/shape"
)

// twoGlyphRun is a line "AB" shaped as two glyphs of width 10 at x=0
// and x=10.
func twoGlyphRun() shape.Run {
	return shape.Run{
		Line:       0,
		Text:       "AB",
		LineTop:    0,
		LineHeight: 16,
		Glyphs: []shape.Glyph{
			{Start: 0, End: 1, X: 0, W: 10},
			{Start: 1, End: 2, X: 10, W: 10},
		},
	}
}

func TestCaretPosition(t *testing.T) {
	run := twoGlyphRun()
	tests := []struct {
		name  string
		c     cursor.Cursor
		wantX float64
	}{
		{"line start", cursor.New(0, 0), 0},
		{"between glyphs", cursor.New(0, 1), 10},
		{"line end", cursor.New(0, 2), 20},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			x, y, ok := CaretPosition(tt.c, run)
			if !ok {
				t.Fatal("expected a caret position")
			}
			if x != tt.wantX {
				t.Errorf("x = %g, want %g", x, tt.wantX)
			}
			if y != run.LineTop {
				t.Errorf("y = %g, want line top %g", y, run.LineTop)
			}
		})
	}
}

func TestCaretPositionWrongLine(t *testing.T) {
	if _, _, ok := CaretPosition(cursor.New(1, 0), twoGlyphRun()); ok {
		t.Error("cursor on another line should yield no caret")
	}
}

func TestCaretPositionEmptyLine(t *testing.T) {
	run := shape.Run{Line: 0, LineTop: 32, LineHeight: 16}
	x, y, ok := CaretPosition(cursor.New(0, 0), run)
	if !ok {
		t.Fatal("expected a caret position on an empty line")
	}
	if x != 0 || y != 32 {
		t.Errorf("caret = (%g, %g), want (0, 32)", x, y)
	}
}

func TestCaretPositionClusterInterpolation(t *testing.T) {
	// Two two-byte graphemes shaped as one glyph of width 12: a cursor
	// between them sits halfway through the glyph.
	run := shape.Run{
		Line:       0,
		Text:       "éé", // é é as precomposed two-byte runes
		LineHeight: 16,
		Glyphs:     []shape.Glyph{{Start: 0, End: 4, X: 0, W: 12}},
	}
	x, _, ok := CaretPosition(cursor.New(0, 2), run)
	if !ok {
		t.Fatal("expected a caret position")
	}
	if x != 6 {
		t.Errorf("interpolated x = %g, want 6", x)
	}
}

func TestCaretPositionRTL(t *testing.T) {
	// An RTL glyph's caret sits at its right edge.
	run := shape.Run{
		Line:       0,
		Text:       "ab",
		LineHeight: 16,
		RTL:        true,
		Glyphs: []shape.Glyph{
			{Start: 1, End: 2, X: 0, W: 10, RTL: true},
			{Start: 0, End: 1, X: 10, W: 10, RTL: true},
		},
	}
	x, _, ok := CaretPosition(cursor.New(0, 0), run)
	if !ok {
		t.Fatal("expected a caret position")
	}
	if x != 20 {
		t.Errorf("RTL caret at glyph start = %g, want right edge 20", x)
	}

	// At line end, the caret sits at the last glyph's left edge.
	x, _, ok = CaretPosition(cursor.New(0, 2), run)
	if !ok {
		t.Fatal("expected a caret position")
	}
	if x != 10 {
		t.Errorf("RTL caret at line end = %g, want 10", x)
	}
}

func TestCaretPositionPure(t *testing.T) {
	run := twoGlyphRun()
	c := cursor.New(0, 1)
	x1, y1, ok1 := CaretPosition(c, run)
	x2, y2, ok2 := CaretPosition(c, run)
	if x1 != x2 || y1 != y2 || ok1 != ok2 {
		t.Error("repeated calls with unchanged inputs should be identical")
	}
}
