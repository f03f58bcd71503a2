package render

import (
	"testing"

	"github.com/dshills/inkwell/cursor"
	"github.com/dshills/inkwell/shape"
)

func TestSelectionHighlightFullLine(t *testing.T) {
	run := twoGlyphRun()
	bounds := cursor.NewBounds(cursor.New(0, 0), cursor.New(0, 2))
	x, y, w, ok := SelectionHighlight(bounds, 100, run)
	if !ok {
		t.Fatal("expected a highlight")
	}
	if x != 0 || y != 0 || w != 20 {
		t.Errorf("highlight = (%g, %g, %g), want (0, 0, 20)", x, y, w)
	}
}

func TestSelectionHighlightPartial(t *testing.T) {
	run := twoGlyphRun()
	bounds := cursor.NewBounds(cursor.New(0, 1), cursor.New(0, 2))
	x, _, w, ok := SelectionHighlight(bounds, 100, run)
	if !ok {
		t.Fatal("expected a highlight")
	}
	if x != 10 || w != 10 {
		t.Errorf("highlight = (%g, %g), want (10, 10)", x, w)
	}
}

func TestSelectionHighlightOutsideLine(t *testing.T) {
	run := twoGlyphRun()
	bounds := cursor.NewBounds(cursor.New(2, 0), cursor.New(3, 1))
	if _, _, _, ok := SelectionHighlight(bounds, 100, run); ok {
		t.Error("run outside the bounds should yield no highlight")
	}
}

func TestSelectionHighlightEmptySelection(t *testing.T) {
	run := twoGlyphRun()
	bounds := cursor.NewBounds(cursor.New(0, 1), cursor.New(0, 1))
	if _, _, _, ok := SelectionHighlight(bounds, 100, run); ok {
		t.Error("an empty selection should highlight nothing")
	}
}

func TestSelectionHighlightExtendsToEdge(t *testing.T) {
	// Selecting from mid-line to a later line extends the highlight to
	// the buffer's right edge.
	run := twoGlyphRun()
	bounds := cursor.NewBounds(cursor.New(0, 1), cursor.New(2, 0))
	x, _, w, ok := SelectionHighlight(bounds, 100, run)
	if !ok {
		t.Fatal("expected a highlight")
	}
	if x != 10 || w != 90 {
		t.Errorf("highlight = (%g, %g), want (10, 90)", x, w)
	}
}

func TestSelectionHighlightExtendsToEdgeRTL(t *testing.T) {
	// An RTL run continuing into the selection extends to its left edge.
	run := shape.Run{
		Line:       0,
		Text:       "ab",
		LineHeight: 16,
		RTL:        true,
		Glyphs: []shape.Glyph{
			{Start: 1, End: 2, X: 80, W: 10, RTL: true},
			{Start: 0, End: 1, X: 90, W: 10, RTL: true},
		},
	}
	bounds := cursor.NewBounds(cursor.New(0, 0), cursor.New(1, 0))
	x, _, w, ok := SelectionHighlight(bounds, 100, run)
	if !ok {
		t.Fatal("expected a highlight")
	}
	if x != 0 || w != 100 {
		t.Errorf("RTL highlight = (%g, %g), want (0, 100)", x, w)
	}
}

func TestSelectionHighlightEmptyInteriorLine(t *testing.T) {
	// A glyphless run strictly between the bounds highlights the whole
	// buffer width.
	run := shape.Run{Line: 1, LineTop: 16, LineHeight: 16}
	bounds := cursor.NewBounds(cursor.New(0, 0), cursor.New(2, 1))
	x, y, w, ok := SelectionHighlight(bounds, 100, run)
	if !ok {
		t.Fatal("expected a highlight")
	}
	if x != 0 || y != 16 || w != 100 {
		t.Errorf("highlight = (%g, %g, %g), want (0, 16, 100)", x, y, w)
	}
}

func TestSelectionHighlightEmptyEndLine(t *testing.T) {
	// A glyphless run on the bounds' end line highlights nothing.
	run := shape.Run{Line: 2, LineTop: 32, LineHeight: 16}
	bounds := cursor.NewBounds(cursor.New(0, 0), cursor.New(2, 0))
	if _, _, _, ok := SelectionHighlight(bounds, 100, run); ok {
		t.Error("glyphless end line should highlight nothing")
	}
}

func TestSelectionHighlightMiddleLine(t *testing.T) {
	// A line strictly between the bounds is fully selected and extends
	// to the edge.
	run := twoGlyphRun()
	run.Line = 1
	run.LineTop = 16
	bounds := cursor.NewBounds(cursor.New(0, 1), cursor.New(2, 1))
	x, _, w, ok := SelectionHighlight(bounds, 100, run)
	if !ok {
		t.Fatal("expected a highlight")
	}
	if x != 0 || w != 100 {
		t.Errorf("highlight = (%g, %g), want (0, 100)", x, w)
	}
}

func TestSelectionHighlightClusterGranularity(t *testing.T) {
	// One glyph holding two graphemes: selecting the first highlights
	// half the glyph.
	run := shape.Run{
		Line:       0,
		Text:       "éé",
		LineHeight: 16,
		Glyphs:     []shape.Glyph{{Start: 0, End: 4, X: 0, W: 12}},
	}
	bounds := cursor.NewBounds(cursor.New(0, 0), cursor.New(0, 2))
	x, _, w, ok := SelectionHighlight(bounds, 100, run)
	if !ok {
		t.Fatal("expected a highlight")
	}
	if x != 0 || w != 6 {
		t.Errorf("highlight = (%g, %g), want (0, 6)", x, w)
	}
}

func TestSelectionHighlightPure(t *testing.T) {
	run := twoGlyphRun()
	bounds := cursor.NewBounds(cursor.New(0, 0), cursor.New(0, 2))
	x1, y1, w1, ok1 := SelectionHighlight(bounds, 100, run)
	x2, y2, w2, ok2 := SelectionHighlight(bounds, 100, run)
	if x1 != x2 || y1 != y2 || w1 != w2 || ok1 != ok2 {
		t.Error("repeated calls with unchanged inputs should be identical")
	}
}
