package shape

import "github.com/dshills/inkwell/cursor"

// Glyph is one shaped glyph within a run: the byte range of the cluster
// it renders, its pixel position and advance width, and its direction.
type Glyph struct {
	// Start is the inclusive byte offset of the glyph's cluster within
	// the run's text.
	Start int
	// End is the exclusive byte offset of the glyph's cluster.
	End int
	// X is the glyph's left edge in run-local pixels.
	X float64
	// W is the glyph's advance width in pixels.
	W float64
	// RTL is true if the glyph belongs to a right-to-left level.
	RTL bool
}

// Run is one shaped, positioned physical line of glyphs, produced by a
// layout engine and read-only to the editing core.
type Run struct {
	// Line is the buffer line index this run lays out.
	Line int
	// Text is the line's raw text.
	Text string
	// LineTop is the pixel offset of the run's top edge.
	LineTop float64
	// LineHeight is the run's height in pixels.
	LineHeight float64
	// RTL is true if the whole run is right-to-left.
	RTL bool
	// Glyphs are the run's glyphs in visual order.
	Glyphs []Glyph
}

// Layout is the read-only view of a laid-out buffer that the editing
// core consumes: its shaped runs, its pixel size, and pixel-to-cursor
// hit resolution.
type Layout interface {
	// Runs returns the layout's shaped runs in line order.
	Runs() []Run
	// Size returns the layout's pixel width and height.
	Size() (w, h float64)
	// Hit resolves a layout-local pixel position to a cursor.
	// It reports false only when the layout holds no lines.
	Hit(x, y float64) (cursor.Cursor, bool)
}
