package render

import "github.com/lucasb-eyer/go-colorful"

// CaretConfig is the per-node caret appearance.
type CaretConfig struct {
	// Color is the caret fill color.
	Color colorful.Color
	// Width is the caret width in pixels.
	Width float64
}

// DefaultCaretConfig returns the caret appearance used when a node has
// no override: a white caret one pixel wide.
func DefaultCaretConfig() CaretConfig {
	return CaretConfig{Color: colorful.Color{R: 1, G: 1, B: 1}, Width: 1.0}
}

// SelectionAppearance is the per-node selection highlight appearance.
type SelectionAppearance struct {
	// Color is the highlight fill color.
	Color colorful.Color
}

// DefaultSelectionAppearance returns the highlight appearance used when
// a node has no override: black.
func DefaultSelectionAppearance() SelectionAppearance {
	return SelectionAppearance{Color: colorful.Color{}}
}

// Rect is one draw rectangle handed to the renderer: either the caret
// or one contiguous highlighted sub-span of a selection on one run.
type Rect struct {
	// X, Y are the rectangle's top-left corner in layout-local pixels.
	X, Y float64
	// W, H are the rectangle's pixel size.
	W, H float64
	// Color is the fill color.
	Color colorful.Color
}
