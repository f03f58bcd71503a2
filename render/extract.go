package render

import (
	"github.com/dshills/inkwell/editor"
	"github.com/dshills/inkwell/shape"
)

// ExtractCaret computes the caret draw rectangle for a node from its
// committed editor state: one Rect per run where the caret resolves,
// which is at most one for well-formed layouts. Returns nil when no
// cursor has been committed yet.
func ExtractCaret(state *editor.State, cfg CaretConfig, runs []shape.Run) []Rect {
	c, ok := state.Cursor()
	if !ok {
		return nil
	}
	var rects []Rect
	for _, run := range runs {
		x, y, ok := CaretPosition(c, run)
		if !ok {
			continue
		}
		rects = append(rects, Rect{
			X:     x,
			Y:     y,
			W:     cfg.Width,
			H:     run.LineHeight,
			Color: cfg.Color,
		})
	}
	return rects
}

// ExtractSelection computes the selection highlight rectangles for a
// node from its committed editor state: one Rect per run carrying a
// highlighted span. Returns nil when no selection is active.
func ExtractSelection(state *editor.State, cfg SelectionAppearance, bufferWidth float64, runs []shape.Run) []Rect {
	if state.Selection().IsNone() {
		return nil
	}
	bounds, ok := state.SelectionBounds()
	if !ok {
		return nil
	}
	var rects []Rect
	for _, run := range runs {
		x, y, w, ok := SelectionHighlight(bounds, bufferWidth, run)
		if !ok {
			continue
		}
		rects = append(rects, Rect{
			X:     x,
			Y:     y,
			W:     w,
			H:     run.LineHeight,
			Color: cfg.Color,
		})
	}
	return rects
}
