package render

import (
	"math"

	"github.com/rivo/uniseg"

	"github.com/dshills/inkwell/cursor"
	"github.com/dshills/inkwell/shape"
)

// SelectionHighlight computes the highlighted pixel span of the
// selection bounds on one layout run. It reports false when the run's
// line falls outside the bounds or nothing on the run is selected.
//
// Selection is resolved per grapheme cluster: each glyph's width is
// split evenly across its clusters, and a cluster is selected if its end
// byte passes the start bound (on the start line) and its start byte
// precedes the end bound (on the end line); lines strictly between the
// bounds are fully selected. Contiguous selected clusters accumulate
// into one (min, max) range; the first contiguous range found is
// returned, one rectangle per run per call.
//
// A run with no glyphs strictly inside the bounds highlights the whole
// buffer width. A selection continuing past the run onto a later line
// extends the range to the run's trailing edge: the right edge for
// left-to-right runs, the left edge for right-to-left runs. Pure
// function.
func SelectionHighlight(bounds cursor.Bounds, bufferWidth float64, run shape.Run) (x, y, w float64, ok bool) {
	if !bounds.ContainsLine(run.Line) {
		return 0, 0, 0, false
	}
	var min, max float64
	have := false
	for _, g := range run.Glyphs {
		cluster := run.Text[g.Start:g.End]
		total := uniseg.GraphemeClusterCount(cluster)
		if total == 0 {
			continue
		}
		cx := g.X
		cw := g.W / float64(total)
		pos := g.Start
		state := -1
		rest := cluster
		for len(rest) > 0 {
			var cl string
			cl, rest, _, state = uniseg.FirstGraphemeClusterInString(rest, state)
			cStart, cEnd := pos, pos+len(cl)
			selected := (bounds.Start.Line != run.Line || cEnd > bounds.Start.Index) &&
				(bounds.End.Line != run.Line || cStart < bounds.End.Index)
			switch {
			case selected && !have:
				min, max = cx, cx+cw
				have = true
			case selected:
				min = math.Min(min, cx)
				max = math.Max(max, cx+cw)
			case have:
				// A contiguous selected range just ended.
				return min, run.LineTop, math.Max(0, max-min), true
			}
			cx += cw
			pos = cEnd
		}
	}

	if len(run.Glyphs) == 0 && bounds.End.Line > run.Line {
		// Empty line strictly inside the selection.
		min, max, have = 0, bufferWidth, true
	}
	if !have {
		return 0, 0, 0, false
	}
	if bounds.End.Line > run.Line {
		// Selection continues past this run; draw to its edge.
		if run.RTL {
			min = 0
		} else {
			max = bufferWidth
		}
	}
	return min, run.LineTop, math.Max(0, max-min), true
}
