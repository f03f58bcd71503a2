package mouse

import (
	"github.com/dshills/inkwell/buffer"
	"github.com/dshills/inkwell/shape"
)

// NodeID identifies a displayed text node to the host.
type NodeID uint64

// Region is one displayed text node's hit-testing record: its buffer,
// its layout, and the pixel position of its center in window space. The
// region's bounds derive from the center and the layout's size.
type Region struct {
	ID     NodeID
	Buffer *buffer.Buffer
	Layout shape.Layout
	Center Point
}

// HitResult describes a resolved pointer hit.
type HitResult struct {
	// ID is the hit node.
	ID NodeID
	// Section is the index of the styled section covering the hit
	// offset, so the host can notify only the relevant sub-range.
	Section int
	// Pos is the pointer position in the region's local top-left-origin
	// coordinate space.
	Pos Point
}

// HitTest resolves a window-space pointer position against a set of
// regions. The first region in iteration order whose bounds contain the
// pointer and whose layout resolves an offset wins; stacking order is
// not consulted. Reports false when nothing is hit.
func HitTest(pointer Point, regions []Region) (HitResult, bool) {
	for _, r := range regions {
		if r.Layout == nil {
			continue
		}
		w, h := r.Layout.Size()
		left := r.Center.X - w/2
		top := r.Center.Y - h/2
		if pointer.X < left || pointer.X > left+w || pointer.Y < top || pointer.Y > top+h {
			continue
		}
		local := Point{X: pointer.X - left, Y: pointer.Y - top}
		c, ok := r.Layout.Hit(local.X, local.Y)
		if !ok {
			continue
		}
		section := 0
		if r.Buffer != nil {
			if line, ok := r.Buffer.Line(c.Line); ok {
				section = line.SectionAt(c.Index)
			}
		}
		return HitResult{ID: r.ID, Section: section, Pos: local}, true
	}
	return HitResult{}, false
}
