package mouse

import (
	"math"
	"time"
)

const (
	// HistoryCapacity is the number of recent clicks retained.
	HistoryCapacity = 4
	// maxClickDistance is the spatial threshold, in pixels, between
	// adjacent clicks of a multi-click.
	maxClickDistance = 2.0
	// maxClickInterval is the temporal threshold between adjacent
	// clicks of a multi-click.
	maxClickInterval = 500 * time.Millisecond
)

// Point is a pixel position.
type Point struct {
	X float64
	Y float64
}

// Distance returns the Euclidean distance between two points.
func (p Point) Distance(other Point) float64 {
	return math.Hypot(p.X-other.X, p.Y-other.Y)
}

// entry is one recorded click.
type entry struct {
	pos Point
	at  time.Time
}

// ClickHistory is a bounded most-recent-first record of left clicks for
// one pointer device, used to classify a new click as single, double,
// or triple. It is process-wide state owned by the Dispatcher;
// acceptable only because input dispatch is single-threaded and
// strictly ordered.
type ClickHistory struct {
	entries []entry
}

// Record appends a click, evicting the oldest entries once the history
// would exceed its capacity. A zero timestamp falls back to time.Now.
func (h *ClickHistory) Record(pos Point, at time.Time) {
	if at.IsZero() {
		at = time.Now()
	}
	for len(h.entries) >= HistoryCapacity {
		h.entries = h.entries[:len(h.entries)-1]
	}
	h.entries = append([]entry{{pos: pos, at: at}}, h.entries...)
}

// Len returns the number of recorded clicks.
func (h *ClickHistory) Len() int {
	return len(h.entries)
}

// IsNClick reports whether the most recent n clicks form an n-click:
// the history holds at least n entries and every adjacent pair among
// them is within the spatial and temporal thresholds.
func (h *ClickHistory) IsNClick(n int) bool {
	if len(h.entries) < n {
		return false
	}
	for i := 0; i+1 < n; i++ {
		a, b := h.entries[i], h.entries[i+1]
		if a.pos.Distance(b.pos) > maxClickDistance {
			return false
		}
		if a.at.Sub(b.at) > maxClickInterval {
			return false
		}
	}
	return true
}

// Classify returns the multiplicity of the most recently recorded
// click, preferring triple over double over single. Classifying with an
// empty history is a programming error and panics.
func (h *ClickHistory) Classify() int {
	switch {
	case h.IsNClick(3):
		return 3
	case h.IsNClick(2):
		return 2
	case h.IsNClick(1):
		return 1
	default:
		panic("mouse: classify with empty click history")
	}
}
