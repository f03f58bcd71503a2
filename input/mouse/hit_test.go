package mouse

import (
	"testing"

	"github.com/dshills/inkwell/buffer"
	"github.com/dshills/inkwell/shape"
)

func shapedRegion(t *testing.T, id NodeID, center Point, sections ...buffer.Section) Region {
	t.Helper()
	buf := buffer.FromSections(sections)
	sh := shape.NewShaper(shape.Metrics{CellWidth: 10, LineHeight: 16})
	return Region{ID: id, Buffer: buf, Layout: sh.Shape(buf), Center: center}
}

func TestHitTestResolvesSection(t *testing.T) {
	// "hello world" is 110x16px, centered at (100, 100): the box spans
	// x [45, 155], y [92, 108].
	region := shapedRegion(t, 7, Point{X: 100, Y: 100},
		buffer.Section{Text: "hello "},
		buffer.Section{Text: "world"},
	)

	hit, ok := HitTest(Point{X: 130, Y: 100}, []Region{region})
	if !ok {
		t.Fatal("expected a hit")
	}
	if hit.ID != 7 {
		t.Errorf("ID = %d, want 7", hit.ID)
	}
	if hit.Section != 1 {
		t.Errorf("Section = %d, want 1", hit.Section)
	}
	if hit.Pos.X != 85 || hit.Pos.Y != 8 {
		t.Errorf("Pos = %v, want (85, 8)", hit.Pos)
	}
}

func TestHitTestMiss(t *testing.T) {
	region := shapedRegion(t, 1, Point{X: 100, Y: 100}, buffer.Section{Text: "hi"})
	if _, ok := HitTest(Point{X: 300, Y: 300}, []Region{region}); ok {
		t.Error("pointer outside every region should miss")
	}
}

func TestHitTestFirstMatchWins(t *testing.T) {
	// Two regions sharing a center: iteration order decides, not
	// stacking order.
	a := shapedRegion(t, 1, Point{X: 50, Y: 50}, buffer.Section{Text: "aaaa"})
	b := shapedRegion(t, 2, Point{X: 50, Y: 50}, buffer.Section{Text: "bbbb"})

	hit, ok := HitTest(Point{X: 50, Y: 50}, []Region{a, b})
	if !ok {
		t.Fatal("expected a hit")
	}
	if hit.ID != 1 {
		t.Errorf("ID = %d, want first region", hit.ID)
	}
}

func TestHitTestSkipsNilLayout(t *testing.T) {
	bare := Region{ID: 1, Center: Point{X: 50, Y: 50}}
	real := shapedRegion(t, 2, Point{X: 50, Y: 50}, buffer.Section{Text: "text"})

	hit, ok := HitTest(Point{X: 50, Y: 50}, []Region{bare, real})
	if !ok {
		t.Fatal("expected a hit")
	}
	if hit.ID != 2 {
		t.Errorf("ID = %d, want 2", hit.ID)
	}
}

func TestHitTestEdgeInclusive(t *testing.T) {
	// "hi" is 20x16px centered at (50, 50): the box spans x [40, 60].
	region := shapedRegion(t, 3, Point{X: 50, Y: 50}, buffer.Section{Text: "hi"})

	if _, ok := HitTest(Point{X: 40, Y: 50}, []Region{region}); !ok {
		t.Error("left edge should hit")
	}
	if _, ok := HitTest(Point{X: 60, Y: 58}, []Region{region}); !ok {
		t.Error("bottom-right corner should hit")
	}
	if _, ok := HitTest(Point{X: 39.9, Y: 50}, []Region{region}); ok {
		t.Error("just outside the left edge should miss")
	}
}
