package shape

import (
	"math"

	"github.com/mattn/go-runewidth"
	"github.com/rivo/uniseg"
	"golang.org/x/image/math/fixed"

	"github.com/dshills/inkwell/buffer"
	"github.com/dshills/inkwell/cursor"
)

// Metrics are the fixed cell metrics of the monospace shaper.
type Metrics struct {
	// CellWidth is the pixel advance of one display column.
	CellWidth float64
	// LineHeight is the pixel height of one line.
	LineHeight float64
}

// DefaultMetrics returns the metrics used when none are configured.
func DefaultMetrics() Metrics {
	return Metrics{CellWidth: 8, LineHeight: 16}
}

// Shaper is a reference layout engine with fixed-advance glyphs: one
// glyph per grapheme cluster, advance proportional to the cluster's
// display width. It performs no bidi resolution; every run it emits is
// left-to-right.
type Shaper struct {
	metrics Metrics
}

// NewShaper creates a shaper with the given metrics.
func NewShaper(m Metrics) *Shaper {
	if m.CellWidth <= 0 || m.LineHeight <= 0 {
		m = DefaultMetrics()
	}
	return &Shaper{metrics: m}
}

// Shape lays out the buffer into a Document. The document is a snapshot;
// reshape after every buffer mutation.
func (s *Shaper) Shape(buf *buffer.Buffer) *Document {
	cell := fixed.Int26_6(math.Round(s.metrics.CellWidth * 64))
	doc := &Document{metrics: s.metrics}
	var maxWidth fixed.Int26_6
	for i, line := range buf.Lines() {
		run := Run{
			Line:       i,
			Text:       line.Text(),
			LineTop:    float64(i) * s.metrics.LineHeight,
			LineHeight: s.metrics.LineHeight,
		}
		var pen fixed.Int26_6
		rest := line.Text()
		pos := 0
		state := -1
		for len(rest) > 0 {
			var cluster string
			cluster, rest, _, state = uniseg.FirstGraphemeClusterInString(rest, state)
			adv := cell * fixed.Int26_6(runewidth.StringWidth(cluster))
			run.Glyphs = append(run.Glyphs, Glyph{
				Start: pos,
				End:   pos + len(cluster),
				X:     pixels(pen),
				W:     pixels(adv),
			})
			pen += adv
			pos += len(cluster)
		}
		if pen > maxWidth {
			maxWidth = pen
		}
		doc.runs = append(doc.runs, run)
	}
	doc.width = pixels(maxWidth)
	doc.height = float64(len(doc.runs)) * s.metrics.LineHeight
	return doc
}

// pixels converts a 26.6 fixed-point value to float pixels.
func pixels(f fixed.Int26_6) float64 {
	return float64(f) / 64
}

// Document is a shaped buffer snapshot. It implements Layout.
type Document struct {
	metrics Metrics
	runs    []Run
	width   float64
	height  float64
}

// Runs returns the document's shaped runs in line order.
func (d *Document) Runs() []Run {
	return d.runs
}

// Size returns the document's pixel width and height.
func (d *Document) Size() (w, h float64) {
	return d.width, d.height
}

// Hit resolves a document-local pixel position to a cursor. Positions
// above the first line clamp to it, below the last line likewise; within
// a line the nearest glyph boundary wins.
func (d *Document) Hit(x, y float64) (cursor.Cursor, bool) {
	if len(d.runs) == 0 {
		return cursor.Cursor{}, false
	}
	line := int(math.Floor(y / d.metrics.LineHeight))
	if line < 0 {
		line = 0
	}
	if line >= len(d.runs) {
		line = len(d.runs) - 1
	}
	run := d.runs[line]
	for _, g := range run.Glyphs {
		if x < g.X+g.W/2 {
			return cursor.New(line, g.Start), true
		}
	}
	end := 0
	if n := len(run.Glyphs); n > 0 {
		end = run.Glyphs[n-1].End
	}
	return cursor.New(line, end), true
}
