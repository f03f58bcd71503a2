// Package main is a terminal demo of the inkwell editing engine: a few
// styled text nodes on a tcell screen, editable in place with keyboard
// and mouse.
package main

import (
	"flag"
	"fmt"
	"os"
	"unicode/utf8"

	"github.com/gdamore/tcell/v2"
	"github.com/lucasb-eyer/go-colorful"

	"github.com/dshills/inkwell/buffer"
	"github.com/dshills/inkwell/config"
	"github.com/dshills/inkwell/editor"
	"github.com/dshills/inkwell/host/terminal"
	"github.com/dshills/inkwell/input/key"
	"github.com/dshills/inkwell/input/mouse"
	"github.com/dshills/inkwell/render"
	"github.com/dshills/inkwell/shape"
)

func main() {
	os.Exit(run())
}

// node is one editable text block on screen.
type node struct {
	id       mouse.NodeID
	sections []buffer.Section
	buf      *buffer.Buffer
	state    *editor.State
	layout   shape.Layout
	// col, row are the node's top-left cell on screen.
	col, row int
	focused  bool
}

func run() int {
	var configPath string
	flag.StringVar(&configPath, "config", "", "Path to appearance file")
	flag.StringVar(&configPath, "c", "", "Path to appearance file (shorthand)")
	flag.Parse()

	caretCfg := render.DefaultCaretConfig()
	selCfg := render.DefaultSelectionAppearance()
	if configPath != "" {
		var err error
		caretCfg, selCfg, err = config.Load(configPath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return 1
		}
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: failed to create screen: %v\n", err)
		return 1
	}
	if err := screen.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: failed to init screen: %v\n", err)
		return 1
	}
	defer screen.Fini()
	screen.EnableMouse()

	metrics := terminal.DefaultMetrics()
	shaper := shape.NewShaper(shape.Metrics{
		CellWidth:  metrics.CellWidth,
		LineHeight: metrics.LineHeight,
	})
	translator := terminal.NewTranslator(metrics)
	pointer := mouse.NewDispatcher()

	nodes := []*node{
		newNode(1, 2, 1, buffer.Section{Text: "Click me, then type.\nDouble-click selects a word."}),
		newNode(2, 2, 5,
			buffer.Section{Text: "Styled ", Style: 1},
			buffer.Section{Text: "sections", Style: 2},
			buffer.Section{Text: " survive edits.", Style: 1},
		),
	}
	nodes[0].focused = true
	reshape(shaper, nodes)

	for {
		draw(screen, nodes, metrics, caretCfg, selCfg)

		switch ev := screen.PollEvent().(type) {
		case *tcell.EventResize:
			screen.Sync()
		case *tcell.EventKey:
			if ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC {
				return 0
			}
			kev, ok := translator.TranslateKey(ev)
			if !ok {
				continue
			}
			for _, n := range nodes {
				if !n.focused {
					continue
				}
				tgt := &key.Target{Buffer: n.buf, State: n.state, Sections: n.sections}
				if err := key.Dispatch(n.layout, []key.Event{kev}, tgt); err != nil {
					fmt.Fprintf(os.Stderr, "Error: %v\n", err)
					return 1
				}
				n.sections = tgt.Sections
			}
			reshape(shaper, nodes)
		case *tcell.EventMouse:
			mev, ok := translator.TranslateMouse(ev)
			if !ok {
				continue
			}
			hit, hitOK := mouse.HitTest(mouse.Point{X: mev.X, Y: mev.Y}, regions(nodes, metrics))
			for _, n := range nodes {
				n.focused = hitOK && n.id == hit.ID
				if !n.focused {
					continue
				}
				if err := pointer.HandleClick(mev, hit, hitOK, n.state, n.buf, n.layout); err != nil {
					fmt.Fprintf(os.Stderr, "Error: %v\n", err)
					return 1
				}
			}
		}
	}
}

func newNode(id mouse.NodeID, col, row int, sections ...buffer.Section) *node {
	return &node{
		id:       id,
		sections: sections,
		buf:      buffer.FromSections(sections),
		state:    editor.NewState(),
		col:      col,
		row:      row,
	}
}

func reshape(shaper *shape.Shaper, nodes []*node) {
	for _, n := range nodes {
		n.layout = shaper.Shape(n.buf)
	}
}

// regions builds the hit-testing records: each node's center in pixel
// space, derived from its top-left cell and its shaped size.
func regions(nodes []*node, m terminal.Metrics) []mouse.Region {
	out := make([]mouse.Region, 0, len(nodes))
	for _, n := range nodes {
		w, h := n.layout.Size()
		out = append(out, mouse.Region{
			ID:     n.id,
			Buffer: n.buf,
			Layout: n.layout,
			Center: mouse.Point{
				X: float64(n.col)*m.CellWidth + w/2,
				Y: float64(n.row)*m.LineHeight + h/2,
			},
		})
	}
	return out
}

func draw(screen tcell.Screen, nodes []*node, m terminal.Metrics, caretCfg render.CaretConfig, selCfg render.SelectionAppearance) {
	screen.Clear()
	screen.HideCursor()
	for _, n := range nodes {
		drawNode(screen, n, m, caretCfg, selCfg)
	}
	screen.Show()
}

func drawNode(screen tcell.Screen, n *node, m terminal.Metrics, caretCfg render.CaretConfig, selCfg render.SelectionAppearance) {
	w, _ := n.layout.Size()
	selection := render.ExtractSelection(n.state, selCfg, w, n.layout.Runs())
	selStyle := tcell.StyleDefault.Background(toTcell(selCfg.Color)).Foreground(tcell.ColorWhite)

	for _, run := range n.layout.Runs() {
		row := n.row + run.Line
		for _, g := range run.Glyphs {
			col := n.col + int(g.X/m.CellWidth)
			style := tcell.StyleDefault
			if covered(selection, run, g) {
				style = selStyle
			}
			r, _ := utf8.DecodeRuneInString(run.Text[g.Start:g.End])
			screen.SetContent(col, row, r, nil, style)
		}
	}

	if n.focused {
		for _, rect := range render.ExtractCaret(n.state, caretCfg, n.layout.Runs()) {
			screen.ShowCursor(n.col+int(rect.X/m.CellWidth), n.row+int(rect.Y/m.LineHeight))
		}
	}
}

// covered reports whether the glyph's cell falls inside a selection rect
// on the glyph's line.
func covered(rects []render.Rect, run shape.Run, g shape.Glyph) bool {
	for _, r := range rects {
		if r.Y != run.LineTop {
			continue
		}
		mid := g.X + g.W/2
		if mid >= r.X && mid < r.X+r.W {
			return true
		}
	}
	return false
}

func toTcell(c colorful.Color) tcell.Color {
	r, g, b := c.RGB255()
	return tcell.NewRGBColor(int32(r), int32(g), int32(b))
}
