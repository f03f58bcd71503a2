package render

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/dshills/inkwell/buffer"
	"github.com/dshills/inkwell/cursor"
	"github.com/dshills/inkwell/editor"
	"github.com/dshills/inkwell/shape"
)

func TestDefaultConfigs(t *testing.T) {
	caret := DefaultCaretConfig()
	if caret.Width != 1.0 {
		t.Errorf("default caret width = %g, want 1", caret.Width)
	}
	if caret.Color.R != 1 || caret.Color.G != 1 || caret.Color.B != 1 {
		t.Errorf("default caret color = %v, want white", caret.Color)
	}
	sel := DefaultSelectionAppearance()
	if sel.Color.R != 0 || sel.Color.G != 0 || sel.Color.B != 0 {
		t.Errorf("default selection color = %v, want black", sel.Color)
	}
}

func TestExtractCaret(t *testing.T) {
	buf := buffer.FromSections([]buffer.Section{{Text: "ab\ncd"}})
	layout := shape.NewShaper(shape.Metrics{CellWidth: 10, LineHeight: 16}).Shape(buf)
	state := editor.NewState()
	state.Resume(buf).WithEditor(func(e *editor.Editor) {
		e.SetCursor(cursor.New(1, 1))
	})

	got := ExtractCaret(state, DefaultCaretConfig(), layout.Runs())
	want := []Rect{{X: 10, Y: 16, W: 1, H: 16, Color: DefaultCaretConfig().Color}}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("caret rects mismatch (-want +got):\n%s", diff)
	}
}

func TestExtractCaretNoCursor(t *testing.T) {
	buf := buffer.FromSections([]buffer.Section{{Text: "ab"}})
	layout := shape.NewShaper(shape.DefaultMetrics()).Shape(buf)
	if got := ExtractCaret(editor.NewState(), DefaultCaretConfig(), layout.Runs()); got != nil {
		t.Errorf("fresh state should extract no caret, got %v", got)
	}
}

func TestExtractSelection(t *testing.T) {
	buf := buffer.FromSections([]buffer.Section{{Text: "ab\ncd"}})
	layout := shape.NewShaper(shape.Metrics{CellWidth: 10, LineHeight: 16}).Shape(buf)
	state := editor.NewState()
	state.Resume(buf).WithEditor(func(e *editor.Editor) {
		e.SetSelection(cursor.Normal(cursor.New(0, 1)))
		e.SetCursor(cursor.New(1, 1))
	})

	width, _ := layout.Size()
	got := ExtractSelection(state, DefaultSelectionAppearance(), width, layout.Runs())
	want := []Rect{
		{X: 10, Y: 0, W: 10, H: 16},
		{X: 0, Y: 16, W: 10, H: 16},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("selection rects mismatch (-want +got):\n%s", diff)
	}
}

func TestExtractSelectionNone(t *testing.T) {
	buf := buffer.FromSections([]buffer.Section{{Text: "ab"}})
	layout := shape.NewShaper(shape.DefaultMetrics()).Shape(buf)
	state := editor.NewState()
	state.Resume(buf).WithEditor(func(e *editor.Editor) {
		e.SetCursor(cursor.New(0, 1))
	})
	width, _ := layout.Size()
	if got := ExtractSelection(state, DefaultSelectionAppearance(), width, layout.Runs()); got != nil {
		t.Errorf("no selection should extract no rects, got %v", got)
	}
}
