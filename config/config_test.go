package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/lucasb-eyer/go-colorful"

	"github.com/dshills/inkwell/render"
)

func TestParseEmptyKeepsDefaults(t *testing.T) {
	caret, sel, err := Parse(nil)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if caret != render.DefaultCaretConfig() {
		t.Errorf("caret = %+v, want defaults", caret)
	}
	if sel != render.DefaultSelectionAppearance() {
		t.Errorf("selection = %+v, want defaults", sel)
	}
}

func TestParseOverrides(t *testing.T) {
	data := []byte(`
caret:
  color: "#ff0000"
  width: 2.5
selection:
  color: "#00ff00"
`)
	caret, sel, err := Parse(data)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if want, _ := colorful.Hex("#ff0000"); caret.Color != want {
		t.Errorf("caret color = %v, want %v", caret.Color, want)
	}
	if caret.Width != 2.5 {
		t.Errorf("caret width = %v, want 2.5", caret.Width)
	}
	if want, _ := colorful.Hex("#00ff00"); sel.Color != want {
		t.Errorf("selection color = %v, want %v", sel.Color, want)
	}
}

func TestParsePartialOverride(t *testing.T) {
	caret, sel, err := Parse([]byte("caret:\n  width: 3\n"))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if caret.Width != 3 {
		t.Errorf("caret width = %v, want 3", caret.Width)
	}
	if caret.Color != render.DefaultCaretConfig().Color {
		t.Error("unset caret color should keep its default")
	}
	if sel != render.DefaultSelectionAppearance() {
		t.Error("unset selection should keep its default")
	}
}

func TestParseBadColor(t *testing.T) {
	if _, _, err := Parse([]byte("caret:\n  color: \"red\"\n")); err == nil {
		t.Error("a non-hex color should fail")
	}
}

func TestParseBadYAML(t *testing.T) {
	if _, _, err := Parse([]byte("caret: [")); err == nil {
		t.Error("malformed YAML should fail")
	}
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "appearance.yaml")
	if err := os.WriteFile(path, []byte("caret:\n  width: 4\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	caret, _, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if caret.Width != 4 {
		t.Errorf("caret width = %v, want 4", caret.Width)
	}
}

func TestLoadMissingFile(t *testing.T) {
	caret, sel, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	if err == nil {
		t.Fatal("missing file should fail")
	}
	if caret != render.DefaultCaretConfig() || sel != render.DefaultSelectionAppearance() {
		t.Error("errors should still return usable defaults")
	}
}
