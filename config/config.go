// Package config loads the engine's small appearance configuration:
// per-node caret and selection overrides, falling back to the engine
// defaults (white one-pixel caret, black selection) for anything
// absent.
package config

import (
	"fmt"
	"os"

	"github.com/lucasb-eyer/go-colorful"
	"gopkg.in/yaml.v3"

	"github.com/dshills/inkwell/render"
)

// Appearance is the YAML shape of an appearance file. Empty fields keep
// their defaults.
type Appearance struct {
	Caret struct {
		Color string  `yaml:"color"`
		Width float64 `yaml:"width"`
	} `yaml:"caret"`
	Selection struct {
		Color string `yaml:"color"`
	} `yaml:"selection"`
}

// Parse decodes appearance YAML into render configs. Colors are hex
// strings ("#rrggbb" or "#rgb").
func Parse(data []byte) (render.CaretConfig, render.SelectionAppearance, error) {
	caret := render.DefaultCaretConfig()
	sel := render.DefaultSelectionAppearance()

	var a Appearance
	if err := yaml.Unmarshal(data, &a); err != nil {
		return caret, sel, fmt.Errorf("parse appearance: %w", err)
	}
	if a.Caret.Color != "" {
		c, err := colorful.Hex(a.Caret.Color)
		if err != nil {
			return caret, sel, fmt.Errorf("caret color: %w", err)
		}
		caret.Color = c
	}
	if a.Caret.Width > 0 {
		caret.Width = a.Caret.Width
	}
	if a.Selection.Color != "" {
		c, err := colorful.Hex(a.Selection.Color)
		if err != nil {
			return caret, sel, fmt.Errorf("selection color: %w", err)
		}
		sel.Color = c
	}
	return caret, sel, nil
}

// Load reads and parses an appearance file.
func Load(path string) (render.CaretConfig, render.SelectionAppearance, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return render.DefaultCaretConfig(), render.DefaultSelectionAppearance(),
			fmt.Errorf("read appearance file: %w", err)
	}
	return Parse(data)
}
