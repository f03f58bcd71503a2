package terminal

import (
	"github.com/gdamore/tcell/v2"

	"github.com/dshills/inkwell/input/key"
	"github.com/dshills/inkwell/input/mouse"
)

// Metrics maps terminal cells to engine pixels.
type Metrics struct {
	// CellWidth is the pixel width of one terminal column.
	CellWidth float64
	// LineHeight is the pixel height of one terminal row.
	LineHeight float64
}

// DefaultMetrics returns the cell metrics used when none are configured.
func DefaultMetrics() Metrics {
	return Metrics{CellWidth: 8, LineHeight: 16}
}

// Translator converts tcell input events into engine input events,
// scaling cell coordinates to pixels. It tracks button state across
// mouse events to report press and release transitions.
type Translator struct {
	metrics Metrics
	buttons tcell.ButtonMask
}

// NewTranslator creates a translator with the given cell metrics.
func NewTranslator(m Metrics) *Translator {
	if m.CellWidth <= 0 || m.LineHeight <= 0 {
		m = DefaultMetrics()
	}
	return &Translator{metrics: m}
}

// TranslateKey converts a tcell key event. It reports false for keys
// the engine has no mapping for.
func (t *Translator) TranslateKey(ev *tcell.EventKey) (key.Event, bool) {
	k := convertKey(ev.Key())
	r := rune(0)
	if k == key.KeyRune {
		r = ev.Rune()
		if r == ' ' {
			k, r = key.KeySpace, 0
		}
	}
	if k == key.KeyNone {
		return key.Event{}, false
	}
	return key.Event{Key: k, Rune: r, Pressed: true, Time: ev.When()}, true
}

// TranslateMouse converts a tcell mouse event into a button press or
// release. Terminal mouse reports carry the current button mask, so a
// transition against the previous mask decides pressed/released.
// Motion-only events report false.
func (t *Translator) TranslateMouse(ev *tcell.EventMouse) (mouse.Event, bool) {
	x, y := ev.Position()
	prev := t.buttons
	curr := ev.Buttons() & (tcell.Button1 | tcell.Button2 | tcell.Button3)
	t.buttons = curr

	changed := prev ^ curr
	if changed == 0 {
		return mouse.Event{}, false
	}
	var btn mouse.Button
	switch {
	case changed&tcell.Button1 != 0:
		btn = mouse.ButtonLeft
	case changed&tcell.Button2 != 0:
		btn = mouse.ButtonMiddle
	default:
		btn = mouse.ButtonRight
	}
	return mouse.Event{
		X:       float64(x) * t.metrics.CellWidth,
		Y:       float64(y) * t.metrics.LineHeight,
		Button:  btn,
		Pressed: curr&changed != 0,
		Time:    ev.When(),
	}, true
}

// convertKey converts a tcell key to the engine's logical key set.
func convertKey(k tcell.Key) key.Key {
	switch k {
	case tcell.KeyRune:
		return key.KeyRune
	case tcell.KeyEnter:
		return key.KeyEnter
	case tcell.KeyTab:
		return key.KeyTab
	case tcell.KeyEscape:
		return key.KeyEscape
	case tcell.KeyBackspace, tcell.KeyBackspace2:
		return key.KeyBackspace
	case tcell.KeyDelete:
		return key.KeyDelete
	case tcell.KeyHome:
		return key.KeyHome
	case tcell.KeyEnd:
		return key.KeyEnd
	case tcell.KeyPgUp:
		return key.KeyPageUp
	case tcell.KeyPgDn:
		return key.KeyPageDown
	case tcell.KeyUp:
		return key.KeyUp
	case tcell.KeyDown:
		return key.KeyDown
	case tcell.KeyLeft:
		return key.KeyLeft
	case tcell.KeyRight:
		return key.KeyRight
	default:
		return key.KeyNone
	}
}
