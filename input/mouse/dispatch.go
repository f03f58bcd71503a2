package mouse

import (
	"time"

	"github.com/dshills/inkwell/buffer"
	"github.com/dshills/inkwell/editor"
	"github.com/dshills/inkwell/shape"
)

// Button represents a mouse button.
type Button uint8

const (
	// ButtonNone indicates no button.
	ButtonNone Button = iota
	// ButtonLeft is the primary (left) mouse button.
	ButtonLeft
	// ButtonMiddle is the middle mouse button.
	ButtonMiddle
	// ButtonRight is the secondary (right) mouse button.
	ButtonRight
)

// String returns a string representation of the button.
func (b Button) String() string {
	switch b {
	case ButtonLeft:
		return "left"
	case ButtonMiddle:
		return "middle"
	case ButtonRight:
		return "right"
	default:
		return "none"
	}
}

// Event is one raw pointer event in window coordinates.
type Event struct {
	// X, Y are the pointer position in window space.
	X, Y float64
	// Button is the button involved.
	Button Button
	// Pressed is true for a press, false for a release.
	Pressed bool
	// Time is when the event occurred.
	Time time.Time
}

// Dispatcher translates resolved pointer hits into editor click actions.
// It owns the process-wide ClickHistory for the primary pointer device.
type Dispatcher struct {
	history ClickHistory
}

// NewDispatcher creates a pointer dispatcher with an empty click
// history.
func NewDispatcher() *Dispatcher {
	return &Dispatcher{}
}

// History exposes the click history, readable between clicks (e.g. to
// decide whether the current click could become part of a triple).
func (d *Dispatcher) History() *ClickHistory {
	return &d.history
}

// HandleClick processes one pointer event against a resolved hit. It is
// a no-op unless the event is a left-button press with a hit. The click
// is recorded, classified (triple preferred over double over single),
// and the corresponding click action applied to the hit node's state
// and buffer through a session at the hit's local position.
func (d *Dispatcher) HandleClick(ev Event, hit HitResult, hitOK bool, state *editor.State, buf *buffer.Buffer, layout shape.Layout) error {
	if ev.Button != ButtonLeft || !ev.Pressed || !hitOK {
		return nil
	}
	d.history.Record(hit.Pos, ev.Time)
	var action editor.Action
	switch d.history.Classify() {
	case 3:
		action = editor.TripleClick(hit.Pos.X, hit.Pos.Y)
	case 2:
		action = editor.DoubleClick(hit.Pos.X, hit.Pos.Y)
	default:
		action = editor.Click(hit.Pos.X, hit.Pos.Y)
	}
	return state.Resume(buf).Apply(layout, action)
}
