package key

import (
	"github.com/dshills/inkwell/buffer"
	"github.com/dshills/inkwell/editor"
	"github.com/dshills/inkwell/shape"
)

// Translate maps a key event to its editor action. Released events and
// keys without an editing meaning (modifiers, Tab, unhandled keys)
// translate to nothing.
func Translate(ev Event) (editor.Action, bool) {
	if !ev.Pressed {
		return editor.Action{}, false
	}
	switch ev.Key {
	case KeyRune:
		if ev.Rune == 0 {
			return editor.Action{}, false
		}
		return editor.Insert(ev.Rune), true
	case KeySpace:
		return editor.Insert(' '), true
	case KeyEnter:
		return editor.Enter(), true
	case KeyBackspace:
		return editor.Backspace(), true
	case KeyDelete:
		return editor.Delete(), true
	case KeyLeft:
		return editor.Move(editor.MotionLeft), true
	case KeyRight:
		return editor.Move(editor.MotionRight), true
	case KeyUp:
		return editor.Move(editor.MotionUp), true
	case KeyDown:
		return editor.Move(editor.MotionDown), true
	case KeyHome:
		return editor.Move(editor.MotionHome), true
	case KeyEnd:
		return editor.Move(editor.MotionEnd), true
	case KeyPageUp:
		return editor.Move(editor.MotionPageUp), true
	case KeyPageDown:
		return editor.Move(editor.MotionPageDown), true
	default:
		return editor.Action{}, false
	}
}

// Target is one editable text node as seen by keyboard dispatch: its
// buffer, its persistent editor state, and the external styled sections
// the buffer reconciles back into after edits.
type Target struct {
	Buffer   *buffer.Buffer
	State    *editor.State
	Sections []buffer.Section
}

// Dispatch applies one frame's key events to the targets, in order.
// Each pressed event with an editing meaning becomes one action applied
// through a session on every target; after the batch, each target's
// styled sections are reconciled from its buffer. The layout is the
// shared shaping context for caret-affecting actions.
func Dispatch(layout shape.Layout, events []Event, targets ...*Target) error {
	edited := false
	for _, ev := range events {
		action, ok := Translate(ev)
		if !ok {
			continue
		}
		edited = true
		for _, t := range targets {
			if err := t.State.Resume(t.Buffer).Apply(layout, action); err != nil {
				return err
			}
		}
	}
	if !edited {
		return nil
	}
	for _, t := range targets {
		t.Sections = Reconcile(t.Buffer, t.Sections)
	}
	return nil
}
