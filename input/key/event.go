package key

import "time"

// Key represents a logical keyboard key.
// For character keys, use KeyRune and set the Rune field in Event.
type Key uint16

const (
	// KeyNone represents no key.
	KeyNone Key = iota
	// KeyRune is a character key; the character is in Event.Rune.
	KeyRune

	// Special keys
	KeyEnter
	KeySpace
	KeyTab
	KeyEscape
	KeyBackspace
	KeyDelete
	KeyHome
	KeyEnd
	KeyPageUp
	KeyPageDown

	// Arrow keys
	KeyUp
	KeyDown
	KeyLeft
	KeyRight

	// Modifier keys, delivered but currently unhandled
	KeyControl
	KeyShift
)

// String returns a string representation of the key.
func (k Key) String() string {
	switch k {
	case KeyRune:
		return "rune"
	case KeyEnter:
		return "Enter"
	case KeySpace:
		return "Space"
	case KeyTab:
		return "Tab"
	case KeyEscape:
		return "Escape"
	case KeyBackspace:
		return "Backspace"
	case KeyDelete:
		return "Delete"
	case KeyHome:
		return "Home"
	case KeyEnd:
		return "End"
	case KeyPageUp:
		return "PageUp"
	case KeyPageDown:
		return "PageDown"
	case KeyUp:
		return "Up"
	case KeyDown:
		return "Down"
	case KeyLeft:
		return "Left"
	case KeyRight:
		return "Right"
	case KeyControl:
		return "Control"
	case KeyShift:
		return "Shift"
	default:
		return "none"
	}
}

// Event represents a single key press or release event.
type Event struct {
	// Key identifies the logical key.
	Key Key
	// Rune is the character for KeyRune events.
	Rune rune
	// Pressed is true for a press, false for a release.
	Pressed bool
	// Time is when the event occurred.
	Time time.Time
}

// NewRuneEvent creates a pressed character event.
func NewRuneEvent(r rune) Event {
	return Event{Key: KeyRune, Rune: r, Pressed: true, Time: time.Now()}
}

// NewKeyEvent creates a pressed special-key event.
func NewKeyEvent(k Key) Event {
	return Event{Key: k, Pressed: true, Time: time.Now()}
}
