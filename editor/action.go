package editor

import "fmt"

// ActionKind identifies an editing action.
type ActionKind uint8

const (
	// ActionNone is the zero action; applying it does nothing.
	ActionNone ActionKind = iota
	// ActionInsert inserts one character at the cursor.
	ActionInsert
	// ActionEnter inserts a line break at the cursor.
	ActionEnter
	// ActionBackspace deletes backward from the cursor.
	ActionBackspace
	// ActionDelete deletes forward from the cursor.
	ActionDelete
	// ActionMotion moves the cursor.
	ActionMotion
	// ActionClick sets the cursor from a pixel position.
	ActionClick
	// ActionDoubleClick selects the word at a pixel position.
	ActionDoubleClick
	// ActionTripleClick selects the line at a pixel position.
	ActionTripleClick
)

// String returns a string representation of the action kind.
func (k ActionKind) String() string {
	switch k {
	case ActionInsert:
		return "insert"
	case ActionEnter:
		return "enter"
	case ActionBackspace:
		return "backspace"
	case ActionDelete:
		return "delete"
	case ActionMotion:
		return "motion"
	case ActionClick:
		return "click"
	case ActionDoubleClick:
		return "double-click"
	case ActionTripleClick:
		return "triple-click"
	default:
		return "none"
	}
}

// Motion identifies a cursor movement.
type Motion uint8

const (
	// MotionLeft moves one grapheme cluster left.
	MotionLeft Motion = iota
	// MotionRight moves one grapheme cluster right.
	MotionRight
	// MotionUp moves one line up.
	MotionUp
	// MotionDown moves one line down.
	MotionDown
	// MotionHome moves to the start of the line.
	MotionHome
	// MotionEnd moves to the end of the line.
	MotionEnd
	// MotionPageUp moves one page up.
	MotionPageUp
	// MotionPageDown moves one page down.
	MotionPageDown
)

// String returns a string representation of the motion.
func (m Motion) String() string {
	switch m {
	case MotionLeft:
		return "left"
	case MotionRight:
		return "right"
	case MotionUp:
		return "up"
	case MotionDown:
		return "down"
	case MotionHome:
		return "home"
	case MotionEnd:
		return "end"
	case MotionPageUp:
		return "page-up"
	case MotionPageDown:
		return "page-down"
	default:
		return "unknown"
	}
}

// Action is one editing action. Use the constructors; the zero Action is
// a no-op.
type Action struct {
	// Kind identifies the action.
	Kind ActionKind
	// Rune is the character for ActionInsert.
	Rune rune
	// Motion is the movement for ActionMotion.
	Motion Motion
	// X, Y are the pixel position for the click actions, in layout-local
	// coordinates.
	X, Y float64
}

// Insert returns an action inserting the given character.
func Insert(r rune) Action {
	return Action{Kind: ActionInsert, Rune: r}
}

// Enter returns the line-break action.
func Enter() Action {
	return Action{Kind: ActionEnter}
}

// Backspace returns the backward-delete action.
func Backspace() Action {
	return Action{Kind: ActionBackspace}
}

// Delete returns the forward-delete action.
func Delete() Action {
	return Action{Kind: ActionDelete}
}

// Move returns an action performing the given motion.
func Move(m Motion) Action {
	return Action{Kind: ActionMotion, Motion: m}
}

// Click returns the action placing the cursor at a pixel position.
func Click(x, y float64) Action {
	return Action{Kind: ActionClick, X: x, Y: y}
}

// DoubleClick returns the action selecting the word at a pixel position.
func DoubleClick(x, y float64) Action {
	return Action{Kind: ActionDoubleClick, X: x, Y: y}
}

// TripleClick returns the action selecting the line at a pixel position.
func TripleClick(x, y float64) Action {
	return Action{Kind: ActionTripleClick, X: x, Y: y}
}

// String returns a human-readable representation of the action.
func (a Action) String() string {
	switch a.Kind {
	case ActionInsert:
		return fmt.Sprintf("insert(%q)", a.Rune)
	case ActionMotion:
		return fmt.Sprintf("motion(%s)", a.Motion)
	case ActionClick, ActionDoubleClick, ActionTripleClick:
		return fmt.Sprintf("%s(%g,%g)", a.Kind, a.X, a.Y)
	default:
		return a.Kind.String()
	}
}
