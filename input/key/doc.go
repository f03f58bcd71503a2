// Package key handles keyboard input for the editing engine: logical
// key events, their translation into editor actions, per-frame dispatch
// of an event stream, and the post-edit reconciliation of buffer spans
// back into the external styled sections.
//
// Only key presses trigger edits; releases are delivered but ignored.
// Characters insert, Enter breaks the line, Backspace/Delete remove,
// and the navigation keys map to cursor motions. Modifier keys and
// unhandled keys translate to nothing.
package key
