package editor

import (
	"github.com/dshills/inkwell/buffer"
	"github.com/dshills/inkwell/cursor"
	"github.com/dshills/inkwell/shape"
)

// State is the persistent cursor/selection state attached 1:1 to a
// displayed text node. It shares the node's lifecycle and is the only
// editing state that outlives an edit batch; geometry extraction reads
// it as committed by the last Session.
type State struct {
	cur       cursor.Cursor
	hasCursor bool
	sel       cursor.Selection
	bounds    cursor.Bounds
	hasBounds bool
}

// NewState creates a fresh state with no cursor and no selection.
func NewState() *State {
	return &State{sel: cursor.NoSelection()}
}

// Cursor returns the committed cursor. It reports false until the first
// session commits.
func (s *State) Cursor() (cursor.Cursor, bool) {
	return s.cur, s.hasCursor
}

// Selection returns the committed selection.
func (s *State) Selection() cursor.Selection {
	return s.sel
}

// SelectionBounds returns the committed selection bounds. It reports
// false when no selection was active at commit time.
func (s *State) SelectionBounds() (cursor.Bounds, bool) {
	return s.bounds, s.hasBounds
}

// Resume opens a session binding this state to the buffer for one edit
// batch. If a prior session committed a cursor, the transient editor is
// re-seeded from it; otherwise the editor starts fresh at the buffer
// origin. Sessions on one buffer are strictly sequential.
func (s *State) Resume(buf *buffer.Buffer) *Session {
	ed := New(buf)
	if s.hasCursor {
		ed.SetCursor(s.cur)
		ed.SetSelection(s.sel)
	}
	return &Session{ed: ed, state: s}
}

// Session is the transient wrapper binding a State to a buffer for the
// duration of one batch of edits. Every entry point commits the
// transient editor's cursor, selection, and selection bounds back into
// the persistent state on every exit path; callers never sync manually.
type Session struct {
	ed    *Editor
	state *State
}

// WithEditor runs fn against the transient editor, then commits.
func (s *Session) WithEditor(fn func(*Editor)) {
	defer s.commit()
	fn(s.ed)
}

// Apply executes actions in order against the transient editor and
// commits, even when an action fails mid-batch.
func (s *Session) Apply(layout shape.Layout, actions ...Action) error {
	defer s.commit()
	for _, a := range actions {
		if err := s.ed.Apply(layout, a); err != nil {
			return err
		}
	}
	return nil
}

// commit copies the transient editor's state into the persistent state.
func (s *Session) commit() {
	s.state.cur = s.ed.Cursor()
	s.state.hasCursor = true
	s.state.sel = s.ed.Selection()
	s.state.bounds, s.state.hasBounds = s.ed.SelectionBounds()
}
