package editor

import (
	"errors"
	"fmt"

	"github.com/dshills/inkwell/buffer"
	"github.com/dshills/inkwell/cursor"
	"github.com/dshills/inkwell/shape"
)

// ErrNoLayout is returned when a click action is applied without a
// layout to resolve the pixel position against.
var ErrNoLayout = errors.New("click action requires a layout")

// DefaultPageSize is the line count of PageUp/PageDown motions when the
// host has not configured one.
const DefaultPageSize = 20

// Editor is the low-level editing primitive: it binds a cursor and a
// selection to a buffer and applies editing actions against it. Editors
// are cheap to construct; persistent cursor state lives in State and is
// attached per edit batch through a Session.
type Editor struct {
	buf      *buffer.Buffer
	cur      cursor.Cursor
	sel      cursor.Selection
	pageSize int
}

// New creates an editor over the buffer with the cursor at the origin
// and no selection.
func New(buf *buffer.Buffer) *Editor {
	return &Editor{buf: buf, sel: cursor.NoSelection(), pageSize: DefaultPageSize}
}

// Buffer returns the buffer the editor edits.
func (e *Editor) Buffer() *buffer.Buffer {
	return e.buf
}

// Cursor returns the editor's cursor.
func (e *Editor) Cursor() cursor.Cursor {
	return e.cur
}

// SetCursor sets the editor's cursor, clamped to a valid position.
func (e *Editor) SetCursor(c cursor.Cursor) {
	e.cur = e.clamp(c)
}

// Selection returns the editor's selection.
func (e *Editor) Selection() cursor.Selection {
	return e.sel
}

// SetSelection sets the editor's selection.
func (e *Editor) SetSelection(s cursor.Selection) {
	e.sel = s
}

// SetPageSize configures the line count of page motions.
func (e *Editor) SetPageSize(lines int) {
	if lines > 0 {
		e.pageSize = lines
	}
}

// SelectionBounds returns the normalized extent of the active selection,
// expanded per its kind: normal selections run anchor-to-cursor, line
// selections cover whole lines, word selections widen both ends to word
// boundaries. Reports false when no selection is active.
func (e *Editor) SelectionBounds() (cursor.Bounds, bool) {
	switch e.sel.Kind {
	case cursor.SelectionNormal:
		return cursor.NewBounds(e.clamp(e.sel.Anchor), e.cur), true
	case cursor.SelectionLine:
		b := cursor.NewBounds(e.clamp(e.sel.Anchor), e.cur)
		end := cursor.New(b.End.Line, e.lineLen(b.End.Line))
		return cursor.Bounds{Start: cursor.New(b.Start.Line, 0), End: end}, true
	case cursor.SelectionWord:
		b := cursor.NewBounds(e.clamp(e.sel.Anchor), e.cur)
		startLine, _ := e.buf.Line(b.Start.Line)
		endLine, _ := e.buf.Line(b.End.Line)
		ws, _ := wordBounds(startLine.Text(), b.Start.Index)
		_, we := wordBounds(endLine.Text(), b.End.Index)
		return cursor.Bounds{
			Start: cursor.New(b.Start.Line, ws),
			End:   cursor.New(b.End.Line, we),
		}, true
	default:
		return cursor.Bounds{}, false
	}
}

// Apply executes one editing action. The layout is the shared shaping
// context; it is consulted only by the click actions and may be nil for
// all others.
func (e *Editor) Apply(layout shape.Layout, a Action) error {
	switch a.Kind {
	case ActionInsert:
		return e.insert(string(a.Rune))
	case ActionEnter:
		return e.enter()
	case ActionBackspace:
		return e.backspace()
	case ActionDelete:
		return e.delete()
	case ActionMotion:
		e.move(a.Motion)
		return nil
	case ActionClick, ActionDoubleClick, ActionTripleClick:
		if layout == nil {
			return ErrNoLayout
		}
		e.click(layout, a)
		return nil
	default:
		return nil
	}
}

// insert replaces the active selection, if any, then inserts text at the
// cursor.
func (e *Editor) insert(text string) error {
	if err := e.deleteSelection(); err != nil {
		return err
	}
	cur, err := e.buf.Insert(e.cur, text)
	if err != nil {
		return fmt.Errorf("insert %q: %w", text, err)
	}
	e.cur = cur
	return nil
}

// enter replaces the active selection, if any, then breaks the line at
// the cursor.
func (e *Editor) enter() error {
	if err := e.deleteSelection(); err != nil {
		return err
	}
	if err := e.buf.SplitLine(e.cur); err != nil {
		return fmt.Errorf("line break: %w", err)
	}
	e.cur = cursor.New(e.cur.Line+1, 0)
	return nil
}

// backspace deletes the active selection, the previous grapheme cluster,
// or joins with the previous line at a line start.
func (e *Editor) backspace() error {
	if e.hasSelectedText() {
		return e.deleteSelection()
	}
	switch {
	case e.cur.Index > 0:
		line, _ := e.buf.Line(e.cur.Line)
		prev := prevCluster(line.Text(), e.cur.Index)
		bounds := cursor.Bounds{Start: cursor.New(e.cur.Line, prev), End: e.cur}
		cur, err := e.buf.Delete(bounds)
		if err != nil {
			return fmt.Errorf("backspace: %w", err)
		}
		e.cur = cur
	case e.cur.Line > 0:
		join := e.lineLen(e.cur.Line - 1)
		if err := e.buf.JoinLines(e.cur.Line - 1); err != nil {
			return fmt.Errorf("backspace join: %w", err)
		}
		e.cur = cursor.New(e.cur.Line-1, join)
	}
	return nil
}

// delete removes the active selection, the next grapheme cluster, or
// joins with the next line at a line end.
func (e *Editor) delete() error {
	if e.hasSelectedText() {
		return e.deleteSelection()
	}
	line, _ := e.buf.Line(e.cur.Line)
	switch {
	case e.cur.Index < line.Len():
		next := nextCluster(line.Text(), e.cur.Index)
		bounds := cursor.Bounds{Start: e.cur, End: cursor.New(e.cur.Line, next)}
		cur, err := e.buf.Delete(bounds)
		if err != nil {
			return fmt.Errorf("delete: %w", err)
		}
		e.cur = cur
	case e.cur.Line+1 < e.buf.LineCount():
		if err := e.buf.JoinLines(e.cur.Line); err != nil {
			return fmt.Errorf("delete join: %w", err)
		}
	}
	return nil
}

// move performs a cursor motion. Motions do not disturb the selection;
// content edits consume it.
func (e *Editor) move(m Motion) {
	line, _ := e.buf.Line(e.cur.Line)
	switch m {
	case MotionLeft:
		if e.cur.Index > 0 {
			e.cur = cursor.New(e.cur.Line, prevCluster(line.Text(), e.cur.Index))
		} else if e.cur.Line > 0 {
			e.cur = cursor.New(e.cur.Line-1, e.lineLen(e.cur.Line-1))
		}
	case MotionRight:
		if e.cur.Index < line.Len() {
			e.cur = cursor.New(e.cur.Line, nextCluster(line.Text(), e.cur.Index))
		} else if e.cur.Line+1 < e.buf.LineCount() {
			e.cur = cursor.New(e.cur.Line+1, 0)
		}
	case MotionUp:
		e.moveVertical(-1)
	case MotionDown:
		e.moveVertical(1)
	case MotionHome:
		e.cur = cursor.New(e.cur.Line, 0)
	case MotionEnd:
		e.cur = cursor.New(e.cur.Line, line.Len())
	case MotionPageUp:
		e.moveVertical(-e.pageSize)
	case MotionPageDown:
		e.moveVertical(e.pageSize)
	}
}

// moveVertical moves the cursor by delta lines, clamping the byte index
// to a cluster boundary on the target line.
func (e *Editor) moveVertical(delta int) {
	line := e.cur.Line + delta
	if line < 0 {
		line = 0
	}
	if line >= e.buf.LineCount() {
		line = e.buf.LineCount() - 1
	}
	e.cur = e.clamp(cursor.New(line, e.cur.Index))
}

// click handles the pointer actions: resolve the pixel position and set
// cursor and selection per the click multiplicity.
func (e *Editor) click(layout shape.Layout, a Action) {
	c, ok := layout.Hit(a.X, a.Y)
	if !ok {
		return
	}
	e.cur = e.clamp(c)
	switch a.Kind {
	case ActionClick:
		e.sel = cursor.NoSelection()
	case ActionDoubleClick:
		e.sel = cursor.WordAnchor(e.cur)
	case ActionTripleClick:
		e.sel = cursor.LineAnchor(e.cur)
	}
}

// hasSelectedText reports whether the selection covers at least one byte.
func (e *Editor) hasSelectedText() bool {
	b, ok := e.SelectionBounds()
	return ok && !b.IsEmpty()
}

// deleteSelection removes the selected text, if any, collapsing the
// cursor to the deletion point and clearing the selection.
func (e *Editor) deleteSelection() error {
	b, ok := e.SelectionBounds()
	if !ok {
		return nil
	}
	e.sel = cursor.NoSelection()
	if b.IsEmpty() {
		return nil
	}
	cur, err := e.buf.Delete(b)
	if err != nil {
		return fmt.Errorf("delete selection: %w", err)
	}
	e.cur = cur
	return nil
}

// lineLen returns the byte length of the given line, 0 if out of range.
func (e *Editor) lineLen(i int) int {
	line, ok := e.buf.Line(i)
	if !ok {
		return 0
	}
	return line.Len()
}

// clamp snaps a cursor to a position that exists in the buffer, on a
// grapheme cluster boundary.
func (e *Editor) clamp(c cursor.Cursor) cursor.Cursor {
	if e.buf.LineCount() == 0 {
		return cursor.Cursor{}
	}
	line := c.Line
	if line < 0 {
		line = 0
	}
	if line >= e.buf.LineCount() {
		line = e.buf.LineCount() - 1
	}
	l, _ := e.buf.Line(line)
	return cursor.New(line, snapCluster(l.Text(), c.Index))
}
