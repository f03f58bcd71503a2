// Package editor provides the low-level editing primitive and the
// session that binds persistent cursor state to a buffer for one batch
// of edits.
//
// Editor applies Actions (inserts, deletes, motions, clicks) against a
// buffer, keeping a transient cursor and selection. Motions are
// grapheme-cluster aware; double- and triple-click selections carry a
// word or line granularity that widens their bounds around the anchor.
//
// State is the durable half: the cursor, selection, and selection
// bounds a displayed text node keeps between frames. State.Resume opens
// a Session seeding a fresh Editor from the durable state; the session
// commits the editor's result back on every exit path, so callers can
// never forget to sync.
//
// Caret-affecting click actions borrow the shared shape.Layout for the
// duration of one action; all other actions take no layout.
package editor
