// Package render turns committed cursor/selection state into the
// pixel-space geometry a renderer draws: a caret rectangle and one
// highlight rectangle per run carrying selected text.
//
// CaretPosition and SelectionHighlight are the two core queries, both
// pure functions of (state snapshot, one layout run). Run direction is
// consulted at exactly two points: the caret's trailing-edge choice and
// the highlight's extension-to-edge choice. Sub-glyph positions inside
// multi-codepoint clusters interpolate proportionally by grapheme count.
//
// ExtractCaret and ExtractSelection walk a frame's visible runs and
// apply the per-node appearance configs, defaulting to a one-pixel
// white caret and a black highlight.
package render
