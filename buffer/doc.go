// Package buffer provides the styled, multi-line text buffer edited by
// the engine.
//
// A Buffer is an ordered sequence of Lines; each Line holds raw text
// plus a byte-ordered list of styled Spans and a line Ending. Spans are
// tagged with the index of the external styled Section they belong to
// and may leave gaps: gap bytes are "unstyled" and inherit a neighboring
// span's section when the buffer is reconciled back into sections.
//
// The buffer exposes the low-level mutation primitives the editor
// drives (Insert, Delete, SplitLine, JoinLines); all of them keep the
// span lists consistent with the text they cover and validate the span
// byte-range invariants rather than silently producing wrong geometry
// downstream.
//
// A buffer always holds at least one line, and the external section
// list it reconciles into always retains at least one section.
package buffer
