// Package cursor provides the position value types shared across the
// editing engine: Cursor (a line index plus a byte offset within that
// line), Selection (an anchor plus a granularity kind), and Bounds (a
// normalized start/end cursor pair).
//
// All three are small immutable value types. A Selection on its own does
// not describe an extent; its head is the owning editor's cursor, and the
// editor derives Bounds from the (anchor, head) pair according to the
// selection kind.
package cursor
