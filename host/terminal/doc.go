// Package terminal adapts tcell input events to the editing engine's
// key and mouse event types, so a terminal host can drive the input
// dispatchers. Cell coordinates scale to pixels through configured cell
// metrics matching the ones the layout was shaped with.
package terminal
