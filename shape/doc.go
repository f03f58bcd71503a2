// Package shape defines the layout-run data the editing core consumes
// from a text-layout engine, and ships a reference monospace shaper.
//
// Run and Glyph model one shaped physical line: glyphs carry byte ranges
// into the line's text, pixel positions, advance widths, and direction
// flags. The Layout interface is the full contract the core needs from a
// layout engine: shaped runs, pixel size, and pixel-to-cursor hit
// resolution.
//
// Shaper is a stand-in for a real shaping engine, good enough to run and
// test the editor without one: fixed-advance glyphs, one glyph per
// grapheme cluster, advances accumulated in 26.6 fixed point. It does
// not resolve bidi; runs from a real engine may carry RTL flags, which
// the geometry queries honor.
package shape
