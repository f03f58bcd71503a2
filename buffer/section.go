package buffer

import "strings"

// StyleID is an opaque style identifier carried by a styled section.
// The editing engine never interprets it.
type StyleID int

// Section is one externally owned styled section of a text node: a run
// of text (possibly spanning several lines) sharing one style.
type Section struct {
	// Text is the section's content, including any line endings.
	Text string
	// Style is the section's opaque style tag.
	Style StyleID
}

// FromSections builds a buffer from an ordered list of styled sections.
// Section boundaries become styled spans tagged with the section index;
// line feeds (and CRLF pairs) inside section text become line endings.
func FromSections(sections []Section) *Buffer {
	b := &Buffer{}
	var (
		text  string
		spans []Span
	)
	flush := func(ending Ending) {
		b.lines = append(b.lines, Line{text: text, spans: spans, ending: ending})
		text = ""
		spans = nil
	}
	for i, sec := range sections {
		rest := sec.Text
		for {
			nl := strings.IndexByte(rest, '\n')
			if nl < 0 {
				break
			}
			chunk, ending := rest[:nl], EndingLF
			if nl > 0 && chunk[nl-1] == '\r' {
				chunk, ending = chunk[:nl-1], EndingCRLF
			}
			if len(chunk) > 0 {
				spans = append(spans, Span{Start: len(text), End: len(text) + len(chunk), Section: i})
			}
			text += chunk
			flush(ending)
			rest = rest[nl+1:]
		}
		if len(rest) > 0 {
			spans = append(spans, Span{Start: len(text), End: len(text) + len(rest), Section: i})
			text += rest
		}
	}
	flush(EndingNone)
	return b
}
