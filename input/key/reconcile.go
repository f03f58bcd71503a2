package key

import (
	"strings"

	"github.com/dshills/inkwell/buffer"
)

// Reconcile flattens the buffer's per-line styled spans back into the
// external ordered section list and returns the updated slice.
//
// Within a line, spans are walked in byte order. Unstyled gap bytes
// before a span join that span's section; a trailing gap at line end
// joins the previous span's section. A line's ending is appended to
// whichever section consumed the last of its text.
//
// Sections that accumulated no text are removed in descending index
// order so earlier indices stay valid. A text node always retains at
// least one section, so the last survivor is cleared to empty instead
// of removed.
func Reconcile(buf *buffer.Buffer, sections []buffer.Section) []buffer.Section {
	acc := make(map[int]*strings.Builder)
	get := func(i int) *strings.Builder {
		b, ok := acc[i]
		if !ok {
			b = &strings.Builder{}
			acc[i] = b
		}
		return b
	}

	for _, line := range buf.Lines() {
		text := line.Text()
		ending := string(line.Ending())
		pos := 0
		section := 0
		for _, sp := range line.Spans() {
			section = sp.Section
			b := get(section)
			// A gap before a span adopts the span's section.
			if pos < sp.Start {
				b.WriteString(text[pos:sp.Start])
			}
			b.WriteString(text[sp.Start:sp.End])
			pos = sp.End
			if pos == len(text) {
				b.WriteString(ending)
			}
		}
		// A trailing gap adopts the previous span's section.
		if pos < len(text) {
			b := get(section)
			b.WriteString(text[pos:])
			b.WriteString(ending)
		}
	}

	var removals []int
	for i := range sections {
		if b, ok := acc[i]; ok {
			sections[i].Text = b.String()
		} else {
			removals = append(removals, i)
		}
	}
	for j := len(removals) - 1; j >= 0; j-- {
		i := removals[j]
		if len(sections) > 1 {
			sections = append(sections[:i], sections[i+1:]...)
		} else {
			sections[0].Text = ""
		}
	}
	return sections
}
