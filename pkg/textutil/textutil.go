// Package textutil formats help text for fixed-width terminals.
package textutil

import "strings"

// Wrap splits text into lines of at most width bytes, breaking only between words. Runs of
// whitespace collapse to a single space, and a word longer than width gets a line of its own.
func Wrap(text string, width int) []string {
	var (
		lines []string
		line  strings.Builder
	)
	for _, word := range strings.Fields(text) {
		if line.Len() > 0 && line.Len()+1+len(word) > width {
			lines = append(lines, line.String())
			line.Reset()
		}
		if line.Len() > 0 {
			line.WriteByte(' ')
		}
		line.WriteString(word)
	}
	if line.Len() > 0 {
		lines = append(lines, line.String())
	}
	return lines
}

// minTextWidth keeps the text column readable when names are very long.
const minTextWidth = 20

// Columns lays out one row of a two-column table. The row starts with indent and name, padded to
// nameWidth, followed by text wrapped so that no line exceeds width. Continuation lines are aligned
// with the start of the text column.
func Columns(indent, name string, nameWidth int, text string, width int) []string {
	lines := Wrap(text, max(width-len(indent)-nameWidth, minTextWidth))
	if len(lines) == 0 {
		return []string{indent + name}
	}
	pad := strings.Repeat(" ", max(nameWidth-len(name), 1))
	out := make([]string, 0, len(lines))
	out = append(out, indent+name+pad+lines[0])
	cont := strings.Repeat(" ", len(indent)+len(name)+len(pad))
	for _, line := range lines[1:] {
		out = append(out, cont+line)
	}
	return out
}
