package layout

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// BoxGlyph returns a three-line drop-cap glyph drawing r inside a box.
//
//	+---+
//	| T |
//	+---+
func BoxGlyph(r rune) []string {
	edge := "+---+"
	return []string{edge, "| " + string(unicode.ToUpper(r)) + " |", edge}
}

// Frame draws a border around lines, padding each to the widest one.
func Frame(lines []string) []string {
	w := 0
	for _, l := range lines {
		if n := utf8.RuneCountInString(l); n > w {
			w = n
		}
	}
	edge := "+" + strings.Repeat("-", w+2) + "+"
	out := make([]string, 0, len(lines)+2)
	out = append(out, edge)
	for _, l := range lines {
		out = append(out, "| "+l+strings.Repeat(" ", w-utf8.RuneCountInString(l))+" |")
	}
	return append(out, edge)
}
