// Package wrap provides whitespace normalization, mandatory-break
// segmentation and greedy word wrapping into raw (unpadded) lines.
package wrap

import (
	"errors"
	"strings"
	"unicode"
	"unicode/utf8"
)

// BR is the canonical mandatory-break marker produced by MarkBreaks.
// It is an ASCII record separator, which unicode.IsSpace does not treat
// as whitespace, so it survives Normalize.
const BR = "\x1e"

// MaxRuns bounds the zoning loop beyond the requested top line count.
// Each run appends one top line and the loop stops at the requested
// count, so the guard cannot trip while take consumes at least one word
// per call. It is not a limit on input size.
const MaxRuns = 200

// ErrRunaway is returned when the zoning loop guard trips. It would
// signal a defect in the wrapper, never bad input; no input reaches it.
var ErrRunaway = errors.New("wrap: zoning loop exceeded its run limit")

// Line is a raw line: the words placed on it, in reading order, without
// any padding.
type Line []string

// Len returns the width of the line with single spaces between words.
func (l Line) Len() int {
	if len(l) == 0 {
		return 0
	}
	n := len(l) - 1
	for _, w := range l {
		n += visibleLen(w)
	}
	return n
}

// String joins the words with single spaces.
func (l Line) String() string {
	return strings.Join(l, " ")
}

var breaks = strings.NewReplacer(
	"\r\n", BR,
	"\r", BR,
	"\n", BR,
	"<br/>", BR,
	"<br>", BR,
)

// MarkBreaks rewrites CRLF, CR, LF, "<br>" and "<br/>" to BR.
func MarkBreaks(s string) string {
	return breaks.Replace(s)
}

// Normalize collapses every maximal run of Unicode whitespace to a
// single space. Leading and trailing runs are collapsed, not trimmed.
func Normalize(s string) string {
	var out strings.Builder
	out.Grow(len(s))
	inSpace := false
	for _, r := range s {
		if unicode.IsSpace(r) {
			if !inSpace {
				out.WriteByte(' ')
				inSpace = true
			}
			continue
		}
		inSpace = false
		out.WriteRune(r)
	}
	return out.String()
}

// IsBlank reports whether s holds nothing but whitespace and break
// markers.
func IsBlank(s string) bool {
	for _, r := range s {
		if !unicode.IsSpace(r) && string(r) != BR {
			return false
		}
	}
	return true
}

// Segments splits break-marked text at every BR. A break at the very end
// of the text does not open a further segment.
func Segments(s string) []string {
	segs := strings.Split(s, BR)
	if n := len(segs); n > 1 && strings.TrimSpace(segs[n-1]) == "" {
		segs = segs[:n-1]
	}
	return segs
}

// Words greedily wraps break-marked text into lines no wider than width.
// Each segment starts a new line; an empty segment yields an empty line.
// A word wider than width is placed alone on its own oversized line.
func Words(s string, width int) []Line {
	var lines []Line
	for _, seg := range Segments(s) {
		lines = append(lines, wrapWords(strings.Fields(seg), width)...)
	}
	return lines
}

// Zoned wraps break-marked text into two zones. The first topCount lines
// are wrapped at topWidth, filling from successive segments when one runs
// out early. Whatever remains is wrapped at bottomWidth, with every
// further break starting a new bottom line.
func Zoned(s string, bottomWidth, topCount, topWidth int) (top, bottom []Line, err error) {
	runs := 0
	for _, seg := range Segments(s) {
		words := strings.Fields(seg)
		if len(top) < topCount {
			for len(top) < topCount {
				runs++
				if runs > topCount+MaxRuns {
					return nil, nil, ErrRunaway
				}
				var line Line
				line, words = take(words, topWidth)
				top = append(top, line)
				if len(words) == 0 {
					break
				}
			}
			if len(words) == 0 {
				continue
			}
		}
		bottom = append(bottom, wrapWords(words, bottomWidth)...)
	}
	return top, bottom, nil
}

// wrapWords wraps one segment's words. No words yields a single empty
// line so that blank paragraphs keep their place.
func wrapWords(words []string, width int) []Line {
	if len(words) == 0 {
		return []Line{{}}
	}
	var lines []Line
	for len(words) > 0 {
		var line Line
		line, words = take(words, width)
		lines = append(lines, line)
	}
	return lines
}

// take removes the longest prefix of words that fits in width and
// returns it as a new line along with the rest. The first word is always
// taken, even when it alone exceeds width.
func take(words []string, width int) (Line, []string) {
	if len(words) == 0 {
		return Line{}, nil
	}
	n := 1
	col := visibleLen(words[0])
	for n < len(words) {
		wLen := visibleLen(words[n])
		if col+1+wLen > width {
			break
		}
		col += 1 + wLen
		n++
	}
	line := make(Line, n)
	copy(line, words[:n])
	return line, words[n:]
}

// visibleLen returns the number of columns s occupies. One rune is one
// column.
func visibleLen(s string) int {
	return utf8.RuneCountInString(s)
}
