// Package align pads raw lines to an exact width.
package align

import (
	"strings"
	"unicode/utf8"

	"github.com/jallum/linework/internal/wrap"
)

// Mode selects how a line is padded to width.
type Mode int

const (
	Left Mode = iota
	Right
	Center
	Justify
	// JustifyLeft justifies every line but the last, which is left aligned.
	JustifyLeft
	// JustifyRight justifies every line but the last, which is right aligned.
	JustifyRight
)

// Pad holds the fill characters. Left fills the left side of right
// aligned and centered lines, Right fills the right side of left aligned
// and centered lines, and Inner replaces the single spaces between words.
type Pad struct {
	Left  rune
	Right rune
	Inner rune
}

// Spaces is a Pad that fills with plain spaces everywhere.
var Spaces = Pad{Left: ' ', Right: ' ', Inner: ' '}

// Lines aligns every line to width. For JustifyLeft and JustifyRight the
// final line is aligned plainly instead of being stretched.
func Lines(lines []wrap.Line, width int, mode Mode, pad Pad) []string {
	out := make([]string, len(lines))
	for i, l := range lines {
		m := mode
		if i == len(lines)-1 {
			m = mode.last()
		} else if m == JustifyLeft || m == JustifyRight {
			m = Justify
		}
		out[i] = Line(l, width, m, pad)
	}
	return out
}

// last returns the mode used for the last line of a zone.
func (m Mode) last() Mode {
	switch m {
	case JustifyLeft:
		return Left
	case JustifyRight:
		return Right
	}
	return m
}

// Line pads one raw line to width. Lines already wider than width are
// returned unpadded.
func Line(l wrap.Line, width int, mode Mode, pad Pad) string {
	switch mode {
	case Right:
		s := join(l, pad.Inner)
		return fill(pad.Left, width-visibleLen(s)) + s
	case Center:
		s := join(l, pad.Inner)
		total := width - visibleLen(s)
		if total <= 0 {
			return s
		}
		left := total / 2
		return fill(pad.Left, left) + s + fill(pad.Right, total-left)
	case Justify, JustifyLeft, JustifyRight:
		return justify(l, width, pad.Inner)
	default:
		s := join(l, pad.Inner)
		return s + fill(pad.Right, width-visibleLen(s))
	}
}

// justify stretches l to width by appending fill to every word but the
// last. The even share goes round-robin from the first word; the
// remainder goes round-robin from the second-to-last word back to the
// second, never touching the first. With two words the remainder is
// always zero, and any shortfall is closed with trailing spaces.
func justify(l wrap.Line, width int, inner rune) string {
	n := len(l)
	if n <= 1 {
		s := strings.Join(l, "")
		return s + fill(inner, width-visibleLen(s))
	}

	textLen := 0
	for _, w := range l {
		textLen += visibleLen(w)
	}
	gap := width - textLen
	slots := n - 1
	if gap < slots {
		// Not even one fill character per gap: an oversized line.
		return join(l, inner)
	}

	extra := make([]int, n)
	pool := (gap / slots) * slots
	for i := 0; pool > 0; i = (i + 1) % slots {
		extra[i]++
		pool--
	}
	rem := gap % slots
	for rem > 0 && n > 2 {
		for i := n - 2; i >= 1 && rem > 0; i-- {
			extra[i]++
			rem--
		}
	}

	var b strings.Builder
	for i, w := range l {
		b.WriteString(w)
		b.WriteString(fill(inner, extra[i]))
	}
	s := b.String()
	return s + fill(' ', width-visibleLen(s))
}

func join(l wrap.Line, inner rune) string {
	return strings.Join(l, string(inner))
}

func fill(r rune, n int) string {
	if n <= 0 {
		return ""
	}
	return strings.Repeat(string(r), n)
}

func visibleLen(s string) int {
	return utf8.RuneCountInString(s)
}
