// Package layout turns free text into fixed-width lines for terminal
// output. It normalizes whitespace, honors mandatory breaks, wraps words
// greedily into a top and a bottom zone, aligns every line and finally
// decorates the paragraph with indents or a drop-cap glyph.
//
// Every function is pure; a Config may be shared between goroutines.
package layout

import (
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/jallum/linework/internal/align"
	"github.com/jallum/linework/internal/wrap"
)

// Layout lays text out according to c. Blank text yields a single line
// of c.Width fill characters; only the width and right pad are checked
// for it. Every returned line is exactly c.Width columns wide unless it
// holds a word that is itself wider.
func Layout(text string, c Config) ([]string, error) {
	marked := wrap.Normalize(wrap.MarkBreaks(text))
	if wrap.IsBlank(marked) {
		if err := c.validateFill(); err != nil {
			return nil, err
		}
		return []string{strings.Repeat(string(c.RightPad), c.Width)}, nil
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}
	if c.Format.IsDropCap() {
		_, marked, _ = splitFirst(marked)
	}

	p := Plan(c)
	top, bottom, err := wrap.Zoned(marked, p.BottomWidth, p.TopLines, p.TopWidth)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInternal, err)
	}
	if c.Format.IsDropCap() {
		for len(top) < len(c.DropCap) {
			top = append(top, wrap.Line{})
		}
	}

	pad := align.Pad{Left: c.LeftPad, Right: c.RightPad, Inner: c.InnerWS}
	mode := c.Alignment.mode()
	topMode := mode
	if mode == align.JustifyLeft || mode == align.JustifyRight {
		// Only the last line of the paragraph escapes justification.
		topMode = align.Justify
	}
	return decorate(c,
		align.Lines(top, p.TopWidth, topMode, pad),
		align.Lines(bottom, p.BottomWidth, mode, pad),
	), nil
}

// decorate prefixes the aligned zones according to c.Format and joins
// them in reading order.
func decorate(c Config, top, bottom []string) []string {
	out := make([]string, 0, len(top)+len(bottom))
	lead := string(c.LeftPad)

	switch c.Format {
	case FormatFirstLine, FormatFirstLineAndHanging:
		indent := strings.Repeat(lead, c.FirstLineIndent)
		for _, l := range top {
			out = append(out, indent+l)
		}
	case FormatDropCap, FormatDropCapPadded:
		gap := strings.Repeat(" ", c.dropCapSpacing())
		blank := strings.Repeat(" ", c.glyphWidth())
		for i, l := range top {
			glyph := blank
			if i < len(c.DropCap) {
				glyph = c.DropCap[i]
			}
			out = append(out, glyph+gap+l)
		}
	default:
		out = append(out, top...)
	}

	switch c.Format {
	case FormatHanging, FormatFirstLineAndHanging:
		indent := strings.Repeat(lead, c.HangingIndent)
		for _, l := range bottom {
			out = append(out, indent+l)
		}
	default:
		out = append(out, bottom...)
	}
	return out
}

// FirstRune returns the character a drop-cap format would consume from
// text, or false when text is blank.
func FirstRune(text string) (rune, bool) {
	r, _, ok := splitFirst(wrap.Normalize(wrap.MarkBreaks(text)))
	return r, ok
}

// splitFirst removes the first character that is neither whitespace nor
// a break marker from marked text. ok is false when there is none.
func splitFirst(marked string) (r rune, rest string, ok bool) {
	rest = strings.TrimLeftFunc(marked, func(r rune) bool {
		return unicode.IsSpace(r) || string(r) == wrap.BR
	})
	if rest == "" {
		return 0, "", false
	}
	r, size := utf8.DecodeRuneInString(rest)
	return r, rest[size:], true
}
