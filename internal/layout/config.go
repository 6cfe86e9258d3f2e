package layout

import (
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/jallum/linework/internal/align"
)

// Alignment selects how each line is padded to width.
type Alignment int

const (
	AlignLeft Alignment = iota
	AlignRight
	AlignCenter
	AlignJustify
	AlignJustifyLeft
	AlignJustifyRight
)

var alignmentNames = []string{"left", "right", "center", "justify", "justify-left", "justify-right"}

func (a Alignment) String() string {
	if a < 0 || int(a) >= len(alignmentNames) {
		return fmt.Sprintf("Alignment(%d)", int(a))
	}
	return alignmentNames[a]
}

// ParseAlignment parses a name such as "justify-left".
func ParseAlignment(s string) (Alignment, error) {
	for i, name := range alignmentNames {
		if strings.EqualFold(s, name) {
			return Alignment(i), nil
		}
	}
	return 0, &ConfigError{Field: "alignment", Reason: fmt.Sprintf("unknown value %q (want %s)", s, strings.Join(alignmentNames, ", "))}
}

func (a Alignment) MarshalText() ([]byte, error) { return []byte(a.String()), nil }

func (a *Alignment) UnmarshalText(b []byte) error {
	v, err := ParseAlignment(string(b))
	if err != nil {
		return err
	}
	*a = v
	return nil
}

func (a Alignment) mode() align.Mode {
	switch a {
	case AlignRight:
		return align.Right
	case AlignCenter:
		return align.Center
	case AlignJustify:
		return align.Justify
	case AlignJustifyLeft:
		return align.JustifyLeft
	case AlignJustifyRight:
		return align.JustifyRight
	}
	return align.Left
}

// Format selects the paragraph decoration.
type Format int

const (
	FormatNone Format = iota
	FormatFirstLine
	FormatHanging
	FormatFirstLineAndHanging
	FormatDropCap
	FormatDropCapPadded
)

var formatNames = []string{"none", "first-line", "hanging", "first-line-hanging", "dropcap", "dropcap-padded"}

func (f Format) String() string {
	if f < 0 || int(f) >= len(formatNames) {
		return fmt.Sprintf("Format(%d)", int(f))
	}
	return formatNames[f]
}

// ParseFormat parses a name such as "first-line-hanging".
func ParseFormat(s string) (Format, error) {
	for i, name := range formatNames {
		if strings.EqualFold(s, name) {
			return Format(i), nil
		}
	}
	return 0, &ConfigError{Field: "format", Reason: fmt.Sprintf("unknown value %q (want %s)", s, strings.Join(formatNames, ", "))}
}

func (f Format) MarshalText() ([]byte, error) { return []byte(f.String()), nil }

func (f *Format) UnmarshalText(b []byte) error {
	v, err := ParseFormat(string(b))
	if err != nil {
		return err
	}
	*f = v
	return nil
}

// IsDropCap reports whether f draws a drop-cap glyph.
func (f Format) IsDropCap() bool {
	return f == FormatDropCap || f == FormatDropCapPadded
}

// Config holds every layout option. Treat it as a value: build it once,
// validate it, and share it freely between goroutines.
type Config struct {
	Width     int
	Alignment Alignment
	Format    Format

	LeftPad  rune
	RightPad rune
	InnerWS  rune

	HangingIndent   int
	FirstLineIndent int

	// DropCap is the glyph drawn in place of the first character. All
	// lines must have the same length.
	DropCap []string
	// DropCapGap is the number of spaces between glyph and text for
	// FormatDropCapPadded.
	DropCapGap int
	// LinesAfterDropCap is the number of top-zone lines kept at the
	// narrow width below the glyph.
	LinesAfterDropCap int
}

// DefaultConfig returns the defaults: width 80, left aligned, no
// decoration, space padding, indents of 4, a drop-cap gap of 3 and one
// line after the drop cap.
func DefaultConfig() Config {
	return Config{
		Width:             80,
		Alignment:         AlignLeft,
		Format:            FormatNone,
		LeftPad:           ' ',
		RightPad:          ' ',
		InnerWS:           ' ',
		HangingIndent:     4,
		FirstLineIndent:   4,
		DropCapGap:        3,
		LinesAfterDropCap: 1,
	}
}

// Validate checks every constraint and returns the first violation as a
// *ConfigError.
func (c Config) Validate() error {
	positive := []struct {
		field string
		v     int
	}{
		{"width", c.Width},
		{"hanging indent", c.HangingIndent},
		{"first line indent", c.FirstLineIndent},
		{"drop cap gap", c.DropCapGap},
		{"lines after drop cap", c.LinesAfterDropCap},
	}
	for _, p := range positive {
		if p.v <= 0 {
			return &ConfigError{Field: p.field, Reason: fmt.Sprintf("must be positive, got %d", p.v)}
		}
	}
	if c.Alignment < AlignLeft || c.Alignment > AlignJustifyRight {
		return &ConfigError{Field: "alignment", Reason: fmt.Sprintf("unknown value %d", int(c.Alignment))}
	}
	if c.Format < FormatNone || c.Format > FormatDropCapPadded {
		return &ConfigError{Field: "format", Reason: fmt.Sprintf("unknown value %d", int(c.Format))}
	}
	for _, p := range []struct {
		field string
		r     rune
	}{{"left pad", c.LeftPad}, {"right pad", c.RightPad}, {"inner whitespace", c.InnerWS}} {
		if p.r == 0 || p.r == utf8.RuneError {
			return &ConfigError{Field: p.field, Reason: "must be a printable character"}
		}
	}
	if c.Format.IsDropCap() {
		if err := validateGlyph(c.DropCap); err != nil {
			return err
		}
	}
	p := Plan(c)
	if p.TopLines > 0 && p.TopWidth <= 0 {
		return &ConfigError{Field: "width", Reason: fmt.Sprintf("%d leaves no room for the first line under format %s", c.Width, c.Format)}
	}
	if p.BottomWidth <= 0 {
		return &ConfigError{Field: "width", Reason: fmt.Sprintf("%d leaves no room for text under format %s", c.Width, c.Format)}
	}
	return nil
}

// validateFill checks only what the fill line for blank text needs.
func (c Config) validateFill() error {
	if c.Width <= 0 {
		return &ConfigError{Field: "width", Reason: fmt.Sprintf("must be positive, got %d", c.Width)}
	}
	if c.RightPad == 0 || c.RightPad == utf8.RuneError {
		return &ConfigError{Field: "right pad", Reason: "must be a printable character"}
	}
	return nil
}

func validateGlyph(lines []string) error {
	if len(lines) == 0 {
		return &ConfigError{Field: "drop cap", Reason: "is required for drop-cap formats"}
	}
	w := utf8.RuneCountInString(lines[0])
	if w == 0 {
		return &ConfigError{Field: "drop cap", Reason: "lines must not be empty"}
	}
	for i, l := range lines[1:] {
		if n := utf8.RuneCountInString(l); n != w {
			return &ConfigError{Field: "drop cap", Reason: fmt.Sprintf("line %d has length %d, want %d", i+2, n, w)}
		}
	}
	return nil
}

// glyphWidth returns the column width of the drop-cap glyph.
func (c Config) glyphWidth() int {
	if len(c.DropCap) == 0 {
		return 0
	}
	return utf8.RuneCountInString(c.DropCap[0])
}

// dropCapSpacing returns the spaces between the glyph and the text.
func (c Config) dropCapSpacing() int {
	if c.Format == FormatDropCapPadded {
		return c.DropCapGap
	}
	return 1
}

var (
	// ErrConfig is matched by every configuration error.
	ErrConfig = errors.New("invalid layout configuration")
	// ErrInternal marks a broken invariant inside the engine.
	ErrInternal = errors.New("internal layout error")
)

// ConfigError identifies the violated configuration constraint.
type ConfigError struct {
	Field  string
	Reason string
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("invalid layout configuration: %s %s", e.Field, e.Reason)
}

func (e *ConfigError) Unwrap() error { return ErrConfig }
