package main

import (
	"bytes"
	"io"
	"strings"
)

// Style is an ANSI text style.
type Style int

const (
	Bold Style = iota
	Dim
	Red
	Yellow
	Cyan
	Green
)

var styleCode = [...]string{
	Bold:   "\033[1m",
	Dim:    "\033[2m",
	Red:    "\033[31m",
	Yellow: "\033[33m",
	Cyan:   "\033[36m",
	Green:  "\033[32m",
}

const reset = "\033[0m"

// Writer is the output side of every command: an io.Writer that knows
// the terminal width, can style text, and indents every new line by the
// sum of an indent stack.
type Writer interface {
	io.Writer
	Style(s string, styles ...Style) string
	// Width returns the columns left after the current indent, or 0 when
	// the output width is unknown.
	Width() int
	// Push indents subsequent lines by n more columns.
	Push(n int)
	// Pop undoes the most recent Push.
	Pop()
	// Lines writes a laid-out block, one line per entry. Trailing fill
	// spaces are dropped when trim is set.
	Lines(lines []string, trim bool) error
}

type writer struct {
	out    io.Writer
	color  bool
	width  int
	indent []int
	pfx    string
	bol    bool
}

func newWriter(out io.Writer, color bool, width int) *writer {
	return &writer{out: out, color: color, width: width, bol: true}
}

// PlainWriter returns a Writer without styling or a known width.
func PlainWriter(out io.Writer) Writer { return newWriter(out, false, 0) }

// ColorWriter returns a styling Writer for a terminal of the given width.
func ColorWriter(out io.Writer, width int) Writer { return newWriter(out, true, width) }

// SizedWriter returns an unstyled Writer with a known width.
func SizedWriter(out io.Writer, width int) Writer { return newWriter(out, false, width) }

func (w *writer) Write(p []byte) (int, error) {
	written := 0
	for len(p) > 0 {
		if w.bol && w.pfx != "" {
			if _, err := io.WriteString(w.out, w.pfx); err != nil {
				return written, err
			}
		}
		line, rest, found := bytes.Cut(p, []byte{'\n'})
		if found {
			line = p[:len(line)+1]
		}
		n, err := w.out.Write(line)
		written += n
		if err != nil {
			return written, err
		}
		w.bol = found
		p = rest
	}
	return written, nil
}

func (w *writer) Style(s string, styles ...Style) string {
	if !w.color || len(styles) == 0 {
		return s
	}
	var b strings.Builder
	for _, st := range styles {
		if int(st) < len(styleCode) {
			b.WriteString(styleCode[st])
		}
	}
	b.WriteString(s)
	b.WriteString(reset)
	return b.String()
}

func (w *writer) Width() int {
	if w.width == 0 {
		return 0
	}
	return max(w.width-len(w.pfx), 1)
}

func (w *writer) Push(n int) {
	w.indent = append(w.indent, n)
	w.pfx = strings.Repeat(" ", sum(w.indent))
}

func (w *writer) Pop() {
	if len(w.indent) == 0 {
		return
	}
	w.indent = w.indent[:len(w.indent)-1]
	w.pfx = strings.Repeat(" ", sum(w.indent))
}

func (w *writer) Lines(lines []string, trim bool) error {
	for _, l := range lines {
		if trim {
			l = strings.TrimRight(l, " ")
		}
		if _, err := io.WriteString(w, l+"\n"); err != nil {
			return err
		}
	}
	return nil
}

func sum(ns []int) int {
	total := 0
	for _, n := range ns {
		total += n
	}
	return total
}
