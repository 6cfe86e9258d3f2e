package main

import (
	"fmt"
	"io"

	"github.com/go-git/go-billy/v5/util"

	"github.com/jallum/linework/internal/layout"
)

var formatFlags = append([]Flag{
	{Long: "--file", Value: "PATH", Help: "Read text from a file"},
}, layoutFlags...)

func cmdFormat(args []string, w Writer) error {
	a, err := parseFlags(args, formatFlags)
	if err != nil {
		return err
	}
	text, err := readInput(a)
	if err != nil {
		return err
	}

	base := baseConfig(w)
	opts, err := resolveLayout(a, text, base)
	if err != nil {
		return err
	}
	if opts.Frame && w.Width() > 0 && opts.Config.Width == base.Width && base.Width > 4 {
		// Keep the framed block within the terminal.
		opts.Config.Width -= 4
	}

	lines, err := layout.Layout(text, opts.Config)
	if err != nil {
		return err
	}
	if opts.Frame {
		lines = layout.Frame(lines)
	}
	return w.Lines(lines, false)
}

// readInput returns the text to lay out: --file, the positional
// arguments, or standard input.
func readInput(a Args) (string, error) {
	if a.Has("--file") {
		if len(a.Pos()) > 0 {
			return "", fmt.Errorf("give text or --file, not both")
		}
		b, err := util.ReadFile(files, a.String("--file"))
		if err != nil {
			return "", fmt.Errorf("read input: %w", err)
		}
		return string(b), nil
	}
	if len(a.Pos()) == 0 || (len(a.Pos()) == 1 && a.PosFirst() == "-") {
		b, err := io.ReadAll(stdin)
		if err != nil {
			return "", fmt.Errorf("read stdin: %w", err)
		}
		return string(b), nil
	}
	return a.PosJoined(), nil
}
