package main

import (
	"fmt"
	"strings"

	"github.com/jallum/linework/internal/gitlog"
	"github.com/jallum/linework/internal/layout"
)

var logFlags = append([]Flag{
	{Long: "--limit", Short: "-n", Value: "N", Help: "Max commits to show (default 10)"},
}, layoutFlags...)

// openLog opens the history shown by the log command.
var openLog = func() (*gitlog.Log, error) {
	return gitlog.Open(".")
}

func cmdLog(args []string, w Writer) error {
	a, err := parseFlags(args, logFlags)
	if err != nil {
		return err
	}
	limit := 10
	if n, ok, err := a.IntErr("--limit"); err != nil {
		return err
	} else if ok {
		if n <= 0 {
			return fmt.Errorf("invalid --limit: %d (must be positive)", n)
		}
		limit = n
	}

	lg, err := openLog()
	if err != nil {
		return err
	}
	entries, err := lg.Recent(limit)
	if err != nil {
		return err
	}

	for i, e := range entries {
		if i > 0 {
			fmt.Fprintln(w)
		}
		fmt.Fprintf(w, "%s %s\n", w.Style(e.Short(), Yellow), w.Style(e.Subject, Bold))
		fmt.Fprintln(w, w.Style(e.Author+" · "+e.When.Format("2006-01-02 15:04"), Dim))
		if e.Body == "" {
			continue
		}

		fmt.Fprintln(w)
		w.Push(2)
		body := reflow(e.Body)
		base := baseConfig(w)
		base.Alignment = layout.AlignJustifyLeft
		opts, err := resolveLayout(a, body, base)
		if err == nil {
			var lines []string
			if lines, err = layout.Layout(body, opts.Config); err == nil {
				if opts.Frame {
					lines = layout.Frame(lines)
				}
				err = w.Lines(lines, true)
			}
		}
		w.Pop()
		if err != nil {
			return fmt.Errorf("commit %s: %w", e.Short(), err)
		}
	}
	return nil
}

// reflow joins the hard-wrapped lines of each paragraph of a commit
// body, keeping blank lines between paragraphs.
func reflow(body string) string {
	paras := strings.Split(strings.ReplaceAll(body, "\r\n", "\n"), "\n\n")
	kept := paras[:0]
	for _, p := range paras {
		if p = strings.Join(strings.Fields(p), " "); p != "" {
			kept = append(kept, p)
		}
	}
	return strings.Join(kept, "\n\n")
}
