package main

import (
	"fmt"
	"strings"

	"github.com/jallum/linework/internal/layout"
	"github.com/jallum/linework/internal/profile"
)

func cmdProfile(args []string, w Writer) error {
	if len(args) == 0 {
		return fmt.Errorf("usage: lw profile list|show|save")
	}
	store, err := profile.Load(files, profile.DefaultFile)
	if err != nil {
		return err
	}

	switch args[0] {
	case "list":
		names := store.Names()
		if len(names) == 0 {
			fmt.Fprintf(w, "no profiles in %s\n", store.Path())
			return nil
		}
		for _, name := range names {
			p, _ := store.Get(name)
			fmt.Fprintf(w, "%-16s %s\n", w.Style(name, Bold), describe(p))
		}

	case "show":
		if len(args) < 2 {
			return fmt.Errorf("usage: lw profile show <name>")
		}
		p, ok := store.Get(args[1])
		if !ok {
			return fmt.Errorf("unknown profile: %s", args[1])
		}
		out, err := profile.Marshal(p)
		if err != nil {
			return err
		}
		fmt.Fprint(w, out)

	case "save":
		if len(args) < 2 {
			return fmt.Errorf("usage: lw profile save <name> [flags]")
		}
		name := args[1]
		a, err := parseFlags(args[2:], layoutFlags)
		if err != nil {
			return err
		}
		if a.Has("--profile") {
			return fmt.Errorf("--profile cannot be saved into a profile")
		}
		p, err := profileFromArgs(a)
		if err != nil {
			return err
		}
		// Reject profiles that could never lay anything out.
		c, err := store.Config(p, layout.DefaultConfig(), name)
		if err != nil {
			return err
		}
		if c.Format.IsDropCap() && len(c.DropCap) == 0 {
			c.DropCap = layout.BoxGlyph('x')
		}
		if err := c.Validate(); err != nil {
			return err
		}
		store.Put(name, p)
		if err := store.Save(); err != nil {
			return err
		}
		fmt.Fprintf(w, "saved %s to %s\n", name, store.Path())

	default:
		return fmt.Errorf("usage: lw profile list|show|save")
	}
	return nil
}

// describe summarizes the options a profile sets.
func describe(p profile.Profile) string {
	var parts []string
	if p.Width != nil {
		parts = append(parts, fmt.Sprintf("width=%d", *p.Width))
	}
	if p.Align != nil {
		parts = append(parts, "align="+p.Align.String())
	}
	if p.Format != nil {
		parts = append(parts, "format="+p.Format.String())
	}
	switch {
	case len(p.DropCap.Lines) > 0:
		parts = append(parts, fmt.Sprintf("dropcap=%d lines", len(p.DropCap.Lines)))
	case p.DropCap.Source != "":
		parts = append(parts, "dropcap="+p.DropCap.Source)
	}
	if p.Frame {
		parts = append(parts, "frame")
	}
	if len(parts) == 0 {
		return "(defaults)"
	}
	return strings.Join(parts, " ")
}
