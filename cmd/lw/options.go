package main

import (
	"fmt"

	"github.com/jallum/linework/internal/layout"
	"github.com/jallum/linework/internal/profile"
)

// layoutFlags are accepted by every command that lays text out.
var layoutFlags = []Flag{
	{Long: "--width", Short: "-w", Value: "N", Help: "Line width (default: terminal width, else 80)"},
	{Long: "--align", Short: "-a", Value: "MODE", Help: "left, right, center, justify, justify-left or justify-right"},
	{Long: "--format", Short: "-f", Value: "FORMAT", Help: "none, first-line, hanging, first-line-hanging, dropcap or dropcap-padded"},
	{Long: "--left-pad", Value: "C", Help: "Fill character on the left and for indents"},
	{Long: "--right-pad", Value: "C", Help: "Fill character on the right"},
	{Long: "--inner-ws", Value: "C", Help: "Character placed between words"},
	{Long: "--hanging", Value: "N", Help: "Hanging indent (default 4)"},
	{Long: "--indent", Value: "N", Help: "First line indent (default 4)"},
	{Long: "--dropcap", Value: "GLYPH", Help: "Glyph file, one glyph line per line, or \"box\" (default box)"},
	{Long: "--gap", Value: "N", Help: "Spaces between drop cap and text with dropcap-padded (default 3)"},
	{Long: "--after", Value: "N", Help: "Narrow lines kept below the drop cap (default 1)"},
	{Long: "--profile", Short: "-p", Value: "NAME", Help: "Start from a profile in " + profile.DefaultFile},
	{Long: "--frame", Help: "Draw a border around the result"},
}

// parseFlags parses raw against a flag table, expanding short aliases.
func parseFlags(raw []string, flags []Flag) (Args, error) {
	var vf, bf []string
	for _, f := range flags {
		if f.Value != "" {
			vf = append(vf, f.Long)
		} else {
			bf = append(bf, f.Long)
		}
	}
	return ParseArgs(expandAliases(raw, flags), vf, bf)
}

// baseConfig returns the default configuration sized to w.
func baseConfig(w Writer) layout.Config {
	c := layout.DefaultConfig()
	if n := w.Width(); n > 0 {
		c.Width = n
	}
	return c
}

// layoutOptions is what the layout flags resolve to.
type layoutOptions struct {
	Config layout.Config
	Frame  bool
}

// resolveLayout applies the selected profile and then the individual
// flags on top of base. text is the input, needed for box glyphs.
func resolveLayout(a Args, text string, base layout.Config) (layoutOptions, error) {
	opts := layoutOptions{Config: base}
	store, err := profile.Load(files, profile.DefaultFile)
	if err != nil {
		return opts, err
	}
	if name := a.String("--profile"); name != "" {
		p, ok := store.Get(name)
		if !ok {
			return opts, fmt.Errorf("unknown profile: %s", name)
		}
		if opts.Config, err = store.Config(p, opts.Config, text); err != nil {
			return opts, fmt.Errorf("profile %s: %w", name, err)
		}
		opts.Frame = p.Frame
	}

	p, err := profileFromArgs(a)
	if err != nil {
		return opts, err
	}
	if opts.Config, err = store.Config(p, opts.Config, text); err != nil {
		return opts, err
	}
	if p.Frame {
		opts.Frame = true
	}
	if opts.Config.Format.IsDropCap() && len(opts.Config.DropCap) == 0 {
		opts.Config.DropCap, _ = store.Glyph(profile.BoxSource, text)
	}
	return opts, nil
}

// profileFromArgs collects the layout flags into a profile.
func profileFromArgs(a Args) (profile.Profile, error) {
	var p profile.Profile
	ints := []struct {
		flag string
		dst  **int
	}{
		{"--width", &p.Width},
		{"--hanging", &p.Hanging},
		{"--indent", &p.Indent},
		{"--gap", &p.Gap},
		{"--after", &p.LinesAfter},
	}
	for _, f := range ints {
		n, ok, err := a.IntErr(f.flag)
		if err != nil {
			return p, err
		}
		if !ok {
			continue
		}
		if n <= 0 {
			return p, fmt.Errorf("invalid %s: %d (must be positive)", f.flag, n)
		}
		*f.dst = &n
	}
	if a.Has("--align") {
		v, err := layout.ParseAlignment(a.String("--align"))
		if err != nil {
			return p, err
		}
		p.Align = &v
	}
	if a.Has("--format") {
		v, err := layout.ParseFormat(a.String("--format"))
		if err != nil {
			return p, err
		}
		p.Format = &v
	}
	p.LeftPad = a.String("--left-pad")
	p.RightPad = a.String("--right-pad")
	p.InnerWS = a.String("--inner-ws")
	p.DropCap.Source = a.String("--dropcap")
	p.Frame = a.Bool("--frame")
	return p, nil
}
