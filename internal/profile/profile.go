// Package profile stores named layout configurations in a YAML document.
//
// A profile file looks like:
//
//	profiles:
//	  notice:
//	    width: 60
//	    align: justify-left
//	    format: dropcap
//	    dropcap: box
//	  help:
//	    format: hanging
//	    hanging_indent: 2
//
// The dropcap key takes a list of glyph lines, the path of a glyph file
// (read from the same filesystem), or "box" for a generated glyph.
package profile

import (
	"errors"
	"fmt"
	"io"
	"os"
	"sort"
	"strings"
	"unicode/utf8"

	"github.com/go-git/go-billy/v5"
	"github.com/go-git/go-billy/v5/util"
	"gopkg.in/yaml.v3"

	"github.com/jallum/linework/internal/layout"
)

// DefaultFile is the profile document looked up in the working directory.
const DefaultFile = ".linework.yml"

// BoxSource selects the generated box glyph.
const BoxSource = "box"

// Glyph is a drop-cap glyph given either inline or by source.
type Glyph struct {
	Lines  []string
	Source string
}

// IsZero reports whether no glyph was given.
func (g Glyph) IsZero() bool { return len(g.Lines) == 0 && g.Source == "" }

func (g *Glyph) UnmarshalYAML(n *yaml.Node) error {
	switch n.Kind {
	case yaml.ScalarNode:
		return n.Decode(&g.Source)
	case yaml.SequenceNode:
		return n.Decode(&g.Lines)
	}
	return fmt.Errorf("line %d: dropcap must be a list of lines or a file name", n.Line)
}

func (g Glyph) MarshalYAML() (interface{}, error) {
	if len(g.Lines) > 0 {
		return g.Lines, nil
	}
	return g.Source, nil
}

// Profile holds layout options. Nil and empty fields keep the value they
// overlay; a number that is set is passed on as is, zero included, and
// left to layout.Config.Validate.
type Profile struct {
	Width      *int              `yaml:"width,omitempty"`
	Align      *layout.Alignment `yaml:"align,omitempty"`
	Format     *layout.Format    `yaml:"format,omitempty"`
	LeftPad    string            `yaml:"left_pad,omitempty"`
	RightPad   string            `yaml:"right_pad,omitempty"`
	InnerWS    string            `yaml:"inner_ws,omitempty"`
	Hanging    *int              `yaml:"hanging_indent,omitempty"`
	Indent     *int              `yaml:"first_line_indent,omitempty"`
	DropCap    Glyph             `yaml:"dropcap,omitempty"`
	Gap        *int              `yaml:"dropcap_gap,omitempty"`
	LinesAfter *int              `yaml:"lines_after_dropcap,omitempty"`
	Frame      bool              `yaml:"frame,omitempty"`
}

type document struct {
	Profiles map[string]Profile `yaml:"profiles"`
}

// Store is a set of profiles backed by one file on a billy filesystem.
type Store struct {
	fs       billy.Filesystem
	path     string
	profiles map[string]Profile
}

// Load reads the profile document at path. A missing file yields an
// empty store.
func Load(fs billy.Filesystem, path string) (*Store, error) {
	s := &Store{fs: fs, path: path, profiles: make(map[string]Profile)}
	f, err := fs.Open(path)
	if errors.Is(err, os.ErrNotExist) {
		return s, nil
	}
	if err != nil {
		return nil, fmt.Errorf("open profiles: %w", err)
	}
	defer f.Close()

	var doc document
	dec := yaml.NewDecoder(f)
	dec.KnownFields(true)
	if err := dec.Decode(&doc); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	for name, p := range doc.Profiles {
		s.profiles[name] = p
	}
	return s, nil
}

// Path returns the file the store reads from and saves to.
func (s *Store) Path() string { return s.path }

// Names returns the profile names in sorted order.
func (s *Store) Names() []string {
	names := make([]string, 0, len(s.profiles))
	for name := range s.profiles {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Get returns the named profile.
func (s *Store) Get(name string) (Profile, bool) {
	p, ok := s.profiles[name]
	return p, ok
}

// Put adds or replaces a profile. Call Save to persist it.
func (s *Store) Put(name string, p Profile) {
	s.profiles[name] = p
}

// Save writes every profile back to the store's file.
func (s *Store) Save() error {
	f, err := s.fs.Create(s.path)
	if err != nil {
		return fmt.Errorf("create %s: %w", s.path, err)
	}
	enc := yaml.NewEncoder(f)
	enc.SetIndent(2)
	if err := enc.Encode(document{Profiles: s.profiles}); err != nil {
		f.Close()
		return fmt.Errorf("write %s: %w", s.path, err)
	}
	if err := enc.Close(); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

// Marshal renders a single profile as YAML.
func Marshal(p Profile) (string, error) {
	b, err := yaml.Marshal(p)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

// Glyph resolves a glyph source against text: "box" draws the first
// character of text, anything else is a file holding one glyph line per
// line.
func (s *Store) Glyph(source, text string) ([]string, error) {
	if source == BoxSource {
		r, ok := layout.FirstRune(text)
		if !ok {
			r = ' '
		}
		return layout.BoxGlyph(r), nil
	}
	b, err := util.ReadFile(s.fs, source)
	if err != nil {
		return nil, fmt.Errorf("read glyph: %w", err)
	}
	lines := strings.Split(strings.TrimRight(string(b), "\r\n"), "\n")
	for i, l := range lines {
		lines[i] = strings.TrimSuffix(l, "\r")
	}
	return lines, nil
}

// Config overlays p on base. text is needed to resolve a box glyph. A
// number that is set but not positive is a *layout.ConfigError.
func (s *Store) Config(p Profile, base layout.Config, text string) (layout.Config, error) {
	c := base
	for _, f := range []struct {
		field string
		v     *int
		dst   *int
	}{
		{"width", p.Width, &c.Width},
		{"hanging indent", p.Hanging, &c.HangingIndent},
		{"first line indent", p.Indent, &c.FirstLineIndent},
		{"drop cap gap", p.Gap, &c.DropCapGap},
		{"lines after drop cap", p.LinesAfter, &c.LinesAfterDropCap},
	} {
		if f.v == nil {
			continue
		}
		if *f.v <= 0 {
			return c, &layout.ConfigError{Field: f.field, Reason: fmt.Sprintf("must be positive, got %d", *f.v)}
		}
		*f.dst = *f.v
	}
	if p.Align != nil {
		c.Alignment = *p.Align
	}
	if p.Format != nil {
		c.Format = *p.Format
	}
	for _, f := range []struct {
		name string
		v    string
		dst  *rune
	}{
		{"left_pad", p.LeftPad, &c.LeftPad},
		{"right_pad", p.RightPad, &c.RightPad},
		{"inner_ws", p.InnerWS, &c.InnerWS},
	} {
		if f.v == "" {
			continue
		}
		r, err := Char(f.v)
		if err != nil {
			return c, fmt.Errorf("%s: %w", f.name, err)
		}
		*f.dst = r
	}
	switch {
	case len(p.DropCap.Lines) > 0:
		c.DropCap = append([]string(nil), p.DropCap.Lines...)
	case p.DropCap.Source != "":
		g, err := s.Glyph(p.DropCap.Source, text)
		if err != nil {
			return c, err
		}
		c.DropCap = g
	}
	return c, nil
}

// Char parses a fill character given as a one-character string.
func Char(s string) (rune, error) {
	if utf8.RuneCountInString(s) != 1 {
		return 0, fmt.Errorf("want a single character, got %q", s)
	}
	r, _ := utf8.DecodeRuneInString(s)
	return r, nil
}
