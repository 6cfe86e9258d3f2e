package profile

import (
	"errors"
	"reflect"
	"strings"
	"testing"

	"github.com/go-git/go-billy/v5"
	"github.com/go-git/go-billy/v5/memfs"
	"github.com/go-git/go-billy/v5/util"

	"github.com/jallum/linework/internal/layout"
)

const sample = `profiles:
  notice:
    width: 60
    align: justify-left
    format: dropcap
    dropcap: box
  help:
    format: hanging
    hanging_indent: 2
    left_pad: "."
  fancy:
    format: dropcap-padded
    dropcap: glyphs/a.txt
    dropcap_gap: 2
    lines_after_dropcap: 3
  inline:
    format: dropcap
    dropcap:
      - "/\\"
      - "\\/"
`

func intp(n int) *int { return &n }

func newFS(t *testing.T, files map[string]string) billy.Filesystem {
	t.Helper()
	fs := memfs.New()
	for name, body := range files {
		if err := util.WriteFile(fs, name, []byte(body), 0o644); err != nil {
			t.Fatalf("WriteFile(%s): %v", name, err)
		}
	}
	return fs
}

func TestLoadMissingFile(t *testing.T) {
	s, err := Load(memfs.New(), DefaultFile)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if names := s.Names(); len(names) != 0 {
		t.Errorf("Names() = %q, want none", names)
	}
}

func TestLoadEmptyFile(t *testing.T) {
	s, err := Load(newFS(t, map[string]string{DefaultFile: ""}), DefaultFile)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if names := s.Names(); len(names) != 0 {
		t.Errorf("Names() = %q, want none", names)
	}
}

func TestLoadProfiles(t *testing.T) {
	s, err := Load(newFS(t, map[string]string{DefaultFile: sample}), DefaultFile)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if got, want := s.Names(), []string{"fancy", "help", "inline", "notice"}; !reflect.DeepEqual(got, want) {
		t.Errorf("Names() = %q, want %q", got, want)
	}
	p, ok := s.Get("notice")
	if !ok {
		t.Fatal("notice profile missing")
	}
	if p.Width == nil || *p.Width != 60 || p.Align == nil || *p.Align != layout.AlignJustifyLeft {
		t.Errorf("notice = %+v", p)
	}
	if p.DropCap.Source != BoxSource {
		t.Errorf("DropCap.Source = %q, want box", p.DropCap.Source)
	}
	inline, _ := s.Get("inline")
	if want := []string{`/\`, `\/`}; !reflect.DeepEqual(inline.DropCap.Lines, want) {
		t.Errorf("inline DropCap.Lines = %q, want %q", inline.DropCap.Lines, want)
	}
}

func TestLoadRejectsUnknownKeys(t *testing.T) {
	doc := "profiles:\n  bad:\n    widht: 10\n"
	if _, err := Load(newFS(t, map[string]string{DefaultFile: doc}), DefaultFile); err == nil {
		t.Error("expected error for unknown key")
	}
}

func TestLoadRejectsBadEnum(t *testing.T) {
	doc := "profiles:\n  bad:\n    align: sideways\n"
	if _, err := Load(newFS(t, map[string]string{DefaultFile: doc}), DefaultFile); err == nil {
		t.Error("expected error for unknown alignment")
	}
}

func TestConfigOverlay(t *testing.T) {
	s, err := Load(newFS(t, map[string]string{DefaultFile: sample}), DefaultFile)
	if err != nil {
		t.Fatal(err)
	}
	p, _ := s.Get("help")
	c, err := s.Config(p, layout.DefaultConfig(), "text")
	if err != nil {
		t.Fatal(err)
	}
	if c.Format != layout.FormatHanging || c.HangingIndent != 2 || c.LeftPad != '.' {
		t.Errorf("Config = %+v", c)
	}
	if c.Width != 80 || c.RightPad != ' ' {
		t.Errorf("defaults lost: %+v", c)
	}
}

func TestConfigRejectsZeroNumbers(t *testing.T) {
	tests := []struct {
		doc, field string
	}{
		{"width: 0", "width"},
		{"hanging_indent: 0", "hanging indent"},
		{"first_line_indent: -2", "first line indent"},
		{"dropcap_gap: 0", "drop cap gap"},
		{"lines_after_dropcap: 0", "lines after drop cap"},
	}
	for _, tt := range tests {
		doc := "profiles:\n  zero:\n    " + tt.doc + "\n"
		s, err := Load(newFS(t, map[string]string{DefaultFile: doc}), DefaultFile)
		if err != nil {
			t.Fatalf("Load(%q): %v", tt.doc, err)
		}
		p, _ := s.Get("zero")
		_, err = s.Config(p, layout.DefaultConfig(), "text")
		if !errors.Is(err, layout.ErrConfig) {
			t.Errorf("Config(%q) err = %v, want ErrConfig", tt.doc, err)
			continue
		}
		var ce *layout.ConfigError
		if errors.As(err, &ce) && ce.Field != tt.field {
			t.Errorf("Config(%q) Field = %q, want %q", tt.doc, ce.Field, tt.field)
		}
	}
}

func TestConfigBoxGlyph(t *testing.T) {
	s, err := Load(newFS(t, map[string]string{DefaultFile: sample}), DefaultFile)
	if err != nil {
		t.Fatal(err)
	}
	p, _ := s.Get("notice")
	c, err := s.Config(p, layout.DefaultConfig(), "  welcome aboard")
	if err != nil {
		t.Fatal(err)
	}
	if want := layout.BoxGlyph('W'); !reflect.DeepEqual(c.DropCap, want) {
		t.Errorf("DropCap = %q, want %q", c.DropCap, want)
	}
	lines, err := layout.Layout("welcome aboard, everyone", c)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.HasPrefix(lines[1], "| W | ") {
		t.Errorf("line 1 = %q, want glyph prefix", lines[1])
	}
}

func TestConfigGlyphFile(t *testing.T) {
	fs := newFS(t, map[string]string{
		DefaultFile:    sample,
		"glyphs/a.txt": " /\\ \r\n/--\\\r\n",
	})
	s, err := Load(fs, DefaultFile)
	if err != nil {
		t.Fatal(err)
	}
	p, _ := s.Get("fancy")
	c, err := s.Config(p, layout.DefaultConfig(), "Alpha")
	if err != nil {
		t.Fatal(err)
	}
	if want := []string{` /\ `, `/--\`}; !reflect.DeepEqual(c.DropCap, want) {
		t.Errorf("DropCap = %q, want %q", c.DropCap, want)
	}
	if c.DropCapGap != 2 || c.LinesAfterDropCap != 3 || c.Format != layout.FormatDropCapPadded {
		t.Errorf("Config = %+v", c)
	}
	if err := c.Validate(); err != nil {
		t.Errorf("Validate() = %v", err)
	}
}

func TestConfigMissingGlyphFile(t *testing.T) {
	s, _ := Load(memfs.New(), DefaultFile)
	p := Profile{DropCap: Glyph{Source: "nope.txt"}}
	if _, err := s.Config(p, layout.DefaultConfig(), "x"); err == nil {
		t.Error("expected error for missing glyph file")
	}
}

func TestConfigBadPad(t *testing.T) {
	s, _ := Load(memfs.New(), DefaultFile)
	if _, err := s.Config(Profile{LeftPad: "ab"}, layout.DefaultConfig(), ""); err == nil {
		t.Error("expected error for two-character pad")
	}
}

func TestSaveRoundTrip(t *testing.T) {
	fs := memfs.New()
	s, _ := Load(fs, DefaultFile)
	align := layout.AlignCenter
	format := layout.FormatFirstLine
	s.Put("banner", Profile{Width: intp(40), Align: &align, Format: &format, Indent: intp(2), Frame: true})
	if err := s.Save(); err != nil {
		t.Fatalf("Save: %v", err)
	}

	raw, err := util.ReadFile(fs, DefaultFile)
	if err != nil {
		t.Fatal(err)
	}
	for _, want := range []string{"banner:", "align: center", "format: first-line", "first_line_indent: 2", "frame: true"} {
		if !strings.Contains(string(raw), want) {
			t.Errorf("saved file missing %q:\n%s", want, raw)
		}
	}
	if strings.Contains(string(raw), "dropcap") {
		t.Errorf("saved file has empty dropcap:\n%s", raw)
	}

	again, err := Load(fs, DefaultFile)
	if err != nil {
		t.Fatal(err)
	}
	p, ok := again.Get("banner")
	if !ok || p.Width == nil || *p.Width != 40 || *p.Align != layout.AlignCenter || !p.Frame {
		t.Errorf("reloaded = %+v, %v", p, ok)
	}
}

func TestChar(t *testing.T) {
	tests := []struct {
		in   string
		want rune
		ok   bool
	}{
		{"*", '*', true},
		{"·", '·', true},
		{"", 0, false},
		{"ab", 0, false},
	}
	for _, tt := range tests {
		got, err := Char(tt.in)
		if (err == nil) != tt.ok || got != tt.want {
			t.Errorf("Char(%q) = %q, %v", tt.in, got, err)
		}
	}
}
