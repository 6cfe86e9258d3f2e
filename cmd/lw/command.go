package main

import (
	"fmt"
	"strings"

	"github.com/jallum/linework/internal/layout"
	"github.com/jallum/linework/internal/profile"
)

// Flag describes a single command-line flag.
type Flag struct {
	Long  string // e.g. "--width"
	Short string // e.g. "-w" (optional)
	Value string // metavar for help, e.g. "N"; empty means boolean
	Help  string
}

// Positional describes a positional argument.
type Positional struct {
	Name     string // e.g. "<text...>"
	Required bool
	Help     string
}

// Example describes a usage example shown in per-command help.
type Example struct {
	Cmd  string
	Help string
}

// Command describes a CLI subcommand.
type Command struct {
	Name        string
	Aliases     []string
	Summary     string // one-line description for top-level usage
	Description string // shown in per-command help (falls back to Summary)
	Positionals []Positional
	Flags       []Flag
	Examples    []Example
	Run         func(args []string, w Writer) error
}

// expandAliases replaces short flags with their long equivalents.
func expandAliases(raw []string, flags []Flag) []string {
	shorts := make(map[string]string, len(flags))
	for _, f := range flags {
		if f.Short != "" {
			shorts[f.Short] = f.Long
		}
	}
	result := make([]string, len(raw))
	for i, tok := range raw {
		if long, ok := shorts[tok]; ok {
			result[i] = long
		} else {
			result[i] = tok
		}
	}
	return result
}

// commands defines all CLI subcommands.
var commands = []Command{
	{
		Name:    "format",
		Aliases: []string{"fmt"},
		Summary: "Lay text out in fixed-width lines",
		Description: "Lay text out for the terminal. Whitespace runs collapse to single spaces; " +
			"line breaks and HTML break tags force new lines. Text comes from the arguments, " +
			"from --file, or from standard input when neither is given (or the argument is -).",
		Positionals: []Positional{
			{Name: "[text...]", Help: "Text to lay out (multiple words joined)"},
		},
		Flags: formatFlags,
		Examples: []Example{
			{Cmd: `lw format -w 40 --align justify-left "Some long paragraph ..."`},
			{Cmd: `lw format --format hanging --hanging 2 --file notes.txt`},
			{Cmd: `lw format --format dropcap --dropcap box --frame < story.txt`, Help: "Boxed initial, framed result"},
			{Cmd: `lw format -p notice "Maintenance tonight"`, Help: "Use a saved profile"},
		},
		Run: cmdFormat,
	},
	{
		Name:        "profile",
		Summary:     "List, show or save layout profiles",
		Description: "Manage named layouts stored in " + profile.DefaultFile + ". Subcommands: list, show, save.",
		Positionals: []Positional{
			{Name: "list|show|save", Required: true, Help: "Subcommand"},
			{Name: "[name]", Help: "Profile name (show, save)"},
		},
		Flags: layoutFlags,
		Examples: []Example{
			{Cmd: "lw profile save notice -w 60 -a justify-left -f dropcap --dropcap box"},
			{Cmd: "lw profile show notice"},
			{Cmd: "lw profile list"},
		},
		Run: cmdProfile,
	},
	{
		Name:        "log",
		Summary:     "Show recent commit messages, laid out",
		Description: "Read the commit history of the current git repository and lay each message body out. Bodies default to justify-left.",
		Flags:       logFlags,
		Examples: []Example{
			{Cmd: "lw log -n 5"},
			{Cmd: "lw log --format first-line --indent 2"},
		},
		Run: cmdLog,
	},
}

// commandMap provides O(1) lookup by name.
var commandMap map[string]*Command

func init() {
	commandMap = make(map[string]*Command, len(commands))
	for i := range commands {
		commandMap[commands[i].Name] = &commands[i]
		for _, alias := range commands[i].Aliases {
			commandMap[alias] = &commands[i]
		}
	}
}

// commandGroups defines the display order for usage output.
var commandGroups = []struct {
	name string
	cmds []string
}{
	{"Layout", []string{"format", "log"}},
	{"Setup", []string{"profile"}},
}

// helpWidth is the width help text is laid out to.
func helpWidth(w Writer) int {
	if n := w.Width(); n > 0 {
		return min(n, 100)
	}
	return 80
}

// paragraph lays text out left aligned to the writer's width.
func paragraph(w Writer, text string) {
	lines, err := layout.Left(text, helpWidth(w))
	if err != nil {
		fmt.Fprintln(w, text)
		return
	}
	w.Lines(lines, true)
}

// column prints label padded to col, followed by text laid out in the
// remaining width with continuation lines under the text.
func column(w Writer, label string, col int, text string) {
	avail := helpWidth(w) - col - 1
	if text == "" || avail < 16 {
		fmt.Fprintf(w, "%-*s %s\n", col, label, text)
		return
	}
	lines, err := layout.Left(text, avail)
	if err != nil {
		fmt.Fprintf(w, "%-*s %s\n", col, label, text)
		return
	}
	if len(label) > col {
		fmt.Fprintln(w, label)
		label = ""
	}
	for i, l := range lines {
		if i > 0 {
			label = ""
		}
		fmt.Fprintf(w, "%-*s %s\n", col, label, strings.TrimRight(l, " "))
	}
}

func printUsage(w Writer) {
	fmt.Fprintln(w, "lw — lay text out for the terminal")
	fmt.Fprintf(w, "\n%s\n", w.Style("Usage:", Cyan))
	w.Push(2)
	fmt.Fprintln(w, "lw <command> [args]")
	fmt.Fprintln(w, "lw <command> --help")
	w.Pop()

	for _, g := range commandGroups {
		fmt.Fprintf(w, "\n%s\n", w.Style(g.name+":", Cyan))
		w.Push(2)
		for _, name := range g.cmds {
			c := commandMap[name]
			if c == nil {
				continue
			}
			usage := name
			for _, p := range c.Positionals {
				usage += " " + p.Name
			}
			if len(c.Flags) > 0 {
				usage += " [flags]"
			}
			column(w, usage, 28, c.Summary)
		}
		w.Pop()
	}

	fmt.Fprintf(w, "\n%s\n", w.Style("Global flags:", Cyan))
	w.Push(2)
	column(w, "--plain", 28, "Disable colors")
	column(w, "--version, -v", 28, "Print the version")
	w.Pop()

	fmt.Fprintln(w, "\nUse \"lw <command> --help\" for more information about a command.")
}

func printCommandHelp(w Writer, c *Command) {
	desc := c.Description
	if desc == "" {
		desc = c.Summary
	}
	paragraph(w, desc)

	usage := "lw " + c.Name
	for _, p := range c.Positionals {
		usage += " " + p.Name
	}
	if len(c.Flags) > 0 {
		usage += " [flags]"
	}
	fmt.Fprintf(w, "\n%s\n", w.Style("Usage:", Cyan))
	w.Push(2)
	fmt.Fprintln(w, usage)
	w.Pop()

	if len(c.Positionals) > 0 {
		fmt.Fprintf(w, "\n%s\n", w.Style("Arguments:", Cyan))
		w.Push(2)
		for _, p := range c.Positionals {
			column(w, p.Name, 24, p.Help)
		}
		w.Pop()
	}

	if len(c.Flags) > 0 {
		fmt.Fprintf(w, "\n%s\n", w.Style("Flags:", Cyan))
		w.Push(2)
		for _, f := range c.Flags {
			flag := f.Long
			if f.Short != "" {
				flag = f.Short + ", " + f.Long
			}
			if f.Value != "" {
				flag += " " + f.Value
			}
			column(w, flag, 24, f.Help)
		}
		w.Pop()
	}

	if len(c.Examples) > 0 {
		fmt.Fprintf(w, "\n%s\n", w.Style("Examples:", Cyan))
		w.Push(2)
		for _, ex := range c.Examples {
			fmt.Fprintln(w, ex.Cmd)
			if ex.Help != "" {
				w.Push(4)
				paragraph(w, ex.Help)
				w.Pop()
			}
		}
		w.Pop()
	}
}
