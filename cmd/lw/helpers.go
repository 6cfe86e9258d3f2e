package main

import (
	"fmt"
	"os"
	"strconv"
	"strings"
)

func fatal(msg string) {
	fmt.Fprintf(os.Stderr, "error: %s\n", msg)
	os.Exit(1)
}

func hasFlag(args []string, flag string) bool {
	for _, a := range args {
		if a == flag {
			return true
		}
	}
	return false
}

// removeFlag returns args without any occurrence of flag.
func removeFlag(args []string, flag string) []string {
	out := make([]string, 0, len(args))
	for _, a := range args {
		if a != flag {
			out = append(out, a)
		}
	}
	return out
}

// Args holds parsed command-line arguments separated into boolean flags,
// key-value flags, and positional arguments.
type Args struct {
	bools map[string]bool
	flags map[string]string
	pos   []string
}

// ParseArgs separates raw args into booleans, key-value pairs, and positionals.
// valueFlags lists flags that consume the next token as a value (e.g. "--width").
// boolFlags lists boolean flags (e.g. "--frame").
// Any "--" prefixed token not in valueFlags or boolFlags returns an error,
// as does a value flag with nothing after it. A lone "-" is positional.
func ParseArgs(raw []string, valueFlags []string, boolFlags []string) (Args, error) {
	vf := make(map[string]bool, len(valueFlags))
	for _, f := range valueFlags {
		vf[f] = true
	}
	bf := make(map[string]bool, len(boolFlags))
	for _, f := range boolFlags {
		bf[f] = true
	}

	a := Args{
		bools: make(map[string]bool),
		flags: make(map[string]string),
	}

	for i := 0; i < len(raw); i++ {
		tok := raw[i]
		if !strings.HasPrefix(tok, "--") {
			a.pos = append(a.pos, tok)
			continue
		}

		switch {
		case vf[tok]:
			if i+1 >= len(raw) {
				return a, fmt.Errorf("flag %s needs a value", tok)
			}
			a.flags[tok] = raw[i+1]
			i++
		case bf[tok]:
			a.bools[tok] = true
		default:
			return a, fmt.Errorf("unknown flag: %s", tok)
		}
	}
	return a, nil
}

// Bool returns true if the named boolean flag was present.
func (a Args) Bool(name string) bool { return a.bools[name] }

// String returns the value of a key-value flag, or "" if absent.
func (a Args) String(name string) string { return a.flags[name] }

// IntErr returns the parsed int, whether the flag was set, and any parse error.
func (a Args) IntErr(name string) (int, bool, error) {
	v, ok := a.flags[name]
	if !ok {
		return 0, false, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, true, fmt.Errorf("invalid %s: %s", name, v)
	}
	return n, true, nil
}

// Has returns true if a key-value flag was provided.
func (a Args) Has(name string) bool {
	_, ok := a.flags[name]
	return ok
}

// Pos returns all positional arguments.
func (a Args) Pos() []string { return a.pos }

// PosFirst returns the first positional argument, or "" if none.
func (a Args) PosFirst() string {
	if len(a.pos) > 0 {
		return a.pos[0]
	}
	return ""
}

// PosJoined returns all positional args joined with spaces.
func (a Args) PosJoined() string { return strings.Join(a.pos, " ") }
