package main

import (
	"fmt"
	"io"
	"os"

	"github.com/go-git/go-billy/v5"
	"github.com/go-git/go-billy/v5/osfs"
	"golang.org/x/term"
)

const version = "0.1.0"

var (
	// files resolves input files, glyph files and the profile document.
	files billy.Filesystem = osfs.Default
	// stdin is read when format gets no text.
	stdin io.Reader = os.Stdin
)

func main() {
	args := os.Args[1:]
	plain := hasFlag(args, "--plain")
	args = removeFlag(args, "--plain")
	w := stdoutWriter(plain)

	if len(args) == 0 {
		printUsage(w)
		os.Exit(1)
	}
	if err := run(args, w); err != nil {
		fatal(err.Error())
	}
}

// stdoutWriter styles output and sizes it to the terminal when stdout
// is one.
func stdoutWriter(plain bool) Writer {
	fd := int(os.Stdout.Fd())
	if !term.IsTerminal(fd) {
		return PlainWriter(os.Stdout)
	}
	width, _, err := term.GetSize(fd)
	if err != nil {
		width = 0
	}
	if plain || os.Getenv("NO_COLOR") != "" {
		return SizedWriter(os.Stdout, width)
	}
	return ColorWriter(os.Stdout, width)
}

// run dispatches one command line, without the program name.
func run(args []string, w Writer) error {
	name, rest := args[0], args[1:]
	switch name {
	case "--version", "-v":
		fmt.Fprintln(w, "lw "+version)
		return nil
	case "--help", "-h", "help":
		if len(rest) == 0 {
			printUsage(w)
			return nil
		}
		c, ok := commandMap[rest[0]]
		if !ok {
			return fmt.Errorf("unknown command: %s", rest[0])
		}
		printCommandHelp(w, c)
		return nil
	}

	c, ok := commandMap[name]
	if !ok {
		return fmt.Errorf("unknown command: %s (see \"lw --help\")", name)
	}
	if hasFlag(rest, "--help") || hasFlag(rest, "-h") {
		printCommandHelp(w, c)
		return nil
	}
	return c.Run(rest, w)
}
