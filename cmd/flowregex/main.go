// Command flowregex compiles a pattern and matches it against a text from
// the command line.
//
//	flowregex [-d] <pattern> <text>
//
// On success it prints the ascending, space-separated list of end
// positions to stdout and exits 0, even when that list is empty. A
// pattern that fails to compile, or a text that exceeds the configured
// length limit, prints the failure kind in red and exits 1.
//
// The -d flag additionally runs the match a second time through a
// matchmask.Table built over the pattern's literal alphabet, and prints
// both result sets side by side so accelerator equivalence can be
// checked by eye on arbitrary input.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/fatih/color"

	"github.com/flowregex/flowregex"
	"github.com/flowregex/flowregex/matchmask"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout))
}

func run(args []string, out io.Writer) int {
	fs := flag.NewFlagSet("flowregex", flag.ContinueOnError)
	debug := fs.Bool("d", false, "build a MatchMask table and print the accelerated result alongside the general one")
	fs.Usage = func() {
		fmt.Fprintln(fs.Output(), "usage: flowregex [-d] <pattern> <text>")
		fs.PrintDefaults()
	}
	if err := fs.Parse(args); err != nil {
		return 1
	}
	if fs.NArg() != 2 {
		fs.Usage()
		return 1
	}
	pattern, text := fs.Arg(0), fs.Arg(1)

	m, err := flowregex.Compile(pattern)
	if err != nil {
		printError(err)
		return 1
	}

	general, err := m.MatchString(text, nil)
	if err != nil {
		printError(err)
		return 1
	}

	if *debug {
		table := matchmask.Build([]byte(text), m.Literals())
		accelerated, err := m.MatchString(text, table)
		if err != nil {
			printError(err)
			return 1
		}
		green := color.New(color.FgGreen)
		yellow := color.New(color.FgYellow)
		green.Fprintf(out, "general:     %v\n", general)
		green.Fprintf(out, "accelerated: %v\n", accelerated)
		yellow.Fprintf(out, "alphabet:    %q\n", table.Alphabet())
	}

	fmt.Fprintln(out, formatPositions(general))
	return 0
}

func formatPositions(positions []int) string {
	parts := make([]string, len(positions))
	for i, p := range positions {
		parts[i] = strconv.Itoa(p)
	}
	return strings.Join(parts, " ")
}

func printError(err error) {
	red := color.New(color.FgRed)
	var fe *flowregex.Error
	if errors.As(err, &fe) {
		red.Fprintf(os.Stderr, "flowregex: %s: %v\n", fe.Kind, fe.Err)
		return
	}
	red.Fprintf(os.Stderr, "flowregex: %v\n", err)
}
