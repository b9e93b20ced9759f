/*
© 2026–present nstree contributors
ISC License
*/

package main

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/kballard/go-shellquote"
	"github.com/mattn/go-isatty"
	"golang.org/x/term"

	"github.com/relleum/nstree/nserrors"
	"github.com/relleum/nstree/nstree"
)

// isInteractive reports whether f looks like a terminal worth printing a
// prompt to. term.IsTerminal is tried first; on platforms or file
// descriptors where it returns false for a genuine terminal, isatty.IsTerminal
// is consulted as a fallback (SPEC_FULL.md, DOMAIN STACK: go-isatty).
func isInteractive(f *os.File) bool {
	fd := int(f.Fd())
	if term.IsTerminal(fd) {
		return true
	}
	return isatty.IsTerminal(f.Fd())
}

// runREPL reads one command per line from in, tokenizes it with
// shellquote.Split so that quoted pathname components may contain spaces
// (spec.md §6), and dispatches it against tr. Writes go to out.
func runREPL(tr *nstree.Tree, in io.Reader, out io.Writer) {
	prompt := ""
	if f, ok := in.(*os.File); ok && isInteractive(f) {
		prompt = "nstree> "
	}

	scanner := bufio.NewScanner(in)
	if prompt != "" {
		fmt.Fprint(out, prompt)
	}
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line != "" {
			args, err := shellquote.Split(line)
			if err != nil {
				fmt.Fprintf(out, "parse error: %v\n", err)
			} else if len(args) > 0 {
				dispatch(tr, args, out)
			}
		}
		if prompt != "" {
			fmt.Fprint(out, prompt)
		}
	}
}

// dispatch executes one tokenized command line against tr.
func dispatch(tr *nstree.Tree, args []string, out io.Writer) {
	cmd, rest := args[0], args[1:]
	switch cmd {
	case "insert-dir", "mkdir":
		if len(rest) != 1 {
			fmt.Fprintln(out, "usage: insert-dir <path>")
			return
		}
		report(out, tr.InsertDirectory(rest[0]))
	case "insert-file", "touch":
		if len(rest) < 1 {
			fmt.Fprintln(out, "usage: insert-file <path> [content]")
			return
		}
		var content []byte
		if len(rest) > 1 {
			content = []byte(strings.Join(rest[1:], " "))
		}
		report(out, tr.InsertFile(rest[0], content))
	case "remove-dir", "rmdir":
		if len(rest) != 1 {
			fmt.Fprintln(out, "usage: remove-dir <path>")
			return
		}
		freed, err := tr.RemoveDirectory(rest[0])
		if err != nil {
			report(out, err)
			return
		}
		fmt.Fprintf(out, "freed %d node(s)\n", freed)
	case "remove-file", "rm":
		if len(rest) != 1 {
			fmt.Fprintln(out, "usage: remove-file <path>")
			return
		}
		report(out, tr.RemoveFile(rest[0]))
	case "stat":
		if len(rest) != 1 {
			fmt.Fprintln(out, "usage: stat <path>")
			return
		}
		isFile, size, err := tr.Stat(rest[0])
		if err != nil {
			report(out, err)
			return
		}
		writeStatTable(out, rest[0], isFile, size)
	case "ls":
		s, err := tr.Serialize()
		if err != nil {
			report(out, err)
			return
		}
		writeListingTable(out, tr, s)
	case "replace":
		if len(rest) < 1 {
			fmt.Fprintln(out, "usage: replace <path> [content]")
			return
		}
		var content []byte
		if len(rest) > 1 {
			content = []byte(strings.Join(rest[1:], " "))
		}
		old, ok := tr.ReplaceFileContents(rest[0], content)
		if !ok {
			fmt.Fprintln(out, "error: not a file in the tree")
			return
		}
		fmt.Fprintf(out, "old contents: %q\n", old)
	case "cat":
		if len(rest) != 1 {
			fmt.Fprintln(out, "usage: cat <path>")
			return
		}
		content, ok := tr.ReadFileContents(rest[0])
		if !ok {
			fmt.Fprintln(out, "error: not a file in the tree")
			return
		}
		fmt.Fprintf(out, "%s\n", content)
	case "count":
		fmt.Fprintln(out, tr.Count())
	case "diag":
		printDiag(tr)
	case "help":
		fmt.Fprintln(out, "commands: insert-dir insert-file remove-dir remove-file stat ls replace cat count diag help quit")
	case "quit", "exit":
		os.Exit(0)
	default:
		fmt.Fprintf(out, "unknown command %q; try help\n", cmd)
	}
}

func report(out io.Writer, err error) {
	if err == nil {
		fmt.Fprintln(out, "ok")
		return
	}
	fmt.Fprintf(out, "error [%s]: %v\n", nserrors.Code(err), err)
}
