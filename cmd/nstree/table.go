/*
© 2026–present nstree contributors
ISC License
*/

package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/term"
	"golang.org/x/text/width"

	"github.com/relleum/nstree/nstree"
)

// defaultTerminalWidth is used when the output is not a terminal or its
// size cannot be determined.
const defaultTerminalWidth = 80

// outputWidth returns the column width to wrap table output to, consulting
// term.GetSize when out is a terminal (SPEC_FULL.md, DOMAIN STACK: x/term).
func outputWidth(out io.Writer) int {
	f, ok := out.(*os.File)
	if !ok {
		return defaultTerminalWidth
	}
	fd := int(f.Fd())
	if !term.IsTerminal(fd) {
		return defaultTerminalWidth
	}
	w, _, err := term.GetSize(fd)
	if err != nil || w <= 0 {
		return defaultTerminalWidth
	}
	return w
}

// displayWidth normalizes fullwidth/halfwidth forms before measuring a
// pathname's column width, so table alignment is consistent regardless of
// which form a path's bytes happen to use (SPEC_FULL.md, DOMAIN STACK:
// x/text). nstree itself performs no Unicode normalization of stored
// paths (spec.md §9, Non-goals): this is presentation-only.
func displayWidth(s string) int {
	return len([]rune(width.Narrow.String(s)))
}

// writeStatTable prints one path/kind/size row, truncating the path column
// to fit the terminal width.
func writeStatTable(out io.Writer, pathStr string, isFile bool, size int) {
	kind := "dir"
	sizeCol := "-"
	if isFile {
		kind = "file"
		sizeCol = fmt.Sprintf("%d", size)
	}
	limit := outputWidth(out) - len(" kind size") - 2
	fmt.Fprintf(out, "%-*s %-4s %s\n", clamp(limit, 1, 64), truncate(pathStr, limit), kind, sizeCol)
}

// writeListingTable prints Serialize's newline-separated listing as a
// terminal-width-aware table, annotating each line with its node kind via
// tr.Stat.
func writeListingTable(out io.Writer, tr *nstree.Tree, serialized string) {
	limit := outputWidth(out) - len(" dir") - 1
	lines := strings.Split(strings.TrimRight(serialized, "\n"), "\n")
	for _, l := range lines {
		if l == "" {
			continue
		}
		isFile, _, err := tr.Stat(l)
		kind := "dir"
		if err == nil && isFile {
			kind = "file"
		}
		fmt.Fprintf(out, "%-*s %s\n", clamp(limit, 1, 96), truncate(l, limit), kind)
	}
}

func truncate(s string, limit int) string {
	if displayWidth(s) <= limit || limit <= 0 {
		return s
	}
	r := []rune(s)
	if limit > 1 {
		return string(r[:limit-1]) + "…"
	}
	return string(r[:limit])
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
