/*
© 2026–present nstree contributors
ISC License
*/

// Command nstree is an interactive and scriptable driver for the
// [github.com/relleum/nstree/nstree] engine. It is the ambient CLI every repo in
// the teacher pack carries (SPEC_FULL.md, Module Layout); the engine itself
// has no file-system or network dependency of its own.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/relleum/nstree/nslog"
	"github.com/relleum/nstree/nstree"
)

var (
	flagVerbose = flag.String("verbose", "", "regular expression for selective debug output, matched against caller locations")
	flagDebug   = flag.Bool("debug", false, "global debug printing")
	flagFixture = flag.String("fixture", "", "YAML file of operations to replay before entering the prompt")
	flagDiag    = flag.Bool("diag", false, "print process diagnostics and exit")
	flagVersion = flag.Bool("version", false, "print version and exit")
)

const version = "0.1.0"

func main() {
	flag.Usage = usage
	flag.Parse()

	if *flagVersion {
		fmt.Println("nstree " + version)
		return
	}
	if *flagDebug {
		nslog.SetDebug(true)
	}
	if *flagVerbose != "" {
		if err := nslog.SetRegexp(*flagVerbose); err != nil {
			fmt.Fprintf(os.Stderr, "nstree: bad -verbose expression: %v\n", err)
			os.Exit(2)
		}
	}
	if *flagDiag {
		printDiag(nil)
		return
	}

	tr := &nstree.Tree{}
	if err := tr.Initialize(); err != nil {
		fmt.Fprintf(os.Stderr, "nstree: %v\n", err)
		os.Exit(1)
	}

	if *flagFixture != "" {
		if err := runFixture(tr, *flagFixture, os.Stdout); err != nil {
			fmt.Fprintf(os.Stderr, "nstree: fixture %s: %v\n", *flagFixture, err)
			os.Exit(1)
		}
	}

	runREPL(tr, os.Stdin, os.Stdout)
}

func usage() {
	fmt.Fprintln(os.Stderr, "nstree: an in-memory hierarchical namespace shell")
	flag.PrintDefaults()
}
