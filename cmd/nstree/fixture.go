/*
© 2026–present nstree contributors
ISC License
*/

package main

import (
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v2"

	"github.com/relleum/nstree/nserrors"
	"github.com/relleum/nstree/nstree"
)

// fixtureOp is one operation in a --fixture YAML file: a convenience batch
// format for driving the engine at startup, not a persistence format for
// its internal state (spec.md's persistence Non-goal is unaffected: the
// tree built from a fixture lives only in memory, same as one built
// interactively).
type fixtureOp struct {
	Op      string `yaml:"op"`
	Path    string `yaml:"path"`
	Content string `yaml:"content"`
}

type fixtureFile struct {
	Operations []fixtureOp `yaml:"operations"`
}

// runFixture loads path as YAML and replays its operations against tr in
// order, reporting each to out. Replay stops at the first operation whose
// error is not one of the idempotent ones (ALREADY_IN_TREE is reported but
// does not abort the batch, since fixtures are often re-run against a
// tree built incrementally by prior runs).
func runFixture(tr *nstree.Tree, path string, out io.Writer) (err error) {
	var data []byte
	if data, err = os.ReadFile(path); err != nil {
		return
	}
	var f fixtureFile
	if err = yaml.Unmarshal(data, &f); err != nil {
		return
	}

	for i, op := range f.Operations {
		var opErr error
		switch op.Op {
		case "insert-dir":
			opErr = tr.InsertDirectory(op.Path)
		case "insert-file":
			opErr = tr.InsertFile(op.Path, []byte(op.Content))
		case "remove-dir":
			_, opErr = tr.RemoveDirectory(op.Path)
		case "remove-file":
			opErr = tr.RemoveFile(op.Path)
		default:
			return fmt.Errorf("fixture operation %d: unknown op %q", i, op.Op)
		}
		report(out, opErr)
		if opErr != nil && nserrors.Code(opErr) != nserrors.ALREADY_IN_TREE {
			return fmt.Errorf("fixture operation %d: %w", i, opErr)
		}
	}
	return nil
}
