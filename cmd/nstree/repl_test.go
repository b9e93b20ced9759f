/*
© 2026–present nstree contributors
ISC License
*/

package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/relleum/nstree/nstree"
)

func newTestTree(t *testing.T) *nstree.Tree {
	t.Helper()
	tr := &nstree.Tree{}
	if err := tr.Initialize(); err != nil {
		t.Fatal(err)
	}
	return tr
}

func TestDispatchInsertAndLs(t *testing.T) {
	tr := newTestTree(t)
	var out bytes.Buffer

	dispatch(tr, []string{"insert-dir", "a/b/c"}, &out)
	dispatch(tr, []string{"insert-file", "a/b/f", "hello", "world"}, &out)
	out.Reset()

	dispatch(tr, []string{"ls"}, &out)
	got := out.String()
	for _, want := range []string{"a", "a/b", "a/b/f", "a/b/c"} {
		if !strings.Contains(got, want) {
			t.Fatalf("ls output %q missing %q", got, want)
		}
	}
}

func TestDispatchCatAndReplace(t *testing.T) {
	tr := newTestTree(t)
	var out bytes.Buffer

	dispatch(tr, []string{"insert-file", "d/f", "hi"}, &out)
	out.Reset()

	dispatch(tr, []string{"cat", "d/f"}, &out)
	if !strings.Contains(out.String(), "hi") {
		t.Fatalf("cat output = %q, want to contain %q", out.String(), "hi")
	}

	out.Reset()
	dispatch(tr, []string{"replace", "d/f", "bye"}, &out)
	if !strings.Contains(out.String(), "hi") {
		t.Fatalf("replace output = %q, want old contents %q", out.String(), "hi")
	}
}

func TestDispatchUnknownCommand(t *testing.T) {
	tr := newTestTree(t)
	var out bytes.Buffer
	dispatch(tr, []string{"bogus"}, &out)
	if !strings.Contains(out.String(), "unknown command") {
		t.Fatalf("unknown command output = %q", out.String())
	}
}

func TestDispatchStatReportsErrorCode(t *testing.T) {
	tr := newTestTree(t)
	var out bytes.Buffer
	dispatch(tr, []string{"stat", "missing"}, &out)
	if !strings.Contains(out.String(), "NO_SUCH_PATH") {
		t.Fatalf("stat of missing path = %q, want NO_SUCH_PATH", out.String())
	}
}
