/*
© 2026–present nstree contributors
ISC License
*/

package nsvalid

import (
	"testing"

	"github.com/relleum/nstree/nsnode"
	"github.com/relleum/nstree/nspath"
)

func mustPath(t *testing.T, s string) nspath.Path {
	t.Helper()
	p, err := nspath.New(s)
	if err != nil {
		t.Fatal(err)
	}
	return p
}

func TestCheckEmptyUninitialized(t *testing.T) {
	if !Check(Snapshot{}) {
		t.Fatal("empty, uninitialized snapshot should be valid")
	}
}

func TestCheckUninitializedWithGarbageIsInvalid(t *testing.T) {
	root, _ := nsnode.New(mustPath(t, "a"), nil, false, nil)
	if Check(Snapshot{Initialized: false, Root: root, Count: 1}) {
		t.Fatal("uninitialized snapshot with a root should be invalid")
	}
}

func TestCheckValidTree(t *testing.T) {
	root, _ := nsnode.New(mustPath(t, "a"), nil, false, nil)
	b, _ := nsnode.New(mustPath(t, "a/b"), root, false, nil)
	nsnode.New(mustPath(t, "a/b/c"), b, false, nil)
	nsnode.New(mustPath(t, "a/e"), root, true, []byte("hi"))

	if !Check(Snapshot{Initialized: true, Root: root, Count: 4}) {
		t.Fatal("expected valid tree to pass Check")
	}
	if !CheckDirsOnly(Snapshot{Initialized: true, Root: root, Count: 4}) {
		t.Fatal("expected valid tree to pass CheckDirsOnly")
	}
}

func TestCheckWrongCountIsInvalid(t *testing.T) {
	root, _ := nsnode.New(mustPath(t, "a"), nil, false, nil)
	nsnode.New(mustPath(t, "a/b"), root, false, nil)

	if Check(Snapshot{Initialized: true, Root: root, Count: 5}) {
		t.Fatal("wrong count should fail Check")
	}
}

func TestCheckRootDepthMustBeOne(t *testing.T) {
	root, _ := nsnode.New(mustPath(t, "a"), nil, false, nil)
	child, _ := nsnode.New(mustPath(t, "a/b"), root, false, nil)

	// simulate a corrupted snapshot where "root" is actually a depth-2 node
	if Check(Snapshot{Initialized: true, Root: child, Count: 1}) {
		t.Fatal("a depth-2 node passed as root should fail Check")
	}
}
