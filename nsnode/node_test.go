/*
© 2026–present nstree contributors
ISC License
*/

package nsnode

import (
	"bytes"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/relleum/nstree/nserrors"
	"github.com/relleum/nstree/nspath"
)

func mustPath(t *testing.T, s string) nspath.Path {
	t.Helper()
	p, err := nspath.New(s)
	if err != nil {
		t.Fatalf("nspath.New(%q): %v", s, err)
	}
	return p
}

func TestNewRootMustBeDepthOne(t *testing.T) {
	p := mustPath(t, "a/b")
	if _, err := New(p, nil, false, nil); nserrors.Code(err) != nserrors.NO_SUCH_PATH {
		t.Fatalf("expected NO_SUCH_PATH, got %v", err)
	}
}

func TestNewAndChildOrdering(t *testing.T) {
	root, err := New(mustPath(t, "a"), nil, false, nil)
	if err != nil {
		t.Fatal(err)
	}
	for _, name := range []string{"a/c", "a/a", "a/b"} {
		if _, err = New(mustPath(t, name), root, false, nil); err != nil {
			t.Fatal(err)
		}
	}
	if NumChildren(root) != 3 {
		t.Fatalf("NumChildren = %d, want 3", NumChildren(root))
	}
	var got []string
	for i := 0; i < NumChildren(root); i++ {
		got = append(got, Path(Child(root, i)).String())
	}
	want := []string{"a/a", "a/b", "a/c"}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("children order mismatch (-want +got):\n%s", diff)
	}
}

func TestNewDuplicateIsAlreadyInTree(t *testing.T) {
	root, _ := New(mustPath(t, "a"), nil, false, nil)
	if _, err := New(mustPath(t, "a/b"), root, false, nil); err != nil {
		t.Fatal(err)
	}
	if _, err := New(mustPath(t, "a/b"), root, false, nil); nserrors.Code(err) != nserrors.ALREADY_IN_TREE {
		t.Fatalf("expected ALREADY_IN_TREE, got %v", err)
	}
}

func TestNewParentMustBeDirectory(t *testing.T) {
	root, _ := New(mustPath(t, "a"), nil, false, nil)
	file, _ := New(mustPath(t, "a/f"), root, true, []byte("hi"))
	if _, err := New(mustPath(t, "a/f/x"), file, false, nil); nserrors.Code(err) != nserrors.NOT_A_DIRECTORY {
		t.Fatalf("expected NOT_A_DIRECTORY, got %v", err)
	}
}

func TestNewConflictingPath(t *testing.T) {
	root, _ := New(mustPath(t, "a"), nil, false, nil)
	if _, err := New(mustPath(t, "b/c"), root, false, nil); nserrors.Code(err) != nserrors.CONFLICTING_PATH {
		t.Fatalf("expected CONFLICTING_PATH, got %v", err)
	}
}

func TestNewNotDirectChild(t *testing.T) {
	root, _ := New(mustPath(t, "a"), nil, false, nil)
	if _, err := New(mustPath(t, "a/b/c"), root, false, nil); nserrors.Code(err) != nserrors.NO_SUCH_PATH {
		t.Fatalf("expected NO_SUCH_PATH, got %v", err)
	}
}

func TestFreeCountsAndUnlinks(t *testing.T) {
	root, _ := New(mustPath(t, "a"), nil, false, nil)
	b, _ := New(mustPath(t, "a/b"), root, false, nil)
	New(mustPath(t, "a/b/c"), b, false, nil)
	New(mustPath(t, "a/b/d"), b, false, nil)
	New(mustPath(t, "a/e"), root, false, nil)

	freed := Free(b)
	if freed != 3 {
		t.Fatalf("Free(b) = %d, want 3", freed)
	}
	if NumChildren(root) != 1 {
		t.Fatalf("NumChildren(root) after Free(b) = %d, want 1", NumChildren(root))
	}
	if found, _ := HasChild(root, mustPath(t, "a/b")); found {
		t.Fatalf("a/b should be unlinked")
	}
}

func TestReplaceAndSetContents(t *testing.T) {
	root, _ := New(mustPath(t, "a"), nil, false, nil)
	f, _ := New(mustPath(t, "a/f"), root, true, []byte("hi"))

	old, err := ReplaceContents(f, []byte("bye"))
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(old, []byte("hi")) {
		t.Fatalf("ReplaceContents old = %q, want hi", old)
	}
	content, length := Contents(f)
	if !bytes.Equal(content, []byte("bye")) || length != 3 {
		t.Fatalf("Contents after replace = %q/%d, want bye/3", content, length)
	}

	if err = SetContents(f, []byte("z")); err != nil {
		t.Fatal(err)
	}
	content, length = Contents(f)
	if !bytes.Equal(content, []byte("z")) || length != 1 {
		t.Fatalf("Contents after set = %q/%d, want z/1", content, length)
	}

	dir, _ := New(mustPath(t, "a/d"), root, false, nil)
	if _, err = ReplaceContents(dir, []byte("x")); nserrors.Code(err) != nserrors.NOT_A_FILE {
		t.Fatalf("expected NOT_A_FILE, got %v", err)
	}
}

func TestDirectoriesHaveNoContent(t *testing.T) {
	root, _ := New(mustPath(t, "a"), nil, false, nil)
	content, length := Contents(root)
	if content != nil || length != 0 {
		t.Fatalf("directory Contents = %v/%d, want nil/0", content, length)
	}
}

func TestFilesHaveNoChildren(t *testing.T) {
	root, _ := New(mustPath(t, "a"), nil, false, nil)
	f, _ := New(mustPath(t, "a/f"), root, true, nil)
	if NumChildren(f) != 0 {
		t.Fatalf("file NumChildren = %d, want 0", NumChildren(f))
	}
	if Children(f) != nil {
		t.Fatalf("file Children = %v, want nil", Children(f))
	}
}
