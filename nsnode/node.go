/*
© 2026–present nstree contributors
ISC License
*/

// Package nsnode implements the tagged directory/file node records that
// make up the tree (spec.md §4.2).
//
//   - a directory node owns a [childList] sorted ascending by path
//   - a file node owns an opaque byte buffer
//   - parent references are non-owning: freeing a subtree is always
//     top-down (unlink then free, §9), so a node's parent pointer is never
//     dereferenced after the parent itself has been freed
package nsnode

import (
	"github.com/relleum/nstree/nserrors"
	"github.com/relleum/nstree/nspath"
)

// Kind distinguishes the two node variants.
type Kind int

const (
	Directory Kind = iota
	File
)

// Node is a tagged directory/file record.
type Node struct {
	path   nspath.Path
	parent *Node
	kind   Kind

	children childList // valid iff kind == Directory
	content  []byte    // valid iff kind == File; may be nil
}

// New constructs a Node at path, splicing it into parent's child list.
//   - parent == nil means this is the root: path must have depth 1 or
//     [nserrors.ErrNoSuchPath] is returned
//   - validates, in order, the checks from spec.md §4.2: parent depth,
//     parent kind, shared-prefix ancestry, depth step, duplicate child
func New(path nspath.Path, parent *Node, isFile bool, content []byte) (n *Node, err error) {
	if parent == nil {
		if path.Depth() != 1 {
			err = nserrors.Errorf(nserrors.ErrNoSuchPath, "root node path %q must have depth 1", path.String())
			return
		}
	} else {
		if parent.kind == File {
			err = nserrors.Errorf(nserrors.ErrNotADirectory, "parent %q is a file", parent.path.String())
			return
		}
		if path.SharedPrefixDepth(parent.path) < parent.path.Depth() {
			err = nserrors.Errorf(nserrors.ErrConflictingPath, "path %q is not a descendant of parent %q", path.String(), parent.path.String())
			return
		}
		if path.Depth() != parent.path.Depth()+1 {
			err = nserrors.Errorf(nserrors.ErrNoSuchPath, "path %q is not a direct child of parent %q", path.String(), parent.path.String())
			return
		}
	}

	var index int
	if parent != nil {
		var found bool
		if index, found = parent.children.search(path); found {
			err = nserrors.Errorf(nserrors.ErrAlreadyInTree, "path %q already exists", path.String())
			return
		}
	}

	kind := Directory
	var ownedContent []byte
	if isFile {
		kind = File
		if len(content) > 0 {
			ownedContent = make([]byte, len(content))
			copy(ownedContent, content)
		}
	}

	n = &Node{
		path:    path.Duplicate(),
		parent:  parent,
		kind:    kind,
		content: ownedContent,
	}
	if parent != nil {
		parent.children.insertAt(index, n)
	}
	return
}

// Free unlinks n from its parent (if any), recursively frees every
// descendant, and returns 1 + the number of descendants freed.
//   - tolerates being called on the root (parent == nil)
//   - always removes child index 0, since each removal shifts the
//     remaining children left (spec.md §4.2)
func Free(n *Node) (freed int) {
	if n == nil {
		return 0
	}
	if n.parent != nil {
		if index, found := n.parent.children.search(n.path); found {
			n.parent.children.removeAt(index)
		}
	}
	return freeSubtree(n)
}

// freeSubtree frees n and all descendants without touching n's parent's
// child list; used both by Free (after unlinking) and recursively.
func freeSubtree(n *Node) (freed int) {
	for n.children.len() > 0 {
		child := n.children.removeAt(0)
		freed += freeSubtree(child)
	}
	n.content = nil
	n.parent = nil
	return freed + 1
}

// HasChild reports whether parent has a child at path.
//   - index is the child's index if found, else the insertion point that
//     keeps the child list sorted
func HasChild(parent *Node, path nspath.Path) (found bool, index int) {
	index, found = parent.children.search(path)
	return
}

// Child returns parent's i:th child in sorted order, or nil if i is out
// of range.
func Child(parent *Node, i int) *Node {
	return parent.children.at(i)
}

// NumChildren returns the number of children of n. Files report zero.
func NumChildren(n *Node) int {
	if n.kind == File {
		return 0
	}
	return n.children.len()
}

// Children returns a sorted snapshot of n's children. Files report nil.
func Children(n *Node) []*Node {
	if n.kind == File {
		return nil
	}
	return n.children.list()
}

// Parent returns n's parent, or nil if n is the root.
func Parent(n *Node) *Node { return n.parent }

// Path returns n's path.
func Path(n *Node) nspath.Path { return n.path }

// IsFile reports whether n is a file node.
func IsFile(n *Node) bool { return n.kind == File }

// Contents returns a file node's buffer and its length. Directories
// report (nil, 0).
func Contents(n *Node) (content []byte, length int) {
	if n.kind != File {
		return nil, 0
	}
	return n.content, len(n.content)
}

// SetContents frees n's current buffer and copies newContent in.
//   - valid only on a file node; returns [nserrors.ErrNotAFile] otherwise
func SetContents(n *Node, newContent []byte) (err error) {
	if n.kind != File {
		err = nserrors.Errorf(nserrors.ErrNotAFile, "path %q is not a file", n.path.String())
		return
	}
	n.content = nil
	if len(newContent) > 0 {
		n.content = make([]byte, len(newContent))
		copy(n.content, newContent)
	}
	return
}

// ReplaceContents swaps a deep copy of newContent into n and returns n's
// prior buffer without freeing it: ownership of the returned buffer
// transfers to the caller (spec.md §4.2, §4.3, §5).
//   - valid only on a file node; returns [nserrors.ErrNotAFile] otherwise
//   - a nil newContent and an empty, non-nil newContent are treated
//     equivalently (spec.md §9 Open Questions)
func ReplaceContents(n *Node, newContent []byte) (old []byte, err error) {
	if n.kind != File {
		err = nserrors.Errorf(nserrors.ErrNotAFile, "path %q is not a file", n.path.String())
		return
	}
	old = n.content
	var copied []byte
	if len(newContent) > 0 {
		copied = make([]byte, len(newContent))
		copy(copied, newContent)
	}
	n.content = copied
	return
}
