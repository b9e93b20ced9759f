/*
© 2026–present nstree contributors
ISC License
*/

package nstree

import (
	"strings"

	"github.com/relleum/nstree/nserrors"
	"github.com/relleum/nstree/nsnode"
)

// Serialize returns the canonical newline-terminated listing of every
// pathname in the tree, in pre-order: self, then file children ascending,
// then directory children ascending, recursively (spec.md §4.4).
//   - returns "" if the tree has no root
func (t *Tree) Serialize() (out string, err error) {
	if !t.initialized {
		err = nserrors.Errorf(nserrors.ErrNotInitialized, "tree not initialized")
		return
	}
	if t.root == nil {
		return "", nil
	}
	var b strings.Builder
	writePreOrder(&b, t.root)
	return b.String(), nil
}

// writePreOrder visits n and writes its canonical pre-order listing,
// matching [Walk]'s visit order.
func writePreOrder(b *strings.Builder, n *nsnode.Node) {
	b.WriteString(nsnode.Path(n).String())
	b.WriteByte('\n')
	files, dirs := splitChildren(n)
	for _, c := range files {
		writePreOrder(b, c)
	}
	for _, c := range dirs {
		writePreOrder(b, c)
	}
}

// splitChildren returns n's children split into file children and
// directory children, each still in ascending path order. Shared by
// [Tree.Serialize] and [Tree.Walk].
func splitChildren(n *nsnode.Node) (files, dirs []*nsnode.Node) {
	for _, c := range nsnode.Children(n) {
		if nsnode.IsFile(c) {
			files = append(files, c)
		} else {
			dirs = append(dirs, c)
		}
	}
	return
}

// Walk performs the canonical pre-order traversal (spec.md §4.4) over the
// tree, calling visit for every reachable node. Exposed so callers can
// reuse the same order without re-deriving it.
func (t *Tree) Walk(visit func(n *nsnode.Node)) {
	if t.root == nil {
		return
	}
	walk(t.root, visit)
}

func walk(n *nsnode.Node, visit func(n *nsnode.Node)) {
	visit(n)
	files, dirs := splitChildren(n)
	for _, c := range files {
		walk(c, visit)
	}
	for _, c := range dirs {
		walk(c, visit)
	}
}
