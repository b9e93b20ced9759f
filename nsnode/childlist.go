/*
© 2026–present nstree contributors
ISC License
*/

package nsnode

import (
	"golang.org/x/exp/slices"

	"github.com/relleum/nstree/nspath"
)

// childList is the ordered set of a directory's children, sorted strictly
// ascending by child path.
//
//   - modeled on [github.com/haraldrudell/parl/pslices.Slice]: a thin
//     wrapper around a plain Go slice exposing the handful of operations
//     its owner needs, here specialized to binary search by path
//   - any container satisfying "sorted, binary-searchable, positional
//     insert and remove" would do (spec.md §9); a sorted slice is what the
//     teacher pack uses throughout pslices/omaps for small fan-out
type childList struct {
	nodes []*Node
}

// search returns the index of the child whose path equals path, and
// whether it was found. When not found, index is the insertion point that
// keeps the list sorted.
func (c *childList) search(path nspath.Path) (index int, found bool) {
	return slices.BinarySearchFunc(c.nodes, path, func(n *Node, p nspath.Path) int {
		return n.path.Compare(p)
	})
}

// insertAt inserts n at index, shifting the tail right.
func (c *childList) insertAt(index int, n *Node) {
	c.nodes = slices.Insert(c.nodes, index, n)
}

// removeAt removes and returns the child at index, shifting the tail left.
func (c *childList) removeAt(index int) (removed *Node) {
	removed = c.nodes[index]
	c.nodes = slices.Delete(c.nodes, index, index+1)
	return
}

// len returns the number of children.
func (c *childList) len() int { return len(c.nodes) }

// at returns the child at index, or nil if out of range.
func (c *childList) at(index int) (n *Node) {
	if index < 0 || index >= len(c.nodes) {
		return nil
	}
	return c.nodes[index]
}

// list returns a shallow clone of the child pointers in sorted order.
func (c *childList) list() []*Node {
	return slices.Clone(c.nodes)
}
