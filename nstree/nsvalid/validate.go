/*
© 2026–present nstree contributors
ISC License
*/

// Package nsvalid is the tree engine's structural validator — an auxiliary
// component, compiled in separately from [github.com/relleum/nstree/nstree], that
// proves the global invariants of spec.md §3 hold for a given snapshot.
//
//   - grounded on original_source/2DT/checkerDT.c, the original
//     implementation's own checker, generalized here from a
//     directories-only tree to the full file+directory tree
//   - diagnostics are routed through [github.com/relleum/nstree/nslog.D]
//     rather than raw fprintf(stderr, ...), so validator output composes
//     with the rest of a program's logging (SPEC_FULL.md, Supplemented
//     features #3)
package nsvalid

import (
	"github.com/relleum/nstree/nslog"
	"github.com/relleum/nstree/nsnode"
)

// Snapshot is the minimal view of engine state the validator needs,
// matching spec.md §4.5: "(initialized, root, count)".
type Snapshot struct {
	Initialized bool
	Root        *nsnode.Node
	Count       int
}

// Check returns true iff every invariant in spec.md §3 holds for snap. On
// the first violation found, it logs one diagnostic line and returns
// false.
func Check(snap Snapshot) bool {
	// invariant 1: Initialization
	if !snap.Initialized {
		if snap.Root != nil || snap.Count != 0 {
			nslog.D("invariant violated: uninitialized tree has root=%v count=%d", snap.Root != nil, snap.Count)
			return false
		}
		return true
	}

	if snap.Root == nil {
		if snap.Count != 0 {
			nslog.D("invariant violated: root absent but count=%d", snap.Count)
			return false
		}
		return true
	}

	// invariant 7: Root depth
	if nsnode.Path(snap.Root).Depth() != 1 {
		nslog.D("invariant violated: root depth %d != 1", nsnode.Path(snap.Root).Depth())
		return false
	}

	seen := make(map[string]bool)
	reachable := 0
	ok := walkCheck(snap.Root, seen, &reachable, checkAll)
	if !ok {
		return false
	}

	// invariant 2: Count accuracy
	if reachable != snap.Count {
		nslog.D("invariant violated: reachable node count %d != recorded count %d", reachable, snap.Count)
		return false
	}
	return true
}

// CheckDirsOnly is [Check]'s cheaper sibling that skips the
// leaf-discipline check, grounded on original_source/2DT/checkerDT.c —
// the original's directories-only predecessor to the full file-tree
// checker. Useful for callers (e.g. property tests) that only care about
// directory-shape invariants.
func CheckDirsOnly(snap Snapshot) bool {
	if !snap.Initialized || snap.Root == nil {
		return Check(snap)
	}
	if nsnode.Path(snap.Root).Depth() != 1 {
		nslog.D("invariant violated: root depth %d != 1", nsnode.Path(snap.Root).Depth())
		return false
	}
	seen := make(map[string]bool)
	reachable := 0
	ok := walkCheck(snap.Root, seen, &reachable, checkShapeOnly)
	if !ok {
		return false
	}
	if reachable != snap.Count {
		nslog.D("invariant violated: reachable node count %d != recorded count %d", reachable, snap.Count)
		return false
	}
	return true
}

type checkMode int

const (
	checkShapeOnly checkMode = iota
	checkAll
)

// walkCheck performs one pre-order walk that simultaneously checks
// invariants 3 (parent-child path law), 4 (sibling order), 5 (global
// uniqueness) and 6 (leaf discipline), and counts reachable nodes.
func walkCheck(n *nsnode.Node, seen map[string]bool, reachable *int, mode checkMode) bool {
	path := nsnode.Path(n).String()
	if seen[path] {
		nslog.D("invariant violated: duplicate path %q", path)
		return false
	}
	seen[path] = true
	*reachable++

	if parent := nsnode.Parent(n); parent != nil {
		nPath := nsnode.Path(n)
		pPath := nsnode.Path(parent)
		if nPath.Depth() != pPath.Depth()+1 {
			nslog.D("invariant violated: node %q depth %d != parent %q depth+1", nPath.String(), nPath.Depth(), pPath.String())
			return false
		}
		if nPath.SharedPrefixDepth(pPath) != nPath.Depth()-1 {
			nslog.D("invariant violated: %q and parent %q do not share a depth-%d prefix", nPath.String(), pPath.String(), nPath.Depth()-1)
			return false
		}
	}

	if mode == checkAll && nsnode.IsFile(n) && nsnode.NumChildren(n) != 0 {
		nslog.D("invariant violated: file %q has children", path)
		return false
	}

	children := nsnode.Children(n)
	for i := 1; i < len(children); i++ {
		if nsnode.Path(children[i-1]).Compare(nsnode.Path(children[i])) >= 0 {
			nslog.D("invariant violated: children of %q are not strictly ascending at index %d", path, i)
			return false
		}
	}

	for _, c := range children {
		if !walkCheck(c, seen, reachable, mode) {
			return false
		}
	}
	return true
}
