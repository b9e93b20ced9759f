/*
© 2026–present nstree contributors
ISC License
*/

// Package nstree is the tree engine: the client-facing API over [nsnode]
// and [nspath] (spec.md §4.3).
//
//   - modeled on the teacher's recommendation (spec.md §9, Design Notes,
//     "Global tree state"): an explicit handle type rather than genuine
//     process-wide globals, for testability — the observable contract is
//     identical either way
//   - every mutating operation is tagged with a [github.com/google/uuid]
//     correlation id and logged through [github.com/relleum/nstree/nslog],
//     grounded on the teacher's pfs/watch-event.go and ev/ev.go, which tag
//     filesystem/goroutine events the same way
package nstree

import (
	"github.com/google/uuid"

	"github.com/relleum/nstree/nserrors"
	"github.com/relleum/nstree/nslog"
	"github.com/relleum/nstree/nsnode"
	"github.com/relleum/nstree/nspath"
)

// Tree is a handle to one in-memory hierarchical namespace.
//   - the zero value is a valid, uninitialized Tree: call [Tree.Initialize]
//     before any other operation
type Tree struct {
	initialized bool
	root        *nsnode.Node
	count       int

	// events, when non-nil, receives a best-effort copy of every mutating
	// operation's [Event]. Set via [Tree.Subscribe].
	events chan<- Event
}

// Event describes one mutating operation, for optional observability.
type Event struct {
	ID   uuid.UUID
	Op   string
	Path string
	Err  error
}

// Subscribe routes a copy of every subsequent mutating operation's Event to
// ch. Sends are non-blocking: a full channel silently drops the event,
// matching the teacher's best-effort event-fanout style (ev package).
func (t *Tree) Subscribe(ch chan<- Event) {
	t.events = ch
}

func (t *Tree) emit(op, path string, err error) {
	ev := Event{ID: uuid.New(), Op: op, Path: path, Err: err}
	nslog.Debug("nstree %s %s id=%s err=%v", op, path, ev.ID, err)
	if t.events == nil {
		return
	}
	select {
	case t.events <- ev:
	default:
	}
}

// Initialize transitions t into the initialized, empty state.
func (t *Tree) Initialize() (err error) {
	if t.initialized {
		err = nserrors.Errorf(nserrors.ErrNotInitialized, "tree already initialized")
		return
	}
	t.initialized = true
	t.root = nil
	t.count = 0
	return
}

// Destroy frees the entire subtree and transitions t back to uninitialized.
func (t *Tree) Destroy() (err error) {
	if !t.initialized {
		err = nserrors.Errorf(nserrors.ErrNotInitialized, "tree not initialized")
		return
	}
	if t.root != nil {
		t.count -= nsnode.Free(t.root)
		t.root = nil
	}
	t.initialized = false
	t.count = 0
	return
}

// traverseToFurthest returns the deepest node in the tree whose path is a
// prefix of path, descending one component at a time via binary search
// over each level's children (spec.md §4.3).
//   - returns (nil, nil) if the tree is empty
//   - returns [nserrors.ErrConflictingPath] if the root's path is not even
//     a one-component prefix of path
func (t *Tree) traverseToFurthest(path nspath.Path) (furthest *nsnode.Node, err error) {
	if t.root == nil {
		return nil, nil
	}
	rootPath := nsnode.Path(t.root)
	rootPrefix, perr := path.Prefix(1)
	if perr != nil {
		return nil, perr
	}
	if !rootPath.Equal(rootPrefix) {
		err = nserrors.Errorf(nserrors.ErrConflictingPath, "root %q is not a prefix of %q", rootPath.String(), path.String())
		return
	}

	current := t.root
	depth := path.Depth()
	for level := 2; level <= depth; level++ {
		var prefix nspath.Path
		if prefix, err = path.Prefix(level); err != nil {
			return nil, err
		}
		index, found := nsnode.HasChild(current, prefix)
		if !found {
			break
		}
		current = nsnode.Child(current, index)
	}
	furthest = current
	return
}

// findExact resolves pathStr to the node whose path equals it exactly.
func (t *Tree) findExact(pathStr string) (n *nsnode.Node, err error) {
	if !t.initialized {
		err = nserrors.Errorf(nserrors.ErrNotInitialized, "tree not initialized")
		return
	}
	var path nspath.Path
	if path, err = nspath.New(pathStr); err != nil {
		return
	}
	var furthest *nsnode.Node
	if furthest, err = t.traverseToFurthest(path); err != nil {
		return
	}
	if furthest == nil || !nsnode.Path(furthest).Equal(path) {
		err = nserrors.Errorf(nserrors.ErrNoSuchPath, "no node at %q", pathStr)
		return
	}
	n = furthest
	return
}

// Count returns the number of nodes currently reachable from the root.
func (t *Tree) Count() int { return t.count }

// Initialized reports whether t has been initialized.
func (t *Tree) Initialized() bool { return t.initialized }

// Root returns the root node, or nil if the tree is empty or
// uninitialized. Exposed for [github.com/relleum/nstree/nstree/nsvalid].
func (t *Tree) Root() *nsnode.Node { return t.root }
