/*
© 2026–present nstree contributors
ISC License
*/

package nstree

import (
	"github.com/relleum/nstree/nserrors"
	"github.com/relleum/nstree/nsnode"
	"github.com/relleum/nstree/nspath"
)

// InsertDirectory creates every missing directory level along pathStr,
// atomically (spec.md §4.3 "Compound-insert atomicity").
func (t *Tree) InsertDirectory(pathStr string) (err error) {
	defer func() { t.emit("insert-directory", pathStr, err) }()

	if !t.initialized {
		return nserrors.Errorf(nserrors.ErrNotInitialized, "tree not initialized")
	}
	var path nspath.Path
	if path, err = nspath.New(pathStr); err != nil {
		return
	}

	var furthest *nsnode.Node
	if furthest, err = t.traverseToFurthest(path); err != nil {
		return
	}

	if furthest == nil && t.root != nil {
		return nserrors.Errorf(nserrors.ErrConflictingPath, "no ancestor found but tree is non-empty")
	}

	startDepth := 1
	if furthest != nil {
		startDepth = nsnode.Path(furthest).Depth() + 1
		if startDepth == path.Depth()+1 && nsnode.Path(furthest).Equal(path) {
			return nserrors.Errorf(nserrors.ErrAlreadyInTree, "path %q already exists", pathStr)
		}
	}

	firstNew, added, err := t.buildMissingLevels(furthest, path, startDepth, path.Depth())
	if err != nil {
		return err
	}
	t.commitInsert(firstNew, added)
	return nil
}

// InsertFile creates any missing ancestor directories for pathStr, then a
// file leaf at pathStr carrying content. Requires depth(pathStr) ≥ 2: a
// file cannot be the root (spec.md §4.3).
func (t *Tree) InsertFile(pathStr string, content []byte) (err error) {
	defer func() { t.emit("insert-file", pathStr, err) }()

	if !t.initialized {
		return nserrors.Errorf(nserrors.ErrNotInitialized, "tree not initialized")
	}
	var path nspath.Path
	if path, err = nspath.New(pathStr); err != nil {
		return
	}
	if path.Depth() < 2 {
		return nserrors.Errorf(nserrors.ErrConflictingPath, "a file cannot be the root: %q", pathStr)
	}

	var furthest *nsnode.Node
	if furthest, err = t.traverseToFurthest(path); err != nil {
		return
	}
	if furthest == nil && t.root != nil {
		return nserrors.Errorf(nserrors.ErrConflictingPath, "no ancestor found but tree is non-empty")
	}

	// on an empty tree, the depth-1 ancestor directory becomes the root
	startDepth := 1
	if furthest != nil {
		startDepth = nsnode.Path(furthest).Depth() + 1
		if startDepth == path.Depth()+1 && nsnode.Path(furthest).Equal(path) {
			return nserrors.Errorf(nserrors.ErrAlreadyInTree, "path %q already exists", pathStr)
		}
	}

	firstNew, added, err := t.buildMissingLevels(furthest, path, startDepth, path.Depth()-1)
	if err != nil {
		return err
	}

	parent := furthest
	if len(added) > 0 {
		parent = added[len(added)-1]
	}
	fileNode, ferr := nsnode.New(path, parent, true, content)
	if ferr != nil {
		if firstNew != nil {
			nsnode.Free(firstNew)
		}
		return ferr
	}
	added = append(added, fileNode)
	if firstNew == nil {
		firstNew = fileNode
	}

	t.commitInsert(firstNew, added)
	return nil
}

// buildMissingLevels creates directory nodes for every level in
// [startDepth, endDepth] under furthest (or as a new root if furthest is
// nil), rolling back everything created so far on the first failure
// (spec.md §4.3, §9 "Compound-insert rollback").
func (t *Tree) buildMissingLevels(furthest *nsnode.Node, path nspath.Path, startDepth, endDepth int) (firstNew *nsnode.Node, added []*nsnode.Node, err error) {
	current := furthest
	for level := startDepth; level <= endDepth; level++ {
		var prefix nspath.Path
		if prefix, err = path.Prefix(level); err != nil {
			if firstNew != nil {
				nsnode.Free(firstNew)
			}
			return nil, nil, err
		}
		var newNode *nsnode.Node
		if newNode, err = nsnode.New(prefix, current, false, nil); err != nil {
			if firstNew != nil {
				nsnode.Free(firstNew)
			}
			return nil, nil, err
		}
		added = append(added, newNode)
		if firstNew == nil {
			firstNew = newNode
		}
		current = newNode
	}
	return firstNew, added, nil
}

// commitInsert applies the successful result of a compound insert to tree
// state: root transition (spec.md §4.3 "Root transition") and count.
func (t *Tree) commitInsert(firstNew *nsnode.Node, added []*nsnode.Node) {
	if t.root == nil && firstNew != nil {
		t.root = firstNew
	}
	t.count += len(added)
}

// RemoveDirectory removes the entire subtree rooted at pathStr and reports
// the number of nodes freed.
func (t *Tree) RemoveDirectory(pathStr string) (freed int, err error) {
	defer func() { t.emit("remove-directory", pathStr, err) }()

	var n *nsnode.Node
	if n, err = t.findExact(pathStr); err != nil {
		return
	}
	if nsnode.IsFile(n) {
		err = nserrors.Errorf(nserrors.ErrNotADirectory, "%q is a file", pathStr)
		return
	}
	freed = nsnode.Free(n)
	t.count -= freed
	if t.count == 0 {
		t.root = nil
	}
	return
}

// RemoveFile removes the file leaf at pathStr.
func (t *Tree) RemoveFile(pathStr string) (err error) {
	defer func() { t.emit("remove-file", pathStr, err) }()

	var n *nsnode.Node
	if n, err = t.findExact(pathStr); err != nil {
		return
	}
	if !nsnode.IsFile(n) {
		err = nserrors.Errorf(nserrors.ErrNotAFile, "%q is a directory", pathStr)
		return
	}
	freed := nsnode.Free(n)
	t.count -= freed
	if t.count == 0 {
		t.root = nil
	}
	return
}

// ContainsDirectory reports whether pathStr names a directory in the
// tree. Errors flatten to false (spec.md §7).
func (t *Tree) ContainsDirectory(pathStr string) bool {
	n, err := t.findExact(pathStr)
	return err == nil && !nsnode.IsFile(n)
}

// ContainsFile reports whether pathStr names a file in the tree. Errors
// flatten to false (spec.md §7).
func (t *Tree) ContainsFile(pathStr string) bool {
	n, err := t.findExact(pathStr)
	return err == nil && nsnode.IsFile(n)
}

// ReadFileContents returns the contents of the file at pathStr.
// Errors and directory paths flatten to (nil, false) (spec.md §7).
func (t *Tree) ReadFileContents(pathStr string) (content []byte, ok bool) {
	n, err := t.findExact(pathStr)
	if err != nil || !nsnode.IsFile(n) {
		return nil, false
	}
	content, _ = nsnode.Contents(n)
	return content, true
}

// ReplaceFileContents deep-copies newContent into the file at pathStr and
// returns the file's prior buffer, which the caller now owns. Errors and
// directory paths flatten to (nil, false) (spec.md §4.3, §7).
func (t *Tree) ReplaceFileContents(pathStr string, newContent []byte) (old []byte, ok bool) {
	var err error
	defer func() { t.emit("replace-file-contents", pathStr, err) }()

	var n *nsnode.Node
	if n, err = t.findExact(pathStr); err != nil {
		return nil, false
	}
	if !nsnode.IsFile(n) {
		return nil, false
	}
	if old, err = nsnode.ReplaceContents(n, newContent); err != nil {
		return nil, false
	}
	return old, true
}

// Stat reports whether pathStr is a file, and its size if so. Size is
// undefined (always 0) for directories (spec.md §4.3, §9).
func (t *Tree) Stat(pathStr string) (isFile bool, size int, err error) {
	var n *nsnode.Node
	if n, err = t.findExact(pathStr); err != nil {
		return
	}
	isFile = nsnode.IsFile(n)
	if isFile {
		_, size = nsnode.Contents(n)
	}
	return
}
