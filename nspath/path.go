/*
© 2026–present nstree contributors
ISC License
*/

// Package nspath implements immutable absolute pathname values.
//
//   - a Path is a sequence of one or more non-empty components separated by
//     '/', with no leading or trailing separator
//   - Path values are comparable by value and safe to share: the
//     underlying Go string is already immutable, so Duplicate is a plain
//     copy rather than an allocation
package nspath

import (
	"strings"

	"github.com/relleum/nstree/nserrors"
)

const separator = "/"

// Path is an immutable absolute pathname of depth ≥ 1.
type Path struct {
	s     string
	depth int
}

// New parses s into a Path.
//   - fails with [nserrors.ErrBadPath] if s is empty, has a leading or
//     trailing separator, contains consecutive separators, an empty
//     component, or a NUL byte
func New(s string) (p Path, err error) {
	if s == "" {
		err = nserrors.Errorf(nserrors.ErrBadPath, "empty pathname")
		return
	}
	if strings.IndexByte(s, 0) >= 0 {
		err = nserrors.Errorf(nserrors.ErrBadPath, "pathname %q contains a NUL byte", s)
		return
	}
	if strings.HasPrefix(s, separator) || strings.HasSuffix(s, separator) {
		err = nserrors.Errorf(nserrors.ErrBadPath, "pathname %q has a leading or trailing separator", s)
		return
	}

	components := strings.Split(s, separator)
	for _, c := range components {
		if c == "" {
			err = nserrors.Errorf(nserrors.ErrBadPath, "pathname %q contains an empty component", s)
			return
		}
	}

	p = Path{s: s, depth: len(components)}
	return
}

// Depth returns the number of components in p.
func (p Path) Depth() int { return p.depth }

// String returns p's canonical string form.
func (p Path) String() string { return p.s }

// Len returns the length of p's string form in bytes.
func (p Path) Len() int { return len(p.s) }

// Prefix returns the proper prefix of p consisting of the first d
// components.
//   - fails with [nserrors.ErrBadPath] if d is out of range [1, p.Depth()]
func (p Path) Prefix(d int) (prefix Path, err error) {
	if d < 1 || d > p.depth {
		err = nserrors.Errorf(nserrors.ErrBadPath, "prefix depth %d out of range for %q (depth %d)", d, p.s, p.depth)
		return
	}
	if d == p.depth {
		prefix = p
		return
	}

	// walk to the end of the d:th component
	idx := 0
	for i := 0; i < d; i++ {
		next := strings.IndexByte(p.s[idx:], separator[0])
		if next < 0 {
			idx = len(p.s)
			break
		}
		idx += next
		if i < d-1 {
			idx++ // skip past the separator for all but the last component
		}
	}
	prefix = Path{s: p.s[:idx], depth: d}
	return
}

// Compare returns a negative, zero or positive value as p's string form is
// lexicographically less than, equal to or greater than other's.
func (p Path) Compare(other Path) int {
	return strings.Compare(p.s, other.s)
}

// CompareString is [Path.Compare] against a raw string, used for mixed-key
// binary search over sorted child lists.
func (p Path) CompareString(s string) int {
	return strings.Compare(p.s, s)
}

// Equal reports whether p and other have byte-equal string forms.
func (p Path) Equal(other Path) bool {
	return p.s == other.s
}

// SharedPrefixDepth returns the largest k such that p and other agree on
// their first k components.
func (p Path) SharedPrefixDepth(other Path) (k int) {
	pc := strings.Split(p.s, separator)
	oc := strings.Split(other.s, separator)
	max := len(pc)
	if len(oc) < max {
		max = len(oc)
	}
	for k = 0; k < max; k++ {
		if pc[k] != oc[k] {
			return
		}
	}
	return
}

// Duplicate returns a deep copy of p.
//   - Go strings are immutable, so this is a plain value copy; Duplicate
//     exists to match the source design's explicit copy/free discipline
func (p Path) Duplicate() Path {
	return p
}
