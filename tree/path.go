// Copyright (c) 2026, the azalea authors.
// All rights reserved.
//
// SPDX-License-Identifier: MPL-2.0

package tree

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"jsouthworth.net/go/try"
)

// PathNew parses a child-index path string into a Path. Paths match the
// following grammar:
//
//	path  = "/" / 1*("/" index)
//	index = non-negative-integer-value
//
// "/" denotes the root. PathNew panics when the string is malformed;
// use IsValidPath, or wrap the call with try.Apply, to validate
// untrusted input.
func PathNew(path string) *Path {
	return (&Path{}).parse(path)
}

// PathFrom creates a path from a sequence of child indices. No indices
// denotes the root.
func PathFrom(indices ...int) *Path {
	out := make([]int, len(indices))
	copy(out, indices)
	return &Path{indices: out}
}

// IsValidPath returns whether the string parses as a child-index path.
func IsValidPath(path string) bool {
	_, err := try.Apply(PathNew, path)
	return err == nil
}

// Path addresses a node of a tree positionally: each element is the
// index of the child to descend into, starting from the root. Paths are
// immutable.
type Path struct {
	indices []int
}

func (p *Path) parse(s string) *Path {
	if s == "" || s[0] != '/' {
		panic(errors.New("path: must begin with '/'"))
	}
	if s == "/" {
		return p
	}
	parts := strings.Split(s[1:], "/")
	p.indices = make([]int, len(parts))
	for i, part := range parts {
		idx, err := strconv.Atoi(part)
		if err != nil || idx < 0 {
			panic(fmt.Errorf("path: invalid index %q", part))
		}
		p.indices[i] = idx
	}
	return p
}

// Indices returns the child indices of the path, outermost first.
func (p *Path) Indices() []int {
	out := make([]int, len(p.indices))
	copy(out, p.indices)
	return out
}

// Length returns the number of indices in the path; zero denotes the
// root.
func (p *Path) Length() int {
	return len(p.indices)
}

// push returns a copy of the path extended with one more child index.
// The original may subsequently be used without observing the change.
func (p *Path) push(index int) *Path {
	out := make([]int, len(p.indices)+1)
	copy(out, p.indices)
	out[len(p.indices)] = index
	return &Path{indices: out}
}

// rest returns the path without its first index. The returned path
// aliases the receiver's storage; it is never modified.
func (p *Path) rest() *Path {
	return &Path{indices: p.indices[1:]}
}

// MatchAgainst resolves the path against a tree, returning the
// addressed node or nil when an index along the way is out of bounds.
func (p *Path) MatchAgainst(t *Tree) *Tree {
	node := t
	for _, idx := range p.indices {
		if node == nil {
			return nil
		}
		node = node.At(idx)
	}
	return node
}

// Find resolves the path against a tree, returning the addressed node
// or nil if none, and whether the node exists.
func (p *Path) Find(t *Tree) (*Tree, bool) {
	node := p.MatchAgainst(t)
	return node, node != nil
}

// Equal determines if two paths address the same position.
func (p *Path) Equal(other interface{}) bool {
	op, isPath := other.(*Path)
	if !isPath || len(op.indices) != len(p.indices) {
		return false
	}
	for i, idx := range p.indices {
		if op.indices[i] != idx {
			return false
		}
	}
	return true
}

// String returns the path in its textual form.
func (p *Path) String() string {
	if len(p.indices) == 0 {
		return "/"
	}
	var buf strings.Builder
	for _, idx := range p.indices {
		buf.WriteByte('/')
		buf.WriteString(strconv.Itoa(idx))
	}
	return buf.String()
}

// AtPath returns the node addressed by the path string, or nil when the
// path does not resolve. It panics when the string is malformed.
func (t *Tree) AtPath(path string) *Tree {
	return PathNew(path).MatchAgainst(t)
}

// FindPath returns the node addressed by the path string or nil if
// none, and whether the node exists. It panics when the string is
// malformed.
func (t *Tree) FindPath(path string) (*Tree, bool) {
	return PathNew(path).Find(t)
}
