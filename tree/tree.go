// Copyright (c) 2026, the azalea authors.
// All rights reserved.
//
// SPDX-License-Identifier: MPL-2.0

package tree

import (
	"bytes"
	"fmt"
	"sort"

	"jsouthworth.net/go/dyn"
	"jsouthworth.net/go/immutable/vector"
)

// TreeNew creates a tree node from a value and an ordered list of
// children. Children may be existing *Tree values or bare payloads;
// bare payloads are promoted to leaf trees, preserving order.
func TreeNew(value interface{}, children ...interface{}) *Tree {
	t := &Tree{
		value:    value,
		children: vector.Empty(),
	}
	if len(children) == 0 {
		return t
	}
	t.children = t.children.Transform(
		func(store *vector.TVector) *vector.TVector {
			for _, child := range children {
				store = store.Append(TreeFrom(child))
			}
			return store
		})
	return t
}

// TreeFrom promotes an arbitrary value to a tree. Existing *Tree values
// are returned unchanged; anything else becomes a leaf holding the value.
func TreeFrom(in interface{}) *Tree {
	if t, isTree := in.(*Tree); isTree {
		return t
	}
	return TreeNew(in)
}

// Tree is a persistent rose tree node. The mutation methods return new
// structurally shared copies of the original tree with the changes;
// a Tree value is never modified once constructed.
type Tree struct {
	value    interface{}
	children *vector.Vector
}

// Value returns the payload stored at this node.
func (t *Tree) Value() interface{} {
	return t.value
}

// WithValue returns a tree with the same children and the payload
// replaced.
func (t *Tree) WithValue(value interface{}) *Tree {
	return &Tree{
		value:    value,
		children: t.children,
	}
}

// NumChildren returns the number of direct children of this node.
func (t *Tree) NumChildren() int {
	return t.children.Length()
}

// IsLeaf returns whether the node has no children.
func (t *Tree) IsLeaf() bool {
	return t.children.Length() == 0
}

// At returns the child at the index, or nil if the index is out of
// bounds.
func (t *Tree) At(index int) *Tree {
	if index < 0 || index >= t.children.Length() {
		return nil
	}
	return t.children.At(index).(*Tree)
}

// Find returns the child at the index or nil if it doesn't exist and
// whether the index was in bounds.
func (t *Tree) Find(index int) (*Tree, bool) {
	v, ok := t.children.Find(index)
	if !ok {
		return nil, ok
	}
	return v.(*Tree), ok
}

// IsChild returns whether the candidate is equal to one of the node's
// direct children. Matching is structural, so two equal but distinct
// subtrees are indistinguishable here. Bare payloads are promoted before
// matching.
func (t *Tree) IsChild(candidate interface{}) bool {
	want := TreeFrom(candidate)
	var found bool
	t.children.Range(func(_ int, child *Tree) bool {
		if equal(child, want) {
			found = true
			return false
		}
		return true
	})
	return found
}

// AddChild returns a tree with the child inserted as the first child of
// the node.
func (t *Tree) AddChild(child interface{}) *Tree {
	return t.InsertChild(child, 0)
}

// AppendChild returns a tree with the child inserted as the last child
// of the node.
func (t *Tree) AppendChild(child interface{}) *Tree {
	return t.InsertChild(child, -1)
}

// InsertChild returns a tree with the child inserted at the index in the
// ordered children sequence. Index -1 appends, other negative indices
// count from the end, and an index beyond the current length clamps to
// append. Bare payloads are promoted.
func (t *Tree) InsertChild(child interface{}, index int) *Tree {
	n := t.children.Length()
	pos := index
	if pos < 0 {
		pos = n + index + 1
	}
	if pos < 0 {
		pos = 0
	}
	if pos > n {
		pos = n
	}
	wrapped := TreeFrom(child)
	if pos == n {
		return &Tree{
			value:    t.value,
			children: t.children.Append(wrapped),
		}
	}
	store := vector.Empty().Transform(
		func(store *vector.TVector) *vector.TVector {
			t.children.Range(func(i int, c *Tree) {
				if i == pos {
					store = store.Append(wrapped)
				}
				store = store.Append(c)
			})
			return store
		})
	return &Tree{
		value:    t.value,
		children: store,
	}
}

// PopChild removes the first child, returning the child and the tree
// without it. It returns ErrNoChildren when called on a leaf.
func (t *Tree) PopChild() (*Tree, *Tree, error) {
	if t.children.Length() == 0 {
		return nil, t, ErrNoChildren
	}
	child := t.children.At(0).(*Tree)
	rest := &Tree{
		value:    t.value,
		children: t.children.Delete(0),
	}
	return child, rest, nil
}

// RemoveChild removes the child at the index, returning the child and
// the tree without it. Negative indices count from the end. It returns
// ErrIndexOutOfRange when the index does not address a child.
func (t *Tree) RemoveChild(index int) (*Tree, *Tree, error) {
	n := t.children.Length()
	pos := index
	if pos < 0 {
		pos = n + index
	}
	if pos < 0 || pos >= n {
		return nil, t, ErrIndexOutOfRange
	}
	child := t.children.At(pos).(*Tree)
	rest := &Tree{
		value:    t.value,
		children: t.children.Delete(pos),
	}
	return child, rest, nil
}

// UpdateAt returns a tree with the child at the index replaced by the
// result of applying fn to it. Negative indices count from the end. It
// returns ErrIndexOutOfRange when the index does not address a child.
func (t *Tree) UpdateAt(index int, fn func(*Tree) *Tree) (*Tree, error) {
	n := t.children.Length()
	pos := index
	if pos < 0 {
		pos = n + index
	}
	if pos < 0 || pos >= n {
		return t, ErrIndexOutOfRange
	}
	child := t.children.At(pos).(*Tree)
	return &Tree{
		value:    t.value,
		children: t.children.Assoc(pos, fn(child)),
	}, nil
}

// Map applies fn to every node of the tree, preserving structure. The
// function is applied pre-order: fn sees each node first and the
// children of its result are then themselves recursively mapped, so any
// children fn injects are also visited.
func (t *Tree) Map(fn func(*Tree) *Tree) *Tree {
	out := fn(t)
	store := vector.Empty().Transform(
		func(store *vector.TVector) *vector.TVector {
			out.children.Range(func(_ int, c *Tree) {
				store = store.Append(c.Map(fn))
			})
			return store
		})
	return &Tree{
		value:    out.value,
		children: store,
	}
}

// Reduce performs a pre-order depth-first walk, calling fn on every node
// including the root and accumulating left to right through children.
func (t *Tree) Reduce(init interface{},
	fn func(acc interface{}, t *Tree) interface{},
) interface{} {
	acc := fn(init, t)
	t.children.Range(func(_ int, c *Tree) {
		acc = c.Reduce(acc, fn)
	})
	return acc
}

// Range iterates over the tree's nodes in pre-order depth-first order.
// Range can take a set of functions matched by type. If the function
// returns a bool this is treated as a loop termination variable; if
// false the walk short-circuits.
//
//	func(*Path, *Tree) iterates over child-index paths and nodes.
//	func(*Path, *Tree) bool
//	func(*Tree) iterates over only the nodes.
//	func(*Tree) bool
//	func(interface{}) iterates over only the node payloads.
//	func(interface{}) bool
func (t *Tree) Range(fn interface{}) *Tree {
	rangeFn := genTreeRangeFunc(fn)
	var recur func(p *Path, node *Tree) bool
	recur = func(p *Path, node *Tree) bool {
		if !rangeFn(p, node) {
			return false
		}
		cont := true
		node.children.Range(func(i int, c *Tree) bool {
			cont = recur(p.push(i), c)
			return cont
		})
		return cont
	}
	recur(PathFrom(), t)
	return t
}

func genTreeRangeFunc(fn interface{}) func(p *Path, t *Tree) bool {
	switch f := fn.(type) {
	case func(*Path, *Tree) bool:
		return f
	case func(*Path, *Tree):
		return func(p *Path, t *Tree) bool {
			f(p, t)
			return true
		}
	case func(*Tree) bool:
		return func(_ *Path, t *Tree) bool {
			return f(t)
		}
	case func(*Tree):
		return func(_ *Path, t *Tree) bool {
			f(t)
			return true
		}
	case func(interface{}) bool:
		return func(_ *Path, t *Tree) bool {
			return f(t.value)
		}
	case func(interface{}):
		return func(_ *Path, t *Tree) bool {
			f(t.value)
			return true
		}
	default:
		panic("invalid range function")
	}
}

// Length returns the total number of nodes in the tree, including the
// root.
func (t *Tree) Length() int {
	var count int
	t.Range(func(*Tree) {
		count++
	})
	return count
}

// Slice returns the nodes of the tree as a flat slice in pre-order
// depth-first order. Unlike Map, this linearizes the tree.
func (t *Tree) Slice() []*Tree {
	out := make([]*Tree, 0, t.Length())
	t.Range(func(node *Tree) {
		out = append(out, node)
	})
	return out
}

// Values returns the node payloads in pre-order depth-first order.
func (t *Tree) Values() []interface{} {
	out := make([]interface{}, 0, t.Length())
	t.Range(func(value interface{}) {
		out = append(out, value)
	})
	return out
}

// PathTo returns the sequence of nodes from the root of the receiver
// down to the first pre-order node equal to the target, inclusive on
// both ends, and whether such a node exists. Bare payloads are promoted
// before matching, so a bare target matches only leaves.
func (t *Tree) PathTo(target interface{}) ([]*Tree, bool) {
	return t.pathTo(TreeFrom(target))
}

func (t *Tree) pathTo(want *Tree) ([]*Tree, bool) {
	if equal(t, want) {
		return []*Tree{t}, true
	}
	var trail []*Tree
	t.children.Range(func(_ int, c *Tree) bool {
		sub, ok := c.pathTo(want)
		if ok {
			trail = sub
			return false
		}
		return true
	})
	if trail == nil {
		return nil, false
	}
	return append([]*Tree{t}, trail...), true
}

// Equal implements equality for trees. Two trees are equal if their
// values are equal and their children are pairwise equal in order.
// Equality checks are linear with respect to the number of nodes.
func (t *Tree) Equal(other interface{}) bool {
	ot, isTree := other.(*Tree)
	return isTree &&
		equal(t.value, ot.value) &&
		t.children.Length() == ot.children.Length() &&
		equal(t.children, ot.children)
}

// String returns a string representation of the tree in the form
// value(child, child(...), ...).
func (t *Tree) String() string {
	var buf bytes.Buffer
	t.string(&buf)
	return buf.String()
}

func (t *Tree) string(buf *bytes.Buffer) {
	fmt.Fprintf(buf, "%v", t.value)
	if t.children.Length() == 0 {
		return
	}
	buf.WriteByte('(')
	t.children.Range(func(i int, c *Tree) {
		c.string(buf)
		if i < t.children.Length()-1 {
			buf.WriteString(", ")
		}
	})
	buf.WriteByte(')')
}

func (t *Tree) copy() *Tree {
	return &Tree{
		value:    t.value,
		children: t.children,
	}
}

// Transform executes the provided function against a mutable transient
// view of the node's children to provide a faster, less memory
// intensive, editing mechanism for batches of child edits.
func (t *Tree) Transform(fn func(*TTree)) *Tree {
	tt := &TTree{
		value: t.value,
		store: t.children.AsTransient(),
	}
	fn(tt)
	out := t.copy()
	out.value = tt.value
	out.children = tt.store.AsPersistent()
	return out
}

// SortChildren sorts the node's direct children, returning a new tree.
// By default children are ordered by comparing their values; this may be
// overridden with the Compare option. Subtrees below the children are
// untouched.
func (t *Tree) SortChildren(options ...SortOption) *Tree {
	var opts sortOpts
	opts.compare = func(a, b *Tree) int {
		return dyn.Compare(a.value, b.value)
	}
	for _, opt := range options {
		opt(&opts)
	}
	sorter := childSorter{
		store: t.children.AsTransient(),
		opts:  &opts,
	}
	sort.Sort(&sorter)
	out := t.copy()
	out.children = sorter.store.AsPersistent()
	return out
}

type childSorter struct {
	store *vector.TVector
	opts  *sortOpts
}

func (s *childSorter) Len() int {
	return s.store.Length()
}

func (s *childSorter) Less(i, j int) bool {
	return s.opts.compare(s.store.At(i).(*Tree),
		s.store.At(j).(*Tree)) < 0
}

func (s *childSorter) Swap(i, j int) {
	a, b := s.store.At(i), s.store.At(j)
	s.store.Assoc(i, b)
	s.store.Assoc(j, a)
}

type sortOpts struct {
	compare func(a, b *Tree) int
}

// SortOption is an option to the SortChildren function.
type SortOption func(*sortOpts)

// Compare takes a comparison function and returns a sort option. A
// compare function takes two children and returns a trinary state as an
// integer. Less than zero indicates the first sorts before the last,
// zero indicates the two were equal, and greater than zero indicates
// that the first sorts after the last.
func Compare(fn func(a, b *Tree) int) SortOption {
	return func(opts *sortOpts) {
		opts.compare = fn
	}
}

// TTree is a transient view of a node that may be used to perform
// batches of child edits in a fast mutable fashion. It can only be
// obtained via the (*Tree).Transform method. Care should be taken not
// to share a TTree among goroutines as its values are mutable.
type TTree struct {
	value interface{}
	store *vector.TVector
}

// Value returns the payload stored at the node.
func (t *TTree) Value() interface{} {
	return t.value
}

// SetValue replaces the payload stored at the node.
func (t *TTree) SetValue(value interface{}) *TTree {
	t.value = value
	return t
}

// Append adds a child to the end of the children sequence. Bare
// payloads are promoted.
func (t *TTree) Append(child interface{}) *TTree {
	t.store = t.store.Append(TreeFrom(child))
	return t
}

// Assoc replaces the child at the index. The children sequence is not
// padded; indices beyond the current length panic in the underlying
// store.
func (t *TTree) Assoc(index int, child interface{}) *TTree {
	t.store = t.store.Assoc(index, TreeFrom(child))
	return t
}

// Delete removes the child at the index.
func (t *TTree) Delete(index int) *TTree {
	t.store = t.store.Delete(index)
	return t
}

// At returns the child at the index, or nil if the index is out of
// bounds.
func (t *TTree) At(index int) *Tree {
	if index >= t.store.Length() || index < 0 {
		return nil
	}
	return t.store.At(index).(*Tree)
}

// Find returns the child at the index or nil if it doesn't exist and
// whether the index was in bounds.
func (t *TTree) Find(index int) (*Tree, bool) {
	v, ok := t.store.Find(index)
	if !ok {
		return nil, ok
	}
	return v.(*Tree), ok
}

// Length returns the number of direct children.
func (t *TTree) Length() int {
	return t.store.Length()
}

// Range iterates over the direct children. It accepts the same child
// callback forms as the persistent tree:
//
//	func(int, *Tree) iterates over indices and children.
//	func(int, *Tree) bool
//	func(*Tree) iterates over only the children.
//	func(*Tree) bool
func (t *TTree) Range(fn interface{}) {
	// NOTE: this must be done inline to avoid needing a heap
	// allocation for the generated closure.
	switch f := fn.(type) {
	case func(int, *Tree):
	case func(int, *Tree) bool:
	case func(*Tree):
		fn = func(idx int, val interface{}) bool {
			f(val.(*Tree))
			return true
		}
	case func(*Tree) bool:
		fn = func(idx int, val interface{}) bool {
			return f(val.(*Tree))
		}
	default:
		panic("invalid range function")
	}
	t.store.Range(fn)
}

func equal(v1, v2 interface{}) bool {
	return dyn.Equal(v1, v2)
}
