// Copyright (c) 2026, the azalea authors.
// All rights reserved.
//
// SPDX-License-Identifier: MPL-2.0

package zipper

import (
	"fmt"

	"jsouthworth.net/go/immutable/vector"

	"github.com/mikowitz/azalea/tree"
)

// FromTree creates a zipper focused on the whole tree. This is the only
// constructor; the root state is an empty breadcrumb stack.
func FromTree(t *tree.Tree) *Zipper {
	return &Zipper{focus: t}
}

// Zipper is a cursor over a tree. It is an immutable value and is cheap
// to pass around; navigation and edit operations return new zippers
// sharing structure with the old ones.
type Zipper struct {
	focus  *tree.Tree
	crumbs *crumbs
}

// crumb is one breadcrumb frame: the snapshot of an ancestor together
// with the siblings to the left (nearest last) and right (nearest
// first) of the focus at that level.
type crumb struct {
	parent *tree.Tree
	left   *vector.Vector
	right  *vector.Vector
}

// crumbs is a persistent stack of breadcrumb frames, innermost ancestor
// first. The nil *crumbs is the empty stack.
type crumbs struct {
	head *crumb
	rest *crumbs
}

func (c *crumbs) push(head *crumb) *crumbs {
	return &crumbs{head: head, rest: c}
}

func (c *crumbs) empty() bool {
	return c == nil
}

func (c *crumbs) depth() int {
	var n int
	for f := c; f != nil; f = f.rest {
		n++
	}
	return n
}

// Focus returns the subtree currently under the cursor.
func (z *Zipper) Focus() *tree.Tree {
	return z.focus
}

// Value returns the payload of the focused node.
func (z *Zipper) Value() interface{} {
	return z.focus.Value()
}

// Depth returns the number of ancestors above the focus; zero at the
// root.
func (z *Zipper) Depth() int {
	return z.crumbs.depth()
}

// IsRoot returns whether the focus is the root of the tree.
func (z *Zipper) IsRoot() bool {
	return z.crumbs.empty()
}

// IsEnd returns whether the focus is the last node of a depth-first
// walk of the whole tree: a leaf with no right sibling at any ancestor
// level.
func (z *Zipper) IsEnd() bool {
	if !z.focus.IsLeaf() {
		return false
	}
	for f := z.crumbs; f != nil; f = f.rest {
		if f.head.right.Length() != 0 {
			return false
		}
	}
	return true
}

// Down moves the focus to the first child of the current focus. It
// returns ErrNoChildren when the focus is a leaf.
func (z *Zipper) Down() (*Zipper, error) {
	n := z.focus.NumChildren()
	if n == 0 {
		return nil, ErrNoChildren
	}
	right := vector.Empty().Transform(
		func(store *vector.TVector) *vector.TVector {
			for i := 1; i < n; i++ {
				store = store.Append(z.focus.At(i))
			}
			return store
		})
	frame := &crumb{
		parent: z.focus,
		left:   vector.Empty(),
		right:  right,
	}
	return &Zipper{
		focus:  z.focus.At(0),
		crumbs: z.crumbs.push(frame),
	}, nil
}

// Up moves the focus to the immediate parent, reassembling it from the
// innermost breadcrumb as left ++ [focus] ++ right under the recorded
// ancestor value. Edits made at or below the focus are therefore
// carried upward. It returns ErrNoParent at the root.
func (z *Zipper) Up() (*Zipper, error) {
	if z.crumbs.empty() {
		return nil, ErrNoParent
	}
	return &Zipper{
		focus:  rebuild(z.crumbs.head, z.focus),
		crumbs: z.crumbs.rest,
	}, nil
}

// Right moves the focus to its next sibling. It returns
// ErrNoRightSibling at the root or when the focus is the rightmost
// sibling.
func (z *Zipper) Right() (*Zipper, error) {
	if z.crumbs.empty() || z.crumbs.head.right.Length() == 0 {
		return nil, ErrNoRightSibling
	}
	c := z.crumbs.head
	frame := &crumb{
		parent: c.parent,
		left:   c.left.Append(z.focus),
		right:  c.right.Delete(0),
	}
	return &Zipper{
		focus:  c.right.At(0).(*tree.Tree),
		crumbs: z.crumbs.rest.push(frame),
	}, nil
}

// Left moves the focus to its previous sibling. It returns
// ErrNoLeftSibling at the root or when the focus is the leftmost
// sibling.
func (z *Zipper) Left() (*Zipper, error) {
	if z.crumbs.empty() || z.crumbs.head.left.Length() == 0 {
		return nil, ErrNoLeftSibling
	}
	c := z.crumbs.head
	last := c.left.Length() - 1
	frame := &crumb{
		parent: c.parent,
		left:   c.left.Delete(last),
		right:  prepend(z.focus, c.right),
	}
	return &Zipper{
		focus:  c.left.At(last).(*tree.Tree),
		crumbs: z.crumbs.rest.push(frame),
	}, nil
}

// Rightmost moves the focus to the rightmost sibling. It never fails:
// at the root or already at the edge it returns the zipper unchanged.
func (z *Zipper) Rightmost() *Zipper {
	out := z
	for {
		next, err := out.Right()
		if err != nil {
			return out
		}
		out = next
	}
}

// Leftmost moves the focus to the leftmost sibling. It never fails: at
// the root or already at the edge it returns the zipper unchanged.
func (z *Zipper) Leftmost() *Zipper {
	out := z
	for {
		next, err := out.Left()
		if err != nil {
			return out
		}
		out = next
	}
}

// Root climbs to the root of the tree, reassembling every edited level
// along the way. It is idempotent at the root. The result's Focus is
// the fully rebuilt tree.
func (z *Zipper) Root() *Zipper {
	out := z
	for !out.IsRoot() {
		up, err := out.Up()
		if err != nil {
			return out
		}
		out = up
	}
	return out
}

// ToTree materializes the tree as edited through the zipper.
func (z *Zipper) ToTree() *tree.Tree {
	return z.Root().focus
}

// AppendChild inserts the child as the last child of the focus. The
// focus does not move; the edit is entirely local to the focus subtree
// so the breadcrumbs are untouched. Bare payloads are promoted.
func (z *Zipper) AppendChild(child interface{}) *Zipper {
	return &Zipper{
		focus:  z.focus.InsertChild(child, -1),
		crumbs: z.crumbs,
	}
}

// InsertChild inserts the child as the first child of the focus. The
// focus does not move. Bare payloads are promoted.
func (z *Zipper) InsertChild(child interface{}) *Zipper {
	return &Zipper{
		focus:  z.focus.AddChild(child),
		crumbs: z.crumbs,
	}
}

// InsertLeft adds a new sibling immediately to the left of the focus
// without moving the focus. It returns ErrRootHasNoSiblings at the
// root. Bare payloads are promoted.
func (z *Zipper) InsertLeft(sibling interface{}) (*Zipper, error) {
	if z.crumbs.empty() {
		return nil, ErrRootHasNoSiblings
	}
	c := z.crumbs.head
	frame := &crumb{
		parent: c.parent,
		left:   c.left.Append(tree.TreeFrom(sibling)),
		right:  c.right,
	}
	// Refresh the ancestor snapshot so the frame keeps describing its
	// own child list.
	frame.parent = rebuild(frame, z.focus)
	return &Zipper{
		focus:  z.focus,
		crumbs: z.crumbs.rest.push(frame),
	}, nil
}

// InsertRight adds a new sibling immediately to the right of the focus
// without moving the focus. It returns ErrRootHasNoSiblings at the
// root. Bare payloads are promoted.
func (z *Zipper) InsertRight(sibling interface{}) (*Zipper, error) {
	if z.crumbs.empty() {
		return nil, ErrRootHasNoSiblings
	}
	c := z.crumbs.head
	frame := &crumb{
		parent: c.parent,
		left:   c.left,
		right:  prepend(tree.TreeFrom(sibling), c.right),
	}
	frame.parent = rebuild(frame, z.focus)
	return &Zipper{
		focus:  z.focus,
		crumbs: z.crumbs.rest.push(frame),
	}, nil
}

// Replace substitutes the focus with the given subtree. Bare payloads
// are promoted.
func (z *Zipper) Replace(in interface{}) *Zipper {
	return &Zipper{
		focus:  tree.TreeFrom(in),
		crumbs: z.crumbs,
	}
}

// Modify substitutes the focus with the result of applying fn to it.
func (z *Zipper) Modify(fn func(*tree.Tree) *tree.Tree) *Zipper {
	return z.Replace(fn(z.focus))
}

// Path returns the child-index path from the root to the focus.
func (z *Zipper) Path() *tree.Path {
	indices := make([]int, z.crumbs.depth())
	i := len(indices) - 1
	for f := z.crumbs; f != nil; f = f.rest {
		indices[i] = f.head.left.Length()
		i--
	}
	return tree.PathFrom(indices...)
}

// WalkTo descends from the current focus along a child-index path. The
// navigation sentinels surface unchanged when the path does not resolve.
func (z *Zipper) WalkTo(p *tree.Path) (*Zipper, error) {
	out := z
	for _, idx := range p.Indices() {
		next, err := out.Down()
		if err != nil {
			return nil, err
		}
		for ; idx > 0; idx-- {
			next, err = next.Right()
			if err != nil {
				return nil, err
			}
		}
		out = next
	}
	return out, nil
}

// String returns a string representation of the zipper: the focus and
// its position.
func (z *Zipper) String() string {
	return fmt.Sprintf("%s@%s", z.focus, z.Path())
}

// rebuild reassembles the ancestor a crumb describes: the recorded
// value over left ++ [focus] ++ right.
func rebuild(c *crumb, focus *tree.Tree) *tree.Tree {
	children := make([]interface{}, 0,
		c.left.Length()+c.right.Length()+1)
	c.left.Range(func(_ int, sib *tree.Tree) {
		children = append(children, sib)
	})
	children = append(children, focus)
	c.right.Range(func(_ int, sib *tree.Tree) {
		children = append(children, sib)
	})
	return tree.TreeNew(c.parent.Value(), children...)
}

func prepend(t *tree.Tree, vec *vector.Vector) *vector.Vector {
	return vector.Empty().Transform(
		func(store *vector.TVector) *vector.TVector {
			store = store.Append(t)
			vec.Range(func(_ int, sib *tree.Tree) {
				store = store.Append(sib)
			})
			return store
		})
}
