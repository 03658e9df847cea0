// Copyright (c) 2026, the azalea authors.
// All rights reserved.
//
// SPDX-License-Identifier: MPL-2.0

package zipper

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mikowitz/azalea/tree"
)

// sampleTree builds a(b, c(d, e(f)), g(h)): eight nodes over three
// levels, depth-first order [a b c d e f g h].
func sampleTree() *tree.Tree {
	return tree.TreeNew("a",
		"b",
		tree.TreeNew("c", "d", tree.TreeNew("e", "f")),
		tree.TreeNew("g", "h"),
	)
}

func mustDown(t *testing.T, z *Zipper) *Zipper {
	t.Helper()
	out, err := z.Down()
	require.NoError(t, err)
	return out
}

func mustRight(t *testing.T, z *Zipper) *Zipper {
	t.Helper()
	out, err := z.Right()
	require.NoError(t, err)
	return out
}

func TestFromTree(t *testing.T) {
	z := FromTree(sampleTree())
	assert.True(t, z.IsRoot())
	assert.Equal(t, 0, z.Depth())
	assert.Equal(t, "a", z.Value())
	assert.True(t, z.Focus().Equal(sampleTree()))
}

func TestRootIsFixedPoint(t *testing.T) {
	z := FromTree(sampleTree())
	assert.Same(t, z, z.Root())
	assert.True(t, z.ToTree().Equal(sampleTree()))
}

func TestDownUpInversion(t *testing.T) {
	z := FromTree(sampleTree())
	down := mustDown(t, z)
	assert.Equal(t, "b", down.Value())
	assert.False(t, down.IsRoot())
	up, err := down.Up()
	require.NoError(t, err)
	assert.True(t, up.IsRoot())
	assert.True(t, up.Focus().Equal(z.Focus()))
}

func TestNavigation(t *testing.T) {
	z := mustDown(t, FromTree(sampleTree()))
	assert.Equal(t, "b", z.Value())

	z = mustRight(t, z)
	assert.Equal(t, "c", z.Value())
	assert.Equal(t, 1, z.Depth())

	left, err := z.Left()
	require.NoError(t, err)
	assert.Equal(t, "b", left.Value())

	z = mustRight(t, z)
	assert.Equal(t, "g", z.Value())

	z = mustDown(t, z)
	assert.Equal(t, "h", z.Value())
	assert.Equal(t, 2, z.Depth())
}

func TestNavigationErrors(t *testing.T) {
	root := FromTree(sampleTree())

	_, err := root.Up()
	assert.ErrorIs(t, err, ErrNoParent)
	_, err = root.Right()
	assert.ErrorIs(t, err, ErrNoRightSibling)
	_, err = root.Left()
	assert.ErrorIs(t, err, ErrNoLeftSibling)

	b := mustDown(t, root)
	_, err = b.Down()
	assert.ErrorIs(t, err, ErrNoChildren)
	_, err = b.Left()
	assert.ErrorIs(t, err, ErrNoLeftSibling)

	g := mustRight(t, mustRight(t, b))
	_, err = g.Right()
	assert.ErrorIs(t, err, ErrNoRightSibling)
}

func TestLeftmostRightmost(t *testing.T) {
	root := FromTree(sampleTree())
	assert.Same(t, root, root.Rightmost(), "saturates at the root")
	assert.Same(t, root, root.Leftmost())

	b := mustDown(t, root)
	rightmost := b.Rightmost()
	assert.Equal(t, "g", rightmost.Value())
	assert.Same(t, rightmost, rightmost.Rightmost(), "saturates at the edge")
	assert.Equal(t, "b", rightmost.Leftmost().Value())
}

func TestIsEnd(t *testing.T) {
	// The last node of the depth-first walk is h, reached via
	// down, right, right, down.
	z := FromTree(sampleTree())
	var ends []interface{}
	total := 0
	z.Focus().Range(func(node *tree.Tree) {
		total++
	})
	walkDepthFirst(z, func(cur *Zipper) {
		if cur.IsEnd() {
			ends = append(ends, cur.Value())
		}
	})
	assert.Equal(t, []interface{}{"h"}, ends)
	assert.Equal(t, 8, total)

	end := mustDown(t, mustRight(t, mustRight(t, mustDown(t, z))))
	assert.Equal(t, "h", end.Value())
	assert.True(t, end.IsEnd())
}

// walkDepthFirst visits every node reachable from z by reacting to the
// navigation sentinels: descend while possible, otherwise step right,
// otherwise climb until a right step succeeds.
func walkDepthFirst(z *Zipper, visit func(*Zipper)) {
	cur := z
	for {
		visit(cur)
		if next, err := cur.Down(); err == nil {
			cur = next
			continue
		}
		for {
			if next, err := cur.Right(); err == nil {
				cur = next
				break
			}
			up, err := cur.Up()
			if err != nil {
				return
			}
			cur = up
		}
	}
}

func TestDepthFirstWalkByErrorSignals(t *testing.T) {
	var got []interface{}
	walkDepthFirst(FromTree(sampleTree()), func(cur *Zipper) {
		got = append(got, cur.Value())
	})
	assert.Equal(t,
		[]interface{}{"a", "b", "c", "d", "e", "f", "g", "h"},
		got)
}

func TestInsertLeft(t *testing.T) {
	z := mustDown(t, FromTree(tree.TreeNew("a", "b", "c", "g")))
	require.Equal(t, "b", z.Value())

	edited, err := z.InsertLeft("i")
	require.NoError(t, err)
	assert.Equal(t, "b", edited.Value(), "focus does not move")

	got := edited.ToTree()
	assert.True(t, got.Equal(tree.TreeNew("a", "i", "b", "c", "g")),
		"got %s", got)
}

func TestInsertRight(t *testing.T) {
	z := mustDown(t, FromTree(tree.TreeNew("a", "b", "c", "g")))

	edited, err := z.InsertRight("i")
	require.NoError(t, err)
	assert.Equal(t, "b", edited.Value())

	got := edited.ToTree()
	assert.True(t, got.Equal(tree.TreeNew("a", "b", "i", "c", "g")),
		"got %s", got)
}

func TestInsertSiblingNavigation(t *testing.T) {
	z := mustDown(t, FromTree(tree.TreeNew("a", "b", "c")))
	edited, err := z.InsertLeft("i")
	require.NoError(t, err)

	left, err := edited.Left()
	require.NoError(t, err)
	assert.Equal(t, "i", left.Value(), "inserted sibling is reachable")

	up, err := edited.Up()
	require.NoError(t, err)
	assert.True(t, up.Focus().Equal(tree.TreeNew("a", "i", "b", "c")))
}

func TestInsertSiblingAtRoot(t *testing.T) {
	z := FromTree(sampleTree())
	_, err := z.InsertLeft("i")
	assert.ErrorIs(t, err, ErrRootHasNoSiblings)
	_, err = z.InsertRight("i")
	assert.ErrorIs(t, err, ErrRootHasNoSiblings)
}

func TestAppendChild(t *testing.T) {
	z := mustRight(t, mustDown(t, FromTree(sampleTree())))
	require.Equal(t, "c", z.Value())

	edited := z.AppendChild("z")
	assert.Equal(t, "c", edited.Value())
	assert.Equal(t, 3, edited.Focus().NumChildren())

	got := edited.ToTree()
	want := tree.TreeNew("a",
		"b",
		tree.TreeNew("c", "d", tree.TreeNew("e", "f"), "z"),
		tree.TreeNew("g", "h"),
	)
	assert.True(t, got.Equal(want), "got %s, want %s", got, want)
}

func TestInsertChild(t *testing.T) {
	z := mustRight(t, mustDown(t, FromTree(sampleTree())))

	got := z.InsertChild("z").ToTree()
	want := tree.TreeNew("a",
		"b",
		tree.TreeNew("c", "z", "d", tree.TreeNew("e", "f")),
		tree.TreeNew("g", "h"),
	)
	assert.True(t, got.Equal(want), "got %s, want %s", got, want)
}

func TestChildEditsSurviveNavigation(t *testing.T) {
	// Edit below the focus, then keep navigating before rebuilding.
	z := mustDown(t, FromTree(sampleTree()))
	edited := z.AppendChild("b1")
	sib, err := edited.Right()
	require.NoError(t, err)
	back, err := sib.Left()
	require.NoError(t, err)
	assert.True(t, back.Focus().Equal(tree.TreeNew("b", "b1")))

	want := tree.TreeNew("a",
		tree.TreeNew("b", "b1"),
		tree.TreeNew("c", "d", tree.TreeNew("e", "f")),
		tree.TreeNew("g", "h"),
	)
	assert.True(t, sib.ToTree().Equal(want))
}

func TestReplaceAndModify(t *testing.T) {
	z := mustDown(t, FromTree(tree.TreeNew("a", "b", "c")))

	replaced := z.Replace(tree.TreeNew("B", "x"))
	assert.True(t, replaced.ToTree().Equal(
		tree.TreeNew("a", tree.TreeNew("B", "x"), "c")))

	promoted := z.Replace("y")
	assert.True(t, promoted.ToTree().Equal(tree.TreeNew("a", "y", "c")))

	modified := z.Modify(func(focus *tree.Tree) *tree.Tree {
		return focus.WithValue("Z")
	})
	assert.True(t, modified.ToTree().Equal(tree.TreeNew("a", "Z", "c")))
}

func TestZipperImmutability(t *testing.T) {
	original := sampleTree()
	z := mustDown(t, FromTree(original))

	edited, err := z.InsertLeft("i")
	require.NoError(t, err)
	_ = edited.AppendChild("j").ToTree()

	// The pre-edit zipper still reconstructs the original tree.
	assert.True(t, z.ToTree().Equal(original))
	assert.Equal(t, "b", z.Value())
}

func TestPath(t *testing.T) {
	z := FromTree(sampleTree())
	assert.Equal(t, "/", z.Path().String())

	f := mustDown(t, mustRight(t, mustDown(t, mustRight(t, mustDown(t, z)))))
	require.Equal(t, "f", f.Value())
	assert.Equal(t, "/1/1/0", f.Path().String())
}

func TestWalkTo(t *testing.T) {
	z := FromTree(sampleTree())

	f, err := z.WalkTo(tree.PathNew("/1/1/0"))
	require.NoError(t, err)
	assert.Equal(t, "f", f.Value())
	assert.True(t, f.Path().Equal(tree.PathNew("/1/1/0")))

	same, err := z.WalkTo(tree.PathFrom())
	require.NoError(t, err)
	assert.Same(t, z, same)

	_, err = z.WalkTo(tree.PathNew("/5"))
	assert.ErrorIs(t, err, ErrNoRightSibling)
	_, err = z.WalkTo(tree.PathNew("/0/0"))
	assert.ErrorIs(t, err, ErrNoChildren)
}

func TestString(t *testing.T) {
	z := mustDown(t, FromTree(tree.TreeNew("a", "b")))
	assert.Equal(t, "b@/0", z.String())
}
