// Copyright (c) 2026, the azalea authors.
// All rights reserved.
//
// SPDX-License-Identifier: MPL-2.0

package zipper

import "errors"

// Navigation errors. These are expected, recoverable signals: a
// depth-first walk is implemented precisely by reacting to them and
// falling back to another direction.
var (
	// ErrNoChildren indicates that Down was called on a leaf focus.
	ErrNoChildren = errors.New("zipper: focus has no children")

	// ErrNoRightSibling indicates that Right was called at the root or
	// with no sibling to the right of the focus.
	ErrNoRightSibling = errors.New("zipper: focus has no right sibling")

	// ErrNoLeftSibling indicates that Left was called at the root or
	// with no sibling to the left of the focus.
	ErrNoLeftSibling = errors.New("zipper: focus has no left sibling")

	// ErrNoParent indicates that Up was called at the root.
	ErrNoParent = errors.New("zipper: focus has no parent")

	// ErrRootHasNoSiblings indicates that a sibling insertion was
	// attempted at the root, which has no parent to hold siblings.
	ErrRootHasNoSiblings = errors.New("zipper: root has no siblings")
)
