// Copyright (c) 2026, the azalea authors.
// All rights reserved.
//
// SPDX-License-Identifier: MPL-2.0

// Package zipper implements a Huet zipper over the persistent rose
// trees of the tree package. A Zipper pairs a focused subtree with a
// stack of breadcrumbs recording, for every ancestor level, the
// ancestor's value and the siblings to the left and right of the
// focus. The breadcrumbs carry enough context to reconstruct the whole
// tree after local edits, so a caller can navigate to any node, insert
// or remove siblings and children there, and climb back to the root to
// materialize the fully rebuilt tree.
//
// Zippers are immutable values: every navigation or edit operation
// returns a new Zipper and leaves the original valid and unaffected.
// Navigation off the edge of the tree is not a fault; it is signalled
// with sentinel errors (ErrNoChildren, ErrNoRightSibling, ...) that
// callers branch on as part of normal traversal termination, e.g. walk
// Right until ErrNoRightSibling and then go Up.
package zipper
