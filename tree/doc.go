// Copyright (c) 2026, the azalea authors.
// All rights reserved.
//
// SPDX-License-Identifier: MPL-2.0

// Package tree implements a persistent rose tree: a finite, acyclic,
// rooted tree in which every node carries an arbitrary payload and an
// ordered sequence of children. Trees are immutable; every mutation
// operation returns a new structurally shared copy of the tree with the
// changes made. This allows for cheap copies of the tree and for it to
// be shared easily, including across goroutines without coordination.
// Child order is semantically meaningful and duplicate children are
// permitted. Trees may be addressed positionally through child-index
// Paths, traversed depth-first with Range and Reduce, reshaped with Map,
// and edited in bulk through EditOperations.
package tree
