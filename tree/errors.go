// Copyright (c) 2026, the azalea authors.
// All rights reserved.
//
// SPDX-License-Identifier: MPL-2.0

package tree

import "errors"

// Child access errors. Index-based operations report misuse explicitly
// instead of degrading to a silent no-op so programming mistakes do not
// go unnoticed.
var (
	// ErrNoChildren indicates that a child was requested from a leaf.
	ErrNoChildren = errors.New("tree has no children")

	// ErrIndexOutOfRange indicates that a child index does not address
	// an existing child.
	ErrIndexOutOfRange = errors.New("child index out of range")
)
