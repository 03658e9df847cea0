// Copyright (c) 2026, the azalea authors.
// All rights reserved.
//
// SPDX-License-Identifier: MPL-2.0

package tree

import (
	"bytes"
	"fmt"
)

const (
	// EditInsert is the edit action associated with inserting a
	// subtree so that it becomes the node at the entry's path.
	EditInsert EditAction = "insert"
	// EditRemove is the edit action associated with removing the node
	// at the entry's path.
	EditRemove EditAction = "remove"
	// EditReplace is the edit action associated with replacing the
	// subtree at the entry's path.
	EditReplace EditAction = "replace"
)

// EditAction is an action that can be performed by the edit engine.
type EditAction string

// String returns the EditAction as a string.
func (e EditAction) String() string {
	return string(e)
}

// EditEntry contains the action to perform as well as the path to
// perform it at and the subtree, if any, to be used.
type EditEntry struct {
	Action EditAction
	Path   *Path
	Value  *Tree
}

func (e *EditEntry) evalInsert() func(*Tree) *Tree {
	path, value := e.Path, e.Value
	return func(t *Tree) *Tree {
		return t.insertAt(path, value)
	}
}

func (e *EditEntry) evalRemove() func(*Tree) *Tree {
	path := e.Path
	return func(t *Tree) *Tree {
		return t.removeAt(path)
	}
}

func (e *EditEntry) evalReplace() func(*Tree) *Tree {
	path, value := e.Path, e.Value
	return func(t *Tree) *Tree {
		return t.replaceAt(path, value)
	}
}

func (e *EditEntry) eval() func(*Tree) *Tree {
	switch e.Action {
	case EditInsert:
		return e.evalInsert()
	case EditRemove:
		return e.evalRemove()
	case EditReplace:
		return e.evalReplace()
	default:
		panic(fmt.Errorf("unknown edit-action %v", e.Action))
	}
}

// String returns a string representation of the EditEntry.
func (e EditEntry) String() string {
	if e.Value == nil {
		return fmt.Sprintf("[%s %s]", e.Action, e.Path)
	}
	return fmt.Sprintf("[%s %s %s]", e.Action, e.Path, e.Value)
}

// EditOperation holds an ordered sequence of edit actions. It captures
// a change set as a piece of data that can be evaluated as tree
// operations and applied to a tree.
type EditOperation struct {
	Actions []EditEntry
}

// EditOperationNew produces a new EditOperation from the provided
// entries. This allows one to declaratively build an EditOperation.
func EditOperationNew(entries ...EditEntry) *EditOperation {
	return &EditOperation{
		Actions: entries,
	}
}

// String returns a string representation of the EditOperation.
func (e *EditOperation) String() string {
	var buf bytes.Buffer
	for i, action := range e.Actions {
		buf.WriteString(action.String())
		if i < len(e.Actions)-1 {
			buf.WriteByte(' ')
		}
	}
	return buf.String()
}

func (e *EditOperation) eval() func(*Tree) *Tree {
	actions := make([]func(*Tree) *Tree, len(e.Actions))
	for i, action := range e.Actions {
		actions[i] = action.eval()
	}
	return func(t *Tree) *Tree {
		for _, action := range actions {
			t = action(t)
		}
		return t
	}
}

type editEntryOptions struct {
	value *Tree
}

// EditEntryOption is a constructor for the optional parts of an
// EditEntry.
type EditEntryOption func(*editEntryOptions)

// EditEntryValue produces an EditEntryOption that populates the value
// field of an EditEntry. Bare payloads are promoted.
func EditEntryValue(val interface{}) EditEntryOption {
	return func(o *editEntryOptions) {
		o.value = TreeFrom(val)
	}
}

// EditEntryNew constructs a new EditEntry from the provided parameters.
// The last option wins if two options write the same field.
func EditEntryNew(action EditAction, path string, options ...EditEntryOption) EditEntry {
	var opts editEntryOptions
	for _, option := range options {
		option(&opts)
	}
	return EditEntry{
		Action: action,
		Path:   PathNew(path),
		Value:  opts.value,
	}
}

// Edit applies an EditOperation to the tree, returning the edited tree.
func (t *Tree) Edit(edit *EditOperation) *Tree {
	op := edit.eval()
	return op(t)
}

// Diff compares two trees and returns the operations required to edit
// the original to produce the other one, so that
// t.Edit(t.Diff(other)) is equal to other.
func (t *Tree) Diff(other *Tree) *EditOperation {
	return &EditOperation{
		Actions: t.diff(other, PathFrom()),
	}
}

func (t *Tree) diff(other *Tree, path *Path) []EditEntry {
	if equal(t, other) {
		return nil
	}
	if !equal(t.value, other.value) {
		return []EditEntry{
			{Action: EditReplace, Path: path, Value: other},
		}
	}
	out := []EditEntry{}
	n, m := t.NumChildren(), other.NumChildren()
	common := n
	if m < n {
		common = m
	}
	for i := 0; i < common; i++ {
		out = append(out,
			t.At(i).diff(other.At(i), path.push(i))...)
	}
	// Surplus children are removed tail first so earlier paths stay
	// stable while the operation is replayed.
	for i := n - 1; i >= common; i-- {
		out = append(out, EditEntry{
			Action: EditRemove,
			Path:   path.push(i),
		})
	}
	for i := common; i < m; i++ {
		out = append(out, EditEntry{
			Action: EditInsert,
			Path:   path.push(i),
			Value:  other.At(i),
		})
	}
	return out
}

func (t *Tree) replaceAt(p *Path, sub *Tree) *Tree {
	if p.Length() == 0 {
		return sub
	}
	idx := p.indices[0]
	child := t.At(idx)
	if child == nil {
		return t
	}
	return &Tree{
		value:    t.value,
		children: t.children.Assoc(idx, child.replaceAt(p.rest(), sub)),
	}
}

func (t *Tree) insertAt(p *Path, sub *Tree) *Tree {
	switch p.Length() {
	case 0:
		return sub
	case 1:
		return t.InsertChild(sub, p.indices[0])
	}
	idx := p.indices[0]
	child := t.At(idx)
	if child == nil {
		return t
	}
	return &Tree{
		value:    t.value,
		children: t.children.Assoc(idx, child.insertAt(p.rest(), sub)),
	}
}

func (t *Tree) removeAt(p *Path) *Tree {
	switch p.Length() {
	case 0:
		return t
	case 1:
		_, rest, err := t.RemoveChild(p.indices[0])
		if err != nil {
			return t
		}
		return rest
	}
	idx := p.indices[0]
	child := t.At(idx)
	if child == nil {
		return t
	}
	return &Tree{
		value:    t.value,
		children: t.children.Assoc(idx, child.removeAt(p.rest())),
	}
}
