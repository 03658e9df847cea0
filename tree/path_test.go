// Copyright (c) 2026, the azalea authors.
// All rights reserved.
//
// SPDX-License-Identifier: MPL-2.0

package tree

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"jsouthworth.net/go/try"
)

func TestPathNew(t *testing.T) {
	tests := []struct {
		path    string
		indices []int
	}{
		{"/", []int{}},
		{"/0", []int{0}},
		{"/1/1/0", []int{1, 1, 0}},
		{"/10/2", []int{10, 2}},
	}
	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			p := PathNew(tt.path)
			assert.Equal(t, tt.indices, p.Indices())
			assert.Equal(t, tt.path, p.String())
		})
	}
}

func TestPathNewInvalid(t *testing.T) {
	for _, path := range []string{"", "0/1", "/a", "/-1", "/1//2", "/1/"} {
		t.Run("path "+path, func(t *testing.T) {
			_, err := try.Apply(PathNew, path)
			assert.Error(t, err)
			assert.False(t, IsValidPath(path))
		})
	}
	assert.True(t, IsValidPath("/0/2"))
	assert.True(t, IsValidPath("/"))
}

func TestPathFrom(t *testing.T) {
	indices := []int{1, 2}
	p := PathFrom(indices...)
	indices[0] = 9
	assert.Equal(t, []int{1, 2}, p.Indices(), "paths do not alias caller storage")
	assert.Equal(t, "/1/2", p.String())
	assert.Equal(t, 2, p.Length())
	assert.Equal(t, 0, PathFrom().Length())
}

func TestPathEqual(t *testing.T) {
	assert.True(t, PathNew("/1/2").Equal(PathFrom(1, 2)))
	assert.False(t, PathNew("/1/2").Equal(PathFrom(1)))
	assert.False(t, PathNew("/1/2").Equal(PathFrom(2, 1)))
	assert.False(t, PathNew("/1/2").Equal("/1/2"))
}

func TestPathMatchAgainst(t *testing.T) {
	tr := sampleTree()
	tests := []struct {
		path string
		want interface{}
	}{
		{"/", "a"},
		{"/0", "b"},
		{"/1/1", "e"},
		{"/1/1/0", "f"},
		{"/2/0", "h"},
	}
	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			node := PathNew(tt.path).MatchAgainst(tr)
			require.NotNil(t, node)
			assert.Equal(t, tt.want, node.Value())
		})
	}
	assert.Nil(t, PathNew("/3").MatchAgainst(tr))
	assert.Nil(t, PathNew("/0/0").MatchAgainst(tr))
}

func TestPathFind(t *testing.T) {
	tr := sampleTree()
	node, ok := PathNew("/1/0").Find(tr)
	require.True(t, ok)
	assert.Equal(t, "d", node.Value())
	node, ok = PathNew("/9").Find(tr)
	assert.False(t, ok)
	assert.Nil(t, node)
}

func TestTreeAtPath(t *testing.T) {
	tr := sampleTree()
	assert.Equal(t, "e", tr.AtPath("/1/1").Value())
	assert.Nil(t, tr.AtPath("/1/9"))

	node, ok := tr.FindPath("/2")
	require.True(t, ok)
	assert.Equal(t, "g", node.Value())
	_, ok = tr.FindPath("/2/5")
	assert.False(t, ok)
}
