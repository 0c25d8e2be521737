// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package shapes

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLayout(t *testing.T) {
	assert.Equal(t, 3, PositionLayout.Floats())
	assert.Equal(t, 12, PositionLayout.Stride())
	assert.Equal(t, 0, PositionLayout.Offset(0))

	assert.Equal(t, 6, ColorLayout.Floats())
	assert.Equal(t, 24, ColorLayout.Stride())
	assert.Equal(t, 0, ColorLayout.Offset(0))
	assert.Equal(t, 12, ColorLayout.Offset(1))
	assert.Equal(t, 1, ColorLayout.Index("aColor"))
	assert.Equal(t, -1, ColorLayout.Index("aTex"))

	var empty Layout
	assert.Equal(t, 0, empty.Stride())
}

func TestLibrary(t *testing.T) {
	assert.Equal(t, []string{"colored", "rectangle", "square", "triangle"}, Names())

	tests := []struct {
		name      string
		vertices  int
		draw      int
		indexed   bool
		triangles int
	}{
		{"triangle", 3, 3, false, 1},
		{"rectangle", 6, 6, false, 2},
		{"square", 4, 6, true, 2},
		{"colored", 3, 3, false, 1},
	}
	for _, tt := range tests {
		sh, err := Lookup(tt.name)
		require.NoError(t, err, tt.name)
		assert.NoError(t, sh.Validate(), tt.name)
		assert.Equal(t, tt.name, sh.Name)
		assert.Equal(t, tt.vertices, sh.VertexCount(), tt.name)
		assert.Equal(t, tt.draw, sh.DrawCount(), tt.name)
		assert.Equal(t, tt.indexed, sh.Indexed(), tt.name)
		assert.Equal(t, tt.triangles, sh.Triangles(), tt.name)
	}

	_, err := Lookup("teapot")
	assert.ErrorContains(t, err, "teapot")
}

func TestTriangleAndVertex(t *testing.T) {
	sq, err := Lookup("square")
	require.NoError(t, err)
	assert.Equal(t, [3]int{0, 1, 3}, sq.Triangle(0))
	assert.Equal(t, [3]int{1, 2, 3}, sq.Triangle(1))
	assert.Equal(t, []float32{-0.5, -0.5, 0}, sq.Vertex(2, 0))

	rect, err := Lookup("rectangle")
	require.NoError(t, err)
	assert.Equal(t, [3]int{3, 4, 5}, rect.Triangle(1))

	col, err := Lookup("colored")
	require.NoError(t, err)
	assert.Equal(t, []float32{0, 1, 0}, col.Vertex(1, 1))
	assert.Equal(t, []float32{0, 0.5, 0}, col.Vertex(2, 0))
}

func TestCloneIsIndependent(t *testing.T) {
	a, err := Lookup("square")
	require.NoError(t, err)
	a.Vertices[0] = 42
	a.Indices[0] = 2
	a.Layout[0].Name = "changed"

	b, err := Lookup("square")
	require.NoError(t, err)
	assert.Equal(t, float32(0.5), b.Vertices[0])
	assert.Equal(t, uint32(0), b.Indices[0])
	assert.Equal(t, "aPos", b.Layout[0].Name)
	assert.Equal(t, "aPos", PositionLayout[0].Name)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name string
		sh   Shape
		err  string
	}{
		{"no layout", Shape{Vertices: []float32{0, 0, 0}}, "empty vertex layout"},
		{"bad size", Shape{Layout: Layout{{Name: "a", Size: 5}}, Vertices: make([]float32, 15)}, "invalid size"},
		{"no vertices", Shape{Layout: PositionLayout}, "no vertices"},
		{"partial vertex", Shape{Layout: PositionLayout, Vertices: make([]float32, 10)}, "not a multiple of 3 floats"},
		{"partial triangle", Shape{Layout: PositionLayout, Vertices: make([]float32, 6)}, "draw count 2"},
		{"bad index", Shape{Layout: PositionLayout, Vertices: make([]float32, 9), Indices: []uint32{0, 1, 3}}, "index 3 at 2"},
	}
	for _, tt := range tests {
		err := tt.sh.Validate()
		assert.ErrorContains(t, err, tt.err, tt.name)
	}
}
