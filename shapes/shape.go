// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package shapes contains the fixed vertex and index data
// for the sample shapes, along with their vertex layouts.
package shapes

import (
	"fmt"

	"cogentcore.org/glsample/base/errors"
	"github.com/jinzhu/copier"
)

// Shape is a fixed set of vertices, and optionally indexes, that
// are drawn as a list of triangles.
type Shape struct {

	// Name is the unique name of the shape.
	Name string

	// Layout describes the attributes of each vertex in Vertices.
	Layout Layout

	// Vertices is the interleaved vertex data, in normalized
	// device coordinates for positions.
	Vertices []float32

	// Indices, if non-empty, are the indexes of vertices making up
	// the triangles, used with indexed drawing.
	Indices []uint32
}

// VertexCount returns the number of vertices.
func (sh *Shape) VertexCount() int {
	n := sh.Layout.Floats()
	if n == 0 {
		return 0
	}
	return len(sh.Vertices) / n
}

// Indexed returns whether the shape is drawn with indexes.
func (sh *Shape) Indexed() bool {
	return len(sh.Indices) > 0
}

// DrawCount returns the number of elements for the draw call:
// the number of indexes if Indexed, otherwise the number of vertices.
func (sh *Shape) DrawCount() int {
	if sh.Indexed() {
		return len(sh.Indices)
	}
	return sh.VertexCount()
}

// Triangle returns the three vertex indexes of triangle i.
func (sh *Shape) Triangle(i int) [3]int {
	if sh.Indexed() {
		return [3]int{int(sh.Indices[3*i]), int(sh.Indices[3*i+1]), int(sh.Indices[3*i+2])}
	}
	return [3]int{3 * i, 3*i + 1, 3*i + 2}
}

// Triangles returns the number of triangles drawn.
func (sh *Shape) Triangles() int {
	return sh.DrawCount() / 3
}

// Vertex returns the floats for attribute attr of vertex v.
func (sh *Shape) Vertex(v, attr int) []float32 {
	st := v*sh.Layout.Floats() + sh.Layout.Offset(attr)/FloatBytes
	return sh.Vertices[st : st+sh.Layout[attr].Size]
}

// Validate returns an error if the shape data is not consistent
// with its layout, or cannot be drawn as triangles.
func (sh *Shape) Validate() error {
	nf := sh.Layout.Floats()
	if nf == 0 {
		return fmt.Errorf("shape %q: empty vertex layout", sh.Name)
	}
	for _, a := range sh.Layout {
		if a.Size < 1 || a.Size > 4 {
			return fmt.Errorf("shape %q: attribute %q has invalid size %d", sh.Name, a.Name, a.Size)
		}
	}
	if len(sh.Vertices) == 0 {
		return fmt.Errorf("shape %q: no vertices", sh.Name)
	}
	if len(sh.Vertices)%nf != 0 {
		return fmt.Errorf("shape %q: %d floats is not a multiple of %d floats per vertex", sh.Name, len(sh.Vertices), nf)
	}
	if sh.DrawCount()%3 != 0 {
		return fmt.Errorf("shape %q: draw count %d is not a multiple of 3", sh.Name, sh.DrawCount())
	}
	nv := sh.VertexCount()
	for i, idx := range sh.Indices {
		if int(idx) >= nv {
			return fmt.Errorf("shape %q: index %d at %d is out of range for %d vertices", sh.Name, idx, i, nv)
		}
	}
	return nil
}

// Clone returns a deep copy of the shape.
func (sh *Shape) Clone() *Shape {
	cp := &Shape{}
	errors.Log(copier.CopyWithOption(cp, sh, copier.Option{DeepCopy: true}))
	return cp
}
