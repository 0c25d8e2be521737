// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package shapes

// FloatBytes is the size in bytes of one float32 vertex component.
const FloatBytes = 4

// Attribute describes one float vertex attribute within an
// interleaved vertex layout. Location must match the
// layout (location = N) qualifier in the vertex shader.
type Attribute struct {

	// Name is the name of the input variable in the vertex shader.
	Name string

	// Location is the attribute location in the vertex shader.
	Location uint32

	// Size is the number of float components (1-4).
	Size int
}

// Layout is an interleaved vertex layout: each vertex has all of
// the attributes in order, packed with no padding.
type Layout []Attribute

// Floats returns the number of floats per vertex.
func (ly Layout) Floats() int {
	n := 0
	for _, a := range ly {
		n += a.Size
	}
	return n
}

// Stride returns the number of bytes per vertex.
func (ly Layout) Stride() int {
	return ly.Floats() * FloatBytes
}

// Offset returns the byte offset of attribute i within a vertex.
func (ly Layout) Offset(i int) int {
	n := 0
	for _, a := range ly[:i] {
		n += a.Size
	}
	return n * FloatBytes
}

// Index returns the index of the attribute with the given name, or -1.
func (ly Layout) Index(name string) int {
	for i, a := range ly {
		if a.Name == name {
			return i
		}
	}
	return -1
}
