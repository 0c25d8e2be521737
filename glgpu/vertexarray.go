// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package glgpu

import (
	"cogentcore.org/glsample/shapes"
	"github.com/go-gl/gl/v4.1-core/gl"
)

// VertexArray is a vertex array object, which records the vertex
// attribute layout and the buffer bindings used to draw.
type VertexArray struct {
	init   bool
	handle uint32
}

// Activate binds the vertex array, creating it first if needed.
func (va *VertexArray) Activate() {
	if !va.init {
		gl.GenVertexArrays(1, &va.handle)
		va.init = true
	}
	gl.BindVertexArray(va.handle)
}

// Deactivate unbinds any vertex array.
func (va *VertexArray) Deactivate() {
	gl.BindVertexArray(0)
}

// Configure sets and enables the vertex attribute pointers for
// the given interleaved float layout, reading from the currently
// bound GL_ARRAY_BUFFER. The vertex array must be active.
func (va *VertexArray) Configure(layout shapes.Layout) {
	stride := int32(layout.Stride())
	for i, a := range layout {
		gl.VertexAttribPointerWithOffset(a.Location, int32(a.Size), gl.FLOAT, false, stride, uintptr(layout.Offset(i)))
		gl.EnableVertexAttribArray(a.Location)
	}
}

// Delete deletes the vertex array. It is safe to call more than once.
func (va *VertexArray) Delete() {
	if !va.init {
		return
	}
	gl.DeleteVertexArrays(1, &va.handle)
	va.handle = 0
	va.init = false
}
