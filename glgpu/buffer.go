// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package glgpu

import (
	"github.com/go-gl/gl/v4.1-core/gl"
)

// VertexBuffer manages a buffer of float32 vertex data
// (GL_ARRAY_BUFFER).
type VertexBuffer struct {
	init   bool
	handle uint32
	data   []float32
}

// Set sets the vertex data by copying the given data.
func (vb *VertexBuffer) Set(data []float32) {
	vb.data = append(vb.data[:0], data...)
}

// Len returns the number of floats in the buffer.
func (vb *VertexBuffer) Len() int {
	return len(vb.data)
}

// Bytes returns the size of the data in bytes.
func (vb *VertexBuffer) Bytes() int {
	return 4 * len(vb.data)
}

// Activate binds the buffer as the current GL_ARRAY_BUFFER,
// creating it first if needed.
func (vb *VertexBuffer) Activate() {
	if !vb.init {
		gl.GenBuffers(1, &vb.handle)
		vb.init = true
	}
	gl.BindBuffer(gl.ARRAY_BUFFER, vb.handle)
}

// Deactivate unbinds any GL_ARRAY_BUFFER. The attribute pointers
// configured in a vertex array keep referring to the buffer.
func (vb *VertexBuffer) Deactivate() {
	gl.BindBuffer(gl.ARRAY_BUFFER, 0)
}

// Transfer copies the data to the GPU as static draw data.
// Activate must have been called first.
func (vb *VertexBuffer) Transfer() {
	if len(vb.data) == 0 {
		return
	}
	gl.BufferData(gl.ARRAY_BUFFER, vb.Bytes(), gl.Ptr(vb.data), gl.STATIC_DRAW)
}

// Delete deletes the GL buffer. It is safe to call more than once.
func (vb *VertexBuffer) Delete() {
	if !vb.init {
		return
	}
	gl.DeleteBuffers(1, &vb.handle)
	vb.handle = 0
	vb.init = false
}

// IndexBuffer manages a buffer of uint32 indexes for indexed drawing
// (GL_ELEMENT_ARRAY_BUFFER for glDrawElements calls).
type IndexBuffer struct {
	init   bool
	handle uint32
	idxs   []uint32
}

// Set sets the indexes by copying the given data.
func (ib *IndexBuffer) Set(idxs []uint32) {
	ib.idxs = append(ib.idxs[:0], idxs...)
}

// Len returns the number of indexes in the buffer.
func (ib *IndexBuffer) Len() int {
	return len(ib.idxs)
}

// Bytes returns the size of the indexes in bytes.
func (ib *IndexBuffer) Bytes() int {
	return 4 * len(ib.idxs)
}

// Activate binds the buffer as the current GL_ELEMENT_ARRAY_BUFFER,
// creating it first if needed. The binding is recorded in the
// currently bound vertex array.
func (ib *IndexBuffer) Activate() {
	if !ib.init {
		gl.GenBuffers(1, &ib.handle)
		ib.init = true
	}
	gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, ib.handle)
}

// Transfer copies the indexes to the GPU as static draw data.
// Activate must have been called first.
func (ib *IndexBuffer) Transfer() {
	if len(ib.idxs) == 0 {
		return
	}
	gl.BufferData(gl.ELEMENT_ARRAY_BUFFER, ib.Bytes(), gl.Ptr(ib.idxs), gl.STATIC_DRAW)
}

// Delete deletes the GL buffer. It is safe to call more than once.
func (ib *IndexBuffer) Delete() {
	if !ib.init {
		return
	}
	gl.DeleteBuffers(1, &ib.handle)
	ib.handle = 0
	ib.init = false
}
