// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package glgpu

import (
	"image/color"
	"testing"

	"cogentcore.org/glsample/colors"
	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/stretchr/testify/assert"
)

// These tests only cover the parts that do not need a GL context.

func TestShaderTypes(t *testing.T) {
	assert.Equal(t, "vertex", VertexShader.String())
	assert.Equal(t, "fragment", FragmentShader.String())
	assert.Equal(t, "ShaderTypes(7)", ShaderTypes(7).String())
	assert.Equal(t, uint32(gl.VERTEX_SHADER), VertexShader.GLType())
	assert.Equal(t, uint32(gl.FRAGMENT_SHADER), FragmentShader.GLType())
}

func TestStrings(t *testing.T) {
	assert.Equal(t, "abc\x00", CString("abc"))
	assert.Equal(t, "abc\x00", CString("abc\x00"))
	assert.Equal(t, "abc", GoString("abc\x00\x00"))
	sh := NewShader(VertexShader, CString("void main() {}"))
	assert.Equal(t, "void main() {}", sh.Source())
	assert.Equal(t, VertexShader, sh.Type())
}

func TestErrorName(t *testing.T) {
	assert.Equal(t, "GL_INVALID_OPERATION", ErrorName(gl.INVALID_OPERATION))
	assert.Equal(t, "GL_OUT_OF_MEMORY", ErrorName(gl.OUT_OF_MEMORY))
	assert.Equal(t, "GL error 0x1234", ErrorName(0x1234))
}

func TestColorFloats(t *testing.T) {
	r, g, b, a := ColorFloats(color.RGBA{255, 128, 0, 255})
	assert.Equal(t, float32(1), r)
	assert.InDelta(t, 0.502, g, 0.001)
	assert.Equal(t, float32(0), b)
	assert.Equal(t, float32(1), a)

	_, _, _, a = ColorFloats(color.Transparent)
	assert.Equal(t, float32(0), a)
}

func TestColorFloatsHexAlpha(t *testing.T) {
	c, err := colors.FromHex("#40000080")
	assert.NoError(t, err)
	r, g, b, a := ColorFloats(c)
	assert.Equal(t, float32(0x40)/255, r)
	assert.Equal(t, float32(0), g)
	assert.Equal(t, float32(0), b)
	assert.Equal(t, float32(0x80)/255, a)
}

func TestAddShaderOnce(t *testing.T) {
	pr := NewProgram("test")
	_, err := pr.AddShader(VertexShader, "v")
	assert.NoError(t, err)
	_, err = pr.AddShader(FragmentShader, "f")
	assert.NoError(t, err)
	_, err = pr.AddShader(VertexShader, "v2")
	assert.ErrorContains(t, err, "vertex shader already added")
	assert.Equal(t, "test", pr.Name())
}

func TestWithoutContext(t *testing.T) {
	// objects that were never created are no-ops to delete or use
	pr := NewProgram("idle")
	assert.Equal(t, int32(-1), pr.Uniform("offset"))
	assert.False(t, pr.HasUniform("offset"))
	pr.Use()
	pr.Delete()
	pr.Delete()

	var vb VertexBuffer
	vb.Set([]float32{1, 2, 3})
	assert.Equal(t, 3, vb.Len())
	assert.Equal(t, 12, vb.Bytes())
	vb.Delete()

	var ib IndexBuffer
	src := []uint32{0, 1, 2}
	ib.Set(src)
	src[0] = 9
	assert.Equal(t, 3, ib.Len())
	assert.Equal(t, 12, ib.Bytes())
	ib.Delete()

	var va VertexArray
	va.Delete()
	assert.False(t, va.init)
}
