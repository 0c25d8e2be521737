// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package glgpu

import (
	"image"
	"image/color"

	"cogentcore.org/glsample/base/iox/imagex"
	"github.com/go-gl/gl/v4.1-core/gl"
)

// Draw provides the drawing functions, which all operate on the
// current context with the current program and vertex array.
var Draw Drawing

// Drawing provides commonly-used GPU drawing functions.
type Drawing struct{}

// ClearColor sets the color used by Clear.
func (dr *Drawing) ClearColor(c color.Color) {
	r, g, b, a := ColorFloats(c)
	gl.ClearColor(r, g, b, a)
}

// Clear clears the color buffer of the current render target.
func (dr *Drawing) Clear() {
	gl.Clear(gl.COLOR_BUFFER_BIT)
}

// Viewport sets the viewport to the given framebuffer size.
func (dr *Drawing) Viewport(size image.Point) {
	gl.Viewport(0, 0, int32(size.X), int32(size.Y))
}

// Wireframe turns on or off drawing of triangle outlines only.
func (dr *Drawing) Wireframe(on bool) {
	if on {
		gl.PolygonMode(gl.FRONT_AND_BACK, gl.LINE)
	} else {
		gl.PolygonMode(gl.FRONT_AND_BACK, gl.FILL)
	}
}

// Triangles draws count vertices starting at start as a list of
// triangles (non-indexed).
func (dr *Drawing) Triangles(start, count int) {
	gl.DrawArrays(gl.TRIANGLES, int32(start), int32(count))
}

// TrianglesIndexed draws count indexes from the bound
// element array buffer as a list of triangles.
func (dr *Drawing) TrianglesIndexed(count int) {
	gl.DrawElements(gl.TRIANGLES, int32(count), gl.UNSIGNED_INT, nil)
}

// ReadPixels reads the given size of the current framebuffer,
// returning an image with the top row first.
func (dr *Drawing) ReadPixels(size image.Point) *image.RGBA {
	img := image.NewRGBA(image.Rectangle{Max: size})
	if size.X <= 0 || size.Y <= 0 {
		return img
	}
	gl.PixelStorei(gl.PACK_ALIGNMENT, 1)
	gl.ReadPixels(0, 0, int32(size.X), int32(size.Y), gl.RGBA, gl.UNSIGNED_BYTE, gl.Ptr(img.Pix))
	imagex.FlipVertical(img)
	return img
}

// ColorFloats returns the non-premultiplied components of
// the given color in the 0-1 range.
func ColorFloats(c color.Color) (r, g, b, a float32) {
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	return float32(n.R) / 255, float32(n.G) / 255, float32(n.B) / 255, float32(n.A) / 255
}
