// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package sample

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"log/slog"
	"strings"

	"cogentcore.org/glsample/colors"
	"cogentcore.org/glsample/math32"
	"cogentcore.org/glsample/raster"
	"cogentcore.org/glsample/shaders"
	"cogentcore.org/glsample/shapes"
)

// Orange is the color of the embedded orange fragment shader.
var Orange = raster.FloatColor(1, 0.5, 0.2, 1)

// SoftRenderer is a [Renderer] that draws on the CPU with the
// raster package. It does not run GLSL: it colors pixels like the
// embedded programs, with the interpolated vertex color when the
// vertex shader reads an aColor attribute, and orange otherwise.
type SoftRenderer struct {

	// Size is the size of the frame.
	Size image.Point

	target    *raster.Target
	shape     *shapes.Shape
	clear     color.NRGBA
	wireframe bool
	frag      raster.Fragment
	useOffset bool
}

// fragment returns the fragment function and whether the offset
// uniform is used for the given shader source and shape.
func fragment(src shaders.Source, sh *shapes.Shape) (raster.Fragment, bool) {
	off := src.HasUniform(shaders.OffsetUniform)
	if ci := sh.Layout.Index("aColor"); ci >= 0 && strings.Contains(src.Vertex, "aColor") {
		return raster.VertexColor(sh.Layout.Offset(ci) / shapes.FloatBytes), off
	}
	return raster.Constant(Orange), off
}

// Setup creates the target image and picks the fragment function.
func (r *SoftRenderer) Setup(s *Sample) error {
	if err := s.Shape.Validate(); err != nil {
		return err
	}
	r.shape = s.Shape
	r.clear = s.Clear
	r.wireframe = s.Wireframe
	r.target = raster.NewTarget(r.Size)
	r.target.Wireframe = s.Wireframe
	slog.Debug("created target", "sample", s.Name, "size", r.Size, "clear", colors.AsHex(s.Clear))
	return r.Reload(s.Source)
}

// Reload picks the fragment function for the given source.
func (r *SoftRenderer) Reload(src shaders.Source) error {
	if strings.TrimSpace(src.Vertex) == "" || strings.TrimSpace(src.Fragment) == "" {
		return fmt.Errorf("sample: shader source %s is missing a stage", src.Name)
	}
	r.frag, r.useOffset = fragment(src, r.shape)
	return nil
}

// Frame clears the target and rasterizes the shape.
func (r *SoftRenderer) Frame(fs FrameState) {
	if fs.Resized && fs.Size != r.target.Size() && fs.Size.X > 0 && fs.Size.Y > 0 {
		r.Size = fs.Size
		r.target = raster.NewTarget(fs.Size)
		r.target.Wireframe = r.wireframe
	}
	r.target.Clear(r.clear)
	var off math32.Vector3
	if r.useOffset {
		off = fs.Offset
	}
	if err := r.target.DrawTriangles(r.shape, off, r.frag); err != nil {
		slog.Error("drawing frame", "frame", fs.Index, "err", err)
	}
}

// Snapshot returns a copy of the target image.
func (r *SoftRenderer) Snapshot() *image.RGBA {
	if r.target == nil {
		return image.NewRGBA(image.Rectangle{})
	}
	img := image.NewRGBA(r.target.Image.Bounds())
	draw.Draw(img, img.Bounds(), r.target.Image, image.Point{}, draw.Src)
	return img
}

// Release drops the target image.
func (r *SoftRenderer) Release() {
	r.target = nil
}
