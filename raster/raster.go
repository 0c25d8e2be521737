// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package raster is a CPU renderer for the same vertex data the GPU
// draws. It rasterizes triangles with edge functions and interpolates
// vertex attributes barycentrically, so that samples can be rendered
// and checked without a window or GL context.
package raster

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"

	"cogentcore.org/glsample/shapes"
	"cogentcore.org/glsample/math32"
)

// Fragment returns the color of a pixel given the vertex attributes
// interpolated at its center. attrs has [shapes.Layout.Floats] values
// in layout order, and must not be retained.
type Fragment func(attrs []float32) color.RGBA

// Target is an image that triangles are drawn into.
type Target struct {

	// Image is the image drawn into, with the top row first.
	Image *image.RGBA

	// Wireframe draws only the edges of the triangles.
	Wireframe bool

	// attrs is the interpolated attribute buffer passed to fragments.
	attrs []float32
}

// NewTarget returns a new target with an image of the given size.
func NewTarget(size image.Point) *Target {
	return &Target{Image: image.NewRGBA(image.Rectangle{Max: size})}
}

// Size returns the size of the target image.
func (t *Target) Size() image.Point {
	return t.Image.Bounds().Size()
}

// Clear fills the whole target with the given color.
func (t *Target) Clear(c color.Color) {
	draw.Draw(t.Image, t.Image.Bounds(), image.NewUniform(c), image.Point{}, draw.Src)
}

// vertex is one transformed vertex: its pixel position and
// all of its attributes.
type vertex struct {
	pos   math32.Vector2
	attrs []float32
}

// DrawTriangles draws the triangles of the given shape, with the given
// offset added to each position, coloring each covered pixel with
// frag. Positions are read from the attribute at location 0 and are in
// normalized device coordinates, which span the whole target.
func (t *Target) DrawTriangles(sh *shapes.Shape, offset math32.Vector3, frag Fragment) error {
	if err := sh.Validate(); err != nil {
		return err
	}
	pi := -1
	for i, a := range sh.Layout {
		if a.Location == 0 {
			pi = i
			break
		}
	}
	if pi < 0 || sh.Layout[pi].Size < 2 {
		return fmt.Errorf("raster.DrawTriangles: shape %q has no position attribute at location 0", sh.Name)
	}
	nf := sh.Layout.Floats()
	if cap(t.attrs) < nf {
		t.attrs = make([]float32, nf)
	}
	t.attrs = t.attrs[:nf]

	verts := make([]vertex, sh.VertexCount())
	for v := range verts {
		verts[v] = t.transform(sh, v, pi, offset)
	}
	for i := range sh.Triangles() {
		tri := sh.Triangle(i)
		a, b, c := &verts[tri[0]], &verts[tri[1]], &verts[tri[2]]
		if t.Wireframe {
			t.line(a, b, frag)
			t.line(b, c, frag)
			t.line(c, a, frag)
			continue
		}
		t.fill(a, b, c, frag)
	}
	return nil
}

// transform returns vertex v of the shape with its position
// converted from normalized device coordinates to pixels.
func (t *Target) transform(sh *shapes.Shape, v, pi int, offset math32.Vector3) vertex {
	nf := sh.Layout.Floats()
	vt := vertex{attrs: sh.Vertices[v*nf : (v+1)*nf]}
	pos := math32.Vector3FromSlice(sh.Vertex(v, pi))
	ndc := pos.Add(offset).XY()
	sz := math32.FromPoint(t.Size())
	vt.pos.X = (ndc.X + 1) * 0.5 * sz.X
	vt.pos.Y = (1 - ndc.Y) * 0.5 * sz.Y
	return vt
}

// isTopLeft returns whether the edge a->b of a positive-area triangle
// is a top or left edge, in image coordinates with y down. Pixel
// centers exactly on an edge are only drawn for top and left edges,
// so that triangles sharing an edge never both draw a pixel.
func isTopLeft(a, b math32.Vector2) bool {
	d := b.Sub(a)
	return (d.Y == 0 && d.X > 0) || d.Y < 0
}

// inside returns whether a pixel with the given edge value
// is inside the edge.
func inside(w float32, topLeft bool) bool {
	return w > 0 || (w == 0 && topLeft)
}

// fill rasterizes a filled triangle.
func (t *Target) fill(a, b, c *vertex, frag Fragment) {
	tri := math32.Triangle2{A: a.pos, B: b.pos, C: c.pos}
	area := tri.Area2()
	if area == 0 {
		return
	}
	// the barycentric weights have the signs of the edge values
	// once the triangle has a positive area
	if area < 0 {
		// both windings are drawn, as there is no face culling
		b, c = c, b
		tri.B, tri.C = tri.C, tri.B
	}
	r := tri.Bounds().Intersect(t.Image.Bounds())
	tlA := isTopLeft(b.pos, c.pos)
	tlB := isTopLeft(c.pos, a.pos)
	tlC := isTopLeft(a.pos, b.pos)
	for y := r.Min.Y; y < r.Max.Y; y++ {
		for x := r.Min.X; x < r.Max.X; x++ {
			w := tri.Barycoords(math32.Vec2(float32(x)+0.5, float32(y)+0.5))
			if !inside(w.X, tlA) || !inside(w.Y, tlB) || !inside(w.Z, tlC) {
				continue
			}
			for i := range t.attrs {
				t.attrs[i] = w.X*a.attrs[i] + w.Y*b.attrs[i] + w.Z*c.attrs[i]
			}
			t.Image.SetRGBA(x, y, frag(t.attrs))
		}
	}
}

// line draws the edge from a to b with Bresenham's algorithm,
// interpolating the attributes linearly along it.
func (t *Target) line(a, b *vertex, frag Fragment) {
	x0, y0 := pixel(a.pos.X), pixel(a.pos.Y)
	x1, y1 := pixel(b.pos.X), pixel(b.pos.Y)
	dx := abs(x1 - x0)
	dy := -abs(y1 - y0)
	sx, sy := 1, 1
	if x0 > x1 {
		sx = -1
	}
	if y0 > y1 {
		sy = -1
	}
	steps := max(dx, -dy)
	bounds := t.Image.Bounds()
	e := dx + dy
	for i := 0; ; i++ {
		if (image.Point{x0, y0}).In(bounds) {
			f := float32(0)
			if steps > 0 {
				f = float32(i) / float32(steps)
			}
			for k := range t.attrs {
				t.attrs[k] = math32.Lerp(a.attrs[k], b.attrs[k], f)
			}
			t.Image.SetRGBA(x0, y0, frag(t.attrs))
		}
		if i >= steps {
			return
		}
		e2 := 2 * e
		if e2 >= dy {
			e += dy
			x0 += sx
		}
		if e2 <= dx {
			e += dx
			y0 += sy
		}
	}
}

// pixel returns the pixel that contains the given coordinate.
func pixel(v float32) int {
	return int(math32.Floor(v))
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
