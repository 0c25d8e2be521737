// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package math32

import "image"

// Triangle2 is a 2D triangle made of three vertices.
type Triangle2 struct {
	A Vector2
	B Vector2
	C Vector2
}

// Edge returns the edge function of the directed edge a->b at point p:
// twice the signed area of the triangle a, b, p. It is zero on the
// edge's line, and has the same sign for all points on one side of it.
func Edge(a, b, p Vector2) float32 {
	return b.Sub(a).Cross(p.Sub(a))
}

// Area2 returns twice the signed area of the triangle, positive
// when the vertices wind clockwise in y-down coordinates.
func (t Triangle2) Area2() float32 {
	return Edge(t.A, t.B, t.C)
}

// Barycoords returns the barycentric coordinates of the point,
// in the order of the A, B, C weights, which sum to 1.
// The triangle must not be degenerate.
func (t Triangle2) Barycoords(p Vector2) Vector3 {
	area := t.Area2()
	return Vector3{Edge(t.B, t.C, p) / area, Edge(t.C, t.A, p) / area, Edge(t.A, t.B, p) / area}
}

// Bounds returns the pixel rectangle that covers the triangle,
// using floor for the minimum and ceil for the maximum.
func (t Triangle2) Bounds() image.Rectangle {
	mn := t.A.Min(t.B).Min(t.C)
	mx := t.A.Max(t.B).Max(t.C)
	return image.Rectangle{Min: mn.ToPointFloor(), Max: mx.ToPointCeil()}
}
