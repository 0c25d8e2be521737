// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package math32

import (
	"image"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMath(t *testing.T) {
	assert.Equal(t, float32(2), Floor(2.7))
	assert.Equal(t, float32(-3), Floor(-2.2))
	assert.Equal(t, float32(3), Ceil(2.2))
	assert.Equal(t, float32(3), Round(2.5))
	assert.InDelta(t, 1, Sin(Pi/2), 1e-6)
	assert.Equal(t, float32(5), Lerp(0, 10, 0.5))
	assert.Equal(t, 3, Clamp(7, 0, 3))
	assert.Equal(t, float32(-1), Clamp(float32(-2), -1, 1))
}

func TestVector3(t *testing.T) {
	v := Vec3(1, 2, 3)
	assert.Equal(t, Vector3{2, 4, 6}, v.Add(v))
	assert.Equal(t, Vector3{}, v.Sub(v))
	assert.Equal(t, Vector2{1, 2}, v.XY())
	assert.Equal(t, "(1, 2, 3)", v.String())

	assert.Equal(t, Vector3{0.5, 0, 0}, Vector3FromSlice([]float32{0.5}))
	assert.Equal(t, Vector3{1, 2, 3}, Vector3FromSlice([]float32{1, 2, 3, 4}))
}

func TestVector2(t *testing.T) {
	v := Vec2(1.5, -2.5)
	assert.Equal(t, image.Pt(1, -3), v.ToPointFloor())
	assert.Equal(t, image.Pt(2, -2), v.ToPointCeil())
	assert.Equal(t, Vector2{3, 4}, FromPoint(image.Pt(3, 4)))
	assert.Equal(t, float32(1), Vec2(1, 0).Cross(Vec2(0, 1)))
	assert.Equal(t, Vector2{1, 2}, Vec2(1, 5).Min(Vec2(3, 2)))
	assert.Equal(t, Vector2{3, 5}, Vec2(1, 5).Max(Vec2(3, 2)))
}

func TestTriangle2(t *testing.T) {
	tri := Triangle2{Vec2(0, 0), Vec2(4, 0), Vec2(0, 4)}
	assert.Equal(t, float32(16), tri.Area2())

	b := tri.Barycoords(Vec2(0, 0))
	assert.Equal(t, Vector3{1, 0, 0}, b)
	b = tri.Barycoords(Vec2(1, 1))
	assert.InDelta(t, 1, b.X+b.Y+b.Z, 1e-6)
	assert.Equal(t, Vector3{0.5, 0.25, 0.25}, b)

	// outside of the edge b->c
	assert.Less(t, Edge(tri.B, tri.C, Vec2(4, 4)), float32(0))
	assert.Equal(t, float32(0), Edge(tri.B, tri.C, Vec2(2, 2)))

	assert.Equal(t, image.Rect(0, 0, 4, 4), Triangle2{Vec2(0.5, 0.2), Vec2(3.5, 0), Vec2(0, 3.1)}.Bounds())
}
