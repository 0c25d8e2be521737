// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package raster

import (
	"image/color"

	"cogentcore.org/glsample/math32"
)

// Constant returns a fragment function that colors every pixel
// with the given color.
func Constant(c color.RGBA) Fragment {
	return func(attrs []float32) color.RGBA {
		return c
	}
}

// VertexColor returns a fragment function that colors each pixel
// with the interpolated RGB color attribute starting at the given
// float offset within the vertex, with full opacity.
func VertexColor(offset int) Fragment {
	return func(attrs []float32) color.RGBA {
		rgb := attrs[offset : offset+3]
		return color.RGBA{Channel(rgb[0]), Channel(rgb[1]), Channel(rgb[2]), 255}
	}
}

// Channel converts a 0-1 color component to 0-255,
// clamping values outside of the range.
func Channel(v float32) uint8 {
	return uint8(math32.Round(math32.Clamp(v, 0, 1) * 255))
}

// FloatColor returns the color with the given 0-1 components.
func FloatColor(r, g, b, a float32) color.RGBA {
	return color.RGBA{Channel(r), Channel(g), Channel(b), Channel(a)}
}
