// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package shapes

import (
	"fmt"
	"slices"
	"strings"
)

// PositionLayout is the layout for position-only vertices.
var PositionLayout = Layout{
	{Name: "aPos", Location: 0, Size: 3},
}

// ColorLayout is the layout for vertices with a position and a color.
var ColorLayout = Layout{
	{Name: "aPos", Location: 0, Size: 3},
	{Name: "aColor", Location: 1, Size: 3},
}

// library has the built-in shapes, by name.
var library = map[string]*Shape{
	"triangle": {
		Name:   "triangle",
		Layout: PositionLayout,
		Vertices: []float32{
			-0.5, -0.5, 0.0,
			0.5, -0.5, 0.0,
			0.0, 0.5, 0.0,
		},
	},
	// two triangles sharing an edge, with the shared vertices repeated
	"rectangle": {
		Name:   "rectangle",
		Layout: PositionLayout,
		Vertices: []float32{
			0.5, 0.5, 0.0, // top right
			0.5, -0.5, 0.0, // bottom right
			-0.5, 0.5, 0.0, // top left
			0.5, -0.5, 0.0, // bottom right
			-0.5, -0.5, 0.0, // bottom left
			-0.5, 0.5, 0.0, // top left
		},
	},
	"square": {
		Name:   "square",
		Layout: PositionLayout,
		Vertices: []float32{
			0.5, 0.5, 0.0, // top right
			0.5, -0.5, 0.0, // bottom right
			-0.5, -0.5, 0.0, // bottom left
			-0.5, 0.5, 0.0, // top left
		},
		Indices: []uint32{
			0, 1, 3,
			1, 2, 3,
		},
	},
	"colored": {
		Name:   "colored",
		Layout: ColorLayout,
		Vertices: []float32{
			// positions     // colors
			0.5, -0.5, 0.0, 1.0, 0.0, 0.0, // bottom right
			-0.5, -0.5, 0.0, 0.0, 1.0, 0.0, // bottom left
			0.0, 0.5, 0.0, 0.0, 0.0, 1.0, // top
		},
	},
}

// Names returns the names of the built-in shapes, sorted.
func Names() []string {
	nms := make([]string, 0, len(library))
	for nm := range library {
		nms = append(nms, nm)
	}
	slices.Sort(nms)
	return nms
}

// Lookup returns a copy of the built-in shape with the given name.
func Lookup(name string) (*Shape, error) {
	sh, ok := library[name]
	if !ok {
		return nil, fmt.Errorf("shapes.Lookup: no shape named %q (have: %s)", name, strings.Join(Names(), ", "))
	}
	return sh.Clone(), nil
}
