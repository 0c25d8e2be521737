// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package sample puts the shapes, shaders and GPU objects together
// into the runnable samples: it sets up a [Renderer] for a [Sample]
// and drives it from the draw loop until the window is closed.
package sample

import (
	"image"
	"image/color"
	"time"

	"cogentcore.org/glsample/config"
	"cogentcore.org/glsample/math32"
	"cogentcore.org/glsample/shaders"
	"cogentcore.org/glsample/shapes"
)

// Sample is everything needed to draw one sample.
type Sample struct {

	// Name is the name of the sample.
	Name string

	// Shape is the vertex and index data drawn every frame.
	Shape *shapes.Shape

	// Source is the vertex and fragment shader source.
	Source shaders.Source

	// Offset is the base value of the offset uniform, for shaders
	// that have one.
	Offset math32.Vector3

	// Clear is the color the frame is cleared to.
	Clear color.NRGBA

	// Wireframe draws only the edges of the triangles.
	Wireframe bool
}

// New returns the sample configured by the given config. The shaders
// are loaded from [config.Config.ShaderDir] if it is set, and are
// otherwise the embedded ones for the sample.
func New(cfg *config.Config) (*Sample, error) {
	sh, err := shapes.Lookup(cfg.Sample)
	if err != nil {
		return nil, err
	}
	var src shaders.Source
	if cfg.ShaderDir != "" {
		src, err = shaders.Load(cfg.ShaderDir)
	} else {
		src, err = shaders.Default(cfg.Sample)
	}
	if err != nil {
		return nil, err
	}
	clr, err := cfg.Clear()
	if err != nil {
		return nil, err
	}
	s := &Sample{
		Name:      cfg.Sample,
		Shape:     sh,
		Source:    src,
		Offset:    cfg.OffsetVector(),
		Clear:     clr,
		Wireframe: cfg.Wireframe,
	}
	return s, nil
}

// FrameState is the per-frame input to [Renderer.Frame].
type FrameState struct {

	// Index is the number of frames drawn before this one.
	Index int

	// Time is the time since the draw loop started.
	Time time.Duration

	// Offset is the value of the offset uniform for this frame.
	Offset math32.Vector3

	// Size is the framebuffer size in pixels.
	Size image.Point

	// Resized is whether Size changed since the last frame,
	// which is always true for the first frame.
	Resized bool
}

// Renderer draws a sample. All of its methods must be called from
// the thread that owns the rendering context.
type Renderer interface {

	// Setup creates the program and uploads the vertex data
	// for the given sample.
	Setup(s *Sample) error

	// Reload replaces the shader program with one built from the
	// given source. On error the current program is kept.
	Reload(src shaders.Source) error

	// Frame draws one frame: clear and one draw call.
	Frame(fs FrameState)

	// Snapshot returns the current contents of the frame,
	// with the top row first.
	Snapshot() *image.RGBA

	// Release destroys everything created by Setup.
	// It is safe to call more than once.
	Release()
}
