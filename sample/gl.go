// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package sample

import (
	"fmt"
	"image"
	"log/slog"

	"cogentcore.org/glsample/base/errors"
	"cogentcore.org/glsample/colors"
	"cogentcore.org/glsample/glgpu"
	"cogentcore.org/glsample/shaders"
	"cogentcore.org/glsample/shapes"
)

// GLRenderer is the OpenGL [Renderer]: one program, one vertex
// array with its vertex buffer, and an index buffer for indexed shapes.
type GLRenderer struct {

	// Strict makes Setup fail on shader compile and link errors,
	// instead of drawing with the failed program.
	Strict bool

	program *glgpu.Program
	vao     glgpu.VertexArray
	vbo     glgpu.VertexBuffer
	ebo     glgpu.IndexBuffer
	shape   *shapes.Shape
	size    image.Point
}

// newProgram returns the linked program for the given source.
// The program is returned even when linking fails.
func newProgram(src shaders.Source) (*glgpu.Program, error) {
	pr := glgpu.NewProgram(src.Name)
	errors.Log1(pr.AddShader(glgpu.VertexShader, src.Vertex))
	errors.Log1(pr.AddShader(glgpu.FragmentShader, src.Fragment))
	return pr, pr.Link()
}

// Setup builds the program and uploads the shape to the vertex array
// and buffers. A program that fails to build is only an error when
// Strict is set.
func (r *GLRenderer) Setup(s *Sample) error {
	r.shape = s.Shape
	pr, err := newProgram(s.Source)
	r.program = pr
	if err != nil {
		if r.Strict {
			return fmt.Errorf("sample %s: %w", s.Name, err)
		}
		slog.Error("shader program failed to build; drawing with it anyway", "sample", s.Name, "err", err)
	}

	r.vao.Activate()
	r.vbo.Set(s.Shape.Vertices)
	r.vbo.Activate()
	r.vbo.Transfer()
	if s.Shape.Indexed() {
		// the element buffer binding is recorded in the active vertex array
		r.ebo.Set(s.Shape.Indices)
		r.ebo.Activate()
		r.ebo.Transfer()
	}
	r.vao.Configure(s.Shape.Layout)
	r.vao.Deactivate()
	r.vbo.Deactivate()

	glgpu.Draw.ClearColor(s.Clear)
	glgpu.Draw.Wireframe(s.Wireframe)
	slog.Debug("uploaded shape", "sample", s.Name, "vertices", s.Shape.VertexCount(), "indexes", len(s.Shape.Indices), "clear", colors.AsHex(s.Clear))
	return errors.Log(glgpu.CheckError("setup"))
}

// Reload replaces the program with one built from the given source,
// keeping the current program if the new one fails to build.
func (r *GLRenderer) Reload(src shaders.Source) error {
	pr, err := newProgram(src)
	if err != nil {
		pr.Delete()
		return err
	}
	r.program.Delete()
	r.program = pr
	return nil
}

// Frame clears the window and draws the shape with one draw call.
func (r *GLRenderer) Frame(fs FrameState) {
	if fs.Resized {
		r.size = fs.Size
		glgpu.Draw.Viewport(fs.Size)
	}
	glgpu.Draw.Clear()
	r.program.Use()
	if r.program.HasUniform(shaders.OffsetUniform) {
		r.program.SetVec3(shaders.OffsetUniform, fs.Offset.X, fs.Offset.Y, fs.Offset.Z)
	}
	r.vao.Activate()
	if r.shape.Indexed() {
		glgpu.Draw.TrianglesIndexed(r.shape.DrawCount())
	} else {
		glgpu.Draw.Triangles(0, r.shape.DrawCount())
	}
}

// Snapshot reads back the current framebuffer.
func (r *GLRenderer) Snapshot() *image.RGBA {
	return glgpu.Draw.ReadPixels(r.size)
}

// Release deletes all of the GL objects.
func (r *GLRenderer) Release() {
	r.vao.Delete()
	r.vbo.Delete()
	r.ebo.Delete()
	if r.program != nil {
		r.program.Delete()
	}
}
