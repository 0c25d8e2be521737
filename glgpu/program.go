// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package glgpu

import (
	"fmt"
	"strings"

	"cogentcore.org/glsample/base/errors"
	"github.com/go-gl/gl/v4.1-core/gl"
)

// Program is a set of shader stages linked together into one
// GL program object.
type Program struct {
	init    bool
	handle  uint32
	name    string
	shaders []*Shader
	locs    map[string]int32
}

// NewProgram returns a new program with the given name.
func NewProgram(name string) *Program {
	return &Program{name: name}
}

// Name returns the name of the program.
func (pr *Program) Name() string {
	return pr.name
}

// AddShader adds a shader stage of the given type and source.
// Each type can only be added once.
func (pr *Program) AddShader(typ ShaderTypes, src string) (*Shader, error) {
	for _, sh := range pr.shaders {
		if sh.typ == typ {
			return nil, fmt.Errorf("glgpu Program %s AddShader: %s shader already added", pr.name, typ)
		}
	}
	sh := NewShader(typ, src)
	pr.shaders = append(pr.shaders, sh)
	return sh, nil
}

// Link compiles all the shaders, links the program and then deletes
// the shader objects, which are no longer needed once linked.
// A compile or link failure is returned as an error (with the
// GL info logs), but the program object is kept, so that the caller
// can decide to carry on with a program that may draw nothing.
func (pr *Program) Link() error {
	pr.Delete()
	var errs []error
	handle := gl.CreateProgram()
	for _, sh := range pr.shaders {
		if err := sh.Compile(); err != nil {
			errs = append(errs, err)
		}
		gl.AttachShader(handle, sh.handle)
	}
	gl.LinkProgram(handle)

	for _, sh := range pr.shaders {
		gl.DetachShader(handle, sh.handle)
		sh.Delete()
	}

	var status int32
	gl.GetProgramiv(handle, gl.LINK_STATUS, &status)
	if status == gl.FALSE {
		var lgLength int32
		gl.GetProgramiv(handle, gl.INFO_LOG_LENGTH, &lgLength)
		lg := strings.Repeat("\x00", int(lgLength+1))
		gl.GetProgramInfoLog(handle, lgLength, nil, gl.Str(lg))
		errs = append(errs, fmt.Errorf("glgpu Program %s: linking failed: %s", pr.name, strings.TrimSpace(GoString(lg))))
	}

	pr.handle = handle
	pr.init = true
	pr.locs = make(map[string]int32)
	return errors.Join(errs...)
}

// Use makes this the active program for subsequent draw calls.
func (pr *Program) Use() {
	if !pr.init {
		return
	}
	gl.UseProgram(pr.handle)
}

// Uniform returns the location of the uniform with the given name,
// or -1 if the program has no such active uniform.
// Locations are cached after the first lookup.
func (pr *Program) Uniform(name string) int32 {
	if !pr.init {
		return -1
	}
	if loc, ok := pr.locs[name]; ok {
		return loc
	}
	loc := gl.GetUniformLocation(pr.handle, gl.Str(CString(name)))
	pr.locs[name] = loc
	return loc
}

// HasUniform reports whether the program has an active uniform of the given name.
func (pr *Program) HasUniform(name string) bool {
	return pr.Uniform(name) >= 0
}

// SetVec3 sets a vec3 uniform on the program, which must be in use.
func (pr *Program) SetVec3(name string, x, y, z float32) {
	if loc := pr.Uniform(name); loc >= 0 {
		gl.Uniform3f(loc, x, y, z)
	}
}

// Delete deletes the GL program object. It is safe to call more than once.
func (pr *Program) Delete() {
	if !pr.init {
		return
	}
	gl.DeleteProgram(pr.handle)
	pr.handle = 0
	pr.init = false
	pr.locs = nil
}
