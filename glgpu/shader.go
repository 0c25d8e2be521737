// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package glgpu

import (
	"fmt"
	"strings"

	"github.com/go-gl/gl/v4.1-core/gl"
)

// ShaderTypes are the programmable pipeline stages.
type ShaderTypes int32

const (
	VertexShader ShaderTypes = iota
	FragmentShader
)

// String returns the name of the shader type.
func (st ShaderTypes) String() string {
	switch st {
	case VertexShader:
		return "vertex"
	case FragmentShader:
		return "fragment"
	}
	return fmt.Sprintf("ShaderTypes(%d)", int32(st))
}

// GLType returns the GL enum value for the shader type.
func (st ShaderTypes) GLType() uint32 {
	if st == FragmentShader {
		return gl.FRAGMENT_SHADER
	}
	return gl.VERTEX_SHADER
}

// Shader is a single compiled shader stage.
type Shader struct {
	init   bool
	handle uint32
	typ    ShaderTypes
	src    string
}

// NewShader returns a new shader of the given type with the given source.
// It is not compiled until [Shader.Compile] is called.
func NewShader(typ ShaderTypes, src string) *Shader {
	return &Shader{typ: typ, src: src}
}

// Type returns the shader stage type.
func (sh *Shader) Type() ShaderTypes {
	return sh.typ
}

// Source returns the source code without the null terminator.
func (sh *Shader) Source() string {
	return GoString(sh.src)
}

// Compile creates the GL shader object and compiles the source.
// On failure the returned error contains the info log, but the
// shader object still exists so that it can be attached to a
// program, which will then fail to link.
func (sh *Shader) Compile() error {
	if !sh.init {
		sh.handle = gl.CreateShader(sh.typ.GLType())
		sh.init = true
	}
	csources, free := gl.Strs(CString(sh.src))
	gl.ShaderSource(sh.handle, 1, csources, nil)
	free()
	gl.CompileShader(sh.handle)

	var status int32
	gl.GetShaderiv(sh.handle, gl.COMPILE_STATUS, &status)
	if status == gl.FALSE {
		var logLength int32
		gl.GetShaderiv(sh.handle, gl.INFO_LOG_LENGTH, &logLength)
		msg := strings.Repeat("\x00", int(logLength+1))
		gl.GetShaderInfoLog(sh.handle, logLength, nil, gl.Str(msg))
		return fmt.Errorf("glgpu: %s shader compilation failed: %s", sh.typ, strings.TrimSpace(GoString(msg)))
	}
	return nil
}

// Delete deletes the GL shader object. It is safe to call more than once.
func (sh *Shader) Delete() {
	if !sh.init {
		return
	}
	gl.DeleteShader(sh.handle)
	sh.handle = 0
	sh.init = false
}
