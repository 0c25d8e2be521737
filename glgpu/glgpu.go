// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package glgpu is a thin layer over the OpenGL 4.1 core API,
// with one type per GL object (shader, program, buffer, vertex array)
// that owns its handle. All calls must be made on the thread that
// has the GL context current.
package glgpu

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/go-gl/gl/v4.1-core/gl"
)

// Init loads the OpenGL entry points for the current context,
// and returns the GL version string. A context must be current.
func Init() (string, error) {
	if err := gl.Init(); err != nil {
		return "", fmt.Errorf("glgpu.Init: failed to initialize the OpenGL context: %w", err)
	}
	version := gl.GoStr(gl.GetString(gl.VERSION))
	slog.Info("OpenGL version loaded", "version", version,
		"glsl", gl.GoStr(gl.GetString(gl.SHADING_LANGUAGE_VERSION)),
		"renderer", gl.GoStr(gl.GetString(gl.RENDERER)))
	return version, nil
}

// CheckError returns an error if the GL error flag is set,
// naming the given operation.
func CheckError(op string) error {
	code := gl.GetError()
	if code == gl.NO_ERROR {
		return nil
	}
	return fmt.Errorf("glgpu %s: %s", op, ErrorName(code))
}

// ErrorName returns the name of the given GL error code.
func ErrorName(code uint32) string {
	switch code {
	case gl.NO_ERROR:
		return "GL_NO_ERROR"
	case gl.INVALID_ENUM:
		return "GL_INVALID_ENUM"
	case gl.INVALID_VALUE:
		return "GL_INVALID_VALUE"
	case gl.INVALID_OPERATION:
		return "GL_INVALID_OPERATION"
	case gl.INVALID_FRAMEBUFFER_OPERATION:
		return "GL_INVALID_FRAMEBUFFER_OPERATION"
	case gl.OUT_OF_MEMORY:
		return "GL_OUT_OF_MEMORY"
	}
	return fmt.Sprintf("GL error 0x%04X", code)
}

// CString returns the string with a null terminator added,
// if it does not already have one, as required by [gl.Strs] and [gl.Str].
func CString(s string) string {
	if strings.HasSuffix(s, "\x00") {
		return s
	}
	return s + "\x00"
}

// GoString returns the string without its null terminator, if any.
func GoString(s string) string {
	return strings.TrimRight(s, "\x00")
}
