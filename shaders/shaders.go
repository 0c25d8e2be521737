// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package shaders provides the GLSL vertex and fragment shader
// sources for the samples, either the embedded defaults or
// shader files loaded from a directory.
package shaders

import (
	"embed"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"cogentcore.org/glsample/base/errors"
	"github.com/mitchellh/go-homedir"
)

//go:embed glsl/*.vert glsl/*.frag
var glsl embed.FS

const (
	// VertexFile is the file name of the vertex shader in a shader directory.
	VertexFile = "shader.vert"

	// FragmentFile is the file name of the fragment shader in a shader directory.
	FragmentFile = "shader.frag"

	// OffsetUniform is the name of the vec3 position offset uniform
	// used by the colored shaders.
	OffsetUniform = "offset"
)

// Source is a pair of vertex and fragment shader sources
// that are linked together into one program.
type Source struct {

	// Name identifies where the source came from.
	Name string

	// Vertex is the vertex shader GLSL source.
	Vertex string

	// Fragment is the fragment shader GLSL source.
	Fragment string
}

// defaults maps sample names to their embedded vertex and fragment files.
var defaults = map[string][2]string{
	"triangle":  {"basic.vert", "orange.frag"},
	"rectangle": {"basic.vert", "orange.frag"},
	"square":    {"basic.vert", "orange.frag"},
	"colored":   {"colored.vert", "colored.frag"},
}

// Default returns the embedded shader sources for the given sample name.
func Default(name string) (Source, error) {
	files, ok := defaults[name]
	if !ok {
		return Source{}, fmt.Errorf("shaders.Default: no shaders for sample %q", name)
	}
	vs := errors.Must1(glsl.ReadFile("glsl/" + files[0]))
	fs := errors.Must1(glsl.ReadFile("glsl/" + files[1]))
	return Source{Name: name, Vertex: string(vs), Fragment: string(fs)}, nil
}

// Load reads the [VertexFile] and [FragmentFile] shader sources
// from the given directory. A leading ~ is expanded to the home directory.
func Load(dir string) (Source, error) {
	dir, err := homedir.Expand(dir)
	if err != nil {
		return Source{}, err
	}
	vs, err := readSource(filepath.Join(dir, VertexFile))
	if err != nil {
		return Source{}, err
	}
	fs, err := readSource(filepath.Join(dir, FragmentFile))
	if err != nil {
		return Source{}, err
	}
	return Source{Name: dir, Vertex: vs, Fragment: fs}, nil
}

func readSource(file string) (string, error) {
	b, err := os.ReadFile(file)
	if err != nil {
		return "", fmt.Errorf("shaders.Load: %w", err)
	}
	if strings.TrimSpace(string(b)) == "" {
		return "", fmt.Errorf("shaders.Load: %s is empty", file)
	}
	return string(b), nil
}

// HasUniform reports whether either stage of the source declares
// a uniform with the given name.
func (src *Source) HasUniform(name string) bool {
	return declaresUniform(src.Vertex, name) || declaresUniform(src.Fragment, name)
}

func declaresUniform(code, name string) bool {
	for _, ln := range strings.Split(code, "\n") {
		f := strings.Fields(strings.TrimSuffix(strings.TrimSpace(ln), ";"))
		if len(f) >= 3 && f[0] == "uniform" && f[len(f)-1] == name {
			return true
		}
	}
	return false
}
