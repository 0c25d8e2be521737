// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package config

import (
	"flag"
	"image"
	"image/color"
	"log/slog"
	"os"
	"path/filepath"
	"testing"
	"time"

	"cogentcore.org/glsample/math32"
	"github.com/mitchellh/go-homedir"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault(t *testing.T) {
	cfg := Default()
	assert.Equal(t, "triangle", cfg.Sample)
	assert.Equal(t, "LearnOpenGL", cfg.Title)
	assert.Equal(t, image.Pt(800, 600), cfg.Size())
	assert.Equal(t, 4, cfg.GLMajor)
	assert.Equal(t, 1, cfg.GLMinor)
	assert.Equal(t, []float32{0, 0, 0}, cfg.Offset)
	assert.True(t, cfg.VSync)
	assert.False(t, cfg.Animate)
	assert.Equal(t, 10*time.Second, cfg.FPSPeriod())
	c, err := cfg.Clear()
	assert.NoError(t, err)
	assert.Equal(t, color.NRGBA{0, 0, 0, 255}, c)
	assert.NoError(t, cfg.Validate())
}

func TestLoadFlags(t *testing.T) {
	cfg, err := Load("test", []string{"-sample", "colored", "-offset", "0.5,0,0", "-vsync=false", "-animate", "-frames", "3", "-clear", "#334d4d"})
	require.NoError(t, err)
	assert.Equal(t, "colored", cfg.Sample)
	assert.Equal(t, math32.Vec3(0.5, 0, 0), cfg.OffsetVector())
	assert.False(t, cfg.VSync)
	assert.True(t, cfg.Animate)
	assert.Equal(t, 3, cfg.Frames)
	c, err := cfg.Clear()
	assert.NoError(t, err)
	assert.Equal(t, color.NRGBA{0x33, 0x4d, 0x4d, 255}, c)
}

func TestLoadPositional(t *testing.T) {
	cfg, err := Load("test", []string{"-width", "320", "square"})
	require.NoError(t, err)
	assert.Equal(t, "square", cfg.Sample)
	assert.Equal(t, 320, cfg.Width)

	_, err = Load("test", []string{"square", "triangle"})
	assert.ErrorContains(t, err, "at most one sample")
}

func TestLoadInvalid(t *testing.T) {
	_, err := Load("test", []string{"-sample", "cube"})
	assert.ErrorContains(t, err, `unknown sample "cube"`)
	_, err = Load("test", []string{"-gl-major", "2"})
	assert.ErrorContains(t, err, "at least 3.3")
	_, err = Load("test", []string{"-width", "0"})
	assert.ErrorContains(t, err, "invalid window size")
	_, err = Load("test", []string{"-clear", "blue"})
	assert.ErrorContains(t, err, "colors.FromHex")
	_, err = Load("test", []string{"-offset", "1 2 3 4"})
	assert.ErrorContains(t, err, "at most 3")
	_, err = Load("test", []string{"-watch"})
	assert.ErrorContains(t, err, "shader directory")
	_, err = Load("test", []string{"-width", "wide"})
	assert.Error(t, err)
	_, err = Load("test", []string{"-h"})
	assert.ErrorIs(t, err, flag.ErrHelp)
}

func TestLoadTOML(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "glsample.toml")
	require.NoError(t, os.WriteFile(file, []byte(`
Sample = "square"
Width = 640
Wireframe = true
Offset = [0.25, 0.5]
FPSInterval = 2.5
`), 0666))
	cfg, err := Load("test", []string{"-config", file, "-width", "1024"})
	require.NoError(t, err)
	assert.Equal(t, "square", cfg.Sample)
	// flags override the config file
	assert.Equal(t, 1024, cfg.Width)
	assert.Equal(t, 600, cfg.Height)
	assert.True(t, cfg.Wireframe)
	assert.Equal(t, math32.Vec3(0.25, 0.5, 0), cfg.OffsetVector())
	assert.Equal(t, 2500*time.Millisecond, cfg.FPSPeriod())
}

func TestLoadYAML(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "glsample.yaml")
	require.NoError(t, os.WriteFile(file, []byte(`
sample: colored
animate: true
clearcolor: "#202020"
`), 0666))
	cfg, err := Load("test", []string{"-config", file})
	require.NoError(t, err)
	assert.Equal(t, "colored", cfg.Sample)
	assert.True(t, cfg.Animate)
	assert.Equal(t, "#202020", cfg.ClearColor)

	_, err = Load("test", []string{"-config", filepath.Join(dir, "glsample.json")})
	assert.ErrorContains(t, err, "unsupported config file type")
	_, err = Load("test", []string{"-config", filepath.Join(dir, "missing.yaml")})
	assert.Error(t, err)
}

func TestSaveOpen(t *testing.T) {
	dir := t.TempDir()
	cfg := Default()
	cfg.Sample = "rectangle"
	cfg.Offset = []float32{0.1, 0.2, 0.3}
	for _, name := range []string{"cfg.toml", "cfg.yml"} {
		file := filepath.Join(dir, name)
		require.NoError(t, Save(cfg, file))
		got := &Config{}
		require.NoError(t, Open(got, file))
		assert.Equal(t, cfg, got, name)
	}
	assert.Error(t, Save(cfg, filepath.Join(dir, "cfg.ini")))
}

func TestSaveConfigFlag(t *testing.T) {
	file := filepath.Join(t.TempDir(), "saved.toml")
	cfg, err := Load("test", []string{"-save-config", file, "-width", "320", "-clear", "#40000080", "square"})
	require.NoError(t, err)
	assert.Equal(t, file, cfg.SaveConfig)
	require.NoError(t, Save(cfg, cfg.SaveConfig))

	got, err := Load("test", []string{"-config", file})
	require.NoError(t, err)
	assert.Equal(t, "square", got.Sample)
	assert.Equal(t, 320, got.Width)
	assert.Equal(t, "#40000080", got.ClearColor)
	assert.Empty(t, got.SaveConfig)

	_, err = Load("test", []string{"-save-config", "saved.ini"})
	assert.ErrorContains(t, err, "cannot save config")
}

func TestExpandPaths(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	homedir.DisableCache = true
	t.Cleanup(func() { homedir.DisableCache = false })

	cfg, err := Load("test", []string{"-shaders", "~/shaders", "-screenshot", "~/shot.png"})
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(home, "shaders"), cfg.ShaderDir)
	assert.Equal(t, filepath.Join(home, "shot.png"), cfg.Screenshot)
}

func TestLogLevel(t *testing.T) {
	cfg := Default()
	assert.Equal(t, slog.LevelInfo, cfg.LogLevel())
	cfg.Quiet = true
	assert.Equal(t, slog.LevelError, cfg.LogLevel())
	cfg.VeryVerbose = true
	assert.Equal(t, slog.LevelDebug, cfg.LogLevel())
}

func TestFlagUsage(t *testing.T) {
	cfg := Default()
	fs := flag.NewFlagSet("test", flag.ContinueOnError)
	AddFlags(fs, cfg)
	f := fs.Lookup("offset")
	require.NotNil(t, f)
	assert.Equal(t, "0 0 0", f.DefValue)
	assert.Contains(t, f.Usage, "vertex offset")
	assert.Nil(t, fs.Lookup("Sample"))
	assert.Equal(t, "true", fs.Lookup("vsync").DefValue)
}
