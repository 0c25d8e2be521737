// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package config contains the configuration struct for glsample,
// which is set from `default:` struct tags, then an optional
// toml or yaml config file, and then command line flags.
package config

import (
	"fmt"
	"image"
	"image/color"
	"log/slog"
	"slices"
	"time"

	"cogentcore.org/glsample/base/errors"
	"cogentcore.org/glsample/base/logx"
	"cogentcore.org/glsample/base/reflectx"
	"cogentcore.org/glsample/colors"
	"cogentcore.org/glsample/math32"
	"cogentcore.org/glsample/shapes"
	"github.com/mitchellh/go-homedir"
)

// Config is the main config struct that contains all of the
// configuration options for glsample.
type Config struct {

	// Sample is the name of the sample to draw: triangle, rectangle,
	// square or colored.
	Sample string `default:"triangle" flag:"sample" desc:"the name of the sample to draw (triangle, rectangle, square, colored)"`

	// Title is the window title.
	Title string `default:"LearnOpenGL" flag:"title" desc:"the window title"`

	// Width is the window width in screen coordinates.
	Width int `default:"800" flag:"width" desc:"the window width"`

	// Height is the window height in screen coordinates.
	Height int `default:"600" flag:"height" desc:"the window height"`

	// GLMajor is the requested major OpenGL version.
	GLMajor int `default:"4" flag:"gl-major" desc:"the requested major OpenGL version"`

	// GLMinor is the requested minor OpenGL version.
	GLMinor int `default:"1" flag:"gl-minor" desc:"the requested minor OpenGL version"`

	// ClearColor is the hex color the window is cleared to every frame.
	ClearColor string `default:"#000000" flag:"clear" desc:"the hex color the window is cleared to every frame"`

	// Offset is the x, y, z offset added to every vertex position
	// by shaders with an offset uniform.
	Offset []float32 `default:"0 0 0" flag:"offset" desc:"the x y z vertex offset for shaders with an offset uniform"`

	// Animate moves the offset back and forth along x over time.
	Animate bool `flag:"animate" desc:"move the offset back and forth along x over time"`

	// ShaderDir is a directory with shader.vert and shader.frag files
	// to use instead of the embedded shaders for the sample.
	ShaderDir string `flag:"shaders" desc:"a directory with shader.vert and shader.frag files to use instead of the embedded shaders"`

	// Watch reloads the shaders in ShaderDir when they change.
	Watch bool `flag:"watch" desc:"reload the shaders in the shader directory when they change"`

	// Wireframe draws only the edges of the triangles.
	Wireframe bool `flag:"wireframe" desc:"draw only the edges of the triangles"`

	// VSync syncs buffer swaps to the display refresh rate.
	VSync bool `default:"true" flag:"vsync" desc:"sync buffer swaps to the display refresh rate"`

	// Frames is the number of frames to draw before exiting,
	// or 0 to draw until the window is closed.
	Frames int `flag:"frames" desc:"the number of frames to draw before exiting, or 0 to draw until the window is closed"`

	// Offscreen renders with the CPU renderer without opening a window.
	Offscreen bool `flag:"offscreen" desc:"render with the CPU renderer without opening a window"`

	// Screenshot is an image file to save the last frame to on exit.
	Screenshot string `flag:"screenshot" desc:"an image file (png, jpg, gif, tif, bmp) to save the last frame to on exit"`

	// Strict exits on shader compile and link errors instead of
	// drawing with the failed program.
	Strict bool `flag:"strict" desc:"exit on shader compile and link errors"`

	// FPSInterval is how often to log the frame rate, in seconds,
	// or 0 to never log it.
	FPSInterval float64 `default:"10" flag:"fps" desc:"how often to log the frame rate in seconds, or 0 to never log it"`

	// VeryVerbose logs debug messages.
	VeryVerbose bool `flag:"vv" desc:"log debug messages"`

	// Verbose logs info messages.
	Verbose bool `flag:"v" desc:"log info messages"`

	// Quiet only logs errors.
	Quiet bool `flag:"q" desc:"only log errors"`

	// Config is a toml or yaml config file to load before the flags.
	Config string `toml:"-" yaml:"-" flag:"config" desc:"a toml or yaml config file to load before the flags"`

	// SaveConfig is a toml or yaml file to save the resulting config
	// to instead of running the sample.
	SaveConfig string `toml:"-" yaml:"-" flag:"save-config" desc:"save the resulting config to the given toml or yaml file and exit"`
}

// SetFromDefaults sets the values of the given config object
// from `default:` struct field tag values. Errors are automatically
// logged in addition to being returned.
func SetFromDefaults(cfg any) error {
	return errors.Log(reflectx.SetFromDefaultTags(cfg))
}

// Default returns a new config with all of the default values.
func Default() *Config {
	cfg := &Config{}
	SetFromDefaults(cfg)
	return cfg
}

// Size returns the window size.
func (c *Config) Size() image.Point {
	return image.Pt(c.Width, c.Height)
}

// Clear returns the parsed clear color.
func (c *Config) Clear() (color.NRGBA, error) {
	return colors.FromHex(c.ClearColor)
}

// OffsetVector returns the vertex offset as a vector.
func (c *Config) OffsetVector() math32.Vector3 {
	return math32.Vector3FromSlice(c.Offset)
}

// FPSPeriod returns the frame rate logging interval.
func (c *Config) FPSPeriod() time.Duration {
	return time.Duration(c.FPSInterval * float64(time.Second))
}

// LogLevel returns the log level selected by the verbosity
// options, or [logx.UserLevel] if none of them is set.
func (c *Config) LogLevel() slog.Level {
	if !c.VeryVerbose && !c.Verbose && !c.Quiet {
		return logx.UserLevel
	}
	return logx.LevelFromFlags(c.VeryVerbose, c.Verbose, c.Quiet)
}

// ExpandPaths expands a leading ~ to the home directory
// in all of the file path options.
func (c *Config) ExpandPaths() error {
	for _, p := range []*string{&c.ShaderDir, &c.Screenshot, &c.Config, &c.SaveConfig} {
		if *p == "" {
			continue
		}
		ep, err := homedir.Expand(*p)
		if err != nil {
			return fmt.Errorf("config: expanding %q: %w", *p, err)
		}
		*p = ep
	}
	return nil
}

// Validate returns an error for any options that cannot be used.
func (c *Config) Validate() error {
	var errs []error
	if !slices.Contains(shapes.Names(), c.Sample) {
		errs = append(errs, fmt.Errorf("config: unknown sample %q; must be one of %v", c.Sample, shapes.Names()))
	}
	if c.Width <= 0 || c.Height <= 0 {
		errs = append(errs, fmt.Errorf("config: invalid window size %dx%d", c.Width, c.Height))
	}
	if c.SaveConfig != "" && !slices.Contains([]string{".toml", ".yaml", ".yml"}, ext(c.SaveConfig)) {
		errs = append(errs, fmt.Errorf("config: cannot save config to %q; must be .toml or .yaml", c.SaveConfig))
	}
	if c.GLMajor < 3 || (c.GLMajor == 3 && c.GLMinor < 3) {
		errs = append(errs, fmt.Errorf("config: OpenGL %d.%d does not have a core profile; must be at least 3.3", c.GLMajor, c.GLMinor))
	}
	if len(c.Offset) > 3 {
		errs = append(errs, fmt.Errorf("config: offset has %d values; must have at most 3", len(c.Offset)))
	}
	if _, err := c.Clear(); err != nil {
		errs = append(errs, err)
	}
	if c.Frames < 0 {
		errs = append(errs, fmt.Errorf("config: invalid frame count %d", c.Frames))
	}
	if c.FPSInterval < 0 {
		errs = append(errs, fmt.Errorf("config: invalid fps interval %g", c.FPSInterval))
	}
	if c.Watch && c.ShaderDir == "" {
		errs = append(errs, errors.New("config: watch requires a shader directory"))
	}
	return errors.Join(errs...)
}
