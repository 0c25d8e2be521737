// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package window opens a glfw window with a current OpenGL
// context and reports the events the draw loop needs:
// quit requests and framebuffer resizes.
package window

import (
	"fmt"
	"image"
	"log/slog"
	"runtime"

	"github.com/go-gl/glfw/v3.3/glfw"
)

func init() {
	// glfw event handling and the GL context must stay on the main thread
	runtime.LockOSThread()
}

// Options are the options for creating a window.
type Options struct {

	// Title is the window title.
	Title string

	// Size is the requested window size in screen coordinates.
	Size image.Point

	// GLMajor and GLMinor are the requested OpenGL version,
	// which is always a forward-compatible core profile.
	GLMajor, GLMinor int

	// VSync syncs buffer swaps to the display refresh.
	VSync bool

	// Resizable allows the user to resize the window.
	Resizable bool
}

// Init initializes glfw. It must be called on the main thread
// before [New], and matched by a call to [Terminate].
func Init() error {
	if err := glfw.Init(); err != nil {
		return fmt.Errorf("window.Init: failed to initialize glfw: %w", err)
	}
	return nil
}

// Terminate shuts down glfw, destroying any remaining windows.
// It must be called on the main thread.
func Terminate() {
	glfw.Terminate()
}

// Window is a glfw window with a current OpenGL context.
type Window struct {
	glw *glfw.Window

	// fbSize is the current framebuffer size in pixels.
	fbSize image.Point

	// lastSize is the framebuffer size last returned by Resized.
	lastSize image.Point

	destroyed bool
}

// New creates a new window with the given options, makes its
// OpenGL context current and sets the swap interval.
// [Init] must have been called.
func New(opts Options) (*Window, error) {
	glfw.DefaultWindowHints()
	glfw.WindowHint(glfw.ContextVersionMajor, opts.GLMajor)
	glfw.WindowHint(glfw.ContextVersionMinor, opts.GLMinor)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)
	glfw.WindowHint(glfw.Resizable, boolHint(opts.Resizable))
	glw, err := glfw.CreateWindow(opts.Size.X, opts.Size.Y, opts.Title, nil, nil)
	if err != nil {
		return nil, fmt.Errorf("window.New: failed to create window with OpenGL %d.%d context: %w", opts.GLMajor, opts.GLMinor, err)
	}
	w := &Window{glw: glw}
	glw.MakeContextCurrent()
	if opts.VSync {
		glfw.SwapInterval(1)
	} else {
		glfw.SwapInterval(0)
	}
	fw, fh := glw.GetFramebufferSize()
	w.fbSize = image.Point{fw, fh}
	w.lastSize = w.fbSize

	glw.SetKeyCallback(func(gw *glfw.Window, key glfw.Key, scancode int, action glfw.Action, mods glfw.ModifierKey) {
		if IsQuitKey(key, action) {
			slog.Debug("quit key pressed")
			gw.SetShouldClose(true)
		}
	})
	glw.SetFramebufferSizeCallback(func(gw *glfw.Window, width, height int) {
		w.fbSize = image.Point{width, height}
	})
	slog.Debug("window created", "title", opts.Title, "size", opts.Size, "framebuffer", w.fbSize)
	return w, nil
}

// Poll processes pending events and returns false once the window
// should close, because of the close button or the quit key.
func (w *Window) Poll() bool {
	if w.destroyed {
		return false
	}
	glfw.PollEvents()
	return !w.glw.ShouldClose()
}

// Swap presents the back buffer.
func (w *Window) Swap() {
	if w.destroyed {
		return
	}
	w.glw.SwapBuffers()
}

// Resized returns the framebuffer size and whether it has changed
// since the last call.
func (w *Window) Resized() (image.Point, bool) {
	if w.fbSize == w.lastSize {
		return w.fbSize, false
	}
	w.lastSize = w.fbSize
	return w.fbSize, true
}

// Destroy destroys the window and its context.
// It is safe to call more than once.
func (w *Window) Destroy() {
	if w.destroyed {
		return
	}
	w.destroyed = true
	w.glw.Destroy()
}

func boolHint(b bool) int {
	if b {
		return glfw.True
	}
	return glfw.False
}
