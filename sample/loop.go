// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package sample

import (
	"context"
	"fmt"
	"image"
	"log/slog"
	"time"

	"cogentcore.org/glsample/base/iox/imagex"
	"cogentcore.org/glsample/config"
	"cogentcore.org/glsample/math32"
	"cogentcore.org/glsample/shaders"
)

// Window is the part of a window that the draw loop uses.
type Window interface {

	// Poll processes pending events and returns false once
	// the window should close.
	Poll() bool

	// Swap presents the frame.
	Swap()

	// Resized returns the framebuffer size and whether
	// it changed since the last call.
	Resized() (image.Point, bool)
}

// Loop is the draw loop, which renders frames until the window
// closes, the frame limit is reached or its context is canceled.
type Loop struct {

	// Window is polled for events and presents the frames.
	Window Window

	// Renderer draws the frames.
	Renderer Renderer

	// Sample is the sample being drawn.
	Sample *Sample

	// Frames is the number of frames to draw, or 0 for no limit.
	Frames int

	// Animate moves the offset along x with 0.5 * sin(t).
	Animate bool

	// FPSInterval is how often to log the frame rate, or 0 to never log it.
	FPSInterval time.Duration

	// Screenshot is an image file to save the last frame to.
	Screenshot string

	// Reloads delivers new shader sources to apply between frames.
	Reloads <-chan shaders.Source

	// drawn is the number of frames drawn.
	drawn int

	// last is the state of the last frame drawn.
	last FrameState
}

// NewLoop returns a new draw loop for the given config.
func NewLoop(cfg *config.Config, w Window, r Renderer, s *Sample) *Loop {
	return &Loop{
		Window:      w,
		Renderer:    r,
		Sample:      s,
		Frames:      cfg.Frames,
		Animate:     cfg.Animate,
		FPSInterval: cfg.FPSPeriod(),
		Screenshot:  cfg.Screenshot,
	}
}

// Drawn returns the number of frames drawn so far.
func (lp *Loop) Drawn() int {
	return lp.drawn
}

// Offset returns the offset uniform value at the given time.
func (lp *Loop) Offset(t time.Duration) math32.Vector3 {
	if !lp.Animate {
		return lp.Sample.Offset
	}
	return lp.Sample.Offset.Add(math32.Vec3(0.5*math32.Sin(float32(t.Seconds())), 0, 0))
}

// Run runs the draw loop: each iteration polls for events,
// applies any shader reloads, and draws and presents one frame.
// When it stops it saves the screenshot, if any.
func (lp *Loop) Run(ctx context.Context) error {
	start := time.Now()
	fpsStart, fpsFrames := start, 0
	for ctx.Err() == nil && lp.Window.Poll() {
		lp.applyReloads()
		now := time.Now()
		size, resized := lp.Window.Resized()
		el := now.Sub(start)
		lp.last = FrameState{
			Index:   lp.drawn,
			Time:    el,
			Offset:  lp.Offset(el),
			Size:    size,
			Resized: resized || lp.drawn == 0,
		}
		lp.Renderer.Frame(lp.last)
		lp.Window.Swap()
		lp.drawn++
		fpsFrames++

		if lp.FPSInterval > 0 {
			if d := now.Sub(fpsStart); d >= lp.FPSInterval {
				slog.Info("frame rate", "fps", fmt.Sprintf("%.1f", float64(fpsFrames)/d.Seconds()), "frames", lp.drawn)
				fpsStart, fpsFrames = now, 0
			}
		}
		if lp.Frames > 0 && lp.drawn >= lp.Frames {
			break
		}
	}
	slog.Debug("draw loop done", "sample", lp.Sample.Name, "frames", lp.drawn)
	return lp.saveScreenshot()
}

// applyReloads applies any pending shader reloads without blocking.
func (lp *Loop) applyReloads() {
	for {
		select {
		case src, ok := <-lp.Reloads:
			if !ok {
				lp.Reloads = nil
				return
			}
			if err := lp.Renderer.Reload(src); err != nil {
				slog.Error("shader reload failed; keeping the current program", "source", src.Name, "err", err)
				continue
			}
			slog.Info("shaders reloaded", "source", src.Name)
		default:
			return
		}
	}
}

// saveScreenshot draws the last frame again, as the presented frame
// is no longer readable after a swap, and saves it.
func (lp *Loop) saveScreenshot() error {
	if lp.Screenshot == "" {
		return nil
	}
	if lp.drawn == 0 {
		slog.Warn("no frames drawn; not saving screenshot", "file", lp.Screenshot)
		return nil
	}
	lp.last.Resized = false
	lp.Renderer.Frame(lp.last)
	img := lp.Renderer.Snapshot()
	if err := imagex.Save(img, lp.Screenshot); err != nil {
		return fmt.Errorf("saving screenshot: %w", err)
	}
	slog.Info("saved screenshot", "file", lp.Screenshot, "size", img.Bounds().Size())
	return nil
}
