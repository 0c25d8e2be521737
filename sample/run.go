// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package sample

import (
	"context"
	"image"
	"log/slog"

	"cogentcore.org/glsample/config"
	"cogentcore.org/glsample/glgpu"
	"cogentcore.org/glsample/shaders"
	"cogentcore.org/glsample/window"
)

// Run draws the sample configured by cfg in a new window until the
// window is closed, the quit key is pressed, the frame limit is
// reached or ctx is canceled. With [config.Config.Offscreen] it calls
// [RunOffscreen] instead. It must be called on the main thread.
// Any error is an initialization failure.
func Run(ctx context.Context, cfg *config.Config) error {
	if cfg.Offscreen {
		return RunOffscreen(ctx, cfg)
	}
	s, err := New(cfg)
	if err != nil {
		return err
	}
	if err := window.Init(); err != nil {
		return err
	}
	defer window.Terminate()

	w, err := window.New(window.Options{
		Title:     cfg.Title,
		Size:      cfg.Size(),
		GLMajor:   cfg.GLMajor,
		GLMinor:   cfg.GLMinor,
		VSync:     cfg.VSync,
		Resizable: true,
	})
	if err != nil {
		return err
	}
	defer w.Destroy()

	if _, err := glgpu.Init(); err != nil {
		return err
	}
	r := &GLRenderer{Strict: cfg.Strict}
	defer r.Release()
	if err := r.Setup(s); err != nil {
		return err
	}

	lp := NewLoop(cfg, w, r, s)
	if cfg.Watch {
		sw, err := shaders.NewWatcher(cfg.ShaderDir)
		if err != nil {
			return err
		}
		defer sw.Close()
		lp.Reloads = sw.Changes()
	}
	return runLoop(ctx, lp)
}

// RunOffscreen draws the sample configured by cfg with the
// [SoftRenderer], without a window, for at least one frame,
// and saves the screenshot if one is configured.
func RunOffscreen(ctx context.Context, cfg *config.Config) error {
	s, err := New(cfg)
	if err != nil {
		return err
	}
	r := &SoftRenderer{Size: cfg.Size()}
	defer r.Release()
	if err := r.Setup(s); err != nil {
		return err
	}
	lp := NewLoop(cfg, &offscreen{size: cfg.Size()}, r, s)
	lp.Frames = max(cfg.Frames, 1)
	if cfg.Screenshot == "" {
		slog.Warn("rendering offscreen without a screenshot file; nothing will be saved")
	}
	return runLoop(ctx, lp)
}

// offscreen is a [Window] with a fixed size that never closes.
type offscreen struct {
	size image.Point
}

func (o *offscreen) Poll() bool { return true }

func (o *offscreen) Swap() {}

func (o *offscreen) Resized() (image.Point, bool) { return o.size, false }

// runLoop runs the loop and logs how many frames it drew.
func runLoop(ctx context.Context, lp *Loop) error {
	err := lp.Run(ctx)
	slog.Info("stopped", "sample", lp.Sample.Name, "frames", lp.Drawn())
	return err
}
