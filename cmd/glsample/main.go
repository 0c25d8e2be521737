// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Command glsample opens a window and draws one of the introductory
// OpenGL samples: a triangle, a rectangle, an indexed square, or
// a colored triangle moved by an offset uniform. Press Escape or
// close the window to quit.
//
// Usage:
//
//	glsample [flags] [triangle|rectangle|square|colored]
package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"

	"cogentcore.org/glsample/base/errors"
	"cogentcore.org/glsample/base/logx"
	"cogentcore.org/glsample/config"
	"cogentcore.org/glsample/sample"
)

func main() {
	os.Exit(run())
}

func run() int {
	cfg, err := config.Load("glsample", os.Args[1:])
	if errors.Is(err, flag.ErrHelp) {
		return 0
	}
	if err != nil {
		fmt.Fprintln(os.Stderr, "glsample:", err)
		return 1
	}
	logx.UserLevel = cfg.LogLevel()
	logx.SetDefaultLogger()

	if cfg.SaveConfig != "" {
		if err := config.Save(cfg, cfg.SaveConfig); err != nil {
			slog.Error("saving config", "file", cfg.SaveConfig, "err", err)
			return 1
		}
		slog.Info("saved config", "file", cfg.SaveConfig)
		return 0
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	if err := sample.Run(ctx, cfg); err != nil {
		slog.Error("glsample failed", "sample", cfg.Sample, "err", err)
		return 1
	}
	return 0
}
