// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package logx

import (
	"io"
	"log/slog"
	"os"

	"github.com/muesli/termenv"
)

// SetDefaultLogger sets the default [slog] logger to one that
// writes to [os.Stderr] at [UserLevel], with colored level names
// when the terminal supports them.
func SetDefaultLogger() {
	slog.SetDefault(NewLogger(os.Stderr))
}

// NewLogger returns a new text logger writing to the given writer
// at [UserLevel]. The color profile is detected from w.
func NewLogger(w io.Writer) *slog.Logger {
	out := termenv.NewOutput(w)
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{
		Level: UserLevel,
		ReplaceAttr: func(groups []string, a slog.Attr) slog.Attr {
			if a.Key == slog.TimeKey && len(groups) == 0 {
				return slog.Attr{}
			}
			if a.Key != slog.LevelKey {
				return a
			}
			lvl, ok := a.Value.Any().(slog.Level)
			if !ok {
				return a
			}
			a.Value = slog.StringValue(LevelString(out, lvl))
			return a
		},
	}))
}

// LevelString returns the name of the given level, colored
// for the given output.
func LevelString(out *termenv.Output, lvl slog.Level) string {
	s := lvl.String()
	if out == nil || out.Profile == termenv.Ascii {
		return s
	}
	var c termenv.Color
	switch {
	case lvl >= slog.LevelError:
		c = out.Color("1")
	case lvl >= slog.LevelWarn:
		c = out.Color("3")
	case lvl >= slog.LevelInfo:
		c = out.Color("6")
	default:
		c = out.Color("8")
	}
	return out.String(s).Foreground(c).String()
}
