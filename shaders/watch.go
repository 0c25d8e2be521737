// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package shaders

import (
	"log/slog"
	"path/filepath"
	"sync"

	"github.com/fsnotify/fsnotify"
	"github.com/mitchellh/go-homedir"
)

// Watcher watches a shader directory and delivers the reloaded
// [Source] whenever one of the shader files changes.
// It never calls into the GPU: the consumer applies the new
// source on its own rendering thread.
type Watcher struct {
	dir     string
	watcher *fsnotify.Watcher
	changes chan Source
	done    chan struct{}
	wg      sync.WaitGroup
}

// NewWatcher starts watching the given shader directory.
// The directory itself is watched, so editors that save by
// replacing the file are handled.
func NewWatcher(dir string) (*Watcher, error) {
	dir, err := homedir.Expand(dir)
	if err != nil {
		return nil, err
	}
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	if err := fw.Add(dir); err != nil {
		fw.Close()
		return nil, err
	}
	w := &Watcher{
		dir:     dir,
		watcher: fw,
		changes: make(chan Source, 1),
		done:    make(chan struct{}),
	}
	w.wg.Add(1)
	go w.watch()
	return w, nil
}

// Changes returns the channel of reloaded sources. Only the most
// recent unconsumed source is kept.
func (w *Watcher) Changes() <-chan Source {
	return w.changes
}

// Close stops watching and waits for the watch goroutine to exit.
func (w *Watcher) Close() error {
	select {
	case <-w.done:
		return nil
	default:
	}
	close(w.done)
	err := w.watcher.Close()
	w.wg.Wait()
	return err
}

func (w *Watcher) watch() {
	defer w.wg.Done()
	for {
		select {
		case <-w.done:
			return
		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			if !isShaderEvent(event) {
				continue
			}
			src, err := Load(w.dir)
			if err != nil {
				// partially written files are common while saving
				slog.Debug("shader reload skipped", "file", event.Name, "err", err)
				continue
			}
			slog.Info("shader files changed", "file", event.Name)
			w.publish(src)
		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			slog.Error("shader watcher error: " + err.Error())
		}
	}
}

// publish replaces any pending source with src.
func (w *Watcher) publish(src Source) {
	select {
	case <-w.changes:
	default:
	}
	select {
	case w.changes <- src:
	default:
	}
}

func isShaderEvent(event fsnotify.Event) bool {
	if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) && !event.Has(fsnotify.Rename) {
		return false
	}
	base := filepath.Base(event.Name)
	return base == VertexFile || base == FragmentFile
}
