// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

// Package watch re-runs generation when schema files change.
package watch

import (
	"context"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/dacolabs/avrots/internal/avro"
	"github.com/fsnotify/fsnotify"
	"go.uber.org/zap"
)

// DefaultDebounce is the quiet period after the last event before a rebuild.
const DefaultDebounce = 300 * time.Millisecond

// Watcher calls a callback whenever a schema file under its paths changes.
// Paths are watched on the operating system filesystem.
type Watcher struct {
	paths    []string
	callback func(context.Context) error
	logger   *zap.Logger
	debounce time.Duration
}

// New creates a watcher. A non-positive debounce selects DefaultDebounce.
func New(paths []string, callback func(context.Context) error, logger *zap.Logger, debounce time.Duration) *Watcher {
	if logger == nil {
		logger = zap.NewNop()
	}
	if debounce <= 0 {
		debounce = DefaultDebounce
	}
	return &Watcher{paths: paths, callback: callback, logger: logger, debounce: debounce}
}

// Run invokes the callback once, then again after every burst of schema file
// changes, until ctx is cancelled. Callback failures are logged and do not stop
// the watcher.
func (w *Watcher) Run(ctx context.Context) error {
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return errors.Wrap(err, "failed to create watcher")
	}
	defer fw.Close()

	for _, p := range w.paths {
		if err := w.add(fw, p); err != nil {
			return err
		}
	}

	w.invoke(ctx)

	timer := time.NewTimer(w.debounce)
	timer.Stop()
	var pending <-chan time.Time

	for {
		select {
		case <-ctx.Done():
			return nil

		case event, ok := <-fw.Events:
			if !ok {
				return nil
			}
			if event.Has(fsnotify.Create) {
				if info, err := os.Stat(event.Name); err == nil && info.IsDir() {
					if err := w.add(fw, event.Name); err != nil {
						w.logger.Warn("failed to watch new directory", zap.String("dir", event.Name), zap.Error(err))
					}
					continue
				}
			}
			if !relevant(event) {
				continue
			}
			w.logger.Debug("schema change", zap.String("file", event.Name), zap.String("op", event.Op.String()))
			timer.Reset(w.debounce)
			pending = timer.C

		case <-pending:
			pending = nil
			w.invoke(ctx)

		case err, ok := <-fw.Errors:
			if !ok {
				return nil
			}
			w.logger.Warn("watch error", zap.Error(err))
		}
	}
}

func (w *Watcher) invoke(ctx context.Context) {
	if err := w.callback(ctx); err != nil {
		w.logger.Error("generation failed", zap.Error(err))
	}
}

// add watches a directory tree, or the directory holding a single file.
func (w *Watcher) add(fw *fsnotify.Watcher, path string) error {
	info, err := os.Stat(path)
	if err != nil {
		if os.IsNotExist(err) {
			return &avro.InputNotFoundError{Path: path}
		}
		return errors.Wrapf(err, "stat %s", path)
	}
	if !info.IsDir() {
		return errors.Wrapf(fw.Add(filepath.Dir(path)), "failed to watch %s", path)
	}
	return filepath.WalkDir(path, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() {
			return nil
		}
		w.logger.Debug("watching", zap.String("dir", p))
		return errors.Wrapf(fw.Add(p), "failed to watch %s", p)
	})
}

func relevant(event fsnotify.Event) bool {
	if filepath.Ext(event.Name) != avro.SchemaExtension {
		return false
	}
	return event.Has(fsnotify.Write) || event.Has(fsnotify.Create) ||
		event.Has(fsnotify.Remove) || event.Has(fsnotify.Rename)
}
