// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

package roadmap

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
)

const defaultDebounce = 300 * time.Millisecond

// RunFunc receives the outcome of every pipeline pass made by Watch.
type RunFunc func(*RunResult, error)

// Watch runs the pipeline once, then again after each change to the input
// archive, until ctx is cancelled. Bursts of events within debounce are
// coalesced into one run; debounce 0 selects 300ms. The directory holding the
// archive is watched so that editors replacing the file are noticed.
func (r *Runner) Watch(ctx context.Context, debounce time.Duration, fn RunFunc) error {
	if debounce <= 0 {
		debounce = defaultDebounce
	}

	input, err := filepath.Abs(r.deps.Input)
	if err != nil {
		return fmt.Errorf("resolving input path: %w", err)
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("creating watcher: %w", err)
	}
	defer watcher.Close()

	if err := watcher.Add(filepath.Dir(input)); err != nil {
		return fmt.Errorf("watching %s: %w", filepath.Dir(input), err)
	}
	r.log.Info("watching archive", "input", input)

	fn(r.Run(ctx))

	timer := time.NewTimer(debounce)
	timer.Stop()
	defer timer.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil

		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(event.Name) != input {
				continue
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) && !event.Has(fsnotify.Rename) {
				continue
			}
			r.log.Debug("archive changed", "op", event.Op.String())
			timer.Reset(debounce)

		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			r.log.Warn("watcher error", "error", err)

		case <-timer.C:
			fn(r.Run(ctx))
		}
	}
}
