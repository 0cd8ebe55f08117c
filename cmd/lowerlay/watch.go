package main

import (
	"context"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
)

// newDictWatcher watches dir and each dictionary directory inside it.
func newDictWatcher(dir string) (*fsnotify.Watcher, error) {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	if err := w.Add(dir); err != nil {
		w.Close()
		return nil, err
	}
	entries, err := os.ReadDir(dir)
	if err != nil {
		w.Close()
		return nil, err
	}
	for _, e := range entries {
		if e.IsDir() {
			if err := w.Add(filepath.Join(dir, e.Name())); err != nil {
				w.Close()
				return nil, err
			}
		}
	}
	return w, nil
}

// runDictWatcher calls reload once no change has been seen for debounce.
// It closes w when ctx is done.
func runDictWatcher(ctx context.Context, w *fsnotify.Watcher, debounce time.Duration, logger *slog.Logger, reload func()) {
	defer w.Close()

	timer := time.NewTimer(debounce)
	timer.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case ev, ok := <-w.Events:
			if !ok {
				return
			}
			if ev.Op == fsnotify.Chmod {
				continue
			}
			if ev.Has(fsnotify.Create) {
				if fi, err := os.Stat(ev.Name); err == nil && fi.IsDir() {
					if err := w.Add(ev.Name); err != nil {
						logger.Warn("watch new dictionary", "path", ev.Name, "error", err)
					}
				}
			}
			logger.Debug("dictionary change", "op", ev.Op.String(), "path", ev.Name)
			timer.Reset(debounce)
		case err, ok := <-w.Errors:
			if !ok {
				return
			}
			logger.Warn("watcher error", "error", err)
		case <-timer.C:
			reload()
		}
	}
}
