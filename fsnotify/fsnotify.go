// Package fsnotify triggers snapshot rebuilds when corpus files change.
package fsnotify

import (
	"context"
	"errors"
	iofs "io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
)

// DefaultDebounce is the quiet period required before a rebuild fires.
const DefaultDebounce = 500 * time.Millisecond

// Watcher watches directory trees and calls a function after each burst of
// changes.
type Watcher struct {
	Debounce time.Duration
	Logger   *slog.Logger
}

// Watch blocks until ctx is cancelled, calling onChange once per debounced
// burst of events under dirs. Directories that do not exist are skipped;
// directories created later inside a watched tree are added.
func (w *Watcher) Watch(ctx context.Context, dirs []string, onChange func(ctx context.Context)) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	defer func() { _ = watcher.Close() }()

	watched := 0
	for _, dir := range dirs {
		n, err := addRecursive(watcher, dir)
		if err != nil {
			return err
		}
		watched += n
	}
	w.logger().Info("watching corpus", "dirs", watched)

	debounce := w.Debounce
	if debounce <= 0 {
		debounce = DefaultDebounce
	}
	timer := time.NewTimer(debounce)
	timer.Stop()

	for {
		select {
		case <-ctx.Done():
			timer.Stop()
			return nil
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if event.Has(fsnotify.Create) {
				if info, err := os.Stat(event.Name); err == nil && info.IsDir() {
					_, _ = addRecursive(watcher, event.Name)
				}
			}
			if event.Has(fsnotify.Chmod) && !event.Has(fsnotify.Write) {
				continue
			}
			timer.Reset(debounce)
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			w.logger().Warn("watch error", "err", err)
		case <-timer.C:
			onChange(ctx)
		}
	}
}

func (w *Watcher) logger() *slog.Logger {
	if w.Logger != nil {
		return w.Logger
	}
	return slog.New(slog.DiscardHandler)
}

// addRecursive watches root and every directory below it. A missing root
// is not an error.
func addRecursive(watcher *fsnotify.Watcher, root string) (int, error) {
	count := 0
	err := filepath.WalkDir(root, func(path string, d iofs.DirEntry, err error) error {
		if err != nil {
			if errors.Is(err, iofs.ErrNotExist) {
				return nil
			}
			return err
		}
		if !d.IsDir() {
			return nil
		}
		if err := watcher.Add(path); err != nil {
			return err
		}
		count++
		return nil
	})
	return count, err
}
