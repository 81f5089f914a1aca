// Package watcher re-runs work when a file changes on disk.
package watcher

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"

	"bisub/internal/logging"
)

const defaultDebounce = 150 * time.Millisecond

// Options controls Watch.
type Options struct {
	// Debounce coalesces bursts of events (editors often write a file in
	// several steps).
	Debounce time.Duration
	Logger   *slog.Logger
}

// Watch calls onChange after path is written or recreated, until ctx is
// cancelled. The parent directory is watched so that editors which save by
// renaming a temp file over path are still seen.
func Watch(ctx context.Context, path string, opts Options, onChange func()) error {
	target, err := filepath.Abs(path)
	if err != nil {
		return fmt.Errorf("resolve watch path: %w", err)
	}
	logger := logging.NewComponentLogger(opts.Logger, "watcher")
	debounce := opts.Debounce
	if debounce <= 0 {
		debounce = defaultDebounce
	}

	w, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("create watcher: %w", err)
	}
	defer func() {
		if err := w.Close(); err != nil {
			logger.Debug("close watcher", logging.Error(err))
		}
	}()
	if err := w.Add(filepath.Dir(target)); err != nil {
		return fmt.Errorf("watch %s: %w", filepath.Dir(target), err)
	}
	logger.Debug("watching file", logging.String("path", target))

	var (
		timer *time.Timer
		fire  <-chan time.Time
	)
	defer func() {
		if timer != nil {
			timer.Stop()
		}
	}()

	for {
		select {
		case <-ctx.Done():
			return nil
		case event, ok := <-w.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(event.Name) != target || event.Op&(fsnotify.Write|fsnotify.Create) == 0 {
				continue
			}
			if timer == nil {
				timer = time.NewTimer(debounce)
				fire = timer.C
			} else {
				timer.Reset(debounce)
			}
		case <-fire:
			timer, fire = nil, nil
			onChange()
		case err, ok := <-w.Errors:
			if !ok {
				return nil
			}
			logging.WarnWithContext(logger, "file watcher error", "watch_error",
				logging.Error(err),
				logging.String(logging.FieldImpact, "a change may have been missed"),
				logging.String(logging.FieldErrorHint, "save the file again to re-run the check"),
			)
		}
	}
}
