// internal/commands/watch.go
package reportviz

import (
	"context"
	"fmt"
	"io"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/mwiater/reportviz/internal/logging"
)

// watchReport calls onChange each time path is written, created or renamed
// into place, once events for it have settled for debounce. The directory is
// watched rather than the file so editors that replace the file on save are
// still seen. It returns nil when ctx is cancelled. Errors from onChange are
// logged and printed to out, and watching continues.
func watchReport(ctx context.Context, out io.Writer, path string, debounce time.Duration, onChange func() error) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("create watcher: %w", err)
	}
	defer watcher.Close()

	target, err := filepath.Abs(path)
	if err != nil {
		return fmt.Errorf("resolve %s: %w", path, err)
	}
	if err := watcher.Add(filepath.Dir(target)); err != nil {
		return fmt.Errorf("watch %s: %w", filepath.Dir(target), err)
	}
	logging.LogEvent("[WATCH] watching %s", target)

	tick := debounce / 4
	if tick <= 0 {
		tick = 10 * time.Millisecond
	}
	ticker := time.NewTicker(tick)
	defer ticker.Stop()

	var pending time.Time
	for {
		select {
		case <-ctx.Done():
			logging.LogEvent("[WATCH] stopped watching %s", target)
			return nil

		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			name, err := filepath.Abs(event.Name)
			if err != nil || name != target {
				continue
			}
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
				continue
			}
			pending = time.Now()

		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			logging.LogEvent("[WATCH] watcher error: %v", err)

		case <-ticker.C:
			if pending.IsZero() || time.Since(pending) < debounce {
				continue
			}
			pending = time.Time{}
			logging.LogEvent("[WATCH] %s changed", target)
			if err := onChange(); err != nil {
				logging.LogEvent("[WATCH] re-render failed: %v", err)
				warnColor.Fprintf(out, "re-render failed: %v\n", err)
			}
		}
	}
}
