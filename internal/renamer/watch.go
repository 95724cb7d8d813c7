package renamer

import (
	"context"
	"log/slog"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/LarsEckart/screenshot-renamer/internal/screenshot"
)

// settleDelay gives the OS time to finish writing a new screenshot
// before its bytes are read and sent to the API.
const settleDelay = 500 * time.Millisecond

// Watch holds an fsnotify watcher on dir and renames newly created
// screenshots as they appear, one at a time, until ctx is cancelled.
// The same extension and name filters as the batch pass apply; the age
// window is trivially satisfied for files that were just created.
func (r *Renamer) Watch(ctx context.Context, dir string) error {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	defer w.Close()

	if err := w.Add(dir); err != nil {
		return err
	}

	r.logger.Info("watcher: started", slog.String("dir", dir))

	for {
		select {
		case <-ctx.Done():
			r.logger.Info("watcher: stopped")
			return nil

		case ev, ok := <-w.Events:
			if !ok {
				return nil
			}
			if ev.Op&fsnotify.Create == 0 {
				continue
			}
			name := filepath.Base(ev.Name)
			if !r.supported(filepath.Ext(name)) || !screenshot.IsScreenshotName(name) {
				continue
			}

			// Renaming our own output would re-trigger Create events;
			// renamed files no longer match the screenshot pattern, so
			// the filter above already breaks that loop.
			select {
			case <-ctx.Done():
				return nil
			case <-time.After(settleDelay):
			}

			outcome := r.processScreenshot(ctx, dir, name)
			if outcome.Err != nil {
				r.logger.Warn("watcher: processing failed",
					slog.String("file", name),
					slog.String("error", outcome.Err.Error()))
			}

		case watchErr, ok := <-w.Errors:
			if !ok {
				return nil
			}
			r.logger.Error("watcher: error", slog.String("error", watchErr.Error()))
		}
	}
}
