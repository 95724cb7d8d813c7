package renamer

import (
	"context"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/LarsEckart/screenshot-renamer/internal/screenshot"
	"github.com/LarsEckart/screenshot-renamer/internal/slug"
	"github.com/LarsEckart/screenshot-renamer/internal/vision"
)

// BatchResult accumulates per-file outcomes of a directory pass so
// callers and tests can inspect the whole run, not just console output.
type BatchResult struct {
	Outcomes []Outcome
}

// Count returns how many outcomes carry the given status.
func (b BatchResult) Count(s Status) int {
	n := 0
	for _, o := range b.Outcomes {
		if o.Status == s {
			n++
		}
	}
	return n
}

// RenameScreenshots processes every eligible screenshot in dir, strictly
// one file at a time. A file is eligible when its extension is supported,
// its name follows the screenshot convention, and it is at most days days
// old. Per-file errors are reported and skipped; only the directory
// listing itself is fatal.
func (r *Renamer) RenameScreenshots(ctx context.Context, dir string, days int) (BatchResult, error) {
	var result BatchResult

	entries, err := os.ReadDir(dir)
	if err != nil {
		return result, fmt.Errorf("renamer: list directory: %w", err)
	}

	cutoff := r.now().Add(-time.Duration(days) * 24 * time.Hour)

	var candidates []string
	for _, entry := range entries {
		if ok, _ := r.eligible(entry, cutoff); ok {
			candidates = append(candidates, entry.Name())
		}
	}

	fmt.Fprintf(r.out, "found %d screenshot(s) to rename\n", len(candidates))

	for _, name := range candidates {
		if ctx.Err() != nil {
			break
		}
		outcome := r.processScreenshot(ctx, dir, name)
		result.Outcomes = append(result.Outcomes, outcome)
	}

	fmt.Fprintf(r.out, "done: %d renamed, %d unchanged, %d skipped, %d failed\n",
		result.Count(StatusRenamed)+result.Count(StatusPlanned),
		result.Count(StatusUnchanged),
		result.Count(StatusSkipped),
		result.Count(StatusFailed))
	return result, nil
}

// eligible applies the batch filter to one directory entry.
func (r *Renamer) eligible(entry fs.DirEntry, cutoff time.Time) (bool, error) {
	if !entry.Type().IsRegular() {
		return false, nil
	}
	name := entry.Name()
	if !r.supported(filepath.Ext(name)) || !screenshot.IsScreenshotName(name) {
		return false, nil
	}
	info, err := entry.Info()
	if err != nil {
		return false, err
	}
	return !info.ModTime().Before(cutoff), nil
}

// processScreenshot runs the per-file state machine for one screenshot.
// The new name keeps the capture date/time as a prefix so the renamed
// directory still sorts chronologically.
func (r *Renamer) processScreenshot(ctx context.Context, dir, name string) Outcome {
	path := filepath.Join(dir, name)
	out := Outcome{Path: path}
	ext := filepath.Ext(name)

	prefix, err := screenshot.DateTimePrefix(name)
	if err != nil {
		out.Status = StatusFailed
		out.Err = err
		fmt.Fprintf(r.out, "error: %s: %s\n", name, vision.ExtractErrorMessage(err))
		return out
	}

	data, err := os.ReadFile(path)
	if err != nil {
		out.Status = StatusFailed
		out.Err = err
		fmt.Fprintf(r.out, "error: %s: %s\n", name, vision.ExtractErrorMessage(err))
		return out
	}

	suggestion, err := r.describer.Describe(ctx, data, vision.MediaTypeForExt(ext))
	if err != nil {
		out.Status = StatusFailed
		out.Err = err
		fmt.Fprintf(r.out, "error: %s: %s\n", name, vision.ExtractErrorMessage(err))
		return out
	}

	described := slug.Sanitize(suggestion)
	if described == "" {
		out.Status = StatusSkipped
		fmt.Fprintf(r.out, "skip (no usable suggestion): %s\n", name)
		return out
	}

	base := prefix + "-" + described
	newName := base + ext
	if newName == name {
		out.Status = StatusUnchanged
		fmt.Fprintf(r.out, "unchanged: %s\n", name)
		return out
	}

	target := resolveCollision(dir, base, ext, path)
	out.NewPath = target

	if r.dryRun {
		out.Status = StatusPlanned
		fmt.Fprintf(r.out, "[dry-run] %s -> %s\n", name, filepath.Base(target))
		return out
	}

	if err := os.Rename(path, target); err != nil {
		out.Status = StatusFailed
		out.Err = err
		fmt.Fprintf(r.out, "error: %s: %s\n", name, vision.ExtractErrorMessage(err))
		return out
	}
	if err := r.history.Append(path, target); err != nil {
		r.logger.Warn("history append failed", slog.String("error", err.Error()))
	}
	out.Status = StatusRenamed
	fmt.Fprintf(r.out, "renamed %s -> %s\n", name, filepath.Base(target))
	return out
}
