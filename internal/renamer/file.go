package renamer

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/LarsEckart/screenshot-renamer/internal/slug"
	"github.com/LarsEckart/screenshot-renamer/internal/vision"
)

// RenameFile processes a single image: ask for a description, sanitize
// it, resolve collisions, and rename. Validation failures and remote
// errors are fatal here; the batch entry point handles them per file.
func (r *Renamer) RenameFile(ctx context.Context, path string) (Outcome, error) {
	out := Outcome{Path: path}

	ext := filepath.Ext(path)
	if !r.supported(ext) {
		out.Status = StatusFailed
		out.Err = fmt.Errorf("%w: %q", ErrUnsupportedExtension, ext)
		return out, out.Err
	}
	if _, err := os.Stat(path); err != nil {
		out.Status = StatusFailed
		out.Err = fmt.Errorf("renamer: %w", err)
		return out, out.Err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		out.Status = StatusFailed
		out.Err = fmt.Errorf("renamer: read image: %w", err)
		return out, out.Err
	}

	suggestion, err := r.describer.Describe(ctx, data, vision.MediaTypeForExt(ext))
	if err != nil {
		out.Status = StatusFailed
		out.Err = err
		return out, err
	}

	base := slug.Sanitize(suggestion)
	if base == "" {
		out.Status = StatusFailed
		out.Err = fmt.Errorf("renamer: %w", vision.ErrNoSuggestion)
		return out, out.Err
	}

	dir := filepath.Dir(path)
	newName := base + ext
	if newName == filepath.Base(path) {
		out.Status = StatusUnchanged
		fmt.Fprintf(r.out, "%s is already well named\n", path)
		return out, nil
	}

	target := resolveCollision(dir, base, ext, path)
	out.NewPath = target

	if r.dryRun {
		out.Status = StatusPlanned
		fmt.Fprintf(r.out, "would rename to %s\n", filepath.Base(target))
		fmt.Fprintf(r.out, "mv %s %s\n", shellQuote(path), shellQuote(target))
		return out, nil
	}

	if err := os.Rename(path, target); err != nil {
		out.Status = StatusFailed
		out.Err = fmt.Errorf("renamer: rename: %w", err)
		return out, out.Err
	}
	if err := r.history.Append(path, target); err != nil {
		r.logger.Warn("history append failed", slog.String("error", err.Error()))
	}
	out.Status = StatusRenamed
	fmt.Fprintf(r.out, "renamed %s -> %s\n", filepath.Base(path), filepath.Base(target))
	return out, nil
}
