// Package renamer sequences validation, suggestion, sanitization,
// collision resolution, and the rename itself for one or many images.
package renamer

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/LarsEckart/screenshot-renamer/internal/vision"
)

// ErrUnsupportedExtension is returned when a file's extension is not in
// the configured image extension list.
var ErrUnsupportedExtension = errors.New("unsupported file extension")

// Status classifies the outcome of processing one file.
type Status string

const (
	// StatusRenamed means the file was renamed and logged.
	StatusRenamed Status = "renamed"
	// StatusPlanned means dry-run mode reported the rename without performing it.
	StatusPlanned Status = "planned"
	// StatusUnchanged means the file already carried the proposed name.
	StatusUnchanged Status = "unchanged"
	// StatusSkipped means no usable suggestion was produced.
	StatusSkipped Status = "skipped"
	// StatusFailed means the remote call or the rename failed.
	StatusFailed Status = "failed"
)

// Outcome records what happened to a single file.
type Outcome struct {
	Path    string
	NewPath string
	Status  Status
	Err     error
}

// HistoryWriter appends one audit record per performed rename.
type HistoryWriter interface {
	Append(oldPath, newPath string) error
}

// Options carries the explicit dependencies of a Renamer.
type Options struct {
	Describer  vision.Describer
	History    HistoryWriter
	Extensions []string
	DryRun     bool
	Logger     *slog.Logger
	Out        io.Writer
	Now        func() time.Time
}

// Renamer renames image files from AI-suggested descriptions. All
// collaborators are injected so tests can run without network access.
type Renamer struct {
	describer  vision.Describer
	history    HistoryWriter
	extensions []string
	dryRun     bool
	logger     *slog.Logger
	out        io.Writer
	now        func() time.Time
}

// New creates a Renamer from opts, filling in default logger, output
// writer, and clock when absent.
func New(opts Options) *Renamer {
	r := &Renamer{
		describer:  opts.Describer,
		history:    opts.History,
		extensions: opts.Extensions,
		dryRun:     opts.DryRun,
		logger:     opts.Logger,
		out:        opts.Out,
		now:        opts.Now,
	}
	if r.logger == nil {
		r.logger = slog.Default()
	}
	if r.out == nil {
		r.out = os.Stdout
	}
	if r.now == nil {
		r.now = time.Now
	}
	return r
}

// supported reports whether ext (with leading dot, any case) is allowed.
func (r *Renamer) supported(ext string) bool {
	ext = strings.ToLower(ext)
	for _, e := range r.extensions {
		if e == ext {
			return true
		}
	}
	return false
}

// resolveCollision finds a free path in dir for base+ext, appending -1,
// -2, ... to base until no file exists there. The source path itself is
// never treated as a collision. Existence is re-checked on every
// candidate so renames performed earlier in the same run are seen.
func resolveCollision(dir, base, ext, source string) string {
	candidate := filepath.Join(dir, base+ext)
	for i := 1; ; i++ {
		if candidate == source {
			return candidate
		}
		if _, err := os.Stat(candidate); os.IsNotExist(err) {
			return candidate
		}
		candidate = filepath.Join(dir, fmt.Sprintf("%s-%d%s", base, i, ext))
	}
}

// shellQuote wraps s in single quotes for copy-pasteable shell commands,
// escaping any embedded single quote.
func shellQuote(s string) string {
	return "'" + strings.ReplaceAll(s, "'", `'\''`) + "'"
}
