// Package history appends rename records to a write-only audit log.
package history

import (
	"fmt"
	"os"
	"path/filepath"
	"time"
)

// Log appends tab-separated rename records to a single file. The file is
// never read back by the tools; it exists purely as an audit trail.
type Log struct {
	path string
	now  func() time.Time
}

// New creates a Log writing to path. Parent directories are created on
// the first append.
func New(path string) *Log {
	return &Log{path: path, now: time.Now}
}

// NewWithClock creates a Log with an injected clock, for tests.
func NewWithClock(path string, now func() time.Time) *Log {
	return &Log{path: path, now: now}
}

// Append writes one "timestamp \t oldPath \t newPath" line.
func (l *Log) Append(oldPath, newPath string) error {
	if err := os.MkdirAll(filepath.Dir(l.path), 0o755); err != nil {
		return fmt.Errorf("history: mkdir: %w", err)
	}
	f, err := os.OpenFile(l.path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return fmt.Errorf("history: open: %w", err)
	}
	defer f.Close()

	line := fmt.Sprintf("%s\t%s\t%s\n", l.now().Format(time.RFC3339), oldPath, newPath)
	if _, err := f.WriteString(line); err != nil {
		return fmt.Errorf("history: write: %w", err)
	}
	return nil
}
