// Package testutil provides shared test helpers for image fixtures and
// a scripted vision describer.
package testutil

import (
	"context"
	"os"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/LarsEckart/screenshot-renamer/internal/history"
)

// FakeDescriber returns scripted suggestions in call order. Once the
// script is exhausted the last entry repeats. An entry with a non-nil
// error fails that call.
type FakeDescriber struct {
	mu            sync.Mutex
	Script        []FakeResponse
	Calls         int
	LastMediaType string
}

// FakeResponse is one scripted Describe result.
type FakeResponse struct {
	Text string
	Err  error
}

// Describe implements vision.Describer.
func (f *FakeDescriber) Describe(_ context.Context, _ []byte, mediaType string) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.LastMediaType = mediaType
	i := f.Calls
	f.Calls++
	if len(f.Script) == 0 {
		return "", nil
	}
	if i >= len(f.Script) {
		i = len(f.Script) - 1
	}
	return f.Script[i].Text, f.Script[i].Err
}

// WriteFile creates a file with dummy content under dir and returns its path.
func WriteFile(t *testing.T, dir, name string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte("image-bytes"), 0o644); err != nil {
		t.Fatalf("write fixture %s: %v", name, err)
	}
	return path
}

// TestHistory creates a history log in a temp dir with a fixed clock.
func TestHistory(t *testing.T) (*history.Log, string) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "history.tsv")
	clock := func() time.Time { return time.Date(2024, 12, 10, 15, 45, 22, 0, time.UTC) }
	return history.NewWithClock(path, clock), path
}
