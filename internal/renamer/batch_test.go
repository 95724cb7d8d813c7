package renamer

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/LarsEckart/screenshot-renamer/internal/testutil"
)

const (
	shot1 = "Screenshot 2024-12-10 at 3.45.22 PM.png"
	shot2 = "Screenshot 2024-12-10 at 3.45.59 PM.png"
	shot3 = "Screenshot 2024-12-11 at 11.05.09 AM.png"
)

func TestRenameScreenshots_RenamesWithDatePrefix(t *testing.T) {
	dir := t.TempDir()
	testutil.WriteFile(t, dir, shot1)
	fake := &testutil.FakeDescriber{Script: []testutil.FakeResponse{{Text: "Team Standup Notes"}}}
	r, _, _ := newTestRenamer(t, fake, false)

	result, err := r.RenameScreenshots(context.Background(), dir, 7)
	if err != nil {
		t.Fatalf("RenameScreenshots: %v", err)
	}
	if len(result.Outcomes) != 1 {
		t.Fatalf("got %d outcomes, want 1", len(result.Outcomes))
	}
	want := filepath.Join(dir, "2024-12-10-03-45-team-standup-notes.png")
	if result.Outcomes[0].NewPath != want {
		t.Errorf("new path = %q, want %q", result.Outcomes[0].NewPath, want)
	}
	if _, err := os.Stat(want); err != nil {
		t.Errorf("renamed file missing: %v", err)
	}
}

func TestRenameScreenshots_FiltersNonScreenshots(t *testing.T) {
	dir := t.TempDir()
	testutil.WriteFile(t, dir, shot1)
	testutil.WriteFile(t, dir, "vacation.png")                          // not a screenshot name
	testutil.WriteFile(t, dir, "Screenshot notes.txt")                  // unsupported extension
	testutil.WriteFile(t, dir, "Screenshot 2024-1-1 at 3.45.22 PM.png") // malformed date
	fake := &testutil.FakeDescriber{Script: []testutil.FakeResponse{{Text: "login page"}}}
	r, _, _ := newTestRenamer(t, fake, false)

	result, err := r.RenameScreenshots(context.Background(), dir, 7)
	if err != nil {
		t.Fatalf("RenameScreenshots: %v", err)
	}
	if len(result.Outcomes) != 1 {
		t.Fatalf("got %d outcomes, want 1", len(result.Outcomes))
	}
	if fake.Calls != 1 {
		t.Errorf("describer called %d times, want 1", fake.Calls)
	}
}

func TestRenameScreenshots_SkipsOldFiles(t *testing.T) {
	dir := t.TempDir()
	oldPath := testutil.WriteFile(t, dir, shot1)
	past := time.Now().Add(-30 * 24 * time.Hour)
	if err := os.Chtimes(oldPath, past, past); err != nil {
		t.Fatalf("Chtimes: %v", err)
	}
	testutil.WriteFile(t, dir, shot3)
	fake := &testutil.FakeDescriber{Script: []testutil.FakeResponse{{Text: "dashboard"}}}
	r, _, _ := newTestRenamer(t, fake, false)

	result, err := r.RenameScreenshots(context.Background(), dir, 7)
	if err != nil {
		t.Fatalf("RenameScreenshots: %v", err)
	}
	if len(result.Outcomes) != 1 {
		t.Fatalf("got %d outcomes, want 1 (old file filtered)", len(result.Outcomes))
	}
	if result.Outcomes[0].Path != filepath.Join(dir, shot3) {
		t.Errorf("processed %q, want the recent screenshot", result.Outcomes[0].Path)
	}
}

func TestRenameScreenshots_ErrorDoesNotStopBatch(t *testing.T) {
	dir := t.TempDir()
	testutil.WriteFile(t, dir, shot1)
	testutil.WriteFile(t, dir, shot3)
	fake := &testutil.FakeDescriber{Script: []testutil.FakeResponse{
		{Err: errors.New(`400 {"error":{"message":"image exceeds 5 MB maximum"}}`)},
		{Text: "error dialog"},
	}}
	r, out, _ := newTestRenamer(t, fake, false)

	result, err := r.RenameScreenshots(context.Background(), dir, 7)
	if err != nil {
		t.Fatalf("RenameScreenshots: %v", err)
	}
	if got := result.Count(StatusFailed); got != 1 {
		t.Errorf("failed = %d, want 1", got)
	}
	if got := result.Count(StatusRenamed); got != 1 {
		t.Errorf("renamed = %d, want 1", got)
	}
	// The report shows the extracted inner message, not the raw JSON.
	if !strings.Contains(out.String(), "image exceeds 5 MB maximum") {
		t.Errorf("output missing extracted error: %q", out.String())
	}
}

func TestRenameScreenshots_EmptySuggestionSkipped(t *testing.T) {
	dir := t.TempDir()
	testutil.WriteFile(t, dir, shot1)
	fake := &testutil.FakeDescriber{Script: []testutil.FakeResponse{{Text: "   "}}}
	r, _, _ := newTestRenamer(t, fake, false)

	result, err := r.RenameScreenshots(context.Background(), dir, 7)
	if err != nil {
		t.Fatalf("RenameScreenshots: %v", err)
	}
	if got := result.Count(StatusSkipped); got != 1 {
		t.Errorf("skipped = %d, want 1", got)
	}
	if _, err := os.Stat(filepath.Join(dir, shot1)); err != nil {
		t.Errorf("skipped file should be untouched: %v", err)
	}
}

func TestRenameScreenshots_CollisionWithinRun(t *testing.T) {
	// Two screenshots from the same minute get the same suggestion; the
	// second must pick up a numeric suffix because existence is
	// re-checked after the first rename.
	dir := t.TempDir()
	testutil.WriteFile(t, dir, shot1)
	testutil.WriteFile(t, dir, shot2)
	fake := &testutil.FakeDescriber{Script: []testutil.FakeResponse{{Text: "login page"}}}
	r, _, _ := newTestRenamer(t, fake, false)

	result, err := r.RenameScreenshots(context.Background(), dir, 7)
	if err != nil {
		t.Fatalf("RenameScreenshots: %v", err)
	}
	if got := result.Count(StatusRenamed); got != 2 {
		t.Fatalf("renamed = %d, want 2", got)
	}
	first := filepath.Join(dir, "2024-12-10-03-45-login-page.png")
	second := filepath.Join(dir, "2024-12-10-03-45-login-page-1.png")
	for _, p := range []string{first, second} {
		if _, err := os.Stat(p); err != nil {
			t.Errorf("%s missing: %v", filepath.Base(p), err)
		}
	}
}

func TestRenameScreenshots_DryRun(t *testing.T) {
	dir := t.TempDir()
	testutil.WriteFile(t, dir, shot1)
	fake := &testutil.FakeDescriber{Script: []testutil.FakeResponse{{Text: "settings panel"}}}
	r, _, histPath := newTestRenamer(t, fake, true)

	result, err := r.RenameScreenshots(context.Background(), dir, 7)
	if err != nil {
		t.Fatalf("RenameScreenshots: %v", err)
	}
	if got := result.Count(StatusPlanned); got != 1 {
		t.Errorf("planned = %d, want 1", got)
	}
	if _, err := os.Stat(filepath.Join(dir, shot1)); err != nil {
		t.Errorf("dry-run must not rename: %v", err)
	}
	if _, err := os.Stat(histPath); !os.IsNotExist(err) {
		t.Errorf("dry-run must not log history")
	}
}

func TestRenameScreenshots_AlreadyRenamedUnchanged(t *testing.T) {
	// A file that is already prefix+slug named is left alone only if it
	// still matches the screenshot pattern; renamed output does not, so
	// a second batch pass simply finds nothing to do.
	dir := t.TempDir()
	testutil.WriteFile(t, dir, "2024-12-10-03-45-login-page.png")
	fake := &testutil.FakeDescriber{Script: []testutil.FakeResponse{{Text: "login page"}}}
	r, _, _ := newTestRenamer(t, fake, false)

	result, err := r.RenameScreenshots(context.Background(), dir, 7)
	if err != nil {
		t.Fatalf("RenameScreenshots: %v", err)
	}
	if len(result.Outcomes) != 0 {
		t.Errorf("got %d outcomes, want 0", len(result.Outcomes))
	}
	if fake.Calls != 0 {
		t.Errorf("describer should not be called, got %d calls", fake.Calls)
	}
}
