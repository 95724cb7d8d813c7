package screenshot

import (
	"errors"
	"testing"
)

func TestIsScreenshotName_Matches(t *testing.T) {
	names := []string{
		"Screenshot 2024-12-10 at 3.45.22 PM.png",
		"Screenshot 2024-12-10 at 11.05.09 AM.png",
		"Screenshot 2023-01-01 at 9.00.00 AM (2).png",
		"Screenshot 2024-06-30 at 12.59.59 PM.jpeg",
	}
	for _, n := range names {
		if !IsScreenshotName(n) {
			t.Errorf("IsScreenshotName(%q) = false, want true", n)
		}
	}
}

func TestIsScreenshotName_Rejects(t *testing.T) {
	names := []string{
		"screenshot.png",
		"Screenshot 2024-1-10 at 3.45.22 PM.png",     // single-digit month
		"Screenshot 2024-12-1 at 3.45.22 PM.png",     // single-digit day
		"Screenshot 24-12-10 at 3.45.22 PM.png",      // two-digit year
		"Screenshot 2024-12-10 at 3.4.22 PM.png",     // single-digit minute
		"My Screenshot 2024-12-10 at 3.45.22 PM.png", // not anchored at start
		"vacation-photo.jpg",
		"",
	}
	for _, n := range names {
		if IsScreenshotName(n) {
			t.Errorf("IsScreenshotName(%q) = true, want false", n)
		}
	}
}

func TestDateTimePrefix_PadsHour(t *testing.T) {
	got, err := DateTimePrefix("Screenshot 2024-12-10 at 3.45.22 PM.png")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != "2024-12-10-03-45" {
		t.Errorf("prefix = %q, want %q", got, "2024-12-10-03-45")
	}
}

func TestDateTimePrefix_TwoDigitHour(t *testing.T) {
	got, err := DateTimePrefix("Screenshot 2024-12-10 at 11.05.09 AM.png")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != "2024-12-10-11-05" {
		t.Errorf("prefix = %q, want %q", got, "2024-12-10-11-05")
	}
}

func TestDateTimePrefix_HourTakenVerbatim(t *testing.T) {
	// 3 PM and 3 AM both yield "03"; the prefix is not day/night-aware.
	am, err := DateTimePrefix("Screenshot 2024-12-10 at 3.45.22 AM.png")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	pm, err := DateTimePrefix("Screenshot 2024-12-10 at 3.45.22 PM.png")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if am != pm {
		t.Errorf("AM prefix %q != PM prefix %q", am, pm)
	}
}

func TestDateTimePrefix_NotScreenshot(t *testing.T) {
	_, err := DateTimePrefix("vacation-photo.jpg")
	if err == nil {
		t.Fatal("expected error for non-screenshot name")
	}
	if !errors.Is(err, ErrNotScreenshot) {
		t.Errorf("error = %v, want ErrNotScreenshot", err)
	}
}
