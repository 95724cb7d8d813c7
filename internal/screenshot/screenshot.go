// Package screenshot recognizes the macOS screenshot filename convention
// and extracts the embedded capture date and time.
package screenshot

import (
	"errors"
	"fmt"
	"regexp"
)

// ErrNotScreenshot is returned when a filename does not follow the
// recognized screenshot convention.
var ErrNotScreenshot = errors.New("not a recognized screenshot name")

// namePattern matches names like "Screenshot 2024-12-10 at 3.45.22 PM.png".
// Anchored at the start; anything after the seconds (AM/PM marker,
// extension, copy suffixes) is accepted.
var namePattern = regexp.MustCompile(`^Screenshot (\d{4}-\d{2}-\d{2}) at (\d{1,2})\.(\d{2})\.(\d{2})`)

// IsScreenshotName reports whether name follows the screenshot convention.
func IsScreenshotName(name string) bool {
	return namePattern.MatchString(name)
}

// DateTimePrefix returns "YYYY-MM-DD-HH-MM" extracted from a screenshot
// filename, with the hour zero-padded to two digits.
//
// The hour is taken verbatim from the 12-hour clock field; no AM/PM
// conversion is applied, so a 3 PM and a 3 AM capture both yield "03".
// Existing history consumers depend on this format, so it stays.
func DateTimePrefix(name string) (string, error) {
	m := namePattern.FindStringSubmatch(name)
	if m == nil {
		return "", fmt.Errorf("%w: %q", ErrNotScreenshot, name)
	}
	hour := m[2]
	if len(hour) == 1 {
		hour = "0" + hour
	}
	return fmt.Sprintf("%s-%s-%s", m[1], hour, m[3]), nil
}
