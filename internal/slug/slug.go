// Package slug normalizes free text into filename-safe fragments.
package slug

import (
	"regexp"
	"strings"
)

// maxLen bounds the sanitized fragment so generated filenames stay short.
const maxLen = 50

var (
	invalidChars = regexp.MustCompile(`[^a-z0-9-]`)
	hyphenRuns   = regexp.MustCompile(`-{2,}`)
)

// Sanitize converts arbitrary text into a lowercase kebab-case fragment
// containing only [a-z0-9] and single interior hyphens, at most 50
// characters long. An input with no usable characters yields "".
//
// The steps run in a fixed order: trim, lowercase, replace invalid
// characters with hyphens, collapse hyphen runs, strip edge hyphens,
// truncate. Truncation can cut right after a hyphen, so the trailing
// edge is stripped once more.
func Sanitize(s string) string {
	s = strings.TrimSpace(s)
	s = strings.ToLower(s)
	s = invalidChars.ReplaceAllString(s, "-")
	s = hyphenRuns.ReplaceAllString(s, "-")
	s = strings.Trim(s, "-")
	if len(s) > maxLen {
		s = strings.TrimSuffix(s[:maxLen], "-")
	}
	return s
}
