package vision

import "regexp"

// messageField scans for a JSON-shaped "message": "..." substring. This
// is a best-effort text scan, not a JSON parse: API errors arrive as a
// status code followed by a JSON body, and the inner message is the only
// part worth showing.
var messageField = regexp.MustCompile(`"message"\s*:\s*"([^"]+)"`)

// ExtractErrorMessage turns an arbitrary error into the most readable
// single-line string it can. A nil error yields "null". If the error
// text embeds a JSON message field, the inner message is returned;
// otherwise the text comes back unchanged. Never fails.
func ExtractErrorMessage(err error) string {
	if err == nil {
		return "null"
	}
	msg := err.Error()
	if m := messageField.FindStringSubmatch(msg); m != nil {
		return m[1]
	}
	return msg
}
