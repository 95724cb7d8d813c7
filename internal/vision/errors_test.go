package vision

import (
	"errors"
	"fmt"
	"testing"
)

func TestExtractErrorMessage_JSONBody(t *testing.T) {
	raw := `400 {"type":"error","error":{"type":"invalid_request_error","message":"image exceeds 5 MB maximum: 6091236 bytes > 5242880 bytes"},"request_id":"req_123"}`
	got := ExtractErrorMessage(errors.New(raw))
	want := "image exceeds 5 MB maximum: 6091236 bytes > 5242880 bytes"
	if got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestExtractErrorMessage_PlainText(t *testing.T) {
	got := ExtractErrorMessage(errors.New("Network timeout"))
	if got != "Network timeout" {
		t.Errorf("got %q, want %q", got, "Network timeout")
	}
}

func TestExtractErrorMessage_NilError(t *testing.T) {
	if got := ExtractErrorMessage(nil); got != "null" {
		t.Errorf("got %q, want %q", got, "null")
	}
}

func TestExtractErrorMessage_MalformedJSON(t *testing.T) {
	raw := `500 {"type":"error","error":{"message":`
	got := ExtractErrorMessage(errors.New(raw))
	if got != raw {
		t.Errorf("got %q, want raw text back", got)
	}
}

func TestExtractErrorMessage_WrappedError(t *testing.T) {
	inner := errors.New(`429 {"error":{"message":"rate limited"}}`)
	got := ExtractErrorMessage(fmt.Errorf("vision: request failed: %w", inner))
	if got != "rate limited" {
		t.Errorf("got %q, want %q", got, "rate limited")
	}
}
