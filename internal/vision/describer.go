// Package vision asks a vision-capable model to describe image content.
package vision

import (
	"context"
	"errors"
	"strings"
)

// ErrNoSuggestion is returned when the model response carries no usable
// text block.
var ErrNoSuggestion = errors.New("no suggestion in model response")

// Describer produces a short textual description for an image, suitable
// as a filename after sanitization.
type Describer interface {
	Describe(ctx context.Context, imageData []byte, mediaType string) (string, error)
}

// MediaTypeForExt maps a file extension (with leading dot, any case) to
// the media type sent to the API. Unrecognized extensions fall back to
// image/jpeg.
func MediaTypeForExt(ext string) string {
	switch strings.ToLower(ext) {
	case ".jpg", ".jpeg":
		return "image/jpeg"
	case ".png":
		return "image/png"
	case ".gif":
		return "image/gif"
	case ".webp":
		return "image/webp"
	default:
		return "image/jpeg"
	}
}
