package pdfassistant

import "context"

// TextExtractor produces the plain-text content of a PDF document.
type TextExtractor interface {
	// Extract returns the concatenated text of every page in page order,
	// trimmed of leading and trailing whitespace. An empty string is a
	// valid result (e.g. an image-only document); failing to open or
	// decode the document is an error.
	Extract(ctx context.Context, path string) (string, error)
}
