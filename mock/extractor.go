package mock

import (
	"context"

	pdfassistant "github.com/Nityom/ai-pdf-assistant"
)

var _ pdfassistant.TextExtractor = (*TextExtractor)(nil)

// TextExtractor is a mock implementation of pdfassistant.TextExtractor.
type TextExtractor struct {
	ExtractFn func(ctx context.Context, path string) (string, error)
}

func (e *TextExtractor) Extract(ctx context.Context, path string) (string, error) {
	return e.ExtractFn(ctx, path)
}
