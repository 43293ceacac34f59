package mock

import (
	"context"

	pdfassistant "github.com/Nityom/ai-pdf-assistant"
)

var _ pdfassistant.Fetcher = (*Fetcher)(nil)

// Fetcher is a mock implementation of pdfassistant.Fetcher.
type Fetcher struct {
	FetchFn func(ctx context.Context, url string) (string, error)
}

func (f *Fetcher) Fetch(ctx context.Context, url string) (string, error) {
	return f.FetchFn(ctx, url)
}
