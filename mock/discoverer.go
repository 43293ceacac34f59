package mock

import (
	"context"

	pdfassistant "github.com/Nityom/ai-pdf-assistant"
)

var _ pdfassistant.LinkDiscoverer = (*LinkDiscoverer)(nil)

// LinkDiscoverer is a mock implementation of pdfassistant.LinkDiscoverer.
type LinkDiscoverer struct {
	DiscoverFn func(ctx context.Context, baseURL string) ([]string, error)
}

func (d *LinkDiscoverer) Discover(ctx context.Context, baseURL string) ([]string, error) {
	return d.DiscoverFn(ctx, baseURL)
}
