package pdfassistant

import "context"

// LinkDiscoverer finds PDF documents referenced by a web page.
type LinkDiscoverer interface {
	// Discover fetches baseURL, scans its hyperlinks, and returns the
	// absolute URLs of all linked PDF resources in document order.
	// Relative, protocol-relative, and absolute links all resolve against
	// baseURL. Duplicates are preserved; deduplication happens at download
	// time, keyed by filename.
	Discover(ctx context.Context, baseURL string) ([]string, error)
}
