package pdfassistant

import "context"

// Fetcher retrieves HTML from URLs.
type Fetcher interface {
	// Fetch performs a GET request and returns the response body.
	// A non-2xx status is an error. The context controls timeout
	// and cancellation.
	Fetch(ctx context.Context, url string) (html string, err error)
}
