// Package http provides HTTP implementations of pdfassistant.Fetcher and
// pdfassistant.Downloader for plain GET retrieval of pages and documents.
package http

import (
	"context"
	"io"
	"net/http"
	"time"

	pdfassistant "github.com/Nityom/ai-pdf-assistant"
)

// DefaultFetchTimeout is the default timeout for page fetches.
const DefaultFetchTimeout = 10 * time.Second

// Ensure Fetcher implements pdfassistant.Fetcher at compile time.
var _ pdfassistant.Fetcher = (*Fetcher)(nil)

// Fetcher retrieves HTML content from URLs using plain GET requests.
type Fetcher struct {
	client  *http.Client
	timeout time.Duration
}

// FetcherOption configures a Fetcher.
type FetcherOption func(*Fetcher)

// WithFetchTimeout sets the timeout for HTTP requests.
// Defaults to DefaultFetchTimeout if not specified.
func WithFetchTimeout(d time.Duration) FetcherOption {
	return func(f *Fetcher) {
		f.timeout = d
	}
}

// NewFetcher creates a new Fetcher.
func NewFetcher(opts ...FetcherOption) *Fetcher {
	f := &Fetcher{
		timeout: DefaultFetchTimeout,
	}
	for _, opt := range opts {
		opt(f)
	}

	f.client = &http.Client{
		Timeout: f.timeout,
	}

	return f
}

// Fetch retrieves the HTML content from the given URL.
// A non-2xx status is a hard failure; there is no retry.
func (f *Fetcher) Fetch(ctx context.Context, url string) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return "", err
	}

	resp, err := f.client.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if !successStatus(resp.StatusCode) {
		return "", pdfassistant.Errorf(pdfassistant.EUNAVAILABLE, "HTTP %d for %s", resp.StatusCode, url)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", err
	}

	return string(body), nil
}

func successStatus(code int) bool {
	return code >= 200 && code < 300
}
