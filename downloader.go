package pdfassistant

import "context"

// DownloadProgress reports progress while downloading documents.
type DownloadProgress struct {
	URL       string
	Filename  string
	Completed int
	Total     int
	Cached    bool
	Err       error
}

// DownloadProgressFunc is called as references are processed.
type DownloadProgressFunc func(DownloadProgress)

// Downloader retrieves remote PDF resources into the local store.
type Downloader interface {
	// Download fetches each referenced resource and persists it in the
	// store under a filename derived from the URL's final path segment.
	// A reference whose filename already exists in the store is reported
	// as fetched without touching the network; references sharing a
	// filename collapse into one document. A failed download is skipped
	// and the batch continues. Results follow reference order; failed
	// references are omitted.
	Download(ctx context.Context, refs []string, progress DownloadProgressFunc) ([]LocalDocument, error)
}
