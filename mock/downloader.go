package mock

import (
	"context"

	pdfassistant "github.com/Nityom/ai-pdf-assistant"
)

var _ pdfassistant.Downloader = (*Downloader)(nil)

// Downloader is a mock implementation of pdfassistant.Downloader.
type Downloader struct {
	DownloadFn func(ctx context.Context, refs []string, progress pdfassistant.DownloadProgressFunc) ([]pdfassistant.LocalDocument, error)
}

func (d *Downloader) Download(ctx context.Context, refs []string, progress pdfassistant.DownloadProgressFunc) ([]pdfassistant.LocalDocument, error) {
	return d.DownloadFn(ctx, refs, progress)
}
