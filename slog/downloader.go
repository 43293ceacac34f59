// Package slog provides logging decorators for the pipeline's domain
// interfaces, following the wrapper style of log/slog.
package slog

import (
	"context"
	"log/slog"
	"time"

	pdfassistant "github.com/Nityom/ai-pdf-assistant"
)

// Ensure LoggingDownloader implements pdfassistant.Downloader.
var _ pdfassistant.Downloader = (*LoggingDownloader)(nil)

// LoggingDownloader wraps a Downloader and logs per-reference outcomes,
// including the soft failures the batch absorbs.
type LoggingDownloader struct {
	next   pdfassistant.Downloader
	logger *slog.Logger
}

// NewLoggingDownloader creates a new LoggingDownloader.
func NewLoggingDownloader(next pdfassistant.Downloader, logger *slog.Logger) *LoggingDownloader {
	return &LoggingDownloader{next: next, logger: logger}
}

// Download delegates to the wrapped downloader, logging each reference's
// outcome as progress is reported.
func (d *LoggingDownloader) Download(ctx context.Context, refs []string, progress pdfassistant.DownloadProgressFunc) ([]pdfassistant.LocalDocument, error) {
	begin := time.Now()

	logging := func(p pdfassistant.DownloadProgress) {
		switch {
		case p.Err != nil:
			d.logger.Warn("download failed", "url", p.URL, "error", p.Err)
		case p.Cached:
			d.logger.Debug("download skipped, file present", "url", p.URL, "file", p.Filename)
		default:
			d.logger.Debug("downloaded", "url", p.URL, "file", p.Filename)
		}
		if progress != nil {
			progress(p)
		}
	}

	docs, err := d.next.Download(ctx, refs, logging)
	if err != nil {
		return nil, err
	}

	d.logger.Info("download batch complete",
		"refs", len(refs),
		"fetched", len(docs),
		"duration", time.Since(begin),
	)
	return docs, nil
}
