package slog

import (
	"context"
	"log/slog"
	"time"

	pdfassistant "github.com/Nityom/ai-pdf-assistant"
)

// Ensure LoggingMerger implements pdfassistant.Merger.
var _ pdfassistant.Merger = (*LoggingMerger)(nil)

// LoggingMerger wraps a Merger and logs merge outcomes, including inputs
// skipped as unreadable.
type LoggingMerger struct {
	next   pdfassistant.Merger
	logger *slog.Logger
}

// NewLoggingMerger creates a new LoggingMerger.
func NewLoggingMerger(next pdfassistant.Merger, logger *slog.Logger) *LoggingMerger {
	return &LoggingMerger{next: next, logger: logger}
}

// Merge delegates to the wrapped merger and logs the result.
func (m *LoggingMerger) Merge(ctx context.Context, inputs []string, outputName string) (pdfassistant.MergedDocument, error) {
	begin := time.Now()

	doc, err := m.next.Merge(ctx, inputs, outputName)
	if err != nil {
		m.logger.Error("merge failed", "inputs", len(inputs), "error", err)
		return doc, err
	}

	if doc.Skipped > 0 {
		m.logger.Warn("merge skipped unreadable inputs", "skipped", doc.Skipped)
	}
	m.logger.Info("merged documents",
		"merged", doc.Merged,
		"skipped", doc.Skipped,
		"output", doc.Name,
		"duration", time.Since(begin),
	)
	return doc, nil
}
