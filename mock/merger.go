package mock

import (
	"context"

	pdfassistant "github.com/Nityom/ai-pdf-assistant"
)

var _ pdfassistant.Merger = (*Merger)(nil)

// Merger is a mock implementation of pdfassistant.Merger.
type Merger struct {
	MergeFn func(ctx context.Context, inputs []string, outputName string) (pdfassistant.MergedDocument, error)
}

func (m *Merger) Merge(ctx context.Context, inputs []string, outputName string) (pdfassistant.MergedDocument, error) {
	return m.MergeFn(ctx, inputs, outputName)
}
