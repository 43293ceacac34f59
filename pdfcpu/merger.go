// Package pdfcpu provides PDF merging using the pdfcpu library.
package pdfcpu

import (
	"context"

	pdfassistant "github.com/Nityom/ai-pdf-assistant"
	"github.com/pdfcpu/pdfcpu/pkg/api"
)

// Ensure Merger implements pdfassistant.Merger at compile time.
var _ pdfassistant.Merger = (*Merger)(nil)

// Merger concatenates PDF documents held in a store.
type Merger struct {
	store pdfassistant.Store
}

// NewMerger creates a Merger operating on store.
func NewMerger(store pdfassistant.Store) *Merger {
	return &Merger{store: store}
}

// Merge validates each input and appends the pages of the readable ones,
// in input order, into one document written under outputName, overwriting
// any prior file of that name. Unreadable inputs are skipped; if every
// input is unreadable the merge fails and no output is written. After a
// successful merge every input is removed from the store, including the
// skipped ones, so raw inputs never accumulate alongside the merged
// document. Removal failures are non-fatal.
func (m *Merger) Merge(ctx context.Context, inputs []string, outputName string) (pdfassistant.MergedDocument, error) {
	if len(inputs) == 0 {
		return pdfassistant.MergedDocument{}, pdfassistant.Errorf(pdfassistant.EINVALID, "no documents to merge")
	}

	var readable []string
	var skipped int
	for _, name := range inputs {
		if err := ctx.Err(); err != nil {
			return pdfassistant.MergedDocument{}, err
		}
		if err := api.ValidateFile(m.store.Path(name), nil); err != nil {
			skipped++
			continue
		}
		readable = append(readable, m.store.Path(name))
	}
	if len(readable) == 0 {
		return pdfassistant.MergedDocument{}, pdfassistant.Errorf(pdfassistant.EINTERNAL,
			"none of the %d documents could be merged", len(inputs))
	}

	outPath := m.store.Path(outputName)
	if err := api.MergeCreateFile(readable, outPath, false, nil); err != nil {
		return pdfassistant.MergedDocument{}, pdfassistant.Errorf(pdfassistant.EINTERNAL, "merge failed: %v", err)
	}

	for _, name := range inputs {
		if name == outputName {
			continue
		}
		_ = m.store.Remove(name)
	}

	return pdfassistant.MergedDocument{
		Name:    outputName,
		Path:    outPath,
		Merged:  len(readable),
		Skipped: skipped,
	}, nil
}
