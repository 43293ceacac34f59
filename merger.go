package pdfassistant

import "context"

// Merger concatenates local PDF documents into a single document.
type Merger interface {
	// Merge appends the pages of each named input, in input order, into
	// one document written to the store under outputName, overwriting any
	// prior file of that name. An unreadable input is skipped and the
	// merge continues; if every input is unreadable the merge fails and
	// no output is written. On success every input is removed from the
	// store, including skipped ones. Removal failures are non-fatal.
	Merge(ctx context.Context, inputs []string, outputName string) (MergedDocument, error)
}
