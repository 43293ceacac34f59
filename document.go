package pdfassistant

// LocalDocument is a PDF held in the local store.
type LocalDocument struct {
	// Name is the store filename, derived from the final path segment of
	// the source URL.
	Name string

	// SourceURL is the remote URL the document was fetched from.
	SourceURL string

	// Cached reports that the store already held a file with this name
	// and no download was performed.
	Cached bool
}

// MergedDocument identifies the output of a merge.
type MergedDocument struct {
	// Name is the store filename of the merged document.
	Name string

	// Path is the absolute path of the merged document.
	Path string

	// Merged is the number of inputs whose pages made it into the output.
	Merged int

	// Skipped is the number of unreadable inputs that were skipped.
	Skipped int
}
