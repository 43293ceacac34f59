package pdfassistant

// Store persists documents in a single local directory, keyed by filename.
// It is the only persisted state in the system.
type Store interface {
	// Exists reports whether a document with the given name is present.
	Exists(name string) bool

	// Write persists content under name, atomically with respect to
	// readers: a partially written document is never observable under its
	// final name. An existing document of the same name is replaced.
	Write(name string, content []byte) error

	// Remove deletes the named document.
	Remove(name string) error

	// Path returns the path of the named document.
	Path(name string) string
}
