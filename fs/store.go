// Package fs provides directory-backed document storage.
package fs

import (
	"os"
	"path/filepath"

	pdfassistant "github.com/Nityom/ai-pdf-assistant"
)

// Ensure Store implements pdfassistant.Store at compile time.
var _ pdfassistant.Store = (*Store)(nil)

// Store keeps documents in a single local directory, keyed by filename.
// Writes are atomic: content goes to a temporary file in the same
// directory and is renamed into place, so a partially written document is
// never observable under its final name.
type Store struct {
	dir string
}

// NewStore creates a Store rooted at dir, creating the directory if absent.
func NewStore(dir string) (*Store, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, err
	}
	return &Store{dir: dir}, nil
}

// Dir returns the store's directory.
func (s *Store) Dir() string {
	return s.dir
}

// Exists reports whether a document with the given name is present.
func (s *Store) Exists(name string) bool {
	_, err := os.Stat(s.Path(name))
	return err == nil
}

// Write persists content under name via a temporary file and rename.
// An existing document of the same name is replaced.
func (s *Store) Write(name string, content []byte) error {
	tmp, err := os.CreateTemp(s.dir, "."+name+".tmp-*")
	if err != nil {
		return err
	}

	if _, err := tmp.Write(content); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return err
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return err
	}

	return os.Rename(tmp.Name(), s.Path(name))
}

// Remove deletes the named document.
func (s *Store) Remove(name string) error {
	return os.Remove(s.Path(name))
}

// Path returns the path of the named document.
func (s *Store) Path(name string) string {
	return filepath.Join(s.dir, filepath.Base(name))
}
