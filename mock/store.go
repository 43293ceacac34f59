package mock

import (
	pdfassistant "github.com/Nityom/ai-pdf-assistant"
)

var _ pdfassistant.Store = (*Store)(nil)

// Store is a mock implementation of pdfassistant.Store.
type Store struct {
	ExistsFn func(name string) bool
	WriteFn  func(name string, content []byte) error
	RemoveFn func(name string) error
	PathFn   func(name string) string
}

func (s *Store) Exists(name string) bool {
	return s.ExistsFn(name)
}

func (s *Store) Write(name string, content []byte) error {
	return s.WriteFn(name, content)
}

func (s *Store) Remove(name string) error {
	return s.RemoveFn(name)
}

func (s *Store) Path(name string) string {
	return s.PathFn(name)
}
