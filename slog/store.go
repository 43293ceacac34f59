package slog

import (
	"log/slog"

	pdfassistant "github.com/Nityom/ai-pdf-assistant"
)

// Ensure LoggingStore implements pdfassistant.Store.
var _ pdfassistant.Store = (*LoggingStore)(nil)

// LoggingStore wraps a Store and logs write and removal failures, which
// callers treat as soft.
type LoggingStore struct {
	next   pdfassistant.Store
	logger *slog.Logger
}

// NewLoggingStore creates a new LoggingStore.
func NewLoggingStore(next pdfassistant.Store, logger *slog.Logger) *LoggingStore {
	return &LoggingStore{next: next, logger: logger}
}

// Exists delegates to the wrapped store.
func (s *LoggingStore) Exists(name string) bool {
	return s.next.Exists(name)
}

// Write delegates to the wrapped store, logging failures.
func (s *LoggingStore) Write(name string, content []byte) error {
	if err := s.next.Write(name, content); err != nil {
		s.logger.Error("store write failed", "file", name, "error", err)
		return err
	}
	return nil
}

// Remove delegates to the wrapped store, logging failures.
func (s *LoggingStore) Remove(name string) error {
	if err := s.next.Remove(name); err != nil {
		s.logger.Warn("store remove failed", "file", name, "error", err)
		return err
	}
	return nil
}

// Path delegates to the wrapped store.
func (s *LoggingStore) Path(name string) string {
	return s.next.Path(name)
}
