// Package ingest orchestrates the document ingestion pipeline. It
// coordinates link discovery, download, merge, and text extraction, and
// holds the extracted text as the active context for question answering.
package ingest

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"sync"

	pdfassistant "github.com/Nityom/ai-pdf-assistant"
	"github.com/cespare/xxhash/v2"
	"github.com/google/uuid"
)

// MergedName is the store filename of the merged output document.
const MergedName = "merged.pdf"

// NotReadyAnswer is returned by Ask before a successful ingestion run.
const NotReadyAnswer = "No document content is loaded yet. Ingest a page with PDF links first."

// NoResponseAnswer is returned when the language model produces no text.
const NoResponseAnswer = "No response generated."

// ProgressType indicates the type of progress event.
type ProgressType int

const (
	ProgressDiscovered ProgressType = iota
	ProgressDownloaded
	ProgressDownloadFailed
	ProgressMerged
	ProgressExtracted
	ProgressFinished
)

// ProgressEvent reports progress during an ingestion run.
type ProgressEvent struct {
	Type      ProgressType
	URL       string
	Completed int
	Total     int
	Cached    bool
	Skipped   int
	Err       error
}

// ProgressFunc is a callback for reporting ingestion progress.
type ProgressFunc func(event ProgressEvent)

// Result holds the outcome of an ingestion run.
type Result struct {
	RunID        string
	Discovered   int
	Downloaded   int
	Cached       int
	Failed       int
	Merged       int
	Skipped      int
	ContextBytes int
	ContextHash  string
}

// Session runs the ingestion pipeline and answers questions against the
// extracted text it produced. The context is a single slot, replaced
// wholesale by each successful run; a failed run empties it. Ingestion
// runs are serialized, and Ask always observes one consistent context.
type Session struct {
	Discoverer pdfassistant.LinkDiscoverer
	Downloader pdfassistant.Downloader
	Merger     pdfassistant.Merger
	Extractor  pdfassistant.TextExtractor
	Asker      pdfassistant.Asker
	Logger     *slog.Logger

	runMu sync.Mutex // serializes ingestion runs

	mu          sync.RWMutex // guards the fields below
	state       pdfassistant.SessionState
	contextText string
	contextHash string
}

// State returns the session's current state.
func (s *Session) State() pdfassistant.SessionState {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state
}

// Ready reports whether the session holds a context and can answer questions.
func (s *Session) Ready() bool {
	return s.State() == pdfassistant.StateReady
}

// ContextHash returns the fingerprint of the active context, or the empty
// string if none is held.
func (s *Session) ContextHash() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.contextHash
}

// RunIngestion executes discovery, download, merge, and extraction
// strictly in sequence and, on success, atomically replaces the session's
// context with the extracted text. On failure at any stage the session
// reverts to the empty state and any previous context is discarded, so a
// failed re-ingestion never keeps stale answers flowing.
func (s *Session) RunIngestion(ctx context.Context, baseURL string, progress ProgressFunc) (*Result, error) {
	s.runMu.Lock()
	defer s.runMu.Unlock()

	runID := uuid.New().String()
	logger := s.logger().With("run", runID, "url", baseURL)

	s.setState(pdfassistant.StateIngesting)

	fail := func(err error) (*Result, error) {
		s.mu.Lock()
		s.state = pdfassistant.StateEmpty
		s.contextText = ""
		s.contextHash = ""
		s.mu.Unlock()
		logger.Error("ingestion failed", "error", err)
		return nil, err
	}

	refs, err := s.Discoverer.Discover(ctx, baseURL)
	if err != nil {
		return fail(fmt.Errorf("discover: %w", err))
	}
	if len(refs) == 0 {
		return fail(pdfassistant.Errorf(pdfassistant.ENOTFOUND, "no PDF links found at %s", baseURL))
	}
	logger.Info("discovered PDF links", "count", len(refs))
	emit(progress, ProgressEvent{Type: ProgressDiscovered, Total: len(refs)})

	result := &Result{RunID: runID, Discovered: len(refs)}

	docs, err := s.Downloader.Download(ctx, refs, func(p pdfassistant.DownloadProgress) {
		event := ProgressEvent{
			Type:      ProgressDownloaded,
			URL:       p.URL,
			Completed: p.Completed,
			Total:     p.Total,
			Cached:    p.Cached,
			Err:       p.Err,
		}
		if p.Err != nil {
			event.Type = ProgressDownloadFailed
			result.Failed++
		} else if p.Cached {
			result.Cached++
		} else {
			result.Downloaded++
		}
		emit(progress, event)
	})
	if err != nil {
		return fail(fmt.Errorf("download: %w", err))
	}
	if len(docs) == 0 {
		return fail(pdfassistant.Errorf(pdfassistant.EUNAVAILABLE, "none of the %d referenced documents could be downloaded", len(refs)))
	}

	names := make([]string, len(docs))
	for i, doc := range docs {
		names[i] = doc.Name
	}

	merged, err := s.Merger.Merge(ctx, names, MergedName)
	if err != nil {
		return fail(fmt.Errorf("merge: %w", err))
	}
	result.Merged = merged.Merged
	result.Skipped = merged.Skipped
	emit(progress, ProgressEvent{Type: ProgressMerged, Completed: merged.Merged, Total: len(names), Skipped: merged.Skipped})

	text, err := s.Extractor.Extract(ctx, merged.Path)
	if err != nil {
		return fail(fmt.Errorf("extract: %w", err))
	}
	if strings.TrimSpace(text) == "" {
		return fail(pdfassistant.Errorf(pdfassistant.EINVALID, "merged document yielded no extractable text"))
	}
	emit(progress, ProgressEvent{Type: ProgressExtracted, Completed: len(text)})

	hash := fmt.Sprintf("%x", xxhash.Sum64String(text))

	s.mu.Lock()
	s.contextText = text
	s.contextHash = hash
	s.state = pdfassistant.StateReady
	s.mu.Unlock()

	result.ContextBytes = len(text)
	result.ContextHash = hash
	logger.Info("ingestion complete",
		"contextBytes", result.ContextBytes,
		"contextHash", result.ContextHash,
		"downloaded", result.Downloaded,
		"cached", result.Cached,
		"failed", result.Failed,
	)
	emit(progress, ProgressEvent{Type: ProgressFinished, Completed: len(refs), Total: len(refs)})

	return result, nil
}

// Ask answers a question against the active context. Before a successful
// ingestion it returns NotReadyAnswer without calling the language model.
// A model failure is converted into an answer-shaped "Error: ..." string
// and an empty response into NoResponseAnswer; Ask never fails, so one
// bad question cannot terminate a conversation loop.
func (s *Session) Ask(ctx context.Context, question string) string {
	s.mu.RLock()
	state := s.state
	contextText := s.contextText
	s.mu.RUnlock()

	if state != pdfassistant.StateReady {
		return NotReadyAnswer
	}

	answer, err := s.Asker.Answer(ctx, contextText, question)
	if err != nil {
		s.logger().Error("answer failed", "error", err)
		return "Error: " + errorDetail(err)
	}
	if strings.TrimSpace(answer) == "" {
		return NoResponseAnswer
	}
	return answer
}

func (s *Session) setState(state pdfassistant.SessionState) {
	s.mu.Lock()
	s.state = state
	s.mu.Unlock()
}

func (s *Session) logger() *slog.Logger {
	if s.Logger != nil {
		return s.Logger
	}
	return slog.New(slog.DiscardHandler)
}

func emit(progress ProgressFunc, event ProgressEvent) {
	if progress != nil {
		progress(event)
	}
}

// errorDetail returns the human-readable part of an error for inclusion
// in an answer-shaped error string.
func errorDetail(err error) string {
	var e *pdfassistant.Error
	if errors.As(err, &e) {
		return e.Message
	}
	return err.Error()
}
