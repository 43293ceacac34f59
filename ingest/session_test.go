package ingest_test

import (
	"context"
	"strings"
	"testing"

	pdfassistant "github.com/Nityom/ai-pdf-assistant"
	"github.com/Nityom/ai-pdf-assistant/ingest"
	"github.com/Nityom/ai-pdf-assistant/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newWorkingSession returns a session whose pipeline succeeds end to end,
// producing the context "The meeting is at 3pm.".
func newWorkingSession() *ingest.Session {
	return &ingest.Session{
		Discoverer: &mock.LinkDiscoverer{
			DiscoverFn: func(ctx context.Context, baseURL string) ([]string, error) {
				return []string{"https://example.com/a.pdf", "https://example.com/b.pdf"}, nil
			},
		},
		Downloader: &mock.Downloader{
			DownloadFn: func(ctx context.Context, refs []string, progress pdfassistant.DownloadProgressFunc) ([]pdfassistant.LocalDocument, error) {
				docs := make([]pdfassistant.LocalDocument, len(refs))
				for i, ref := range refs {
					docs[i] = pdfassistant.LocalDocument{Name: ref[strings.LastIndex(ref, "/")+1:], SourceURL: ref}
				}
				return docs, nil
			},
		},
		Merger: &mock.Merger{
			MergeFn: func(ctx context.Context, inputs []string, outputName string) (pdfassistant.MergedDocument, error) {
				return pdfassistant.MergedDocument{Name: outputName, Path: "/store/" + outputName, Merged: len(inputs)}, nil
			},
		},
		Extractor: &mock.TextExtractor{
			ExtractFn: func(ctx context.Context, path string) (string, error) {
				return "The meeting is at 3pm.", nil
			},
		},
		Asker: &mock.Asker{
			AnswerFn: func(ctx context.Context, contextText, question string) (string, error) {
				return "At 3pm.", nil
			},
		},
	}
}

func TestSession_RunIngestion(t *testing.T) {
	t.Parallel()

	t.Run("runs the pipeline in sequence and becomes ready", func(t *testing.T) {
		t.Parallel()

		var calls []string

		s := newWorkingSession()
		s.Discoverer = &mock.LinkDiscoverer{
			DiscoverFn: func(ctx context.Context, baseURL string) ([]string, error) {
				calls = append(calls, "discover")
				return []string{"https://example.com/a.pdf"}, nil
			},
		}
		s.Downloader = &mock.Downloader{
			DownloadFn: func(ctx context.Context, refs []string, progress pdfassistant.DownloadProgressFunc) ([]pdfassistant.LocalDocument, error) {
				calls = append(calls, "download")
				return []pdfassistant.LocalDocument{{Name: "a.pdf"}}, nil
			},
		}
		s.Merger = &mock.Merger{
			MergeFn: func(ctx context.Context, inputs []string, outputName string) (pdfassistant.MergedDocument, error) {
				calls = append(calls, "merge")
				assert.Equal(t, []string{"a.pdf"}, inputs)
				assert.Equal(t, ingest.MergedName, outputName)
				return pdfassistant.MergedDocument{Name: outputName, Path: "/store/" + outputName, Merged: 1}, nil
			},
		}
		s.Extractor = &mock.TextExtractor{
			ExtractFn: func(ctx context.Context, path string) (string, error) {
				calls = append(calls, "extract")
				assert.Equal(t, "/store/"+ingest.MergedName, path)
				return "extracted text", nil
			},
		}

		result, err := s.RunIngestion(context.Background(), "https://example.com", nil)

		require.NoError(t, err)
		assert.Equal(t, []string{"discover", "download", "merge", "extract"}, calls)
		assert.Equal(t, pdfassistant.StateReady, s.State())
		assert.Equal(t, 1, result.Discovered)
		assert.Equal(t, 1, result.Merged)
		assert.Equal(t, len("extracted text"), result.ContextBytes)
		assert.NotEmpty(t, result.ContextHash)
		assert.NotEmpty(t, result.RunID)
	})

	t.Run("fails when discovery fails", func(t *testing.T) {
		t.Parallel()

		s := newWorkingSession()
		s.Discoverer = &mock.LinkDiscoverer{
			DiscoverFn: func(ctx context.Context, baseURL string) ([]string, error) {
				return nil, pdfassistant.Errorf(pdfassistant.EUNAVAILABLE, "HTTP 500 for %s", baseURL)
			},
		}

		_, err := s.RunIngestion(context.Background(), "https://example.com", nil)

		require.Error(t, err)
		assert.Equal(t, pdfassistant.StateEmpty, s.State())
	})

	t.Run("fails when no PDF links are discovered", func(t *testing.T) {
		t.Parallel()

		s := newWorkingSession()
		s.Discoverer = &mock.LinkDiscoverer{
			DiscoverFn: func(ctx context.Context, baseURL string) ([]string, error) {
				return nil, nil
			},
		}

		_, err := s.RunIngestion(context.Background(), "https://example.com", nil)

		require.Error(t, err)
		assert.Equal(t, pdfassistant.ENOTFOUND, pdfassistant.ErrorCode(err))
		assert.Equal(t, pdfassistant.StateEmpty, s.State())
	})

	t.Run("fails when every download fails", func(t *testing.T) {
		t.Parallel()

		s := newWorkingSession()
		s.Downloader = &mock.Downloader{
			DownloadFn: func(ctx context.Context, refs []string, progress pdfassistant.DownloadProgressFunc) ([]pdfassistant.LocalDocument, error) {
				return nil, nil
			},
		}

		_, err := s.RunIngestion(context.Background(), "https://example.com", nil)

		require.Error(t, err)
		assert.Equal(t, pdfassistant.EUNAVAILABLE, pdfassistant.ErrorCode(err))
		assert.Equal(t, pdfassistant.StateEmpty, s.State())
	})

	t.Run("fails when the merge fails", func(t *testing.T) {
		t.Parallel()

		s := newWorkingSession()
		s.Merger = &mock.Merger{
			MergeFn: func(ctx context.Context, inputs []string, outputName string) (pdfassistant.MergedDocument, error) {
				return pdfassistant.MergedDocument{}, pdfassistant.Errorf(pdfassistant.EINTERNAL, "none of the documents could be merged")
			},
		}

		_, err := s.RunIngestion(context.Background(), "https://example.com", nil)

		require.Error(t, err)
		assert.Equal(t, pdfassistant.StateEmpty, s.State())
	})

	t.Run("fails when extraction fails", func(t *testing.T) {
		t.Parallel()

		s := newWorkingSession()
		s.Extractor = &mock.TextExtractor{
			ExtractFn: func(ctx context.Context, path string) (string, error) {
				return "", pdfassistant.Errorf(pdfassistant.EINTERNAL, "could not read PDF")
			},
		}

		_, err := s.RunIngestion(context.Background(), "https://example.com", nil)

		require.Error(t, err)
		assert.Equal(t, pdfassistant.StateEmpty, s.State())
	})

	t.Run("fails when extraction yields no usable text", func(t *testing.T) {
		t.Parallel()

		s := newWorkingSession()
		s.Extractor = &mock.TextExtractor{
			ExtractFn: func(ctx context.Context, path string) (string, error) {
				return "", nil
			},
		}

		_, err := s.RunIngestion(context.Background(), "https://example.com", nil)

		require.Error(t, err)
		assert.Equal(t, pdfassistant.EINVALID, pdfassistant.ErrorCode(err))
		assert.Equal(t, pdfassistant.StateEmpty, s.State())
	})

	t.Run("a failed re-ingestion discards the previous context", func(t *testing.T) {
		t.Parallel()

		s := newWorkingSession()

		_, err := s.RunIngestion(context.Background(), "https://example.com", nil)
		require.NoError(t, err)
		require.True(t, s.Ready())

		s.Discoverer = &mock.LinkDiscoverer{
			DiscoverFn: func(ctx context.Context, baseURL string) ([]string, error) {
				return nil, pdfassistant.Errorf(pdfassistant.EUNAVAILABLE, "page unreachable")
			},
		}

		_, err = s.RunIngestion(context.Background(), "https://example.com", nil)
		require.Error(t, err)

		assert.Equal(t, pdfassistant.StateEmpty, s.State())
		assert.Empty(t, s.ContextHash())
		assert.Equal(t, ingest.NotReadyAnswer, s.Ask(context.Background(), "anything?"))
	})

	t.Run("a successful re-ingestion replaces the context", func(t *testing.T) {
		t.Parallel()

		s := newWorkingSession()

		first, err := s.RunIngestion(context.Background(), "https://example.com", nil)
		require.NoError(t, err)

		s.Extractor = &mock.TextExtractor{
			ExtractFn: func(ctx context.Context, path string) (string, error) {
				return "completely different text", nil
			},
		}

		second, err := s.RunIngestion(context.Background(), "https://example.com", nil)
		require.NoError(t, err)

		assert.True(t, s.Ready())
		assert.NotEqual(t, first.ContextHash, second.ContextHash)
		assert.Equal(t, second.ContextHash, s.ContextHash())
	})

	t.Run("reports progress events", func(t *testing.T) {
		t.Parallel()

		var events []ingest.ProgressEvent
		progress := func(event ingest.ProgressEvent) {
			events = append(events, event)
		}

		s := newWorkingSession()
		_, err := s.RunIngestion(context.Background(), "https://example.com", progress)
		require.NoError(t, err)

		require.NotEmpty(t, events)
		assert.Equal(t, ingest.ProgressDiscovered, events[0].Type)
		assert.Equal(t, 2, events[0].Total)
		assert.Equal(t, ingest.ProgressFinished, events[len(events)-1].Type)
	})
}

func TestSession_Ask(t *testing.T) {
	t.Parallel()

	t.Run("returns the not-ready answer before any ingestion", func(t *testing.T) {
		t.Parallel()

		s := newWorkingSession()
		s.Asker = &mock.Asker{
			AnswerFn: func(ctx context.Context, contextText, question string) (string, error) {
				t.Fatal("the language model must not be called before ingestion")
				return "", nil
			},
		}

		answer := s.Ask(context.Background(), "When is the meeting?")

		assert.Equal(t, ingest.NotReadyAnswer, answer)
	})

	t.Run("answers with the active context once ready", func(t *testing.T) {
		t.Parallel()

		s := newWorkingSession()
		s.Asker = &mock.Asker{
			AnswerFn: func(ctx context.Context, contextText, question string) (string, error) {
				assert.Equal(t, "The meeting is at 3pm.", contextText)
				assert.Equal(t, "When is the meeting?", question)
				return "At 3pm.", nil
			},
		}

		_, err := s.RunIngestion(context.Background(), "https://example.com", nil)
		require.NoError(t, err)

		answer := s.Ask(context.Background(), "When is the meeting?")

		assert.Equal(t, "At 3pm.", answer)
		assert.Equal(t, pdfassistant.StateReady, s.State())
	})

	t.Run("converts a model failure into an error-shaped answer", func(t *testing.T) {
		t.Parallel()

		s := newWorkingSession()
		s.Asker = &mock.Asker{
			AnswerFn: func(ctx context.Context, contextText, question string) (string, error) {
				return "", pdfassistant.Errorf(pdfassistant.EUNAVAILABLE, "connection reset")
			},
		}

		_, err := s.RunIngestion(context.Background(), "https://example.com", nil)
		require.NoError(t, err)

		answer := s.Ask(context.Background(), "When is the meeting?")

		assert.True(t, strings.HasPrefix(answer, "Error: "), "got %q", answer)
		assert.Contains(t, answer, "connection reset")
		assert.Equal(t, pdfassistant.StateReady, s.State(), "a failed answer must not disturb the session")
	})

	t.Run("converts an empty model response into the fixed fallback", func(t *testing.T) {
		t.Parallel()

		s := newWorkingSession()
		s.Asker = &mock.Asker{
			AnswerFn: func(ctx context.Context, contextText, question string) (string, error) {
				return "", nil
			},
		}

		_, err := s.RunIngestion(context.Background(), "https://example.com", nil)
		require.NoError(t, err)

		answer := s.Ask(context.Background(), "When is the meeting?")

		assert.Equal(t, ingest.NoResponseAnswer, answer)
	})

	t.Run("multiple questions run against the same context", func(t *testing.T) {
		t.Parallel()

		var seen []string
		s := newWorkingSession()
		s.Asker = &mock.Asker{
			AnswerFn: func(ctx context.Context, contextText, question string) (string, error) {
				seen = append(seen, contextText)
				return "ok", nil
			},
		}

		_, err := s.RunIngestion(context.Background(), "https://example.com", nil)
		require.NoError(t, err)

		s.Ask(context.Background(), "first?")
		s.Ask(context.Background(), "second?")

		require.Len(t, seen, 2)
		assert.Equal(t, seen[0], seen[1])
	})
}
