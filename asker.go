package pdfassistant

import "context"

// Asker answers a question against a fixed context of extracted text.
type Asker interface {
	// Answer sends the context and question to a hosted language model in
	// a single request and returns the model's response text. There is no
	// retry, no chunking of oversized contexts, and no conversation
	// memory across calls.
	Answer(ctx context.Context, contextText, question string) (string, error)
}
