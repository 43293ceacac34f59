package mock

import (
	"context"

	pdfassistant "github.com/Nityom/ai-pdf-assistant"
)

var _ pdfassistant.Asker = (*Asker)(nil)

// Asker is a mock implementation of pdfassistant.Asker.
type Asker struct {
	AnswerFn func(ctx context.Context, contextText, question string) (string, error)
}

func (a *Asker) Answer(ctx context.Context, contextText, question string) (string, error) {
	return a.AnswerFn(ctx, contextText, question)
}
