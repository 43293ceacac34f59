// Package gemini provides question answering using the Google Gemini API.
package gemini

import (
	"context"
	"fmt"

	pdfassistant "github.com/Nityom/ai-pdf-assistant"
	"google.golang.org/genai"
)

// DefaultModel is the model used when none is configured.
const DefaultModel = "gemini-1.5-flash"

// Ensure Asker implements pdfassistant.Asker at compile time.
var _ pdfassistant.Asker = (*Asker)(nil)

// Asker answers questions over extracted document text using Gemini.
type Asker struct {
	client *genai.Client
	model  string
}

// NewAsker creates a new Asker. An empty model selects DefaultModel.
func NewAsker(client *genai.Client, model string) *Asker {
	if model == "" {
		model = DefaultModel
	}
	return &Asker{client: client, model: model}
}

// Answer sends a single request embedding the context and question in the
// fixed prompt template and returns the model's response text. Oversized
// contexts are not chunked or truncated; the provider's rejection comes
// back as an error. There is no retry. A response with no text returns an
// empty string and no error.
func (a *Asker) Answer(ctx context.Context, contextText, question string) (string, error) {
	if question == "" {
		return "", pdfassistant.Errorf(pdfassistant.EINVALID, "question required")
	}

	prompt := BuildPrompt(contextText, question)

	result, err := a.client.Models.GenerateContent(ctx, a.model,
		[]*genai.Content{{
			Parts: []*genai.Part{{Text: prompt}},
		}},
		nil,
	)
	if err != nil {
		return "", pdfassistant.Errorf(pdfassistant.EUNAVAILABLE, "%v", err)
	}
	if result == nil {
		return "", nil
	}

	return result.Text(), nil
}

// BuildPrompt embeds the context and question in the fixed prompt template.
func BuildPrompt(contextText, question string) string {
	return fmt.Sprintf("Context: %s\n\nQuestion: %s", contextText, question)
}
