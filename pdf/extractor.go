// Package pdf provides PDF text extraction using the ledongthuc/pdf library.
package pdf

import (
	"context"
	"strings"

	pdfassistant "github.com/Nityom/ai-pdf-assistant"
	"github.com/ledongthuc/pdf"
)

// Ensure Extractor implements pdfassistant.TextExtractor at compile time.
var _ pdfassistant.TextExtractor = (*Extractor)(nil)

// Extractor reads PDF files and produces their plain-text content.
type Extractor struct{}

// NewExtractor creates a new Extractor.
func NewExtractor() *Extractor {
	return &Extractor{}
}

// Extract concatenates the plain text of every page in page order and
// trims the result. Pages that yield no text are skipped, so an
// image-only document extracts to an empty string rather than an error.
// A document that cannot be opened or decoded is an error.
func (e *Extractor) Extract(ctx context.Context, path string) (string, error) {
	f, r, err := pdf.Open(path)
	if err != nil {
		return "", pdfassistant.Errorf(pdfassistant.EINTERNAL, "could not read PDF %s: %v", path, err)
	}
	defer f.Close()

	var sb strings.Builder
	for i := 1; i <= r.NumPage(); i++ {
		if err := ctx.Err(); err != nil {
			return "", err
		}

		page := r.Page(i)
		if page.V.IsNull() {
			continue
		}
		text, err := page.GetPlainText(nil)
		if err != nil {
			continue
		}
		sb.WriteString(text)
		sb.WriteString("\n")
	}

	return strings.TrimSpace(sb.String()), nil
}
