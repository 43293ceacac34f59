package gemini_test

import (
	"context"
	"testing"

	pdfassistant "github.com/Nityom/ai-pdf-assistant"
	"github.com/Nityom/ai-pdf-assistant/gemini"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildPrompt(t *testing.T) {
	t.Parallel()

	prompt := gemini.BuildPrompt("The meeting is at 3pm.", "When is the meeting?")

	assert.Equal(t, "Context: The meeting is at 3pm.\n\nQuestion: When is the meeting?", prompt)
}

func TestAsker_Answer_ReturnsErrorWhenQuestionEmpty(t *testing.T) {
	t.Parallel()

	asker := gemini.NewAsker(nil, "") // nil client ok for this test

	_, err := asker.Answer(context.Background(), "some context", "")

	require.Error(t, err)
	assert.Equal(t, pdfassistant.EINVALID, pdfassistant.ErrorCode(err))
	assert.Contains(t, pdfassistant.ErrorMessage(err), "question required")
}
