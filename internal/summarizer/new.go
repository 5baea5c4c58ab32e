package summarizer

import (
	"context"

	"github.com/MedDash99/meeting-summarizer/internal/logger"
)

type implSummarizer struct {
	apiKey string
	model  string
	logger logger.Logger

	// generate performs the provider call and returns the raw response text.
	// Replaceable in tests to exercise the parse paths offline.
	generate func(ctx context.Context, transcript string) (string, error)
}

// New creates a Summarizer backed by the Gemini structured-output API.
func New(apiKey, model string, log logger.Logger) Summarizer {
	s := &implSummarizer{
		apiKey: apiKey,
		model:  model,
		logger: log,
	}
	s.generate = s.callGemini
	return s
}
