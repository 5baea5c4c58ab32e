package summarizer

import (
	"context"

	"github.com/MedDash99/meeting-summarizer/internal/domain"
)

// Summarizer turns a transcript into a structured meeting summary via an
// external LLM.
type Summarizer interface {
	Summarize(ctx context.Context, transcript string) (*domain.MeetingSummary, error)
}
