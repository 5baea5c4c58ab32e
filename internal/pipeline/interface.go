package pipeline

import (
	"context"

	"github.com/MedDash99/meeting-summarizer/internal/domain"
)

// Pipeline orchestrates transcription, summarization and persistence for
// every entry mode and exposes the record surface.
type Pipeline interface {
	// RunSync executes one pipeline run while the caller waits. When
	// summarization alone fails, the returned summary still carries the
	// persisted transcript alongside the tagged error, so partial success
	// stays distinguishable from a full failure.
	RunSync(ctx context.Context, audioPath, model string, summarize bool) (*domain.MeetingSummary, error)

	// SubmitAsync schedules the same run in the background and returns the
	// ids to poll (ephemeral) and reconcile with (durable). The pipeline
	// takes ownership of the audio file and removes it when the run ends.
	SubmitAsync(ctx context.Context, audioPath, model string, summarize bool) (domain.JobAccepted, error)

	// Poll returns the current job state for an async submission.
	Poll(jobID string) (domain.JobState, error)

	// Resummarize re-runs only the summarization stage against a record's
	// stored transcript.
	Resummarize(ctx context.Context, recordID string) (*domain.MeetingSummary, error)

	ListRecords(ctx context.Context, limit, offset int) (*domain.RecordPage, error)
	GetRecord(ctx context.Context, id string) (*domain.Record, error)
	RenameRecord(ctx context.Context, id, displayName string) (bool, error)
	DeleteRecord(ctx context.Context, id string) (bool, error)

	// Wait blocks until all background runs have reached a terminal state.
	Wait()
}
