package pipeline

import (
	"context"
	"encoding/json"
	"path/filepath"
	"strings"
	"time"

	"github.com/MedDash99/meeting-summarizer/internal/domain"
	"github.com/MedDash99/meeting-summarizer/internal/records"
	"github.com/MedDash99/meeting-summarizer/internal/transcriber"
)

// transcriptOnlyTitle is the placeholder title used when no summarization
// was requested or when it failed after a successful transcription.
const transcriptOnlyTitle = "Transcription"

// RunSync executes the full pipeline while the caller waits.
func (p *implPipeline) RunSync(ctx context.Context, audioPath, model string, summarize bool) (*domain.MeetingSummary, error) {
	if !transcriber.IsValidModel(model) {
		return nil, domain.E(domain.KindValidation, "invalid model %q, available: %s",
			model, strings.Join(transcriber.AvailableModels(), ", "))
	}

	if err := p.sem.acquire(ctx); err != nil {
		return nil, err
	}
	defer p.sem.release()

	recordID, err := p.records.Create(ctx, filepath.Base(audioPath), model)
	if err != nil {
		return nil, err
	}

	return p.run(ctx, recordID, audioPath, model, summarize)
}

// run is the step sequence shared by the sync and async modes: transcribe,
// persist the transcript, optionally summarize, persist the outcome.
// Transcription always reaches a terminal result before summarization
// starts, and record updates are applied in that same order.
func (p *implPipeline) run(ctx context.Context, recordID, audioPath, model string, summarize bool) (*domain.MeetingSummary, error) {
	startTime := time.Now()
	p.logger.Info(ctx, "Pipeline run started: record=%s model=%s summarize=%v", recordID, model, summarize)

	transcript, err := p.transcriber.Transcribe(ctx, audioPath, model)
	if err != nil {
		p.failRecord(ctx, recordID, err)
		return nil, err
	}

	// The transcript is persisted before summarization is attempted, on
	// every path, so a later summarization failure never discards it.
	if err := p.records.Update(ctx, recordID, records.Fields{Transcript: &transcript}); err != nil {
		return nil, err
	}

	result := &domain.MeetingSummary{Title: transcriptOnlyTitle, Transcript: transcript}

	if summarize {
		summary, err := p.summarizer.Summarize(ctx, transcript)
		if err != nil {
			p.logger.Error(ctx, "Summarization failed for record %s (%s): %v",
				recordID, domain.KindOf(err), err)
			p.failRecord(ctx, recordID, err)
			// Partial success: the transcript survived and is returned
			// alongside the tagged summarization error.
			return result, err
		}
		result = summary
	}

	fields := records.Fields{Status: statusPtr(domain.RecordStatusCompleted)}
	if summarize {
		payload, err := json.Marshal(result)
		if err != nil {
			p.failRecord(ctx, recordID, err)
			return nil, domain.WrapErr(domain.KindPersistence, err, "encode summary")
		}
		fields.SummaryJSON = strPtr(string(payload))
	}
	if err := p.records.Update(ctx, recordID, fields); err != nil {
		return nil, err
	}

	p.logger.Info(ctx, "Pipeline run completed: record=%s in %s", recordID, time.Since(startTime))
	return result, nil
}

// Resummarize re-runs the summarization stage against the stored
// transcript. The job store is bypassed entirely.
func (p *implPipeline) Resummarize(ctx context.Context, recordID string) (*domain.MeetingSummary, error) {
	rec, err := p.records.Get(ctx, recordID)
	if err != nil {
		return nil, err
	}

	if rec.Transcript == nil || strings.TrimSpace(*rec.Transcript) == "" {
		return nil, domain.E(domain.KindValidation, "record %s has no transcript to summarize", recordID)
	}

	summary, err := p.summarizer.Summarize(ctx, *rec.Transcript)
	if err != nil {
		return nil, err
	}

	payload, err := json.Marshal(summary)
	if err != nil {
		return nil, domain.WrapErr(domain.KindPersistence, err, "encode summary")
	}

	fields := records.Fields{
		Status:      statusPtr(domain.RecordStatusCompleted),
		SummaryJSON: strPtr(string(payload)),
	}
	if err := p.records.Update(ctx, recordID, fields); err != nil {
		return nil, err
	}

	p.logger.Info(ctx, "Record %s re-summarized", recordID)
	return summary, nil
}

// failRecord marks the record terminal with the failure message. A store
// failure here is logged; the original error still reaches the caller.
func (p *implPipeline) failRecord(ctx context.Context, recordID string, cause error) {
	fields := records.Fields{
		Status: statusPtr(domain.RecordStatusError),
		Error:  strPtr(cause.Error()),
	}
	if err := p.records.Update(ctx, recordID, fields); err != nil {
		p.logger.Error(ctx, "Failed to mark record %s as errored: %v", recordID, err)
	}
}

func strPtr(s string) *string { return &s }

func statusPtr(s domain.RecordStatus) *domain.RecordStatus { return &s }
