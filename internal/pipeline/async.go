package pipeline

import (
	"context"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"

	"github.com/MedDash99/meeting-summarizer/internal/domain"
	"github.com/MedDash99/meeting-summarizer/internal/transcriber"
)

// SubmitAsync creates the job and record entries, then schedules the run on
// the bounded worker pool. Both ids are returned so a caller can fall back
// to the durable record if the job entry is lost.
func (p *implPipeline) SubmitAsync(ctx context.Context, audioPath, model string, summarize bool) (domain.JobAccepted, error) {
	if !transcriber.IsValidModel(model) {
		return domain.JobAccepted{}, domain.E(domain.KindValidation, "invalid model %q, available: %s",
			model, strings.Join(transcriber.AvailableModels(), ", "))
	}

	recordID, err := p.records.Create(ctx, filepath.Base(audioPath), model)
	if err != nil {
		return domain.JobAccepted{}, err
	}

	jobID := uuid.New().String()
	p.jobs.Create(jobID)

	p.wg.Add(1)
	go p.runAsync(jobID, recordID, audioPath, model, summarize)

	p.logger.Info(ctx, "Accepted async submission: job=%s record=%s file=%s", jobID, recordID, audioPath)
	return domain.JobAccepted{JobID: jobID, RecordID: recordID}, nil
}

// runAsync executes one background run. The run is detached from the
// submitter's context: once transcription starts it proceeds to a terminal
// state, and the submitted file is removed afterwards.
func (p *implPipeline) runAsync(jobID, recordID, audioPath, model string, summarize bool) {
	defer p.wg.Done()

	ctx := context.Background()

	if err := p.sem.acquire(ctx); err != nil {
		p.jobs.SetError(jobID, err.Error())
		p.failRecord(ctx, recordID, err)
		return
	}
	defer p.sem.release()
	defer p.cleanupUpload(ctx, audioPath)

	summary, err := p.run(ctx, recordID, audioPath, model, summarize)
	if err != nil {
		p.jobs.SetError(jobID, err.Error())
		return
	}
	p.jobs.SetResult(jobID, summary)
}

// Poll returns the job state for an async submission.
func (p *implPipeline) Poll(jobID string) (domain.JobState, error) {
	state, ok := p.jobs.Get(jobID)
	if !ok {
		return domain.JobState{}, domain.E(domain.KindNotFound, "job %s not found", jobID)
	}
	return state, nil
}

// Wait blocks until all background runs have finished.
func (p *implPipeline) Wait() {
	p.wg.Wait()
}

// cleanupUpload removes the submitted audio file once a run owns no further
// use for it.
func (p *implPipeline) cleanupUpload(ctx context.Context, audioPath string) {
	if err := os.Remove(audioPath); err != nil {
		p.logger.Warn(ctx, "Failed to remove submitted file %s: %v", audioPath, err)
	} else {
		p.logger.Debug(ctx, "Removed submitted file: %s", audioPath)
	}
}
