package pipeline

import (
	"sync"

	"github.com/MedDash99/meeting-summarizer/internal/config"
	"github.com/MedDash99/meeting-summarizer/internal/jobs"
	"github.com/MedDash99/meeting-summarizer/internal/logger"
	"github.com/MedDash99/meeting-summarizer/internal/records"
	"github.com/MedDash99/meeting-summarizer/internal/summarizer"
	"github.com/MedDash99/meeting-summarizer/internal/transcriber"
)

type implPipeline struct {
	cfg         *config.Config
	transcriber transcriber.Transcriber
	summarizer  summarizer.Summarizer
	jobs        *jobs.Store
	records     records.Store
	logger      logger.Logger

	// sem bounds concurrent runs across both entry modes so transcription
	// load never starves unrelated work; wg tracks background runs so
	// shutdown can drain them.
	sem *semaphore
	wg  sync.WaitGroup
}

// New creates a new Pipeline instance
func New(cfg *config.Config, tr transcriber.Transcriber, sum summarizer.Summarizer,
	jobStore *jobs.Store, recordStore records.Store, log logger.Logger) Pipeline {
	return &implPipeline{
		cfg:         cfg,
		transcriber: tr,
		summarizer:  sum,
		jobs:        jobStore,
		records:     recordStore,
		logger:      log,
		sem:         newSemaphore(cfg.Performance.MaxWorkers),
	}
}
