package transcriber

import (
	"github.com/MedDash99/meeting-summarizer/internal/config"
	"github.com/MedDash99/meeting-summarizer/internal/logger"
	"github.com/MedDash99/meeting-summarizer/pkg/executor"
)

type implTranscriber struct {
	cfg      *config.Config
	executor executor.Executor
	cache    *Cache
	logger   logger.Logger
}

// New creates a new Transcriber instance
func New(cfg *config.Config, exec executor.Executor, cache *Cache, log logger.Logger) Transcriber {
	return &implTranscriber{
		cfg:      cfg,
		executor: exec,
		cache:    cache,
		logger:   log,
	}
}
