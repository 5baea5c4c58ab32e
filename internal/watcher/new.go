package watcher

import (
	"fmt"

	"github.com/fsnotify/fsnotify"

	"github.com/MedDash99/meeting-summarizer/internal/logger"
)

// New creates a new Watcher monitoring intakeDir for audio files. Arriving
// files are moved into workDir before the handler is invoked.
func New(intakeDir, workDir string, handler IntakeHandler, log logger.Logger) (Watcher, error) {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("create watcher: %w", err)
	}

	if err := fsw.Add(intakeDir); err != nil {
		fsw.Close()
		return nil, fmt.Errorf("add watch path: %w", err)
	}

	return &implWatcher{
		intakeDir: intakeDir,
		workDir:   workDir,
		handler:   handler,
		logger:    log,
		watcher:   fsw,
	}, nil
}
