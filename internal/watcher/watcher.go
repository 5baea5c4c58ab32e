package watcher

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/MedDash99/meeting-summarizer/internal/logger"
)

// settleDelay gives the producer time to finish writing a file after the
// create event fires.
const settleDelay = 500 * time.Millisecond

type implWatcher struct {
	intakeDir string
	workDir   string
	handler   IntakeHandler
	logger    logger.Logger
	watcher   *fsnotify.Watcher
}

// Start monitors the intake directory until the context is cancelled.
// Each new audio file is moved into the work directory and handed to the
// intake handler; dispatch itself does not block since the handler only
// enqueues work.
func (w *implWatcher) Start(ctx context.Context) error {
	w.logger.Info(ctx, "Intake watcher started. Monitoring: %s", w.intakeDir)
	w.logger.Info(ctx, "Supported formats: .mp3, .wav, .m4a, .webm, .flac, .ogg")

	for {
		select {
		case <-ctx.Done():
			w.logger.Info(ctx, "Intake watcher stopped")
			return ctx.Err()

		case event, ok := <-w.watcher.Events:
			if !ok {
				return fmt.Errorf("watcher events channel closed")
			}

			if event.Op&fsnotify.Create != fsnotify.Create {
				continue
			}
			if !isAudioFile(event.Name) {
				w.logger.Debug(ctx, "Ignoring non-audio file: %s", event.Name)
				continue
			}

			w.logger.Info(ctx, "New audio detected: %s", event.Name)
			time.Sleep(settleDelay)

			workPath, err := w.claim(event.Name)
			if err != nil {
				w.logger.Error(ctx, "Failed to claim %s: %v", event.Name, err)
				continue
			}

			if err := w.handler(ctx, workPath); err != nil {
				w.logger.Error(ctx, "Failed to enqueue %s: %v", workPath, err)
				cleanupClaimed(ctx, w.logger, workPath)
			}

		case err, ok := <-w.watcher.Errors:
			if !ok {
				return fmt.Errorf("watcher errors channel closed")
			}
			w.logger.Error(ctx, "Watcher error: %v", err)
		}
	}
}

// Stop closes the file watcher
func (w *implWatcher) Stop() error {
	return w.watcher.Close()
}

// claim moves an intake file into the work directory so a second create
// event or a rescan cannot dispatch it twice.
func (w *implWatcher) claim(intakePath string) (string, error) {
	workPath := filepath.Join(w.workDir, filepath.Base(intakePath))
	if err := os.Rename(intakePath, workPath); err != nil {
		return "", fmt.Errorf("move to work dir: %w", err)
	}
	return workPath, nil
}

func cleanupClaimed(ctx context.Context, log logger.Logger, path string) {
	if err := os.Remove(path); err != nil {
		log.Warn(ctx, "Failed to remove claimed file %s: %v", path, err)
	}
}

func isAudioFile(path string) bool {
	ext := strings.ToLower(filepath.Ext(path))
	supportedFormats := []string{".mp3", ".wav", ".m4a", ".webm", ".flac", ".ogg"}

	for _, format := range supportedFormats {
		if ext == format {
			return true
		}
	}

	return false
}
