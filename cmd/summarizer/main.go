package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"runtime"
	"syscall"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/MedDash99/meeting-summarizer/internal/config"
	"github.com/MedDash99/meeting-summarizer/internal/jobs"
	"github.com/MedDash99/meeting-summarizer/internal/logger"
	"github.com/MedDash99/meeting-summarizer/internal/pipeline"
	"github.com/MedDash99/meeting-summarizer/internal/records"
	"github.com/MedDash99/meeting-summarizer/internal/summarizer"
	"github.com/MedDash99/meeting-summarizer/internal/transcriber"
	"github.com/MedDash99/meeting-summarizer/internal/watcher"
	"github.com/MedDash99/meeting-summarizer/pkg/executor"
)

func main() {
	ctx := context.Background()

	// Load configuration
	cfg, err := config.Load("config.yaml")
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		os.Exit(1)
	}

	// Initialize logger
	log := logger.New(cfg.Logging.Level)
	log.Info(ctx, "========================================")
	log.Info(ctx, "Meeting Summarizer Pipeline")
	log.Info(ctx, "========================================")
	log.Info(ctx, "System: %s/%s", runtime.GOOS, runtime.GOARCH)
	log.Info(ctx, "CPU Cores: %d", runtime.NumCPU())
	log.Info(ctx, "Max Workers: %d", cfg.Performance.MaxWorkers)
	log.Info(ctx, "Configuration loaded successfully")

	// Verify required directories exist
	if err := ensureDirectories(cfg); err != nil {
		log.Error(ctx, "Failed to create directories: %v", err)
		os.Exit(1)
	}

	// Connect to the record store
	pool, err := pgxpool.New(ctx, cfg.Database.URL)
	if err != nil {
		log.Error(ctx, "Failed to connect to database: %v", err)
		os.Exit(1)
	}
	defer pool.Close()

	recordStore := records.New(pool, log)
	if err := recordStore.Init(ctx); err != nil {
		log.Error(ctx, "Failed to initialize record store: %v", err)
		os.Exit(1)
	}

	// Initialize dependencies
	exec := executor.New()
	cache := transcriber.NewCache(cfg.Whisper.ModelDir, log)
	tr := transcriber.New(cfg, exec, cache, log)
	sum := summarizer.New(cfg.Gemini.APIKey, cfg.Gemini.Model, log)
	jobStore := jobs.NewStore()

	p := pipeline.New(cfg, tr, sum, jobStore, recordStore, log)

	// Files dropped into the intake directory become async jobs with the
	// default model and summarization enabled.
	handleIntake := func(ctx context.Context, audioPath string) error {
		accepted, err := p.SubmitAsync(ctx, audioPath, cfg.Whisper.DefaultModel, true)
		if err != nil {
			return err
		}
		log.Info(ctx, "Accepted %s (job %s, record %s)", audioPath, accepted.JobID, accepted.RecordID)
		return nil
	}

	w, err := watcher.New(cfg.Paths.Intake, cfg.Paths.Work, handleIntake, log)
	if err != nil {
		log.Error(ctx, "Failed to create watcher: %v", err)
		os.Exit(1)
	}
	defer w.Stop()

	// Create context with cancellation
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	// Setup graceful shutdown
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	// Start watcher in goroutine
	errChan := make(chan error, 1)
	go func() {
		if err := w.Start(ctx); err != nil && err != context.Canceled {
			errChan <- err
		}
	}()

	log.Info(ctx, "========================================")
	log.Info(ctx, "Meeting Summarizer is ready!")
	log.Info(ctx, "Monitoring: %s", cfg.Paths.Intake)
	log.Info(ctx, "Work dir: %s", cfg.Paths.Work)
	log.Info(ctx, "Default model: %s", cfg.Whisper.DefaultModel)
	log.Info(ctx, "Press Ctrl+C to stop")
	log.Info(ctx, "========================================")

	// Wait for shutdown signal or error
	select {
	case <-sigChan:
		log.Info(ctx, "Shutdown signal received")
	case err := <-errChan:
		log.Error(ctx, "Watcher error: %v", err)
	}

	// Graceful shutdown: stop accepting files, then drain running jobs.
	log.Info(ctx, "Shutting down gracefully...")
	cancel()
	p.Wait()

	log.Info(ctx, "Meeting Summarizer stopped")
}

// ensureDirectories creates required directories if they don't exist
func ensureDirectories(cfg *config.Config) error {
	dirs := []string{
		cfg.Paths.Intake,
		cfg.Paths.Work,
		cfg.Whisper.ModelDir,
	}

	for _, dir := range dirs {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("create directory %s: %w", dir, err)
		}
	}

	return nil
}
