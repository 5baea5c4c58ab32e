package records

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/MedDash99/meeting-summarizer/internal/logger"
)

type implStore struct {
	pool   *pgxpool.Pool
	logger logger.Logger
}

// New creates a Store backed by the given Postgres pool.
func New(pool *pgxpool.Pool, log logger.Logger) Store {
	return &implStore{
		pool:   pool,
		logger: log,
	}
}

// Init creates the transcripts table and its listing index.
func (s *implStore) Init(ctx context.Context) error {
	const ddl = `
		CREATE TABLE IF NOT EXISTS transcripts (
			id TEXT PRIMARY KEY,
			created_at TIMESTAMPTZ NOT NULL DEFAULT now(),
			original_filename TEXT NOT NULL,
			display_name TEXT NOT NULL,
			model TEXT NOT NULL,
			status TEXT NOT NULL DEFAULT 'processing',
			transcript TEXT,
			summary_json TEXT,
			error TEXT
		);
		CREATE INDEX IF NOT EXISTS idx_transcripts_created_at
			ON transcripts (created_at DESC);
	`
	if _, err := s.pool.Exec(ctx, ddl); err != nil {
		return fmt.Errorf("init schema: %w", err)
	}
	return nil
}
