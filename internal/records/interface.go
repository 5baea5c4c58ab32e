package records

import (
	"context"

	"github.com/MedDash99/meeting-summarizer/internal/domain"
)

// Store is the durable table covering each submission's full lifecycle.
type Store interface {
	Init(ctx context.Context) error
	Create(ctx context.Context, originalFilename, model string) (string, error)
	Update(ctx context.Context, id string, fields Fields) error
	Get(ctx context.Context, id string) (*domain.Record, error)
	List(ctx context.Context, limit, offset int) (*domain.RecordPage, error)
	Rename(ctx context.Context, id, displayName string) (bool, error)
	Delete(ctx context.Context, id string) (bool, error)
}

// Fields is a partial update: only non-nil members are written, so a
// transcript can be persisted independently of the summary.
type Fields struct {
	Status      *domain.RecordStatus
	Transcript  *string
	SummaryJSON *string
	Error       *string
}
