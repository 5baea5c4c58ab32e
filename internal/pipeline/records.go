package pipeline

import (
	"context"

	"github.com/MedDash99/meeting-summarizer/internal/domain"
)

// ListRecords returns one page of records, newest first.
func (p *implPipeline) ListRecords(ctx context.Context, limit, offset int) (*domain.RecordPage, error) {
	if limit <= 0 {
		limit = 20
	}
	if offset < 0 {
		offset = 0
	}
	return p.records.List(ctx, limit, offset)
}

// GetRecord returns the full record, summary payload included.
func (p *implPipeline) GetRecord(ctx context.Context, id string) (*domain.Record, error) {
	return p.records.Get(ctx, id)
}

// RenameRecord updates only the display name.
func (p *implPipeline) RenameRecord(ctx context.Context, id, displayName string) (bool, error) {
	if displayName == "" {
		return false, domain.E(domain.KindValidation, "display name must not be empty")
	}
	return p.records.Rename(ctx, id, displayName)
}

// DeleteRecord removes a record permanently.
func (p *implPipeline) DeleteRecord(ctx context.Context, id string) (bool, error) {
	return p.records.Delete(ctx, id)
}
