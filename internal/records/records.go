package records

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/MedDash99/meeting-summarizer/internal/domain"
)

// Create inserts a new record in processing state. The display name
// defaults to the original filename.
func (s *implStore) Create(ctx context.Context, originalFilename, model string) (string, error) {
	id := uuid.New().String()

	const sql = `
		INSERT INTO transcripts (id, original_filename, display_name, model, status)
		VALUES ($1, $2, $3, $4, $5)
	`
	_, err := s.pool.Exec(ctx, sql, id, originalFilename, originalFilename, model, domain.RecordStatusProcessing)
	if err != nil {
		return "", domain.WrapErr(domain.KindPersistence, err, "create record")
	}

	s.logger.Debug(ctx, "Record created: %s (%s)", id, originalFilename)
	return id, nil
}

// Update merges only the supplied fields, leaving all others untouched.
func (s *implStore) Update(ctx context.Context, id string, fields Fields) error {
	sql, args, ok := buildUpdate(id, fields)
	if !ok {
		return domain.E(domain.KindValidation, "update with no fields")
	}

	tag, err := s.pool.Exec(ctx, sql, args...)
	if err != nil {
		return domain.WrapErr(domain.KindPersistence, err, "update record %s", id)
	}
	if tag.RowsAffected() == 0 {
		return domain.E(domain.KindNotFound, "record %s not found", id)
	}
	return nil
}

// buildUpdate assembles a partial UPDATE statement from the non-nil fields.
// Returns false when no field was supplied.
func buildUpdate(id string, fields Fields) (string, []interface{}, bool) {
	var sets []string
	var args []interface{}

	add := func(column string, value interface{}) {
		args = append(args, value)
		sets = append(sets, fmt.Sprintf("%s = $%d", column, len(args)))
	}

	if fields.Status != nil {
		add("status", *fields.Status)
	}
	if fields.Transcript != nil {
		add("transcript", *fields.Transcript)
	}
	if fields.SummaryJSON != nil {
		add("summary_json", *fields.SummaryJSON)
	}
	if fields.Error != nil {
		add("error", *fields.Error)
	}

	if len(sets) == 0 {
		return "", nil, false
	}

	args = append(args, id)
	sql := fmt.Sprintf("UPDATE transcripts SET %s WHERE id = $%d", strings.Join(sets, ", "), len(args))
	return sql, args, true
}

// Get returns the full record, or a not_found error.
func (s *implStore) Get(ctx context.Context, id string) (*domain.Record, error) {
	const sql = `
		SELECT id, created_at, original_filename, display_name, model, status,
		       transcript, summary_json, error
		FROM transcripts
		WHERE id = $1
	`

	var rec domain.Record
	err := s.pool.QueryRow(ctx, sql, id).Scan(
		&rec.ID, &rec.CreatedAt, &rec.OriginalFilename, &rec.DisplayName,
		&rec.Model, &rec.Status, &rec.Transcript, &rec.SummaryJSON, &rec.Error,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, domain.E(domain.KindNotFound, "record %s not found", id)
	}
	if err != nil {
		return nil, domain.WrapErr(domain.KindPersistence, err, "get record %s", id)
	}
	return &rec, nil
}

// List returns one page of records, newest first, plus the total count.
func (s *implStore) List(ctx context.Context, limit, offset int) (*domain.RecordPage, error) {
	const sql = `
		SELECT id, created_at, original_filename, display_name, model, status, error
		FROM transcripts
		ORDER BY created_at DESC
		LIMIT $1 OFFSET $2
	`

	rows, err := s.pool.Query(ctx, sql, limit, offset)
	if err != nil {
		return nil, domain.WrapErr(domain.KindPersistence, err, "list records")
	}
	defer rows.Close()

	items := make([]domain.RecordListItem, 0, limit)
	for rows.Next() {
		var item domain.RecordListItem
		if err := rows.Scan(
			&item.ID, &item.CreatedAt, &item.OriginalFilename,
			&item.DisplayName, &item.Model, &item.Status, &item.Error,
		); err != nil {
			return nil, domain.WrapErr(domain.KindPersistence, err, "scan record row")
		}
		items = append(items, item)
	}
	if err := rows.Err(); err != nil {
		return nil, domain.WrapErr(domain.KindPersistence, err, "iterate record rows")
	}

	var total int
	if err := s.pool.QueryRow(ctx, "SELECT COUNT(*) FROM transcripts").Scan(&total); err != nil {
		return nil, domain.WrapErr(domain.KindPersistence, err, "count records")
	}

	return &domain.RecordPage{
		Items:  items,
		Total:  total,
		Limit:  limit,
		Offset: offset,
	}, nil
}

// Rename updates the display name. Returns false if the id is unknown.
func (s *implStore) Rename(ctx context.Context, id, displayName string) (bool, error) {
	tag, err := s.pool.Exec(ctx,
		"UPDATE transcripts SET display_name = $1 WHERE id = $2", displayName, id)
	if err != nil {
		return false, domain.WrapErr(domain.KindPersistence, err, "rename record %s", id)
	}
	return tag.RowsAffected() > 0, nil
}

// Delete removes the record permanently. Returns false if the id is unknown.
func (s *implStore) Delete(ctx context.Context, id string) (bool, error) {
	tag, err := s.pool.Exec(ctx, "DELETE FROM transcripts WHERE id = $1", id)
	if err != nil {
		return false, domain.WrapErr(domain.KindPersistence, err, "delete record %s", id)
	}
	return tag.RowsAffected() > 0, nil
}
