// Package changelog implements the changelog repository using PostgreSQL.
// It provides append-only operations for the glossary_changelog table:
// records are inserted and listed, never updated or deleted.
package changelog

import (
	"context"
	"encoding/json"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/heartmarshall/glossary-backend/internal/adapter/postgres"
	"github.com/heartmarshall/glossary-backend/internal/domain"
)

// Repo provides changelog persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
	sb   sq.StatementBuilderType
}

// New creates a new changelog repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{
		pool: pool,
		sb:   sq.StatementBuilder.PlaceholderFormat(sq.Dollar),
	}
}

const createRecordSQL = `
INSERT INTO glossary_changelog (id, entry_id, entry_title, action, old_data, new_data, created_at)
VALUES ($1, $2, $3, $4, $5, $6, $7)
RETURNING id, entry_id, entry_title, action, old_data, new_data, created_at`

// ---------------------------------------------------------------------------
// Write operations
// ---------------------------------------------------------------------------

// Create inserts a new changelog record and returns the persisted row.
func (r *Repo) Create(ctx context.Context, record domain.ChangelogRecord) (domain.ChangelogRecord, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	oldJSON, err := marshalSnapshot(record.OldData)
	if err != nil {
		return domain.ChangelogRecord{}, fmt.Errorf("changelog_record marshal old_data: %w", err)
	}
	newJSON, err := marshalSnapshot(record.NewData)
	if err != nil {
		return domain.ChangelogRecord{}, fmt.Errorf("changelog_record marshal new_data: %w", err)
	}

	row := querier.QueryRow(ctx, createRecordSQL,
		record.ID, record.EntryID, record.EntryTitle, record.Action.String(),
		oldJSON, newJSON, record.CreatedAt)

	created, err := scanRecord(row)
	if err != nil {
		return domain.ChangelogRecord{}, postgres.MapError(err, "changelog_record", record.ID)
	}

	return created, nil
}

// Append inserts a changelog record without returning it (fire-and-forget).
// Satisfies glossary.changelogRecorder.
func (r *Repo) Append(ctx context.Context, record domain.ChangelogRecord) error {
	_, err := r.Create(ctx, record)
	return err
}

// ---------------------------------------------------------------------------
// Read operations
// ---------------------------------------------------------------------------

// List returns changelog records ordered by created_at DESC (newest first).
// A non-nil entryID restricts the result to one entry's history.
// Returns an empty slice (not nil) when there are no records.
func (r *Repo) List(ctx context.Context, entryID *uuid.UUID) ([]domain.ChangelogRecord, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	builder := r.sb.
		Select("id", "entry_id", "entry_title", "action", "old_data", "new_data", "created_at").
		From("glossary_changelog").
		OrderBy("created_at DESC", "id DESC")

	if entryID != nil {
		builder = builder.Where(sq.Eq{"entry_id": *entryID})
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build changelog query: %w", err)
	}

	rows, err := querier.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list changelog_records: %w", err)
	}
	defer rows.Close()

	records := make([]domain.ChangelogRecord, 0)
	for rows.Next() {
		rec, err := scanRecord(rows)
		if err != nil {
			return nil, fmt.Errorf("list changelog_records: %w", err)
		}
		records = append(records, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list changelog_records: %w", err)
	}

	return records, nil
}

// CountByEntry returns the number of changelog records for one entry.
func (r *Repo) CountByEntry(ctx context.Context, entryID uuid.UUID) (int, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	query, args, err := r.sb.
		Select("COUNT(*)").
		From("glossary_changelog").
		Where(sq.Eq{"entry_id": entryID}).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("build changelog count query: %w", err)
	}

	var count int
	if err := querier.QueryRow(ctx, query, args...).Scan(&count); err != nil {
		return 0, fmt.Errorf("count changelog_records: %w", err)
	}

	return count, nil
}

// ---------------------------------------------------------------------------
// Scanning helpers
// ---------------------------------------------------------------------------

// scanRecord reads one changelog row. Works for both pgx.Row and pgx.Rows.
func scanRecord(row pgx.Row) (domain.ChangelogRecord, error) {
	var (
		rec     domain.ChangelogRecord
		action  string
		oldJSON []byte
		newJSON []byte
	)

	if err := row.Scan(&rec.ID, &rec.EntryID, &rec.EntryTitle, &action,
		&oldJSON, &newJSON, &rec.CreatedAt); err != nil {
		return domain.ChangelogRecord{}, err
	}

	rec.Action = domain.ChangeAction(action)

	oldData, err := unmarshalSnapshot(oldJSON)
	if err != nil {
		return domain.ChangelogRecord{}, fmt.Errorf("changelog_record %s: unmarshal old_data: %w", rec.ID, err)
	}
	newData, err := unmarshalSnapshot(newJSON)
	if err != nil {
		return domain.ChangelogRecord{}, fmt.Errorf("changelog_record %s: unmarshal new_data: %w", rec.ID, err)
	}

	rec.OldData = oldData
	rec.NewData = newData

	return rec, nil
}

// marshalSnapshot encodes a snapshot as JSONB. nil encodes as SQL NULL.
func marshalSnapshot(snap *domain.EntrySnapshot) ([]byte, error) {
	if snap == nil {
		return nil, nil
	}
	return json.Marshal(snap)
}

// unmarshalSnapshot decodes a JSONB column. NULL decodes as nil.
func unmarshalSnapshot(data []byte) (*domain.EntrySnapshot, error) {
	if len(data) == 0 {
		return nil, nil
	}
	var snap domain.EntrySnapshot
	if err := json.Unmarshal(data, &snap); err != nil {
		return nil, err
	}
	return &snap, nil
}
