// Package entry implements the glossary entry repository using PostgreSQL.
// It provides CRUD operations against the glossary_entries table.
package entry

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/heartmarshall/glossary-backend/internal/adapter/postgres"
	"github.com/heartmarshall/glossary-backend/internal/domain"
)

// Repo provides glossary entry persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new entry repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

const entryColumns = `id, title, description, rules, formula, created_at, updated_at`

const listEntriesSQL = `
SELECT ` + entryColumns + `
FROM glossary_entries
ORDER BY created_at ASC, id ASC`

const getEntryByIDSQL = `
SELECT ` + entryColumns + `
FROM glossary_entries
WHERE id = $1`

const createEntrySQL = `
INSERT INTO glossary_entries (id, title, description, rules, formula, created_at, updated_at)
VALUES ($1, $2, $3, $4, $5, $6, $7)
RETURNING ` + entryColumns

const updateEntrySQL = `
UPDATE glossary_entries
SET title = $2, description = $3, rules = $4, formula = $5, updated_at = $6
WHERE id = $1
RETURNING ` + entryColumns

const deleteEntrySQL = `DELETE FROM glossary_entries WHERE id = $1`

const countEntriesSQL = `SELECT COUNT(*) FROM glossary_entries`

// ---------------------------------------------------------------------------
// Read operations
// ---------------------------------------------------------------------------

// List returns all entries ordered by creation time ascending.
// Returns an empty slice (not nil) when the table is empty.
func (r *Repo) List(ctx context.Context) ([]*domain.Entry, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	rows, err := querier.Query(ctx, listEntriesSQL)
	if err != nil {
		return nil, fmt.Errorf("list entries: %w", err)
	}
	defer rows.Close()

	entries := make([]*domain.Entry, 0)
	for rows.Next() {
		e, err := scanEntry(rows)
		if err != nil {
			return nil, fmt.Errorf("list entries: %w", err)
		}
		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list entries: %w", err)
	}

	return entries, nil
}

// GetByID returns an entry by primary key.
// Returns domain.ErrNotFound if the entry does not exist.
func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Entry, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	row := querier.QueryRow(ctx, getEntryByIDSQL, id)
	e, err := scanEntry(row)
	if err != nil {
		return nil, postgres.MapError(err, "entry", id)
	}

	return e, nil
}

// Count returns the total number of entries.
func (r *Repo) Count(ctx context.Context) (int, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	var count int
	if err := querier.QueryRow(ctx, countEntriesSQL).Scan(&count); err != nil {
		return 0, fmt.Errorf("count entries: %w", err)
	}

	return count, nil
}

// ---------------------------------------------------------------------------
// Write operations
// ---------------------------------------------------------------------------

// Create inserts a new entry and returns the persisted domain.Entry.
func (r *Repo) Create(ctx context.Context, e *domain.Entry) (*domain.Entry, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	rulesJSON, err := marshalRules(e.Rules)
	if err != nil {
		return nil, fmt.Errorf("entry %s: marshal rules: %w", e.ID, err)
	}

	row := querier.QueryRow(ctx, createEntrySQL,
		e.ID, e.Title, e.Description, rulesJSON, e.Formula, e.CreatedAt, e.UpdatedAt)

	created, err := scanEntry(row)
	if err != nil {
		return nil, postgres.MapError(err, "entry", e.ID)
	}

	return created, nil
}

// Update replaces all mutable fields of an entry and returns the updated row.
// Returns domain.ErrNotFound if the entry does not exist.
func (r *Repo) Update(ctx context.Context, id uuid.UUID, params domain.EntryUpdateParams) (*domain.Entry, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	rulesJSON, err := marshalRules(params.Rules)
	if err != nil {
		return nil, fmt.Errorf("entry %s: marshal rules: %w", id, err)
	}

	row := querier.QueryRow(ctx, updateEntrySQL,
		id, params.Title, params.Description, rulesJSON, params.Formula, params.UpdatedAt)

	updated, err := scanEntry(row)
	if err != nil {
		return nil, postgres.MapError(err, "entry", id)
	}

	return updated, nil
}

// Delete removes an entry by id. Idempotent at the store level: deleting a
// nonexistent id is a no-op. Returns true if a row was actually removed.
func (r *Repo) Delete(ctx context.Context, id uuid.UUID) (bool, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	tag, err := querier.Exec(ctx, deleteEntrySQL, id)
	if err != nil {
		return false, postgres.MapError(err, "entry", id)
	}

	return tag.RowsAffected() > 0, nil
}

// ---------------------------------------------------------------------------
// Scanning helpers
// ---------------------------------------------------------------------------

// scanEntry reads one entry row. Works for both pgx.Row and pgx.Rows.
func scanEntry(row pgx.Row) (*domain.Entry, error) {
	var (
		e         domain.Entry
		rulesJSON []byte
		formula   *string
		createdAt time.Time
		updatedAt time.Time
	)

	if err := row.Scan(&e.ID, &e.Title, &e.Description, &rulesJSON, &formula, &createdAt, &updatedAt); err != nil {
		return nil, err
	}

	rules := make([]string, 0)
	if len(rulesJSON) > 0 {
		if err := json.Unmarshal(rulesJSON, &rules); err != nil {
			return nil, fmt.Errorf("entry %s: unmarshal rules: %w", e.ID, err)
		}
	}

	e.Rules = rules
	e.Formula = formula
	e.CreatedAt = createdAt
	e.UpdatedAt = updatedAt

	return &e, nil
}

// marshalRules encodes the rules slice as JSONB. nil encodes as [].
func marshalRules(rules []string) ([]byte, error) {
	if rules == nil {
		rules = []string{}
	}
	return json.Marshal(rules)
}
