package testhelper

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/heartmarshall/glossary-backend/internal/domain"
)

// uniqueSuffix returns a short unique string for generating non-conflicting test data.
func uniqueSuffix() string {
	return uuid.New().String()[:8]
}

// SeedEntry inserts a glossary entry with the given title and returns it.
// Rules and formula are filled with representative values.
func SeedEntry(t *testing.T, pool *pgxpool.Pool, title string) domain.Entry {
	t.Helper()
	ctx := context.Background()

	now := time.Now().UTC().Truncate(time.Microsecond)
	formula := "count(events) / duration"
	entry := domain.Entry{
		ID:          uuid.New(),
		Title:       title,
		Description: "Seeded description " + uniqueSuffix(),
		Rules:       []string{"Must be >= 0", "Measured per session"},
		Formula:     &formula,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	rulesJSON, err := json.Marshal(entry.Rules)
	if err != nil {
		t.Fatalf("testhelper: SeedEntry marshal rules: %v", err)
	}

	_, err = pool.Exec(ctx,
		`INSERT INTO glossary_entries (id, title, description, rules, formula, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		entry.ID, entry.Title, entry.Description, rulesJSON, entry.Formula, entry.CreatedAt, entry.UpdatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedEntry insert: %v", err)
	}

	return entry
}

// SeedChangelogRecord inserts a changelog record for the given entry.
// createdAt lets callers control ordering in listing tests.
func SeedChangelogRecord(t *testing.T, pool *pgxpool.Pool, entry domain.Entry, action domain.ChangeAction, createdAt time.Time) domain.ChangelogRecord {
	t.Helper()
	ctx := context.Background()

	record := domain.ChangelogRecord{
		ID:         uuid.New(),
		EntryID:    entry.ID,
		EntryTitle: entry.Title,
		Action:     action,
		CreatedAt:  createdAt,
	}

	snap := entry.Snapshot()
	switch action {
	case domain.ChangeActionCreate:
		record.NewData = snap
	case domain.ChangeActionUpdate:
		record.OldData = snap
		record.NewData = snap
	case domain.ChangeActionDelete:
		record.OldData = snap
	}

	var oldJSON, newJSON []byte
	var err error
	if record.OldData != nil {
		if oldJSON, err = json.Marshal(record.OldData); err != nil {
			t.Fatalf("testhelper: SeedChangelogRecord marshal old_data: %v", err)
		}
	}
	if record.NewData != nil {
		if newJSON, err = json.Marshal(record.NewData); err != nil {
			t.Fatalf("testhelper: SeedChangelogRecord marshal new_data: %v", err)
		}
	}

	_, err = pool.Exec(ctx,
		`INSERT INTO glossary_changelog (id, entry_id, entry_title, action, old_data, new_data, created_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		record.ID, record.EntryID, record.EntryTitle, record.Action.String(), oldJSON, newJSON, record.CreatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedChangelogRecord insert: %v", err)
	}

	return record
}
