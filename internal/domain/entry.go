package domain

import (
	"time"

	"github.com/google/uuid"
)

// Entry is a glossary entry: a named term with its definition, an ordered
// list of free-text rules, and an optional formula.
type Entry struct {
	ID          uuid.UUID
	Title       string
	Description string
	Rules       []string
	Formula     *string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// Snapshot returns a denormalized copy of the entry for changelog storage.
func (e *Entry) Snapshot() *EntrySnapshot {
	rules := make([]string, len(e.Rules))
	copy(rules, e.Rules)

	return &EntrySnapshot{
		ID:          e.ID,
		Title:       e.Title,
		Description: e.Description,
		Rules:       rules,
		Formula:     e.Formula,
		CreatedAt:   e.CreatedAt,
		UpdatedAt:   e.UpdatedAt,
	}
}

// EntryUpdateParams holds the full replacement state for an entry update.
// Updates are wholesale: every field is written, there is no partial patch.
type EntryUpdateParams struct {
	Title       string
	Description string
	Rules       []string
	Formula     *string
	UpdatedAt   time.Time
}

// EntrySnapshot is the full state of an entry at the moment of a change,
// stored as JSONB in the changelog. It outlives the entry itself.
type EntrySnapshot struct {
	ID          uuid.UUID `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Rules       []string  `json:"rules"`
	Formula     *string   `json:"formula"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}
