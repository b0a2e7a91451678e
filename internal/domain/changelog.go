package domain

import (
	"time"

	"github.com/google/uuid"
)

// ChangeAction represents the kind of mutation recorded in the changelog.
type ChangeAction string

const (
	ChangeActionCreate ChangeAction = "CREATE"
	ChangeActionUpdate ChangeAction = "UPDATE"
	ChangeActionDelete ChangeAction = "DELETE"
)

func (a ChangeAction) String() string { return string(a) }

func (a ChangeAction) IsValid() bool {
	switch a {
	case ChangeActionCreate, ChangeActionUpdate, ChangeActionDelete:
		return true
	}
	return false
}

// ChangelogRecord is one append-only audit row describing a mutation of a
// glossary entry. EntryID is a weak reference: the entry may have been
// deleted since, the record stays.
//
// Shape by action:
//   - CREATE: OldData nil, NewData set
//   - UPDATE: both set
//   - DELETE: OldData set, NewData nil
type ChangelogRecord struct {
	ID         uuid.UUID
	EntryID    uuid.UUID
	EntryTitle string
	Action     ChangeAction
	OldData    *EntrySnapshot
	NewData    *EntrySnapshot
	CreatedAt  time.Time
}
