package changelog

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/glossary-backend/internal/domain"
)

// RecordInput holds the parameters for appending one changelog record.
type RecordInput struct {
	EntryID    uuid.UUID
	EntryTitle string
	Action     domain.ChangeAction
	OldData    *domain.EntrySnapshot
	NewData    *domain.EntrySnapshot
}

// Validate checks the input shape. Only the action kind is validated; the
// snapshots are trusted as produced by the entry gateway.
func (i RecordInput) Validate() error {
	var errs []domain.FieldError

	if i.EntryID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "entry_id", Message: "required"})
	}
	if !i.Action.IsValid() {
		errs = append(errs, domain.FieldError{Field: "action", Message: "must be CREATE, UPDATE, or DELETE"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// Record appends one changelog record with a generated id and timestamp.
func (s *Service) Record(ctx context.Context, input RecordInput) (domain.ChangelogRecord, error) {
	if err := input.Validate(); err != nil {
		return domain.ChangelogRecord{}, err
	}

	record, err := s.records.Create(ctx, domain.ChangelogRecord{
		ID:         uuid.New(),
		EntryID:    input.EntryID,
		EntryTitle: input.EntryTitle,
		Action:     input.Action,
		OldData:    input.OldData,
		NewData:    input.NewData,
		CreatedAt:  time.Now().UTC(),
	})
	if err != nil {
		return domain.ChangelogRecord{}, fmt.Errorf("append changelog record: %w", err)
	}

	s.log.DebugContext(ctx, "changelog record appended",
		slog.String("record_id", record.ID.String()),
		slog.String("entry_id", record.EntryID.String()),
		slog.String("action", record.Action.String()),
	)

	return record, nil
}
