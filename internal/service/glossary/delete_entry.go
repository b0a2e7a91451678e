package glossary

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/heartmarshall/glossary-backend/internal/domain"
)

// DeleteEntry removes an entry and appends a DELETE changelog record with the
// entry's last state. Deleting an id that does not exist is a success with no
// changelog record: there is no data left to denormalize.
func (s *Service) DeleteEntry(ctx context.Context, input DeleteEntryInput) error {
	if err := input.Validate(); err != nil {
		return err
	}

	var oldEntry *domain.Entry
	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		var txErr error
		oldEntry, txErr = s.entries.GetByID(txCtx, input.ID)
		if txErr != nil && !errors.Is(txErr, domain.ErrNotFound) {
			return fmt.Errorf("get entry: %w", txErr)
		}
		if errors.Is(txErr, domain.ErrNotFound) {
			oldEntry = nil
		}

		// The delete itself is idempotent: it runs even when the read
		// found nothing.
		if _, txErr = s.entries.Delete(txCtx, input.ID); txErr != nil {
			return fmt.Errorf("delete entry: %w", txErr)
		}

		return nil
	})
	if err != nil {
		return err
	}

	if oldEntry == nil {
		// Idempotent no-op at the store level.
		s.log.InfoContext(ctx, "delete of missing entry",
			slog.String("entry_id", input.ID.String()),
		)
		return nil
	}

	s.recordChange(ctx, domain.ChangeActionDelete, oldEntry.ID, oldEntry.Title,
		oldEntry.Snapshot(), nil)

	s.log.InfoContext(ctx, "entry deleted",
		slog.String("entry_id", oldEntry.ID.String()),
		slog.String("title", oldEntry.Title),
	)

	return nil
}
