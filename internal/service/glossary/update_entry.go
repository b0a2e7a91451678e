package glossary

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/heartmarshall/glossary-backend/internal/domain"
)

// UpdateEntry replaces all mutable fields of an entry and appends an UPDATE
// changelog record carrying the pre- and post-mutation snapshots.
//
// The pre-image read and the write run in one transaction so the recorded
// old_data is the row actually replaced. The changelog append stays outside:
// once the update commits, an audit failure must not roll it back.
func (s *Service) UpdateEntry(ctx context.Context, input UpdateEntryInput) (*domain.Entry, error) {
	if err := input.Validate(s.cfg); err != nil {
		return nil, err
	}

	var (
		oldEntry *domain.Entry
		updated  *domain.Entry
	)
	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		var txErr error
		oldEntry, txErr = s.entries.GetByID(txCtx, input.ID)
		if txErr != nil {
			return fmt.Errorf("get entry: %w", txErr)
		}

		updated, txErr = s.entries.Update(txCtx, input.ID, domain.EntryUpdateParams{
			Title:       strings.TrimSpace(input.Title),
			Description: strings.TrimSpace(input.Description),
			Rules:       cleanRules(input.Rules),
			Formula:     trimOrNil(input.Formula),
			UpdatedAt:   time.Now().UTC(),
		})
		if txErr != nil {
			return fmt.Errorf("update entry: %w", txErr)
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	s.recordChange(ctx, domain.ChangeActionUpdate, updated.ID, updated.Title,
		oldEntry.Snapshot(), updated.Snapshot())

	s.log.InfoContext(ctx, "entry updated",
		slog.String("entry_id", updated.ID.String()),
		slog.String("title", updated.Title),
	)

	return updated, nil
}
