package changelog

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/heartmarshall/glossary-backend/internal/domain"
)

// History returns changelog records newest first, optionally restricted to
// one entry. A store failure is surfaced as an error: the caller must be
// able to distinguish "no history yet" from "history unavailable".
func (s *Service) History(ctx context.Context, entryID *uuid.UUID) ([]domain.ChangelogRecord, error) {
	records, err := s.records.List(ctx, entryID)
	if err != nil {
		return nil, fmt.Errorf("list changelog records: %w", err)
	}

	return records, nil
}
