package glossary

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/glossary-backend/internal/domain"
)

// CreateEntry persists a new glossary entry and appends a CREATE changelog
// record. The changelog append runs after the primary write commits and its
// failure never fails the create.
func (s *Service) CreateEntry(ctx context.Context, input CreateEntryInput) (*domain.Entry, error) {
	if err := input.Validate(s.cfg); err != nil {
		return nil, err
	}

	count, err := s.entries.Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("count entries: %w", err)
	}
	if count >= s.cfg.MaxEntries {
		return nil, domain.NewValidationError("entries",
			fmt.Sprintf("glossary is full (max %d entries)", s.cfg.MaxEntries))
	}

	now := time.Now().UTC()
	entry, err := s.entries.Create(ctx, &domain.Entry{
		ID:          uuid.New(),
		Title:       strings.TrimSpace(input.Title),
		Description: strings.TrimSpace(input.Description),
		Rules:       cleanRules(input.Rules),
		Formula:     trimOrNil(input.Formula),
		CreatedAt:   now,
		UpdatedAt:   now,
	})
	if err != nil {
		return nil, fmt.Errorf("create entry: %w", err)
	}

	s.recordChange(ctx, domain.ChangeActionCreate, entry.ID, entry.Title, nil, entry.Snapshot())

	s.log.InfoContext(ctx, "entry created",
		slog.String("entry_id", entry.ID.String()),
		slog.String("title", entry.Title),
	)

	return entry, nil
}
