// Package changelog implements the changelog recorder: it appends one audit
// record per successful entry mutation and serves the history read path.
package changelog

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/heartmarshall/glossary-backend/internal/domain"
)

type changelogRepo interface {
	Create(ctx context.Context, record domain.ChangelogRecord) (domain.ChangelogRecord, error)
	List(ctx context.Context, entryID *uuid.UUID) ([]domain.ChangelogRecord, error)
}

// Service provides changelog recording and history listing.
type Service struct {
	records changelogRepo
	log     *slog.Logger
}

// NewService creates a new Changelog service.
func NewService(log *slog.Logger, records changelogRepo) *Service {
	return &Service{
		records: records,
		log:     log.With("service", "changelog"),
	}
}
