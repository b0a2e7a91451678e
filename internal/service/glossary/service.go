// Package glossary implements the entry store gateway: CRUD over glossary
// entries with a changelog append after every successful mutation.
package glossary

import (
	"context"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"github.com/heartmarshall/glossary-backend/internal/config"
	"github.com/heartmarshall/glossary-backend/internal/domain"
	"github.com/heartmarshall/glossary-backend/internal/service/changelog"
)

type entryRepo interface {
	List(ctx context.Context) ([]*domain.Entry, error)
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Entry, error)
	Count(ctx context.Context) (int, error)
	Create(ctx context.Context, e *domain.Entry) (*domain.Entry, error)
	Update(ctx context.Context, id uuid.UUID, params domain.EntryUpdateParams) (*domain.Entry, error)
	Delete(ctx context.Context, id uuid.UUID) (bool, error)
}

type changelogRecorder interface {
	Record(ctx context.Context, input changelog.RecordInput) (domain.ChangelogRecord, error)
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// Service provides glossary entry management operations.
type Service struct {
	entries  entryRepo
	recorder changelogRecorder
	tx       txManager
	cfg      config.GlossaryConfig
	log      *slog.Logger
}

// NewService creates a new Glossary service.
func NewService(
	log *slog.Logger,
	cfg config.GlossaryConfig,
	entries entryRepo,
	recorder changelogRecorder,
	tx txManager,
) *Service {
	return &Service{
		entries:  entries,
		recorder: recorder,
		tx:       tx,
		cfg:      cfg,
		log:      log.With("service", "glossary"),
	}
}

// recordChange appends one changelog record for a committed mutation.
// Append failures are logged and swallowed: the primary operation has
// already succeeded and must not be failed by an audit-subsystem fault.
func (s *Service) recordChange(ctx context.Context, action domain.ChangeAction, entryID uuid.UUID, entryTitle string, oldData, newData *domain.EntrySnapshot) {
	_, err := s.recorder.Record(ctx, changelog.RecordInput{
		EntryID:    entryID,
		EntryTitle: entryTitle,
		Action:     action,
		OldData:    oldData,
		NewData:    newData,
	})
	if err != nil {
		s.log.ErrorContext(ctx, "changelog append failed",
			slog.String("entry_id", entryID.String()),
			slog.String("action", action.String()),
			slog.String("error", err.Error()),
		)
	}
}

// cleanRules trims every rule and drops the empty ones, preserving order.
// Never returns nil: an entry without rules has an empty slice.
func cleanRules(rules []string) []string {
	cleaned := make([]string, 0, len(rules))
	for _, r := range rules {
		r = strings.TrimSpace(r)
		if r == "" {
			continue
		}
		cleaned = append(cleaned, r)
	}
	return cleaned
}

// trimOrNil trims whitespace. Returns nil if result is empty.
func trimOrNil(s *string) *string {
	if s == nil {
		return nil
	}
	trimmed := strings.TrimSpace(*s)
	if trimmed == "" {
		return nil
	}
	return &trimmed
}
