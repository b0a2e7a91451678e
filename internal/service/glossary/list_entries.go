package glossary

import (
	"context"
	"fmt"

	"github.com/heartmarshall/glossary-backend/internal/domain"
)

// ListEntries returns all entries ordered by creation time ascending.
func (s *Service) ListEntries(ctx context.Context) ([]*domain.Entry, error) {
	entries, err := s.entries.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list entries: %w", err)
	}

	return entries, nil
}
