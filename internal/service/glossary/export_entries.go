package glossary

import (
	"context"
	"fmt"
	"time"

	"github.com/heartmarshall/glossary-backend/internal/domain"
)

// ExportResult is a point-in-time dump of the whole glossary for download.
// Entries are serialized as snapshots so the export format matches the
// changelog's old_data/new_data shape.
type ExportResult struct {
	GeneratedAt time.Time               `json:"generated_at"`
	Count       int                     `json:"count"`
	Entries     []*domain.EntrySnapshot `json:"entries"`
}

// ExportEntries returns the full entry list wrapped with export metadata,
// in the same creation-time order as ListEntries.
func (s *Service) ExportEntries(ctx context.Context) (*ExportResult, error) {
	entries, err := s.entries.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("export entries: %w", err)
	}

	snapshots := make([]*domain.EntrySnapshot, len(entries))
	for i, e := range entries {
		snapshots[i] = e.Snapshot()
	}

	return &ExportResult{
		GeneratedAt: time.Now().UTC(),
		Count:       len(snapshots),
		Entries:     snapshots,
	}, nil
}
