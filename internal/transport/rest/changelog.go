package rest

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/glossary-backend/internal/domain"
)

// changelogService defines the minimal interface needed by ChangelogHandler.
type changelogService interface {
	History(ctx context.Context, entryID *uuid.UUID) ([]domain.ChangelogRecord, error)
}

// ChangelogHandler serves the read-only changelog endpoint.
type ChangelogHandler struct {
	svc changelogService
	log *slog.Logger
}

// NewChangelogHandler creates a ChangelogHandler.
func NewChangelogHandler(svc changelogService, logger *slog.Logger) *ChangelogHandler {
	return &ChangelogHandler{svc: svc, log: logger.With("handler", "changelog")}
}

type changelogRecordResponse struct {
	ID         string                `json:"id"`
	EntryID    string                `json:"entry_id"`
	EntryTitle string                `json:"entry_title"`
	Action     string                `json:"action"`
	OldData    *domain.EntrySnapshot `json:"old_data"`
	NewData    *domain.EntrySnapshot `json:"new_data"`
	CreatedAt  time.Time             `json:"created_at"`
}

type historyResponse struct {
	History []changelogRecordResponse `json:"history"`
}

// List handles GET /changelog?entryId=<uuid>. Records come back newest
// first; the entryId filter is optional.
func (h *ChangelogHandler) List(w http.ResponseWriter, r *http.Request) {
	var entryID *uuid.UUID
	if raw := r.URL.Query().Get("entryId"); raw != "" {
		id, err := uuid.Parse(raw)
		if err != nil {
			writeError(w, http.StatusBadRequest, "invalid entryId")
			return
		}
		entryID = &id
	}

	records, err := h.svc.History(r.Context(), entryID)
	if err != nil {
		h.log.ErrorContext(r.Context(), "list changelog failed", slog.String("error", err.Error()))
		writeError(w, http.StatusInternalServerError, "internal server error")
		return
	}

	resp := historyResponse{History: make([]changelogRecordResponse, 0, len(records))}
	for _, rec := range records {
		resp.History = append(resp.History, changelogRecordResponse{
			ID:         rec.ID.String(),
			EntryID:    rec.EntryID.String(),
			EntryTitle: rec.EntryTitle,
			Action:     rec.Action.String(),
			OldData:    rec.OldData,
			NewData:    rec.NewData,
			CreatedAt:  rec.CreatedAt,
		})
	}

	writeJSON(w, http.StatusOK, resp)
}
