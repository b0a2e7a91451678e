package rest

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/glossary-backend/internal/domain"
	"github.com/heartmarshall/glossary-backend/internal/service/glossary"
)

// glossaryService defines the minimal interface needed by GlossaryHandler.
type glossaryService interface {
	ListEntries(ctx context.Context) ([]*domain.Entry, error)
	CreateEntry(ctx context.Context, input glossary.CreateEntryInput) (*domain.Entry, error)
	UpdateEntry(ctx context.Context, input glossary.UpdateEntryInput) (*domain.Entry, error)
	DeleteEntry(ctx context.Context, input glossary.DeleteEntryInput) error
	ExportEntries(ctx context.Context) (*glossary.ExportResult, error)
}

// GlossaryHandler serves glossary entry REST endpoints.
type GlossaryHandler struct {
	svc glossaryService
	log *slog.Logger
}

// NewGlossaryHandler creates a GlossaryHandler.
func NewGlossaryHandler(svc glossaryService, logger *slog.Logger) *GlossaryHandler {
	return &GlossaryHandler{svc: svc, log: logger.With("handler", "glossary")}
}

type createEntryRequest struct {
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Rules       []string `json:"rules"`
	Formula     *string  `json:"formula"`
}

type updateEntryRequest struct {
	ID          string   `json:"id"`
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Rules       []string `json:"rules"`
	Formula     *string  `json:"formula"`
}

type entryResponse struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Rules       []string  `json:"rules"`
	Formula     *string   `json:"formula"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

type entriesResponse struct {
	Entries []entryResponse `json:"entries"`
}

func toEntryResponse(e *domain.Entry) entryResponse {
	rules := e.Rules
	if rules == nil {
		rules = []string{}
	}
	return entryResponse{
		ID:          e.ID.String(),
		Title:       e.Title,
		Description: e.Description,
		Rules:       rules,
		Formula:     e.Formula,
		CreatedAt:   e.CreatedAt,
		UpdatedAt:   e.UpdatedAt,
	}
}

// List handles GET /entries.
func (h *GlossaryHandler) List(w http.ResponseWriter, r *http.Request) {
	entries, err := h.svc.ListEntries(r.Context())
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	resp := entriesResponse{Entries: make([]entryResponse, 0, len(entries))}
	for _, e := range entries {
		resp.Entries = append(resp.Entries, toEntryResponse(e))
	}

	writeJSON(w, http.StatusOK, resp)
}

// Create handles POST /entries.
func (h *GlossaryHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req createEntryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	entry, err := h.svc.CreateEntry(r.Context(), glossary.CreateEntryInput{
		Title:       req.Title,
		Description: req.Description,
		Rules:       req.Rules,
		Formula:     req.Formula,
	})
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, toEntryResponse(entry))
}

// Update handles PUT /entries. A full-field replace: every field in the body
// overwrites the stored value, there is no partial-patch merge.
func (h *GlossaryHandler) Update(w http.ResponseWriter, r *http.Request) {
	var req updateEntryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if req.ID == "" {
		writeError(w, http.StatusBadRequest, "id is required")
		return
	}
	id, err := uuid.Parse(req.ID)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid id")
		return
	}

	entry, err := h.svc.UpdateEntry(r.Context(), glossary.UpdateEntryInput{
		ID:          id,
		Title:       req.Title,
		Description: req.Description,
		Rules:       req.Rules,
		Formula:     req.Formula,
	})
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, toEntryResponse(entry))
}

// Delete handles DELETE /entries?id=<uuid>.
func (h *GlossaryHandler) Delete(w http.ResponseWriter, r *http.Request) {
	rawID := r.URL.Query().Get("id")
	if rawID == "" {
		writeError(w, http.StatusBadRequest, "id query parameter is required")
		return
	}
	id, err := uuid.Parse(rawID)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid id")
		return
	}

	if err := h.svc.DeleteEntry(r.Context(), glossary.DeleteEntryInput{ID: id}); err != nil {
		h.handleError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]bool{"success": true})
}

// Export handles GET /entries/export: the full glossary as a JSON download.
func (h *GlossaryHandler) Export(w http.ResponseWriter, r *http.Request) {
	result, err := h.svc.ExportEntries(r.Context())
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	filename := fmt.Sprintf("glossary-%s.json", result.GeneratedAt.Format("2006-01-02"))
	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("Content-Disposition", `attachment; filename="`+filename+`"`)
	w.WriteHeader(http.StatusOK)

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	enc.Encode(result) //nolint:errcheck
}

func (h *GlossaryHandler) handleError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, domain.ErrValidation):
		writeError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, domain.ErrNotFound):
		writeError(w, http.StatusNotFound, "not found")
	case errors.Is(err, domain.ErrAlreadyExists):
		writeError(w, http.StatusConflict, "already exists")
	default:
		h.log.ErrorContext(r.Context(), "request failed", slog.String("error", err.Error()))
		writeError(w, http.StatusInternalServerError, "internal server error")
	}
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]string{"error": message})
}
