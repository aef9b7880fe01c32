package handler

import (
	"database/sql"
	"net/http"

	"github.com/aman7heaven/Personal-portfolio/internal/store"
)

const (
	defaultEventLimit = 100
	maxEventLimit     = 1000
)

// EventsHandler serves the admin view of the operational event log.
type EventsHandler struct {
	queries *store.Queries
}

// NewEventsHandler creates a new EventsHandler.
func NewEventsHandler(db *sql.DB) *EventsHandler {
	return &EventsHandler{queries: store.New(db)}
}

// ListEvents handles GET /api/admin/events, newest first. An optional
// limit query parameter caps the result size.
func (h *EventsHandler) ListEvents(w http.ResponseWriter, r *http.Request) {
	limit := int64(defaultEventLimit)
	if raw := r.URL.Query().Get("limit"); raw != "" {
		parsed, ok := parseID(raw)
		if !ok || parsed > maxEventLimit {
			WriteValidationError(w, map[string]string{
				"limit": "limit must be a positive integer up to 1000",
			})
			return
		}
		limit = parsed
	}

	events, err := h.queries.ListRecentEvents(r.Context(), limit)
	if err != nil {
		WriteInternalError(w, "listing events", err)
		return
	}
	WriteJSON(w, http.StatusOK, events)
}
