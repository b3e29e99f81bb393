package handler

import (
	"net/http"

	"github.com/Rangggase/Holy-Grail/internal/domain"
)

// GET /customers?q=
func (h *Handler) SearchCustomers(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query().Get("q")
	if query == "" {
		writeError(w, http.StatusBadRequest, "invalid_parameter", "Query parameter q is required")
		return
	}

	found, err := h.service.SearchCustomers(r.Context(), query)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "internal_error", "An unexpected error occurred")
		return
	}
	if found == nil {
		found = []domain.Customer{}
	}
	// Zero matches is a normal answer: the cashier treats it as a new
	// customer, not an error.
	writeJSON(w, http.StatusOK, map[string]any{
		"customers": found,
		"count":     len(found),
	})
}
