package handler

import (
	"net/http"

	"github.com/Rangggase/Holy-Grail/internal/domain"
)

// GET /menu
func (h *Handler) GetMenu(w http.ResponseWriter, r *http.Request) {
	items, err := h.service.ListMenu(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, "internal_error", "An unexpected error occurred")
		return
	}
	if items == nil {
		items = []domain.MenuItem{}
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"menu":  items,
		"count": len(items),
	})
}
