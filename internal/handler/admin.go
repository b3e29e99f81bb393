package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/Rangggase/Holy-Grail/internal/auth"
	"github.com/Rangggase/Holy-Grail/internal/domain"
)

type loginRequest struct {
	Password string `json:"password" validate:"required"`
}

// POST /admin/login
func (h *Handler) AdminLogin(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if !h.decodeAndValidate(w, r, &req) {
		return
	}

	token, err := h.auth.Login(req.Password)
	if err != nil {
		if errors.Is(err, auth.ErrInvalidPassword) {
			writeError(w, http.StatusUnauthorized, "invalid_password", "Wrong admin password")
			return
		}
		writeError(w, http.StatusInternalServerError, "internal_error", "An unexpected error occurred")
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"token": token})
}

// GET /admin/dashboard/summary
func (h *Handler) DashboardSummary(w http.ResponseWriter, r *http.Request) {
	summary, err := h.service.DashboardSummary(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, "internal_error", "An unexpected error occurred")
		return
	}
	writeJSON(w, http.StatusOK, summary)
}

// GET /admin/dashboard/segments
func (h *Handler) DashboardSegments(w http.ResponseWriter, r *http.Request) {
	segments, err := h.service.CustomerSegments(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, "internal_error", "An unexpected error occurred")
		return
	}
	if segments == nil {
		segments = []domain.CustomerSpend{}
	}
	writeJSON(w, http.StatusOK, map[string]any{"segments": segments})
}

// GET /admin/dashboard/hourly
func (h *Handler) DashboardHourly(w http.ResponseWriter, r *http.Request) {
	series, err := h.service.HourlySales(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, "internal_error", "An unexpected error occurred")
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"hourly": series})
}

// GET /admin/dashboard/top-menu
func (h *Handler) DashboardTopMenu(w http.ResponseWriter, r *http.Request) {
	top, err := h.service.TopMenu(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, "internal_error", "An unexpected error occurred")
		return
	}
	writeJSON(w, http.StatusOK, top)
}

// GET /admin/dashboard/transactions?category=&page=&limit=
func (h *Handler) DashboardTransactions(w http.ResponseWriter, r *http.Request) {
	page := 1
	if pageStr := r.URL.Query().Get("page"); pageStr != "" {
		parsed, err := strconv.Atoi(pageStr)
		if err != nil || parsed < 1 || parsed > 10000 {
			writeError(w, http.StatusBadRequest, "invalid_parameter", "Invalid page parameter")
			return
		}
		page = parsed
	}

	limit := 50
	if limitStr := r.URL.Query().Get("limit"); limitStr != "" {
		parsed, err := strconv.Atoi(limitStr)
		if err != nil || parsed < 1 || parsed > 200 {
			writeError(w, http.StatusBadRequest, "invalid_parameter", "Invalid limit parameter")
			return
		}
		limit = parsed
	}

	trx, err := h.service.Transactions(r.Context(), r.URL.Query().Get("category"), page, limit)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "internal_error", "An unexpected error occurred")
		return
	}
	if trx == nil {
		trx = []domain.Transaction{}
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"transactions": trx,
		"page":         page,
		"limit":        limit,
	})
}
