package handler

import (
	"encoding/json"
	"net/http"

	"github.com/Rangggase/Holy-Grail/internal/auth"
	"github.com/Rangggase/Holy-Grail/internal/service"
	"github.com/go-playground/validator/v10"
)

type Handler struct {
	service  *service.Service
	auth     *auth.Manager
	validate *validator.Validate
}

func NewHandler(svc *service.Service, authMgr *auth.Manager) *Handler {
	return &Handler{
		service:  svc,
		auth:     authMgr,
		validate: validator.New(),
	}
}

func (h *Handler) Auth() *auth.Manager {
	return h.auth
}

// decodeAndValidate parses a JSON body into dst and runs struct validation.
// Contract violations fail loudly here; nothing malformed reaches the core.
func (h *Handler) decodeAndValidate(w http.ResponseWriter, r *http.Request, dst any) bool {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_json", "Request body is not valid JSON")
		return false
	}
	if err := h.validate.Struct(dst); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_parameter", err.Error())
		return false
	}
	return true
}

// write JSON response
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

// writes JSON error response.
func writeError(w http.ResponseWriter, status int, errCode, message string) {
	writeJSON(w, status, ErrorResponse{
		Error:   errCode,
		Message: message,
	})
}
