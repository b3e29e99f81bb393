package handler

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/Rangggase/Holy-Grail/internal/domain"
	"github.com/Rangggase/Holy-Grail/internal/service"
)

type recommendRequest struct {
	CustomerID   int64  `json:"customer_id" validate:"omitempty,gt=0"`
	CustomerName string `json:"customer_name" validate:"required"`
	Weather      string `json:"weather" validate:"required,oneof=Cerah Hujan"`
	GroupSize    string `json:"group_size" validate:"required,oneof=Sendiri Keluarga"`
}

// POST /recommendations
func (h *Handler) GetRecommendations(w http.ResponseWriter, r *http.Request) {
	var req recommendRequest
	if !h.decodeAndValidate(w, r, &req) {
		return
	}

	result, err := h.service.Recommend(r.Context(), service.RecommendRequest{
		CustomerID:   req.CustomerID,
		CustomerName: req.CustomerName,
		Weather:      domain.Weather(req.Weather),
		GroupSize:    domain.GroupSize(req.GroupSize),
	})
	if err != nil {
		if errors.Is(err, domain.ErrCustomerNotFound) {
			writeError(w, http.StatusNotFound, "customer_not_found",
				fmt.Sprintf("Customer with ID %d does not exist", req.CustomerID))
			return
		}
		if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) {
			writeError(w, http.StatusServiceUnavailable, "request_timeout",
				"Request timed out, please try again")
			return
		}
		writeError(w, http.StatusInternalServerError, "internal_error", "An unexpected error occurred")
		return
	}

	resp := RecommendationResponse{
		Customer: CustomerInfo{
			ID:     result.Customer.ID,
			Name:   result.Customer.Name,
			Status: result.Customer.Status(),
		},
		Context: ContextInfo{
			Weather:   string(result.Context.Weather),
			GroupSize: string(result.Context.GroupSize),
			TimeOfDay: string(result.Context.TimeOfDay),
			TimeLabel: result.TimeLabel,
		},
		Recommendations: result.Menu,
		Metadata: Meta{
			CacheHit:    result.CacheHit,
			GeneratedAt: time.Now().UTC().Format(time.RFC3339),
		},
	}

	writeJSON(w, http.StatusOK, resp)
}
