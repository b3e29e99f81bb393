package handler

import (
	"errors"
	"net/http"

	"github.com/Rangggase/Holy-Grail/internal/domain"
	"github.com/Rangggase/Holy-Grail/internal/service"
)

type checkoutItem struct {
	MenuID int64 `json:"menu_id" validate:"required,gt=0"`
	Qty    int   `json:"qty" validate:"required,gte=1"`
}

type checkoutRequest struct {
	CustomerID   int64          `json:"customer_id" validate:"omitempty,gt=0"`
	CustomerName string         `json:"customer_name" validate:"required"`
	Weather      string         `json:"weather" validate:"required,oneof=Cerah Hujan"`
	GroupSize    string         `json:"group_size" validate:"required,oneof=Sendiri Keluarga"`
	Method       string         `json:"method" validate:"required,oneof=Tunai QRIS Debit/Credit"`
	Paid         int64          `json:"paid" validate:"gte=0"`
	Items        []checkoutItem `json:"items" validate:"required,min=1,dive"`
}

// POST /checkout
func (h *Handler) Checkout(w http.ResponseWriter, r *http.Request) {
	var req checkoutRequest
	if !h.decodeAndValidate(w, r, &req) {
		return
	}

	items := make([]service.CartLine, 0, len(req.Items))
	for _, it := range req.Items {
		items = append(items, service.CartLine{MenuID: it.MenuID, Qty: it.Qty})
	}

	receipt, err := h.service.Checkout(r.Context(), service.CheckoutRequest{
		CustomerID:   req.CustomerID,
		CustomerName: req.CustomerName,
		Weather:      domain.Weather(req.Weather),
		GroupSize:    domain.GroupSize(req.GroupSize),
		Method:       req.Method,
		Paid:         req.Paid,
		Items:        items,
	})
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrEmptyCart):
			writeError(w, http.StatusBadRequest, "empty_cart", "Cart has no items")
		case errors.Is(err, domain.ErrInsufficientPayment):
			writeError(w, http.StatusBadRequest, "insufficient_payment", "Cash received is less than the total")
		case errors.Is(err, domain.ErrMenuItemNotFound):
			writeError(w, http.StatusNotFound, "menu_item_not_found", err.Error())
		case errors.Is(err, domain.ErrCustomerNotFound):
			writeError(w, http.StatusNotFound, "customer_not_found", "Customer does not exist")
		default:
			writeError(w, http.StatusInternalServerError, "internal_error", "An unexpected error occurred")
		}
		return
	}

	writeJSON(w, http.StatusCreated, receipt)
}
