package http

import (
	"errors"
	"net/http"

	"camrent-backend/internal/cart"
	"camrent-backend/internal/service"
)

type CheckoutHandler struct {
	checkout service.CheckoutService
	carts    *cart.Store
}

func NewCheckoutHandler(checkout service.CheckoutService, carts *cart.Store) *CheckoutHandler {
	return &CheckoutHandler{checkout: checkout, carts: carts}
}

type checkoutRequest struct {
	Customer service.CustomerInfo `json:"customer"`
}

// Checkout converts the session's cart into orders. The cart is cleared only
// after the batch succeeds; on failure it is left intact so the operator can
// retry.
func (h *CheckoutHandler) Checkout(w http.ResponseWriter, r *http.Request) {
	key := r.Header.Get(sessionKeyHeader)
	if key == "" {
		writeError(w, http.StatusBadRequest, "missing cart session")
		return
	}
	var req checkoutRequest
	if !decodeBody(w, r, &req) {
		return
	}

	actor := UserFromContext(r.Context())
	lines := h.carts.Lines(r.Context(), key)

	created, err := h.checkout.Checkout(r.Context(), actor, lines, req.Customer)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrCustomerCheckout):
			writeError(w, http.StatusForbidden, err.Error())
		case errors.Is(err, service.ErrEmptyCart), errors.Is(err, service.ErrInvalidCustomer):
			writeError(w, http.StatusBadRequest, err.Error())
		default:
			writeError(w, http.StatusInternalServerError, err.Error())
		}
		return
	}

	h.carts.Clear(r.Context(), key)
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"orders_created": created,
	})
}
