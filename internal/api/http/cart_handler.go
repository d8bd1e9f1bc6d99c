package http

import (
	"database/sql"
	"errors"
	"net/http"

	"camrent-backend/internal/cart"
	"camrent-backend/internal/domain"
	"camrent-backend/internal/service"

	"github.com/google/uuid"
)

// sessionKeyHeader carries the client's cart session key. The server mints a
// key on first contact and echoes it back; the client replays it on every
// cart call.
const sessionKeyHeader = "X-Cart-Session"

type CartHandler struct {
	carts     *cart.Store
	equipment service.EquipmentService
}

func NewCartHandler(carts *cart.Store, equipment service.EquipmentService) *CartHandler {
	return &CartHandler{carts: carts, equipment: equipment}
}

// sessionKey returns the request's cart session key, minting one if the
// client has none yet. The key is always echoed on the response so the
// client can persist it.
func (h *CartHandler) sessionKey(w http.ResponseWriter, r *http.Request) string {
	key := r.Header.Get(sessionKeyHeader)
	if key == "" {
		key = uuid.New().String()
	}
	w.Header().Set(sessionKeyHeader, key)
	return key
}

type cartResponse struct {
	Lines      []domain.CartLine `json:"lines"`
	TotalCents int32             `json:"total_cents"`
	ItemCount  int32             `json:"item_count"`
}

func (h *CartHandler) Get(w http.ResponseWriter, r *http.Request) {
	key := h.sessionKey(w, r)
	lines := h.carts.Lines(r.Context(), key)
	total, count := h.carts.Totals(r.Context(), key)
	writeJSON(w, http.StatusOK, cartResponse{Lines: lines, TotalCents: total, ItemCount: count})
}

type addToCartRequest struct {
	EquipmentID int32  `json:"equipment_id"`
	Duration    string `json:"duration"`
	RentDate    string `json:"rent_date"`
	ReturnDate  string `json:"return_date"`
}

func (h *CartHandler) Add(w http.ResponseWriter, r *http.Request) {
	key := h.sessionKey(w, r)
	var req addToCartRequest
	if !decodeBody(w, r, &req) {
		return
	}

	item, err := h.equipment.Get(r.Context(), req.EquipmentID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			writeError(w, http.StatusNotFound, "equipment not found")
			return
		}
		writeError(w, http.StatusInternalServerError, "failed to load equipment")
		return
	}
	if !item.Available {
		writeError(w, http.StatusConflict, "equipment is not available for rent")
		return
	}

	if err := h.carts.Add(r.Context(), key, item, domain.RentalDuration(req.Duration), req.RentDate, req.ReturnDate); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	lines := h.carts.Lines(r.Context(), key)
	total, count := h.carts.Totals(r.Context(), key)
	writeJSON(w, http.StatusOK, cartResponse{Lines: lines, TotalCents: total, ItemCount: count})
}

type updateQuantityRequest struct {
	Quantity int32 `json:"quantity"`
}

func (h *CartHandler) UpdateQuantity(w http.ResponseWriter, r *http.Request) {
	key := h.sessionKey(w, r)
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}
	var req updateQuantityRequest
	if !decodeBody(w, r, &req) {
		return
	}

	if err := h.carts.UpdateQuantity(r.Context(), key, id, req.Quantity); err != nil {
		if errors.Is(err, cart.ErrLineNotFound) {
			writeError(w, http.StatusNotFound, "item is not in the cart")
			return
		}
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	lines := h.carts.Lines(r.Context(), key)
	total, count := h.carts.Totals(r.Context(), key)
	writeJSON(w, http.StatusOK, cartResponse{Lines: lines, TotalCents: total, ItemCount: count})
}

func (h *CartHandler) Remove(w http.ResponseWriter, r *http.Request) {
	key := h.sessionKey(w, r)
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}

	h.carts.Remove(r.Context(), key, id)

	lines := h.carts.Lines(r.Context(), key)
	total, count := h.carts.Totals(r.Context(), key)
	writeJSON(w, http.StatusOK, cartResponse{Lines: lines, TotalCents: total, ItemCount: count})
}

func (h *CartHandler) Clear(w http.ResponseWriter, r *http.Request) {
	key := h.sessionKey(w, r)
	h.carts.Clear(r.Context(), key)
	writeJSON(w, http.StatusOK, cartResponse{Lines: []domain.CartLine{}})
}
