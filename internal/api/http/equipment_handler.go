package http

import (
	"database/sql"
	"errors"
	"net/http"
	"strconv"

	"camrent-backend/internal/domain"
	"camrent-backend/internal/service"

	"github.com/gorilla/mux"
)

type EquipmentHandler struct {
	equipment service.EquipmentService
}

func NewEquipmentHandler(equipment service.EquipmentService) *EquipmentHandler {
	return &EquipmentHandler{equipment: equipment}
}

// ListAvailable serves the public storefront catalog.
func (h *EquipmentHandler) ListAvailable(w http.ResponseWriter, r *http.Request) {
	items, err := h.equipment.ListAvailable(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to list equipment")
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{"equipment": items})
}

// List serves the admin view, including unavailable items.
func (h *EquipmentHandler) List(w http.ResponseWriter, r *http.Request) {
	items, err := h.equipment.List(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to list equipment")
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{"equipment": items})
}

func (h *EquipmentHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}
	item, err := h.equipment.Get(r.Context(), id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			writeError(w, http.StatusNotFound, "equipment not found")
			return
		}
		writeError(w, http.StatusInternalServerError, "failed to get equipment")
		return
	}
	writeJSON(w, http.StatusOK, item)
}

type equipmentRequest struct {
	Name         string `json:"name"`
	Description  string `json:"description"`
	ImageKey     string `json:"image_key"`
	Rate12hCents int32  `json:"rate_12h_cents"`
	Rate24hCents int32  `json:"rate_24h_cents"`
	Available    bool   `json:"available"`
}

func (h *EquipmentHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req equipmentRequest
	if !decodeBody(w, r, &req) {
		return
	}

	eq := &domain.Equipment{
		Name:         req.Name,
		Description:  req.Description,
		ImageKey:     req.ImageKey,
		Rate12hCents: req.Rate12hCents,
		Rate24hCents: req.Rate24hCents,
		Available:    req.Available,
	}
	if err := h.equipment.Add(r.Context(), eq); err != nil {
		if errors.Is(err, service.ErrNegativeRate) {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}
		writeError(w, http.StatusInternalServerError, "failed to create equipment")
		return
	}
	writeJSON(w, http.StatusCreated, eq)
}

func (h *EquipmentHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}
	var req equipmentRequest
	if !decodeBody(w, r, &req) {
		return
	}

	eq := &domain.Equipment{
		ID:           id,
		Name:         req.Name,
		Description:  req.Description,
		ImageKey:     req.ImageKey,
		Rate12hCents: req.Rate12hCents,
		Rate24hCents: req.Rate24hCents,
		Available:    req.Available,
	}
	if err := h.equipment.Update(r.Context(), eq); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			writeError(w, http.StatusNotFound, "equipment not found")
			return
		}
		if errors.Is(err, service.ErrNegativeRate) {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}
		writeError(w, http.StatusInternalServerError, "failed to update equipment")
		return
	}
	writeJSON(w, http.StatusOK, eq)
}

func (h *EquipmentHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}
	if err := h.equipment.Delete(r.Context(), id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			writeError(w, http.StatusNotFound, "equipment not found")
			return
		}
		writeError(w, http.StatusInternalServerError, "failed to delete equipment")
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "deleted"})
}

func pathID(w http.ResponseWriter, r *http.Request, name string) (int32, bool) {
	raw := mux.Vars(r)[name]
	id, err := strconv.ParseInt(raw, 10, 32)
	if err != nil || id < 1 {
		writeError(w, http.StatusBadRequest, "invalid id")
		return 0, false
	}
	return int32(id), true
}
