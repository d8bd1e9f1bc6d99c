package http

import (
	"database/sql"
	"errors"
	"net/http"

	"camrent-backend/internal/domain"
	"camrent-backend/internal/service"
)

type SuggestionHandler struct {
	suggestions service.SuggestionService
}

func NewSuggestionHandler(suggestions service.SuggestionService) *SuggestionHandler {
	return &SuggestionHandler{suggestions: suggestions}
}

type suggestionRequest struct {
	EquipmentName  string `json:"equipment_name"`
	Details        string `json:"details"`
	SubmitterName  string `json:"submitter_name"`
	SubmitterEmail string `json:"submitter_email"`
}

// Create accepts a public suggestion for equipment the store should carry.
func (h *SuggestionHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req suggestionRequest
	if !decodeBody(w, r, &req) {
		return
	}

	suggestion := &domain.Suggestion{
		EquipmentName:  req.EquipmentName,
		Details:        req.Details,
		SubmitterName:  req.SubmitterName,
		SubmitterEmail: req.SubmitterEmail,
	}
	if err := h.suggestions.Create(r.Context(), suggestion); err != nil {
		if errors.Is(err, service.ErrEmptySuggestion) {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}
		writeError(w, http.StatusInternalServerError, "failed to submit suggestion")
		return
	}
	writeJSON(w, http.StatusCreated, suggestion)
}

func (h *SuggestionHandler) List(w http.ResponseWriter, r *http.Request) {
	suggestions, err := h.suggestions.List(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to list suggestions")
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{"suggestions": suggestions})
}

type updateSuggestionRequest struct {
	Status string `json:"status"`
}

func (h *SuggestionHandler) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}
	var req updateSuggestionRequest
	if !decodeBody(w, r, &req) {
		return
	}
	if err := h.suggestions.UpdateStatus(r.Context(), id, domain.SuggestionStatus(req.Status)); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			writeError(w, http.StatusNotFound, "suggestion not found")
			return
		}
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "updated"})
}

func (h *SuggestionHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}
	if err := h.suggestions.Delete(r.Context(), id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			writeError(w, http.StatusNotFound, "suggestion not found")
			return
		}
		writeError(w, http.StatusInternalServerError, "failed to delete suggestion")
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "deleted"})
}
