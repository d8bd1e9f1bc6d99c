package http

import (
	"database/sql"
	"errors"
	"net/http"

	"camrent-backend/internal/service"
)

type NotificationHandler struct {
	notifications service.NotificationService
}

func NewNotificationHandler(notifications service.NotificationService) *NotificationHandler {
	return &NotificationHandler{notifications: notifications}
}

func (h *NotificationHandler) List(w http.ResponseWriter, r *http.Request) {
	actor := UserFromContext(r.Context())
	query := r.URL.Query()
	page := parseQueryInt(query.Get("page"), 1)
	pageSize := parseQueryInt(query.Get("page_size"), 20)

	notes, total, err := h.notifications.List(r.Context(), actor.ID, page, pageSize)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to list notifications")
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"notifications": notes,
		"total":         total,
	})
}

func (h *NotificationHandler) MarkAsRead(w http.ResponseWriter, r *http.Request) {
	actor := UserFromContext(r.Context())
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}
	if err := h.notifications.MarkAsRead(r.Context(), actor.ID, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			writeError(w, http.StatusNotFound, "notification not found")
			return
		}
		writeError(w, http.StatusInternalServerError, "failed to mark notification as read")
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "read"})
}
