package http

import (
	"database/sql"
	"errors"
	"net/http"

	"camrent-backend/internal/domain"
	"camrent-backend/internal/service"
)

type UserHandler struct {
	users service.UserService
}

func NewUserHandler(users service.UserService) *UserHandler {
	return &UserHandler{users: users}
}

func (h *UserHandler) List(w http.ResponseWriter, r *http.Request) {
	users, err := h.users.List(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to list users")
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{"users": users})
}

func (h *UserHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}
	user, err := h.users.Get(r.Context(), id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			writeError(w, http.StatusNotFound, "user not found")
			return
		}
		writeError(w, http.StatusInternalServerError, "failed to get user")
		return
	}
	writeJSON(w, http.StatusOK, user)
}

type updateProfileRequest struct {
	Name  string `json:"name"`
	Email string `json:"email"`
	Phone string `json:"phone"`
}

// UpdateProfile lets the authenticated user edit their own contact details.
func (h *UserHandler) UpdateProfile(w http.ResponseWriter, r *http.Request) {
	actor := UserFromContext(r.Context())
	var req updateProfileRequest
	if !decodeBody(w, r, &req) {
		return
	}
	if err := h.users.UpdateProfile(r.Context(), actor.ID, req.Name, req.Email, req.Phone); err != nil {
		writeError(w, http.StatusInternalServerError, "failed to update profile")
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "updated"})
}

type reassignRoleRequest struct {
	Role string `json:"role"`
}

func (h *UserHandler) ReassignRole(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}
	var req reassignRoleRequest
	if !decodeBody(w, r, &req) {
		return
	}
	if err := h.users.ReassignRole(r.Context(), id, domain.Role(req.Role)); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			writeError(w, http.StatusNotFound, "user not found")
			return
		}
		if errors.Is(err, service.ErrUnknownRole) {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}
		writeError(w, http.StatusInternalServerError, "failed to reassign role")
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "updated"})
}
