package handler

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/sp1r1tt/dashboard2025/internal/api/response"
	"github.com/sp1r1tt/dashboard2025/internal/user"
)

type userResponse struct {
	ID        int64  `json:"id"`
	Name      string `json:"name"`
	Email     string `json:"email"`
	CreatedAt string `json:"createdAt"`
}

// UserHandler handles the staff management endpoints.
type UserHandler struct {
	repo user.Repository
}

// NewUserHandler creates a new UserHandler.
func NewUserHandler(repo user.Repository) *UserHandler {
	return &UserHandler{repo: repo}
}

// List handles GET /api/users. Password hashes never appear in responses.
func (h *UserHandler) List(w http.ResponseWriter, r *http.Request) {
	users, err := h.repo.List(r.Context())
	if err != nil {
		slog.Error("failed to list users", "error", err)
		response.Message(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	items := make([]userResponse, 0, len(users))
	for _, u := range users {
		items = append(items, userResponse{
			ID:        u.ID,
			Name:      u.Name,
			Email:     u.Email,
			CreatedAt: formatTime(u.CreatedAt),
		})
	}

	response.JSON(w, http.StatusOK, items)
}

// Delete handles DELETE /api/users/{id}.
func (h *UserHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		response.Message(w, http.StatusBadRequest, "id must be an integer")
		return
	}

	if err := h.repo.Delete(r.Context(), id); err != nil {
		if errors.Is(err, user.ErrUserNotFound) {
			response.Message(w, http.StatusNotFound, "User not found")
			return
		}
		slog.Error("failed to delete user", "id", id, "error", err)
		response.Message(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	response.Message(w, http.StatusOK, "User deleted")
}
