package handler

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/sp1r1tt/dashboard2025/internal/api/middleware"
	"github.com/sp1r1tt/dashboard2025/internal/api/response"
	"github.com/sp1r1tt/dashboard2025/internal/api/validation"
	"github.com/sp1r1tt/dashboard2025/internal/auth"
	"github.com/sp1r1tt/dashboard2025/internal/user"
)

type profileResponse struct {
	ID    int64  `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

type updateProfileRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type validationErrorResponse struct {
	Message string                  `json:"message"`
	Errors  []validation.FieldError `json:"errors"`
}

// ProfileHandler handles the current user's profile endpoints.
type ProfileHandler struct {
	repo    user.Repository
	service *auth.Service
}

// NewProfileHandler creates a new ProfileHandler.
func NewProfileHandler(repo user.Repository, service *auth.Service) *ProfileHandler {
	return &ProfileHandler{repo: repo, service: service}
}

// Profile handles GET /api/user/profile. The identity comes from the token;
// the row is re-fetched here, so a user deleted mid-session gets a 404.
func (h *ProfileHandler) Profile(w http.ResponseWriter, r *http.Request) {
	ident := middleware.GetIdentity(r.Context())
	if ident == nil {
		response.Message(w, http.StatusUnauthorized, "Missing or invalid token")
		return
	}

	u, err := h.repo.GetByID(r.Context(), ident.UserID)
	if err != nil {
		if errors.Is(err, user.ErrUserNotFound) {
			response.Message(w, http.StatusNotFound, "User not found")
			return
		}
		slog.Error("failed to fetch profile", "userId", ident.UserID, "error", err)
		response.Message(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	response.JSON(w, http.StatusOK, profileResponse{ID: u.ID, Name: u.Name, Email: u.Email})
}

// Update handles PUT /api/user/update. The password is re-hashed only when
// one is supplied; name and email are always updated.
func (h *ProfileHandler) Update(w http.ResponseWriter, r *http.Request) {
	ident := middleware.GetIdentity(r.Context())
	if ident == nil {
		response.Message(w, http.StatusUnauthorized, "Missing or invalid token")
		return
	}

	r.Body = http.MaxBytesReader(w, r.Body, 1<<20)
	var req updateProfileRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Message(w, http.StatusBadRequest, "Request body must be valid JSON")
		return
	}

	fieldErrors := validation.ValidateUpdateProfileRequest(validation.UpdateProfileRequest{
		Name:  req.Name,
		Email: req.Email,
	})
	if len(fieldErrors) > 0 {
		response.JSON(w, http.StatusBadRequest, validationErrorResponse{
			Message: "Name and email are required",
			Errors:  fieldErrors,
		})
		return
	}

	var passwordHash *string
	if req.Password != "" {
		hash, err := h.service.HashPassword(req.Password)
		if err != nil {
			slog.Error("failed to hash password", "error", err)
			response.Message(w, http.StatusInternalServerError, "Internal server error")
			return
		}
		passwordHash = &hash
	}

	err := h.repo.UpdateProfile(r.Context(), ident.UserID, req.Name, req.Email, passwordHash)
	if err != nil {
		switch {
		case errors.Is(err, user.ErrDuplicateEmail):
			response.Message(w, http.StatusBadRequest, "Email is already in use")
		case errors.Is(err, user.ErrUserNotFound):
			response.Message(w, http.StatusNotFound, "User not found")
		default:
			slog.Error("failed to update profile", "userId", ident.UserID, "error", err)
			response.Message(w, http.StatusInternalServerError, "Internal server error")
		}
		return
	}

	response.Message(w, http.StatusOK, "Profile updated successfully")
}
