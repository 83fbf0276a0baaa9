package handler

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/sp1r1tt/dashboard2025/internal/api/response"
	"github.com/sp1r1tt/dashboard2025/internal/auth"
)

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type loginResponse struct {
	Message string `json:"message"`
	Token   string `json:"token"`
}

// AuthHandler handles the login and logout endpoints.
type AuthHandler struct {
	service     *auth.Service
	secure      bool
	tokenMaxAge int // seconds
}

// NewAuthHandler creates a new AuthHandler. tokenTTL controls the session
// cookie's Max-Age; secure marks the cookie Secure for TLS deployments.
func NewAuthHandler(service *auth.Service, secure bool, tokenTTL time.Duration) *AuthHandler {
	return &AuthHandler{
		service:     service,
		secure:      secure,
		tokenMaxAge: int(tokenTTL.Seconds()),
	}
}

// Login handles POST /api/auth/login. On success the token is both set as
// an http-only cookie for browsers and returned in the body for
// header-based clients.
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, 1<<20)
	var req loginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Message(w, http.StatusBadRequest, "Request body must be valid JSON")
		return
	}

	if req.Email == "" || req.Password == "" {
		response.Message(w, http.StatusBadRequest, "Email and password are required")
		return
	}

	token, err := h.service.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, auth.ErrInvalidCredentials) {
			// Same status and body for unknown email and wrong password.
			response.Message(w, http.StatusUnauthorized, "Invalid credentials")
			return
		}
		slog.Error("login failed", "error", err)
		response.Message(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	http.SetCookie(w, h.sessionCookie(token, h.tokenMaxAge))
	response.JSON(w, http.StatusOK, loginResponse{Message: "Login successful", Token: token})
}

// Logout handles POST /api/auth/logout. It only clears the client cookie;
// tokens already issued stay cryptographically valid until natural expiry.
func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	http.SetCookie(w, h.sessionCookie("", -1))
	response.Message(w, http.StatusOK, "Logged out successfully")
}

func (h *AuthHandler) sessionCookie(value string, maxAge int) *http.Cookie {
	return &http.Cookie{
		Name:     auth.CookieName,
		Value:    value,
		Path:     "/",
		MaxAge:   maxAge,
		HttpOnly: true,
		Secure:   h.secure,
		SameSite: http.SameSiteStrictMode,
	}
}
