package handlers

import (
	"crypto/subtle"
	"log/slog"
	"net/http"
	"time"

	"hackfest-backend/internal/middleware"
)

type AuthHandler struct {
	adminPassword string
	jwtSecret     string
	tokenTTL      time.Duration
}

func NewAuthHandler(adminPassword, jwtSecret string, tokenTTL time.Duration) *AuthHandler {
	return &AuthHandler{
		adminPassword: adminPassword,
		jwtSecret:     jwtSecret,
		tokenTTL:      tokenTTL,
	}
}

type LoginRequest struct {
	Password string `json:"password"`
}

type LoginResponse struct {
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expires_at"`
}

// --- POST /admin/login ---

func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req LoginRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.Password == "" {
		writeError(w, http.StatusBadRequest, "password is required")
		return
	}

	if subtle.ConstantTimeCompare([]byte(req.Password), []byte(h.adminPassword)) != 1 {
		slog.Warn("admin login rejected", "remote", r.RemoteAddr)
		writeError(w, http.StatusUnauthorized, "invalid password")
		return
	}

	token, expiresAt, err := middleware.IssueAdminToken(h.jwtSecret, "admin", h.tokenTTL)
	if err != nil {
		slog.Error("error signing admin token", "error", err)
		writeError(w, http.StatusInternalServerError, "internal server error")
		return
	}

	writeJSON(w, http.StatusOK, LoginResponse{Token: token, ExpiresAt: expiresAt})
}
