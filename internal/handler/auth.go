package handler

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/urlfence/urlfence/internal/auth"
	"github.com/urlfence/urlfence/internal/handler/dto"
	"github.com/urlfence/urlfence/internal/validate"
)

// AuthHandler handles login and logout for the shared admin identity.
type AuthHandler struct {
	creds        auth.AdminCredentials
	secureCookie bool
	logger       *slog.Logger
}

// NewAuthHandler creates a new AuthHandler.
// secureCookie should be true in production so the cookie is HTTPS-only.
func NewAuthHandler(creds auth.AdminCredentials, secureCookie bool, logger *slog.Logger) *AuthHandler {
	return &AuthHandler{
		creds:        creds,
		secureCookie: secureCookie,
		logger:       logger,
	}
}

// Login handles POST /api/auth/login.
// On success the auth cookie is set; on credential mismatch the same 401 is
// returned whether the email or the password was wrong.
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req dto.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, msgInvalidBody)
		return
	}

	if errs := validate.Login(req.Email, req.Password); len(errs) > 0 {
		writeValidationErrors(w, errs)
		return
	}

	if !h.creds.Verify(req.Email, req.Password) {
		h.logger.Warn("login failed",
			slog.String("ip", r.RemoteAddr),
		)
		writeError(w, http.StatusUnauthorized, msgInvalidCredentials)
		return
	}

	auth.SetSessionCookie(w, h.secureCookie)

	h.logger.Info("login succeeded",
		slog.String("ip", r.RemoteAddr),
	)

	writeJSON(w, http.StatusOK, dto.MessageResponse{Message: msgLoginOK})
}

// Logout handles POST /api/auth/logout.
// Unconditionally clears the auth cookie; there is no server state to
// invalidate.
func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	auth.ClearSessionCookie(w, h.secureCookie)
	writeJSON(w, http.StatusOK, dto.MessageResponse{Message: msgLogoutOK})
}
