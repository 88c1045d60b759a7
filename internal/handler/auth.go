// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package handler

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strings"

	"github.com/alexedwards/scs/v2"

	"github.com/ysakurai/writing-go/internal/auth"
	"github.com/ysakurai/writing-go/internal/middleware"
)

// AuthHandler serves login, logout and the current-user lookup. Identity
// verification happens upstream at the OAuth provider; by the time a request
// lands here the email is already proven, so the only question left is
// whitelist membership.
type AuthHandler struct {
	whitelist *auth.Whitelist
	sm        *scs.SessionManager
	logger    *slog.Logger
}

// NewAuthHandler creates a new auth handler.
func NewAuthHandler(whitelist *auth.Whitelist, sm *scs.SessionManager, logger *slog.Logger) *AuthHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return &AuthHandler{whitelist: whitelist, sm: sm, logger: logger}
}

// loginRequest is the POST /auth/login body.
type loginRequest struct {
	Email string `json:"email"`
}

// Login handles POST /auth/login.
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	email := strings.ToLower(strings.TrimSpace(req.Email))
	if email == "" {
		writeError(w, http.StatusBadRequest, "Email is required")
		return
	}

	if !h.whitelist.IsAllowed(email) {
		h.logger.Warn("sign-in denied", "email", email, "remote_addr", r.RemoteAddr)
		writeError(w, http.StatusForbidden, "Email not allowed")
		return
	}

	// Rotate the session token on privilege change
	if err := h.sm.RenewToken(r.Context()); err != nil {
		h.logger.Error("renewing session token", "error", err)
		writeError(w, http.StatusInternalServerError, "Failed to sign in")
		return
	}
	h.sm.Put(r.Context(), middleware.SessionKeyEmail, email)

	h.logger.Info("admin signed in", "email", email)
	writeJSON(w, http.StatusOK, map[string]string{"email": email})
}

// Logout handles POST /auth/logout.
func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	if err := h.sm.Destroy(r.Context()); err != nil {
		h.logger.Error("destroying session", "error", err)
		writeError(w, http.StatusInternalServerError, "Failed to sign out")
		return
	}
	writeJSON(w, http.StatusOK, map[string]bool{"success": true})
}

// Me handles GET /auth/me.
func (h *AuthHandler) Me(w http.ResponseWriter, r *http.Request) {
	email := middleware.UserEmail(h.sm, r)
	if email == "" {
		writeError(w, http.StatusUnauthorized, "Authentication required")
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"email": email})
}
