// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

// Package middleware provides HTTP middleware for authentication, rate
// limiting and security headers.
package middleware

import (
	"encoding/json"
	"net/http"

	"github.com/alexedwards/scs/v2"
)

// ContextKey is a type for context keys to avoid collisions.
type ContextKey string

// ContextKeyEmail carries the signed-in admin email.
const ContextKeyEmail ContextKey = "email"

// SessionKeyEmail is the session key holding the signed-in admin email.
const SessionKeyEmail = "email"

// RequireUser creates middleware that requires a signed-in admin session.
// This is a JSON API, so a missing session gets a 401 body rather than a
// login redirect.
func RequireUser(sm *scs.SessionManager) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			email := sm.GetString(r.Context(), SessionKeyEmail)
			if email == "" {
				writeJSONError(w, http.StatusUnauthorized, "Authentication required")
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

// UserEmail returns the signed-in admin email from the session, or "".
func UserEmail(sm *scs.SessionManager, r *http.Request) string {
	return sm.GetString(r.Context(), SessionKeyEmail)
}

// IsAuthenticated reports whether the request carries a signed-in session.
func IsAuthenticated(sm *scs.SessionManager, r *http.Request) bool {
	return UserEmail(sm, r) != ""
}

// writeJSONError writes a JSON error body with the given status.
func writeJSONError(w http.ResponseWriter, status int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(map[string]string{"error": message})
}
