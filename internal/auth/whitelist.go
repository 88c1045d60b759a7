// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

// Package auth implements the admin access whitelist. Identity is established
// upstream; this package only answers whether a verified email may sign in.
package auth

import (
	"sort"
	"strings"
)

// Whitelist is an immutable set of allowed admin emails. Membership checks
// are case-insensitive. An empty whitelist denies everyone; access is never
// open by default.
type Whitelist struct {
	emails map[string]struct{}
}

// NewWhitelist parses a comma-separated email list. Entries are trimmed and
// lowercased; empty entries are dropped, so a trailing comma or an unset
// variable is harmless.
func NewWhitelist(raw string) *Whitelist {
	emails := make(map[string]struct{})
	for _, entry := range strings.Split(raw, ",") {
		email := strings.ToLower(strings.TrimSpace(entry))
		if email == "" {
			continue
		}
		emails[email] = struct{}{}
	}
	return &Whitelist{emails: emails}
}

// IsAllowed reports whether email may sign in. An empty email is always
// denied.
func (w *Whitelist) IsAllowed(email string) bool {
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" {
		return false
	}
	_, ok := w.emails[email]
	return ok
}

// Size returns the number of whitelisted emails.
func (w *Whitelist) Size() int {
	return len(w.emails)
}

// Emails returns the whitelisted emails in sorted order.
func (w *Whitelist) Emails() []string {
	out := make([]string, 0, len(w.emails))
	for email := range w.emails {
		out = append(out, email)
	}
	sort.Strings(out)
	return out
}
