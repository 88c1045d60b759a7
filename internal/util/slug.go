// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

// Package util holds small shared helpers.
package util

import "regexp"

// slugPattern matches URL-safe slugs: lowercase alphanumerics separated by
// single hyphens.
var slugPattern = regexp.MustCompile(`^[a-z0-9]+(?:-[a-z0-9]+)*$`)

// IsValidSlug reports whether s is a well-formed slug. Used on inbound path
// parameters before they touch the filesystem.
func IsValidSlug(s string) bool {
	return s != "" && len(s) <= 200 && slugPattern.MatchString(s)
}
