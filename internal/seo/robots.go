// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package seo

import "strings"

// GenerateRobots returns the robots.txt content. The admin API and auth
// endpoints are kept out of crawlers; everything else is open.
func GenerateRobots(siteURL string) string {
	var sb strings.Builder

	sb.WriteString("User-agent: *\n")
	sb.WriteString("Disallow: /api/\n")
	sb.WriteString("Disallow: /auth/\n")
	sb.WriteString("Allow: /\n")

	if siteURL != "" {
		sb.WriteString("\n")
		sb.WriteString("Sitemap: ")
		sb.WriteString(strings.TrimSuffix(siteURL, "/"))
		sb.WriteString("/sitemap.xml\n")
	}

	return sb.String()
}
