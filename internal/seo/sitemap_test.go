// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package seo

import (
	"encoding/xml"
	"strings"
	"testing"

	"github.com/ysakurai/writing-go/internal/model"
)

func TestGenerateSitemap(t *testing.T) {
	metas := []model.ArticleMeta{
		{Slug: "nisa-guide", Category: model.CategoryAsset, Date: "2024-01-10"},
		{Slug: "go-testing", Category: model.CategoryTech, Date: "2024-02-01", UpdatedAt: "2024-03-15"},
	}

	out, err := GenerateSitemap("https://example.com", metas)
	if err != nil {
		t.Fatalf("GenerateSitemap() error = %v", err)
	}

	var parsed Sitemap
	// Skip the XML header before unmarshalling
	body := strings.TrimPrefix(string(out), xml.Header)
	if err := xml.Unmarshal([]byte(body), &parsed); err != nil {
		t.Fatalf("output is not valid XML: %v", err)
	}

	// Homepage + 3 categories + 2 articles
	if len(parsed.URLs) != 6 {
		t.Fatalf("got %d urls, want 6", len(parsed.URLs))
	}
	if parsed.URLs[0].Loc != "https://example.com" {
		t.Errorf("first url = %q, want homepage", parsed.URLs[0].Loc)
	}

	var article, updated *SitemapURL
	for i := range parsed.URLs {
		switch parsed.URLs[i].Loc {
		case "https://example.com/asset/nisa-guide":
			article = &parsed.URLs[i]
		case "https://example.com/tech/go-testing":
			updated = &parsed.URLs[i]
		}
	}
	if article == nil || updated == nil {
		t.Fatalf("article urls missing: %+v", parsed.URLs)
	}
	if article.LastMod != "2024-01-10" {
		t.Errorf("lastmod = %q, want publication date fallback", article.LastMod)
	}
	if updated.LastMod != "2024-03-15" {
		t.Errorf("lastmod = %q, want update date", updated.LastMod)
	}
}

func TestGenerateRobots(t *testing.T) {
	out := GenerateRobots("https://example.com/")

	if !strings.Contains(out, "User-agent: *") {
		t.Error("missing user-agent line")
	}
	if !strings.Contains(out, "Disallow: /api/") || !strings.Contains(out, "Disallow: /auth/") {
		t.Errorf("missing disallow rules:\n%s", out)
	}
	if !strings.Contains(out, "Sitemap: https://example.com/sitemap.xml") {
		t.Errorf("missing or malformed sitemap line:\n%s", out)
	}
}
