// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package model

import (
	"encoding/json"
	"strings"
	"testing"
)

func TestIsValidCategory(t *testing.T) {
	for _, c := range Categories {
		if !IsValidCategory(string(c)) {
			t.Errorf("IsValidCategory(%q) = false", c)
		}
	}
	for _, invalid := range []string{"", "cooking", "Asset", "tech/"} {
		if IsValidCategory(invalid) {
			t.Errorf("IsValidCategory(%q) = true", invalid)
		}
	}
}

func TestIsValidArticleStatus(t *testing.T) {
	for _, s := range []string{"draft", "published", "archived"} {
		if !IsValidArticleStatus(s) {
			t.Errorf("IsValidArticleStatus(%q) = false", s)
		}
	}
	if IsValidArticleStatus("limbo") || IsValidArticleStatus("") {
		t.Error("unknown statuses must be rejected")
	}
}

func TestManagedArticle_PublishedAtNullInJSON(t *testing.T) {
	a := ManagedArticle{
		ID:        "x",
		Title:     "t",
		Keywords:  []string{},
		Status:    StatusDraft,
		CreatedAt: "2024-01-01T00:00:00Z",
		UpdatedAt: "2024-01-01T00:00:00Z",
	}

	raw, err := json.Marshal(a)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(raw), `"publishedAt":null`) {
		t.Errorf("unpublished article must encode publishedAt as null: %s", raw)
	}
	if !strings.Contains(string(raw), `"keywords":[]`) {
		t.Errorf("empty keywords must encode as [], got: %s", raw)
	}
}

func TestCategoryMetas_CoverAllCategories(t *testing.T) {
	for _, c := range Categories {
		meta, ok := CategoryMetas[c]
		if !ok {
			t.Errorf("no metadata for category %q", c)
			continue
		}
		if meta.Title == "" || meta.Description == "" {
			t.Errorf("incomplete metadata for %q: %+v", c, meta)
		}
	}
}
