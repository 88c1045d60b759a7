// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

// Package model defines the domain types shared across the application.
package model

// Category identifies a content section of the blog.
type Category string

// Valid content categories.
const (
	CategoryAsset  Category = "asset"
	CategoryTech   Category = "tech"
	CategoryHealth Category = "health"
)

// Categories lists every valid category in display order.
var Categories = []Category{CategoryAsset, CategoryTech, CategoryHealth}

// IsValidCategory reports whether value names a known category.
func IsValidCategory(value string) bool {
	switch Category(value) {
	case CategoryAsset, CategoryTech, CategoryHealth:
		return true
	}
	return false
}

// Frontmatter holds the metadata block of an MDX content file exactly as
// parsed. Required-field presence is not validated here; absent fields stay
// zero-valued and surface downstream.
type Frontmatter struct {
	Title       string
	Description string
	Date        string // normalized to YYYY-MM-DD when the source value is a structured date
	UpdatedAt   string
	Category    string // not yet validated against the category enumeration
	Tags        []string
	Thumbnail   string
	Published   *bool // nil when absent from the source
}

// ArticleMeta is the listing view of a content article: everything except the
// body. The Date and UpdatedAt fields are ISO calendar dates (YYYY-MM-DD), so
// lexicographic comparison orders them chronologically.
type ArticleMeta struct {
	Slug        string   `json:"slug"`
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Date        string   `json:"date"`
	UpdatedAt   string   `json:"updatedAt,omitempty"`
	Category    Category `json:"category"`
	Tags        []string `json:"tags"`
	Thumbnail   string   `json:"thumbnail,omitempty"`
	Published   bool     `json:"published"`
}

// Article is the detail view of a content article.
type Article struct {
	ArticleMeta
	Content string `json:"content"`
}

// Meta returns the article stripped of its body.
func (a Article) Meta() ArticleMeta {
	return a.ArticleMeta
}
