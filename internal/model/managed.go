// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package model

import "time"

// ArticleStatus is the lifecycle state of a managed article.
type ArticleStatus string

// Managed article statuses. Every transition between them is permitted.
const (
	StatusDraft     ArticleStatus = "draft"
	StatusPublished ArticleStatus = "published"
	StatusArchived  ArticleStatus = "archived"
)

// IsValidArticleStatus reports whether value names a known status.
func IsValidArticleStatus(value string) bool {
	switch ArticleStatus(value) {
	case StatusDraft, StatusPublished, StatusArchived:
		return true
	}
	return false
}

// ManagedArticle is an article managed through the admin CRUD surface. It is a
// separate entity from the MDX-backed content Article. Timestamps are RFC 3339
// strings, matching the persisted JSON document.
//
// PublishedAt is stamped once, on the first transition into the published
// status, and never reset afterwards.
type ManagedArticle struct {
	ID          string        `json:"id"`
	Title       string        `json:"title"`
	Content     string        `json:"content"`
	Keywords    []string      `json:"keywords"`
	Status      ArticleStatus `json:"status"`
	CreatedAt   string        `json:"createdAt"`
	UpdatedAt   string        `json:"updatedAt"`
	PublishedAt *string       `json:"publishedAt"`
}

// IsPublished returns true if the article is published.
func (a *ManagedArticle) IsPublished() bool {
	return a.Status == StatusPublished
}

// ArticlesDataVersion is the current document schema version.
const ArticlesDataVersion = "1.0"

// ArticlesData is the persisted managed-article document. The article order is
// physical layout only; the collection is keyed by ID. UpdatedAt is the
// document-level stamp refreshed by the storage backend on every save,
// distinct from the per-record timestamps.
type ArticlesData struct {
	Version   string           `json:"version"`
	UpdatedAt string           `json:"updatedAt"`
	Articles  []ManagedArticle `json:"articles"`
}

// NewArticlesData returns an empty document at the current schema version.
func NewArticlesData() ArticlesData {
	return ArticlesData{
		Version:   ArticlesDataVersion,
		UpdatedAt: time.Now().UTC().Format(time.RFC3339Nano),
		Articles:  []ManagedArticle{},
	}
}
