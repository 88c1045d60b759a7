// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

// Package articles implements the managed-article CRUD service: the Store
// interface consumed by HTTP handlers, the document-based Service with its
// pluggable persistence backends, and a REST client for delegating the whole
// store to an upstream API.
package articles

import (
	"context"

	"github.com/ysakurai/writing-go/internal/model"
)

// Store is the CRUD surface over the managed-article collection. Get and
// Update return (nil, nil) for an unknown ID; Delete returns (false, nil).
// Absence is a result, not an error.
type Store interface {
	List(ctx context.Context, opts ListOptions) ([]model.ManagedArticle, error)
	Get(ctx context.Context, id string) (*model.ManagedArticle, error)
	Create(ctx context.Context, input CreateInput) (*model.ManagedArticle, error)
	Update(ctx context.Context, id string, input UpdateInput) (*model.ManagedArticle, error)
	Delete(ctx context.Context, id string) (bool, error)
}

// Backend persists the whole article document. The Service reads and writes
// the collection as a unit; concurrent writers can lose updates, which is the
// accepted trade-off for a single-admin store.
type Backend interface {
	Load(ctx context.Context) (model.ArticlesData, error)
	Save(ctx context.Context, data model.ArticlesData) error
}

// CreateInput carries the fields for a new managed article. Keywords defaults
// to empty and Status to draft when unset.
type CreateInput struct {
	Title    string              `json:"title"`
	Content  string              `json:"content"`
	Keywords []string            `json:"keywords,omitempty"`
	Status   model.ArticleStatus `json:"status,omitempty"`
}

// UpdateInput carries a partial update. Nil fields are left untouched; an
// explicit empty value overwrites.
type UpdateInput struct {
	Title    *string              `json:"title,omitempty"`
	Content  *string              `json:"content,omitempty"`
	Keywords *[]string            `json:"keywords,omitempty"`
	Status   *model.ArticleStatus `json:"status,omitempty"`
}

// SortField selects the listing sort key.
type SortField string

// Listing sort keys.
const (
	SortByCreatedAt SortField = "createdAt"
	SortByUpdatedAt SortField = "updatedAt"
	SortByTitle     SortField = "title"
)

// SortOrder selects the listing sort direction.
type SortOrder string

// Listing sort directions.
const (
	SortAsc  SortOrder = "asc"
	SortDesc SortOrder = "desc"
)

// ListOptions filters and orders a listing. Zero values mean no status
// filter, no search, sort by creation time, newest first.
type ListOptions struct {
	Status      model.ArticleStatus
	SortBy      SortField
	SortOrder   SortOrder
	SearchQuery string
}
