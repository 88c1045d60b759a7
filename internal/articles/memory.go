// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package articles

import (
	"context"
	"slices"
	"sync"
	"time"

	"github.com/ysakurai/writing-go/internal/model"
)

// MemoryBackend keeps the article document in process memory. The mutex
// guards the slice against data races only; it does not serialize the
// load-modify-save cycle, so the store-level lost-update behavior matches the
// persistent backends.
type MemoryBackend struct {
	mu   sync.Mutex
	data model.ArticlesData
}

// NewMemoryBackend returns an empty in-memory backend.
func NewMemoryBackend() *MemoryBackend {
	return &MemoryBackend{data: model.NewArticlesData()}
}

// Load returns a copy of the current document.
func (b *MemoryBackend) Load(_ context.Context) (model.ArticlesData, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	data := b.data
	data.Articles = slices.Clone(b.data.Articles)
	return data, nil
}

// Save replaces the document and refreshes its stamp.
func (b *MemoryBackend) Save(_ context.Context, data model.ArticlesData) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	data.UpdatedAt = time.Now().UTC().Format(time.RFC3339Nano)
	data.Articles = slices.Clone(data.Articles)
	b.data = data
	return nil
}
