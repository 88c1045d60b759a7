// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package articles

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"github.com/ysakurai/writing-go/internal/model"
)

// FileBackend persists the article document as a JSON file on local disk.
type FileBackend struct {
	path string
}

// NewFileBackend returns a backend storing the document at path. The file is
// created on first save.
func NewFileBackend(path string) *FileBackend {
	return &FileBackend{path: path}
}

// Load reads the document from disk. A missing file yields an empty document;
// unreadable or corrupt content is an error so a truncated file is never
// silently overwritten with an empty collection.
func (b *FileBackend) Load(_ context.Context) (model.ArticlesData, error) {
	raw, err := os.ReadFile(b.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return model.NewArticlesData(), nil
		}
		return model.ArticlesData{}, fmt.Errorf("reading %s: %w", b.path, err)
	}

	var data model.ArticlesData
	if err := json.Unmarshal(raw, &data); err != nil {
		return model.ArticlesData{}, fmt.Errorf("parsing %s: %w", b.path, err)
	}
	if data.Articles == nil {
		data.Articles = []model.ManagedArticle{}
	}
	return data, nil
}

// Save writes the document to disk, creating parent directories as needed.
func (b *FileBackend) Save(_ context.Context, data model.ArticlesData) error {
	data.UpdatedAt = time.Now().UTC().Format(time.RFC3339Nano)

	raw, err := json.MarshalIndent(data, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding articles: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(b.path), 0o755); err != nil {
		return fmt.Errorf("creating %s: %w", filepath.Dir(b.path), err)
	}
	if err := os.WriteFile(b.path, raw, 0o644); err != nil {
		return fmt.Errorf("writing %s: %w", b.path, err)
	}
	return nil
}
