// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package content

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/ysakurai/writing-go/internal/model"
)

// FileExt is the content file extension.
const FileExt = ".mdx"

// Repository enumerates and reads MDX files under the content root. Articles
// are derived fresh from disk on every read; nothing is cached or mutated in
// place.
type Repository struct {
	root   string
	logger *slog.Logger
}

// NewRepository creates a repository rooted at the given directory.
func NewRepository(root string, logger *slog.Logger) *Repository {
	if logger == nil {
		logger = slog.Default()
	}
	return &Repository{root: root, logger: logger}
}

// Root returns the content root directory.
func (r *Repository) Root() string {
	return r.root
}

// ListArticleFiles returns the MDX file names inside the category directory.
// A missing or unreadable directory yields an empty list, never an error, so
// an unconfigured category does not break aggregate listings.
func (r *Repository) ListArticleFiles(category model.Category) []string {
	dir := filepath.Join(r.root, string(category))
	entries, err := os.ReadDir(dir)
	if err != nil {
		r.logger.Debug("content directory not readable", "dir", dir, "error", err)
		return nil
	}

	var files []string
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), FileExt) {
			continue
		}
		files = append(files, entry.Name())
	}
	return files
}

// ReadArticleFile reads and parses the single file for slug in category.
// A missing file yields (nil, nil); callers branch on absence rather than
// catching an error. Other read or parse failures propagate.
func (r *Repository) ReadArticleFile(category model.Category, slug string) (*model.Article, error) {
	path := filepath.Join(r.root, string(category), slug+FileExt)
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			r.logger.Debug("content file not found", "path", path)
			return nil, nil
		}
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}

	article, err := ParseArticle(string(data), slug)
	if err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	return &article, nil
}
