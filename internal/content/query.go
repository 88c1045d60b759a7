// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package content

import (
	"sort"
	"strings"

	"github.com/ysakurai/writing-go/internal/model"
)

// Library is the read-only query surface over the content repository. All
// operations are idempotent and side-effect free; concurrent calls are safe.
type Library struct {
	repo *Repository
}

// NewLibrary creates a query library over the given repository.
func NewLibrary(repo *Repository) *Library {
	return &Library{repo: repo}
}

// ListOptions control draft visibility for listing operations. Direct slug
// lookup ignores draft state.
type ListOptions struct {
	IncludeDrafts bool
}

// ArticlesByCategory returns the category's article summaries sorted by date
// descending. Drafts are excluded unless opts.IncludeDrafts is set.
func (l *Library) ArticlesByCategory(category model.Category, opts ListOptions) ([]model.ArticleMeta, error) {
	metas, err := l.collectCategory(category, opts)
	if err != nil {
		return nil, err
	}
	sortByDateDesc(metas)
	return metas, nil
}

// AllArticles returns every article across all categories sorted by date
// descending. Categories are collected unsorted and the combined slice is
// sorted once at the end; sorting per category and merging would not give a
// global order.
func (l *Library) AllArticles(opts ListOptions) ([]model.ArticleMeta, error) {
	var all []model.ArticleMeta
	for _, category := range model.Categories {
		metas, err := l.collectCategory(category, opts)
		if err != nil {
			return nil, err
		}
		all = append(all, metas...)
	}
	sortByDateDesc(all)
	return all, nil
}

// LatestArticles returns the newest published articles across all categories,
// at most limit entries.
func (l *Library) LatestArticles(limit int) ([]model.ArticleMeta, error) {
	if limit <= 0 {
		return []model.ArticleMeta{}, nil
	}
	all, err := l.AllArticles(ListOptions{})
	if err != nil {
		return nil, err
	}
	if len(all) > limit {
		all = all[:limit]
	}
	return all, nil
}

// ArticleBySlug returns the full article for slug, or nil when absent.
// Drafts are retrievable here: the published gate applies to listings only.
func (l *Library) ArticleBySlug(category model.Category, slug string) (*model.Article, error) {
	return l.repo.ReadArticleFile(category, slug)
}

// RelatedArticles returns up to limit published articles from the same
// category, excluding currentSlug. There is no fallback to other categories
// when fewer than limit remain.
func (l *Library) RelatedArticles(category model.Category, currentSlug string, limit int) ([]model.ArticleMeta, error) {
	if limit <= 0 {
		return []model.ArticleMeta{}, nil
	}
	articles, err := l.ArticlesByCategory(category, ListOptions{})
	if err != nil {
		return nil, err
	}

	related := make([]model.ArticleMeta, 0, limit)
	for _, a := range articles {
		if a.Slug == currentSlug {
			continue
		}
		related = append(related, a)
		if len(related) == limit {
			break
		}
	}
	return related, nil
}

func (l *Library) collectCategory(category model.Category, opts ListOptions) ([]model.ArticleMeta, error) {
	files := l.repo.ListArticleFiles(category)
	metas := make([]model.ArticleMeta, 0, len(files))
	for _, name := range files {
		slug := strings.TrimSuffix(name, FileExt)
		article, err := l.repo.ReadArticleFile(category, slug)
		if err != nil {
			return nil, err
		}
		if article == nil {
			continue
		}
		if !opts.IncludeDrafts && !article.Published {
			continue
		}
		metas = append(metas, article.Meta())
	}
	return metas, nil
}

// sortByDateDesc orders summaries newest first. Dates are fixed-width ISO
// calendar dates, so plain string comparison is chronological. The sort is
// stable: equal dates keep their insertion order.
func sortByDateDesc(metas []model.ArticleMeta) {
	sort.SliceStable(metas, func(i, j int) bool {
		return metas[i].Date > metas[j].Date
	})
}
