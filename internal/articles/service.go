// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package articles

import (
	"context"
	"fmt"
	"slices"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"github.com/ysakurai/writing-go/internal/model"
)

// Service implements Store over a document Backend. Every mutation is a full
// load-modify-save cycle; there is no record-level locking.
type Service struct {
	backend Backend
	now     func() time.Time
}

// NewService creates a service over the given backend.
func NewService(backend Backend) *Service {
	return &Service{backend: backend, now: time.Now}
}

func (s *Service) timestamp() string {
	return s.now().UTC().Format(time.RFC3339Nano)
}

// List returns articles matching opts, filtered then sorted.
func (s *Service) List(ctx context.Context, opts ListOptions) ([]model.ManagedArticle, error) {
	data, err := s.backend.Load(ctx)
	if err != nil {
		return nil, err
	}

	result := make([]model.ManagedArticle, 0, len(data.Articles))
	for _, a := range data.Articles {
		if opts.Status != "" && a.Status != opts.Status {
			continue
		}
		if opts.SearchQuery != "" && !matchesQuery(a, opts.SearchQuery) {
			continue
		}
		result = append(result, a)
	}

	sortArticles(result, opts.SortBy, opts.SortOrder)
	return result, nil
}

// Get returns the article with id, or nil when absent.
func (s *Service) Get(ctx context.Context, id string) (*model.ManagedArticle, error) {
	data, err := s.backend.Load(ctx)
	if err != nil {
		return nil, err
	}
	for i := range data.Articles {
		if data.Articles[i].ID == id {
			a := data.Articles[i]
			return &a, nil
		}
	}
	return nil, nil
}

// Create appends a new article and persists the document. A published status
// at creation time does not stamp PublishedAt; only an update transition does.
func (s *Service) Create(ctx context.Context, input CreateInput) (*model.ManagedArticle, error) {
	data, err := s.backend.Load(ctx)
	if err != nil {
		return nil, err
	}

	keywords := input.Keywords
	if keywords == nil {
		keywords = []string{}
	}
	status := input.Status
	if status == "" {
		status = model.StatusDraft
	}

	ts := s.timestamp()
	article := model.ManagedArticle{
		ID:        uuid.NewString(),
		Title:     input.Title,
		Content:   input.Content,
		Keywords:  keywords,
		Status:    status,
		CreatedAt: ts,
		UpdatedAt: ts,
	}

	data.Articles = append(data.Articles, article)
	if err := s.backend.Save(ctx, data); err != nil {
		return nil, fmt.Errorf("saving articles: %w", err)
	}
	return &article, nil
}

// Update merges input into the article with id and persists the document.
// Returns (nil, nil) without saving when the ID is unknown. PublishedAt is
// stamped on the first transition into published and kept on every later
// transition, including republishing.
func (s *Service) Update(ctx context.Context, id string, input UpdateInput) (*model.ManagedArticle, error) {
	data, err := s.backend.Load(ctx)
	if err != nil {
		return nil, err
	}

	idx := -1
	for i := range data.Articles {
		if data.Articles[i].ID == id {
			idx = i
			break
		}
	}
	if idx == -1 {
		return nil, nil
	}

	existing := data.Articles[idx]
	updated := existing
	if input.Title != nil {
		updated.Title = *input.Title
	}
	if input.Content != nil {
		updated.Content = *input.Content
	}
	if input.Keywords != nil {
		updated.Keywords = *input.Keywords
	}
	if input.Status != nil {
		updated.Status = *input.Status
	}

	now := s.timestamp()
	updated.UpdatedAt = now
	if updated.Status == model.StatusPublished && existing.Status != model.StatusPublished {
		updated.PublishedAt = &now
	}

	data.Articles[idx] = updated
	if err := s.backend.Save(ctx, data); err != nil {
		return nil, fmt.Errorf("saving articles: %w", err)
	}
	return &updated, nil
}

// Delete removes the article with id. Returns (false, nil) without saving
// when the ID is unknown.
func (s *Service) Delete(ctx context.Context, id string) (bool, error) {
	data, err := s.backend.Load(ctx)
	if err != nil {
		return false, err
	}

	idx := -1
	for i := range data.Articles {
		if data.Articles[i].ID == id {
			idx = i
			break
		}
	}
	if idx == -1 {
		return false, nil
	}

	data.Articles = slices.Delete(data.Articles, idx, idx+1)
	if err := s.backend.Save(ctx, data); err != nil {
		return false, fmt.Errorf("saving articles: %w", err)
	}
	return true, nil
}

// matchesQuery reports whether the article matches the search query in its
// title, content or any keyword, case-insensitively.
func matchesQuery(a model.ManagedArticle, query string) bool {
	q := strings.ToLower(query)
	if strings.Contains(strings.ToLower(a.Title), q) {
		return true
	}
	if strings.Contains(strings.ToLower(a.Content), q) {
		return true
	}
	for _, kw := range a.Keywords {
		if strings.Contains(strings.ToLower(kw), q) {
			return true
		}
	}
	return false
}

// sortArticles orders the slice in place. Title sorting uses Japanese
// collation; a fresh collator is built per call since collators are not
// goroutine-safe. Timestamp fields are RFC 3339, so string comparison is
// chronological, but they are parsed anyway to tolerate mixed precision.
func sortArticles(articles []model.ManagedArticle, by SortField, order SortOrder) {
	if by == "" {
		by = SortByCreatedAt
	}
	if order == "" {
		order = SortDesc
	}

	var less func(a, b model.ManagedArticle) bool
	switch by {
	case SortByTitle:
		c := collate.New(language.Japanese)
		less = func(a, b model.ManagedArticle) bool {
			return c.CompareString(a.Title, b.Title) < 0
		}
	case SortByUpdatedAt:
		less = func(a, b model.ManagedArticle) bool {
			return parseStamp(a.UpdatedAt).Before(parseStamp(b.UpdatedAt))
		}
	default:
		less = func(a, b model.ManagedArticle) bool {
			return parseStamp(a.CreatedAt).Before(parseStamp(b.CreatedAt))
		}
	}

	sort.SliceStable(articles, func(i, j int) bool {
		if order == SortAsc {
			return less(articles[i], articles[j])
		}
		return less(articles[j], articles[i])
	})
}

func parseStamp(s string) time.Time {
	t, err := time.Parse(time.RFC3339Nano, s)
	if err != nil {
		return time.Time{}
	}
	return t
}
