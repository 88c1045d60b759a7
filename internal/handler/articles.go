// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package handler

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/ysakurai/writing-go/internal/articles"
	"github.com/ysakurai/writing-go/internal/model"
)

// ArticlesHandler serves the managed-article CRUD API. It talks to the Store
// interface only; which backend sits behind it is a deployment choice.
type ArticlesHandler struct {
	store  articles.Store
	logger *slog.Logger
}

// NewArticlesHandler creates a new articles handler.
func NewArticlesHandler(store articles.Store, logger *slog.Logger) *ArticlesHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return &ArticlesHandler{store: store, logger: logger}
}

// List handles GET /api/articles.
func (h *ArticlesHandler) List(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	opts := articles.ListOptions{
		SortBy:      articles.SortField(q.Get("sortBy")),
		SortOrder:   articles.SortOrder(q.Get("sortOrder")),
		SearchQuery: q.Get("searchQuery"),
	}
	if status := q.Get("status"); status != "" && model.IsValidArticleStatus(status) {
		opts.Status = model.ArticleStatus(status)
	}

	list, err := h.store.List(r.Context(), opts)
	if err != nil {
		h.logger.Error("listing articles", "error", err)
		writeError(w, http.StatusInternalServerError, "Failed to list articles")
		return
	}
	if list == nil {
		list = []model.ManagedArticle{}
	}
	writeJSON(w, http.StatusOK, list)
}

// createRequest keeps title and content untyped so a missing field and a
// wrong-typed field can be told apart for the validation messages.
type createRequest struct {
	Title    any      `json:"title"`
	Content  any      `json:"content"`
	Keywords []string `json:"keywords"`
	Status   string   `json:"status"`
}

// Create handles POST /api/articles.
func (h *ArticlesHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req createRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	title, ok := req.Title.(string)
	if !ok || title == "" {
		writeError(w, http.StatusBadRequest, "Title is required")
		return
	}
	content := ""
	if req.Content != nil {
		content, ok = req.Content.(string)
		if !ok {
			writeError(w, http.StatusBadRequest, "Content must be a string")
			return
		}
	}
	if req.Status != "" && !model.IsValidArticleStatus(req.Status) {
		writeError(w, http.StatusBadRequest, "Invalid status")
		return
	}

	article, err := h.store.Create(r.Context(), articles.CreateInput{
		Title:    title,
		Content:  content,
		Keywords: req.Keywords,
		Status:   model.ArticleStatus(req.Status),
	})
	if err != nil {
		h.logger.Error("creating article", "error", err)
		writeError(w, http.StatusInternalServerError, "Failed to create article")
		return
	}
	writeJSON(w, http.StatusCreated, article)
}

// Get handles GET /api/articles/{id}.
func (h *ArticlesHandler) Get(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	article, err := h.store.Get(r.Context(), id)
	if err != nil {
		h.logger.Error("getting article", "id", id, "error", err)
		writeError(w, http.StatusInternalServerError, "Failed to get article")
		return
	}
	if article == nil {
		writeError(w, http.StatusNotFound, "Article not found")
		return
	}
	writeJSON(w, http.StatusOK, article)
}

// Update handles PUT /api/articles/{id}.
func (h *ArticlesHandler) Update(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	var input articles.UpdateInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if input.Status != nil && !model.IsValidArticleStatus(string(*input.Status)) {
		writeError(w, http.StatusBadRequest, "Invalid status")
		return
	}

	article, err := h.store.Update(r.Context(), id, input)
	if err != nil {
		h.logger.Error("updating article", "id", id, "error", err)
		writeError(w, http.StatusInternalServerError, "Failed to update article")
		return
	}
	if article == nil {
		writeError(w, http.StatusNotFound, "Article not found")
		return
	}
	writeJSON(w, http.StatusOK, article)
}

// Delete handles DELETE /api/articles/{id}.
func (h *ArticlesHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	deleted, err := h.store.Delete(r.Context(), id)
	if err != nil {
		h.logger.Error("deleting article", "id", id, "error", err)
		writeError(w, http.StatusInternalServerError, "Failed to delete article")
		return
	}
	if !deleted {
		writeError(w, http.StatusNotFound, "Article not found")
		return
	}
	writeJSON(w, http.StatusOK, map[string]bool{"success": true})
}
