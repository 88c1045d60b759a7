// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package handler

import (
	"log/slog"
	"net/http"

	"github.com/alexedwards/scs/v2"
	"github.com/go-chi/chi/v5"

	"github.com/ysakurai/writing-go/internal/content"
	"github.com/ysakurai/writing-go/internal/markdown"
	"github.com/ysakurai/writing-go/internal/middleware"
	"github.com/ysakurai/writing-go/internal/model"
	"github.com/ysakurai/writing-go/internal/seo"
	"github.com/ysakurai/writing-go/internal/util"
)

// Listing defaults.
const (
	defaultLatestLimit  = 5
	defaultRelatedLimit = 3
)

// ContentHandler serves the public content API: category listings, article
// detail with rendered HTML and structured data, and the SEO documents.
type ContentHandler struct {
	library  *content.Library
	renderer *markdown.Renderer
	sm       *scs.SessionManager
	site     model.SiteConfig
	logger   *slog.Logger
}

// NewContentHandler creates a new content handler.
func NewContentHandler(library *content.Library, renderer *markdown.Renderer, sm *scs.SessionManager, site model.SiteConfig, logger *slog.Logger) *ContentHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return &ContentHandler{
		library:  library,
		renderer: renderer,
		sm:       sm,
		site:     site,
		logger:   logger,
	}
}

// Latest handles GET /api/content/latest.
func (h *ContentHandler) Latest(w http.ResponseWriter, r *http.Request) {
	limit := parseLimitParam(r, "limit", defaultLatestLimit)

	metas, err := h.library.LatestArticles(limit)
	if err != nil {
		h.logger.Error("listing latest articles", "error", err)
		writeError(w, http.StatusInternalServerError, "Failed to list articles")
		return
	}
	writeJSON(w, http.StatusOK, metas)
}

// ListByCategory handles GET /api/content/{category}. Drafts are included
// only for a signed-in admin asking for them explicitly.
func (h *ContentHandler) ListByCategory(w http.ResponseWriter, r *http.Request) {
	category := chi.URLParam(r, "category")
	if !model.IsValidCategory(category) {
		writeError(w, http.StatusNotFound, "Category not found")
		return
	}

	opts := content.ListOptions{}
	if r.URL.Query().Get("drafts") == "1" && middleware.IsAuthenticated(h.sm, r) {
		opts.IncludeDrafts = true
	}

	metas, err := h.library.ArticlesByCategory(model.Category(category), opts)
	if err != nil {
		h.logger.Error("listing category", "category", category, "error", err)
		writeError(w, http.StatusInternalServerError, "Failed to list articles")
		return
	}
	writeJSON(w, http.StatusOK, metas)
}

// articleDetail is the detail response: the raw article plus the rendered
// body and the SEO payloads a page needs.
type articleDetail struct {
	model.Article
	HTML        string               `json:"html"`
	Headings    []markdown.Heading   `json:"headings"`
	JSONLD      seo.ArticleJSONLD    `json:"jsonLd"`
	Breadcrumbs seo.BreadcrumbJSONLD `json:"breadcrumbs"`
}

// Detail handles GET /api/content/{category}/{slug}.
func (h *ContentHandler) Detail(w http.ResponseWriter, r *http.Request) {
	category := chi.URLParam(r, "category")
	slug := chi.URLParam(r, "slug")
	if !model.IsValidCategory(category) || !util.IsValidSlug(slug) {
		writeError(w, http.StatusNotFound, "Article not found")
		return
	}

	article, err := h.library.ArticleBySlug(model.Category(category), slug)
	if err != nil {
		h.logger.Error("reading article", "category", category, "slug", slug, "error", err)
		writeError(w, http.StatusInternalServerError, "Failed to read article")
		return
	}
	if article == nil {
		writeError(w, http.StatusNotFound, "Article not found")
		return
	}

	html, err := h.renderer.Render(article.Content)
	if err != nil {
		h.logger.Error("rendering article", "slug", slug, "error", err)
		writeError(w, http.StatusInternalServerError, "Failed to render article")
		return
	}
	headings, err := markdown.ExtractHeadings(article.Content)
	if err != nil {
		h.logger.Error("extracting headings", "slug", slug, "error", err)
		writeError(w, http.StatusInternalServerError, "Failed to render article")
		return
	}

	categoryMeta := model.CategoryMetas[article.Category]
	breadcrumbs := seo.NewBreadcrumbJSONLD(h.site.URL, []seo.BreadcrumbItem{
		{Name: h.site.Name, Path: ""},
		{Name: categoryMeta.Title, Path: "/" + string(article.Category)},
		{Name: article.Title, Path: "/" + string(article.Category) + "/" + article.Slug},
	})

	writeJSON(w, http.StatusOK, articleDetail{
		Article:     *article,
		HTML:        html,
		Headings:    headings,
		JSONLD:      seo.NewArticleJSONLD(article.Meta(), h.site.URL, h.site.Name),
		Breadcrumbs: breadcrumbs,
	})
}

// Related handles GET /api/content/{category}/{slug}/related.
func (h *ContentHandler) Related(w http.ResponseWriter, r *http.Request) {
	category := chi.URLParam(r, "category")
	slug := chi.URLParam(r, "slug")
	if !model.IsValidCategory(category) {
		writeError(w, http.StatusNotFound, "Category not found")
		return
	}
	limit := parseLimitParam(r, "limit", defaultRelatedLimit)

	metas, err := h.library.RelatedArticles(model.Category(category), slug, limit)
	if err != nil {
		h.logger.Error("listing related articles", "category", category, "error", err)
		writeError(w, http.StatusInternalServerError, "Failed to list articles")
		return
	}
	writeJSON(w, http.StatusOK, metas)
}

// siteResponse is the /api/site payload.
type siteResponse struct {
	Site       model.SiteConfig                      `json:"site"`
	Categories map[model.Category]model.CategoryMeta `json:"categories"`
}

// Site handles GET /api/site.
func (h *ContentHandler) Site(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, siteResponse{
		Site:       h.site,
		Categories: model.CategoryMetas,
	})
}

// Sitemap handles GET /sitemap.xml.
func (h *ContentHandler) Sitemap(w http.ResponseWriter, _ *http.Request) {
	metas, err := h.library.AllArticles(content.ListOptions{})
	if err != nil {
		h.logger.Error("building sitemap", "error", err)
		http.Error(w, "Failed to build sitemap", http.StatusInternalServerError)
		return
	}

	xml, err := seo.GenerateSitemap(h.site.URL, metas)
	if err != nil {
		h.logger.Error("encoding sitemap", "error", err)
		http.Error(w, "Failed to build sitemap", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/xml; charset=utf-8")
	_, _ = w.Write(xml)
}

// Robots handles GET /robots.txt.
func (h *ContentHandler) Robots(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	_, _ = w.Write([]byte(seo.GenerateRobots(h.site.URL)))
}
