// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package handler

import (
	"log/slog"
	"net/http"

	"github.com/alexedwards/scs/v2"
	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"

	"github.com/ysakurai/writing-go/internal/articles"
	"github.com/ysakurai/writing-go/internal/auth"
	"github.com/ysakurai/writing-go/internal/content"
	"github.com/ysakurai/writing-go/internal/markdown"
	"github.com/ysakurai/writing-go/internal/middleware"
	"github.com/ysakurai/writing-go/internal/model"
)

// Deps carries everything the router needs. Handler tests assemble the full
// router from this rather than wiring routes by hand.
type Deps struct {
	Library     *content.Library
	Renderer    *markdown.Renderer
	Store       articles.Store
	Whitelist   *auth.Whitelist
	Sessions    *scs.SessionManager
	Site        model.SiteConfig
	ContentRoot string
	IsDev       bool
	Logger      *slog.Logger
}

// NewRouter builds the complete HTTP surface.
func NewRouter(d Deps) http.Handler {
	r := chi.NewRouter()

	// Middleware stack
	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(chimw.Logger)
	r.Use(chimw.Recoverer)
	r.Use(chimw.Compress(5)) // Gzip compression with level 5
	r.Use(chimw.GetHead)     // Handle HEAD requests for uptime monitoring
	r.Use(middleware.SecurityHeaders(middleware.DefaultSecurityHeadersConfig(d.IsDev)))
	r.Use(d.Sessions.LoadAndSave)

	contentHandler := NewContentHandler(d.Library, d.Renderer, d.Sessions, d.Site, d.Logger)
	articlesHandler := NewArticlesHandler(d.Store, d.Logger)
	authHandler := NewAuthHandler(d.Whitelist, d.Sessions, d.Logger)
	healthHandler := NewHealthHandler(d.ContentRoot)

	r.Get("/health", healthHandler.Health)
	r.Get("/sitemap.xml", contentHandler.Sitemap)
	r.Get("/robots.txt", contentHandler.Robots)

	// Auth routes, rate limited per IP against whitelist probing
	loginLimiter := middleware.NewRateLimiter(1, 5)
	r.Route("/auth", func(r chi.Router) {
		r.Use(loginLimiter.Middleware())
		r.Post("/login", authHandler.Login)
		r.Post("/logout", authHandler.Logout)
		r.Get("/me", authHandler.Me)
	})

	r.Get("/api/site", contentHandler.Site)

	// Public content API
	r.Route("/api/content", func(r chi.Router) {
		r.Get("/latest", contentHandler.Latest)
		r.Get("/{category}", contentHandler.ListByCategory)
		r.Get("/{category}/{slug}", contentHandler.Detail)
		r.Get("/{category}/{slug}/related", contentHandler.Related)
	})

	// Managed-article CRUD; reads are public, writes need a session
	r.Route("/api/articles", func(r chi.Router) {
		r.Get("/", articlesHandler.List)
		r.Get("/{id}", articlesHandler.Get)

		r.Group(func(r chi.Router) {
			r.Use(middleware.RequireUser(d.Sessions))
			r.Post("/", articlesHandler.Create)
			r.Put("/{id}", articlesHandler.Update)
			r.Delete("/{id}", articlesHandler.Delete)
		})
	})

	return r
}
