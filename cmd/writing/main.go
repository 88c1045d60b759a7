// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

// Command writing runs the blog content and article management service.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/ysakurai/writing-go/internal/articles"
	"github.com/ysakurai/writing-go/internal/auth"
	"github.com/ysakurai/writing-go/internal/config"
	"github.com/ysakurai/writing-go/internal/content"
	"github.com/ysakurai/writing-go/internal/handler"
	"github.com/ysakurai/writing-go/internal/markdown"
	"github.com/ysakurai/writing-go/internal/model"
	"github.com/ysakurai/writing-go/internal/session"
)

// Version information - injected at build time via ldflags
var (
	appVersion   = "dev"
	appGitCommit = "unknown"
)

func main() {
	showVersion := flag.Bool("version", false, "print version and exit")
	flag.Parse()

	if *showVersion {
		fmt.Printf("writing %s (%s)\n", appVersion, appGitCommit)
		return
	}

	if err := run(); err != nil {
		slog.Error("fatal", "error", err)
		os.Exit(1)
	}
}

func run() error {
	// Load .env file if present (development)
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	// Setup logger
	logLevel := slog.LevelInfo
	switch cfg.LogLevel {
	case "debug":
		logLevel = slog.LevelDebug
	case "warn":
		logLevel = slog.LevelWarn
	case "error":
		logLevel = slog.LevelError
	}

	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: logLevel,
	}))
	slog.SetDefault(logger)

	contentRoot := cfg.ContentRoot()
	repo := content.NewRepository(contentRoot, logger)
	library := content.NewLibrary(repo)
	slog.Info("content repository ready", "root", contentRoot)

	store, err := newArticlesStore(cfg, logger)
	if err != nil {
		return fmt.Errorf("initializing article store: %w", err)
	}
	slog.Info("article store ready", "backend", cfg.ArticlesBackend)

	whitelist := auth.NewWhitelist(cfg.AllowedEmails)
	if whitelist.Size() == 0 {
		slog.Warn("admin whitelist is empty, sign-in is disabled")
	} else {
		slog.Info("admin whitelist loaded", "emails", whitelist.Size())
	}

	sm := session.New(cfg.IsDevelopment())

	router := handler.NewRouter(handler.Deps{
		Library:     library,
		Renderer:    markdown.NewRenderer(),
		Store:       store,
		Whitelist:   whitelist,
		Sessions:    sm,
		Site:        model.DefaultSiteConfig(cfg.SiteURL),
		ContentRoot: contentRoot,
		IsDev:       cfg.IsDevelopment(),
		Logger:      logger,
	})

	// Create server with appropriate timeouts
	srv := &http.Server{
		Addr:              cfg.ServerAddr(),
		Handler:           router,
		ReadTimeout:       15 * time.Second,
		ReadHeaderTimeout: 5 * time.Second,
		WriteTimeout:      60 * time.Second,
		IdleTimeout:       60 * time.Second, // Mitigates slowloris attacks
		MaxHeaderBytes:    1 << 20,          // 1MB max header size
	}

	// Start server in goroutine
	go func() {
		slog.Info("starting server", "addr", cfg.ServerAddr(), "env", cfg.Env)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("server error", "error", err)
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	slog.Info("shutting down server...")

	// Graceful shutdown with timeout
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		return fmt.Errorf("server shutdown: %w", err)
	}

	slog.Info("server stopped")
	return nil
}

// newArticlesStore builds the managed-article store selected by the config.
func newArticlesStore(cfg *config.Config, logger *slog.Logger) (articles.Store, error) {
	switch cfg.ArticlesBackend {
	case config.BackendMemory:
		return articles.NewService(articles.NewMemoryBackend()), nil
	case config.BackendFile:
		return articles.NewService(articles.NewFileBackend(cfg.ArticlesPath)), nil
	case config.BackendBlob:
		return articles.NewService(articles.NewBlobBackend(cfg.BlobURL, cfg.BlobToken, logger)), nil
	case config.BackendREST:
		return articles.NewClient(cfg.ArticlesAPIURL), nil
	default:
		return nil, fmt.Errorf("unknown backend %q", cfg.ArticlesBackend)
	}
}
