// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

// Package config loads the application configuration from environment
// variables. Business logic never reads the environment directly; the parsed
// Config struct is passed to constructors at startup.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/caarlos0/env/v11"
)

// Storage backend identifiers for the managed-article store.
const (
	BackendMemory = "memory"
	BackendFile   = "file"
	BackendBlob   = "blob"
	BackendREST   = "rest"
)

// Config holds the application configuration loaded from environment variables.
type Config struct {
	ServerHost string `env:"WRITING_SERVER_HOST" envDefault:"localhost"`
	ServerPort int    `env:"WRITING_SERVER_PORT" envDefault:"8080"`
	Env        string `env:"WRITING_ENV" envDefault:"development"`
	LogLevel   string `env:"WRITING_LOG_LEVEL" envDefault:"info"`

	// SiteURL is the canonical public URL, used in sitemaps and JSON-LD.
	SiteURL string `env:"WRITING_SITE_URL" envDefault:"https://ohitorisama-life.com"`

	// ContentDir overrides the MDX content root. A relative path resolves
	// against the working directory; empty means <cwd>/content.
	ContentDir string `env:"CONTENT_DIR"`

	// ArticlesBackend selects the managed-article store: memory, file, blob
	// or rest.
	ArticlesBackend string `env:"WRITING_ARTICLES_BACKEND" envDefault:"file"`
	ArticlesPath    string `env:"WRITING_ARTICLES_PATH" envDefault:"./data/articles.json"`

	// BlobURL is the document URL for the blob backend; BlobToken is the
	// bearer credential sent on writes.
	BlobURL   string `env:"WRITING_BLOB_URL"`
	BlobToken string `env:"WRITING_BLOB_TOKEN"`

	// ArticlesAPIURL is the upstream base URL for the rest backend.
	ArticlesAPIURL string `env:"WRITING_ARTICLES_API"`

	// AllowedEmails is the comma-separated admin whitelist. Empty allows
	// nobody.
	AllowedEmails string `env:"ALLOWED_EMAILS"`
}

// IsDevelopment returns true if the application is running in development mode.
func (c Config) IsDevelopment() bool {
	return c.Env == "development"
}

// ServerAddr returns the full server address in host:port format.
func (c Config) ServerAddr() string {
	return fmt.Sprintf("%s:%d", c.ServerHost, c.ServerPort)
}

// ContentRoot resolves the MDX content root directory. An absolute
// CONTENT_DIR is used as-is, a relative one resolves against the working
// directory, and the default is <cwd>/content.
func (c Config) ContentRoot() string {
	cwd, err := os.Getwd()
	if err != nil {
		cwd = "."
	}
	if c.ContentDir == "" {
		return filepath.Join(cwd, "content")
	}
	if filepath.IsAbs(c.ContentDir) {
		return c.ContentDir
	}
	return filepath.Join(cwd, c.ContentDir)
}

// Load parses environment variables and returns a Config struct.
func Load() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}

	switch cfg.ArticlesBackend {
	case BackendMemory, BackendFile:
	case BackendBlob:
		if cfg.BlobURL == "" {
			return nil, fmt.Errorf("WRITING_BLOB_URL is required when WRITING_ARTICLES_BACKEND=blob")
		}
	case BackendREST:
		if cfg.ArticlesAPIURL == "" {
			return nil, fmt.Errorf("WRITING_ARTICLES_API is required when WRITING_ARTICLES_BACKEND=rest")
		}
	default:
		return nil, fmt.Errorf("unknown WRITING_ARTICLES_BACKEND %q (want memory, file, blob or rest)", cfg.ArticlesBackend)
	}

	return cfg, nil
}
