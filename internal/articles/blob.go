// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package articles

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/ysakurai/writing-go/internal/model"
)

// BlobBackend persists the article document as a single JSON object in an
// HTTP blob store. Load is deliberately lenient: a first deployment has no
// blob yet, so any load failure yields an empty document rather than an
// error. Save failures do propagate.
type BlobBackend struct {
	url    string
	token  string
	client *http.Client
	logger *slog.Logger
}

// NewBlobBackend returns a backend for the document at url. The token, when
// non-empty, is sent as a bearer credential on writes.
func NewBlobBackend(url, token string, logger *slog.Logger) *BlobBackend {
	if logger == nil {
		logger = slog.Default()
	}
	return &BlobBackend{
		url:    url,
		token:  token,
		client: &http.Client{Timeout: 10 * time.Second},
		logger: logger,
	}
}

// Load fetches the document. Any failure, including a missing blob or
// unparseable content, logs a warning and returns an empty document.
func (b *BlobBackend) Load(ctx context.Context) (model.ArticlesData, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, b.url, nil)
	if err != nil {
		return model.NewArticlesData(), nil
	}

	resp, err := b.client.Do(req)
	if err != nil {
		b.logger.Warn("blob load failed, starting empty", "url", b.url, "error", err)
		return model.NewArticlesData(), nil
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		b.logger.Warn("blob load failed, starting empty", "url", b.url, "status", resp.StatusCode)
		return model.NewArticlesData(), nil
	}

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		b.logger.Warn("blob load failed, starting empty", "url", b.url, "error", err)
		return model.NewArticlesData(), nil
	}

	var data model.ArticlesData
	if err := json.Unmarshal(raw, &data); err != nil {
		b.logger.Warn("blob content unparseable, starting empty", "url", b.url, "error", err)
		return model.NewArticlesData(), nil
	}
	if data.Articles == nil {
		data.Articles = []model.ManagedArticle{}
	}
	return data, nil
}

// Save uploads the document with a PUT, overwriting the previous blob.
func (b *BlobBackend) Save(ctx context.Context, data model.ArticlesData) error {
	data.UpdatedAt = time.Now().UTC().Format(time.RFC3339Nano)

	raw, err := json.Marshal(data)
	if err != nil {
		return fmt.Errorf("encoding articles: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPut, b.url, bytes.NewReader(raw))
	if err != nil {
		return fmt.Errorf("building blob request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if b.token != "" {
		req.Header.Set("Authorization", "Bearer "+b.token)
	}

	resp, err := b.client.Do(req)
	if err != nil {
		return fmt.Errorf("uploading articles: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return fmt.Errorf("uploading articles: unexpected status %d", resp.StatusCode)
	}
	return nil
}
