// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package articles

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/ysakurai/writing-go/internal/model"
)

// Client implements Store against an upstream HTTP article API speaking the
// same REST dialect this service exposes. Absence mapping mirrors the local
// service: an upstream 404 becomes (nil, nil) or (false, nil), never an
// error.
type Client struct {
	baseURL string
	client  *http.Client
}

// NewClient returns a store backed by the API at baseURL.
func NewClient(baseURL string) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		client:  &http.Client{Timeout: 15 * time.Second},
	}
}

// List fetches articles matching opts.
func (c *Client) List(ctx context.Context, opts ListOptions) ([]model.ManagedArticle, error) {
	q := url.Values{}
	if opts.Status != "" {
		q.Set("status", string(opts.Status))
	}
	if opts.SortBy != "" {
		q.Set("sortBy", string(opts.SortBy))
	}
	if opts.SortOrder != "" {
		q.Set("sortOrder", string(opts.SortOrder))
	}
	if opts.SearchQuery != "" {
		q.Set("searchQuery", opts.SearchQuery)
	}

	endpoint := c.baseURL + "/api/articles"
	if len(q) > 0 {
		endpoint += "?" + q.Encode()
	}

	var articles []model.ManagedArticle
	if err := c.do(ctx, http.MethodGet, endpoint, nil, http.StatusOK, &articles); err != nil {
		return nil, err
	}
	if articles == nil {
		articles = []model.ManagedArticle{}
	}
	return articles, nil
}

// Get fetches a single article, or nil when the upstream reports 404.
func (c *Client) Get(ctx context.Context, id string) (*model.ManagedArticle, error) {
	var article model.ManagedArticle
	err := c.do(ctx, http.MethodGet, c.articleURL(id), nil, http.StatusOK, &article)
	if err != nil {
		if isNotFound(err) {
			return nil, nil
		}
		return nil, err
	}
	return &article, nil
}

// Create posts a new article upstream.
func (c *Client) Create(ctx context.Context, input CreateInput) (*model.ManagedArticle, error) {
	var article model.ManagedArticle
	if err := c.do(ctx, http.MethodPost, c.baseURL+"/api/articles", input, http.StatusCreated, &article); err != nil {
		return nil, err
	}
	return &article, nil
}

// Update sends a partial update upstream, or returns nil on 404.
func (c *Client) Update(ctx context.Context, id string, input UpdateInput) (*model.ManagedArticle, error) {
	var article model.ManagedArticle
	err := c.do(ctx, http.MethodPut, c.articleURL(id), input, http.StatusOK, &article)
	if err != nil {
		if isNotFound(err) {
			return nil, nil
		}
		return nil, err
	}
	return &article, nil
}

// Delete removes an article upstream, reporting false on 404.
func (c *Client) Delete(ctx context.Context, id string) (bool, error) {
	err := c.do(ctx, http.MethodDelete, c.articleURL(id), nil, http.StatusOK, nil)
	if err != nil {
		if isNotFound(err) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}

func (c *Client) articleURL(id string) string {
	return c.baseURL + "/api/articles/" + url.PathEscape(id)
}

// statusError is an unexpected upstream response status.
type statusError struct {
	status int
	body   string
}

func (e *statusError) Error() string {
	return fmt.Sprintf("upstream status %d: %s", e.status, e.body)
}

func isNotFound(err error) bool {
	se, ok := err.(*statusError)
	return ok && se.status == http.StatusNotFound
}

// do executes one request, decoding the response into out when the status
// matches want. Any other status becomes a statusError carrying the body.
func (c *Client) do(ctx context.Context, method, endpoint string, payload any, want int, out any) error {
	var body io.Reader
	if payload != nil {
		raw, err := json.Marshal(payload)
		if err != nil {
			return fmt.Errorf("encoding request: %w", err)
		}
		body = bytes.NewReader(raw)
	}

	req, err := http.NewRequestWithContext(ctx, method, endpoint, body)
	if err != nil {
		return fmt.Errorf("building request: %w", err)
	}
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return fmt.Errorf("calling article api: %w", err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("reading article api response: %w", err)
	}
	if resp.StatusCode != want {
		return &statusError{status: resp.StatusCode, body: strings.TrimSpace(string(raw))}
	}
	if out == nil {
		return nil
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return fmt.Errorf("decoding article api response: %w", err)
	}
	return nil
}
