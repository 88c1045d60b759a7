// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package handler

import (
	"bytes"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/cookiejar"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/ysakurai/writing-go/internal/articles"
	"github.com/ysakurai/writing-go/internal/auth"
	"github.com/ysakurai/writing-go/internal/content"
	"github.com/ysakurai/writing-go/internal/markdown"
	"github.com/ysakurai/writing-go/internal/model"
	"github.com/ysakurai/writing-go/internal/session"
)

const testAdminEmail = "admin@example.com"

// testServer bundles the full router behind an httptest server with a
// cookie-carrying client, so auth flows run the way a browser would.
type testServer struct {
	*httptest.Server
	client *http.Client
}

func newTestServer(t *testing.T, contentRoot string) *testServer {
	t.Helper()

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	repo := content.NewRepository(contentRoot, logger)

	router := NewRouter(Deps{
		Library:     content.NewLibrary(repo),
		Renderer:    markdown.NewRenderer(),
		Store:       articles.NewService(articles.NewMemoryBackend()),
		Whitelist:   auth.NewWhitelist(testAdminEmail),
		Sessions:    session.New(true),
		Site:        model.DefaultSiteConfig("https://example.com"),
		ContentRoot: contentRoot,
		IsDev:       true,
		Logger:      logger,
	})

	srv := httptest.NewServer(router)
	t.Cleanup(srv.Close)

	jar, err := cookiejar.New(nil)
	if err != nil {
		t.Fatal(err)
	}
	return &testServer{Server: srv, client: &http.Client{Jar: jar}}
}

// do issues a JSON request and decodes the response body into out when
// non-nil. Returns the status code and raw body.
func (ts *testServer) do(t *testing.T, method, path string, body, out any) (int, []byte) {
	t.Helper()

	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			t.Fatal(err)
		}
		reader = bytes.NewReader(raw)
	}

	req, err := http.NewRequest(method, ts.URL+path, reader)
	if err != nil {
		t.Fatal(err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := ts.client.Do(req)
	if err != nil {
		t.Fatal(err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		t.Fatal(err)
	}
	if out != nil {
		if err := json.Unmarshal(raw, out); err != nil {
			t.Fatalf("decoding %q: %v", raw, err)
		}
	}
	return resp.StatusCode, raw
}

// login signs the test admin in on ts's cookie jar.
func (ts *testServer) login(t *testing.T) {
	t.Helper()
	status, body := ts.do(t, http.MethodPost, "/auth/login", map[string]string{"email": testAdminEmail}, nil)
	if status != http.StatusOK {
		t.Fatalf("login failed: %d %s", status, body)
	}
}

// writeTestArticle creates a content file under root/category/slug.mdx.
func writeTestArticle(t *testing.T, root string, category model.Category, slug, title, date string, published bool) {
	t.Helper()
	dir := filepath.Join(root, string(category))
	if err := os.MkdirAll(dir, 0o755); err != nil {
		t.Fatal(err)
	}
	src := "---\ntitle: " + title + "\ndate: \"" + date + "\"\ncategory: " + string(category) + "\npublished: "
	if published {
		src += "true"
	} else {
		src += "false"
	}
	src += "\n---\n## 見出し\n\n本文です。"
	if err := os.WriteFile(filepath.Join(dir, slug+content.FileExt), []byte(src), 0o644); err != nil {
		t.Fatal(err)
	}
}

func errorMessage(t *testing.T, raw []byte) string {
	t.Helper()
	var m map[string]string
	if err := json.Unmarshal(raw, &m); err != nil {
		t.Fatalf("decoding error body %q: %v", raw, err)
	}
	return m["error"]
}
