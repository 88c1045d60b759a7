// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package articles

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ysakurai/writing-go/internal/model"
)

func TestClient_ListQueryParams(t *testing.T) {
	var gotPath, gotQuery string

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotQuery = r.URL.RawQuery
		_ = json.NewEncoder(w).Encode([]model.ManagedArticle{{ID: "1", Title: "remote"}})
	}))
	defer srv.Close()

	client := NewClient(srv.URL)
	list, err := client.List(context.Background(), ListOptions{
		Status:      model.StatusPublished,
		SortBy:      SortByUpdatedAt,
		SortOrder:   SortAsc,
		SearchQuery: "nisa",
	})
	require.NoError(t, err)
	require.Len(t, list, 1)

	assert.Equal(t, "/api/articles", gotPath)
	assert.Contains(t, gotQuery, "status=published")
	assert.Contains(t, gotQuery, "sortBy=updatedAt")
	assert.Contains(t, gotQuery, "sortOrder=asc")
	assert.Contains(t, gotQuery, "searchQuery=nisa")
}

func TestClient_GetNotFound(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		_ = json.NewEncoder(w).Encode(map[string]string{"error": "Article not found"})
	}))
	defer srv.Close()

	client := NewClient(srv.URL)
	article, err := client.Get(context.Background(), "missing")
	require.NoError(t, err, "upstream 404 maps to absence, not error")
	assert.Nil(t, article)
}

func TestClient_Create(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)

		var input CreateInput
		require.NoError(t, json.NewDecoder(r.Body).Decode(&input))

		w.WriteHeader(http.StatusCreated)
		_ = json.NewEncoder(w).Encode(model.ManagedArticle{
			ID:     "new-id",
			Title:  input.Title,
			Status: model.StatusDraft,
		})
	}))
	defer srv.Close()

	client := NewClient(srv.URL)
	article, err := client.Create(context.Background(), CreateInput{Title: "リモート作成"})
	require.NoError(t, err)
	assert.Equal(t, "new-id", article.ID)
	assert.Equal(t, "リモート作成", article.Title)
}

func TestClient_UpdateSendsOnlySetFields(t *testing.T) {
	var gotBody map[string]json.RawMessage

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPut, r.Method)
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))
		_ = json.NewEncoder(w).Encode(model.ManagedArticle{ID: "u-1"})
	}))
	defer srv.Close()

	title := "only title"
	client := NewClient(srv.URL)
	_, err := client.Update(context.Background(), "u-1", UpdateInput{Title: &title})
	require.NoError(t, err)

	assert.Contains(t, gotBody, "title")
	assert.NotContains(t, gotBody, "content", "nil fields stay off the wire")
	assert.NotContains(t, gotBody, "status")
}

func TestClient_Delete(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodDelete, r.Method)
		if r.URL.Path == "/api/articles/gone" {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		_ = json.NewEncoder(w).Encode(map[string]bool{"success": true})
	}))
	defer srv.Close()

	client := NewClient(srv.URL)

	deleted, err := client.Delete(context.Background(), "exists")
	require.NoError(t, err)
	assert.True(t, deleted)

	deleted, err = client.Delete(context.Background(), "gone")
	require.NoError(t, err)
	assert.False(t, deleted)
}

func TestClient_UnexpectedStatusIsError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer srv.Close()

	client := NewClient(srv.URL)
	_, err := client.Get(context.Background(), "any")
	assert.Error(t, err)
}
