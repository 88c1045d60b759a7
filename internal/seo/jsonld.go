// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

// Package seo builds the structured-data payloads, the XML sitemap and the
// robots policy for the public site.
package seo

import (
	"fmt"

	"github.com/ysakurai/writing-go/internal/model"
)

// Person is a schema.org Person node.
type Person struct {
	Type string `json:"@type"`
	Name string `json:"name"`
}

// ArticleJSONLD is the schema.org Article payload embedded in detail
// responses.
type ArticleJSONLD struct {
	Context       string `json:"@context"`
	Type          string `json:"@type"`
	Headline      string `json:"headline"`
	Description   string `json:"description"`
	DatePublished string `json:"datePublished"`
	DateModified  string `json:"dateModified,omitempty"`
	URL           string `json:"url"`
	Image         string `json:"image,omitempty"`
	Author        Person `json:"author"`
}

// NewArticleJSONLD builds the structured-data node for an article. The
// modified date falls back to the publication date only implicitly: when no
// update date exists the field is omitted.
func NewArticleJSONLD(meta model.ArticleMeta, siteURL, authorName string) ArticleJSONLD {
	return ArticleJSONLD{
		Context:       "https://schema.org",
		Type:          "Article",
		Headline:      meta.Title,
		Description:   meta.Description,
		DatePublished: meta.Date,
		DateModified:  meta.UpdatedAt,
		URL:           articleURL(siteURL, meta),
		Image:         meta.Thumbnail,
		Author:        Person{Type: "Person", Name: authorName},
	}
}

// ListItem is one entry of a schema.org BreadcrumbList.
type ListItem struct {
	Type     string `json:"@type"`
	Position int    `json:"position"`
	Name     string `json:"name"`
	Item     string `json:"item"`
}

// BreadcrumbJSONLD is the schema.org BreadcrumbList payload.
type BreadcrumbJSONLD struct {
	Context         string     `json:"@context"`
	Type            string     `json:"@type"`
	ItemListElement []ListItem `json:"itemListElement"`
}

// BreadcrumbItem is a name plus site-relative path, in trail order.
type BreadcrumbItem struct {
	Name string
	Path string
}

// NewBreadcrumbJSONLD builds a breadcrumb list from the trail. Positions are
// 1-based per the schema.org contract.
func NewBreadcrumbJSONLD(siteURL string, items []BreadcrumbItem) BreadcrumbJSONLD {
	elements := make([]ListItem, 0, len(items))
	for i, item := range items {
		elements = append(elements, ListItem{
			Type:     "ListItem",
			Position: i + 1,
			Name:     item.Name,
			Item:     siteURL + item.Path,
		})
	}
	return BreadcrumbJSONLD{
		Context:         "https://schema.org",
		Type:            "BreadcrumbList",
		ItemListElement: elements,
	}
}

func articleURL(siteURL string, meta model.ArticleMeta) string {
	return fmt.Sprintf("%s/%s/%s", siteURL, meta.Category, meta.Slug)
}
