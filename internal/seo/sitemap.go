// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package seo

import (
	"encoding/xml"
	"fmt"

	"github.com/ysakurai/writing-go/internal/model"
)

// XMLNamespace is the sitemap XML namespace.
const XMLNamespace = "http://www.sitemaps.org/schemas/sitemap/0.9"

// ChangeFreq represents the change frequency of a URL.
type ChangeFreq string

// Valid change frequency values.
const (
	ChangeFreqAlways  ChangeFreq = "always"
	ChangeFreqHourly  ChangeFreq = "hourly"
	ChangeFreqDaily   ChangeFreq = "daily"
	ChangeFreqWeekly  ChangeFreq = "weekly"
	ChangeFreqMonthly ChangeFreq = "monthly"
	ChangeFreqYearly  ChangeFreq = "yearly"
	ChangeFreqNever   ChangeFreq = "never"
)

// SitemapURL represents a single URL entry in the sitemap.
type SitemapURL struct {
	Loc        string     `xml:"loc"`
	LastMod    string     `xml:"lastmod,omitempty"`
	ChangeFreq ChangeFreq `xml:"changefreq,omitempty"`
	Priority   string     `xml:"priority,omitempty"`
}

// Sitemap represents the complete sitemap document.
type Sitemap struct {
	XMLName xml.Name     `xml:"urlset"`
	XMLNS   string       `xml:"xmlns,attr"`
	URLs    []SitemapURL `xml:"url"`
}

// SitemapBuilder accumulates URLs and renders the sitemap XML.
type SitemapBuilder struct {
	siteURL string
	urls    []SitemapURL
}

// NewSitemapBuilder creates a builder for the given canonical site URL.
func NewSitemapBuilder(siteURL string) *SitemapBuilder {
	return &SitemapBuilder{
		siteURL: siteURL,
		urls:    make([]SitemapURL, 0),
	}
}

// AddHomepage adds the homepage to the sitemap.
func (b *SitemapBuilder) AddHomepage() {
	b.urls = append(b.urls, SitemapURL{
		Loc:        b.siteURL,
		ChangeFreq: ChangeFreqDaily,
		Priority:   "1.0",
	})
}

// AddCategory adds a category archive page to the sitemap.
func (b *SitemapBuilder) AddCategory(category model.Category) {
	b.urls = append(b.urls, SitemapURL{
		Loc:        fmt.Sprintf("%s/%s", b.siteURL, category),
		ChangeFreq: ChangeFreqWeekly,
		Priority:   "0.7",
	})
}

// AddArticle adds an article detail page. Its last modification is the update
// date when present, the publication date otherwise.
func (b *SitemapBuilder) AddArticle(meta model.ArticleMeta) {
	lastMod := meta.UpdatedAt
	if lastMod == "" {
		lastMod = meta.Date
	}
	b.urls = append(b.urls, SitemapURL{
		Loc:        fmt.Sprintf("%s/%s/%s", b.siteURL, meta.Category, meta.Slug),
		LastMod:    lastMod,
		ChangeFreq: ChangeFreqMonthly,
		Priority:   "0.8",
	})
}

// AddArticles adds multiple articles to the sitemap.
func (b *SitemapBuilder) AddArticles(metas []model.ArticleMeta) {
	for _, m := range metas {
		b.AddArticle(m)
	}
}

// Build generates the sitemap XML with header.
func (b *SitemapBuilder) Build() ([]byte, error) {
	sitemap := Sitemap{
		XMLNS: XMLNamespace,
		URLs:  b.urls,
	}

	output := []byte(xml.Header)
	xmlBytes, err := xml.MarshalIndent(sitemap, "", "  ")
	if err != nil {
		return nil, err
	}

	return append(output, xmlBytes...), nil
}

// GenerateSitemap builds the full site sitemap: homepage, every category
// archive and every published article.
func GenerateSitemap(siteURL string, metas []model.ArticleMeta) ([]byte, error) {
	builder := NewSitemapBuilder(siteURL)
	builder.AddHomepage()
	for _, category := range model.Categories {
		builder.AddCategory(category)
	}
	builder.AddArticles(metas)
	return builder.Build()
}
