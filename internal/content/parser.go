// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

// Package content implements the MDX content pipeline: frontmatter parsing,
// the file-backed article repository, and the read-only query surface used by
// the public API.
package content

import (
	"fmt"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/ysakurai/writing-go/internal/model"
)

const frontmatterDelimiter = "---"

// ParseResult is the outcome of splitting an MDX file into metadata and body.
type ParseResult struct {
	Frontmatter model.Frontmatter
	Content     string
}

// rawFrontmatter keeps date fields as yaml nodes so both quoted strings and
// unquoted YAML dates can be normalized to YYYY-MM-DD.
type rawFrontmatter struct {
	Title       string    `yaml:"title"`
	Description string    `yaml:"description"`
	Date        yaml.Node `yaml:"date"`
	UpdatedAt   yaml.Node `yaml:"updatedAt"`
	Category    string    `yaml:"category"`
	Tags        []string  `yaml:"tags"`
	Thumbnail   string    `yaml:"thumbnail"`
	Published   *bool     `yaml:"published"`
}

// ParseFrontmatter extracts the YAML metadata block and the trimmed body from
// raw MDX text. Input without a leading delimiter is treated as body-only.
// Required-field presence is not validated here.
func ParseFrontmatter(raw string) (ParseResult, error) {
	block, body := splitFrontmatter(raw)

	var rf rawFrontmatter
	if block != "" {
		if err := yaml.Unmarshal([]byte(block), &rf); err != nil {
			return ParseResult{}, fmt.Errorf("parsing frontmatter: %w", err)
		}
	}

	return ParseResult{
		Frontmatter: model.Frontmatter{
			Title:       rf.Title,
			Description: rf.Description,
			Date:        dateString(rf.Date),
			UpdatedAt:   dateString(rf.UpdatedAt),
			Category:    rf.Category,
			Tags:        rf.Tags,
			Thumbnail:   rf.Thumbnail,
			Published:   rf.Published,
		},
		Content: strings.TrimSpace(body),
	}, nil
}

// ParseArticle parses raw MDX text and applies listing defaults: tags default
// to an empty slice, published defaults to true, and the given slug is
// attached. The category is carried through unvalidated.
func ParseArticle(raw, slug string) (model.Article, error) {
	parsed, err := ParseFrontmatter(raw)
	if err != nil {
		return model.Article{}, err
	}

	fm := parsed.Frontmatter
	tags := fm.Tags
	if tags == nil {
		tags = []string{}
	}
	published := true
	if fm.Published != nil {
		published = *fm.Published
	}

	return model.Article{
		ArticleMeta: model.ArticleMeta{
			Slug:        slug,
			Title:       fm.Title,
			Description: fm.Description,
			Date:        fm.Date,
			UpdatedAt:   fm.UpdatedAt,
			Category:    model.Category(fm.Category),
			Tags:        tags,
			Thumbnail:   fm.Thumbnail,
			Published:   published,
		},
		Content: parsed.Content,
	}, nil
}

// splitFrontmatter separates the delimited metadata block from the body.
// Returns an empty block when the input does not open with a delimiter line
// or the closing delimiter is missing.
func splitFrontmatter(raw string) (block, body string) {
	if !strings.HasPrefix(raw, frontmatterDelimiter) {
		return "", raw
	}
	parts := strings.SplitN(raw, frontmatterDelimiter, 3)
	if len(parts) < 3 {
		return "", raw
	}
	return parts[1], parts[2]
}

// dateString normalizes a frontmatter date value. Structured YAML dates
// become their ISO calendar date with no time component; any other scalar is
// kept as its string form.
func dateString(n yaml.Node) string {
	if n.IsZero() {
		return ""
	}
	var t time.Time
	if err := n.Decode(&t); err == nil {
		return t.UTC().Format("2006-01-02")
	}
	var s string
	if err := n.Decode(&s); err == nil {
		return s
	}
	return n.Value
}
