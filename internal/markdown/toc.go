// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package markdown

import (
	"fmt"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/parser"
	"github.com/yuin/goldmark/text"
)

// Heading is one table-of-contents entry.
type Heading struct {
	ID    string `json:"id"`
	Title string `json:"title"`
	Level int    `json:"level"`
}

// ExtractHeadings returns the h2 and h3 headings of source in document order.
// IDs come from the auto heading ID parser; a heading that ends up without
// one gets a positional heading-N fallback so anchors stay addressable.
func ExtractHeadings(source string) ([]Heading, error) {
	md := goldmark.New(
		goldmark.WithExtensions(extension.GFM),
		goldmark.WithParserOptions(parser.WithAutoHeadingID()),
	)

	src := []byte(source)
	doc := md.Parser().Parse(text.NewReader(src))

	headings := []Heading{}
	err := ast.Walk(doc, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}
		h, ok := n.(*ast.Heading)
		if !ok || (h.Level != 2 && h.Level != 3) {
			return ast.WalkContinue, nil
		}

		id := ""
		if v, found := h.AttributeString("id"); found {
			if b, ok := v.([]byte); ok {
				id = string(b)
			}
		}
		if id == "" {
			id = fmt.Sprintf("heading-%d", len(headings))
		}

		headings = append(headings, Heading{
			ID:    id,
			Title: headingText(h, src),
			Level: h.Level,
		})
		return ast.WalkSkipChildren, nil
	})
	if err != nil {
		return nil, fmt.Errorf("walking markdown ast: %w", err)
	}
	return headings, nil
}

// headingText concatenates the literal text of the heading's children.
func headingText(h *ast.Heading, src []byte) string {
	var out []byte
	for c := h.FirstChild(); c != nil; c = c.NextSibling() {
		if t, ok := c.(*ast.Text); ok {
			out = append(out, t.Segment.Value(src)...)
			continue
		}
		// Inline containers like emphasis or links carry their text in
		// nested Text nodes.
		_ = ast.Walk(c, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
			if entering {
				if t, ok := n.(*ast.Text); ok {
					out = append(out, t.Segment.Value(src)...)
				}
			}
			return ast.WalkContinue, nil
		})
	}
	return string(out)
}
