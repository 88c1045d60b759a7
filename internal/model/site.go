// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package model

// SiteConfig is the site-wide metadata exposed to clients and used when
// building SEO payloads.
type SiteConfig struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	URL         string `json:"url"`
	Locale      string `json:"locale"`
}

// DefaultSiteConfig returns the site metadata with the given canonical URL.
func DefaultSiteConfig(siteURL string) SiteConfig {
	return SiteConfig{
		Name:        "おひとりさまライフ",
		Description: "資産形成・プログラミング・健康に関する情報を発信するブログ",
		URL:         siteURL,
		Locale:      "ja_JP",
	}
}

// CategoryMeta is the display metadata for a category archive.
type CategoryMeta struct {
	Title       string `json:"title"`
	Description string `json:"description"`
}

// CategoryMetas maps each category to its display metadata.
var CategoryMetas = map[Category]CategoryMeta{
	CategoryAsset: {
		Title:       "資産形成",
		Description: "資産形成に関する記事を掲載しています。投資、節約、マネープランニングなど。",
	},
	CategoryTech: {
		Title:       "プログラミング",
		Description: "プログラミングに関する記事を掲載しています。Web開発、AI、ツールなど。",
	},
	CategoryHealth: {
		Title:       "健康",
		Description: "健康に関する記事を掲載しています。運動、食事、メンタルヘルスなど。",
	},
}
