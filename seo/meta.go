// Package seo builds page metadata, robots.txt, the RSS feed and the sitemap.
package seo

import (
	"fmt"
	"net/url"
	"path"
	"strings"

	"true-feelings/config"
	"true-feelings/models"
)

const (
	PlaceholderImage = "/placeholder.png"
	ImageWidth       = 1200
	ImageHeight      = 630

	defaultPostDescription = "Read this informative post about love, relationships, and personal stories."
)

// Site is the public identity used for canonical URLs and feeds.
type Site struct {
	Name        string
	BaseURL     string
	Description string
}

func SiteFromConfig(c config.SiteConfig) Site {
	return Site{Name: c.Name, BaseURL: strings.TrimRight(c.BaseURL, "/"), Description: c.Description}
}

// URL joins path segments onto the site base URL.
func (s Site) URL(segments ...string) string {
	u, err := url.Parse(s.BaseURL)
	if err != nil {
		return s.BaseURL
	}
	u.Path = path.Join(append([]string{"/", u.Path}, segments...)...)
	if len(segments) == 0 {
		u.Path = strings.TrimRight(u.Path, "/")
	}
	return u.String()
}

type Image struct {
	URL    string `json:"url"`
	Width  int    `json:"width"`
	Height int    `json:"height"`
}

type OpenGraph struct {
	Title       string  `json:"title"`
	Description string  `json:"description"`
	URL         string  `json:"url"`
	Type        string  `json:"type"`
	Images      []Image `json:"images"`
}

type Twitter struct {
	Card        string   `json:"card"`
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Images      []string `json:"images"`
}

// Meta is the head metadata for a public page.
type Meta struct {
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Keywords    string    `json:"keywords"`
	Canonical   string    `json:"canonical"`
	OpenGraph   OpenGraph `json:"openGraph"`
	Twitter     Twitter   `json:"twitter"`
}

// ForPost falls back from the post's own SEO fields to its excerpt, then to
// its first category, then to a site-wide default.
func ForPost(site Site, p models.Post, categories []models.Category, tags []models.Tag) Meta {
	title := firstNonEmpty(p.MetaTitle, p.Title)

	var categoryDescription string
	if len(categories) > 0 {
		categoryDescription = categories[0].Description
	}
	description := firstNonEmpty(p.MetaDescription, p.Excerpt, categoryDescription, defaultPostDescription)

	tagNames := make([]string, 0, len(tags))
	for _, t := range tags {
		tagNames = append(tagNames, t.Name)
	}
	categoryNames := make([]string, 0, len(categories))
	for _, c := range categories {
		categoryNames = append(categoryNames, c.Name)
	}
	keywords := firstNonEmpty(
		strings.Join(p.MetaKeywords, ", "),
		strings.Join(tagNames, ", "),
		strings.Join(categoryNames, ", "),
	)

	return build(title, description, keywords, site.URL("blog", p.Slug), "article", p.CoverImage)
}

// ForCategory uses cover, usually the newest post's image, for social cards.
func ForCategory(site Site, c models.Category, cover string) Meta {
	title := firstNonEmpty(c.Title, c.Name)
	description := firstNonEmpty(c.Description, fmt.Sprintf("Explore blog posts about %s.", c.Name))
	return build(title, description, strings.Join(c.Keywords, ", "), site.URL("category", c.Slug), "website", cover)
}

func ForTag(site Site, t models.Tag, cover string) Meta {
	title := firstNonEmpty(t.Title, fmt.Sprintf("Posts tagged with %s", t.Name))
	description := firstNonEmpty(t.Description, fmt.Sprintf("Explore blog posts about %s.", t.Name))
	return build(title, description, strings.Join(t.Keywords, ", "), site.URL("tag", t.Slug), "website", cover)
}

func build(title, description, keywords, canonical, ogType, cover string) Meta {
	image := firstNonEmpty(cover, PlaceholderImage)
	return Meta{
		Title:       title,
		Description: description,
		Keywords:    keywords,
		Canonical:   canonical,
		OpenGraph: OpenGraph{
			Title:       title,
			Description: description,
			URL:         canonical,
			Type:        ogType,
			Images:      []Image{{URL: image, Width: ImageWidth, Height: ImageHeight}},
		},
		Twitter: Twitter{
			Card:        "summary_large_image",
			Title:       title,
			Description: description,
			Images:      []string{image},
		},
	}
}

func firstNonEmpty(vals ...string) string {
	for _, v := range vals {
		if strings.TrimSpace(v) != "" {
			return v
		}
	}
	return ""
}
