package seo

import (
	"bytes"
	"encoding/xml"
	"fmt"
	"strings"
	"time"

	"true-feelings/models"
)

type rssXML struct {
	XMLName xml.Name   `xml:"rss"`
	Version string     `xml:"version,attr"`
	Channel rssChannel `xml:"channel"`
}

type rssChannel struct {
	Title         string    `xml:"title"`
	Link          string    `xml:"link"`
	Description   string    `xml:"description"`
	LastBuildDate string    `xml:"lastBuildDate,omitempty"`
	Items         []rssItem `xml:"item"`
}

type rssItem struct {
	Title       string `xml:"title"`
	Link        string `xml:"link"`
	Description string `xml:"description"`
	PubDate     string `xml:"pubDate,omitempty"`
	GUID        string `xml:"guid"`
}

// RSS renders an RSS 2.0 document for posts, which are expected newest first.
func RSS(site Site, posts []models.Post) ([]byte, error) {
	items := make([]rssItem, 0, len(posts))
	var lastBuild string
	for i, p := range posts {
		pubDate := ""
		if t := postTime(p); !t.IsZero() {
			pubDate = t.Format(time.RFC1123Z)
			if i == 0 {
				lastBuild = pubDate
			}
		}
		postURL := site.URL("blog", p.Slug)
		items = append(items, rssItem{
			Title:       p.Title,
			Link:        postURL,
			Description: p.Excerpt,
			PubDate:     pubDate,
			GUID:        postURL,
		})
	}
	feed := rssXML{
		Version: "2.0",
		Channel: rssChannel{
			Title:         site.Name,
			Link:          site.URL(),
			Description:   site.Description,
			LastBuildDate: lastBuild,
			Items:         items,
		},
	}
	return encodeXML(feed)
}

type sitemapURLSet struct {
	XMLName xml.Name     `xml:"urlset"`
	XMLNS   string       `xml:"xmlns,attr"`
	URLs    []sitemapURL `xml:"url"`
}

type sitemapURL struct {
	Loc     string `xml:"loc"`
	LastMod string `xml:"lastmod,omitempty"`
}

// Sitemap lists the home page, every post, category and tag page.
func Sitemap(site Site, posts []models.Post, categories []models.Category, tags []models.Tag) ([]byte, error) {
	urls := []sitemapURL{
		{Loc: site.URL()},
		{Loc: site.URL("blog")},
	}
	for _, p := range posts {
		u := sitemapURL{Loc: site.URL("blog", p.Slug)}
		if t := lastModified(p); !t.IsZero() {
			u.LastMod = t.Format("2006-01-02")
		}
		urls = append(urls, u)
	}
	for _, c := range categories {
		urls = append(urls, sitemapURL{Loc: site.URL("category", c.Slug)})
	}
	for _, t := range tags {
		urls = append(urls, sitemapURL{Loc: site.URL("tag", t.Slug)})
	}
	return encodeXML(sitemapURLSet{
		XMLNS: "http://www.sitemaps.org/schemas/sitemap/0.9",
		URLs:  urls,
	})
}

// Robots renders robots.txt: everything allowed except the admin area and auth pages.
func Robots(site Site) string {
	var b strings.Builder
	b.WriteString("User-agent: *\n")
	b.WriteString("Allow: /\n")
	for _, p := range []string{"/admin/", "/login", "/sign-up"} {
		fmt.Fprintf(&b, "Disallow: %s\n", p)
	}
	fmt.Fprintf(&b, "\nSitemap: %s\n", site.URL("sitemap.xml"))
	return b.String()
}

func postTime(p models.Post) time.Time {
	if p.PublishedAt != nil {
		return *p.PublishedAt
	}
	return p.CreatedAt
}

func lastModified(p models.Post) time.Time {
	if !p.UpdatedAt.IsZero() {
		return p.UpdatedAt
	}
	return postTime(p)
}

func encodeXML(v any) ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteString(xml.Header)
	if err := xml.NewEncoder(&buf).Encode(v); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
