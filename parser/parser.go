package parser

import (
	"strings"
	"unicode/utf8"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

const (
	// ExcerptLength is the default excerpt size in characters.
	ExcerptLength = 160
	// WordsPerMinute is the reading speed used for read time.
	WordsPerMinute = 200
)

// PlainText returns the visible text of an HTML fragment with whitespace collapsed.
// script and style contents are skipped.
func PlainText(htmlStr string) string {
	doc, err := html.Parse(strings.NewReader(htmlStr))
	if err != nil {
		return strings.Join(strings.Fields(htmlStr), " ")
	}

	var b strings.Builder
	var f func(*html.Node)
	f = func(n *html.Node) {
		if n.Type == html.ElementNode && (n.DataAtom == atom.Script || n.DataAtom == atom.Style) {
			return
		}
		if n.Type == html.TextNode {
			text := strings.TrimSpace(n.Data)
			if text != "" {
				if b.Len() > 0 {
					b.WriteByte(' ')
				}
				b.WriteString(text)
			}
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			f(c)
		}
	}
	f(doc)

	return strings.Join(strings.Fields(b.String()), " ")
}

// Excerpt returns at most max characters of the fragment's plain text.
func Excerpt(htmlStr string, max int) string {
	text := PlainText(htmlStr)
	if utf8.RuneCountInString(text) <= max {
		return text
	}
	rs := []rune(text)
	return strings.TrimSpace(string(rs[:max]))
}

// ReadTimeMinutes estimates reading time from the fragment's word count,
// rounded up, never less than one minute.
func ReadTimeMinutes(htmlStr string) int {
	words := len(strings.Fields(PlainText(htmlStr)))
	minutes := (words + WordsPerMinute - 1) / WordsPerMinute
	if minutes < 1 {
		minutes = 1
	}
	return minutes
}
