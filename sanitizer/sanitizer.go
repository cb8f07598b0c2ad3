// Package sanitizer cleans author-supplied post HTML before it is stored.
package sanitizer

import (
	"sync"

	"github.com/microcosm-cc/bluemonday"
)

// baseElements is the common rich-text set: block structure, inline
// formatting and tables.
var baseElements = []string{
	"address", "article", "aside", "footer", "header",
	"h1", "h2", "h3", "h4", "h5", "h6", "hgroup", "main", "nav", "section",
	"blockquote", "dd", "div", "dl", "dt", "figcaption", "figure", "hr", "li", "ol", "p", "pre", "ul",
	"a", "abbr", "b", "bdi", "bdo", "br", "cite", "code", "data", "dfn", "em", "i", "kbd", "mark",
	"q", "rb", "rp", "rt", "rtc", "ruby", "s", "samp", "small", "span", "strong", "sub", "sup",
	"time", "u", "var", "wbr",
	"caption", "col", "colgroup", "table", "tbody", "td", "tfoot", "th", "thead", "tr",
	"img",
}

var inlineStyles = []string{
	"color", "background-color", "text-align", "text-decoration",
	"font-weight", "font-style", "font-size", "font-family",
	"margin", "margin-left", "margin-right", "padding", "width", "height",
}

var (
	policy     *bluemonday.Policy
	policyOnce sync.Once
)

// Policy returns the shared post-content policy.
func Policy() *bluemonday.Policy {
	policyOnce.Do(func() {
		policy = newPolicy()
	})
	return policy
}

func newPolicy() *bluemonday.Policy {
	p := bluemonday.NewPolicy()
	p.AllowElements(baseElements...)

	p.AllowAttrs("href", "name", "target").OnElements("a")
	p.AllowAttrs("src", "alt", "width", "height").OnElements("img")
	p.AllowAttrs("class").Globally()
	p.AllowStyles(inlineStyles...).Globally()

	p.AllowURLSchemes("http", "https", "ftp", "mailto", "tel")
	p.AllowRelativeURLs(true)
	p.RequireParseableURLs(true)
	return p
}

// Sanitize strips disallowed elements, attributes and URL schemes from html.
// Policies are safe for concurrent use.
func Sanitize(html string) string {
	return Policy().Sanitize(html)
}
