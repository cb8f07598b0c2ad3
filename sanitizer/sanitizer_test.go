package sanitizer_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"true-feelings/sanitizer"
)

func TestSanitizeRemovesScripts(t *testing.T) {
	out := sanitizer.Sanitize(`<p>hello</p><script>alert("x")</script>`)
	assert.Contains(t, out, "<p>hello</p>")
	assert.NotContains(t, out, "script")
	assert.NotContains(t, out, "alert")
}

func TestSanitizeRemovesEventHandlers(t *testing.T) {
	out := sanitizer.Sanitize(`<img src="https://cdn.example.com/a.png" onerror="steal()" alt="a">`)
	assert.Contains(t, out, `src="https://cdn.example.com/a.png"`)
	assert.Contains(t, out, `alt="a"`)
	assert.NotContains(t, out, "onerror")
	assert.NotContains(t, out, "steal")
}

func TestSanitizeKeepsAllowedMarkup(t *testing.T) {
	in := `<h1 class="title">Heading</h1><h2>Sub</h2><span class="note">x</span><a href="https://truefeelings.in" target="_blank">link</a>`
	out := sanitizer.Sanitize(in)

	assert.Contains(t, out, `<h1 class="title">Heading</h1>`)
	assert.Contains(t, out, "<h2>Sub</h2>")
	assert.Contains(t, out, `<span class="note">x</span>`)
	assert.Contains(t, out, `href="https://truefeelings.in"`)
	assert.Contains(t, out, `target="_blank"`)
}

func TestSanitizeDropsJavascriptURLs(t *testing.T) {
	out := sanitizer.Sanitize(`<a href="javascript:alert(1)">click</a>`)
	assert.NotContains(t, out, "javascript")
	assert.Contains(t, out, "click")
}

func TestSanitizeDropsUnknownElements(t *testing.T) {
	out := sanitizer.Sanitize(`<iframe src="https://evil.example"></iframe><p>ok</p>`)
	assert.NotContains(t, out, "iframe")
	assert.Contains(t, out, "<p>ok</p>")
}
