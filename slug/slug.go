// Package slug derives URL-safe identifiers from titles.
package slug

import (
	"strconv"
	"strings"
	"time"
)

// Make lower-cases s and keeps ASCII letters and digits, collapsing every
// other run of characters into a single hyphen. Leading and trailing hyphens
// are dropped, so a title with no usable characters yields "".
func Make(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	var b strings.Builder
	prev := false
	for _, r := range s {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			b.WriteRune(r)
			prev = false
		default:
			if !prev && b.Len() > 0 {
				b.WriteByte('-')
				prev = true
			}
		}
	}
	return strings.TrimRight(b.String(), "-")
}

// WithSuffix disambiguates s with the millisecond timestamp of t.
func WithSuffix(s string, t time.Time) string {
	return s + "-" + strconv.FormatInt(t.UnixMilli(), 10)
}
