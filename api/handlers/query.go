package handlers

import (
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
)

// pageParams reads page and limit. Malformed values become 0 and the service
// substitutes its defaults.
func pageParams(c *gin.Context) (page, limit int) {
	page, _ = strconv.Atoi(c.Query("page"))
	limit, _ = strconv.Atoi(c.Query("limit"))
	return page, limit
}

// csvParam splits a comma separated query value and drops blanks.
func csvParam(c *gin.Context, key string) []string {
	var out []string
	for _, raw := range c.QueryArray(key) {
		for _, v := range strings.Split(raw, ",") {
			if v = strings.TrimSpace(v); v != "" {
				out = append(out, v)
			}
		}
	}
	return out
}

// flagParam is true only for the literal "true".
func flagParam(c *gin.Context, key string) bool {
	return c.Query(key) == "true"
}
