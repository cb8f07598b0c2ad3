package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"true-feelings/services"
)

// RobotsHandler godoc
// @Summary      robots.txt
// @Tags         seo
// @Produce      plain
// @Success      200  {string}  string
// @Router       /robots.txt [get]
func RobotsHandler(svc *services.SEOService) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.String(http.StatusOK, svc.Robots())
	}
}

// RSSHandler godoc
// @Summary      RSS feed of the latest published posts
// @Tags         seo
// @Produce      xml
// @Success      200  {string}  string
// @Router       /rss.xml [get]
func RSSHandler(svc *services.SEOService) gin.HandlerFunc {
	return func(c *gin.Context) {
		body, err := svc.RSS(c.Request.Context())
		if err != nil {
			writeError(c, err, "Feed")
			return
		}
		c.Data(http.StatusOK, "application/rss+xml; charset=utf-8", body)
	}
}

// SitemapHandler godoc
// @Summary      sitemap.xml
// @Tags         seo
// @Produce      xml
// @Success      200  {string}  string
// @Router       /sitemap.xml [get]
func SitemapHandler(svc *services.SEOService) gin.HandlerFunc {
	return func(c *gin.Context) {
		body, err := svc.Sitemap(c.Request.Context())
		if err != nil {
			writeError(c, err, "Sitemap")
			return
		}
		c.Data(http.StatusOK, "application/xml; charset=utf-8", body)
	}
}
