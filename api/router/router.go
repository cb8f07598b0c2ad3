package router

import (
	"context"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"true-feelings/api/handlers"
	"true-feelings/api/middleware"
	_ "true-feelings/docs"
	"true-feelings/gate"
	"true-feelings/services"
)

// Deps are the collaborators the routes are built on.
type Deps struct {
	Posts    *services.PostService
	Taxonomy *services.TaxonomyService
	SEO      *services.SEOService
	Verifier middleware.TokenVerifier
	Gate     *gate.Gate
	Metrics  *middleware.Metrics
	Ping     func(context.Context) error

	CookieName string
	LoginPath  string
}

func New(d Deps) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestTrace())
	if d.Metrics != nil {
		r.Use(d.Metrics.Middleware())
		r.GET("/metrics", gin.WrapH(d.Metrics.Handler()))
	}
	r.Use(middleware.RequestGate(d.Gate, d.CookieName, d.LoginPath))

	r.GET("/health", handlers.HealthHandler(d.Ping))
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	r.GET("/robots.txt", handlers.RobotsHandler(d.SEO))
	r.GET("/rss.xml", handlers.RSSHandler(d.SEO))
	r.GET("/sitemap.xml", handlers.SitemapHandler(d.SEO))

	// gated pages; RequestGate has already resolved the caller
	r.GET("/dashboard", handlers.SessionHandler())
	r.GET("/admin", handlers.SessionHandler())

	adminOnly := middleware.AdminAuth(d.Verifier, d.CookieName)

	api := r.Group("/api")
	{
		api.GET("/posts", handlers.ListPostsHandler(d.Posts))
		api.POST("/posts", adminOnly, handlers.CreatePostHandler(d.Posts))
		api.GET("/posts/slug/:slug", handlers.GetPostBySlugHandler(d.Posts))
		api.GET("/posts/slug/:slug/meta", handlers.GetPostMetaHandler(d.SEO))

		api.GET("/categories", handlers.ListCategoriesHandler(d.Taxonomy))
		api.POST("/categories", adminOnly, handlers.CreateCategoryHandler(d.Taxonomy))
		api.GET("/categories/:slug", handlers.CategoryPostsHandler(d.Taxonomy))
		api.GET("/categories/:slug/meta", handlers.CategoryMetaHandler(d.SEO))

		api.GET("/tags", handlers.ListTagsHandler(d.Taxonomy))
		api.POST("/tags", adminOnly, handlers.CreateTagHandler(d.Taxonomy))
		api.GET("/tags/:slug", handlers.TagPostsHandler(d.Taxonomy))
		api.GET("/tags/:slug/meta", handlers.TagMetaHandler(d.SEO))
	}

	return r
}
