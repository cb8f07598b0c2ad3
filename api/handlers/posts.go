package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"true-feelings/api/middleware"
	"true-feelings/dto"
	"true-feelings/services"
)

// ListPostsHandler godoc
// @Summary      List posts
// @Description  Published posts, featured and trending first, then newest. limit is capped at 50.
// @Tags         posts
// @Param        page      query  int     false  "Page number (1-based)"
// @Param        limit     query  int     false  "Page size (<=50)"
// @Param        category  query  string  false  "Category slug"
// @Param        tags      query  string  false  "Comma separated tag slugs (any match)"
// @Param        q         query  string  false  "Full text search"
// @Param        featured  query  bool    false  "Only featured posts"
// @Param        trending  query  bool    false  "Only trending posts"
// @Produce      json
// @Success      200  {object}  dto.PostListResponse
// @Failure      500  {object}  dto.ErrorResponseDTO
// @Router       /api/posts [get]
func ListPostsHandler(svc *services.PostService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var in services.ListPostsInput
		in.Page, in.Limit = pageParams(c)
		in.CategorySlug = c.Query("category")
		in.TagSlugs = csvParam(c, "tags")
		in.Search = c.Query("q")
		in.FeaturedOnly = flagParam(c, "featured")
		in.TrendingOnly = flagParam(c, "trending")

		page, err := svc.List(c.Request.Context(), in)
		if err != nil {
			writeError(c, err, "Post")
			return
		}
		c.JSON(http.StatusOK, dto.PostListResponse{
			Success: true,
			Data:    page.Data,
			Total:   page.Total,
			Page:    page.Page,
			Limit:   page.Limit,
		})
	}
}

// GetPostBySlugHandler godoc
// @Summary      Get post by slug
// @Tags         posts
// @Param        slug  path  string  true  "Post slug"
// @Produce      json
// @Success      200  {object}  dto.PostResponse
// @Failure      404  {object}  dto.ErrorResponseDTO
// @Router       /api/posts/slug/{slug} [get]
func GetPostBySlugHandler(svc *services.PostService) gin.HandlerFunc {
	return func(c *gin.Context) {
		post, err := svc.GetBySlug(c.Request.Context(), c.Param("slug"))
		if err != nil {
			writeError(c, err, "Post")
			return
		}
		c.JSON(http.StatusOK, dto.PostResponse{Success: true, Data: post})
	}
}

// GetPostMetaHandler godoc
// @Summary      Post SEO metadata
// @Tags         seo
// @Param        slug  path  string  true  "Post slug"
// @Produce      json
// @Success      200  {object}  seo.Meta
// @Failure      404  {object}  dto.ErrorResponseDTO
// @Router       /api/posts/slug/{slug}/meta [get]
func GetPostMetaHandler(svc *services.SEOService) gin.HandlerFunc {
	return func(c *gin.Context) {
		meta, err := svc.PostMeta(c.Request.Context(), c.Param("slug"))
		if err != nil {
			writeError(c, err, "Post")
			return
		}
		c.JSON(http.StatusOK, meta)
	}
}

// CreatePostHandler godoc
// @Summary      Create post
// @Description  Admin only. Content is sanitized; the slug is derived from the title when omitted and suffixed when taken.
// @Tags         posts
// @Accept       json
// @Produce      json
// @Param        body  body      dto.CreatePostRequest  true  "Post"
// @Success      201   {object}  dto.PostResponse
// @Failure      400   {object}  dto.ErrorResponseDTO
// @Failure      401   {object}  dto.ErrorResponseDTO
// @Failure      409   {object}  dto.ErrorResponseDTO
// @Failure      500   {object}  dto.ErrorResponseDTO
// @Security     CookieAuth
// @Router       /api/posts [post]
func CreatePostHandler(svc *services.PostService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var in dto.CreatePostRequest
		if err := c.ShouldBindJSON(&in); err != nil {
			writeError(c, bindError(err), "Post")
			return
		}
		post, err := svc.Create(c.Request.Context(), middleware.IdentityFrom(c), in)
		if err != nil {
			writeError(c, err, "Post")
			return
		}
		c.JSON(http.StatusCreated, dto.PostResponse{Success: true, Data: post, Message: "Post created"})
	}
}
