package handlers

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"true-feelings/api/middleware"
	"true-feelings/auth"
	"true-feelings/dto"
	"true-feelings/seo"
	"true-feelings/services"
)

// ListCategoriesHandler godoc
// @Summary      List categories
// @Tags         categories
// @Produce      json
// @Success      200  {object}  dto.TermListResponse
// @Router       /api/categories [get]
func ListCategoriesHandler(svc *services.TaxonomyService) gin.HandlerFunc {
	return listTerms(svc.ListCategories, "Category")
}

// ListTagsHandler godoc
// @Summary      List tags
// @Tags         tags
// @Produce      json
// @Success      200  {object}  dto.TermListResponse
// @Router       /api/tags [get]
func ListTagsHandler(svc *services.TaxonomyService) gin.HandlerFunc {
	return listTerms(svc.ListTags, "Tag")
}

func listTerms(list func(context.Context) ([]dto.TermDTO, error), subject string) gin.HandlerFunc {
	return func(c *gin.Context) {
		items, err := list(c.Request.Context())
		if err != nil {
			writeError(c, err, subject)
			return
		}
		c.JSON(http.StatusOK, dto.TermListResponse{Success: true, Data: items})
	}
}

// CreateCategoryHandler godoc
// @Summary      Create category
// @Tags         categories
// @Accept       json
// @Produce      json
// @Param        body  body      dto.CreateTermRequest  true  "Category"
// @Success      201   {object}  dto.TermResponse
// @Failure      400   {object}  dto.ErrorResponseDTO
// @Failure      401   {object}  dto.ErrorResponseDTO
// @Failure      409   {object}  dto.ErrorResponseDTO
// @Security     CookieAuth
// @Router       /api/categories [post]
func CreateCategoryHandler(svc *services.TaxonomyService) gin.HandlerFunc {
	return createTerm(svc.CreateCategory, "Category")
}

// CreateTagHandler godoc
// @Summary      Create tag
// @Tags         tags
// @Accept       json
// @Produce      json
// @Param        body  body      dto.CreateTermRequest  true  "Tag"
// @Success      201   {object}  dto.TermResponse
// @Failure      400   {object}  dto.ErrorResponseDTO
// @Failure      401   {object}  dto.ErrorResponseDTO
// @Failure      409   {object}  dto.ErrorResponseDTO
// @Security     CookieAuth
// @Router       /api/tags [post]
func CreateTagHandler(svc *services.TaxonomyService) gin.HandlerFunc {
	return createTerm(svc.CreateTag, "Tag")
}

func createTerm(create func(context.Context, *auth.Identity, dto.CreateTermRequest) (dto.TermDTO, error), subject string) gin.HandlerFunc {
	return func(c *gin.Context) {
		var in dto.CreateTermRequest
		if err := c.ShouldBindJSON(&in); err != nil {
			writeError(c, bindError(err), subject)
			return
		}
		term, err := create(c.Request.Context(), middleware.IdentityFrom(c), in)
		if err != nil {
			writeError(c, err, subject)
			return
		}
		c.JSON(http.StatusCreated, dto.TermResponse{Success: true, Data: term, Message: subject + " created"})
	}
}

// CategoryPostsHandler godoc
// @Summary      Posts in a category
// @Description  Published posts of the category, featured first then newest published.
// @Tags         categories
// @Param        slug   path   string  true   "Category slug"
// @Param        page   query  int     false  "Page number (1-based)"
// @Param        limit  query  int     false  "Page size (<=50)"
// @Produce      json
// @Success      200  {object}  dto.TermPostListResponse
// @Failure      404  {object}  dto.ErrorResponseDTO
// @Router       /api/categories/{slug} [get]
func CategoryPostsHandler(svc *services.TaxonomyService) gin.HandlerFunc {
	return func(c *gin.Context) {
		page, limit := pageParams(c)
		term, result, err := svc.PostsByCategory(c.Request.Context(), c.Param("slug"), page, limit)
		if err != nil {
			writeError(c, err, "Category")
			return
		}
		resp := termPostList(result)
		resp.Category = &term
		c.JSON(http.StatusOK, resp)
	}
}

// TagPostsHandler godoc
// @Summary      Posts with a tag
// @Tags         tags
// @Param        slug   path   string  true   "Tag slug"
// @Param        page   query  int     false  "Page number (1-based)"
// @Param        limit  query  int     false  "Page size (<=50)"
// @Produce      json
// @Success      200  {object}  dto.TermPostListResponse
// @Failure      404  {object}  dto.ErrorResponseDTO
// @Router       /api/tags/{slug} [get]
func TagPostsHandler(svc *services.TaxonomyService) gin.HandlerFunc {
	return func(c *gin.Context) {
		page, limit := pageParams(c)
		term, result, err := svc.PostsByTag(c.Request.Context(), c.Param("slug"), page, limit)
		if err != nil {
			writeError(c, err, "Tag")
			return
		}
		resp := termPostList(result)
		resp.Tag = &term
		c.JSON(http.StatusOK, resp)
	}
}

func termPostList(p dto.Page[dto.PostDTO]) dto.TermPostListResponse {
	return dto.TermPostListResponse{Success: true, Data: p.Data, Total: p.Total, Page: p.Page, Limit: p.Limit}
}

// CategoryMetaHandler godoc
// @Summary      Category SEO metadata
// @Tags         seo
// @Param        slug  path  string  true  "Category slug"
// @Produce      json
// @Success      200  {object}  seo.Meta
// @Failure      404  {object}  dto.ErrorResponseDTO
// @Router       /api/categories/{slug}/meta [get]
func CategoryMetaHandler(svc *services.SEOService) gin.HandlerFunc {
	return termMeta(svc.CategoryMeta, "Category")
}

// TagMetaHandler godoc
// @Summary      Tag SEO metadata
// @Tags         seo
// @Param        slug  path  string  true  "Tag slug"
// @Produce      json
// @Success      200  {object}  seo.Meta
// @Failure      404  {object}  dto.ErrorResponseDTO
// @Router       /api/tags/{slug}/meta [get]
func TagMetaHandler(svc *services.SEOService) gin.HandlerFunc {
	return termMeta(svc.TagMeta, "Tag")
}

func termMeta(lookup func(context.Context, string) (seo.Meta, error), subject string) gin.HandlerFunc {
	return func(c *gin.Context) {
		meta, err := lookup(c.Request.Context(), c.Param("slug"))
		if err != nil {
			writeError(c, err, subject)
			return
		}
		c.JSON(http.StatusOK, meta)
	}
}
