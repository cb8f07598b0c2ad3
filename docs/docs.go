// Package docs holds the OpenAPI document served at /swagger. Regenerate with
// `swag init -g cmd/api/main.go` after changing handler annotations.
package docs

import "github.com/swaggo/swag"

const docTemplate = `{
    "schemes": {{ marshal .Schemes }},
    "swagger": "2.0",
    "info": {
        "description": "{{escape .Description}}",
        "title": "{{.Title}}",
        "contact": {},
        "version": "{{.Version}}"
    },
    "host": "{{.Host}}",
    "basePath": "{{.BasePath}}",
    "paths": {
        "/api/posts": {
            "get": {
                "description": "Published posts, featured and trending first, then newest. limit is capped at 50.",
                "produces": ["application/json"],
                "tags": ["posts"],
                "summary": "List posts",
                "parameters": [
                    {"type": "integer", "description": "Page number (1-based)", "name": "page", "in": "query"},
                    {"type": "integer", "description": "Page size (<=50)", "name": "limit", "in": "query"},
                    {"type": "string", "description": "Category slug", "name": "category", "in": "query"},
                    {"type": "string", "description": "Comma separated tag slugs (any match)", "name": "tags", "in": "query"},
                    {"type": "string", "description": "Full text search", "name": "q", "in": "query"},
                    {"type": "boolean", "description": "Only featured posts", "name": "featured", "in": "query"},
                    {"type": "boolean", "description": "Only trending posts", "name": "trending", "in": "query"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/dto.PostListResponse"}},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/dto.ErrorResponseDTO"}}
                }
            },
            "post": {
                "security": [{"CookieAuth": []}],
                "description": "Admin only. Content is sanitized; the slug is derived from the title when omitted and suffixed when taken.",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["posts"],
                "summary": "Create post",
                "parameters": [
                    {"description": "Post", "name": "body", "in": "body", "required": true, "schema": {"$ref": "#/definitions/dto.CreatePostRequest"}}
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/dto.PostResponse"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/dto.ErrorResponseDTO"}},
                    "401": {"description": "Unauthorized", "schema": {"$ref": "#/definitions/dto.ErrorResponseDTO"}},
                    "409": {"description": "Conflict", "schema": {"$ref": "#/definitions/dto.ErrorResponseDTO"}},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/dto.ErrorResponseDTO"}}
                }
            }
        },
        "/api/posts/slug/{slug}": {
            "get": {
                "produces": ["application/json"],
                "tags": ["posts"],
                "summary": "Get post by slug",
                "parameters": [{"type": "string", "description": "Post slug", "name": "slug", "in": "path", "required": true}],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/dto.PostResponse"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/dto.ErrorResponseDTO"}}
                }
            }
        },
        "/api/posts/slug/{slug}/meta": {
            "get": {
                "produces": ["application/json"],
                "tags": ["seo"],
                "summary": "Post SEO metadata",
                "parameters": [{"type": "string", "description": "Post slug", "name": "slug", "in": "path", "required": true}],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/seo.Meta"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/dto.ErrorResponseDTO"}}
                }
            }
        },
        "/api/categories": {
            "get": {
                "produces": ["application/json"],
                "tags": ["categories"],
                "summary": "List categories",
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/dto.TermListResponse"}}}
            },
            "post": {
                "security": [{"CookieAuth": []}],
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["categories"],
                "summary": "Create category",
                "parameters": [
                    {"description": "Category", "name": "body", "in": "body", "required": true, "schema": {"$ref": "#/definitions/dto.CreateTermRequest"}}
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/dto.TermResponse"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/dto.ErrorResponseDTO"}},
                    "401": {"description": "Unauthorized", "schema": {"$ref": "#/definitions/dto.ErrorResponseDTO"}},
                    "409": {"description": "Conflict", "schema": {"$ref": "#/definitions/dto.ErrorResponseDTO"}}
                }
            }
        },
        "/api/categories/{slug}": {
            "get": {
                "description": "Published posts of the category, featured first then newest published.",
                "produces": ["application/json"],
                "tags": ["categories"],
                "summary": "Posts in a category",
                "parameters": [
                    {"type": "string", "description": "Category slug", "name": "slug", "in": "path", "required": true},
                    {"type": "integer", "description": "Page number (1-based)", "name": "page", "in": "query"},
                    {"type": "integer", "description": "Page size (<=50)", "name": "limit", "in": "query"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/dto.TermPostListResponse"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/dto.ErrorResponseDTO"}}
                }
            }
        },
        "/api/categories/{slug}/meta": {
            "get": {
                "produces": ["application/json"],
                "tags": ["seo"],
                "summary": "Category SEO metadata",
                "parameters": [{"type": "string", "description": "Category slug", "name": "slug", "in": "path", "required": true}],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/seo.Meta"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/dto.ErrorResponseDTO"}}
                }
            }
        },
        "/api/tags": {
            "get": {
                "produces": ["application/json"],
                "tags": ["tags"],
                "summary": "List tags",
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/dto.TermListResponse"}}}
            },
            "post": {
                "security": [{"CookieAuth": []}],
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["tags"],
                "summary": "Create tag",
                "parameters": [
                    {"description": "Tag", "name": "body", "in": "body", "required": true, "schema": {"$ref": "#/definitions/dto.CreateTermRequest"}}
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/dto.TermResponse"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/dto.ErrorResponseDTO"}},
                    "401": {"description": "Unauthorized", "schema": {"$ref": "#/definitions/dto.ErrorResponseDTO"}},
                    "409": {"description": "Conflict", "schema": {"$ref": "#/definitions/dto.ErrorResponseDTO"}}
                }
            }
        },
        "/api/tags/{slug}": {
            "get": {
                "produces": ["application/json"],
                "tags": ["tags"],
                "summary": "Posts with a tag",
                "parameters": [
                    {"type": "string", "description": "Tag slug", "name": "slug", "in": "path", "required": true},
                    {"type": "integer", "description": "Page number (1-based)", "name": "page", "in": "query"},
                    {"type": "integer", "description": "Page size (<=50)", "name": "limit", "in": "query"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/dto.TermPostListResponse"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/dto.ErrorResponseDTO"}}
                }
            }
        },
        "/api/tags/{slug}/meta": {
            "get": {
                "produces": ["application/json"],
                "tags": ["seo"],
                "summary": "Tag SEO metadata",
                "parameters": [{"type": "string", "description": "Tag slug", "name": "slug", "in": "path", "required": true}],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/seo.Meta"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/dto.ErrorResponseDTO"}}
                }
            }
        },
        "/admin": {
            "get": {
                "produces": ["application/json"],
                "tags": ["session"],
                "summary": "Gated page session",
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/dto.SessionResponse"}}}
            }
        },
        "/dashboard": {
            "get": {
                "description": "Served under the protected prefixes. Anonymous callers are redirected to the login page.",
                "produces": ["application/json"],
                "tags": ["session"],
                "summary": "Gated page session",
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/dto.SessionResponse"}}}
            }
        },
        "/health": {
            "get": {
                "produces": ["application/json"],
                "tags": ["health"],
                "summary": "Health check",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/dto.HealthResponse"}},
                    "503": {"description": "Service Unavailable", "schema": {"$ref": "#/definitions/dto.HealthResponse"}}
                }
            }
        },
        "/robots.txt": {
            "get": {
                "produces": ["text/plain"],
                "tags": ["seo"],
                "summary": "robots.txt",
                "responses": {"200": {"description": "OK", "schema": {"type": "string"}}}
            }
        },
        "/rss.xml": {
            "get": {
                "produces": ["application/xml"],
                "tags": ["seo"],
                "summary": "RSS feed of the latest published posts",
                "responses": {"200": {"description": "OK", "schema": {"type": "string"}}}
            }
        },
        "/sitemap.xml": {
            "get": {
                "produces": ["application/xml"],
                "tags": ["seo"],
                "summary": "sitemap.xml",
                "responses": {"200": {"description": "OK", "schema": {"type": "string"}}}
            }
        }
    },
    "definitions": {
        "dto.TermRefDTO": {
            "type": "object",
            "properties": {
                "id": {"type": "string", "example": "65f1c2a9e4b0a1b2c3d4e5f6"},
                "name": {"type": "string", "example": "Relationships"},
                "slug": {"type": "string", "example": "relationships"}
            }
        },
        "dto.PostDTO": {
            "type": "object",
            "properties": {
                "id": {"type": "string", "example": "65f1c2a9e4b0a1b2c3d4e5f7"},
                "title": {"type": "string", "example": "Learning to let go"},
                "slug": {"type": "string", "example": "learning-to-let-go"},
                "content": {"type": "string"},
                "excerpt": {"type": "string"},
                "coverImage": {"type": "string"},
                "categories": {"type": "array", "items": {"$ref": "#/definitions/dto.TermRefDTO"}},
                "tags": {"type": "array", "items": {"$ref": "#/definitions/dto.TermRefDTO"}},
                "isFeatured": {"type": "boolean"},
                "isTrending": {"type": "boolean"},
                "published": {"type": "boolean"},
                "publishedAt": {"type": "string"},
                "readTime": {"type": "integer", "example": 4},
                "metaTitle": {"type": "string"},
                "metaDescription": {"type": "string"},
                "metaKeywords": {"type": "array", "items": {"type": "string"}},
                "createdAt": {"type": "string"},
                "updatedAt": {"type": "string"}
            }
        },
        "dto.CreatePostRequest": {
            "type": "object",
            "properties": {
                "title": {"type": "string", "example": "Learning to let go"},
                "slug": {"type": "string"},
                "content": {"type": "string", "example": "<p>Some feelings take time.</p>"},
                "excerpt": {"type": "string"},
                "coverImage": {"type": "string"},
                "categories": {"type": "array", "items": {"type": "string"}},
                "tags": {"type": "array", "items": {"type": "string"}},
                "isFeatured": {"type": "boolean"},
                "isTrending": {"type": "boolean"},
                "published": {"type": "boolean"},
                "publishedAt": {"type": "string"},
                "metaTitle": {"type": "string"},
                "metaDescription": {"type": "string"},
                "metaKeywords": {"type": "array", "items": {"type": "string"}}
            }
        },
        "dto.TermDTO": {
            "type": "object",
            "properties": {
                "id": {"type": "string"},
                "name": {"type": "string", "example": "Relationships"},
                "slug": {"type": "string", "example": "relationships"},
                "title": {"type": "string"},
                "description": {"type": "string"},
                "keywords": {"type": "array", "items": {"type": "string"}},
                "createdAt": {"type": "string"},
                "updatedAt": {"type": "string"}
            }
        },
        "dto.CreateTermRequest": {
            "type": "object",
            "required": ["name"],
            "properties": {
                "name": {"type": "string", "example": "Relationships"},
                "slug": {"type": "string"},
                "title": {"type": "string"},
                "description": {"type": "string"},
                "keywords": {"type": "array", "items": {"type": "string"}}
            }
        },
        "dto.PostListResponse": {
            "type": "object",
            "properties": {
                "success": {"type": "boolean", "example": true},
                "data": {"type": "array", "items": {"$ref": "#/definitions/dto.PostDTO"}},
                "total": {"type": "integer", "example": 3},
                "page": {"type": "integer", "example": 1},
                "limit": {"type": "integer", "example": 10}
            }
        },
        "dto.TermPostListResponse": {
            "type": "object",
            "properties": {
                "success": {"type": "boolean", "example": true},
                "data": {"type": "array", "items": {"$ref": "#/definitions/dto.PostDTO"}},
                "total": {"type": "integer", "example": 3},
                "page": {"type": "integer", "example": 1},
                "limit": {"type": "integer", "example": 10},
                "category": {"$ref": "#/definitions/dto.TermDTO"},
                "tag": {"$ref": "#/definitions/dto.TermDTO"}
            }
        },
        "dto.PostResponse": {
            "type": "object",
            "properties": {
                "success": {"type": "boolean", "example": true},
                "data": {"$ref": "#/definitions/dto.PostDTO"},
                "message": {"type": "string", "example": "Post created"}
            }
        },
        "dto.TermResponse": {
            "type": "object",
            "properties": {
                "success": {"type": "boolean", "example": true},
                "data": {"$ref": "#/definitions/dto.TermDTO"},
                "message": {"type": "string"}
            }
        },
        "dto.TermListResponse": {
            "type": "object",
            "properties": {
                "success": {"type": "boolean", "example": true},
                "data": {"type": "array", "items": {"$ref": "#/definitions/dto.TermDTO"}}
            }
        },
        "dto.ErrorResponseDTO": {
            "type": "object",
            "properties": {
                "success": {"type": "boolean", "example": false},
                "message": {"type": "string", "example": "Title and content are required"},
                "field": {"type": "string", "example": "title"}
            }
        },
        "dto.SessionDTO": {
            "type": "object",
            "properties": {
                "subject": {"type": "string", "example": "editor-001"},
                "role": {"type": "string", "example": "admin"}
            }
        },
        "dto.SessionResponse": {
            "type": "object",
            "properties": {
                "success": {"type": "boolean", "example": true},
                "data": {"$ref": "#/definitions/dto.SessionDTO"}
            }
        },
        "dto.HealthResponse": {
            "type": "object",
            "properties": {
                "status": {"type": "string", "example": "ok"},
                "mongo": {"type": "string", "example": "up"}
            }
        },
        "seo.Image": {
            "type": "object",
            "properties": {
                "url": {"type": "string"},
                "width": {"type": "integer"},
                "height": {"type": "integer"}
            }
        },
        "seo.OpenGraph": {
            "type": "object",
            "properties": {
                "title": {"type": "string"},
                "description": {"type": "string"},
                "url": {"type": "string"},
                "type": {"type": "string"},
                "images": {"type": "array", "items": {"$ref": "#/definitions/seo.Image"}}
            }
        },
        "seo.Twitter": {
            "type": "object",
            "properties": {
                "card": {"type": "string"},
                "title": {"type": "string"},
                "description": {"type": "string"},
                "images": {"type": "array", "items": {"type": "string"}}
            }
        },
        "seo.Meta": {
            "type": "object",
            "properties": {
                "title": {"type": "string"},
                "description": {"type": "string"},
                "keywords": {"type": "string"},
                "canonical": {"type": "string"},
                "openGraph": {"$ref": "#/definitions/seo.OpenGraph"},
                "twitter": {"$ref": "#/definitions/seo.Twitter"}
            }
        }
    },
    "securityDefinitions": {
        "CookieAuth": {"type": "apiKey", "name": "token", "in": "cookie"}
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "",
	BasePath:         "/",
	Schemes:          []string{},
	Title:            "True Feelings API",
	Description:      "Blog content API: posts, categories, tags, feeds and the gated admin pages.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
