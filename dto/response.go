package dto

// Page is a generic paginated list result.
// Total counts every item matching the filter, independent of the page window.
type Page[T any] struct {
	Data  []T   `json:"data"`
	Total int64 `json:"total"`
	Page  int   `json:"page"`
	Limit int   `json:"limit"`
}

// PostListResponse is the envelope of GET /api/posts.
// swagger:model PostListResponse
type PostListResponse struct {
	Success bool      `json:"success" example:"true"`
	Data    []PostDTO `json:"data"`
	Total   int64     `json:"total" example:"3"`
	Page    int       `json:"page" example:"1"`
	Limit   int       `json:"limit" example:"10"`
}

// TermPostListResponse is the envelope of the category and tag post listings.
type TermPostListResponse struct {
	Success  bool      `json:"success" example:"true"`
	Data     []PostDTO `json:"data"`
	Total    int64     `json:"total" example:"3"`
	Page     int       `json:"page" example:"1"`
	Limit    int       `json:"limit" example:"10"`
	Category *TermDTO  `json:"category,omitempty"`
	Tag      *TermDTO  `json:"tag,omitempty"`
}

// PostResponse wraps a single post.
type PostResponse struct {
	Success bool    `json:"success" example:"true"`
	Data    PostDTO `json:"data"`
	Message string  `json:"message,omitempty" example:"Post created"`
}

// TermResponse wraps a single category or tag.
type TermResponse struct {
	Success bool    `json:"success" example:"true"`
	Data    TermDTO `json:"data"`
	Message string  `json:"message,omitempty"`
}

// TermListResponse wraps all categories or tags.
type TermListResponse struct {
	Success bool      `json:"success" example:"true"`
	Data    []TermDTO `json:"data"`
}

// ErrorResponseDTO is the common failure envelope. Field names the offending
// input on validation failures.
type ErrorResponseDTO struct {
	Success bool   `json:"success" example:"false"`
	Message string `json:"message" example:"Title and content are required"`
	Field   string `json:"field,omitempty" example:"title"`
}

// SessionDTO describes the caller of a gated page.
type SessionDTO struct {
	Subject string `json:"subject" example:"editor-001"`
	Role    string `json:"role" example:"admin"`
}

// SessionResponse wraps SessionDTO.
type SessionResponse struct {
	Success bool       `json:"success" example:"true"`
	Data    SessionDTO `json:"data"`
}

// HealthResponse is returned by GET /health.
type HealthResponse struct {
	Status string `json:"status" example:"ok"`
	Mongo  string `json:"mongo" example:"up"`
}
