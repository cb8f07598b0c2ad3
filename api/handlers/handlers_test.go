package handlers

import (
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"true-feelings/services"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func TestWriteError(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		wantCode int
		wantBody string
	}{
		{
			name:     "validation",
			err:      fmt.Errorf("create: %w", &services.ValidationError{Field: "title", Message: "Title and content required"}),
			wantCode: http.StatusBadRequest,
			wantBody: `{"success":false,"message":"Title and content required","field":"title"}`,
		},
		{name: "unauthorized", err: services.ErrUnauthorized, wantCode: http.StatusUnauthorized, wantBody: `{"success":false,"message":"Unauthorized"}`},
		{name: "not found", err: fmt.Errorf("post %q: %w", "x", services.ErrNotFound), wantCode: http.StatusNotFound, wantBody: `{"success":false,"message":"Post not found"}`},
		{name: "conflict", err: services.ErrConflict, wantCode: http.StatusConflict, wantBody: `{"success":false,"message":"Post with this slug already exists"}`},
		{name: "internal", err: errors.New("socket closed"), wantCode: http.StatusInternalServerError, wantBody: `{"success":false,"message":"internal server error"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			c, _ := gin.CreateTestContext(w)
			c.Request = httptest.NewRequest(http.MethodGet, "/", nil)

			writeError(c, tt.err, "Post")

			assert.Equal(t, tt.wantCode, w.Code)
			assert.JSONEq(t, tt.wantBody, w.Body.String())
		})
	}
}

func TestBindErrorFallback(t *testing.T) {
	var verr *services.ValidationError
	require.True(t, errors.As(bindError(errors.New("EOF")), &verr))
	assert.Empty(t, verr.Field)
	assert.Equal(t, "Invalid request body", verr.Message)
	assert.ErrorIs(t, bindError(errors.New("EOF")), services.ErrValidation)
}

func TestQueryHelpers(t *testing.T) {
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/?page=2&limit=x&tags=a,,%20b&tags=c&featured=true&trending=yes", nil)

	page, limit := pageParams(c)
	assert.Equal(t, 2, page)
	assert.Equal(t, 0, limit)
	assert.Equal(t, []string{"a", "b", "c"}, csvParam(c, "tags"))
	assert.Nil(t, csvParam(c, "missing"))
	assert.True(t, flagParam(c, "featured"))
	assert.False(t, flagParam(c, "trending"))
}
