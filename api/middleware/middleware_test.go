package middleware

import (
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"true-feelings/api/trace"
	"true-feelings/auth"
	"true-feelings/gate"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func newManager(t *testing.T) *auth.JWTManager {
	t.Helper()
	m, err := auth.NewJWTManager("test-secret", "true-feelings", time.Hour)
	require.NoError(t, err)
	return m
}

func sessionCookie(t *testing.T, m *auth.JWTManager, role string) *http.Cookie {
	t.Helper()
	token, err := m.Sign("user-1", role)
	require.NoError(t, err)
	return &http.Cookie{Name: "token", Value: token}
}

func TestRequestTraceSetsRequestID(t *testing.T) {
	r := gin.New()
	r.Use(RequestTrace())
	var seen string
	r.POST("/echo", func(c *gin.Context) {
		seen = trace.RequestIDFromContext(c.Request.Context())
		body, _ := io.ReadAll(c.Request.Body)
		c.String(http.StatusOK, string(body))
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/echo", strings.NewReader("hello"))
	r.ServeHTTP(w, req)

	assert.Equal(t, "hello", w.Body.String())
	assert.NotEmpty(t, seen)
	assert.Equal(t, seen, w.Header().Get("X-Request-Id"))

	w = httptest.NewRecorder()
	req = httptest.NewRequest(http.MethodPost, "/echo", strings.NewReader("x"))
	req.Header.Set("X-Request-Id", "fixed-id")
	r.ServeHTTP(w, req)
	assert.Equal(t, "fixed-id", seen)
}

func TestRequestGate(t *testing.T) {
	m := newManager(t)
	g := gate.New([]string{"/dashboard", "/admin"}, m)

	r := gin.New()
	r.Use(RequestGate(g, "token", "/login"))
	handler := func(c *gin.Context) {
		identity := IdentityFrom(c)
		if identity == nil {
			c.String(http.StatusOK, "anonymous")
			return
		}
		c.String(http.StatusOK, identity.Role)
	}
	r.GET("/dashboard", handler)
	r.GET("/dashboard/stats", handler)
	r.GET("/blog", handler)
	r.GET("/dashboards", handler)

	tests := []struct {
		name     string
		path     string
		cookie   *http.Cookie
		wantCode int
		wantBody string
		wantLoc  string
	}{
		{name: "public path", path: "/blog", wantCode: http.StatusOK, wantBody: "anonymous"},
		{name: "prefix lookalike", path: "/dashboards", wantCode: http.StatusOK, wantBody: "anonymous"},
		{name: "no cookie", path: "/dashboard", wantCode: http.StatusFound, wantLoc: "/login?next=%2Fdashboard"},
		{name: "nested no cookie", path: "/dashboard/stats", wantCode: http.StatusFound, wantLoc: "/login?next=%2Fdashboard%2Fstats"},
		{name: "bad cookie", path: "/dashboard", cookie: &http.Cookie{Name: "token", Value: "garbage"}, wantCode: http.StatusFound, wantLoc: "/login?next=%2Fdashboard"},
		{name: "valid cookie", path: "/dashboard", cookie: sessionCookie(t, m, auth.RoleUser), wantCode: http.StatusOK, wantBody: auth.RoleUser},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodGet, tt.path, nil)
			if tt.cookie != nil {
				req.AddCookie(tt.cookie)
			}
			r.ServeHTTP(w, req)

			assert.Equal(t, tt.wantCode, w.Code)
			if tt.wantLoc != "" {
				assert.Equal(t, tt.wantLoc, w.Header().Get("Location"))
			}
			if tt.wantBody != "" {
				assert.Equal(t, tt.wantBody, w.Body.String())
			}
		})
	}
}

func TestAdminAuth(t *testing.T) {
	m := newManager(t)
	r := gin.New()
	var reached int
	r.POST("/admin-only", AdminAuth(m, "token"), func(c *gin.Context) {
		reached++
		c.String(http.StatusOK, IdentityFrom(c).Subject)
	})

	adminToken, err := m.Sign("admin-1", auth.RoleAdmin)
	require.NoError(t, err)

	tests := []struct {
		name     string
		prepare  func(*http.Request)
		wantCode int
	}{
		{name: "anonymous", prepare: func(*http.Request) {}, wantCode: http.StatusUnauthorized},
		{name: "user cookie", prepare: func(r *http.Request) { r.AddCookie(sessionCookie(t, m, auth.RoleUser)) }, wantCode: http.StatusUnauthorized},
		{name: "invalid bearer", prepare: func(r *http.Request) { r.Header.Set("Authorization", "Bearer nope") }, wantCode: http.StatusUnauthorized},
		{name: "admin cookie", prepare: func(r *http.Request) { r.AddCookie(sessionCookie(t, m, auth.RoleAdmin)) }, wantCode: http.StatusOK},
		{name: "admin bearer", prepare: func(r *http.Request) { r.Header.Set("Authorization", "Bearer "+adminToken) }, wantCode: http.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			reached = 0
			w := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodPost, "/admin-only", nil)
			tt.prepare(req)
			r.ServeHTTP(w, req)

			assert.Equal(t, tt.wantCode, w.Code)
			if tt.wantCode == http.StatusUnauthorized {
				assert.Equal(t, 0, reached)
				assert.JSONEq(t, `{"success":false,"message":"Unauthorized"}`, w.Body.String())
			} else {
				assert.Equal(t, 1, reached)
			}
		})
	}
}

func TestAdminAuthReusesGateIdentity(t *testing.T) {
	m := newManager(t)
	g := gate.New([]string{"/admin"}, m)

	r := gin.New()
	r.Use(RequestGate(g, "token", "/login"))
	r.POST("/admin/posts", AdminAuth(m, "token"), func(c *gin.Context) {
		c.String(http.StatusOK, IdentityFrom(c).Role)
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/admin/posts", nil)
	req.AddCookie(sessionCookie(t, m, auth.RoleAdmin))
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, auth.RoleAdmin, w.Body.String())

	w = httptest.NewRecorder()
	req = httptest.NewRequest(http.MethodPost, "/admin/posts", nil)
	req.AddCookie(sessionCookie(t, m, auth.RoleUser))
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.JSONEq(t, `{"success":false,"message":"Unauthorized"}`, w.Body.String())
}

func TestMetricsExposesRequestCounts(t *testing.T) {
	metrics := NewMetrics()
	r := gin.New()
	r.Use(metrics.Middleware())
	r.GET("/ping", func(c *gin.Context) { c.Status(http.StatusNoContent) })
	r.GET("/metrics", gin.WrapH(metrics.Handler()))

	r.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/ping", nil))

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `http_requests_total{method="GET",route="/ping",status="204"} 1`)
}
