package server

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"true-feelings/config"
)

func okHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
}

func TestNewHandlerAllowsConfiguredOrigin(t *testing.T) {
	h := NewHandler(okHandler(), config.CORSConfig{AllowedOrigins: []string{"https://truefeelings.in"}})

	req := httptest.NewRequest(http.MethodOptions, "/api/posts", nil)
	req.Header.Set("Origin", "https://truefeelings.in")
	req.Header.Set("Access-Control-Request-Method", http.MethodPost)
	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)

	assert.Equal(t, "https://truefeelings.in", w.Header().Get("Access-Control-Allow-Origin"))
	assert.Equal(t, "true", w.Header().Get("Access-Control-Allow-Credentials"))

	req = httptest.NewRequest(http.MethodGet, "/api/posts", nil)
	req.Header.Set("Origin", "https://evil.example")
	w = httptest.NewRecorder()
	h.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Empty(t, w.Header().Get("Access-Control-Allow-Origin"))
}

func TestNewHandlerWithoutOriginsIsPassthrough(t *testing.T) {
	h := NewHandler(okHandler(), config.CORSConfig{})
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Origin", "https://truefeelings.in")
	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)
	assert.Empty(t, w.Header().Get("Access-Control-Allow-Origin"))
}

func TestNewAppliesTimeouts(t *testing.T) {
	srv := New(okHandler(), config.ServerConfig{Addr: ":9999", ReadHeaderTimeout: 2 * time.Second, WriteTimeout: 3 * time.Second})
	assert.Equal(t, ":9999", srv.Addr)
	assert.Equal(t, 2*time.Second, srv.ReadHeaderTimeout)
	assert.Equal(t, 3*time.Second, srv.WriteTimeout)
}

func TestRunNilServer(t *testing.T) {
	assert.Error(t, Run(nil, time.Second))
}
