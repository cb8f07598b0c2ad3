package server

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/cors"

	"true-feelings/config"
	"true-feelings/internal/logger"
)

// NewHandler wraps h with CORS for the configured origins. Credentials are
// allowed so the session cookie reaches the API from the site frontend.
func NewHandler(h http.Handler, cfg config.CORSConfig) http.Handler {
	if h == nil {
		return http.NotFoundHandler()
	}
	if len(cfg.AllowedOrigins) == 0 {
		return h
	}
	c := cors.New(cors.Options{
		AllowedOrigins:   cfg.AllowedOrigins,
		AllowedMethods:   []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-Request-Id"},
		ExposedHeaders:   []string{"X-Request-Id"},
		AllowCredentials: true,
		MaxAge:           300,
	})
	return c.Handler(h)
}

// New builds the http.Server with the configured timeouts.
func New(handler http.Handler, cfg config.ServerConfig) *http.Server {
	return &http.Server{
		Addr:              cfg.Addr,
		Handler:           handler,
		ReadHeaderTimeout: cfg.ReadHeaderTimeout,
		WriteTimeout:      cfg.WriteTimeout,
	}
}

// Run serves until SIGINT/SIGTERM and then shuts down within shutdownTimeout.
func Run(srv *http.Server, shutdownTimeout time.Duration) error {
	if srv == nil {
		return errors.New("nil http server")
	}

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.ListenAndServe()
	}()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(sigCh)

	logger.Log.Infof("HTTP server listening on %s", srv.Addr)

	select {
	case err := <-errCh:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("listen and serve: %w", err)
		}
		return nil
	case sig := <-sigCh:
		logger.Log.Infof("shutdown signal received: %v", sig)
	}

	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		if !errors.Is(err, context.DeadlineExceeded) {
			return fmt.Errorf("shutdown server: %w", err)
		}
		logger.Log.Warnf("graceful shutdown timed out, forcing close")
		if closeErr := srv.Close(); closeErr != nil {
			logger.Log.Errorf("force close server failed: %v", closeErr)
		}
	}

	if err := <-errCh; err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("listen and serve: %w", err)
	}
	logger.Log.Info("HTTP server stopped")
	return nil
}
