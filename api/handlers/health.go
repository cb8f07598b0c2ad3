package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"true-feelings/dto"
	"true-feelings/internal/logger"
)

// HealthHandler godoc
// @Summary      Health check
// @Tags         health
// @Produce      json
// @Success      200  {object}  dto.HealthResponse
// @Failure      503  {object}  dto.HealthResponse
// @Router       /health [get]
func HealthHandler(ping func(context.Context) error) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
		defer cancel()
		if err := ping(ctx); err != nil {
			logger.Log.Warnf("health: mongo ping failed: %v", err)
			c.JSON(http.StatusServiceUnavailable, dto.HealthResponse{Status: "degraded", Mongo: "down"})
			return
		}
		c.JSON(http.StatusOK, dto.HealthResponse{Status: "ok", Mongo: "up"})
	}
}
