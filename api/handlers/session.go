package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"true-feelings/api/middleware"
	"true-feelings/dto"
)

// SessionHandler godoc
// @Summary      Gated page session
// @Description  Served under the protected prefixes. Anonymous callers are redirected to the login page.
// @Tags         session
// @Produce      json
// @Success      200  {object}  dto.SessionResponse
// @Router       /dashboard [get]
// @Router       /admin [get]
func SessionHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		identity := middleware.IdentityFrom(c)
		if identity == nil {
			c.JSON(http.StatusUnauthorized, dto.ErrorResponseDTO{Success: false, Message: "Unauthorized"})
			return
		}
		c.JSON(http.StatusOK, dto.SessionResponse{
			Success: true,
			Data:    dto.SessionDTO{Subject: identity.Subject, Role: identity.Role},
		})
	}
}
