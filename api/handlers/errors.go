package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"
	"unicode"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"

	"true-feelings/api/trace"
	"true-feelings/dto"
	"true-feelings/internal/logger"
	"true-feelings/services"
)

// writeError maps a service error onto the JSON failure envelope.
// subject names the resource in not-found messages, e.g. "Post".
func writeError(c *gin.Context, err error, subject string) {
	var verr *services.ValidationError
	switch {
	case errors.As(err, &verr):
		c.JSON(http.StatusBadRequest, dto.ErrorResponseDTO{Success: false, Message: verr.Message, Field: verr.Field})
	case errors.Is(err, services.ErrUnauthorized):
		c.JSON(http.StatusUnauthorized, dto.ErrorResponseDTO{Success: false, Message: "Unauthorized"})
	case errors.Is(err, services.ErrNotFound):
		c.JSON(http.StatusNotFound, dto.ErrorResponseDTO{Success: false, Message: subject + " not found"})
	case errors.Is(err, services.ErrConflict):
		c.JSON(http.StatusConflict, dto.ErrorResponseDTO{Success: false, Message: subject + " with this slug already exists"})
	default:
		logger.ErrorWithFields("request failed", logger.Fields{
			"request_id": trace.RequestIDFromContext(c.Request.Context()),
			"method":     c.Request.Method,
			"path":       c.Request.URL.Path,
			"error":      err.Error(),
		})
		c.JSON(http.StatusInternalServerError, dto.ErrorResponseDTO{Success: false, Message: "internal server error"})
	}
}

// bindError turns a gin binding failure into a ValidationError naming the field.
func bindError(err error) error {
	var ves validator.ValidationErrors
	if errors.As(err, &ves) && len(ves) > 0 {
		fe := ves[0]
		field := lowerCamel(fe.Field())
		msg := field + " is invalid"
		if fe.Tag() == "required" {
			msg = field + " is required"
		}
		return &services.ValidationError{Field: field, Message: msg}
	}

	var typeErr *json.UnmarshalTypeError
	if errors.As(err, &typeErr) {
		field := typeErr.Field
		if i := strings.LastIndex(field, "."); i >= 0 {
			field = field[i+1:]
		}
		return &services.ValidationError{Field: field, Message: field + " must be a " + typeErr.Type.String()}
	}

	return &services.ValidationError{Message: "Invalid request body"}
}

func lowerCamel(s string) string {
	if s == "" {
		return s
	}
	r := []rune(s)
	r[0] = unicode.ToLower(r[0])
	return string(r)
}
