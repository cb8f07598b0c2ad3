package auth

import (
	"errors"
	"net/http"
	"strings"
)

var (
	ErrMissingHeader = errors.New("missing_authorization_header")
	ErrInvalidFormat = errors.New("invalid_authorization_header")
	ErrEmptyToken    = errors.New("empty_token")
)

// ExtractBearerToken extracts the Bearer token from the Authorization header.
func ExtractBearerToken(r *http.Request) (string, error) {
	authHeader := r.Header.Get("Authorization")
	if authHeader == "" {
		return "", ErrMissingHeader
	}

	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
		return "", ErrInvalidFormat
	}

	token := strings.TrimSpace(parts[1])
	if token == "" {
		return "", ErrEmptyToken
	}

	return token, nil
}

// CookieToken returns the value of the named session cookie, or "".
func CookieToken(r *http.Request, cookieName string) string {
	c, err := r.Cookie(cookieName)
	if err != nil {
		return ""
	}
	return strings.TrimSpace(c.Value)
}

// TokenFromRequest prefers the session cookie and falls back to a Bearer header.
func TokenFromRequest(r *http.Request, cookieName string) string {
	if token := CookieToken(r, cookieName); token != "" {
		return token
	}
	token, err := ExtractBearerToken(r)
	if err != nil {
		return ""
	}
	return token
}
