package middleware

import (
	"net/http"
	"net/url"

	"github.com/gin-gonic/gin"

	"true-feelings/auth"
	"true-feelings/dto"
	"true-feelings/gate"
	"true-feelings/internal/logger"
)

const ctxKeyIdentity = "identity"

// TokenVerifier verifies a session token.
type TokenVerifier interface {
	Verify(token string) (auth.Identity, error)
}

// IdentityFrom returns the caller resolved by an earlier middleware, or nil.
func IdentityFrom(c *gin.Context) *auth.Identity {
	v, ok := c.Get(ctxKeyIdentity)
	if !ok {
		return nil
	}
	identity, _ := v.(*auth.Identity)
	return identity
}

// RequestGate guards page routes. Requests the gate rejects are redirected to
// loginPath with the requested path in "next".
func RequestGate(g *gate.Gate, cookieName, loginPath string) gin.HandlerFunc {
	return func(c *gin.Context) {
		path := c.Request.URL.Path
		decision, identity := g.Check(path, auth.CookieToken(c.Request, cookieName))
		if decision == gate.RedirectToLogin {
			location := loginPath + "?next=" + url.QueryEscape(path)
			c.Redirect(http.StatusFound, location)
			c.Abort()
			return
		}
		if identity != nil {
			c.Set(ctxKeyIdentity, identity)
		}
		c.Next()
	}
}

// AdminAuth rejects callers that are not admins with 401 before any later
// handler runs.
func AdminAuth(verifier TokenVerifier, cookieName string) gin.HandlerFunc {
	return func(c *gin.Context) {
		identity := resolveIdentity(c, verifier, cookieName)
		if identity == nil || !identity.IsAdmin() {
			if identity != nil {
				logger.Log.Warnf("access denied: %s has role %q, want admin", identity.Subject, identity.Role)
			}
			c.AbortWithStatusJSON(http.StatusUnauthorized, dto.ErrorResponseDTO{Success: false, Message: "Unauthorized"})
			return
		}
		c.Next()
	}
}

// resolveIdentity returns the identity RequestGate already stored, or verifies
// the session cookie or Bearer token and stores the result. It must not call
// c.Next.
func resolveIdentity(c *gin.Context, verifier TokenVerifier, cookieName string) *auth.Identity {
	if identity := IdentityFrom(c); identity != nil {
		return identity
	}
	token := auth.TokenFromRequest(c.Request, cookieName)
	if token == "" {
		return nil
	}
	identity, err := verifier.Verify(token)
	if err != nil {
		logger.Log.Debugf("token rejected path=%s: %v", c.Request.URL.Path, err)
		return nil
	}
	c.Set(ctxKeyIdentity, &identity)
	return &identity
}
