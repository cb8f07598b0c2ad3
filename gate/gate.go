// Package gate decides whether a request to a protected page may proceed.
package gate

import (
	"strings"

	"true-feelings/auth"
)

// Decision is the outcome of Gate.Decide.
type Decision int

const (
	Allow Decision = iota
	RedirectToLogin
)

func (d Decision) String() string {
	if d == RedirectToLogin {
		return "redirect_to_login"
	}
	return "allow"
}

// Verifier checks a session token and returns the identity it carries.
type Verifier interface {
	Verify(token string) (auth.Identity, error)
}

// Gate protects a fixed list of path prefixes.
type Gate struct {
	prefixes []string
	verifier Verifier
}

func New(prefixes []string, verifier Verifier) *Gate {
	cleaned := make([]string, 0, len(prefixes))
	for _, p := range prefixes {
		p = strings.TrimRight(strings.TrimSpace(p), "/")
		if p == "" {
			continue
		}
		if !strings.HasPrefix(p, "/") {
			p = "/" + p
		}
		cleaned = append(cleaned, p)
	}
	return &Gate{prefixes: cleaned, verifier: verifier}
}

// Protects reports whether path lies under a protected prefix. A prefix
// matches the exact path or any path continuing with "/".
func (g *Gate) Protects(path string) bool {
	for _, p := range g.prefixes {
		if path == p || strings.HasPrefix(path, p+"/") {
			return true
		}
	}
	return false
}

// Decide returns Allow for unprotected paths. For protected paths a missing
// token or one that fails verification redirects; expiry and malformation
// are treated alike.
func (g *Gate) Decide(path, token string) Decision {
	d, _ := g.Check(path, token)
	return d
}

// Check is Decide plus the verified identity when a protected path is allowed.
func (g *Gate) Check(path, token string) (Decision, *auth.Identity) {
	if !g.Protects(path) {
		return Allow, nil
	}
	if token == "" {
		return RedirectToLogin, nil
	}
	identity, err := g.verifier.Verify(token)
	if err != nil {
		return RedirectToLogin, nil
	}
	return Allow, &identity
}
