package gate_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"true-feelings/auth"
	"true-feelings/gate"
)

func newGate(t *testing.T) (*gate.Gate, *auth.JWTManager) {
	t.Helper()
	jwtManager, err := auth.NewJWTManager("gate-secret", "true-feelings", time.Hour)
	require.NoError(t, err)
	return gate.New([]string{"/dashboard", "/admin/"}, jwtManager), jwtManager
}

func TestDecideAllowsUnprotectedPaths(t *testing.T) {
	g, jwtManager := newGate(t)
	valid, err := jwtManager.Sign("editor", auth.RoleAdmin)
	require.NoError(t, err)

	paths := []string{"/", "/blog/hello", "/api/posts", "/login", "/administrator", "/dashboards", "/blog/admin"}
	for _, path := range paths {
		for _, token := range []string{"", "garbage", valid} {
			assert.Equal(t, gate.Allow, g.Decide(path, token), "path=%s token=%q", path, token)
		}
	}
}

func TestDecideProtectedPaths(t *testing.T) {
	g, jwtManager := newGate(t)
	valid, err := jwtManager.Sign("editor", auth.RoleAdmin)
	require.NoError(t, err)

	other, err := auth.NewJWTManager("other-secret", "true-feelings", time.Hour)
	require.NoError(t, err)
	forged, err := other.Sign("editor", auth.RoleAdmin)
	require.NoError(t, err)

	expiredManager, err := auth.NewJWTManager("gate-secret", "true-feelings", time.Nanosecond)
	require.NoError(t, err)
	expired, err := expiredManager.Sign("editor", auth.RoleAdmin)
	require.NoError(t, err)
	time.Sleep(1100 * time.Millisecond)

	testCases := []struct {
		name  string
		path  string
		token string
		want  gate.Decision
	}{
		{name: "no token", path: "/dashboard", token: "", want: gate.RedirectToLogin},
		{name: "malformed token", path: "/admin", token: "abc.def", want: gate.RedirectToLogin},
		{name: "wrong signature", path: "/admin/posts/new", token: forged, want: gate.RedirectToLogin},
		{name: "expired", path: "/dashboard/stats", token: expired, want: gate.RedirectToLogin},
		{name: "valid root", path: "/admin", token: valid, want: gate.Allow},
		{name: "valid nested", path: "/dashboard/posts/1", token: valid, want: gate.Allow},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, g.Decide(tc.path, tc.token))
		})
	}
}

func TestCheckReturnsIdentity(t *testing.T) {
	g, jwtManager := newGate(t)
	valid, err := jwtManager.Sign("editor", auth.RoleAdmin)
	require.NoError(t, err)

	decision, identity := g.Check("/admin", valid)
	assert.Equal(t, gate.Allow, decision)
	require.NotNil(t, identity)
	assert.Equal(t, "editor", identity.Subject)

	decision, identity = g.Check("/", valid)
	assert.Equal(t, gate.Allow, decision)
	assert.Nil(t, identity)
}

func TestProtectsNormalizesPrefixes(t *testing.T) {
	g := gate.New([]string{" admin ", "", "/dashboard/"}, nil)
	assert.True(t, g.Protects("/admin"))
	assert.True(t, g.Protects("/dashboard"))
	assert.False(t, g.Protects("/"))
}

func TestDecisionString(t *testing.T) {
	assert.Equal(t, "allow", gate.Allow.String())
	assert.Equal(t, "redirect_to_login", gate.RedirectToLogin.String())
}
