package auth

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestExtractBearerToken(t *testing.T) {
	testCases := []struct {
		name        string
		headerValue string
		wantToken   string
		wantErr     error
	}{
		{
			name:    "missing header",
			wantErr: ErrMissingHeader,
		},
		{
			name:        "invalid scheme",
			headerValue: "Basic abc",
			wantErr:     ErrInvalidFormat,
		},
		{
			name:        "missing token part",
			headerValue: "Bearer",
			wantErr:     ErrInvalidFormat,
		},
		{
			name:        "empty token",
			headerValue: "Bearer    ",
			wantErr:     ErrEmptyToken,
		},
		{
			name:        "valid bearer token",
			headerValue: "bearer token-123",
			wantToken:   "token-123",
		},
	}

	for _, testCase := range testCases {
		t.Run(testCase.name, func(t *testing.T) {
			token, err := ExtractBearerToken(newRequest(testCase.headerValue, ""))
			if !errors.Is(err, testCase.wantErr) {
				t.Fatalf("expected error %v, got %v", testCase.wantErr, err)
			}
			if token != testCase.wantToken {
				t.Fatalf("expected token %q, got %q", testCase.wantToken, token)
			}
		})
	}
}

func TestTokenFromRequest(t *testing.T) {
	testCases := []struct {
		name   string
		header string
		cookie string
		want   string
	}{
		{name: "nothing", want: ""},
		{name: "cookie only", cookie: "from-cookie", want: "from-cookie"},
		{name: "header only", header: "Bearer from-header", want: "from-header"},
		{name: "cookie wins", header: "Bearer from-header", cookie: "from-cookie", want: "from-cookie"},
		{name: "bad header", header: "Token abc", want: ""},
	}

	for _, testCase := range testCases {
		t.Run(testCase.name, func(t *testing.T) {
			got := TokenFromRequest(newRequest(testCase.header, testCase.cookie), "token")
			if got != testCase.want {
				t.Fatalf("expected %q, got %q", testCase.want, got)
			}
		})
	}
}

func newRequest(authorizationHeader, cookie string) *http.Request {
	request := httptest.NewRequest(http.MethodGet, "/", nil)
	if authorizationHeader != "" {
		request.Header.Set("Authorization", authorizationHeader)
	}
	if cookie != "" {
		request.AddCookie(&http.Cookie{Name: "token", Value: cookie})
	}
	return request
}
