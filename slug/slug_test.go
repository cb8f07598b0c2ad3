package slug

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestMake(t *testing.T) {
	testCases := []struct {
		in   string
		want string
	}{
		{in: "Hello World", want: "hello-world"},
		{in: "  Love & Trust: 10 Signs!  ", want: "love-trust-10-signs"},
		{in: "already-a-slug", want: "already-a-slug"},
		{in: "Multiple   spaces---and__underscores", want: "multiple-spaces-and-underscores"},
		{in: "Café crème", want: "caf-cr-me"},
		{in: "!!!", want: ""},
		{in: "", want: ""},
	}

	for _, tc := range testCases {
		t.Run(tc.in, func(t *testing.T) {
			assert.Equal(t, tc.want, Make(tc.in))
		})
	}
}

func TestWithSuffix(t *testing.T) {
	ts := time.UnixMilli(1700000000123)
	assert.Equal(t, "hello-world-1700000000123", WithSuffix("hello-world", ts))
}
