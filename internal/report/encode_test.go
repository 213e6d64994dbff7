package report

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEncodePath(t *testing.T) {
	tests := map[string]string{
		"a.png":            "a.png",
		"a b/c#d.png":      "a%20b/c%23d.png",
		"dir/sub/x.png":    "dir/sub/x.png",
		"a+b&c=d?.png":     "a%2Bb%26c%3Dd%3F.png",
		"keep!(this)'*~-_": "keep!(this)'*~-_",
		"100%.png":         "100%25.png",
	}

	for in, want := range tests {
		assert.Equal(t, want, EncodePath(in), in)
	}
}

func TestEncodePath_NonASCII(t *testing.T) {
	assert.Equal(t, "%E6%97%A5%E6%9C%AC/%C3%A9.png", EncodePath("日本/é.png"))
}

func TestEncodePath_KeepsSegments(t *testing.T) {
	in := "a/%2F/b c"
	got := EncodePath(in)

	assert.Equal(t, "a/%252F/b%20c", got)
	assert.Equal(t, strings.Count(in, "/"), strings.Count(got, "/"))
}
