package report

import (
	"net/url"
	"strings"
)

// uriComponentKeep are the characters encodeURIComponent leaves untouched
// in addition to ASCII letters and digits.
const uriComponentKeep = "-_.!~*'()"

// EncodePath percent-encodes every slash separated segment of p the way
// browsers' encodeURIComponent does and joins them back with "/".
func EncodePath(p string) string {
	segments := strings.Split(p, "/")
	for i, s := range segments {
		segments[i] = encodeURIComponent(s)
	}

	return strings.Join(segments, "/")
}

func encodeURIComponent(s string) string {
	escaped := url.QueryEscape(s)

	var b strings.Builder

	b.Grow(len(escaped))

	for i := 0; i < len(escaped); i++ {
		c := escaped[i]

		switch {
		case c == '+':
			b.WriteString("%20")
		case c == '%' && i+2 < len(escaped) && keepsUnescaped(escaped[i+1:i+3]):
			b.WriteByte(unhex(escaped[i+1])<<4 | unhex(escaped[i+2]))
			i += 2
		default:
			b.WriteByte(c)
		}
	}

	return b.String()
}

func keepsUnescaped(hex string) bool {
	c := unhex(hex[0])<<4 | unhex(hex[1])
	return strings.IndexByte(uriComponentKeep, c) >= 0
}

func unhex(c byte) byte {
	switch {
	case '0' <= c && c <= '9':
		return c - '0'
	case 'a' <= c && c <= 'f':
		return c - 'a' + 10
	case 'A' <= c && c <= 'F':
		return c - 'A' + 10
	}

	return 0
}
