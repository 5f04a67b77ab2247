package clean

import (
	"strings"
	"unicode"
)

// Normalize lowercases s, drops every rune outside [a-z0-9+# whitespace],
// and collapses whitespace runs to single spaces. "+" and "#" survive so
// tokens like "c++" and "c#" stay matchable. Any unicode whitespace counts
// as a separator, so thin spaces and vertical tabs split words instead of
// fusing them. Idempotent; empty in, empty out.
func Normalize(s string) string {
	if s == "" {
		return ""
	}
	s = strings.ToLower(s)

	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9', r == '+', r == '#':
			b.WriteRune(r)
		case unicode.IsSpace(r):
			b.WriteByte(' ')
		}
	}
	return strings.Join(strings.Fields(b.String()), " ")
}
