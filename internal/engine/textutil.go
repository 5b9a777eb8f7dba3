package engine

import (
	"regexp"
	"strconv"
	"strings"
)

// UserAgentBot identifies our API calls.
const UserAgentBot = "GoScout/1.0"

var (
	emailRE = regexp.MustCompile(`[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}`)
	intRE   = regexp.MustCompile(`\d+`)
)

// FindEmail returns the first email address in s, or "".
func FindEmail(s string) string {
	return emailRE.FindString(s)
}

// ExtractInts returns every integer appearing in s, in order.
// Lenient by design: model responses range from strict CSV to prose.
func ExtractInts(s string) []int {
	var out []int
	for _, m := range intRE.FindAllString(s, -1) {
		n, err := strconv.Atoi(m)
		if err != nil {
			continue
		}
		out = append(out, n)
	}
	return out
}

// Truncate returns the first n bytes of s.
func Truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n]
}

// TruncateRunes caps s at limit runes. Safe for UTF-8 (Hangul, CJK, emoji).
func TruncateRunes(s string, limit int) string {
	if limit <= 0 {
		return ""
	}
	runes := []rune(s)
	if len(runes) <= limit {
		return s
	}
	return string(runes[:limit])
}

// IsNoneToken reports whether a model reply is an explicit "nothing found".
func IsNoneToken(s string) bool {
	return strings.EqualFold(strings.TrimSpace(s), "none")
}
