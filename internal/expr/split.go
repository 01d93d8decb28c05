package expr

import (
	"regexp"
	"strconv"
	"strings"
)

var escapeRe = regexp.MustCompile(`%[0-9A-Fa-f]{2}`)

// Split breaks an expanded list on ';', trims each value, drops empty ones
// and unescapes the rest.
func Split(s string) []string {
	if s == "" {
		return nil
	}
	parts := strings.Split(s, ";")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p == "" {
			continue
		}
		out = append(out, Unescape(p))
	}
	return out
}

// Unescape decodes `%XX` hex escapes.
func Unescape(s string) string {
	if !strings.Contains(s, "%") {
		return s
	}
	return escapeRe.ReplaceAllStringFunc(s, func(tok string) string {
		b, err := strconv.ParseUint(tok[1:], 16, 8)
		if err != nil {
			return tok
		}
		return string([]byte{byte(b)})
	})
}
