package expr

import (
	"errors"
	"fmt"
	"regexp"
	"strings"
)

// ErrUnsupported is returned for syntax outside the supported subset.
var ErrUnsupported = errors.New("unsupported expression syntax")

// Item is the view of an item the expander needs.
type Item interface {
	// Metadata returns the value of a metadata field, including well-known
	// fields such as Identity, FullPath, Filename and Extension. Unknown
	// fields yield "".
	Metadata(name string) string
}

// Scope resolves properties and items during expansion.
type Scope interface {
	Property(name string) (string, bool)
	ItemsOf(itemType string) []Item
}

var (
	identRe    = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_\-]*$`)
	metadataRe = regexp.MustCompile(`%\(\s*(?:([A-Za-z_][A-Za-z0-9_\-]*)\s*\.\s*)?([A-Za-z_][A-Za-z0-9_\-]*)\s*\)`)
)

// Expand expands properties and item references in s. The result is still
// escaped; use Split to break it into unescaped values.
func Expand(s string, scope Scope) (string, error) {
	return expand(s, scope, true)
}

// ExpandProperties expands only `$(...)` references, leaving `@(...)` and
// `%(...)` untouched.
func ExpandProperties(s string, scope Scope) (string, error) {
	return expand(s, scope, false)
}

func expand(s string, scope Scope, withItems bool) (string, error) {
	if !strings.ContainsAny(s, "$@") {
		return s, nil
	}

	var sb strings.Builder
	for i := 0; i < len(s); {
		if i+1 < len(s) && s[i+1] == '(' && (s[i] == '$' || (withItems && s[i] == '@')) {
			end := MatchParen(s, i+1)
			if end < 0 {
				return "", fmt.Errorf("unterminated reference at offset %d in %q", i, s)
			}
			body := s[i+2 : end]
			var (
				val string
				err error
			)
			if s[i] == '$' {
				val, err = expandProperty(body, scope)
			} else {
				val, err = expandItems(body, scope)
			}
			if err != nil {
				return "", err
			}
			sb.WriteString(val)
			i = end + 1
			continue
		}
		sb.WriteByte(s[i])
		i++
	}
	return sb.String(), nil
}

func expandProperty(body string, scope Scope) (string, error) {
	name := strings.TrimSpace(body)
	if !identRe.MatchString(name) {
		return "", fmt.Errorf("property function $(%s): %w", body, ErrUnsupported)
	}
	val, _ := scope.Property(name)
	return val, nil
}

// expandItems handles `Type`, `Type, 'sep'`, `Type->'transform'` and
// `Type->'transform', 'sep'`.
func expandItems(body string, scope Scope) (string, error) {
	rest := strings.TrimSpace(body)
	n := 0
	for n < len(rest) && isIdentByte(rest[n], n == 0) {
		// `->` starts a transform, not the rest of a hyphenated name.
		if strings.HasPrefix(rest[n:], "->") {
			break
		}
		n++
	}
	itemType := rest[:n]
	if itemType == "" {
		return "", fmt.Errorf("item list @(%s): missing item type: %w", body, ErrUnsupported)
	}
	rest = strings.TrimSpace(rest[n:])

	var (
		transform    string
		hasTransform bool
		separator    = ";"
	)
	if strings.HasPrefix(rest, "->") {
		rest = strings.TrimSpace(rest[2:])
		t, remaining, ok := cutQuoted(rest)
		if !ok {
			return "", fmt.Errorf("item function @(%s): %w", body, ErrUnsupported)
		}
		transform, hasTransform = t, true
		rest = strings.TrimSpace(remaining)
	}
	if strings.HasPrefix(rest, ",") {
		sep, remaining, ok := cutQuoted(strings.TrimSpace(rest[1:]))
		if !ok || strings.TrimSpace(remaining) != "" {
			return "", fmt.Errorf("item separator @(%s): %w", body, ErrUnsupported)
		}
		separator = sep
		rest = ""
	}
	if rest != "" {
		return "", fmt.Errorf("item list @(%s): %w", body, ErrUnsupported)
	}

	if hasTransform {
		var err error
		if transform, err = ExpandProperties(transform, scope); err != nil {
			return "", err
		}
	}

	items := scope.ItemsOf(itemType)
	values := make([]string, 0, len(items))
	for _, item := range items {
		if !hasTransform {
			values = append(values, item.Metadata("Identity"))
			continue
		}
		values = append(values, applyTransform(transform, itemType, item))
	}
	return strings.Join(values, separator), nil
}

// applyTransform substitutes metadata references for one item. References
// qualified with a different item type are left untouched.
func applyTransform(transform, itemType string, item Item) string {
	return metadataRe.ReplaceAllStringFunc(transform, func(tok string) string {
		m := metadataRe.FindStringSubmatch(tok)
		if m[1] != "" && !strings.EqualFold(m[1], itemType) {
			return tok
		}
		return item.Metadata(m[2])
	})
}

func isIdentByte(b byte, first bool) bool {
	switch {
	case b == '_', b >= 'a' && b <= 'z', b >= 'A' && b <= 'Z':
		return true
	case !first && (b == '-' || b >= '0' && b <= '9'):
		return true
	}
	return false
}

// cutQuoted reads a single-quoted string at the start of s.
func cutQuoted(s string) (quoted, rest string, ok bool) {
	if !strings.HasPrefix(s, "'") {
		return "", s, false
	}
	end := strings.IndexByte(s[1:], '\'')
	if end < 0 {
		return "", s, false
	}
	return s[1 : end+1], s[end+2:], true
}

// MatchParen returns the index of the parenthesis closing the one at open,
// skipping parentheses inside single-quoted strings, or -1.
func MatchParen(s string, open int) int {
	depth := 0
	inQuote := false
	for i := open; i < len(s); i++ {
		switch s[i] {
		case '\'':
			inQuote = !inQuote
		case '(':
			if !inQuote {
				depth++
			}
		case ')':
			if !inQuote {
				depth--
				if depth == 0 {
					return i
				}
			}
		}
	}
	return -1
}

// MetadataPattern matches `%(Name)` and `%(Type.Name)` tokens. Group 1 is the
// optional item type, group 2 the metadata name.
func MetadataPattern() *regexp.Regexp {
	return metadataRe
}
