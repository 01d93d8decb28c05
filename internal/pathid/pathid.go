package pathid

import (
	"hash/fnv"
	"path/filepath"
	"strings"

	"golang.org/x/text/cases"
)

// Canonicalize normalizes separators and anchors relative paths to baseDir.
// An empty path is returned unchanged.
func Canonicalize(path, baseDir string) string {
	if path == "" {
		return path
	}

	p := NormalizeSeparators(path)
	if !filepath.IsAbs(p) {
		p = filepath.Join(NormalizeSeparators(baseDir), p)
		if !filepath.IsAbs(p) {
			// baseDir itself was relative; anchoring it lexically is the best
			// we can do without consulting the working directory.
			p = string(filepath.Separator) + p
		}
	}
	return filepath.Clean(p)
}

// NormalizeSeparators rewrites both '/' and '\' to the host separator.
func NormalizeSeparators(path string) string {
	if filepath.Separator == '/' {
		return strings.ReplaceAll(path, `\`, "/")
	}
	return strings.ReplaceAll(path, "/", string(filepath.Separator))
}

// EnsureTrailingSeparator appends the host separator unless already present.
func EnsureTrailingSeparator(path string) string {
	if path == "" || strings.HasSuffix(path, string(filepath.Separator)) {
		return path
	}
	return path + string(filepath.Separator)
}

// HasTrailingSeparator reports whether path ends in '/' or '\'.
func HasTrailingSeparator(path string) bool {
	return strings.HasSuffix(path, "/") || strings.HasSuffix(path, `\`)
}

// Comparer compares canonical paths. The zero value is case-insensitive.
type Comparer struct {
	CaseSensitive bool
}

// Default is the case-insensitive comparer used unless configured otherwise.
var Default = Comparer{}

// Key returns the map key for an already canonical path.
func (c Comparer) Key(canonical string) string {
	if c.CaseSensitive {
		return canonical
	}
	// A Caser is stateful and must not be shared across goroutines.
	return cases.Fold().String(canonical)
}

// Equal reports whether a and b name the same path once both are
// canonicalized against baseDir.
func (c Comparer) Equal(a, b, baseDir string) bool {
	return c.Key(Canonicalize(a, baseDir)) == c.Key(Canonicalize(b, baseDir))
}

// Hash returns a stable hash consistent with Equal.
func (c Comparer) Hash(path, baseDir string) uint64 {
	h := fnv.New64a()
	_, _ = h.Write([]byte(c.Key(Canonicalize(path, baseDir))))
	return h.Sum64()
}
