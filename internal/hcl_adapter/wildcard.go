package hcl_adapter

import (
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/bmatcuk/doublestar"
	"github.com/specialistvlad/predictgo/internal/pathid"
)

type wildcardMatch struct {
	include      string
	recursiveDir string
}

func hasWildcard(spec string) bool {
	return strings.ContainsAny(spec, "*?")
}

// expandWildcard globs spec relative to dir, returning files only, sorted.
// Relative specs yield relative includes so that item identities read the
// way they were written.
func expandWildcard(dir, spec string) ([]wildcardMatch, error) {
	normalized := pathid.NormalizeSeparators(spec)
	relative := !filepath.IsAbs(normalized)
	pattern := pathid.Canonicalize(normalized, dir)

	matches, err := doublestar.Glob(pattern)
	if err != nil {
		return nil, err
	}
	sort.Strings(matches)

	base := wildcardBase(pattern)
	recursive := strings.Contains(normalized, "**")

	out := make([]wildcardMatch, 0, len(matches))
	for _, m := range matches {
		info, err := os.Stat(m)
		if err != nil || info.IsDir() {
			continue
		}
		wm := wildcardMatch{include: m}
		if relative {
			if rel, err := filepath.Rel(dir, m); err == nil {
				wm.include = rel
			}
		}
		if recursive {
			if rel, err := filepath.Rel(base, filepath.Dir(m)); err == nil && rel != "." {
				wm.recursiveDir = pathid.EnsureTrailingSeparator(rel)
			}
		}
		out = append(out, wm)
	}
	return out, nil
}

// wildcardBase returns the longest leading directory of pattern free of
// wildcard characters.
func wildcardBase(pattern string) string {
	segments := strings.Split(pattern, string(filepath.Separator))
	n := 0
	for n < len(segments) && !hasWildcard(segments[n]) {
		n++
	}
	base := strings.Join(segments[:n], string(filepath.Separator))
	if base == "" {
		return string(filepath.Separator)
	}
	return base
}
