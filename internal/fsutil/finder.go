// Package fsutil provides file system utility functions.
package fsutil

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// FindFilesBySuffix recursively searches root for files whose name ends with
// suffix, skipping hidden directories. Paths are returned sorted.
func FindFilesBySuffix(root, suffix string) ([]string, error) {
	if suffix == "" {
		panic("suffix must not be empty")
	}

	var files []string
	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			if path != root && strings.HasPrefix(d.Name(), ".") {
				return filepath.SkipDir
			}
			return nil
		}
		if strings.HasSuffix(d.Name(), suffix) {
			files = append(files, path)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	sort.Strings(files)
	return files, nil
}

// ExpandPaths replaces every directory in paths with the files below it
// whose name ends with suffix. Other paths pass through untouched, so a
// missing file is reported by whoever opens it.
func ExpandPaths(paths []string, suffix string) ([]string, error) {
	var out []string
	for _, p := range paths {
		info, err := os.Stat(p)
		if err != nil || !info.IsDir() {
			out = append(out, p)
			continue
		}
		found, err := FindFilesBySuffix(p, suffix)
		if err != nil {
			return nil, fmt.Errorf("error searching %s: %w", p, err)
		}
		if len(found) == 0 {
			return nil, fmt.Errorf("no *%s files found in %s", suffix, p)
		}
		out = append(out, found...)
	}
	return out, nil
}
