package project

import (
	"path/filepath"
	"strings"

	"github.com/specialistvlad/predictgo/internal/pathid"
)

// Item is one evaluated item: a value (usually a path) of some item type with
// its metadata.
type Item struct {
	ItemType     string
	Include      string
	DefiningFile string

	projectDir string
	metadata   map[string]string
}

// NewItem creates an item. Relative includes are interpreted against
// projectDir when well-known path metadata is requested.
func NewItem(itemType, include, projectDir, definingFile string, metadata map[string]string) *Item {
	md := make(map[string]string, len(metadata))
	for k, v := range metadata {
		md[strings.ToLower(k)] = v
	}
	return &Item{
		ItemType:     itemType,
		Include:      include,
		DefiningFile: definingFile,
		projectDir:   projectDir,
		metadata:     md,
	}
}

// FullPath returns the item's include anchored to the project directory.
func (i *Item) FullPath() string {
	return pathid.Canonicalize(i.Include, i.projectDir)
}

// Metadata returns a custom or well-known metadata value.
func (i *Item) Metadata(name string) string {
	include := pathid.NormalizeSeparators(i.Include)
	base := filepath.Base(include)
	ext := filepath.Ext(base)

	switch strings.ToLower(name) {
	case "identity":
		return i.Include
	case "fullpath":
		return i.FullPath()
	case "rootdir":
		return pathid.EnsureTrailingSeparator(rootOf(i.FullPath()))
	case "filename":
		return strings.TrimSuffix(base, ext)
	case "extension":
		return ext
	case "relativedir":
		dir := filepath.Dir(include)
		if dir == "." {
			return ""
		}
		return pathid.EnsureTrailingSeparator(dir)
	case "directory":
		full := i.FullPath()
		dir := strings.TrimPrefix(filepath.Dir(full), rootOf(full))
		dir = strings.TrimPrefix(dir, string(filepath.Separator))
		return pathid.EnsureTrailingSeparator(dir)
	case "definingprojectfullpath":
		return i.DefiningFile
	case "definingprojectdirectory":
		return pathid.EnsureTrailingSeparator(filepath.Dir(i.DefiningFile))
	}
	return i.metadata[strings.ToLower(name)]
}

// HasMetadata reports whether a custom metadata field is set.
func (i *Item) HasMetadata(name string) bool {
	_, ok := i.metadata[strings.ToLower(name)]
	return ok
}

func rootOf(path string) string {
	vol := filepath.VolumeName(path)
	return vol + string(filepath.Separator)
}
