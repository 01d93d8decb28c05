package prediction

import (
	"slices"

	"github.com/specialistvlad/predictgo/internal/pathid"
)

// Category identifies one of the four independent prediction stores.
type Category int

const (
	InputFile Category = iota
	InputDirectory
	OutputFile
	OutputDirectory
)

// String returns the human-readable category name.
func (c Category) String() string {
	switch c {
	case InputFile:
		return "input file"
	case InputDirectory:
		return "input directory"
	case OutputFile:
		return "output file"
	case OutputDirectory:
		return "output directory"
	default:
		return "unknown"
	}
}

// Item is a single predicted path and the predictors that produced it.
// PredictedBy is sorted and free of duplicates.
type Item struct {
	Path        string   `json:"path" yaml:"path"`
	PredictedBy []string `json:"predictedBy" yaml:"predictedBy"`
}

// Equal reports whether both items name the same path under c and were
// produced by the same set of predictors.
func (i Item) Equal(other Item, c pathid.Comparer) bool {
	if c.Key(i.Path) != c.Key(other.Path) {
		return false
	}
	return slices.Equal(sortedUnique(i.PredictedBy), sortedUnique(other.PredictedBy))
}

func sortedUnique(names []string) []string {
	out := slices.Clone(names)
	slices.Sort(out)
	return slices.Compact(out)
}

// entry is the mutable form of an Item held inside a category store.
type entry struct {
	path        string
	attribution map[string]struct{}
}

func (e *entry) snapshot() Item {
	names := make([]string, 0, len(e.attribution))
	for name := range e.attribution {
		names = append(names, name)
	}
	slices.Sort(names)
	return Item{Path: e.path, PredictedBy: names}
}
