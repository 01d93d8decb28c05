package prediction

// Bundle is the immutable result of collection for one project. Every slice
// is sorted by canonical path key so equal inputs always serialize equally.
type Bundle struct {
	InputFiles        []Item `json:"inputFiles" yaml:"inputFiles"`
	InputDirectories  []Item `json:"inputDirectories" yaml:"inputDirectories"`
	OutputFiles       []Item `json:"outputFiles" yaml:"outputFiles"`
	OutputDirectories []Item `json:"outputDirectories" yaml:"outputDirectories"`
}

// Len returns the total number of predictions across all categories.
func (b *Bundle) Len() int {
	if b == nil {
		return 0
	}
	return len(b.InputFiles) + len(b.InputDirectories) + len(b.OutputFiles) + len(b.OutputDirectories)
}

// Items returns the slice for a category.
func (b *Bundle) Items(c Category) []Item {
	switch c {
	case InputFile:
		return b.InputFiles
	case InputDirectory:
		return b.InputDirectories
	case OutputFile:
		return b.OutputFiles
	case OutputDirectory:
		return b.OutputDirectories
	default:
		return nil
	}
}

// GraphBundle maps a canonical project path to that project's Bundle.
type GraphBundle map[string]*Bundle
