package hcl_adapter

import (
	"strings"

	"github.com/specialistvlad/predictgo/internal/expr"
	"github.com/specialistvlad/predictgo/internal/project"
)

// fileScope resolves the this-file property family against the file being
// evaluated and everything else against the project.
type fileScope struct {
	proj     *project.Project
	thisFile map[string]string
}

func newFileScope(proj *project.Project, file string) *fileScope {
	thisFile := make(map[string]string)
	for k, v := range project.ThisFileProperties(file) {
		thisFile[strings.ToLower(k)] = v
	}
	return &fileScope{proj: proj, thisFile: thisFile}
}

func (s *fileScope) Property(name string) (string, bool) {
	if v, ok := s.thisFile[strings.ToLower(name)]; ok {
		return v, true
	}
	return s.proj.Property(name)
}

func (s *fileScope) ItemsOf(itemType string) []expr.Item {
	return s.proj.ItemsOf(itemType)
}

// expandList expands properties and items and splits the result.
func (s *fileScope) expandList(value string) ([]string, error) {
	expanded, err := expr.Expand(value, s)
	if err != nil {
		return nil, err
	}
	return expr.Split(expanded), nil
}
