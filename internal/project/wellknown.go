package project

import (
	"path/filepath"
	"strings"

	"github.com/specialistvlad/predictgo/internal/pathid"
)

// Reserved property names defined for every project.
const (
	PropProjectFullPath  = "ProjectFullPath"
	PropProjectDirectory = "ProjectDirectory"
	PropProjectFile      = "ProjectFile"
	PropProjectName      = "ProjectName"
	PropProjectExtension = "ProjectExtension"

	PropThisFile          = "ThisFile"
	PropThisFileName      = "ThisFileName"
	PropThisFileExtension = "ThisFileExtension"
	PropThisFileDirectory = "ThisFileDirectory"
	PropThisFileFullPath  = "ThisFileFullPath"
)

// ThisFileProperties returns the this-file property family for file.
func ThisFileProperties(file string) map[string]string {
	base := filepath.Base(file)
	ext := filepath.Ext(base)
	return map[string]string{
		PropThisFile:          base,
		PropThisFileName:      strings.TrimSuffix(base, ext),
		PropThisFileExtension: ext,
		PropThisFileDirectory: pathid.EnsureTrailingSeparator(filepath.Dir(file)),
		PropThisFileFullPath:  file,
	}
}

func projectProperties(fullPath string) map[string]string {
	base := filepath.Base(fullPath)
	ext := filepath.Ext(base)
	props := map[string]string{
		PropProjectFullPath:  fullPath,
		PropProjectDirectory: filepath.Dir(fullPath),
		PropProjectFile:      base,
		PropProjectName:      strings.TrimSuffix(base, ext),
		PropProjectExtension: ext,
	}
	for k, v := range ThisFileProperties(fullPath) {
		props[k] = v
	}
	return props
}
