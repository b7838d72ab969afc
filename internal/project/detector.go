// Package project locates the data directory for an invocation that did not
// specify one, climbing the directory tree the way editor tooling finds a
// project root.
package project

import (
	"os"
	"path/filepath"
)

// markers are the files whose presence identifies a directory as a
// boxplanner data directory.
var markers = []string{
	"class_ratings.csv",
	"rulesets.json",
	"rulesets.yaml",
	"rulesets.yml",
}

// IsDataDir reports whether path looks like a boxplanner data directory.
func IsDataDir(path string) bool {
	for _, marker := range markers {
		if _, err := os.Stat(filepath.Join(path, marker)); err == nil {
			return true
		}
	}
	return false
}

// FindDataDir resolves the data directory for a relative name like "data":
// it checks startPath/name, then climbs toward the filesystem root checking
// each ancestor, so the tool works from anywhere inside a project checkout.
// When nothing matches it returns the original joined path; the loader's
// missing-file error names it.
func FindDataDir(startPath, name string) string {
	absPath, err := filepath.Abs(startPath)
	if err != nil {
		return filepath.Join(startPath, name)
	}

	currentDir := absPath
	for {
		candidate := filepath.Join(currentDir, name)
		if IsDataDir(candidate) {
			return candidate
		}

		parent := filepath.Dir(currentDir)
		if parent == currentDir {
			break
		}
		currentDir = parent
	}

	return filepath.Join(absPath, name)
}
