// Package discovery locates the reference data files under a data
// directory. Patterns are doublestar globs so data can live flat or in
// nested per-server packs.
package discovery

import (
	"os"
	"path/filepath"
	"sort"

	"github.com/bmatcuk/doublestar/v4"
)

// FileType identifies what a discovered data file contains.
type FileType string

const (
	FileTypeRatings    FileType = "ratings"
	FileTypeDefaults   FileType = "defaults"
	FileTypeRulesets   FileType = "rulesets"
	FileTypeMetaBuilds FileType = "meta_builds"
)

// File is one discovered data file.
type File struct {
	Path string // absolute path
	Type FileType
}

// TypePattern maps a glob pattern to a FileType for type detection.
// Patterns are matched in order; first match wins.
type TypePattern struct {
	Pattern  string
	FileType FileType
}

// typePatterns defines the canonical patterns for detecting data file
// types. Order matters: more specific names come first.
var typePatterns = []TypePattern{
	{"**/class_ratings.csv", FileTypeRatings},
	{"**/synergies_and_defaults.csv", FileTypeDefaults},
	{"**/rulesets.json", FileTypeRulesets},
	{"**/rulesets.yaml", FileTypeRulesets},
	{"**/rulesets.yml", FileTypeRulesets},
	{"**/meta_builds*.csv", FileTypeMetaBuilds},
}

// fileTypePatterns is the registry of discovery globs per file type.
// Adding a new data file kind only needs an entry here.
var fileTypePatterns = []struct {
	Type     FileType
	Patterns []string
}{
	{FileTypeRatings, []string{"class_ratings.csv", "**/class_ratings.csv"}},
	{FileTypeDefaults, []string{"synergies_and_defaults.csv", "**/synergies_and_defaults.csv"}},
	{FileTypeRulesets, []string{"rulesets.json", "rulesets.yaml", "rulesets.yml", "**/rulesets.json", "**/rulesets.yaml", "**/rulesets.yml"}},
	{FileTypeMetaBuilds, []string{"meta_builds*.csv", "**/meta_builds*.csv"}},
}

// DetectFileType determines the data file type from a path relative to the
// data root, or "" when the file is not a known data file.
func DetectFileType(relPath string) FileType {
	relPath = filepath.ToSlash(relPath)
	for _, tp := range typePatterns {
		matched, err := doublestar.Match(tp.Pattern, relPath)
		if err == nil && matched {
			return tp.FileType
		}
	}
	return ""
}

// DataDiscovery finds data files under a root directory.
type DataDiscovery struct {
	rootPath string
}

// NewDataDiscovery creates a DataDiscovery rooted at rootPath.
func NewDataDiscovery(rootPath string) *DataDiscovery {
	return &DataDiscovery{rootPath: rootPath}
}

// DiscoverFiles returns every recognized data file under the root, sorted
// by path, without duplicates. A missing root yields an empty result, not
// an error; the loader reports missing required files itself.
func (d *DataDiscovery) DiscoverFiles() ([]File, error) {
	if _, err := os.Stat(d.rootPath); err != nil {
		return nil, nil
	}

	seen := make(map[string]FileType)
	fsys := os.DirFS(d.rootPath)
	for _, entry := range fileTypePatterns {
		for _, pattern := range entry.Patterns {
			matches, err := doublestar.Glob(fsys, pattern)
			if err != nil {
				return nil, err
			}
			for _, match := range matches {
				if _, ok := seen[match]; !ok {
					seen[match] = entry.Type
				}
			}
		}
	}

	paths := make([]string, 0, len(seen))
	for path := range seen {
		paths = append(paths, path)
	}
	sort.Strings(paths)

	files := make([]File, 0, len(paths))
	for _, path := range paths {
		abs := filepath.Join(d.rootPath, filepath.FromSlash(path))
		files = append(files, File{Path: abs, Type: seen[path]})
	}
	return files, nil
}

// First returns the first discovered file of the given type.
func (d *DataDiscovery) First(t FileType) (string, bool) {
	files, err := d.DiscoverFiles()
	if err != nil {
		return "", false
	}
	for _, f := range files {
		if f.Type == t {
			return f.Path, true
		}
	}
	return "", false
}
