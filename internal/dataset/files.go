package dataset

import (
	"fmt"
	"path/filepath"

	"github.com/dotcommander/boxplanner/internal/discovery"
	"github.com/dotcommander/boxplanner/internal/ratings"
)

// Bundle is the full reference dataset loaded once per session and treated
// as read-only afterwards. A content change requires an explicit reload.
type Bundle struct {
	Ratings    *ratings.Store
	Defaults   CompTable
	Rulesets   map[string]ratings.Ruleset
	MetaBuilds CompTable
}

// RequiredFiles lists the data files a working installation must provide.
var RequiredFiles = []string{
	"class_ratings.csv",
	"synergies_and_defaults.csv",
	"rulesets.json",
}

// ListDataFiles reports FOUND/MISSING for each required data file under
// dataDir. Rulesets may be JSON or YAML; either counts.
func ListDataFiles(dataDir string) map[string]string {
	disc := discovery.NewDataDiscovery(dataDir)
	out := make(map[string]string, len(RequiredFiles))
	for _, name := range RequiredFiles {
		out[name] = "MISSING"
	}
	files, err := disc.DiscoverFiles()
	if err != nil {
		return out
	}
	for _, f := range files {
		switch f.Type {
		case discovery.FileTypeRatings:
			out["class_ratings.csv"] = "FOUND"
		case discovery.FileTypeDefaults:
			out["synergies_and_defaults.csv"] = "FOUND"
		case discovery.FileTypeRulesets:
			out["rulesets.json"] = "FOUND"
		}
	}
	return out
}

// Load discovers and loads the full dataset under dataDir. Ratings,
// defaults and rulesets are required; meta builds are optional.
func Load(dataDir string) (*Bundle, error) {
	disc := discovery.NewDataDiscovery(dataDir)

	ratingsPath, ok := disc.First(discovery.FileTypeRatings)
	if !ok {
		ratingsPath = filepath.Join(dataDir, "class_ratings.csv")
	}
	store, err := LoadClassRatings(ratingsPath)
	if err != nil {
		return nil, err
	}

	defaultsPath, ok := disc.First(discovery.FileTypeDefaults)
	if !ok {
		defaultsPath = filepath.Join(dataDir, "synergies_and_defaults.csv")
	}
	defaults, err := LoadDefaultComps(defaultsPath)
	if err != nil {
		return nil, err
	}

	rulesetsPath, ok := disc.First(discovery.FileTypeRulesets)
	if !ok {
		rulesetsPath = filepath.Join(dataDir, "rulesets.json")
	}
	rulesets, err := LoadRulesets(rulesetsPath)
	if err != nil {
		return nil, err
	}
	if len(rulesets) == 0 {
		return nil, fmt.Errorf("%s has no rulesets", rulesetsPath)
	}

	meta := CompTable{}
	if metaPath, ok := disc.First(discovery.FileTypeMetaBuilds); ok {
		meta, err = LoadMetaBuilds(metaPath)
		if err != nil {
			return nil, err
		}
	}

	return &Bundle{
		Ratings:    store,
		Defaults:   defaults,
		Rulesets:   rulesets,
		MetaBuilds: meta,
	}, nil
}
