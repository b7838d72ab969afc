package dataset

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/goccy/go-json"
	"gopkg.in/yaml.v3"

	"github.com/dotcommander/boxplanner/internal/ratings"
	"github.com/dotcommander/boxplanner/internal/schema"
)

// rulesetDoc is the on-disk shape of one ruleset entry.
type rulesetDoc struct {
	Label              string              `json:"label" yaml:"label"`
	AddClassesByEra    map[string][]string `json:"add_classes_by_era" yaml:"add_classes_by_era"`
	RemoveClassesByEra map[string][]string `json:"remove_classes_by_era" yaml:"remove_classes_by_era"`
	WeightModifiers    map[string]float64  `json:"weight_modifiers" yaml:"weight_modifiers"`
}

// LoadRulesets reads a rulesets document (JSON or YAML by extension) into
// ruleset values keyed by ruleset id. Every entry is validated against the
// embedded CUE schema before decoding; the first schema violation fails the
// load.
func LoadRulesets(path string) (map[string]ratings.Ruleset, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("missing rulesets file: %s", path)
		}
		return nil, fmt.Errorf("reading rulesets file: %w", err)
	}

	isYAML := false
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		isYAML = true
	}

	// Decode twice: a generic map for schema validation, then the typed
	// document.
	var generic map[string]map[string]any
	var docs map[string]rulesetDoc
	if isYAML {
		if err := yaml.Unmarshal(raw, &generic); err != nil {
			return nil, fmt.Errorf("%s: %w", path, err)
		}
		if err := yaml.Unmarshal(raw, &docs); err != nil {
			return nil, fmt.Errorf("%s: %w", path, err)
		}
	} else {
		if err := json.Unmarshal(raw, &generic); err != nil {
			return nil, fmt.Errorf("%s: %w", path, err)
		}
		if err := json.Unmarshal(raw, &docs); err != nil {
			return nil, fmt.Errorf("%s: %w", path, err)
		}
	}
	if len(generic) == 0 {
		return nil, fmt.Errorf("%s must be a non-empty object of rulesets", path)
	}

	keys := make([]string, 0, len(generic))
	for key := range generic {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	validator := schema.NewValidator()
	for _, key := range keys {
		if errs := validator.ValidateRuleset(filepath.Base(path), key, generic[key]); len(errs) > 0 {
			return nil, errs[0]
		}
	}

	out := make(map[string]ratings.Ruleset, len(docs))
	for key, doc := range docs {
		out[key] = ratings.Ruleset{
			Label:              doc.Label,
			AddClassesByEra:    doc.AddClassesByEra,
			RemoveClassesByEra: doc.RemoveClassesByEra,
			WeightModifiers:    doc.WeightModifiers,
		}
	}
	return out, nil
}
