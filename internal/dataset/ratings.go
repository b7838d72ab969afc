// Package dataset loads the reference data the engine runs on: class
// ratings, curated default comps, server rulesets and meta builds. Loaders
// fail fast with errors naming the offending file, line and field; the
// engine never sees malformed reference data.
package dataset

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"sort"
	"strconv"
	"strings"

	"github.com/dotcommander/boxplanner/internal/ratings"
	"github.com/dotcommander/boxplanner/internal/types"
)

// LoadClassRatings reads a class_ratings.csv file (columns: era, class, one
// per rating category) into an immutable rating store. Every row must carry
// all categories with scores in [0, 100].
func LoadClassRatings(path string) (*ratings.Store, error) {
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("missing class ratings file: %s", path)
		}
		return nil, fmt.Errorf("opening class ratings file: %w", err)
	}
	defer f.Close()

	reader := csv.NewReader(f)
	header, err := reader.Read()
	if err != nil {
		return nil, fmt.Errorf("%s has no header row", path)
	}

	col := make(map[string]int, len(header))
	for i, name := range header {
		col[strings.TrimSpace(name)] = i
	}

	var missing []string
	for _, required := range append([]string{"era", "class"}, types.Categories...) {
		if _, ok := col[required]; !ok {
			missing = append(missing, required)
		}
	}
	if len(missing) > 0 {
		sort.Strings(missing)
		return nil, fmt.Errorf("%s missing columns: %s", path, strings.Join(missing, ", "))
	}

	table := make(map[string]map[string]map[string]int)
	for lineNo := 2; ; lineNo++ {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("%s line %d: %w", path, lineNo, err)
		}
		era := strings.TrimSpace(record[col["era"]])
		class := strings.TrimSpace(record[col["class"]])
		if era == "" || class == "" {
			return nil, fmt.Errorf("%s line %d: era/class cannot be blank", path, lineNo)
		}

		scores := make(map[string]int, len(types.Categories))
		for _, cat := range types.Categories {
			raw := strings.TrimSpace(record[col[cat]])
			val, err := strconv.Atoi(raw)
			if err != nil {
				return nil, fmt.Errorf("%s line %d: %s must be an integer, got %q", path, lineNo, cat, raw)
			}
			if val < 0 || val > 100 {
				return nil, fmt.Errorf("%s line %d: %s must be 0-100, got %d", path, lineNo, cat, val)
			}
			scores[cat] = val
		}

		if table[era] == nil {
			table[era] = make(map[string]map[string]int)
		}
		table[era][class] = scores
	}

	return ratings.NewStore(table), nil
}
