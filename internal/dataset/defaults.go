package dataset

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"sort"
	"strconv"
	"strings"
)

// RankedComp is one curated comp entry: a hand-authored rank and its ordered
// class list.
type RankedComp struct {
	Rank    int      `json:"rank"`
	Classes []string `json:"classes"`
}

// CompTable maps era -> box size -> curated comps sorted by rank ascending.
type CompTable map[string]map[int][]RankedComp

func (t CompTable) add(era string, boxSize int, entry RankedComp) {
	if t[era] == nil {
		t[era] = make(map[int][]RankedComp)
	}
	t[era][boxSize] = append(t[era][boxSize], entry)
}

func (t CompTable) sortByRank() {
	for _, bySize := range t {
		for _, entries := range bySize {
			sort.SliceStable(entries, func(i, j int) bool {
				return entries[i].Rank < entries[j].Rank
			})
		}
	}
}

// For returns the curated comps for (era, boxSize), rank order, or nil.
func (t CompTable) For(era string, boxSize int) []RankedComp {
	return t[era][boxSize]
}

// splitClasses splits a pipe-separated class list, dropping empties.
func splitClasses(raw string) []string {
	var out []string
	for _, part := range strings.Split(raw, "|") {
		if c := strings.TrimSpace(part); c != "" {
			out = append(out, c)
		}
	}
	return out
}

// LoadDefaultComps reads synergies_and_defaults.csv (columns: era, box_size,
// rank, classes). A class count that does not match box_size is a load
// error; curated defaults are the safety net and must be well formed.
func LoadDefaultComps(path string) (CompTable, error) {
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("missing defaults file: %s", path)
		}
		return nil, fmt.Errorf("opening defaults file: %w", err)
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
	for _, required := range []string{"era", "box_size", "rank", "classes"} {
		if _, ok := col[required]; !ok {
			missing = append(missing, required)
		}
	}
	if len(missing) > 0 {
		sort.Strings(missing)
		return nil, fmt.Errorf("%s missing columns: %s (expected: era,box_size,rank,classes)", path, strings.Join(missing, ", "))
	}

	table := make(CompTable)
	for lineNo := 2; ; lineNo++ {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("%s line %d: %w", path, lineNo, err)
		}

		era := strings.TrimSpace(record[col["era"]])
		boxSize, err := strconv.Atoi(strings.TrimSpace(record[col["box_size"]]))
		if err != nil {
			return nil, fmt.Errorf("%s line %d: box_size must be an integer", path, lineNo)
		}
		rank, err := strconv.Atoi(strings.TrimSpace(record[col["rank"]]))
		if err != nil {
			return nil, fmt.Errorf("%s line %d: rank must be an integer", path, lineNo)
		}
		classesRaw := strings.TrimSpace(record[col["classes"]])
		classes := splitClasses(classesRaw)
		if len(classes) != boxSize {
			return nil, fmt.Errorf("%s line %d: classes count (%d) must equal box_size (%d), got: %q",
				path, lineNo, len(classes), boxSize, classesRaw)
		}

		table.add(era, boxSize, RankedComp{Rank: rank, Classes: classes})
	}

	table.sortByRank()
	return table, nil
}
