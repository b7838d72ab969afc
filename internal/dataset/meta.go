package dataset

import (
	"bufio"
	"os"
	"strconv"
	"strings"
)

// LoadMetaBuilds reads a meta_builds.csv file (era,box_size,rank,classes per
// line, `#` comments allowed). Meta builds are optional flavor data, so a
// missing file yields an empty table and malformed rows are skipped rather
// than failing the load.
func LoadMetaBuilds(path string) (CompTable, error) {
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return CompTable{}, nil
		}
		return nil, err
	}
	defer f.Close()

	table := make(CompTable)
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		parts := strings.SplitN(line, ",", 4)
		if len(parts) < 4 {
			continue
		}
		era := strings.TrimSpace(parts[0])
		boxSize, err := strconv.Atoi(strings.TrimSpace(parts[1]))
		if err != nil {
			continue
		}
		rank, err := strconv.Atoi(strings.TrimSpace(parts[2]))
		if err != nil {
			continue
		}
		classes := splitClasses(strings.TrimSpace(parts[3]))
		if len(classes) != boxSize {
			continue
		}
		table.add(era, boxSize, RankedComp{Rank: rank, Classes: classes})
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}

	table.sortByRank()
	return table, nil
}
