// Package ratings holds the immutable per-era class rating tables and the
// availability rules layered on top of them by server rulesets.
package ratings

import "sort"

// Ruleset describes a server-rule variant. Additions force-include classes
// for an era even when no rating row exists; removals force-exclude them.
// WeightModifiers is part of the data schema contract but is not consulted
// by scoring.
type Ruleset struct {
	Label              string
	AddClassesByEra    map[string][]string
	RemoveClassesByEra map[string][]string
	WeightModifiers    map[string]float64
}

// Store is an immutable era -> class -> category -> score mapping.
// It is safe to share a Store across concurrent requests; all accessors are
// read-only.
type Store struct {
	byEra map[string]map[string]map[string]int
}

// NewStore copies the given table into a fresh Store. The input may be
// mutated freely by the caller afterwards.
func NewStore(table map[string]map[string]map[string]int) *Store {
	byEra := make(map[string]map[string]map[string]int, len(table))
	for era, classes := range table {
		byEra[era] = make(map[string]map[string]int, len(classes))
		for class, scores := range classes {
			row := make(map[string]int, len(scores))
			for cat, v := range scores {
				row[cat] = v
			}
			byEra[era][class] = row
		}
	}
	return &Store{byEra: byEra}
}

// Score returns the rating for (era, class, category), or 0 when any part of
// the tuple is unknown. Absence of data means "no demonstrated aptitude",
// never an error.
func (s *Store) Score(era, class, category string) int {
	return s.byEra[era][class][category]
}

// Eras returns all eras with at least one rated class, sorted.
func (s *Store) Eras() []string {
	out := make([]string, 0, len(s.byEra))
	for era := range s.byEra {
		out = append(out, era)
	}
	sort.Strings(out)
	return out
}

// HasEra reports whether any rating rows exist for the era.
func (s *Store) HasEra(era string) bool {
	return len(s.byEra[era]) > 0
}

// RatedClasses returns the classes with a rating row for the era, sorted.
func (s *Store) RatedClasses(era string) []string {
	classes := s.byEra[era]
	out := make([]string, 0, len(classes))
	for class := range classes {
		out = append(out, class)
	}
	sort.Strings(out)
	return out
}

// AvailableClasses resolves the playable class list for (era, ruleset):
// classes rated in the era, plus the ruleset's additions for that era, minus
// its removals. The result is sorted and deterministic.
func (s *Store) AvailableClasses(era string, rs Ruleset) []string {
	final := make(map[string]bool, len(s.byEra[era]))
	for class := range s.byEra[era] {
		final[class] = true
	}
	for _, class := range rs.AddClassesByEra[era] {
		final[class] = true
	}
	for _, class := range rs.RemoveClassesByEra[era] {
		delete(final, class)
	}
	out := make([]string, 0, len(final))
	for class := range final {
		out = append(out, class)
	}
	sort.Strings(out)
	return out
}
