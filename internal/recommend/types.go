// Package recommend builds per-slot candidate pools, forces hard constraints
// into flexible slots, enumerates candidate comps and ranks them. It is pure:
// every entry point is a function of its request with no ambient state.
package recommend

import (
	"sort"

	"github.com/dotcommander/boxplanner/internal/ratings"
	"github.com/dotcommander/boxplanner/internal/scoring"
	"github.com/dotcommander/boxplanner/internal/types"
)

// Constraints are the hard constraint flags a caller can set. Kiting is
// plumbed through the whole engine but no caller currently sets it.
type Constraints struct {
	Ports    bool
	RunSpeed bool
	Charm    bool
	PetHeavy bool
	Kiting   bool
}

// MatchedBy reports whether the comp satisfies every active constraint.
// Rejection is binary; there is no partial credit.
func (c Constraints) MatchedBy(comp []string) bool {
	if c.Ports && !types.AnyHas(comp, types.CapPorter) {
		return false
	}
	if c.RunSpeed && !types.AnyHas(comp, types.CapRunSpeed) {
		return false
	}
	if c.Charm && !contains(comp, types.ClassEnchanter) {
		return false
	}
	if c.PetHeavy && !types.AnyHas(comp, types.CapPetDPS) {
		return false
	}
	if c.Kiting && !types.AnyHas(comp, types.CapKite) {
		return false
	}
	return true
}

// Request carries everything one recommendation run needs. Limit caps the
// result count; a non-positive limit yields no results, so callers wanting a
// default must set one before the call.
type Request struct {
	Ratings       *ratings.Store
	Era           string
	Available     []string
	TemplateSlots []string
	BoxingMode    string
	Start         string
	MustInclude   []string
	Exclude       []string
	Constraints   Constraints
	Hardcore      bool
	Limit         int
	Explain       bool
}

// Scored is one ranked recommendation. Detail is nil unless the request
// asked for explanations.
type Scored struct {
	Score  int                  `json:"score"`
	Comp   []string             `json:"comp"`
	Detail *scoring.Explanation `json:"detail,omitempty"`
}

// MatchesFilters reports whether the comp avoids every excluded class and
// contains every must-include class.
func MatchesFilters(comp []string, mustInclude, exclude map[string]bool) bool {
	present := make(map[string]bool, len(comp))
	for _, class := range comp {
		if exclude[class] {
			return false
		}
		present[class] = true
	}
	for class := range mustInclude {
		if !present[class] {
			return false
		}
	}
	return true
}

func contains(comp []string, class string) bool {
	for _, c := range comp {
		if c == class {
			return true
		}
	}
	return false
}

func toSet(classes []string) map[string]bool {
	set := make(map[string]bool, len(classes))
	for _, c := range classes {
		set[c] = true
	}
	return set
}

func sortedKeys(set map[string]bool) []string {
	out := make([]string, 0, len(set))
	for k := range set {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}
