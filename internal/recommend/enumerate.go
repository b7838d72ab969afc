package recommend

import (
	"sort"
	"strings"

	"github.com/dotcommander/boxplanner/internal/scoring"
	"github.com/dotcommander/boxplanner/internal/types"
)

// hardcoreCore maps the mandatory hardcore support slots to their named
// classes: Cleric heals, Shaman slows, Bard handles crowd control.
var hardcoreCore = []struct {
	slot  string
	class string
}{
	{types.SlotHealer, types.ClassCleric},
	{types.SlotSlow, types.ClassShaman},
	{types.SlotCC, types.ClassBard},
}

// duplicateAllowed checks the duplicate-class exception: duplicates are only
// legal when the template has 2+ dps slots, never for the Enchanter, and
// under manual boxing only for casters or a bow Ranger (Luclin/PoP).
func duplicateAllowed(comp []string, era, boxingMode string, allowDuplicateDPS bool) bool {
	counts := make(map[string]int, len(comp))
	unique := true
	for _, class := range comp {
		counts[class]++
		if counts[class] > 1 {
			unique = false
		}
	}
	if unique {
		return true
	}
	if !allowDuplicateDPS {
		return false
	}
	if counts[types.ClassEnchanter] > 1 {
		return false
	}
	if boxingMode == types.BoxingManual {
		for class, n := range counts {
			if n <= 1 {
				continue
			}
			bowRanger := class == types.ClassRanger && (era == types.EraLuclin || era == types.EraPoP)
			if types.Has(class, types.CapMelee) && !bowRanger {
				return false
			}
		}
	}
	return true
}

// GuaranteedClasses returns the classes certain to occupy a slot in every
// comp of this template: the hardcore support core and, when charm is
// required, the charm-tank Enchanter. Constraints these classes satisfy must
// not be forced into a slot a second time.
func GuaranteedClasses(templateSlots, available []string, charm, hardcore bool) map[string]bool {
	availableSet := toSet(available)
	guaranteed := make(map[string]bool)
	if hardcore {
		for _, core := range hardcoreCore {
			if availableSet[core.class] {
				guaranteed[core.class] = true
			}
		}
	}
	if charm {
		for _, slot := range templateSlots {
			if slot == types.SlotCharmTank {
				if availableSet[types.ClassEnchanter] {
					guaranteed[types.ClassEnchanter] = true
				}
				break
			}
		}
	}
	return guaranteed
}

// GenerateScoredRecommendations is the primary engine entry point: build the
// per-slot pools (constraint forcing and hardcore locks applied), inject
// must-include classes, enumerate the cartesian product lazily with
// deduplication and hard filtering, score the survivors and return the top
// req.Limit results, best first.
func GenerateScoredRecommendations(req Request) []Scored {
	availableSet := toSet(req.Available)
	mustInclude := toSet(req.MustInclude)
	exclude := toSet(req.Exclude)

	alreadySatisfied := GuaranteedClasses(req.TemplateSlots, req.Available, req.Constraints.Charm, req.Hardcore)

	forced := ForceConstraintsIntoSlots(req.TemplateSlots, req.Available, req.Constraints, alreadySatisfied, req.Hardcore)

	// Hardcore: the named support classes are locked in, non-negotiable.
	// These take precedence over constraint forcing.
	hardcoreForced := make(map[int][]string)
	if req.Hardcore {
		for _, core := range hardcoreCore {
			if !availableSet[core.class] {
				continue
			}
			for i, slot := range req.TemplateSlots {
				if slot == core.slot {
					hardcoreForced[i] = []string{core.class}
					break
				}
			}
		}
	}

	slotPools := make([][]string, len(req.TemplateSlots))
	for i, slot := range req.TemplateSlots {
		switch {
		case hardcoreForced[i] != nil:
			slotPools[i] = hardcoreForced[i]
		case forced[i] != nil:
			slotPools[i] = forced[i]
		default:
			slotPools[i] = RoleCandidates(req.Ratings, req.Era, req.Available, slot, req.BoxingMode, req.Start, req.Constraints.Charm)
		}
	}

	// Must-include injection: a required class absent from every pool is
	// appended to the single best-fitting pool, skipping hardcore locks.
	hardcoreIndices := make(map[int]bool, len(hardcoreForced))
	for i := range hardcoreForced {
		hardcoreIndices[i] = true
	}
	for _, class := range sortedKeys(mustInclude) {
		if !availableSet[class] || exclude[class] {
			continue
		}
		found := false
		for _, pool := range slotPools {
			if contains(pool, class) {
				found = true
				break
			}
		}
		if found {
			continue
		}
		idx := bestSlotIndexForMustInclude(class, req.TemplateSlots, hardcoreIndices)
		if idx < len(slotPools) && !contains(slotPools[idx], class) {
			slotPools[idx] = append(append([]string{}, slotPools[idx]...), class)
		}
	}

	ctx := scoring.Context{
		Ratings:         req.Ratings,
		Era:             req.Era,
		BoxingMode:      req.BoxingMode,
		Start:           req.Start,
		RequireCharm:    req.Constraints.Charm,
		RequireRunSpeed: req.Constraints.RunSpeed,
		RequirePorts:    req.Constraints.Ports,
		Hardcore:        req.Hardcore,
	}

	allowDuplicateDPS := 0
	for _, slot := range req.TemplateSlots {
		if slot == types.SlotDPS {
			allowDuplicateDPS++
		}
	}

	var results []Scored
	seen := make(map[string]bool)

	// Odometer walk over the slot pools; each candidate is filtered and
	// deduplicated before scoring so the full product is never materialized.
	for _, pool := range slotPools {
		if len(pool) == 0 {
			return nil
		}
	}
	indices := make([]int, len(slotPools))
	comp := make([]string, len(slotPools))
	for {
		for i, pool := range slotPools {
			comp[i] = pool[indices[i]]
		}

		if duplicateAllowed(comp, req.Era, req.BoxingMode, allowDuplicateDPS >= 2) {
			key := strings.Join(comp, "|")
			if !seen[key] {
				seen[key] = true
				if MatchesFilters(comp, mustInclude, exclude) && req.Constraints.MatchedBy(comp) {
					picked := make([]string, len(comp))
					copy(picked, comp)
					score, detail := scoring.ScoreComp(ctx, picked, req.TemplateSlots)
					scored := Scored{Score: score, Comp: picked}
					if req.Explain {
						scored.Detail = detail
					}
					results = append(results, scored)
				}
			}
		}

		// Advance the odometer.
		pos := len(indices) - 1
		for pos >= 0 {
			indices[pos]++
			if indices[pos] < len(slotPools[pos]) {
				break
			}
			indices[pos] = 0
			pos--
		}
		if pos < 0 {
			break
		}
	}

	sort.SliceStable(results, func(i, j int) bool {
		return results[i].Score > results[j].Score
	})
	if req.Limit < 0 {
		req.Limit = 0
	}
	if len(results) > req.Limit {
		results = results[:req.Limit]
	}
	return results
}
