package recommend

import "github.com/dotcommander/boxplanner/internal/types"

// flexSlotIndices returns the ordered slot indices eligible for constraint
// forcing. The tank slot is never flexed; under hardcore focus only dps
// slots are. The charm_tank slot is filled by the Enchanter when charm is
// required, so other constraints are never forced into it either.
func flexSlotIndices(templateSlots []string, hardcore bool) []int {
	if hardcore {
		// Hardcore: tank, healer, slow and cc are core and must not be
		// replaced; only dps slots can absorb a constraint.
		var indices []int
		for i, s := range templateSlots {
			if s == types.SlotDPS {
				indices = append(indices, i)
			}
		}
		return indices
	}

	// 3-box charm: the Enchanter tanks; the dps slot flexes first, then the
	// healer (e.g. satisfy run speed with a Druid in slot 2).
	if len(templateSlots) == 3 &&
		templateSlots[0] == types.SlotCharmTank &&
		templateSlots[1] == types.SlotHealer &&
		templateSlots[2] == types.SlotDPS {
		return []int{2, 1}
	}

	order := []string{
		types.SlotHealer, types.SlotSlow, types.SlotCC, types.SlotDPS,
		types.SlotPetPartner, types.SlotCharmPartner,
		types.SlotKitePartnerSwarm, types.SlotKitePartnerFearSnare, types.SlotKitePartner,
		types.SlotSupport,
	}
	inOrder := make(map[string]bool, len(order))
	for _, s := range order {
		inOrder[s] = true
	}
	nonFlex := map[string]bool{types.SlotTank: true, types.SlotCharmTank: true}

	var indices []int
	for _, name := range order {
		for i, s := range templateSlots {
			if s == name {
				indices = append(indices, i)
			}
		}
	}
	for i, s := range templateSlots {
		if !inOrder[s] && !nonFlex[s] {
			indices = append(indices, i)
		}
	}
	return indices
}

// buildRequirementSets builds one qualifying-class set per active constraint
// that is not already satisfied by a guaranteed class. Ports and run speed
// are deliberately never forced into a slot — they are pass/fail filtered
// later — so forcing never drops a Cleric for a Druid or a tank for a porter.
func buildRequirementSets(availableSet map[string]bool, cons Constraints, alreadySatisfied map[string]bool) []map[string]bool {
	intersectAvailable := func(capability string) map[string]bool {
		set := make(map[string]bool)
		for _, class := range types.WithCapability(capability) {
			if availableSet[class] {
				set[class] = true
			}
		}
		return set
	}
	satisfiedBy := func(capability string) bool {
		for class := range alreadySatisfied {
			if types.Has(class, capability) {
				return true
			}
		}
		return false
	}

	var reqs []map[string]bool
	if cons.Charm && !satisfiedBy(types.CapCharm) {
		reqs = append(reqs, intersectAvailable(types.CapCharm))
	}
	if cons.PetHeavy && !satisfiedBy(types.CapPetDPS) {
		reqs = append(reqs, intersectAvailable(types.CapPetDPS))
	}
	if cons.Kiting && !satisfiedBy(types.CapKite) {
		reqs = append(reqs, intersectAvailable(types.CapKite))
	}

	out := reqs[:0]
	for _, r := range reqs {
		if len(r) > 0 {
			out = append(out, r)
		}
	}
	return out
}

// combinations returns all k-element index combinations of [0, n).
func combinations(n, k int) [][]int {
	var out [][]int
	idxs := make([]int, k)
	var walk func(start, depth int)
	walk = func(start, depth int) {
		if depth == k {
			combo := make([]int, k)
			copy(combo, idxs)
			out = append(out, combo)
			return
		}
		for i := start; i < n; i++ {
			idxs[depth] = i
			walk(i+1, depth+1)
		}
	}
	if k >= 1 && k <= n {
		walk(0, 0)
	}
	return out
}

// bestIntersectionGroup greedily picks the combination of requirement sets
// to merge into one forced slot: cover as many requirements as possible,
// and among equal coverage prefer the tighter intersection. A heuristic,
// not an exact set cover; fine while constraints stay few.
func bestIntersectionGroup(reqs []map[string]bool) (map[string]bool, []int) {
	var bestPool map[string]bool
	var bestIdxs []int
	n := len(reqs)

	for _, k := range []int{3, 2, 1} {
		for _, idxs := range combinations(n, k) {
			inter := make(map[string]bool, len(reqs[idxs[0]]))
			for class := range reqs[idxs[0]] {
				inter[class] = true
			}
			for _, j := range idxs[1:] {
				for class := range inter {
					if !reqs[j][class] {
						delete(inter, class)
					}
				}
			}
			if len(inter) == 0 {
				continue
			}
			if len(idxs) > len(bestIdxs) {
				bestPool = inter
				bestIdxs = idxs
			} else if len(idxs) == len(bestIdxs) && len(bestIdxs) > 0 && len(inter) < len(bestPool) {
				bestPool = inter
				bestIdxs = idxs
			}
		}
		if len(bestIdxs) > 0 {
			return bestPool, bestIdxs
		}
	}
	return bestPool, bestIdxs
}

// ForceConstraintsIntoSlots decides which template slots must be restricted
// to a constraint-satisfying class subset. It returns slot index -> allowed
// classes (sorted); unforced slots keep their role-pool candidates.
// alreadySatisfied lists classes guaranteed present in every comp (hardcore
// core, the 3-box charm tank) so their constraints are not forced twice.
func ForceConstraintsIntoSlots(templateSlots, available []string, cons Constraints, alreadySatisfied map[string]bool, hardcore bool) map[int][]string {
	availableSet := toSet(available)
	if alreadySatisfied == nil {
		alreadySatisfied = map[string]bool{}
	}
	reqs := buildRequirementSets(availableSet, cons, alreadySatisfied)

	forced := make(map[int][]string)
	if len(reqs) == 0 {
		return forced
	}

	slotOrder := flexSlotIndices(templateSlots, hardcore)
	if len(slotOrder) == 0 {
		return forced
	}

	cursor := 0
	for len(reqs) > 0 && cursor < len(slotOrder) {
		pool, idxs := bestIntersectionGroup(reqs)
		if len(idxs) == 0 || len(pool) == 0 {
			break
		}

		forced[slotOrder[cursor]] = sortedKeys(pool)
		cursor++

		for i := len(idxs) - 1; i >= 0; i-- {
			reqs = append(reqs[:idxs[i]], reqs[idxs[i]+1:]...)
		}
	}
	return forced
}
