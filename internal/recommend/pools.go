package recommend

import (
	"sort"

	"github.com/dotcommander/boxplanner/internal/ratings"
	"github.com/dotcommander/boxplanner/internal/scoring"
	"github.com/dotcommander/boxplanner/internal/types"
)

// manualPartnerAllowed rejects tank and melee-DPS classes from 2-box partner
// pools under manual boxing; they need too much hands-on play to pair by hand.
func manualPartnerAllowed(class string) bool {
	if types.Has(class, types.CapTank) {
		return false
	}
	if types.Has(class, types.CapMelee) {
		return false
	}
	return true
}

type scoredClass struct {
	score int
	class string
}

// rankDesc sorts by score descending; ties keep the incoming (alphabetical)
// order so results stay deterministic.
func rankDesc(scored []scoredClass) {
	sort.SliceStable(scored, func(i, j int) bool {
		return scored[i].score > scored[j].score
	})
}

func takeClasses(scored []scoredClass, n int) []string {
	rankDesc(scored)
	if len(scored) > n {
		scored = scored[:n]
	}
	out := make([]string, len(scored))
	for i, sc := range scored {
		out[i] = sc.class
	}
	return out
}

// RoleCandidates produces the ranked candidate shortlist for one semantic
// slot, most preferred first. Pool sizes are capped to keep the downstream
// cartesian product bounded.
func RoleCandidates(store *ratings.Store, era string, available []string, role, boxingMode, start string, requireCharm bool) []string {
	topBy := func(category string, n int) []string {
		scored := make([]scoredClass, 0, len(available))
		for _, class := range available {
			base := store.Score(era, class, category)
			base += scoring.StartConditionBonus(start, class)
			if category == types.CategoryDPS {
				base -= scoring.MeleePenalty(boxingMode, class, era)
				if requireCharm && class == types.ClassEnchanter {
					base += 30
				}
			}
			scored = append(scored, scoredClass{base, class})
		}
		return takeClasses(scored, n)
	}

	withCap := func(capability string) []string {
		var pool []string
		for _, class := range available {
			if types.Has(class, capability) {
				pool = append(pool, class)
			}
		}
		return pool
	}

	rankPoolBy := func(pool []string, category string, n int) []string {
		scored := make([]scoredClass, 0, len(pool))
		for _, class := range pool {
			scored = append(scored, scoredClass{store.Score(era, class, category), class})
		}
		return takeClasses(scored, n)
	}

	switch role {
	case types.SlotTank:
		return rankPoolBy(withCap(types.CapTank), types.CategoryTanking, 6)

	case types.SlotHealer:
		return rankPoolBy(withCap(types.CapHealer), types.CategoryHealing, 6)

	case types.SlotSlow:
		if pool := withCap(types.CapSlow); len(pool) > 0 {
			return pool
		}
		return topBy(types.CategorySolo, 5)

	case types.SlotCC:
		if pool := withCap(types.CapCC); len(pool) > 0 {
			return pool
		}
		return topBy(types.CategorySolo, 5)

	case types.SlotPetTank:
		return rankPoolBy(withCap(types.CapPetTank), types.CategoryPetTanking, 6)

	case types.SlotCharmTank:
		// The mode is meaningless without its defining class; an empty pool
		// propagates to zero comps by design.
		for _, class := range available {
			if class == types.ClassEnchanter {
				return []string{types.ClassEnchanter}
			}
		}
		return nil

	case types.SlotCharmPartner:
		// Partner is never the Enchanter; that seat is taken.
		scored := make([]scoredClass, 0, len(available))
		for _, class := range available {
			if class == types.ClassEnchanter {
				continue
			}
			if boxingMode == types.BoxingManual && !manualPartnerAllowed(class) {
				continue
			}
			dps := store.Score(era, class, types.CategoryDPS) - scoring.MeleePenalty(boxingMode, class, era)
			healing := store.Score(era, class, types.CategoryHealing)
			base := int(float64(dps)*0.85 + float64(healing)*0.15)
			if types.Has(class, types.CapSnare) {
				base += 15 // snare for charm-break safety
			}
			if types.Has(class, types.CapRunSpeed) {
				base += 6
			}
			if types.Has(class, types.CapPorter) {
				base += 5
			}
			base += int(float64(scoring.StartConditionBonus(start, class)) * 0.5)
			scored = append(scored, scoredClass{base, class})
		}
		return takeClasses(scored, 10)

	case types.SlotPetPartner:
		scored := make([]scoredClass, 0, len(available))
		for _, class := range available {
			if boxingMode == types.BoxingManual && !manualPartnerAllowed(class) {
				continue
			}
			dps := store.Score(era, class, types.CategoryDPS) - scoring.MeleePenalty(boxingMode, class, era)
			healing := store.Score(era, class, types.CategoryHealing)
			base := int(float64(dps)*0.85 + float64(healing)*0.15)
			if types.Has(class, types.CapSlow) {
				base += 12
			}
			if types.Has(class, types.CapPorter) {
				base += 5
			}
			if types.Has(class, types.CapRunSpeed) {
				base += 6
			}
			if types.Has(class, types.CapCC) {
				base += 5
			}
			if types.Has(class, types.CapPetDPS) {
				base += 8
			}
			base += int(float64(scoring.StartConditionBonus(start, class)) * 0.5)
			scored = append(scored, scoredClass{base, class})
		}
		return takeClasses(scored, 10)

	case types.SlotKiter:
		return rankPoolBy(withCap(types.CapKite), types.CategoryKite, 8)

	case types.SlotKiterSwarm:
		for _, class := range available {
			if class == types.ClassBard {
				return []string{types.ClassBard}
			}
		}
		return nil

	case types.SlotKiterFearSnare:
		// Every kiter except the Bard; swarm kiting is its own mode.
		var pool []string
		for _, class := range available {
			if types.Has(class, types.CapKite) && class != types.ClassBard {
				pool = append(pool, class)
			}
		}
		return rankPoolBy(pool, types.CategoryKite, 6)

	case types.SlotKitePartnerSwarm:
		scored := make([]scoredClass, 0, len(available))
		for _, class := range available {
			if boxingMode == types.BoxingManual && !manualPartnerAllowed(class) {
				continue
			}
			dps := store.Score(era, class, types.CategoryDPS) - scoring.MeleePenalty(boxingMode, class, era)
			healing := store.Score(era, class, types.CategoryHealing)
			base := int(float64(healing)*0.60 + float64(dps)*0.40)
			if types.Has(class, types.CapRunSpeed) {
				base += 10
			}
			if types.Has(class, types.CapSlow) {
				base += 6
			}
			if types.Has(class, types.CapPorter) {
				base += 4
			}
			base += int(float64(scoring.StartConditionBonus(start, class)) * 0.4)
			scored = append(scored, scoredClass{base, class})
		}
		return takeClasses(scored, 10)

	case types.SlotKitePartnerFearSnare:
		scored := make([]scoredClass, 0, len(available))
		for _, class := range available {
			if boxingMode == types.BoxingManual && !manualPartnerAllowed(class) {
				continue
			}
			dps := store.Score(era, class, types.CategoryDPS) - scoring.MeleePenalty(boxingMode, class, era)
			healing := store.Score(era, class, types.CategoryHealing)
			base := int(float64(dps)*0.85 + float64(healing)*0.15)
			if types.Has(class, types.CapRunSpeed) {
				base += 8
			}
			if types.Has(class, types.CapPorter) {
				base += 6
			}
			if types.Has(class, types.CapPetDPS) {
				base += 8
			}
			if types.Has(class, types.CapSlow) {
				base += 6
			}
			base += int(float64(scoring.StartConditionBonus(start, class)) * 0.4)
			scored = append(scored, scoredClass{base, class})
		}
		return takeClasses(scored, 10)

	case types.SlotSupport:
		scored := make([]scoredClass, 0, len(available))
		for _, class := range available {
			healing := float64(store.Score(era, class, types.CategoryHealing))
			sustain := float64(store.Score(era, class, types.CategorySustain))
			solo := float64(store.Score(era, class, types.CategorySolo))
			kite := float64(store.Score(era, class, types.CategoryKite))
			charm := float64(store.Score(era, class, types.CategoryCharm))

			base := int(healing*0.65 + sustain*0.45 + solo*0.35 + kite*0.20 + charm*0.15)
			if types.Has(class, types.CapSlow) {
				base += 14
			}
			if types.Has(class, types.CapCC) {
				base += 8
			}
			if types.Has(class, types.CapPorter) {
				base += 6
			}
			if types.Has(class, types.CapRunSpeed) {
				base += 6
			}
			base += int(float64(scoring.StartConditionBonus(start, class)) * 0.5)
			if requireCharm && class == types.ClassEnchanter {
				base += 18
			}
			if boxingMode == types.BoxingManual && types.Has(class, types.CapMelee) {
				base -= 6
			}
			scored = append(scored, scoredClass{base, class})
		}
		return takeClasses(scored, 10)

	case types.SlotDPS:
		// Manual boxing: melee is still considered, just 15 points lower so
		// casters rank above equivalent melee.
		return topBy(types.CategoryDPS, 10)
	}

	return topBy(types.CategorySolo, 6)
}
