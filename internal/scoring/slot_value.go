package scoring

import "github.com/dotcommander/boxplanner/internal/types"

// SlotValue computes the desirability of a class occupying a specific slot,
// returning the value and the category weights that produced it. The comp
// and template are needed only for the secondary-healer override; passing
// nil for both scores the slot in isolation.
func SlotValue(ctx Context, class, slot string, comp, templateSlots []string) (float64, map[string]float64) {
	switch slot {
	case types.SlotKiterSwarm, types.SlotKiterFearSnare:
		slot = types.SlotKiter
	case types.SlotKitePartnerSwarm, types.SlotKitePartnerFearSnare:
		slot = types.SlotKitePartner
	}

	dps := float64(ctx.Ratings.Score(ctx.Era, class, types.CategoryDPS) - MeleePenalty(ctx.BoxingMode, class, ctx.Era))
	healing := float64(ctx.Ratings.Score(ctx.Era, class, types.CategoryHealing))
	tanking := float64(ctx.Ratings.Score(ctx.Era, class, types.CategoryTanking))
	petTanking := float64(ctx.Ratings.Score(ctx.Era, class, types.CategoryPetTanking))
	sustain := float64(ctx.Ratings.Score(ctx.Era, class, types.CategorySustain))
	kite := float64(ctx.Ratings.Score(ctx.Era, class, types.CategoryKite))
	charm := float64(ctx.Ratings.Score(ctx.Era, class, types.CategoryCharm))

	// Secondary healer: a healer-capable class outside the healer slot, with
	// a different class already covering the healer slot, scores full dps
	// plus a slice of its healing. Stacking a second healer shouldn't waste
	// its heals as if it were the primary.
	if comp != nil && templateSlots != nil && slot != types.SlotHealer && types.Has(class, types.CapHealer) {
		mainHealer := ""
		for i, s := range templateSlots {
			if s == types.SlotHealer && i < len(comp) {
				mainHealer = comp[i]
				break
			}
		}
		if mainHealer != "" && mainHealer != class {
			secHeal := healing * 0.15
			return dps + secHeal, map[string]float64{
				"dps":                     dps,
				"healing":                 healing,
				"healing_secondary_bonus": secHeal,
			}
		}
	}

	switch slot {
	case types.SlotTank:
		// 2-box tank: tanking, sustain and tank dps all matter.
		val := tanking*0.45 + sustain*0.30 + dps*0.25
		return val, map[string]float64{"tanking": tanking, "sustain": sustain, "dps": dps}

	case types.SlotPetTank:
		val := petTanking*1.00 + sustain*0.15
		return val, map[string]float64{"pet_tanking": petTanking, "sustain": sustain}

	case types.SlotKiter:
		val := kite*1.00 + sustain*0.25
		return val, map[string]float64{"kite": kite, "sustain": sustain}

	case types.SlotCharmTank:
		val := charm*1.00 + sustain*0.20
		return val, map[string]float64{"charm": charm, "sustain": sustain}

	case types.SlotHealer:
		// Sustain does not matter here; slow is handled by comp-level logic.
		val := healing * 1.00
		return val, map[string]float64{"healing": healing}

	case types.SlotKitePartner, types.SlotPetPartner, types.SlotCharmPartner:
		// Partner slots: charm and sustain don't matter, dps + healing only.
		val := healing*0.50 + dps*0.50
		return val, map[string]float64{"healing": healing, "dps": dps}

	case types.SlotSlow, types.SlotCC, types.SlotSupport:
		val := healing*0.35 + dps*0.35 + charm*0.20 + sustain*0.15
		return val, map[string]float64{"healing": healing, "dps": dps, "charm": charm, "sustain": sustain}
	}

	val := dps * 1.00
	return val, map[string]float64{"dps": dps}
}
