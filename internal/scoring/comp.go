package scoring

import (
	"fmt"

	"github.com/dotcommander/boxplanner/internal/types"
)

// synergyBonus rewards class pairings that are known to carry groups well.
func synergyBonus(comp []string) int {
	bonus := 0
	present := make(map[string]bool, len(comp))
	for _, class := range comp {
		present[class] = true
	}

	// Shadowknight pulls and tanks, Shaman slows and buffs the pulls.
	if present[types.ClassShadowknight] && present[types.ClassShaman] {
		bonus += 18
	}

	meleeCount := types.CountWith(comp, types.CapMelee)
	casterCount := types.CountWith(comp, types.CapCaster)

	if present[types.ClassBard] && meleeCount >= 2 {
		bonus += 10
	}
	if present[types.ClassEnchanter] && casterCount >= 2 {
		bonus += 8
	}

	// Classic 6-box double-melee shape: Warrior or SK, Shaman, Bard, Cleric,
	// two or more melee DPS (Monk Monk being the archetype).
	if len(comp) == 6 {
		hasWarOrSK := present[types.ClassWarrior] || present[types.ClassShadowknight]
		hasCore := present[types.ClassShaman] && present[types.ClassBard] && present[types.ClassCleric]
		if hasWarOrSK && hasCore && meleeCount >= 2 {
			bonus += 28
		}
	}

	return bonus
}

// charmSynergyBonus applies when an Enchanter charm-tanks: caster and
// caster-pet classes keep full uptime while a charm pet holds aggro, melee
// cannot safely engage it.
func charmSynergyBonus(comp []string) int {
	hasEnch := false
	for _, class := range comp {
		if class == types.ClassEnchanter {
			hasEnch = true
			break
		}
	}
	if !hasEnch {
		return 0
	}
	bonus := 0
	for _, class := range comp {
		switch class {
		case types.ClassEnchanter:
		case types.ClassMagician, types.ClassNecromancer:
			bonus += 14
		case types.ClassBeastlord:
			bonus += 6
		case types.ClassWizard, types.ClassDruid:
			bonus += 8
		}
	}
	return bonus
}

// ScoreComp sums all per-slot values for the comp and applies the whole-comp
// bonuses and penalties, returning the truncated integer total and a full
// explanation of every contributing term.
func ScoreComp(ctx Context, comp, templateSlots []string) (int, *Explanation) {
	var (
		slotBreakdowns       []SlotBreakdown
		slotTotal            float64
		startBonusTotal      int
		charmBonusApplied    int
		hardcoreWarriorBonus int
		constraintMetBonus   int
	)

	bestTankMetric := types.CategoryTanking
	bestTankValue := 0.0
	bestHealValue := 0.0

	tankCount := types.CountWith(comp, types.CapTank)

	for i, slot := range templateSlots {
		class := comp[i]
		baseVal, breakdown := SlotValue(ctx, class, slot, comp, templateSlots)

		if ctx.RequireCharm && class == types.ClassEnchanter {
			baseVal += 30
			charmBonusApplied = 30
		}

		// Hardcore: Warrior defensive disciplines matter; flat bonus so a
		// Warrior tank at least matches a Shadowknight.
		if ctx.Hardcore && slot == types.SlotTank && class == types.ClassWarrior {
			hardcoreWarriorBonus = 18
		}

		sb := StartConditionBonus(ctx.Start, class)
		startBonusTotal += sb

		slotTotal += baseVal
		slotBreakdowns = append(slotBreakdowns, SlotBreakdown{
			Slot:       slot,
			Class:      class,
			Value:      baseVal,
			Breakdown:  breakdown,
			StartBonus: sb,
		})

		switch slot {
		case types.SlotHealer:
			if v := float64(ctx.Ratings.Score(ctx.Era, class, types.CategoryHealing)); v > bestHealValue {
				bestHealValue = v
			}
		case types.SlotTank:
			bestTankMetric = types.CategoryTanking
			if v := float64(ctx.Ratings.Score(ctx.Era, class, types.CategoryTanking)); v > bestTankValue {
				bestTankValue = v
			}
		case types.SlotPetTank:
			bestTankMetric = types.CategoryPetTanking
			if v := float64(ctx.Ratings.Score(ctx.Era, class, types.CategoryPetTanking)); v > bestTankValue {
				bestTankValue = v
			}
		}
	}

	synBonus := synergyBonus(comp)
	charmSynergy := charmSynergyBonus(comp)

	present := make(map[string]bool, len(comp))
	for _, class := range comp {
		present[class] = true
	}

	// Prefer comps that already satisfy the run-speed/ports constraints over
	// forcing a porter or Bard into a slot at the cost of a better class.
	if ctx.RequireRunSpeed && (present[types.ClassBard] || present[types.ClassShaman]) {
		constraintMetBonus += 28
	}
	if ctx.RequirePorts && types.AnyHas(comp, types.CapPorter) {
		constraintMetBonus += 15
	}

	// 6-box assisted/macroquest with gear money: the classic double-melee
	// comp should land on top when no Enchanter is along.
	classicDoubleMelee := 0
	if len(comp) == 6 &&
		(ctx.BoxingMode == types.BoxingAssisted || ctx.BoxingMode == types.BoxingMacroquest) &&
		ctx.Start != types.StartFresh {
		hasWarOrSK := present[types.ClassWarrior] || present[types.ClassShadowknight]
		hasCore := present[types.ClassShaman] && present[types.ClassBard] && present[types.ClassCleric]
		if hasWarOrSK && hasCore && types.CountWith(comp, types.CapMelee) >= 2 && !present[types.ClassEnchanter] {
			classicDoubleMelee = 22
		}
	}

	// Small charm groups want snare on a charm break before the pet eats the
	// group.
	charmSnareBonus := 0
	if (len(comp) == 2 || len(comp) == 3) &&
		(present[types.ClassEnchanter] || ctx.RequireCharm) &&
		types.AnyHas(comp, types.CapSnare) {
		charmSnareBonus = 18
	}

	slowLogic := SlowLogic{}
	hasSlow := types.AnyHas(comp, types.CapSlow)

	// Traditional 2-box only: slow is structurally required for a duo.
	if len(comp) == 2 && len(templateSlots) == 2 &&
		templateSlots[0] == types.SlotTank && templateSlots[1] == types.SlotHealer {
		slowLogic.Applied = true
		slowLogic.HasSlow = hasSlow
		if hasSlow {
			slowLogic.Delta = 20
			slowLogic.Note = "2-box tank+healer: slow is core, bonus applied."
		} else {
			slowLogic.Delta = -25
			slowLogic.Note = "2-box tank+healer: no slow, penalty applied."
		}
	}

	tankStackPenalty := 0
	if tankCount >= 2 {
		tankStackPenalty = -40 * (tankCount - 1)
	}

	total := int(slotTotal +
		float64(synBonus) +
		float64(charmSynergy) +
		float64(classicDoubleMelee) +
		float64(hardcoreWarriorBonus) +
		float64(constraintMetBonus) +
		float64(startBonusTotal)*0.4 +
		float64(slowLogic.Delta) +
		float64(tankStackPenalty) +
		float64(charmSnareBonus))

	var summary []string
	summary = append(summary, fmt.Sprintf("Tank metric used: %s | Best tank value: %d", bestTankMetric, int(bestTankValue)))
	for _, slot := range templateSlots {
		if slot == types.SlotHealer {
			summary = append(summary, fmt.Sprintf("Best healer value: %d", int(bestHealValue)))
			break
		}
	}
	summary = append(summary, fmt.Sprintf("Slot score sum: %.1f", slotTotal))
	if slowLogic.Applied {
		yesNo := "NO"
		if hasSlow {
			yesNo = "YES"
		}
		summary = append(summary, fmt.Sprintf("Slow check: %s (%+d)", yesNo, slowLogic.Delta))
	}
	if synBonus != 0 {
		summary = append(summary, fmt.Sprintf("Synergy bonus: +%d", synBonus))
	}
	if charmSynergy != 0 {
		summary = append(summary, fmt.Sprintf("Charm caster/pet synergy: +%d (casters and pet classes, no melee when charm tanks)", charmSynergy))
	}
	if startBonusTotal != 0 {
		summary = append(summary, fmt.Sprintf("Start bonuses: +%d (fresh start)", startBonusTotal))
	}
	if tankStackPenalty != 0 {
		summary = append(summary, fmt.Sprintf("Tank stacking penalty: %d", tankStackPenalty))
	}
	if charmSnareBonus != 0 {
		summary = append(summary, fmt.Sprintf("Charm + snare bonus: +%d (snare for charm-break safety)", charmSnareBonus))
	}
	if classicDoubleMelee != 0 {
		summary = append(summary, fmt.Sprintf("Classic 6-box double-melee bonus: +%d (Warrior/SK, Shaman, Bard, Cleric, 2x melee)", classicDoubleMelee))
	}
	if hardcoreWarriorBonus != 0 {
		summary = append(summary, fmt.Sprintf("Hardcore Warrior bonus: +%d (defensives)", hardcoreWarriorBonus))
	}
	if constraintMetBonus != 0 {
		summary = append(summary, fmt.Sprintf("Constraint already in group: +%d (run speed/ports from Bard/Shaman/porter)", constraintMetBonus))
	}

	detail := &Explanation{
		SummaryLines:            summary,
		Era:                     ctx.Era,
		BoxingMode:              ctx.BoxingMode,
		Start:                   ctx.Start,
		RequireCharm:            ctx.RequireCharm,
		TemplateSlots:           templateSlots,
		SlotBreakdowns:          slotBreakdowns,
		CharmBonusApplied:       charmBonusApplied,
		CharmSynergy:            charmSynergy,
		SynergyBonus:            synBonus,
		StartBonusTotal:         startBonusTotal,
		SlowLogic:               slowLogic,
		TankCount:               tankCount,
		TankStackPenalty:        tankStackPenalty,
		CharmSnareBonus:         charmSnareBonus,
		ClassicDoubleMeleeBonus: classicDoubleMelee,
		HardcoreWarriorBonus:    hardcoreWarriorBonus,
		ConstraintAlreadyMet:    constraintMetBonus,
		Total:                   total,
	}
	return total, detail
}
