package scoring

import "github.com/dotcommander/boxplanner/internal/types"

// MeleePenalty is subtracted from a class's dps score under manual boxing:
// melee DPS needs constant repositioning and is harder to drive by hand, so
// it ranks below equivalent casters. Rangers in Luclin and PoP fight with a
// bow and are exempt.
func MeleePenalty(boxingMode, class, era string) int {
	if boxingMode != types.BoxingManual {
		return 0
	}
	if !types.Has(class, types.CapMelee) {
		return 0
	}
	if class == types.ClassRanger && (era == types.EraLuclin || era == types.EraPoP) {
		return 0
	}
	return 15
}

// StartConditionBonus favors self-sufficient classes on a fresh start: pet
// classes bring their own weapon, Monks punch fine without one. No bonus on
// an assisted start.
func StartConditionBonus(start, class string) int {
	if start != types.StartFresh {
		return 0
	}
	if types.Has(class, types.CapPetDPS) {
		return 10
	}
	if class == types.ClassMonk {
		return 6
	}
	return 0
}
