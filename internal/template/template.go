// Package template selects the ordered slot list for a recommendation
// request. Slot names are requirements, not suggestions; slot order matters
// only for display.
package template

import "github.com/dotcommander/boxplanner/internal/types"

// standard templates by box size.
var standard = map[int][]string{
	2: {types.SlotTank, types.SlotHealer},
	3: {types.SlotTank, types.SlotHealer, types.SlotDPS},
	4: {types.SlotTank, types.SlotHealer, types.SlotSlow, types.SlotDPS},
	5: {types.SlotTank, types.SlotHealer, types.SlotSlow, types.SlotDPS, types.SlotDPS},
	6: {types.SlotTank, types.SlotHealer, types.SlotSlow, types.SlotCC, types.SlotDPS, types.SlotDPS},
}

// leveling6Box swaps the slow slot for a third dps slot; sustained grinding
// wants kill speed over named-fight control.
var leveling6Box = []string{
	types.SlotTank, types.SlotHealer, types.SlotCC,
	types.SlotDPS, types.SlotDPS, types.SlotDPS,
}

// hardcore templates (solo_raid focus, 4+ boxes): tank, Cleric, Shaman and
// Bard are mandatory; extra boxes add dps slots.
var hardcore = map[int][]string{
	4: {types.SlotTank, types.SlotHealer, types.SlotSlow, types.SlotCC},
	5: {types.SlotTank, types.SlotHealer, types.SlotSlow, types.SlotCC, types.SlotDPS},
	6: {types.SlotTank, types.SlotHealer, types.SlotSlow, types.SlotCC, types.SlotDPS, types.SlotDPS},
}

// ForFocus returns the template for a box size and group focus.
func ForFocus(boxSize int, focus string) []string {
	if focus == types.FocusSoloRaid && boxSize >= 4 {
		if slots, ok := hardcore[boxSize]; ok {
			return clone(slots)
		}
	}
	if boxSize != 6 {
		return clone(standard[boxSize])
	}
	if focus == types.FocusLeveling {
		return clone(leveling6Box)
	}
	return clone(standard[6])
}

// ForRequest resolves the full template selection: box size and focus first,
// then the 2-box mode and kite style overrides, then the 3-box charm shape.
func ForRequest(boxSize int, focus, twoBoxMode, kiteStyle string, requireCharm bool) []string {
	slots := ForFocus(boxSize, focus)

	if boxSize == 2 {
		switch twoBoxMode {
		case types.TwoBoxPetTank:
			return []string{types.SlotPetTank, types.SlotPetPartner}
		case types.TwoBoxEnchCharmTank:
			return []string{types.SlotCharmTank, types.SlotCharmPartner}
		case types.TwoBoxKiting:
			if kiteStyle == types.KiteStyleFearSnare {
				return []string{types.SlotKiterFearSnare, types.SlotKitePartnerFearSnare}
			}
			return []string{types.SlotKiterSwarm, types.SlotKitePartnerSwarm}
		}
		return slots
	}

	// 3-box charm group: the Enchanter tanks via charm pet, healer is
	// mandatory, the third slot stays flexible.
	if boxSize == 3 && requireCharm {
		return []string{types.SlotCharmTank, types.SlotHealer, types.SlotDPS}
	}

	return slots
}

func clone(slots []string) []string {
	out := make([]string, len(slots))
	copy(out, slots)
	return out
}
