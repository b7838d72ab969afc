package recommend

import "github.com/dotcommander/boxplanner/internal/types"

// slotPreferenceFor maps a must-include class to the ordered slot types it
// should be injected into. The archetype checks cascade: the first matching
// capability decides.
func slotPreferenceFor(class string) []string {
	switch {
	case types.Has(class, types.CapTank):
		return []string{types.SlotTank}
	case types.Has(class, types.CapHealer):
		return []string{types.SlotHealer}
	case types.Has(class, types.CapPetTank):
		return []string{types.SlotPetTank, types.SlotPetPartner, types.SlotDPS}
	case types.Has(class, types.CapSlow):
		return []string{types.SlotSlow, types.SlotCC, types.SlotDPS}
	case types.Has(class, types.CapCC):
		return []string{types.SlotCC, types.SlotDPS}
	case types.Has(class, types.CapCharm):
		return []string{types.SlotCharmTank, types.SlotCC, types.SlotDPS}
	case types.Has(class, types.CapKite):
		return []string{
			types.SlotKiterSwarm, types.SlotKiterFearSnare, types.SlotKiter,
			types.SlotKitePartnerSwarm, types.SlotKitePartnerFearSnare, types.SlotDPS,
		}
	}
	// DPS/flex classes (Wizard, Monk, Rogue, ...): dps first, then the 2-box
	// tank seat, then partner and utility slots.
	return []string{
		types.SlotDPS, types.SlotTank,
		types.SlotPetPartner, types.SlotCharmPartner,
		types.SlotKitePartnerSwarm, types.SlotKitePartnerFearSnare, types.SlotKitePartner,
		types.SlotSupport, types.SlotSlow, types.SlotCC, types.SlotHealer,
	}
}

// bestSlotIndexForMustInclude picks the slot whose pool a required class is
// appended to so it can appear in some comp. Slots in excludeIndices (the
// hardcore-locked core) are skipped.
func bestSlotIndexForMustInclude(class string, templateSlots []string, excludeIndices map[int]bool) int {
	for _, slotType := range slotPreferenceFor(class) {
		for i, s := range templateSlots {
			if s == slotType && !excludeIndices[i] {
				return i
			}
		}
	}
	for i := range templateSlots {
		if !excludeIndices[i] {
			return i
		}
	}
	return 0
}
