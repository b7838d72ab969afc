package cli

import "github.com/dotcommander/boxplanner/internal/types"

// EraOrder is the canonical progression-server era ordering used for display
// and flag help. Rating data may cover a subset.
var EraOrder = []string{
	types.EraClassic,
	types.EraLuclin,
	types.EraPoP,
	types.EraGoD,
	types.EraOoW,
}

// EraLabels maps era ids to display labels.
var EraLabels = map[string]string{
	types.EraClassic: "Classic (Classic + Kunark + Velious)",
	types.EraLuclin:  "Shadows of Luclin",
	types.EraPoP:     "Planes of Power (LoY + LDoN)",
	types.EraGoD:     "Gates of Discord",
	types.EraOoW:     "Omens of War",
}

// TwoBoxModeLabels maps 2-box playstyle ids to display labels.
var TwoBoxModeLabels = map[string]string{
	types.TwoBoxTraditional:   "Traditional (tank + healer)",
	types.TwoBoxPetTank:       "Pet tank (Mag/Necro/Bst)",
	types.TwoBoxEnchCharmTank: "Enchanter charm tank",
	types.TwoBoxKiting:        "Kiting duo",
}

// KiteStyleLabels maps kiting styles to display labels.
var KiteStyleLabels = map[string]string{
	types.KiteStyleSwarm:     "Swarm / AE kiting",
	types.KiteStyleFearSnare: "Fear + snare kiting",
}

// FocusLabels maps group-focus ids to display labels.
var FocusLabels = map[string]string{
	types.FocusLeveling: "Leveling speed",
	types.FocusBalanced: "Balanced",
	types.FocusSoloRaid: "Hardcore",
}

// StartLabels maps start-condition ids to display labels.
var StartLabels = map[string]string{
	types.StartFresh:    "Fresh",
	types.StartAssisted: "Assisted / Krono",
}

// BoxingModeLabels maps boxing-method ids to display labels.
var BoxingModeLabels = map[string]string{
	types.BoxingManual:     "Manual (alt-tab)",
	types.BoxingAssisted:   "Assisted (hotkey broadcast)",
	types.BoxingMacroquest: "MacroQuest automation",
}

// EraLabel returns the display label for an era, falling back to the id.
func EraLabel(era string) string {
	if label, ok := EraLabels[era]; ok {
		return label
	}
	return era
}

// KnownEra reports whether era is one of the canonical eras.
func KnownEra(era string) bool {
	for _, e := range EraOrder {
		if e == era {
			return true
		}
	}
	return false
}
