// Package types provides shared types used across the boxplanner codebase.
// This package is at the bottom of the dependency graph and should not import
// any other internal packages to avoid circular dependencies.
package types

import "sort"

// Rating category constants. Every class row in the ratings data carries a
// 0-100 score for each of these.
const (
	CategoryDPS        = "dps"
	CategoryHealing    = "healing"
	CategoryTanking    = "tanking"
	CategoryPetTanking = "pet_tanking"
	CategorySolo       = "solo"
	CategorySustain    = "sustain"
	CategoryKite       = "kite"
	CategoryCharm      = "charm"
)

// Categories lists all rating categories in canonical order.
var Categories = []string{
	CategoryDPS,
	CategoryHealing,
	CategoryTanking,
	CategoryPetTanking,
	CategorySolo,
	CategorySustain,
	CategoryKite,
	CategoryCharm,
}

// Class name constants.
const (
	ClassWarrior      = "Warrior"
	ClassShadowknight = "Shadowknight"
	ClassPaladin      = "Paladin"
	ClassCleric       = "Cleric"
	ClassDruid        = "Druid"
	ClassShaman       = "Shaman"
	ClassEnchanter    = "Enchanter"
	ClassWizard       = "Wizard"
	ClassMagician     = "Magician"
	ClassNecromancer  = "Necromancer"
	ClassBeastlord    = "Beastlord"
	ClassBard         = "Bard"
	ClassMonk         = "Monk"
	ClassRogue        = "Rogue"
	ClassRanger       = "Ranger"
	ClassBerserker    = "Berserker"
)

// Capability tag constants. Membership checks that the engine used to express
// as hardcoded class sets are tag-set lookups against the capability table.
// CapMelee and CapCaster tag the melee-DPS and caster-DPS archetypes; the
// plate tank classes carry CapTank only.
const (
	CapTank     = "tank"
	CapHealer   = "healer"
	CapMelee    = "melee"
	CapCaster   = "caster"
	CapPorter   = "porter"
	CapRunSpeed = "run_speed"
	CapSlow     = "slow"
	CapCC       = "cc"
	CapCharm    = "charm"
	CapPetDPS   = "pet_dps"
	CapPetTank  = "pet_tank"
	CapKite     = "kite"
	CapSnare    = "snare"
)

// Template slot name constants. Slot names are semantic roles, not classes.
const (
	SlotTank                 = "tank"
	SlotHealer               = "healer"
	SlotSlow                 = "slow"
	SlotCC                   = "cc"
	SlotDPS                  = "dps"
	SlotSupport              = "support"
	SlotPetTank              = "pet_tank"
	SlotPetPartner           = "pet_partner"
	SlotCharmTank            = "charm_tank"
	SlotCharmPartner         = "charm_partner"
	SlotKiter                = "kiter"
	SlotKiterSwarm           = "kiter_swarm"
	SlotKiterFearSnare       = "kiter_fear_snare"
	SlotKitePartner          = "kite_partner"
	SlotKitePartnerSwarm     = "kite_partner_swarm"
	SlotKitePartnerFearSnare = "kite_partner_fear_snare"
)

// Boxing mode constants.
const (
	BoxingManual     = "manual"
	BoxingAssisted   = "assisted"
	BoxingMacroquest = "macroquest"
)

// Start condition constants.
const (
	StartFresh    = "fresh"
	StartAssisted = "assisted"
)

// Group focus constants.
const (
	FocusLeveling = "leveling"
	FocusBalanced = "balanced"
	FocusSoloRaid = "solo_raid"
)

// Two-box mode constants.
const (
	TwoBoxTraditional   = "traditional"
	TwoBoxPetTank       = "pet_tank"
	TwoBoxEnchCharmTank = "ench_charm_tank"
	TwoBoxKiting        = "kiting"
)

// Kite style constants.
const (
	KiteStyleSwarm     = "swarm"
	KiteStyleFearSnare = "fear_snare"
)

// Era id constants. Eras are otherwise data-driven; these two gate the
// Ranger bow exception in melee scoring.
const (
	EraClassic = "ckv"
	EraLuclin  = "luclin"
	EraPoP     = "pop"
	EraGoD     = "god"
	EraOoW     = "oow"
)

// classCapabilities is the capability-tag table for every known class.
// Adding a class or capability here is all that is needed for the engine's
// membership checks to pick it up.
var classCapabilities = map[string][]string{
	ClassWarrior:      {CapTank},
	ClassShadowknight: {CapTank},
	ClassPaladin:      {CapTank},
	ClassCleric:       {CapHealer},
	ClassDruid:        {CapHealer, CapCaster, CapPorter, CapRunSpeed, CapKite, CapSnare},
	ClassShaman:       {CapHealer, CapRunSpeed, CapSlow},
	ClassEnchanter:    {CapCaster, CapSlow, CapCC, CapCharm},
	ClassWizard:       {CapCaster, CapPorter, CapKite, CapSnare},
	ClassMagician:     {CapCaster, CapPetDPS, CapPetTank},
	ClassNecromancer:  {CapCaster, CapPetDPS, CapPetTank, CapKite},
	ClassBeastlord:    {CapPetDPS, CapPetTank},
	ClassBard:         {CapRunSpeed, CapCC, CapKite},
	ClassMonk:         {CapMelee},
	ClassRogue:        {CapMelee},
	ClassRanger:       {CapMelee, CapRunSpeed, CapKite, CapSnare},
	ClassBerserker:    {CapMelee},
}

// Has reports whether the class carries the given capability tag.
// Unknown classes have no capabilities.
func Has(class, capability string) bool {
	for _, c := range classCapabilities[class] {
		if c == capability {
			return true
		}
	}
	return false
}

// WithCapability returns all known classes carrying the capability, sorted.
func WithCapability(capability string) []string {
	var out []string
	for class, caps := range classCapabilities {
		for _, c := range caps {
			if c == capability {
				out = append(out, class)
				break
			}
		}
	}
	sort.Strings(out)
	return out
}

// AnyHas reports whether any class in the comp carries the capability.
func AnyHas(comp []string, capability string) bool {
	for _, class := range comp {
		if Has(class, capability) {
			return true
		}
	}
	return false
}

// CountWith returns how many members of the comp carry the capability.
// Duplicate classes count once per slot they occupy.
func CountWith(comp []string, capability string) int {
	n := 0
	for _, class := range comp {
		if Has(class, capability) {
			n++
		}
	}
	return n
}
