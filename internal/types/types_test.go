package types

import (
	"reflect"
	"testing"
)

func TestHas(t *testing.T) {
	tests := []struct {
		name       string
		class      string
		capability string
		want       bool
	}{
		{"Warrior is a tank", ClassWarrior, CapTank, true},
		{"Warrior is not melee DPS", ClassWarrior, CapMelee, false},
		{"Shadowknight is not melee DPS", ClassShadowknight, CapMelee, false},
		{"Monk is melee DPS", ClassMonk, CapMelee, true},
		{"Ranger is melee DPS", ClassRanger, CapMelee, true},
		{"Ranger snares", ClassRanger, CapSnare, true},
		{"Enchanter charms", ClassEnchanter, CapCharm, true},
		{"Enchanter slows", ClassEnchanter, CapSlow, true},
		{"Enchanter does not heal", ClassEnchanter, CapHealer, false},
		{"Druid ports", ClassDruid, CapPorter, true},
		{"Wizard ports", ClassWizard, CapPorter, true},
		{"Shaman does not port", ClassShaman, CapPorter, false},
		{"Bard is run speed", ClassBard, CapRunSpeed, true},
		{"Necromancer pet tanks", ClassNecromancer, CapPetTank, true},
		{"Necromancer kites", ClassNecromancer, CapKite, true},
		{"Magician does not kite", ClassMagician, CapKite, false},
		{"unknown class has nothing", "Bloodmage", CapTank, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Has(tt.class, tt.capability); got != tt.want {
				t.Errorf("Has(%q, %q) = %v, want %v", tt.class, tt.capability, got, tt.want)
			}
		})
	}
}

func TestWithCapability(t *testing.T) {
	tests := []struct {
		capability string
		want       []string
	}{
		{CapTank, []string{ClassPaladin, ClassShadowknight, ClassWarrior}},
		{CapHealer, []string{ClassCleric, ClassDruid, ClassShaman}},
		{CapCharm, []string{ClassEnchanter}},
		{CapSlow, []string{ClassEnchanter, ClassShaman}},
		{CapPetTank, []string{ClassBeastlord, ClassMagician, ClassNecromancer}},
		{CapPorter, []string{ClassDruid, ClassWizard}},
	}

	for _, tt := range tests {
		t.Run(tt.capability, func(t *testing.T) {
			got := WithCapability(tt.capability)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("WithCapability(%q) = %v, want %v", tt.capability, got, tt.want)
			}
		})
	}
}

func TestAnyHasAndCountWith(t *testing.T) {
	comp := []string{ClassWarrior, ClassCleric, ClassMonk, ClassMonk, ClassBard, ClassShaman}

	if !AnyHas(comp, CapSlow) {
		t.Error("expected Shaman to satisfy slow")
	}
	if AnyHas(comp, CapPorter) {
		t.Error("no porter in comp")
	}
	if got := CountWith(comp, CapMelee); got != 2 {
		t.Errorf("CountWith melee = %d, want 2 (both Monks count)", got)
	}
	if got := CountWith(comp, CapTank); got != 1 {
		t.Errorf("CountWith tank = %d, want 1", got)
	}
}
