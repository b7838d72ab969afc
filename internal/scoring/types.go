// Package scoring computes the desirability of a class in a template slot
// and aggregates per-slot values plus whole-comp adjustments into a single
// integer score with a structured explanation.
package scoring

import "github.com/dotcommander/boxplanner/internal/ratings"

// Context carries the read-only inputs every scoring call needs. It has no
// mutable state; one Context may serve any number of comps concurrently.
type Context struct {
	Ratings         *ratings.Store
	Era             string
	BoxingMode      string
	Start           string
	RequireCharm    bool
	RequireRunSpeed bool
	RequirePorts    bool
	Hardcore        bool
}

// SlotBreakdown records how a single slot contributed to a comp's score.
type SlotBreakdown struct {
	Slot       string             `json:"slot"`
	Class      string             `json:"class"`
	Value      float64            `json:"value"`
	Breakdown  map[string]float64 `json:"breakdown"`
	StartBonus int                `json:"start_bonus"`
}

// SlowLogic records the 2-box tank+healer slow check, which is a structural
// bonus/penalty rather than a per-slot value.
type SlowLogic struct {
	Applied bool   `json:"applied"`
	HasSlow bool   `json:"has_slow"`
	Delta   int    `json:"bonus_or_penalty"`
	Note    string `json:"note"`
}

// Explanation mirrors every term that contributed to a comp's total score,
// for presentation. It is recomputed per request and never persisted.
type Explanation struct {
	SummaryLines []string `json:"summary_lines"`

	Era          string `json:"era"`
	BoxingMode   string `json:"boxing_mode"`
	Start        string `json:"start"`
	RequireCharm bool   `json:"require_charm"`

	TemplateSlots  []string        `json:"template_slots"`
	SlotBreakdowns []SlotBreakdown `json:"slot_breakdowns"`

	CharmBonusApplied       int       `json:"charm_bonus_applied"`
	CharmSynergy            int       `json:"charm_synergy"`
	SynergyBonus            int       `json:"synergy_bonus"`
	StartBonusTotal         int       `json:"start_bonus_total"`
	SlowLogic               SlowLogic `json:"slow_logic"`
	TankCount               int       `json:"tank_count"`
	TankStackPenalty        int       `json:"tank_stack_penalty"`
	CharmSnareBonus         int       `json:"charm_snare_bonus"`
	ClassicDoubleMeleeBonus int       `json:"classic_double_melee_bonus"`
	HardcoreWarriorBonus    int       `json:"hardcore_warrior_bonus"`
	ConstraintAlreadyMet    int       `json:"constraint_already_met_bonus"`
	Total                   int       `json:"total"`
}
