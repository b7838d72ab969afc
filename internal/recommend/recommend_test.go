package recommend

import (
	"reflect"
	"sort"
	"testing"

	"github.com/dotcommander/boxplanner/internal/ratings"
	"github.com/dotcommander/boxplanner/internal/types"
)

func testStore() *ratings.Store {
	return ratings.NewStore(map[string]map[string]map[string]int{
		"ckv": {
			"Warrior":      {"dps": 55, "healing": 0, "tanking": 95, "pet_tanking": 5, "solo": 20, "sustain": 40, "kite": 5, "charm": 0},
			"Shadowknight": {"dps": 60, "healing": 5, "tanking": 85, "pet_tanking": 20, "solo": 55, "sustain": 60, "kite": 30, "charm": 0},
			"Paladin":      {"dps": 45, "healing": 35, "tanking": 80, "pet_tanking": 5, "solo": 35, "sustain": 55, "kite": 5, "charm": 0},
			"Cleric":       {"dps": 15, "healing": 100, "tanking": 15, "pet_tanking": 10, "solo": 25, "sustain": 60, "kite": 5, "charm": 0},
			"Druid":        {"dps": 55, "healing": 70, "tanking": 10, "pet_tanking": 10, "solo": 75, "sustain": 65, "kite": 90, "charm": 45},
			"Shaman":       {"dps": 45, "healing": 80, "tanking": 15, "pet_tanking": 25, "solo": 65, "sustain": 80, "kite": 40, "charm": 0},
			"Enchanter":    {"dps": 40, "healing": 0, "tanking": 5, "pet_tanking": 60, "solo": 70, "sustain": 55, "kite": 30, "charm": 100},
			"Wizard":       {"dps": 90, "healing": 0, "tanking": 5, "pet_tanking": 0, "solo": 45, "sustain": 30, "kite": 70, "charm": 0},
			"Magician":     {"dps": 75, "healing": 0, "tanking": 5, "pet_tanking": 85, "solo": 60, "sustain": 55, "kite": 20, "charm": 0},
			"Necromancer":  {"dps": 80, "healing": 10, "tanking": 5, "pet_tanking": 75, "solo": 90, "sustain": 75, "kite": 85, "charm": 40},
			"Bard":         {"dps": 45, "healing": 5, "tanking": 25, "pet_tanking": 5, "solo": 60, "sustain": 70, "kite": 95, "charm": 60},
			"Monk":         {"dps": 80, "healing": 0, "tanking": 35, "pet_tanking": 0, "solo": 45, "sustain": 50, "kite": 10, "charm": 0},
			"Rogue":        {"dps": 85, "healing": 0, "tanking": 15, "pet_tanking": 0, "solo": 15, "sustain": 30, "kite": 5, "charm": 0},
			"Ranger":       {"dps": 55, "healing": 15, "tanking": 30, "pet_tanking": 0, "solo": 30, "sustain": 40, "kite": 55, "charm": 0},
		},
	})
}

func allAvailable(store *ratings.Store) []string {
	return store.RatedClasses("ckv")
}

func baseRequest(store *ratings.Store, slots []string) Request {
	return Request{
		Ratings:       store,
		Era:           "ckv",
		Available:     allAvailable(store),
		TemplateSlots: slots,
		BoxingMode:    types.BoxingManual,
		Start:         types.StartFresh,
		Limit:         15,
	}
}

func TestRoleCandidatesTank(t *testing.T) {
	store := testStore()
	got := RoleCandidates(store, "ckv", allAvailable(store), types.SlotTank, types.BoxingManual, types.StartFresh, false)
	want := []string{"Warrior", "Shadowknight", "Paladin"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("tank pool = %v, want %v", got, want)
	}
}

func TestRoleCandidatesHealer(t *testing.T) {
	store := testStore()
	got := RoleCandidates(store, "ckv", allAvailable(store), types.SlotHealer, types.BoxingManual, types.StartFresh, false)
	want := []string{"Cleric", "Shaman", "Druid"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("healer pool = %v, want %v", got, want)
	}
}

func TestRoleCandidatesDPSManualPenalty(t *testing.T) {
	store := testStore()
	got := RoleCandidates(store, "ckv", allAvailable(store), types.SlotDPS, types.BoxingManual, types.StartAssisted, false)

	// Manual boxing: Wizard 90 stays top; Rogue 85-15=70 drops behind
	// Magician 75 and Necromancer 80.
	if got[0] != "Wizard" {
		t.Errorf("top manual dps = %s, want Wizard", got[0])
	}
	rank := map[string]int{}
	for i, class := range got {
		rank[class] = i
	}
	if rank["Rogue"] < rank["Magician"] {
		t.Error("penalized Rogue should rank below Magician under manual boxing")
	}
	if len(got) > 10 {
		t.Errorf("dps pool size = %d, want <= 10", len(got))
	}
}

func TestRoleCandidatesCharmTank(t *testing.T) {
	store := testStore()
	got := RoleCandidates(store, "ckv", allAvailable(store), types.SlotCharmTank, types.BoxingManual, types.StartFresh, true)
	if !reflect.DeepEqual(got, []string{"Enchanter"}) {
		t.Errorf("charm tank pool = %v, want [Enchanter]", got)
	}

	// No Enchanter, no charm tank: the empty pool yields zero comps upstream.
	var withoutEnch []string
	for _, class := range allAvailable(store) {
		if class != "Enchanter" {
			withoutEnch = append(withoutEnch, class)
		}
	}
	got = RoleCandidates(store, "ckv", withoutEnch, types.SlotCharmTank, types.BoxingManual, types.StartFresh, true)
	if len(got) != 0 {
		t.Errorf("charm tank pool without Enchanter = %v, want empty", got)
	}
}

func TestRoleCandidatesDeterministic(t *testing.T) {
	store := testStore()
	for _, role := range []string{types.SlotTank, types.SlotHealer, types.SlotSlow, types.SlotCC, types.SlotDPS, types.SlotSupport, types.SlotPetPartner} {
		first := RoleCandidates(store, "ckv", allAvailable(store), role, types.BoxingManual, types.StartFresh, false)
		for i := 0; i < 5; i++ {
			again := RoleCandidates(store, "ckv", allAvailable(store), role, types.BoxingManual, types.StartFresh, false)
			if !reflect.DeepEqual(first, again) {
				t.Fatalf("role %s pool is not deterministic: %v vs %v", role, first, again)
			}
		}
	}
}

func TestGuaranteedClasses(t *testing.T) {
	store := testStore()
	available := allAvailable(store)

	hardcoreSlots := []string{types.SlotTank, types.SlotHealer, types.SlotSlow, types.SlotCC, types.SlotDPS, types.SlotDPS}
	got := GuaranteedClasses(hardcoreSlots, available, false, true)
	want := map[string]bool{"Cleric": true, "Shaman": true, "Bard": true}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("hardcore guaranteed = %v, want %v", got, want)
	}

	charmSlots := []string{types.SlotCharmTank, types.SlotHealer, types.SlotDPS}
	got = GuaranteedClasses(charmSlots, available, true, false)
	if !reflect.DeepEqual(got, map[string]bool{"Enchanter": true}) {
		t.Errorf("charm-tank guaranteed = %v, want [Enchanter]", got)
	}

	// Charm without a charm_tank slot guarantees nothing; an unavailable
	// Enchanter guarantees nothing either.
	if got = GuaranteedClasses([]string{types.SlotTank, types.SlotHealer, types.SlotDPS}, available, true, false); len(got) != 0 {
		t.Errorf("guaranteed without charm_tank slot = %v, want empty", got)
	}
	var withoutEnch []string
	for _, class := range available {
		if class != "Enchanter" {
			withoutEnch = append(withoutEnch, class)
		}
	}
	if got = GuaranteedClasses(charmSlots, withoutEnch, true, false); len(got) != 0 {
		t.Errorf("guaranteed without Enchanter = %v, want empty", got)
	}
}

func TestForceConstraintsNeverTouchesTank(t *testing.T) {
	store := testStore()
	slots := []string{types.SlotTank, types.SlotHealer, types.SlotSlow, types.SlotCC, types.SlotDPS, types.SlotDPS}
	cons := Constraints{Charm: true, PetHeavy: true, Kiting: true}

	forced := ForceConstraintsIntoSlots(slots, allAvailable(store), cons, nil, false)
	if _, ok := forced[0]; ok {
		t.Error("constraint forcing must never claim the tank slot")
	}
	for idx, pool := range forced {
		if len(pool) == 0 {
			t.Errorf("forced slot %d has an empty pool", idx)
		}
	}
}

func TestForceConstraintsPortsAndRunSpeedNeverForced(t *testing.T) {
	store := testStore()
	slots := []string{types.SlotTank, types.SlotHealer, types.SlotSlow, types.SlotDPS}

	forced := ForceConstraintsIntoSlots(slots, allAvailable(store), Constraints{Ports: true, RunSpeed: true}, nil, false)
	if len(forced) != 0 {
		t.Errorf("ports/run-speed are filter-only, got forced slots %v", forced)
	}
}

func TestForceConstraintsHardcoreOnlyDPS(t *testing.T) {
	store := testStore()
	slots := []string{types.SlotTank, types.SlotHealer, types.SlotSlow, types.SlotCC, types.SlotDPS, types.SlotDPS}

	forced := ForceConstraintsIntoSlots(slots, allAvailable(store), Constraints{Charm: true, PetHeavy: true}, nil, true)
	for idx := range forced {
		if slots[idx] != types.SlotDPS {
			t.Errorf("hardcore forcing claimed slot %d (%s), only dps slots may flex", idx, slots[idx])
		}
	}
	if len(forced) == 0 {
		t.Error("expected charm and pet constraints to claim dps slots")
	}
}

func TestForceConstraintsMergesCompatible(t *testing.T) {
	store := testStore()
	slots := []string{types.SlotTank, types.SlotHealer, types.SlotSlow, types.SlotCC, types.SlotDPS, types.SlotDPS}

	// Charm needs the Enchanter; pet-heavy intersects to pet classes. The two
	// sets are disjoint, so each claims its own flex slot.
	forced := ForceConstraintsIntoSlots(slots, allAvailable(store), Constraints{Charm: true, PetHeavy: true}, nil, false)
	if len(forced) != 2 {
		t.Fatalf("expected 2 forced slots, got %v", forced)
	}

	var pools [][]string
	for _, idx := range sortedIndices(forced) {
		pools = append(pools, forced[idx])
	}
	if !reflect.DeepEqual(pools[0], []string{"Enchanter"}) {
		t.Errorf("first forced pool = %v, want [Enchanter]", pools[0])
	}
	if !reflect.DeepEqual(pools[1], []string{"Beastlord", "Magician", "Necromancer"}) && !reflect.DeepEqual(pools[1], []string{"Magician", "Necromancer"}) {
		t.Errorf("second forced pool = %v, want pet classes", pools[1])
	}
}

func sortedIndices(forced map[int][]string) []int {
	out := make([]int, 0, len(forced))
	for idx := range forced {
		out = append(out, idx)
	}
	sort.Ints(out)
	return out
}

func TestDuplicateAllowed(t *testing.T) {
	tests := []struct {
		name       string
		comp       []string
		era        string
		boxingMode string
		dupDPS     bool
		want       bool
	}{
		{"unique always allowed", []string{"Warrior", "Cleric"}, "ckv", types.BoxingManual, false, true},
		{"duplicates need 2 dps slots", []string{"Warrior", "Wizard", "Wizard"}, "ckv", types.BoxingManual, false, false},
		{"duplicate casters with 2 dps slots", []string{"Warrior", "Wizard", "Wizard"}, "ckv", types.BoxingManual, true, true},
		{"never two enchanters", []string{"Enchanter", "Enchanter", "Cleric"}, "ckv", types.BoxingAssisted, true, false},
		{"manual duplicate melee rejected", []string{"Warrior", "Monk", "Monk"}, "ckv", types.BoxingManual, true, false},
		{"assisted duplicate melee allowed", []string{"Warrior", "Monk", "Monk"}, "ckv", types.BoxingAssisted, true, true},
		{"manual duplicate rangers rejected in classic", []string{"Warrior", "Ranger", "Ranger"}, "ckv", types.BoxingManual, true, false},
		{"manual duplicate bow rangers allowed in luclin", []string{"Warrior", "Ranger", "Ranger"}, "luclin", types.BoxingManual, true, true},
		{"manual duplicate bow rangers allowed in pop", []string{"Warrior", "Ranger", "Ranger"}, "pop", types.BoxingManual, true, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := duplicateAllowed(tt.comp, tt.era, tt.boxingMode, tt.dupDPS); got != tt.want {
				t.Errorf("duplicateAllowed(%v, %s, %s, %v) = %v, want %v", tt.comp, tt.era, tt.boxingMode, tt.dupDPS, got, tt.want)
			}
		})
	}
}

func TestGenerateScoredRecommendationsOrderAndLimit(t *testing.T) {
	store := testStore()
	req := baseRequest(store, []string{types.SlotTank, types.SlotHealer, types.SlotDPS})
	req.Limit = 5

	results := GenerateScoredRecommendations(req)
	if len(results) == 0 {
		t.Fatal("expected results")
	}
	if len(results) > 5 {
		t.Errorf("limit not applied: got %d results", len(results))
	}
	for i := 1; i < len(results); i++ {
		if results[i].Score > results[i-1].Score {
			t.Errorf("results not sorted descending at %d: %d > %d", i, results[i].Score, results[i-1].Score)
		}
	}
	for _, r := range results {
		if r.Detail != nil {
			t.Error("detail should be nil unless Explain is set")
		}
	}
}

func TestGenerateScoredRecommendationsFilters(t *testing.T) {
	store := testStore()
	req := baseRequest(store, []string{types.SlotTank, types.SlotHealer, types.SlotDPS})
	req.MustInclude = []string{"Shaman"}
	req.Exclude = []string{"Warrior"}

	results := GenerateScoredRecommendations(req)
	if len(results) == 0 {
		t.Fatal("expected results")
	}
	for _, r := range results {
		has := false
		for _, class := range r.Comp {
			if class == "Warrior" {
				t.Errorf("excluded Warrior present in %v", r.Comp)
			}
			if class == "Shaman" {
				has = true
			}
		}
		if !has {
			t.Errorf("must-include Shaman missing from %v", r.Comp)
		}
	}
}

func joinComp(comp []string) string {
	out := ""
	for _, c := range comp {
		out += c + "|"
	}
	return out
}

func TestGenerateScoredRecommendationsCharmUnavailable(t *testing.T) {
	store := testStore()
	var withoutEnch []string
	for _, class := range allAvailable(store) {
		if class != "Enchanter" {
			withoutEnch = append(withoutEnch, class)
		}
	}

	req := baseRequest(store, []string{types.SlotCharmTank, types.SlotHealer, types.SlotDPS})
	req.Available = withoutEnch
	req.Constraints = Constraints{Charm: true}

	if results := GenerateScoredRecommendations(req); len(results) != 0 {
		t.Errorf("charm without Enchanter should yield zero results, got %d", len(results))
	}
}

func TestGenerateScoredRecommendationsHardcoreLocks(t *testing.T) {
	store := testStore()
	req := baseRequest(store, []string{types.SlotTank, types.SlotHealer, types.SlotSlow, types.SlotCC, types.SlotDPS, types.SlotDPS})
	req.Hardcore = true

	results := GenerateScoredRecommendations(req)
	if len(results) == 0 {
		t.Fatal("expected hardcore results")
	}
	for _, r := range results {
		if r.Comp[1] != "Cleric" || r.Comp[2] != "Shaman" || r.Comp[3] != "Bard" {
			t.Errorf("hardcore core not locked in %v", r.Comp)
		}
	}
}

func TestGenerateScoredRecommendationsMustIncludeInjection(t *testing.T) {
	store := testStore()

	// Ranger never makes the capped manual dps shortlist on raw numbers;
	// requiring it must inject it into the dps pool so comps exist.
	req := baseRequest(store, []string{types.SlotTank, types.SlotHealer, types.SlotDPS})
	req.MustInclude = []string{"Ranger"}

	results := GenerateScoredRecommendations(req)
	if len(results) == 0 {
		t.Fatal("expected results with injected Ranger")
	}
	for _, r := range results {
		found := false
		for _, class := range r.Comp {
			if class == "Ranger" {
				found = true
			}
		}
		if !found {
			t.Errorf("Ranger missing from %v", r.Comp)
		}
	}
}

func TestGenerateScoredRecommendationsZeroLimit(t *testing.T) {
	store := testStore()
	req := baseRequest(store, []string{types.SlotTank, types.SlotHealer, types.SlotDPS})

	req.Limit = 0
	if results := GenerateScoredRecommendations(req); len(results) != 0 {
		t.Errorf("limit 0 should yield no results, got %d", len(results))
	}

	req.Limit = -3
	if results := GenerateScoredRecommendations(req); len(results) != 0 {
		t.Errorf("negative limit should yield no results, got %d", len(results))
	}
}

func TestGenerateScoredRecommendationsDeduplicates(t *testing.T) {
	store := testStore()
	req := baseRequest(store, []string{types.SlotTank, types.SlotHealer, types.SlotDPS, types.SlotDPS})
	req.Limit = 1000

	seen := make(map[string]bool)
	for _, r := range GenerateScoredRecommendations(req) {
		key := joinComp(r.Comp)
		if seen[key] {
			t.Errorf("duplicate comp in results: %v", r.Comp)
		}
		seen[key] = true
	}
}

func TestGenerateScoredRecommendationsExplain(t *testing.T) {
	store := testStore()
	req := baseRequest(store, []string{types.SlotTank, types.SlotHealer})
	req.Explain = true

	results := GenerateScoredRecommendations(req)
	if len(results) == 0 {
		t.Fatal("expected results")
	}
	top := results[0]
	if top.Detail == nil {
		t.Fatal("expected explanation detail")
	}
	if top.Detail.Total != top.Score {
		t.Errorf("detail total %d != score %d", top.Detail.Total, top.Score)
	}
	if len(top.Detail.SlotBreakdowns) != 2 {
		t.Errorf("expected 2 slot breakdowns, got %d", len(top.Detail.SlotBreakdowns))
	}
	if len(top.Detail.SummaryLines) == 0 {
		t.Error("expected summary lines")
	}
}
