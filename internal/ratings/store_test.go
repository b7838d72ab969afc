package ratings

import (
	"reflect"
	"testing"
)

func sampleStore() *Store {
	return NewStore(map[string]map[string]map[string]int{
		"ckv": {
			"Warrior": {"dps": 55, "tanking": 95},
			"Cleric":  {"healing": 100},
		},
		"luclin": {
			"Warrior":   {"dps": 55, "tanking": 95},
			"Beastlord": {"dps": 65},
		},
	})
}

func TestScoreDefaultsToZero(t *testing.T) {
	s := sampleStore()
	if got := s.Score("ckv", "Warrior", "tanking"); got != 95 {
		t.Errorf("Score = %d, want 95", got)
	}
	if got := s.Score("ckv", "Warrior", "charm"); got != 0 {
		t.Errorf("unknown category = %d, want 0", got)
	}
	if got := s.Score("ckv", "Beastlord", "dps"); got != 0 {
		t.Errorf("class absent from era = %d, want 0", got)
	}
	if got := s.Score("pop", "Warrior", "dps"); got != 0 {
		t.Errorf("unknown era = %d, want 0", got)
	}
}

func TestStoreIsACopy(t *testing.T) {
	table := map[string]map[string]map[string]int{
		"ckv": {"Warrior": {"dps": 55}},
	}
	s := NewStore(table)
	table["ckv"]["Warrior"]["dps"] = 1
	if got := s.Score("ckv", "Warrior", "dps"); got != 55 {
		t.Errorf("store shares memory with input table: got %d", got)
	}
}

func TestAvailableClasses(t *testing.T) {
	s := sampleStore()

	tests := []struct {
		name    string
		era     string
		ruleset Ruleset
		want    []string
	}{
		{
			name:    "no modifications",
			era:     "ckv",
			ruleset: Ruleset{},
			want:    []string{"Cleric", "Warrior"},
		},
		{
			name: "additions apply per era",
			era:  "ckv",
			ruleset: Ruleset{
				AddClassesByEra: map[string][]string{"ckv": {"Beastlord"}},
			},
			want: []string{"Beastlord", "Cleric", "Warrior"},
		},
		{
			name: "removals win over ratings",
			era:  "luclin",
			ruleset: Ruleset{
				RemoveClassesByEra: map[string][]string{"luclin": {"Beastlord"}},
			},
			want: []string{"Warrior"},
		},
		{
			name: "other-era rules ignored",
			era:  "ckv",
			ruleset: Ruleset{
				AddClassesByEra:    map[string][]string{"luclin": {"Berserker"}},
				RemoveClassesByEra: map[string][]string{"luclin": {"Warrior"}},
			},
			want: []string{"Cleric", "Warrior"},
		},
		{
			name: "removal of an added class",
			era:  "ckv",
			ruleset: Ruleset{
				AddClassesByEra:    map[string][]string{"ckv": {"Beastlord"}},
				RemoveClassesByEra: map[string][]string{"ckv": {"Beastlord"}},
			},
			want: []string{"Cleric", "Warrior"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := s.AvailableClasses(tt.era, tt.ruleset)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("AvailableClasses(%s) = %v, want %v", tt.era, got, tt.want)
			}
			// Same inputs, same output, every time.
			for i := 0; i < 3; i++ {
				if again := s.AvailableClasses(tt.era, tt.ruleset); !reflect.DeepEqual(again, got) {
					t.Errorf("AvailableClasses not deterministic: %v vs %v", again, got)
				}
			}
		})
	}
}

func TestErasSorted(t *testing.T) {
	s := sampleStore()
	if got := s.Eras(); !reflect.DeepEqual(got, []string{"ckv", "luclin"}) {
		t.Errorf("Eras = %v", got)
	}
	if !s.HasEra("ckv") || s.HasEra("pop") {
		t.Error("HasEra wrong")
	}
}
