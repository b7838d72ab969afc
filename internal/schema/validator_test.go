package schema

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validRuleset() map[string]any {
	return map[string]any{
		"label":                 "Frostreaver",
		"add_classes_by_era":    map[string]any{"ckv": []any{"Beastlord"}},
		"remove_classes_by_era": map[string]any{},
		"weight_modifiers":      map[string]any{"dps": 1.1},
	}
}

func TestValidateRulesetValid(t *testing.T) {
	v := NewValidator()
	errs := v.ValidateRuleset("rulesets.json", "frostreaver", validRuleset())
	assert.Empty(t, errs)
}

func TestValidateRulesetEmptyLabel(t *testing.T) {
	v := NewValidator()
	data := validRuleset()
	data["label"] = ""

	errs := v.ValidateRuleset("rulesets.json", "frostreaver", data)
	require.NotEmpty(t, errs)
	assert.Equal(t, "rulesets.json", errs[0].File)
	assert.Equal(t, "frostreaver", errs[0].Key)
}

func TestValidateRulesetWrongTypes(t *testing.T) {
	v := NewValidator()

	tests := []struct {
		name   string
		mutate func(map[string]any)
	}{
		{"label not a string", func(d map[string]any) { d["label"] = 3 }},
		{"adds not a map", func(d map[string]any) { d["add_classes_by_era"] = "Beastlord" }},
		{"weights not numbers", func(d map[string]any) { d["weight_modifiers"] = map[string]any{"dps": "high"} }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			data := validRuleset()
			tt.mutate(data)
			errs := v.ValidateRuleset("rulesets.json", "x", data)
			assert.NotEmpty(t, errs)
		})
	}
}

func TestValidationErrorString(t *testing.T) {
	err := ValidationError{File: "rulesets.json", Key: "frostreaver", Message: "boom"}
	assert.Contains(t, err.Error(), "rulesets.json")
	assert.Contains(t, err.Error(), "frostreaver")

	err = ValidationError{File: "rulesets.json", Message: "boom"}
	assert.Equal(t, "rulesets.json: boom", err.Error())
}
