// Package schema validates loaded data documents against embedded CUE
// schemas, with a Go-side fallback when the schemas cannot be compiled.
package schema

import (
	"embed"
	"fmt"
	"path/filepath"

	"cuelang.org/go/cue"
	"cuelang.org/go/cue/cuecontext"
)

//go:embed schemas/*.cue
var schemaFS embed.FS

// ValidationError represents a schema validation failure for one document.
type ValidationError struct {
	File    string
	Key     string // offending top-level key, e.g. the ruleset id
	Message string
}

func (e ValidationError) Error() string {
	if e.Key != "" {
		return fmt.Sprintf("%s: ruleset %q: %s", e.File, e.Key, e.Message)
	}
	return fmt.Sprintf("%s: %s", e.File, e.Message)
}

// Validator handles CUE validation of data documents.
type Validator struct {
	ctx     *cue.Context
	schemas map[string]cue.Value
}

// NewValidator compiles the embedded schemas. Compilation problems degrade
// to Go-side validation rather than failing the load.
func NewValidator() *Validator {
	v := &Validator{
		ctx:     cuecontext.New(),
		schemas: make(map[string]cue.Value),
	}

	entries, err := schemaFS.ReadDir("schemas")
	if err != nil {
		return v
	}
	for _, entry := range entries {
		if entry.IsDir() || filepath.Ext(entry.Name()) != ".cue" {
			continue
		}
		content, err := schemaFS.ReadFile(filepath.Join("schemas", entry.Name()))
		if err != nil {
			continue
		}
		inst := v.ctx.CompileBytes(content, cue.Filename(entry.Name()))
		if inst.Err() != nil {
			continue
		}
		name := entry.Name()[:len(entry.Name())-len(".cue")]
		v.schemas[name] = inst.Value()
	}
	return v
}

// requiredRulesetFields is the Go fallback when the CUE schema is not
// available.
var requiredRulesetFields = []string{
	"label",
	"add_classes_by_era",
	"remove_classes_by_era",
	"weight_modifiers",
}

// ValidateRuleset checks one decoded ruleset document against the ruleset
// schema. key identifies the ruleset in error messages; file names the
// source document.
func (v *Validator) ValidateRuleset(file, key string, data map[string]any) []ValidationError {
	schema, ok := v.schemas["ruleset"]
	if ok {
		def := schema.LookupPath(cue.ParsePath("#Ruleset"))
		if def.Exists() {
			dataValue := v.ctx.Encode(data)
			if encErr := dataValue.Err(); encErr == nil {
				unified := def.Unify(dataValue)
				if err := unified.Err(); err != nil {
					return []ValidationError{{File: file, Key: key, Message: err.Error()}}
				}
				if err := unified.Validate(cue.Concrete(true)); err != nil {
					return []ValidationError{{File: file, Key: key, Message: err.Error()}}
				}
				return nil
			}
		}
	}

	// Fallback: required-field presence only.
	var errs []ValidationError
	for _, field := range requiredRulesetFields {
		if _, ok := data[field]; !ok {
			errs = append(errs, ValidationError{
				File:    file,
				Key:     key,
				Message: fmt.Sprintf("missing required field %q", field),
			})
		}
	}
	return errs
}
