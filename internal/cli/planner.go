// Package cli drives the recommendation engine for the command layer: it
// loads the reference dataset once, validates and normalizes requests, and
// turns engine output into display-ready summaries.
package cli

import (
	"fmt"

	"github.com/dotcommander/boxplanner/internal/dataset"
	"github.com/dotcommander/boxplanner/internal/ratings"
)

// PlannerContext holds the shared context for all planning operations:
// the loaded dataset snapshot plus output verbosity flags. The snapshot is
// immutable, so one context serves any number of requests.
type PlannerContext struct {
	DataDir string
	Quiet   bool
	Verbose bool
	Bundle  *dataset.Bundle

	cache resultCache
}

// NewPlannerContext loads the dataset under dataDir and returns a ready
// context. Load errors are fatal; a planner without data has nothing to say.
func NewPlannerContext(dataDir string, quiet, verbose bool) (*PlannerContext, error) {
	bundle, err := dataset.Load(dataDir)
	if err != nil {
		return nil, fmt.Errorf("error loading data from %s: %w", dataDir, err)
	}
	return &PlannerContext{
		DataDir: dataDir,
		Quiet:   quiet,
		Verbose: verbose,
		Bundle:  bundle,
	}, nil
}

// Ruleset resolves a ruleset id against the loaded bundle.
func (ctx *PlannerContext) Ruleset(id string) (ratings.Ruleset, error) {
	rs, ok := ctx.Bundle.Rulesets[id]
	if !ok {
		return ratings.Ruleset{}, fmt.Errorf("unknown ruleset: %s", id)
	}
	return rs, nil
}

// AvailableClasses resolves the playable class list for (era, ruleset).
func (ctx *PlannerContext) AvailableClasses(era, rulesetID string) ([]string, error) {
	if !ctx.Bundle.Ratings.HasEra(era) {
		return nil, fmt.Errorf("unknown era: %s", era)
	}
	rs, err := ctx.Ruleset(rulesetID)
	if err != nil {
		return nil, err
	}
	return ctx.Bundle.Ratings.AvailableClasses(era, rs), nil
}

// MetaBuilds returns the top curated builds for (era, boxSize), at most five.
// Meta builds are shown as-is: no availability filtering, no scoring.
func (ctx *PlannerContext) MetaBuilds(era string, boxSize int) []dataset.RankedComp {
	builds := ctx.Bundle.MetaBuilds.For(era, boxSize)
	if len(builds) > 5 {
		builds = builds[:5]
	}
	return builds
}

// DefaultComps returns the curated default comps for (era, boxSize).
func (ctx *PlannerContext) DefaultComps(era string, boxSize int) []dataset.RankedComp {
	return ctx.Bundle.Defaults.For(era, boxSize)
}
