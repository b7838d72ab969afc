package cli

import (
	"fmt"
	"os"

	"github.com/dotcommander/boxplanner/internal/dataset"
	"github.com/dotcommander/boxplanner/internal/recommend"
	"github.com/dotcommander/boxplanner/internal/template"
	"github.com/dotcommander/boxplanner/internal/types"
)

// Options are the user-facing knobs for one recommendation request, as
// collected from flags and config.
type Options struct {
	Era        string
	Ruleset    string
	BoxSize    int
	TwoBoxMode string
	KiteStyle  string
	BoxingMode string
	Focus      string
	Start      string

	Ports    bool
	RunSpeed bool
	Charm    bool
	PetHeavy bool

	MustInclude []string
	Exclude     []string
	Limit       int
	Explain     bool
}

// Summary is the complete result of one recommendation run: the ranked comps
// plus everything the formatters need to render the request context, the
// defaults fallback and any warnings.
type Summary struct {
	Era          string               `json:"era"`
	EraLabel     string               `json:"era_label"`
	Ruleset      string               `json:"ruleset"`
	RulesetLabel string               `json:"ruleset_label"`
	BoxSize      int                  `json:"box_size"`
	BoxingMode   string               `json:"boxing_mode"`
	Focus        string               `json:"focus"`
	Start        string               `json:"start"`
	Hardcore     bool                 `json:"hardcore"`
	Slots        []string             `json:"slots"`
	Available    []string             `json:"available"`
	Constraints  int                  `json:"constraints"`
	Results      []recommend.Scored   `json:"results"`
	Fallback     []dataset.RankedComp `json:"fallback,omitempty"`
	Warnings     []string             `json:"warnings,omitempty"`
}

// Recommend validates and normalizes the request, runs the engine and builds
// the summary. Results are memoized: the engine is a pure function of the
// request and the immutable dataset snapshot.
func (ctx *PlannerContext) Recommend(opts Options) (*Summary, error) {
	if opts.BoxSize < 2 || opts.BoxSize > 6 {
		return nil, fmt.Errorf("box size must be between 2 and 6, got %d", opts.BoxSize)
	}
	if !ctx.Bundle.Ratings.HasEra(opts.Era) {
		return nil, fmt.Errorf("unknown era: %s (known: %v)", opts.Era, ctx.Bundle.Ratings.Eras())
	}
	rs, err := ctx.Ruleset(opts.Ruleset)
	if err != nil {
		return nil, err
	}

	if cached, ok := ctx.cache.get(opts); ok {
		if ctx.Verbose {
			fmt.Fprintf(os.Stderr, "Using cached results for era=%s box=%d\n", opts.Era, opts.BoxSize)
		}
		return cached, nil
	}

	available := ctx.Bundle.Ratings.AvailableClasses(opts.Era, rs)
	availableSet := make(map[string]bool, len(available))
	for _, class := range available {
		availableSet[class] = true
	}

	// Sanitize the class filters: unknown or unavailable entries are dropped.
	// A class left in both sets is a degenerate request, not an error: the
	// engine's filters reject every comp and the run ends at the fallback
	// path, which the same predicates then empty out too.
	excludeSet := make(map[string]bool, len(opts.Exclude))
	var exclude []string
	for _, class := range opts.Exclude {
		if availableSet[class] && !excludeSet[class] {
			excludeSet[class] = true
			exclude = append(exclude, class)
		}
	}
	var mustInclude []string
	for _, class := range opts.MustInclude {
		if availableSet[class] {
			mustInclude = append(mustInclude, class)
		}
	}

	// Charm as a hard constraint only makes sense at 3+ boxes; a charming
	// duo is the ench_charm_tank 2-box mode instead.
	effectiveCharm := opts.Charm && opts.BoxSize >= 3
	hardcore := opts.Focus == types.FocusSoloRaid && opts.BoxSize >= 4

	slots := template.ForRequest(opts.BoxSize, opts.Focus, opts.TwoBoxMode, opts.KiteStyle, effectiveCharm)

	var warnings []string
	if opts.BoxSize == 2 && opts.TwoBoxMode == types.TwoBoxEnchCharmTank && !availableSet[types.ClassEnchanter] {
		warnings = append(warnings, fmt.Sprintf("Enchanter is not available in %s under this ruleset; charm-tank duos need one.", EraLabel(opts.Era)))
	}

	constraints := recommend.Constraints{
		Ports:    opts.Ports,
		RunSpeed: opts.RunSpeed,
		Charm:    effectiveCharm,
		PetHeavy: opts.PetHeavy,
	}

	limit := opts.Limit
	if limit <= 0 {
		limit = 15
	}

	req := recommend.Request{
		Ratings:       ctx.Bundle.Ratings,
		Era:           opts.Era,
		Available:     available,
		TemplateSlots: slots,
		BoxingMode:    opts.BoxingMode,
		Start:         opts.Start,
		MustInclude:   mustInclude,
		Exclude:       exclude,
		Constraints:   constraints,
		Hardcore:      hardcore,
		Limit:         limit,
		Explain:       opts.Explain,
	}
	results := recommend.GenerateScoredRecommendations(req)

	summary := &Summary{
		Era:          opts.Era,
		EraLabel:     EraLabel(opts.Era),
		Ruleset:      opts.Ruleset,
		RulesetLabel: rs.Label,
		BoxSize:      opts.BoxSize,
		BoxingMode:   opts.BoxingMode,
		Focus:        opts.Focus,
		Start:        opts.Start,
		Hardcore:     hardcore,
		Slots:        slots,
		Available:    available,
		Constraints:  countConstraints(constraints),
		Results:      results,
		Warnings:     warnings,
	}

	// Zero results: fall back to the curated defaults that survive the same
	// availability, filter and constraint checks.
	if len(results) == 0 {
		summary.Fallback = ctx.filteredDefaults(opts.Era, opts.BoxSize, availableSet, mustInclude, exclude, constraints)
	}

	ctx.cache.put(opts, summary)
	return summary, nil
}

// filteredDefaults applies the engine's hard predicates to the curated
// default comps so the fallback never suggests something the request forbids.
func (ctx *PlannerContext) filteredDefaults(era string, boxSize int, availableSet map[string]bool, mustInclude, exclude []string, constraints recommend.Constraints) []dataset.RankedComp {
	mustSet := make(map[string]bool, len(mustInclude))
	for _, c := range mustInclude {
		mustSet[c] = true
	}
	excludeSet := make(map[string]bool, len(exclude))
	for _, c := range exclude {
		excludeSet[c] = true
	}

	var out []dataset.RankedComp
	for _, entry := range ctx.DefaultComps(era, boxSize) {
		allAvailable := true
		for _, class := range entry.Classes {
			if !availableSet[class] {
				allAvailable = false
				break
			}
		}
		if !allAvailable {
			continue
		}
		if !recommend.MatchesFilters(entry.Classes, mustSet, excludeSet) {
			continue
		}
		if !constraints.MatchedBy(entry.Classes) {
			continue
		}
		out = append(out, entry)
	}
	return out
}

func countConstraints(c recommend.Constraints) int {
	n := 0
	for _, active := range []bool{c.Ports, c.RunSpeed, c.Charm, c.PetHeavy, c.Kiting} {
		if active {
			n++
		}
	}
	return n
}
