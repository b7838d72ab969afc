package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/dotcommander/boxplanner/internal/cli"
	"github.com/dotcommander/boxplanner/internal/config"
	"github.com/dotcommander/boxplanner/internal/outputters"
	"github.com/dotcommander/boxplanner/internal/project"
	"github.com/dotcommander/boxplanner/internal/types"
)

var (
	era        string
	ruleset    string
	boxSize    int
	twoBoxMode string
	kiteStyle  string
	boxingMode string
	focus      string
	start      string

	wantPorts    bool
	wantRunSpeed bool
	wantCharm    bool
	wantPetHeavy bool

	mustInclude []string
	exclude     []string
	limit       int
	explain     bool
	showMeta    bool
)

var recommendCmd = &cobra.Command{
	Use:   "recommend",
	Short: "Generate ranked team composition recommendations",
	Long: `The recommend command enumerates candidate comps for the requested box
size, scores them for the era and playstyle, and prints the top results.

Hard constraints (--ports, --run-speed, --charm, --pet-heavy) reject comps
that cannot satisfy them; --must and --exclude pin or ban specific classes.`,
	Run: func(cmd *cobra.Command, args []string) {
		if err := runRecommend(); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			exitFunc(1)
		}
	},
}

func init() {
	rootCmd.AddCommand(recommendCmd)
	addRequestFlags(recommendCmd)
	recommendCmd.Flags().BoolVar(&explain, "explain", false, "Include per-comp score explanations")
	recommendCmd.Flags().BoolVar(&showMeta, "meta", false, "Show curated meta builds instead of generated comps")
}

// addRequestFlags registers the request-shaping flags shared by the
// recommend, defaults, meta and slots commands.
func addRequestFlags(cmd *cobra.Command) {
	cmd.Flags().StringVar(&era, "era", "", "Era id (ckv|luclin|pop|god|oow; default from config)")
	cmd.Flags().StringVar(&ruleset, "ruleset", "", "Server ruleset id (default from config)")
	cmd.Flags().IntVar(&boxSize, "box-size", 6, "Number of boxed characters (2-6)")
	cmd.Flags().StringVar(&twoBoxMode, "two-box-mode", types.TwoBoxTraditional, "2-box playstyle (traditional|pet_tank|ench_charm_tank|kiting)")
	cmd.Flags().StringVar(&kiteStyle, "kite-style", types.KiteStyleSwarm, "Kiting style for 2-box kiting (swarm|fear_snare)")
	cmd.Flags().StringVar(&boxingMode, "boxing-mode", types.BoxingManual, "Boxing method (manual|assisted|macroquest)")
	cmd.Flags().StringVar(&focus, "focus", types.FocusBalanced, "Group focus (leveling|balanced|solo_raid)")
	cmd.Flags().StringVar(&start, "start", types.StartFresh, "Start condition (fresh|assisted)")
	cmd.Flags().BoolVar(&wantPorts, "ports", false, "Require a porter in the comp")
	cmd.Flags().BoolVar(&wantRunSpeed, "run-speed", false, "Require a run-speed buffer in the comp")
	cmd.Flags().BoolVar(&wantCharm, "charm", false, "Require an Enchanter charm slot (3+ boxes)")
	cmd.Flags().BoolVar(&wantPetHeavy, "pet-heavy", false, "Require a pet class in the comp")
	cmd.Flags().StringSliceVar(&mustInclude, "must", nil, "Classes that must appear in every comp")
	cmd.Flags().StringSliceVar(&exclude, "exclude", nil, "Classes that must not appear in any comp")
	cmd.Flags().IntVar(&limit, "limit", 0, "Maximum results to show (default from config)")
}

// loadPlanner loads config and the dataset for the current flags.
func loadPlanner() (*config.Config, *cli.PlannerContext, error) {
	cfg, err := config.LoadConfig(dataDir)
	if err != nil {
		return nil, nil, fmt.Errorf("error loading configuration: %w", err)
	}
	// A relative data dir is resolved against the current directory and its
	// ancestors, so the tool works from anywhere inside a checkout.
	if !filepath.IsAbs(cfg.DataDir) && !project.IsDataDir(cfg.DataDir) {
		cfg.DataDir = project.FindDataDir(".", cfg.DataDir)
	}
	ctx, err := cli.NewPlannerContext(cfg.DataDir, cfg.Quiet, cfg.Verbose)
	if err != nil {
		return nil, nil, err
	}
	return cfg, ctx, nil
}

// requestOptions assembles the engine options from flags, with config
// supplying era, ruleset and limit defaults.
func requestOptions(cfg *config.Config) cli.Options {
	opts := cli.Options{
		Era:         era,
		Ruleset:     ruleset,
		BoxSize:     boxSize,
		TwoBoxMode:  twoBoxMode,
		KiteStyle:   kiteStyle,
		BoxingMode:  boxingMode,
		Focus:       focus,
		Start:       start,
		Ports:       wantPorts,
		RunSpeed:    wantRunSpeed,
		Charm:       wantCharm,
		PetHeavy:    wantPetHeavy,
		MustInclude: mustInclude,
		Exclude:     exclude,
		Limit:       limit,
		Explain:     explain,
	}
	if opts.Era == "" {
		opts.Era = cfg.Era
	}
	if opts.Ruleset == "" {
		opts.Ruleset = cfg.Ruleset
	}
	if opts.Limit <= 0 {
		opts.Limit = cfg.Limit
	}
	return opts
}

func runRecommend() error {
	cfg, ctx, err := loadPlanner()
	if err != nil {
		return err
	}

	opts := requestOptions(cfg)
	if showMeta {
		return printMetaBuilds(ctx, opts.Era, opts.BoxSize)
	}

	summary, err := ctx.Recommend(opts)
	if err != nil {
		return err
	}

	outputter := outputters.NewOutputter(cfg)
	if err := outputter.Format(summary, cfg.Format); err != nil {
		return fmt.Errorf("error formatting output: %w", err)
	}
	return nil
}
