package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/dotcommander/boxplanner/internal/cli"
	"github.com/dotcommander/boxplanner/internal/config"
	"github.com/dotcommander/boxplanner/internal/dataset"
)

var dataCmd = &cobra.Command{
	Use:   "data",
	Short: "Show data file status and available classes",
	Long: `The data command reports which required data files were found under the
data directory, then lists the playable classes per era under the active
ruleset. Useful when a recommendation looks wrong: the answer is usually
in the data.`,
	Run: func(cmd *cobra.Command, args []string) {
		if err := runData(); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			exitFunc(1)
		}
	},
}

func init() {
	rootCmd.AddCommand(dataCmd)
	dataCmd.Flags().StringVar(&ruleset, "ruleset", "", "Server ruleset id (default from config)")
}

func runData() error {
	cfg, err := config.LoadConfig(dataDir)
	if err != nil {
		return fmt.Errorf("error loading configuration: %w", err)
	}

	fmt.Printf("Data directory: %s\n\n", cfg.DataDir)
	statuses := dataset.ListDataFiles(cfg.DataDir)
	for _, name := range dataset.RequiredFiles {
		fmt.Printf("  %-28s %s\n", name, statuses[name])
	}
	fmt.Println()

	ctx, err := cli.NewPlannerContext(cfg.DataDir, cfg.Quiet, cfg.Verbose)
	if err != nil {
		return err
	}

	rulesetID := ruleset
	if rulesetID == "" {
		rulesetID = cfg.Ruleset
	}
	rs, err := ctx.Ruleset(rulesetID)
	if err != nil {
		return err
	}

	fmt.Printf("Available classes under %s:\n\n", rs.Label)
	for _, era := range cli.EraOrder {
		if !ctx.Bundle.Ratings.HasEra(era) {
			continue
		}
		classes := ctx.Bundle.Ratings.AvailableClasses(era, rs)
		fmt.Printf("  %-8s %s\n", era, strings.Join(classes, ", "))
	}
	return nil
}
