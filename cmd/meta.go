package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/dotcommander/boxplanner/internal/cli"
)

var metaCmd = &cobra.Command{
	Use:   "meta",
	Short: "Show curated meta builds for an era and box size",
	Long: `The meta command lists the hand-curated meta builds for the requested era
and box size, at most five. Meta builds are shown as-is: no availability
filtering, no constraint checks, no scoring.`,
	Run: func(cmd *cobra.Command, args []string) {
		if err := runMeta(); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			exitFunc(1)
		}
	},
}

func init() {
	rootCmd.AddCommand(metaCmd)
	addRequestFlags(metaCmd)
}

func runMeta() error {
	cfg, ctx, err := loadPlanner()
	if err != nil {
		return err
	}
	opts := requestOptions(cfg)
	return printMetaBuilds(ctx, opts.Era, opts.BoxSize)
}

func printMetaBuilds(ctx *cli.PlannerContext, era string, boxSize int) error {
	builds := ctx.MetaBuilds(era, boxSize)
	if len(builds) == 0 {
		fmt.Printf("No meta builds recorded for %s at %d boxes.\n", cli.EraLabel(era), boxSize)
		return nil
	}

	fmt.Printf("Meta builds for %s, %d-box:\n\n", cli.EraLabel(era), boxSize)
	for _, build := range builds {
		fmt.Printf("  #%d %s\n", build.Rank, strings.Join(build.Classes, " · "))
	}
	return nil
}
