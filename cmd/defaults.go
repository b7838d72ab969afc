package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/dotcommander/boxplanner/internal/cli"
)

var defaultsCmd = &cobra.Command{
	Use:   "defaults",
	Short: "Show curated default comps for an era and box size",
	Long: `The defaults command lists the curated default comps for the requested era
and box size, filtered to classes available under the active ruleset. These
are the same comps the recommend command falls back to when no generated
comp survives the constraints.`,
	Run: func(cmd *cobra.Command, args []string) {
		if err := runDefaults(); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			exitFunc(1)
		}
	},
}

func init() {
	rootCmd.AddCommand(defaultsCmd)
	addRequestFlags(defaultsCmd)
}

func runDefaults() error {
	cfg, ctx, err := loadPlanner()
	if err != nil {
		return err
	}
	opts := requestOptions(cfg)

	available, err := ctx.AvailableClasses(opts.Era, opts.Ruleset)
	if err != nil {
		return err
	}
	availableSet := make(map[string]bool, len(available))
	for _, class := range available {
		availableSet[class] = true
	}

	var shown int
	for _, entry := range ctx.DefaultComps(opts.Era, opts.BoxSize) {
		playable := true
		for _, class := range entry.Classes {
			if !availableSet[class] {
				playable = false
				break
			}
		}
		if !playable {
			continue
		}
		if shown == 0 {
			fmt.Printf("Default comps for %s, %d-box:\n\n", cli.EraLabel(opts.Era), opts.BoxSize)
		}
		shown++
		fmt.Printf("  #%d %s\n", entry.Rank, strings.Join(entry.Classes, " · "))
	}
	if shown == 0 {
		fmt.Printf("No curated defaults playable in %s at %d boxes under this ruleset.\n",
			cli.EraLabel(opts.Era), opts.BoxSize)
	}
	return nil
}
