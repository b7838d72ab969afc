package cmd

import (
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/spf13/cobra"

	"github.com/dotcommander/boxplanner/internal/recommend"
	"github.com/dotcommander/boxplanner/internal/template"
	"github.com/dotcommander/boxplanner/internal/types"
)

var slotsCmd = &cobra.Command{
	Use:   "slots",
	Short: "Show the resolved slot template and constraint forcing",
	Long: `The slots command is a diagnostic view: it resolves the slot template for
the requested box size and playstyle, then shows which slots the active
constraints would be forced into and the classes each forced slot allows.`,
	Run: func(cmd *cobra.Command, args []string) {
		if err := runSlots(); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			exitFunc(1)
		}
	},
}

func init() {
	rootCmd.AddCommand(slotsCmd)
	addRequestFlags(slotsCmd)
}

func runSlots() error {
	cfg, ctx, err := loadPlanner()
	if err != nil {
		return err
	}
	opts := requestOptions(cfg)

	available, err := ctx.AvailableClasses(opts.Era, opts.Ruleset)
	if err != nil {
		return err
	}

	effectiveCharm := opts.Charm && opts.BoxSize >= 3
	hardcore := opts.Focus == types.FocusSoloRaid && opts.BoxSize >= 4
	slots := template.ForRequest(opts.BoxSize, opts.Focus, opts.TwoBoxMode, opts.KiteStyle, effectiveCharm)

	fmt.Printf("Template (%d-box, %s): %s\n", opts.BoxSize, opts.Focus, strings.Join(slots, ", "))
	if hardcore {
		fmt.Println("Hardcore focus: healer, slow and cc slots are locked to Cleric, Shaman and Bard.")
	}

	constraints := recommend.Constraints{
		Ports:    opts.Ports,
		RunSpeed: opts.RunSpeed,
		Charm:    effectiveCharm,
		PetHeavy: opts.PetHeavy,
	}
	// Same guaranteed-class set the engine derives, so the view matches what
	// a recommendation run would actually force.
	guaranteed := recommend.GuaranteedClasses(slots, available, effectiveCharm, hardcore)
	forced := recommend.ForceConstraintsIntoSlots(slots, available, constraints, guaranteed, hardcore)
	if len(forced) == 0 {
		fmt.Println("No constraint forcing required.")
		return nil
	}

	indices := make([]int, 0, len(forced))
	for i := range forced {
		indices = append(indices, i)
	}
	sort.Ints(indices)
	for _, i := range indices {
		fmt.Printf("Slot %d (%s) restricted to: %s\n", i+1, slots[i], strings.Join(forced[i], ", "))
	}
	return nil
}
