// Package output renders recommendation summaries as styled console text,
// JSON reports or Markdown documents.
package output

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/dotcommander/boxplanner/internal/cli"
)

// ConsoleFormatter formats output for console display
type ConsoleFormatter struct {
	quiet    bool
	verbose  bool
	colorize bool
}

// NewConsoleFormatter creates a new ConsoleFormatter
func NewConsoleFormatter(quiet, verbose bool) *ConsoleFormatter {
	return &ConsoleFormatter{
		quiet:    quiet,
		verbose:  verbose,
		colorize: true,
	}
}

// Format renders the summary: settings line, warnings, ranked result cards
// with score bars, and the defaults fallback when the engine found nothing.
func (f *ConsoleFormatter) Format(summary *cli.Summary) error {
	if f.quiet {
		// Quiet mode: one plain line per result, nothing else.
		for _, result := range summary.Results {
			fmt.Printf("%d\t%s\n", result.Score, strings.Join(result.Comp, " "))
		}
		return nil
	}

	f.printHeader(summary)
	f.printWarnings(summary)

	if len(summary.Results) == 0 {
		f.printFallback(summary)
		return nil
	}

	f.printResults(summary)
	return nil
}

// printHeader prints the active-settings summary line.
func (f *ConsoleFormatter) printHeader(summary *cli.Summary) {
	chips := []string{
		summary.EraLabel,
		fmt.Sprintf("%d-box", summary.BoxSize),
		summary.RulesetLabel,
		cli.BoxingModeLabels[summary.BoxingMode],
		cli.FocusLabels[summary.Focus],
		cli.StartLabels[summary.Start],
	}
	if summary.Constraints > 0 {
		noun := "constraints"
		if summary.Constraints == 1 {
			noun = "constraint"
		}
		chips = append(chips, fmt.Sprintf("%d %s", summary.Constraints, noun))
	}

	line := strings.Join(chips, " | ")
	if f.colorize {
		style := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("12"))
		line = style.Render(line)
	}
	fmt.Println(line)
	fmt.Println()
}

// printWarnings prints request warnings in yellow.
func (f *ConsoleFormatter) printWarnings(summary *cli.Summary) {
	if len(summary.Warnings) == 0 {
		return
	}
	style := lipgloss.NewStyle()
	if f.colorize {
		style = lipgloss.NewStyle().Foreground(lipgloss.Color("3"))
	}
	for _, warning := range summary.Warnings {
		fmt.Printf("%s\n", style.Render("⚠ "+warning))
	}
	fmt.Println()
}

// printResults prints one card per ranked comp.
func (f *ConsoleFormatter) printResults(summary *cli.Summary) {
	topScore := summary.Results[0].Score

	for i, result := range summary.Results {
		medal := rankMedal(i)

		nameStyle := lipgloss.NewStyle()
		if f.colorize {
			nameStyle = lipgloss.NewStyle().Bold(true)
		}
		fmt.Printf("%s %s\n", medal, nameStyle.Render(strings.Join(result.Comp, " · ")))
		fmt.Printf("   Score: %d\n", result.Score)
		fmt.Printf("   %s\n", f.scoreBar(result.Score, topScore))

		if f.verbose && result.Detail != nil {
			for _, line := range result.Detail.SummaryLines {
				fmt.Printf("     %s\n", line)
			}
		}
		fmt.Println()
	}
}

// printFallback prints the curated defaults shown when no generated comp
// survived the filters.
func (f *ConsoleFormatter) printFallback(summary *cli.Summary) {
	fmt.Println("No comps matched your constraints.")
	if len(summary.Fallback) == 0 {
		fmt.Println("No curated defaults match either; try relaxing a constraint.")
		return
	}

	fmt.Println("Curated defaults that fit your filters:")
	fmt.Println()
	for _, entry := range summary.Fallback {
		fmt.Printf("  #%d %s\n", entry.Rank, strings.Join(entry.Classes, " · "))
	}
}

// scoreBar renders a proportional bar for a score relative to the top
// result. Near-top scores are green, close scores yellow, the rest gray.
func (f *ConsoleFormatter) scoreBar(score, topScore int) string {
	const width = 30

	ratio := 1.0
	if topScore > 0 {
		ratio = float64(score) / float64(topScore)
	}
	filled := int(ratio * width)
	if filled < 1 {
		filled = 1
	}
	if filled > width {
		filled = width
	}

	bar := strings.Repeat("█", filled) + strings.Repeat("░", width-filled)
	if !f.colorize {
		return bar
	}

	var style lipgloss.Style
	switch {
	case ratio >= 0.95:
		style = lipgloss.NewStyle().Foreground(lipgloss.Color("10")) // green
	case ratio >= 0.85:
		style = lipgloss.NewStyle().Foreground(lipgloss.Color("3")) // yellow
	default:
		style = lipgloss.NewStyle().Foreground(lipgloss.Color("7")) // gray
	}
	return style.Render(bar)
}

// rankMedal returns the medal emoji for the top three ranks, then #N.
func rankMedal(index int) string {
	switch index {
	case 0:
		return "🥇"
	case 1:
		return "🥈"
	case 2:
		return "🥉"
	}
	return fmt.Sprintf("#%d", index+1)
}
