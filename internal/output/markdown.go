package output

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/dotcommander/boxplanner/internal/cli"
)

// MarkdownFormatter formats output as Markdown
type MarkdownFormatter struct {
	quiet      bool
	verbose    bool
	outputFile string
}

// NewMarkdownFormatter creates a new MarkdownFormatter
func NewMarkdownFormatter(quiet, verbose bool, outputFile string) *MarkdownFormatter {
	return &MarkdownFormatter{
		quiet:      quiet,
		verbose:    verbose,
		outputFile: outputFile,
	}
}

// Format renders the summary as a Markdown document.
func (f *MarkdownFormatter) Format(summary *cli.Summary) error {
	var builder strings.Builder

	builder.WriteString("# Boxplanner Recommendations\n\n")
	builder.WriteString(fmt.Sprintf("**Generated:** %s\n\n", time.Now().Format("2006-01-02 15:04:05")))

	// Request settings
	builder.WriteString("## Request\n\n")
	builder.WriteString("| Setting | Value |\n")
	builder.WriteString("|---------|-------|\n")
	builder.WriteString(fmt.Sprintf("| Era | %s |\n", summary.EraLabel))
	builder.WriteString(fmt.Sprintf("| Ruleset | %s |\n", summary.RulesetLabel))
	builder.WriteString(fmt.Sprintf("| Box size | %d |\n", summary.BoxSize))
	builder.WriteString(fmt.Sprintf("| Boxing method | %s |\n", cli.BoxingModeLabels[summary.BoxingMode]))
	builder.WriteString(fmt.Sprintf("| Focus | %s |\n", cli.FocusLabels[summary.Focus]))
	builder.WriteString(fmt.Sprintf("| Start | %s |\n", cli.StartLabels[summary.Start]))
	builder.WriteString(fmt.Sprintf("| Active constraints | %d |\n", summary.Constraints))
	builder.WriteString(fmt.Sprintf("| Template | %s |\n", strings.Join(summary.Slots, ", ")))
	builder.WriteString("\n")

	for _, warning := range summary.Warnings {
		builder.WriteString(fmt.Sprintf("> ⚠ %s\n\n", warning))
	}

	// Results
	builder.WriteString("## Results\n\n")
	if len(summary.Results) == 0 {
		builder.WriteString("*No comps matched the constraints.*\n\n")
		if len(summary.Fallback) > 0 {
			builder.WriteString("### Curated defaults\n\n")
			for _, entry := range summary.Fallback {
				builder.WriteString(fmt.Sprintf("%d. %s\n", entry.Rank, strings.Join(entry.Classes, " · ")))
			}
			builder.WriteString("\n")
		}
	} else {
		builder.WriteString("| Rank | Comp | Score |\n")
		builder.WriteString("|------|------|-------|\n")
		for i, result := range summary.Results {
			builder.WriteString(fmt.Sprintf("| %d | %s | %d |\n", i+1, strings.Join(result.Comp, " · "), result.Score))
		}
		builder.WriteString("\n")

		if f.verbose {
			for i, result := range summary.Results {
				if result.Detail == nil {
					continue
				}
				builder.WriteString(fmt.Sprintf("### #%d %s\n\n", i+1, strings.Join(result.Comp, " · ")))
				for _, line := range result.Detail.SummaryLines {
					builder.WriteString(fmt.Sprintf("- %s\n", line))
				}
				builder.WriteString("\n")
			}
		}
	}

	content := builder.String()
	if f.outputFile != "" {
		err := os.WriteFile(f.outputFile, []byte(content), 0644)
		if err != nil {
			return fmt.Errorf("error writing to file %s: %w", f.outputFile, err)
		}
	} else {
		fmt.Print(content)
	}

	return nil
}
