// Package outputters dispatches a recommendation summary to the formatter
// selected by configuration.
package outputters

import (
	"fmt"

	"github.com/dotcommander/boxplanner/internal/cli"
	"github.com/dotcommander/boxplanner/internal/config"
	"github.com/dotcommander/boxplanner/internal/output"
)

// Outputter handles output formatting
type Outputter struct {
	config *config.Config
}

// NewOutputter creates a new Outputter
func NewOutputter(config *config.Config) *Outputter {
	return &Outputter{
		config: config,
	}
}

// Format formats the summary using the requested format.
func (o *Outputter) Format(summary *cli.Summary, format string) error {
	switch format {
	case "console":
		formatter := output.NewConsoleFormatter(o.config.Quiet, o.config.Verbose)
		return formatter.Format(summary)
	case "json":
		formatter := output.NewJSONFormatter(o.config.Quiet, true, o.config.Output)
		return formatter.Format(summary)
	case "markdown":
		formatter := output.NewMarkdownFormatter(o.config.Quiet, o.config.Verbose, o.config.Output)
		return formatter.Format(summary)
	default:
		return fmt.Errorf("unsupported format: %s", format)
	}
}
