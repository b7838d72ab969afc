package output

import (
	"fmt"
	"os"
	"time"

	"github.com/goccy/go-json"

	"github.com/dotcommander/boxplanner/internal/cli"
)

// JSONFormatter formats output as JSON
type JSONFormatter struct {
	quiet      bool
	indent     bool
	outputFile string
}

// NewJSONFormatter creates a new JSONFormatter
func NewJSONFormatter(quiet bool, indent bool, outputFile string) *JSONFormatter {
	return &JSONFormatter{
		quiet:      quiet,
		indent:     indent,
		outputFile: outputFile,
	}
}

// JSONReport represents the complete JSON report structure
type JSONReport struct {
	Header  JSONHeader   `json:"header"`
	Summary *cli.Summary `json:"summary"`
}

// JSONHeader contains report metadata
type JSONHeader struct {
	Tool      string `json:"tool"`
	Version   string `json:"version"`
	Timestamp string `json:"timestamp"`
}

// Format writes the summary as a JSON report to the output file, or stdout
// when no file is configured.
func (f *JSONFormatter) Format(summary *cli.Summary) error {
	report := JSONReport{
		Header: JSONHeader{
			Tool:      "boxplanner",
			Version:   "1.0.0",
			Timestamp: time.Now().Format(time.RFC3339),
		},
		Summary: summary,
	}

	var jsonBytes []byte
	var err error
	if f.indent {
		jsonBytes, err = json.MarshalIndent(report, "", "  ")
	} else {
		jsonBytes, err = json.Marshal(report)
	}
	if err != nil {
		return fmt.Errorf("error marshaling JSON: %w", err)
	}

	if f.outputFile != "" {
		err = os.WriteFile(f.outputFile, jsonBytes, 0644)
		if err != nil {
			return fmt.Errorf("error writing to file %s: %w", f.outputFile, err)
		}
	} else {
		fmt.Println(string(jsonBytes))
	}

	return nil
}
