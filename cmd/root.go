package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var (
	dataDir      string
	quiet        bool
	verbose      bool
	outputFormat string
	outputFile   string
)

// exitFunc is swapped out by tests.
var exitFunc = os.Exit

var rootCmd = &cobra.Command{
	Use:   "boxplanner",
	Short: "Boxplanner - multibox team composition recommendations for EverQuest",
	Long: `Boxplanner recommends fixed-size multibox team compositions of EverQuest
class archetypes for a given era, server ruleset and playstyle.

By default, boxplanner runs the recommend command with configured defaults.
Use specialized commands for curated defaults, meta builds and diagnostics.`,
	Run: func(cmd *cobra.Command, args []string) {
		if err := runRecommend(); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			exitFunc(1)
		}
	},
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVarP(&dataDir, "data", "d", "", "Data directory (default: ./data)")
	rootCmd.PersistentFlags().BoolVarP(&quiet, "quiet", "q", false, "Suppress non-essential output")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose output")
	rootCmd.PersistentFlags().StringVarP(&outputFormat, "format", "f", "console", "Output format for reports (console|json|markdown)")
	rootCmd.PersistentFlags().StringVarP(&outputFile, "output", "o", "", "Output file for reports (requires --format)")

	viper.BindPFlag("dataDir", rootCmd.PersistentFlags().Lookup("data"))
	viper.BindPFlag("quiet", rootCmd.PersistentFlags().Lookup("quiet"))
	viper.BindPFlag("verbose", rootCmd.PersistentFlags().Lookup("verbose"))
	viper.BindPFlag("format", rootCmd.PersistentFlags().Lookup("format"))
	viper.BindPFlag("output", rootCmd.PersistentFlags().Lookup("output"))
}

func initConfig() {
	configPaths := []string{".boxplannerrc.json", ".boxplannerrc.yaml", ".boxplannerrc.yml"}
	for _, path := range configPaths {
		if _, err := os.Stat(path); err == nil {
			viper.SetConfigFile(path)
			if err := viper.ReadInConfig(); err != nil {
				fmt.Fprintf(os.Stderr, "Error reading config file: %v\n", err)
				os.Exit(1)
			}
			break
		}
	}
}
