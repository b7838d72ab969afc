// Package config loads boxplanner configuration from config files,
// environment variables and flag bindings via viper.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/goccy/go-json"
	"github.com/spf13/viper"
)

// Config represents the boxplanner configuration.
type Config struct {
	DataDir string `mapstructure:"dataDir"`
	Format  string `mapstructure:"format"`
	Output  string `mapstructure:"output"`
	Quiet   bool   `mapstructure:"quiet"`
	Verbose bool   `mapstructure:"verbose"`
	Limit   int    `mapstructure:"limit"`
	Era     string `mapstructure:"era"`
	Ruleset string `mapstructure:"ruleset"`
}

// LoadConfig loads configuration from defaults, config files, environment
// and any bound flags. dataDir overrides the configured data directory when
// non-empty.
func LoadConfig(dataDir string) (*Config, error) {
	viper.SetDefault("dataDir", "data")
	viper.SetDefault("format", "console")
	viper.SetDefault("quiet", false)
	viper.SetDefault("verbose", false)
	viper.SetDefault("limit", 15)
	viper.SetDefault("era", "ckv")
	viper.SetDefault("ruleset", "frostreaver")

	configPaths := []string{".boxplannerrc.json", ".boxplannerrc.yaml", ".boxplannerrc.yml"}
	for _, path := range configPaths {
		viper.SetConfigFile(path)
		if err := viper.ReadInConfig(); err == nil {
			break
		}
	}

	viper.SetEnvPrefix("BOXPLANNER")
	viper.AutomaticEnv()

	var config Config
	if err := viper.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("error unmarshaling config: %w", err)
	}

	if dataDir != "" {
		config.DataDir = dataDir
	}

	if err := validateConfig(&config); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return &config, nil
}

// validateConfig validates the configuration.
func validateConfig(config *Config) error {
	if config.Format != "console" && config.Format != "json" && config.Format != "markdown" {
		return fmt.Errorf("invalid format: %s. Must be 'console', 'json', or 'markdown'", config.Format)
	}
	if config.Limit < 1 {
		return fmt.Errorf("limit must be at least 1")
	}
	if config.Format != "console" && config.Output == "" {
		return fmt.Errorf("output file is required when format is not 'console'")
	}
	return nil
}

// SaveConfig saves the current configuration to a file.
func SaveConfig(config *Config, path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("error creating directory: %w", err)
	}

	jsonData, err := json.MarshalIndent(config, "", "  ")
	if err != nil {
		return fmt.Errorf("error marshaling config: %w", err)
	}

	if err := os.WriteFile(path, jsonData, 0644); err != nil {
		return fmt.Errorf("error writing config file: %w", err)
	}
	return nil
}
