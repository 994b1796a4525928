// Package cmd provides the CLI commands for enterprise-quote.
package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"enterprise-quote/internal/config"
	"enterprise-quote/internal/logging"
)

var (
	cfgFile string
	verbose bool
	noColor bool
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "enterprise-quote",
	Short: "Price enterprise subscriptions from a tiered volume table",
	Long: `enterprise-quote computes subscription quotes from a tiered price book.

A quote combines the platform fee of the matched volume tier, a progressive
usage fee, and any selected modules, configuration options and integrations.

Examples:
  enterprise-quote quote 1,000,000
  enterprise-quote quote 2500000 --select brandProtection --select additionalBrands=3 --yearly
  enterprise-quote quote --slider 35 --format json
  enterprise-quote tiers --pricebook ./book.hcl`,
	SilenceUsage: true,
}

// Execute runs the CLI
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.enterprise-quote.yaml)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose output")
	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "disable colored output")

	// Add subcommands
	rootCmd.AddCommand(quoteCmd)
	rootCmd.AddCommand(tiersCmd)
	rootCmd.AddCommand(sliderCmd)
	rootCmd.AddCommand(presetsCmd)
	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(configCmd)
}

func defaultConfigPath() string {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(homeDir, ".enterprise-quote.yaml")
}

func initConfig() {
	path := cfgFile
	if path == "" {
		path = defaultConfigPath()
	}

	cfg, err := config.Load(path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}
	config.Set(cfg)

	// Initialize logging
	if verbose {
		cfg.Logging.Level = "debug"
	}
	if err := logging.Initialize(cfg.Logging); err != nil {
		fmt.Fprintf(os.Stderr, "Error initializing logging: %v\n", err)
	}

	if cfgFile != "" && !config.Exists(cfgFile) {
		logging.Warn("Config file not found, using defaults", zap.String("path", cfgFile))
	}
}

// colorless reports whether ANSI colors are disabled by flag or config
func colorless() bool {
	return noColor || config.Get().Output.NoColor
}
