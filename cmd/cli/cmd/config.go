// Package cmd - config commands
package cmd

import (
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	"enterprise-quote/core/ui"
	"enterprise-quote/internal/config"
	qerrors "enterprise-quote/internal/errors"
	"enterprise-quote/internal/logging"
)

var configForce bool

// configCmd manages configuration
var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage configuration",
	Long: `Manage configuration.

Settings are read from the config file and can be overridden with QUOTE_*
environment variables, e.g. QUOTE_PRICING_PRESET=enterprise-step.`,
	Run: func(cmd *cobra.Command, args []string) {
		_ = cmd.Help()
	},
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the effective configuration",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		encoder := yaml.NewEncoder(cmd.OutOrStdout())
		encoder.SetIndent(2)
		if err := encoder.Encode(config.Get()); err != nil {
			return err
		}
		return encoder.Close()
	},
}

var configInitCmd = &cobra.Command{
	Use:   "init [path]",
	Short: "Write a default config file",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		path := defaultConfigPath()
		if len(args) > 0 {
			path = args[0]
		}
		if path == "" {
			return qerrors.New(qerrors.TypeConfig, "no home directory; pass a path")
		}

		if _, err := os.Stat(path); err == nil && !configForce {
			return qerrors.Newf(qerrors.TypeConfig, "%s already exists (use --force to overwrite)", path)
		}
		if err := config.Default().Save(path); err != nil {
			return err
		}
		logging.Debug("Config written", zap.String("path", path))
		ui.NewWriter(cmd.OutOrStdout(), colorless()).Success("Wrote %s", path)
		return nil
	},
}

func init() {
	configInitCmd.Flags().BoolVar(&configForce, "force", false, "overwrite an existing file")
	configCmd.AddCommand(configShowCmd)
	configCmd.AddCommand(configInitCmd)
}
