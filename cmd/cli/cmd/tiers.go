// Package cmd - tiers command
package cmd

import (
	"github.com/spf13/cobra"

	"enterprise-quote/core/output"
	"enterprise-quote/internal/config"
)

var (
	tiersBook   bookFlags
	tiersFormat string
)

// tiersCmd prints the tier table of a price book
var tiersCmd = &cobra.Command{
	Use:   "tiers",
	Short: "Show the volume tiers of a price book",
	Long: `Show each tier's volume range, price per 1,000, included volume and
platform fee.

Examples:
  enterprise-quote tiers
  enterprise-quote tiers --preset enterprise-step --format json
  enterprise-quote tiers --pricebook ./book.hcl`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		book, err := tiersBook.load()
		if err != nil {
			return err
		}

		name := tiersFormat
		if name == "" {
			name = config.Get().Output.DefaultFormat
		}
		format, err := output.ParseFormat(name)
		if err != nil {
			return err
		}
		return output.RenderTiers(cmd.OutOrStdout(), format, book.Tiers, book.Currency, colorless())
	},
}

func init() {
	tiersBook.register(tiersCmd)
	tiersCmd.Flags().StringVarP(&tiersFormat, "format", "f", "", "output format (cli, json, yaml, markdown)")
}
