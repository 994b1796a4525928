// Package cmd - presets command
package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"enterprise-quote/core/output"
	"enterprise-quote/core/presets"
	"enterprise-quote/core/types"
	"enterprise-quote/core/ui"
)

var presetsCatalog bool

// presetsCmd lists the built-in price books
var presetsCmd = &cobra.Command{
	Use:   "presets",
	Short: "List the built-in price books",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		w := ui.NewWriter(cmd.OutOrStdout(), colorless())
		w.Header("Presets")

		tbl := w.NewTable("Name", "Policy", "Tiers", "Modules", "Configuration", "Integrations", "Description")
		for _, name := range presets.Names() {
			book, err := presets.Get(name)
			if err != nil {
				return err
			}
			stats := book.Catalog.Stats()
			tbl.AddRow(name, book.Policy.Name(), fmt.Sprintf("%d", len(book.Tiers)),
				fmt.Sprintf("%d", stats.ByBucket[types.BucketModule].Total),
				fmt.Sprintf("%d", stats.ByBucket[types.BucketConfiguration].Total),
				fmt.Sprintf("%d", stats.ByBucket[types.BucketIntegration].Total),
				book.Description)
		}
		tbl.Render()

		if !presetsCatalog {
			return nil
		}
		for _, name := range presets.Names() {
			book, err := presets.Get(name)
			if err != nil {
				return err
			}
			w.Header("Catalog · " + name)
			for _, bucket := range types.Buckets {
				entries := book.Catalog.ListByBucket(bucket)
				if len(entries) == 0 {
					continue
				}
				w.SubHeader(bucket.Title())
				items := w.NewTable("ID", "Name", "Kind", "Price", "Badge").AlignRight(3)
				for _, a := range entries {
					badge := ""
					if a.Badge != nil {
						badge = w.Color(ui.BadgeColor(a.Badge.Color), a.Badge.Label)
					}
					price := output.Money(book.Currency, a.UnitPrice) + " " + a.Period.Suffix()
					if a.Kind == types.KindPerUnit {
						price += " each"
					}
					items.AddRow(a.ID, a.Name, string(a.Kind), price, badge)
				}
				items.Render()
				w.Println("")
			}
		}
		return nil
	},
}

func init() {
	presetsCmd.Flags().BoolVar(&presetsCatalog, "catalog", false, "also list every preset's options")
}
