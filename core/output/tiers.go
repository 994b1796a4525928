package output

import (
	"encoding/json"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"

	"enterprise-quote/core/types"
	"enterprise-quote/core/ui"
)

// RenderTiers writes a tier table on its own, without a quote
func RenderTiers(w io.Writer, format Format, tiers types.TierTable, cur types.Currency, noColor bool) error {
	switch format {
	case FormatCLI:
		RenderTierTable(ui.NewWriter(w, noColor), tiers, cur, -1)
		return nil
	case FormatJSON:
		encoder := json.NewEncoder(w)
		encoder.SetIndent("", "  ")
		return encoder.Encode(TierViews(tiers))
	case FormatYAML:
		encoder := yaml.NewEncoder(w)
		encoder.SetIndent(2)
		if err := encoder.Encode(TierViews(tiers)); err != nil {
			return err
		}
		return encoder.Close()
	case FormatMarkdown:
		fmt.Fprintln(w, "| Tier | Volume | Price per 1,000 | Includes | Platform fee |")
		fmt.Fprintln(w, "|------|--------|----------------:|---------:|-------------:|")
		for _, t := range tiers {
			fmt.Fprintf(w, "| %s | %s | %s | %s | %s |\n",
				t.Label, VolumeRange(t), Rate(cur, t.PricePer1000), Volume(t.Inclusive), Money(cur, t.Price))
		}
		return nil
	}
	return fmt.Errorf("unsupported format %q", format)
}
