// Package cmd - quote command
package cmd

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"enterprise-quote/adapters/export"
	"enterprise-quote/core/input"
	"enterprise-quote/core/output"
	"enterprise-quote/core/pricing"
	"enterprise-quote/core/types"
	"enterprise-quote/internal/config"
	"enterprise-quote/internal/logging"
)

var (
	quoteBook       bookFlags
	quoteSelections []string
	quoteYearly     bool
	quotePeriod     string
	quoteFormat     string
	quoteSlider     float64
	quoteClamp      bool
	quoteTiers      bool
	quoteDetails    bool
	quoteExport     string
)

// quoteCmd represents the quote command
var quoteCmd = &cobra.Command{
	Use:   "quote [volume]",
	Short: "Compute a quote for a volume and a set of options",
	Long: `Compute the platform, usage and option fees for a yearly volume.

The volume accepts thousands separators ("1,000,000", "1 000 000", "1_000_000").
Options are selected by id; per-unit options take a quantity and flat ones an
optional true/false.

Examples:
  enterprise-quote quote 1,000,000
  enterprise-quote quote 750000 -s customerConnection -s customDomain=2
  enterprise-quote quote --slider 60 --yearly --details
  enterprise-quote quote 12000000 --format yaml
  enterprise-quote quote 1000000 --export quote.xlsx`,
	Args: cobra.MaximumNArgs(1),
	RunE: runQuote,
}

func init() {
	quoteBook.register(quoteCmd)
	quoteCmd.Flags().StringArrayVarP(&quoteSelections, "select", "s", nil, "select an option: id, id=true|false or id=quantity (repeatable)")
	quoteCmd.Flags().BoolVarP(&quoteYearly, "yearly", "y", false, "show yearly amounts")
	quoteCmd.Flags().StringVar(&quotePeriod, "period", "", "billing period (monthly, yearly)")
	quoteCmd.Flags().StringVarP(&quoteFormat, "format", "f", "", "output format (cli, json, yaml, markdown)")
	quoteCmd.Flags().Float64Var(&quoteSlider, "slider", 0, "take the volume from a slider position (0-100)")
	quoteCmd.Flags().BoolVar(&quoteClamp, "clamp", false, "clamp an out-of-range volume instead of failing")
	quoteCmd.Flags().BoolVar(&quoteTiers, "tiers", false, "include the tier table")
	quoteCmd.Flags().BoolVarP(&quoteDetails, "details", "d", false, "show the usage walk and option lines")
	quoteCmd.Flags().StringVarP(&quoteExport, "export", "o", "", "also write the quote to an .xlsx file")
}

func runQuote(cmd *cobra.Command, args []string) error {
	cfg := config.Get()

	book, err := quoteBook.load()
	if err != nil {
		return err
	}

	raw := input.Raw{
		Period:     cfg.Pricing.BillingPeriod,
		Selections: quoteSelections,
		Clamp:      quoteClamp,
	}
	if len(args) > 0 {
		raw.Volume = args[0]
	}
	if cmd.Flags().Changed("slider") {
		raw.Slider = &quoteSlider
	}
	if cmd.Flags().Changed("period") {
		raw.Period = quotePeriod
	}
	if quoteYearly {
		raw.Period = string(types.PeriodYearly)
	}

	env, err := input.Normalize(raw, book)
	if err != nil {
		return err
	}
	if env.Clamped {
		logging.Warn("Volume clamped to the price book range",
			zap.String("volume", raw.Volume),
			zap.Int64("clamped", env.Input.Volume))
	}

	engine, err := pricing.NewEngine(book)
	if err != nil {
		return err
	}
	q, err := engine.Compute(env.Input)
	if err != nil {
		return err
	}
	logging.Debug("Quote computed",
		zap.Int64("volume", q.Volume),
		zap.String("tier", q.Tier.Label),
		zap.String("yearly_total", q.Yearly.TotalCost.String()))

	formatName := quoteFormat
	if formatName == "" {
		formatName = cfg.Output.DefaultFormat
	}
	format, err := output.ParseFormat(formatName)
	if err != nil {
		return err
	}

	report := &output.Report{
		Quote:       q,
		Book:        book.Name,
		Currency:    book.Currency,
		Tiers:       book.Tiers,
		Position:    env.Position,
		Clamped:     env.Clamped,
		ShowTiers:   quoteTiers || cfg.Output.ShowTiers,
		ShowDetails: quoteDetails || cfg.Output.ShowDetails,
		NoColor:     colorless(),
	}
	if err := output.Render(cmd.OutOrStdout(), format, report); err != nil {
		return err
	}

	if quoteExport != "" {
		return exportQuote(cmd, report, quoteExport)
	}
	return nil
}

// exportQuote writes report as a workbook; bare file names land in export.directory
func exportQuote(cmd *cobra.Command, report *output.Report, path string) error {
	if filepath.Dir(path) == "." {
		path = filepath.Join(config.Get().Export.Directory, path)
	}

	doc := export.NewDocument(report)
	if err := export.SaveXLSX(path, doc); err != nil {
		logging.Error("Export failed", zap.String("path", path), zap.Error(err))
		return err
	}
	logging.Info("Exported quote", zap.String("path", path), zap.String("reference", doc.Reference.String()))
	fmt.Fprintf(cmd.ErrOrStderr(), "Quote %s written to %s\n", doc.Reference, path)
	return nil
}
