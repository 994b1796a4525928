// Package cmd - price book selection shared by the commands
package cmd

import (
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"enterprise-quote/adapters/hcl"
	"enterprise-quote/core/presets"
	"enterprise-quote/core/pricing"
	"enterprise-quote/core/types"
	"enterprise-quote/internal/config"
	qerrors "enterprise-quote/internal/errors"
	"enterprise-quote/internal/logging"
)

// bookFlags selects a price book and its display currency
type bookFlags struct {
	preset    string
	pricebook string
	currency  string
}

func (f *bookFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&f.preset, "preset", "p", "", "built-in price book (see 'presets')")
	cmd.Flags().StringVar(&f.pricebook, "pricebook", "", "HCL price book file; overrides --preset")
	cmd.Flags().StringVar(&f.currency, "currency", "", "display currency (EUR, USD, GBP)")
}

// load resolves flags over configuration: file, then preset
func (f *bookFlags) load() (*pricing.PriceBook, error) {
	cfg := config.Get().Pricing

	path := f.pricebook
	preset := f.preset
	if path == "" && preset == "" {
		path = cfg.PriceBookPath
		preset = cfg.Preset
	}

	var (
		book *pricing.PriceBook
		err  error
	)
	if path != "" {
		book, err = hcl.LoadFile(path)
		if err != nil {
			return nil, err
		}
		logging.Debug("Loaded price book", zap.String("path", path), zap.String("name", book.Name),
			zap.Int("tiers", len(book.Tiers)), zap.Int("addons", book.Catalog.Len()))
	} else {
		if preset == "" {
			preset = presets.Default
		}
		book, err = presets.Get(preset)
		if err != nil {
			return nil, err
		}
		logging.Debug("Using preset", zap.String("preset", preset))
	}

	currency := f.currency
	if currency == "" {
		currency = cfg.Currency
	}
	if currency != "" {
		c, err := types.ParseCurrency(currency)
		if err != nil {
			return nil, qerrors.Wrap(qerrors.TypeInput, "currency", err)
		}
		book.Currency = c
	}

	return book, nil
}
