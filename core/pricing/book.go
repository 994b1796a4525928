// Package pricing - Price books
package pricing

import (
	"fmt"

	"enterprise-quote/core/catalog"
	"enterprise-quote/core/types"
	qerrors "enterprise-quote/internal/errors"
)

// PriceBook is everything an engine needs to price a quote.
// Calculator variants differ only in their price book.
type PriceBook struct {
	// Name identifies the book (preset name or file name)
	Name string

	// Description is shown when listing presets
	Description string

	// Currency is the display currency
	Currency types.Currency

	// Tiers partitions the volume axis
	Tiers types.TierTable

	// Policy computes the platform fee
	Policy PlatformPolicy

	// Catalog holds modules, configuration options and integrations
	Catalog *catalog.Catalog
}

// Validate checks the book is usable by an engine
func (b *PriceBook) Validate() error {
	if b == nil {
		return qerrors.New(qerrors.TypePricing, "price book is nil")
	}
	if err := b.Tiers.Validate(); err != nil {
		return qerrors.Pricing(fmt.Sprintf("price book %q: invalid tier table", b.Name), err)
	}
	if b.Policy == nil {
		return qerrors.Newf(qerrors.TypePricing, "price book %q: no platform policy", b.Name)
	}
	if b.Catalog == nil {
		return qerrors.Newf(qerrors.TypePricing, "price book %q: no catalog", b.Name)
	}
	return nil
}

// MaxVolume is the largest volume the book can price
func (b *PriceBook) MaxVolume() int64 {
	return b.Tiers.MaxVolume()
}
