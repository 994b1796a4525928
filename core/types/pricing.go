// Package types - Pricing types
package types

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// Tier is one contiguous band of the volume axis
type Tier struct {
	// Label is the display name (e.g. "Tier 2")
	Label string `json:"label" yaml:"label"`

	// Min is the first volume in the band (inclusive)
	Min int64 `json:"min" yaml:"min"`

	// Max is the last volume in the band (inclusive)
	Max int64 `json:"max" yaml:"max"`

	// PricePer1000 is the yearly marginal rate per 1,000 units in this band
	PricePer1000 decimal.Decimal `json:"price_per_1000" yaml:"price_per_1000"`

	// Inclusive is the volume allowance bundled with the platform license
	Inclusive int64 `json:"inclusive" yaml:"inclusive"`

	// Price is the yearly flat platform price for this band
	Price decimal.Decimal `json:"price" yaml:"price"`
}

// Contains reports whether volume falls inside the band
func (t Tier) Contains(volume int64) bool {
	return volume >= t.Min && volume <= t.Max
}

// Width is the number of integer volumes in the band
func (t Tier) Width() int64 {
	return t.Max - t.Min + 1
}

// Span is the distance between the band's bounds
func (t Tier) Span() int64 {
	return t.Max - t.Min
}

// MaxBound is the largest tier bound or inclusive allowance a table may use.
// Widths and capacities stay exact in int64 and in float64 slider math below it.
const MaxBound int64 = 1 << 53

// TierTable is an ordered, gap-free partition of [0, MaxVolume]
type TierTable []Tier

// Validate checks the partition invariants
func (tt TierTable) Validate() error {
	if len(tt) == 0 {
		return fmt.Errorf("tier table is empty")
	}
	if tt[0].Min != 0 {
		return fmt.Errorf("first tier %q must start at 0, starts at %d", tt[0].Label, tt[0].Min)
	}
	for i, t := range tt {
		if t.Min > t.Max {
			return fmt.Errorf("tier %q: min %d exceeds max %d", t.Label, t.Min, t.Max)
		}
		if t.PricePer1000.IsNegative() || t.Price.IsNegative() {
			return fmt.Errorf("tier %q: prices must not be negative", t.Label)
		}
		if t.Inclusive < 0 {
			return fmt.Errorf("tier %q: inclusive volume must not be negative", t.Label)
		}
		if t.Max > MaxBound || t.Inclusive > MaxBound {
			return fmt.Errorf("tier %q: bounds and inclusive volume must not exceed %d", t.Label, MaxBound)
		}
		if i > 0 && tt[i-1].Max+1 != t.Min {
			return fmt.Errorf("tier %q must start at %d, starts at %d", t.Label, tt[i-1].Max+1, t.Min)
		}
	}
	return nil
}

// MaxVolume is the largest volume the table covers
func (tt TierTable) MaxVolume() int64 {
	if len(tt) == 0 {
		return 0
	}
	return tt[len(tt)-1].Max
}

// Find returns the index of the tier containing volume, or -1
func (tt TierTable) Find(volume int64) int {
	for i, t := range tt {
		if t.Contains(volume) {
			return i
		}
	}
	return -1
}

// CountReached counts the tiers whose Min is at or below volume
func (tt TierTable) CountReached(volume int64) int {
	n := 0
	for _, t := range tt {
		if t.Min <= volume {
			n++
		}
	}
	return n
}
