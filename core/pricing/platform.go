// Package pricing - Platform fee policies
package pricing

import (
	"fmt"

	"github.com/shopspring/decimal"

	"enterprise-quote/core/types"
)

const (
	// PolicyTierPrice charges the matched tier's flat price
	PolicyTierPrice = "tier_price"

	// PolicyStepMultiplier charges a base fee for every tier reached
	PolicyStepMultiplier = "step_multiplier"
)

// PlatformPolicy turns a matched tier into a yearly platform fee
type PlatformPolicy interface {
	// Name identifies the policy in price books and output
	Name() string

	// PlatformFee returns the yearly fee for volume, which falls in tiers[matched]
	PlatformFee(tiers types.TierTable, matched int, volume int64) decimal.Decimal
}

// TierPricePolicy looks up the precomputed flat price of the matched tier
type TierPricePolicy struct{}

// Name implements PlatformPolicy
func (TierPricePolicy) Name() string {
	return PolicyTierPrice
}

// PlatformFee implements PlatformPolicy
func (TierPricePolicy) PlatformFee(tiers types.TierTable, matched int, _ int64) decimal.Decimal {
	return tiers[matched].Price
}

// StepMultiplierPolicy adds BaseFee for each tier whose floor the volume has reached,
// so crossing into tier N costs N increments.
type StepMultiplierPolicy struct {
	BaseFee decimal.Decimal
}

// Name implements PlatformPolicy
func (StepMultiplierPolicy) Name() string {
	return PolicyStepMultiplier
}

// PlatformFee implements PlatformPolicy
func (p StepMultiplierPolicy) PlatformFee(tiers types.TierTable, _ int, volume int64) decimal.Decimal {
	return p.BaseFee.Mul(decimal.NewFromInt(int64(tiers.CountReached(volume))))
}

// PolicyByName builds a policy from its price-book name.
// baseFee is only used by the step multiplier, which requires it.
func PolicyByName(name string, baseFee decimal.Decimal) (PlatformPolicy, error) {
	switch name {
	case "", PolicyTierPrice:
		return TierPricePolicy{}, nil
	case PolicyStepMultiplier:
		if !baseFee.IsPositive() {
			return nil, fmt.Errorf("%s needs a positive base fee, got %s", PolicyStepMultiplier, baseFee)
		}
		return StepMultiplierPolicy{BaseFee: baseFee}, nil
	default:
		return nil, fmt.Errorf("unknown platform policy %q", name)
	}
}
