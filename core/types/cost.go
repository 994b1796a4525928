// Package types - Quote result types
package types

import "github.com/shopspring/decimal"

// Breakdown is the fee split of a quote for one billing period
type Breakdown struct {
	// PlatformFee is the flat license fee of the matched tier
	PlatformFee decimal.Decimal `json:"platform_fee" yaml:"platform_fee"`

	// VariableFee is the progressive usage fee
	VariableFee decimal.Decimal `json:"variable_fee" yaml:"variable_fee"`

	// AddOnFee is the module bucket
	AddOnFee decimal.Decimal `json:"addon_fee" yaml:"addon_fee"`

	// ConfigurationFee is the configuration bucket
	ConfigurationFee decimal.Decimal `json:"configuration_fee" yaml:"configuration_fee"`

	// IntegrationFee is the integration bucket
	IntegrationFee decimal.Decimal `json:"integration_fee" yaml:"integration_fee"`

	// TotalCost is the sum of all buckets
	TotalCost decimal.Decimal `json:"total_cost" yaml:"total_cost"`
}

// Sum adds the five buckets
func (b Breakdown) Sum() decimal.Decimal {
	return b.PlatformFee.
		Add(b.VariableFee).
		Add(b.AddOnFee).
		Add(b.ConfigurationFee).
		Add(b.IntegrationFee)
}

// Bucket returns the fee accounted in an add-on bucket
func (b Breakdown) Bucket(bucket Bucket) decimal.Decimal {
	switch bucket {
	case BucketModule:
		return b.AddOnFee
	case BucketConfiguration:
		return b.ConfigurationFee
	case BucketIntegration:
		return b.IntegrationFee
	default:
		return decimal.Zero
	}
}

// In projects a yearly breakdown into period.
// The total is re-summed from the projected buckets so it stays additive.
func (b Breakdown) In(period BillingPeriod) Breakdown {
	out := Breakdown{
		PlatformFee:      period.FromYearly(b.PlatformFee),
		VariableFee:      period.FromYearly(b.VariableFee),
		AddOnFee:         period.FromYearly(b.AddOnFee),
		ConfigurationFee: period.FromYearly(b.ConfigurationFee),
		IntegrationFee:   period.FromYearly(b.IntegrationFee),
	}
	out.TotalCost = out.Sum()
	return out
}

// Round rounds every bucket half away from zero; for presentation only
func (b Breakdown) Round(places int32) Breakdown {
	return Breakdown{
		PlatformFee:      b.PlatformFee.Round(places),
		VariableFee:      b.VariableFee.Round(places),
		AddOnFee:         b.AddOnFee.Round(places),
		ConfigurationFee: b.ConfigurationFee.Round(places),
		IntegrationFee:   b.IntegrationFee.Round(places),
		TotalCost:        b.TotalCost.Round(places),
	}
}

// MatchedTier identifies the tier a volume fell into
type MatchedTier struct {
	Index        int             `json:"index" yaml:"index"`
	Label        string          `json:"label" yaml:"label"`
	Min          int64           `json:"min" yaml:"min"`
	Max          int64           `json:"max" yaml:"max"`
	Inclusive    int64           `json:"inclusive" yaml:"inclusive"`
	PricePer1000 decimal.Decimal `json:"price_per_1000" yaml:"price_per_1000"`
}

// UsageLine is the part of the volume charged at one tier's rate
type UsageLine struct {
	Tier         string          `json:"tier" yaml:"tier"`
	Units        int64           `json:"units" yaml:"units"`
	PricePer1000 decimal.Decimal `json:"price_per_1000" yaml:"price_per_1000"`

	// Amount is yearly
	Amount decimal.Decimal `json:"amount" yaml:"amount"`
}

// LineItem is one add-on contributing to a bucket
type LineItem struct {
	ID       string `json:"id" yaml:"id"`
	Name     string `json:"name" yaml:"name"`
	Bucket   Bucket `json:"bucket" yaml:"bucket"`
	Kind     Kind   `json:"kind" yaml:"kind"`
	Quantity int64  `json:"quantity" yaml:"quantity"`

	// UnitPrice and Amount are yearly
	UnitPrice decimal.Decimal `json:"unit_price" yaml:"unit_price"`
	Amount    decimal.Decimal `json:"amount" yaml:"amount"`
}

// Quote is the result of one pricing computation.
// Amounts are held at yearly resolution; projections derive the rest.
type Quote struct {
	// Volume is the priced volume
	Volume int64 `json:"volume" yaml:"volume"`

	// Period is the period the caller asked to display
	Period BillingPeriod `json:"period" yaml:"period"`

	// Policy names the platform fee policy used
	Policy string `json:"policy" yaml:"policy"`

	// Tier is the matched tier
	Tier MatchedTier `json:"tier" yaml:"tier"`

	// Yearly is the canonical breakdown
	Yearly Breakdown `json:"yearly" yaml:"yearly"`

	// Usage lists the tier-by-tier usage walk
	Usage []UsageLine `json:"usage,omitempty" yaml:"usage,omitempty"`

	// Items lists every contributing add-on
	Items []LineItem `json:"items,omitempty" yaml:"items,omitempty"`
}

// ToYearly returns the yearly breakdown
func (q *Quote) ToYearly() Breakdown {
	return q.Yearly
}

// ToMonthly returns the breakdown divided by 12
func (q *Quote) ToMonthly() Breakdown {
	return q.Yearly.In(PeriodMonthly)
}

// Fees returns the breakdown in the requested display period; monthly when unset
func (q *Quote) Fees() Breakdown {
	period := q.Period
	if !period.IsValid() {
		period = PeriodMonthly
	}
	return q.Yearly.In(period)
}

// ItemsIn returns the line items accounted in bucket
func (q *Quote) ItemsIn(bucket Bucket) []LineItem {
	var items []LineItem
	for _, it := range q.Items {
		if it.Bucket == bucket {
			items = append(items, it)
		}
	}
	return items
}

// RatePer1000 is the yearly total per 1,000 units of volume
func (q *Quote) RatePer1000() decimal.Decimal {
	if q.Volume <= 0 {
		return decimal.Zero
	}
	return q.Yearly.TotalCost.Div(decimal.NewFromInt(q.Volume).Div(decimal.NewFromInt(1000)))
}
