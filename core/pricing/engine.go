// Package pricing implements the tiered quote engine.
// The engine is a pure function of a price book and a QuoteInput: it holds no
// mutable state, never retains its input, and is safe for concurrent use.
package pricing

import (
	"enterprise-quote/core/types"
	qerrors "enterprise-quote/internal/errors"
)

// Engine prices quotes against one price book
type Engine struct {
	book *PriceBook
}

// NewEngine validates the book and creates an engine
func NewEngine(book *PriceBook) (*Engine, error) {
	if err := book.Validate(); err != nil {
		return nil, err
	}
	return &Engine{book: book}, nil
}

// Book returns the engine's price book
func (e *Engine) Book() *PriceBook {
	return e.book
}

// Compute prices one input snapshot.
// All amounts are computed at yearly resolution; the returned quote projects
// them into in.BillingPeriod on demand.
func (e *Engine) Compute(in types.QuoteInput) (*types.Quote, error) {
	period := in.BillingPeriod
	if period == "" {
		period = types.PeriodMonthly
	}
	if !period.IsValid() {
		return nil, qerrors.Newf(qerrors.TypeInput, "unknown billing period %q", in.BillingPeriod)
	}

	tiers := e.book.Tiers
	if in.Volume < 0 || in.Volume > tiers.MaxVolume() {
		return nil, qerrors.OutOfRangeVolume(in.Volume, tiers.MaxVolume())
	}

	matched := tiers.Find(in.Volume)
	if matched < 0 {
		// unreachable for a validated table
		return nil, qerrors.Internal("no tier matched", qerrors.OutOfRangeVolume(in.Volume, tiers.MaxVolume()))
	}

	fees, items, err := BucketFees(e.book.Catalog, in.Selections)
	if err != nil {
		return nil, err
	}

	variable, usage := VariableFee(tiers, matched, in.Volume)

	tier := tiers[matched]
	q := &types.Quote{
		Volume: in.Volume,
		Period: period,
		Policy: e.book.Policy.Name(),
		Tier: types.MatchedTier{
			Index:        matched,
			Label:        tier.Label,
			Min:          tier.Min,
			Max:          tier.Max,
			Inclusive:    tier.Inclusive,
			PricePer1000: tier.PricePer1000,
		},
		Yearly: types.Breakdown{
			PlatformFee:      e.book.Policy.PlatformFee(tiers, matched, in.Volume),
			VariableFee:      variable,
			AddOnFee:         fees[types.BucketModule],
			ConfigurationFee: fees[types.BucketConfiguration],
			IntegrationFee:   fees[types.BucketIntegration],
		},
		Usage: usage,
		Items: items,
	}
	q.Yearly.TotalCost = q.Yearly.Sum()

	return q, nil
}

// ComputeQuote prices one input against book without keeping an engine around
func ComputeQuote(book *PriceBook, in types.QuoteInput) (*types.Quote, error) {
	engine, err := NewEngine(book)
	if err != nil {
		return nil, err
	}
	return engine.Compute(in)
}
