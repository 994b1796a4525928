// Package pricing - Progressive usage pricing
package pricing

import (
	"github.com/shopspring/decimal"

	"enterprise-quote/core/types"
)

var perThousand = decimal.NewFromInt(1000)

// VariableFee walks the tiers from lowest to highest, consuming volume against
// each band's capacity and charging every band at its own rate.
// The matched tier's capacity is extended by its inclusive allowance, so the
// walk always ends inside the matched tier.
func VariableFee(tiers types.TierTable, matched int, volume int64) (decimal.Decimal, []types.UsageLine) {
	if volume <= 0 || len(tiers) == 0 {
		return decimal.Zero, nil
	}

	total := decimal.Zero
	remaining := volume
	var lines []types.UsageLine

	for i, tier := range tiers {
		if remaining <= 0 {
			break
		}

		capacity := tier.Width()
		if i == matched {
			capacity += tier.Inclusive
		}
		consumed := min(remaining, capacity)
		remaining -= consumed

		amount := tier.PricePer1000.Mul(decimal.NewFromInt(consumed)).Div(perThousand)
		total = total.Add(amount)
		lines = append(lines, types.UsageLine{
			Tier:         tier.Label,
			Units:        consumed,
			PricePer1000: tier.PricePer1000,
			Amount:       amount,
		})
	}

	return total, lines
}
