package output

import (
	"fmt"

	"github.com/dustin/go-humanize"
	"github.com/shopspring/decimal"

	"enterprise-quote/core/types"
)

// Amount formats a decimal with thousands separators and two places,
// rounding half away from zero: 25251 -> "25,251.00"
func Amount(amount decimal.Decimal) string {
	r := amount.Round(2)
	sign := ""
	if r.IsNegative() {
		sign = "-"
		r = r.Neg()
	}
	whole := r.IntPart()
	frac := r.Sub(decimal.NewFromInt(whole)).StringFixed(2)
	return sign + humanize.Comma(whole) + frac[1:]
}

// Money prefixes Amount with the currency symbol
func Money(cur types.Currency, amount decimal.Decimal) string {
	s := Amount(amount)
	if s[0] == '-' {
		return "-" + cur.Symbol + s[1:]
	}
	return cur.Symbol + s
}

// Volume formats a unit count with thousands separators
func Volume(v int64) string {
	return humanize.Comma(v)
}

// VolumeRange formats a tier's bounds
func VolumeRange(t types.Tier) string {
	return fmt.Sprintf("%s - %s", Volume(t.Min), Volume(t.Max))
}

// Rate formats a price per 1,000 units, keeping up to four places
func Rate(cur types.Currency, rate decimal.Decimal) string {
	r := rate.Round(4)
	if r.Equal(r.Round(2)) {
		return Money(cur, r)
	}
	return cur.Symbol + r.String()
}
