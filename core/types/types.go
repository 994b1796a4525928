// Package types defines core domain types shared across all layers.
// This package contains NO business logic - only type definitions and
// the projections that belong to them.
package types

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// BillingPeriod is the resolution a quote is displayed at
type BillingPeriod string

const (
	PeriodMonthly BillingPeriod = "monthly"
	PeriodYearly  BillingPeriod = "yearly"
)

// MonthsPerYear converts between the two billing periods
var MonthsPerYear = decimal.NewFromInt(12)

// String returns the string representation
func (p BillingPeriod) String() string {
	return string(p)
}

// IsValid checks if the period is a known period
func (p BillingPeriod) IsValid() bool {
	switch p {
	case PeriodMonthly, PeriodYearly:
		return true
	default:
		return false
	}
}

// Suffix returns the display suffix ("per month", "per year")
func (p BillingPeriod) Suffix() string {
	if p == PeriodYearly {
		return "per year"
	}
	return "per month"
}

// ToYearly converts an amount expressed in this period to a yearly amount
func (p BillingPeriod) ToYearly(amount decimal.Decimal) decimal.Decimal {
	if p == PeriodYearly {
		return amount
	}
	return amount.Mul(MonthsPerYear)
}

// FromYearly projects a yearly amount into this period.
// Monthly amounts keep full precision; rounding is a presentation concern.
func (p BillingPeriod) FromYearly(yearly decimal.Decimal) decimal.Decimal {
	if p == PeriodYearly {
		return yearly
	}
	return yearly.Div(MonthsPerYear)
}

// ParseBillingPeriod parses "monthly"/"yearly" (and the short forms "month", "year", "m", "y")
func ParseBillingPeriod(s string) (BillingPeriod, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "monthly", "month", "m":
		return PeriodMonthly, nil
	case "yearly", "year", "annual", "y":
		return PeriodYearly, nil
	default:
		return "", fmt.Errorf("unknown billing period %q", s)
	}
}

// Currency is a display currency. Amounts are never converted between
// currencies; switching only swaps the symbol.
type Currency struct {
	Code   string `json:"code" yaml:"code"`
	Symbol string `json:"symbol" yaml:"symbol"`
}

var (
	CurrencyEUR = Currency{Code: "EUR", Symbol: "€"}
	CurrencyUSD = Currency{Code: "USD", Symbol: "$"}
	CurrencyGBP = Currency{Code: "GBP", Symbol: "£"}
)

// String returns the currency code
func (c Currency) String() string {
	return c.Code
}

// ParseCurrency resolves a currency code or symbol
func ParseCurrency(s string) (Currency, error) {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "EUR", "€":
		return CurrencyEUR, nil
	case "USD", "$":
		return CurrencyUSD, nil
	case "GBP", "£":
		return CurrencyGBP, nil
	default:
		return Currency{}, fmt.Errorf("unknown currency %q", s)
	}
}
