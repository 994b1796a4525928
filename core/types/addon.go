// Package types - Add-on and selection types
package types

import (
	"fmt"
	"sort"

	"github.com/shopspring/decimal"
)

// Bucket is the display bucket an add-on is accounted in
type Bucket string

const (
	BucketModule        Bucket = "module"
	BucketConfiguration Bucket = "configuration"
	BucketIntegration   Bucket = "integration"
)

// Buckets lists the buckets in display order
var Buckets = []Bucket{BucketModule, BucketConfiguration, BucketIntegration}

// IsValid checks if the bucket is known
func (b Bucket) IsValid() bool {
	switch b {
	case BucketModule, BucketConfiguration, BucketIntegration:
		return true
	default:
		return false
	}
}

// Title returns the display heading for the bucket
func (b Bucket) Title() string {
	switch b {
	case BucketModule:
		return "Modules"
	case BucketConfiguration:
		return "Configuration Options"
	case BucketIntegration:
		return "Integrations"
	default:
		return string(b)
	}
}

// Kind describes how an add-on is charged
type Kind string

const (
	// KindFlat is charged once when enabled
	KindFlat Kind = "flat"

	// KindPerUnit is charged per selected unit
	KindPerUnit Kind = "per_unit"

	// KindAlwaysOn is always included and cannot be deselected
	KindAlwaysOn Kind = "always_on"
)

// IsValid checks if the kind is known
func (k Kind) IsValid() bool {
	switch k {
	case KindFlat, KindPerUnit, KindAlwaysOn:
		return true
	default:
		return false
	}
}

// Badge is display metadata attached to an add-on
type Badge struct {
	Label string `json:"label" yaml:"label"`
	Color string `json:"color,omitempty" yaml:"color,omitempty"`
}

// AddOn is an optional (or always-on) priced item
type AddOn struct {
	// ID is the selection key
	ID string `json:"id" yaml:"id"`

	// Name is the display name
	Name string `json:"name" yaml:"name"`

	// Bucket is where the fee is accounted
	Bucket Bucket `json:"bucket" yaml:"bucket"`

	// Kind is the charging model
	Kind Kind `json:"kind" yaml:"kind"`

	// UnitPrice is the price per period (per unit for per-unit items)
	UnitPrice decimal.Decimal `json:"unit_price" yaml:"unit_price"`

	// Period is the period UnitPrice is expressed in
	Period BillingPeriod `json:"period" yaml:"period"`

	// Badge is optional display metadata
	Badge *Badge `json:"badge,omitempty" yaml:"badge,omitempty"`
}

// YearlyUnitPrice returns UnitPrice normalized to a year
func (a AddOn) YearlyUnitPrice() decimal.Decimal {
	period := a.Period
	if period == "" {
		period = PeriodMonthly
	}
	return period.ToYearly(a.UnitPrice)
}

// Validate checks the add-on definition
func (a AddOn) Validate() error {
	if a.ID == "" {
		return fmt.Errorf("add-on id is required")
	}
	if !a.Bucket.IsValid() {
		return fmt.Errorf("add-on %q: unknown bucket %q", a.ID, a.Bucket)
	}
	if !a.Kind.IsValid() {
		return fmt.Errorf("add-on %q: unknown kind %q", a.ID, a.Kind)
	}
	if a.Period != "" && !a.Period.IsValid() {
		return fmt.Errorf("add-on %q: unknown period %q", a.ID, a.Period)
	}
	if a.UnitPrice.IsNegative() {
		return fmt.Errorf("add-on %q: price must not be negative", a.ID)
	}
	return nil
}

// Selection is the UI state of a single add-on.
// Flat items read Enabled, per-unit items read Quantity.
type Selection struct {
	Enabled  bool  `json:"enabled,omitempty" yaml:"enabled,omitempty"`
	Quantity int64 `json:"quantity,omitempty" yaml:"quantity,omitempty"`
}

// On selects a flat item
func On() Selection {
	return Selection{Enabled: true}
}

// Units selects n units of a per-unit item
func Units(n int64) Selection {
	return Selection{Quantity: n}
}

// Selections maps add-on ids to their selection state
type Selections map[string]Selection

// IDs returns the selected ids in sorted order
func (s Selections) IDs() []string {
	ids := make([]string, 0, len(s))
	for id := range s {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// QuoteInput is a snapshot of everything that drives one computation
type QuoteInput struct {
	// Volume is the expected yearly volume
	Volume int64 `json:"volume" yaml:"volume"`

	// BillingPeriod is the period the result is displayed in
	BillingPeriod BillingPeriod `json:"billing_period" yaml:"billing_period"`

	// Selections holds module, configuration and integration choices
	Selections Selections `json:"selections,omitempty" yaml:"selections,omitempty"`
}
