package hcl

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"enterprise-quote/core/presets"
	"enterprise-quote/core/pricing"
	"enterprise-quote/core/types"
	qerrors "enterprise-quote/internal/errors"
)

func TestLoadFileMatchesPreset(t *testing.T) {
	book, err := LoadFile(filepath.Join("testdata", "enterprise.hcl"))
	require.NoError(t, err)

	assert.Equal(t, "enterprise", book.Name)
	assert.Equal(t, "Enterprise tiers loaded from HCL", book.Description)
	assert.Equal(t, types.CurrencyEUR, book.Currency)
	assert.Equal(t, pricing.PolicyTierPrice, book.Policy.Name())

	preset, err := presets.Get(presets.Enterprise)
	require.NoError(t, err)
	require.Len(t, book.Tiers, len(preset.Tiers))
	for i, want := range preset.Tiers {
		got := book.Tiers[i]
		assert.Equal(t, want.Label, got.Label)
		assert.Equal(t, want.Min, got.Min, want.Label)
		assert.Equal(t, want.Max, got.Max, want.Label)
		assert.Equal(t, want.Inclusive, got.Inclusive, want.Label)
		assert.True(t, want.PricePer1000.Equal(got.PricePer1000), want.Label)
		assert.True(t, want.Price.Equal(got.Price), want.Label)
	}

	q, err := pricing.ComputeQuote(book, types.QuoteInput{
		Volume: 1_000_000,
		Selections: types.Selections{
			"customerConnection": types.On(),
			"additionalBrands":   types.Units(2),
			"shopify":            types.On(),
		},
	})
	require.NoError(t, err)
	assert.Equal(t, "3875", q.Yearly.VariableFee.String())
	assert.Equal(t, "1188", q.Yearly.IntegrationFee.String())
	assert.Equal(t, "26439", q.Yearly.TotalCost.String())
}

func TestParseCatalogDefaults(t *testing.T) {
	book, err := NewLoader().Parse([]byte(`
tier "Only" {
  min            = 0
  max            = 1 * m
  price_per_1000 = 0.1
}

addon "sso" {
  bucket = "configuration"
  price  = 12.5
}
`), "inline.hcl")
	require.NoError(t, err)

	assert.Equal(t, "", book.Name)
	assert.True(t, book.Tiers[0].Price.IsZero())
	assert.Equal(t, "0.1", book.Tiers[0].PricePer1000.String())

	sso, ok := book.Catalog.Get("sso")
	require.True(t, ok)
	assert.Equal(t, "sso", sso.Name)
	assert.Equal(t, types.KindFlat, sso.Kind)
	assert.Equal(t, types.PeriodMonthly, sso.Period)
	assert.Equal(t, "150", sso.YearlyUnitPrice().String())
	assert.Nil(t, sso.Badge)
}

func TestParseStepPolicy(t *testing.T) {
	book, err := NewLoader().Parse([]byte(`
platform_policy   = "step_multiplier"
platform_base_fee = 13188

tier "A" {
  min            = 0
  max            = 999
  price_per_1000 = 1
}
tier "B" {
  min            = 1000
  max            = 1999
  price_per_1000 = 1
}
`), "step.hcl")
	require.NoError(t, err)

	q, err := pricing.ComputeQuote(book, types.QuoteInput{Volume: 1500})
	require.NoError(t, err)
	assert.Equal(t, "26376", q.Yearly.PlatformFee.String())
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name    string
		src     string
		errType qerrors.Type
	}{
		{
			name:    "syntax",
			src:     `tier "A" {`,
			errType: qerrors.TypeParsing,
		},
		{
			name:    "missing attribute",
			src:     `tier "A" { min = 0 }`,
			errType: qerrors.TypeParsing,
		},
		{
			name: "unknown variable",
			src: `tier "A" {
  min            = 0
  max            = g
  price_per_1000 = 1
}`,
			errType: qerrors.TypeParsing,
		},
		{
			name: "string price",
			src: `tier "A" {
  min            = 0
  max            = 10
  price_per_1000 = "cheap"
}`,
			errType: qerrors.TypeParsing,
		},
		{
			name: "unknown policy",
			src: `platform_policy = "auction"
tier "A" {
  min            = 0
  max            = 10
  price_per_1000 = 1
}`,
			errType: qerrors.TypeParsing,
		},
		{
			name: "unknown currency",
			src: `currency = "XYZ"
tier "A" {
  min            = 0
  max            = 10
  price_per_1000 = 1
}`,
			errType: qerrors.TypeParsing,
		},
		{
			name: "duplicate addon",
			src: `tier "A" {
  min            = 0
  max            = 10
  price_per_1000 = 1
}
addon "x" { bucket = "module" }
addon "x" { bucket = "module" }`,
			errType: qerrors.TypeParsing,
		},
		{
			name: "step policy without base fee",
			src: `platform_policy = "step_multiplier"
tier "A" {
  min            = 0
  max            = 10
  price_per_1000 = 1
}`,
			errType: qerrors.TypeParsing,
		},
		{
			name: "step policy with zero base fee",
			src: `platform_policy   = "step_multiplier"
platform_base_fee = 0
tier "A" {
  min            = 0
  max            = 10
  price_per_1000 = 1
}`,
			errType: qerrors.TypeParsing,
		},
		{
			name: "bound above ceiling",
			src: `tier "A" {
  min            = 0
  max            = 9223372036854775807
  price_per_1000 = 1
}`,
			errType: qerrors.TypePricing,
		},
		{
			name:    "no tiers",
			src:     `name = "empty"`,
			errType: qerrors.TypePricing,
		},
		{
			name: "gap between tiers",
			src: `tier "A" {
  min            = 0
  max            = 10
  price_per_1000 = 1
}
tier "B" {
  min            = 20
  max            = 30
  price_per_1000 = 1
}`,
			errType: qerrors.TypePricing,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewLoader().Parse([]byte(tt.src), tt.name+".hcl")
			require.Error(t, err)
			assert.True(t, qerrors.IsType(err, tt.errType), "got %v", err)
		})
	}
}

func TestLoadFileMissing(t *testing.T) {
	_, err := LoadFile(filepath.Join(t.TempDir(), "nope.hcl"))
	require.Error(t, err)
	assert.True(t, qerrors.IsType(err, qerrors.TypeNotFound))
}

func TestLoadFileKeepsDeclaredName(t *testing.T) {
	path := filepath.Join(t.TempDir(), "book.hcl")
	require.NoError(t, os.WriteFile(path, []byte(`
name = "named"
tier "A" {
  min            = 0
  max            = 10
  price_per_1000 = 1
}
`), 0o644))

	book, err := LoadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "named", book.Name)
}
