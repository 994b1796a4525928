package presets

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"enterprise-quote/core/pricing"
	"enterprise-quote/core/types"
	qerrors "enterprise-quote/internal/errors"
)

func TestEveryPresetIsValid(t *testing.T) {
	for _, name := range Names() {
		t.Run(name, func(t *testing.T) {
			book, err := Get(name)
			require.NoError(t, err)
			assert.Equal(t, name, book.Name)
			assert.NotEmpty(t, book.Description)
			require.NoError(t, book.Validate())
			assert.Equal(t, int64(200_000_000), book.MaxVolume())
		})
	}
}

func TestGetUnknownPreset(t *testing.T) {
	_, err := Get("starter")
	require.Error(t, err)
	assert.True(t, qerrors.IsType(err, qerrors.TypeNotFound))
}

func TestPresetsAreIndependentCopies(t *testing.T) {
	a, err := Get(Enterprise)
	require.NoError(t, err)
	b, err := Get(Enterprise)
	require.NoError(t, err)

	require.NoError(t, a.Catalog.Register(types.AddOn{ID: "extra", Bucket: types.BucketModule, Kind: types.KindFlat}))
	_, ok := b.Catalog.Get("extra")
	assert.False(t, ok)
}

func TestEnterpriseQuote(t *testing.T) {
	book, err := Get(Enterprise)
	require.NoError(t, err)

	q, err := pricing.ComputeQuote(book, types.QuoteInput{
		Volume:        1_000_000,
		BillingPeriod: types.PeriodMonthly,
		Selections: types.Selections{
			"customerConnection": types.On(),
			"additionalBrands":   types.Units(2),
		},
	})
	require.NoError(t, err)

	assert.Equal(t, "Tier 2", q.Tier.Label)
	assert.Equal(t, "17188", q.Yearly.PlatformFee.String())
	assert.Equal(t, "3875", q.Yearly.VariableFee.String())
	assert.Equal(t, "2988", q.Yearly.AddOnFee.String())
	assert.Equal(t, "1200", q.Yearly.ConfigurationFee.String())
	assert.True(t, q.Yearly.IntegrationFee.IsZero())
	assert.Equal(t, "25251", q.Yearly.TotalCost.String())

	monthly := q.Fees()
	assert.Equal(t, "2104.25", monthly.TotalCost.StringFixed(2))
	assert.Equal(t, "249.00", monthly.AddOnFee.StringFixed(2))
	assert.Equal(t, "100.00", monthly.ConfigurationFee.StringFixed(2))
}

func TestIntegrationsOnlyInIntegrationPreset(t *testing.T) {
	plain, err := Get(Enterprise)
	require.NoError(t, err)
	_, err = pricing.ComputeQuote(plain, types.QuoteInput{Volume: 1, Selections: types.Selections{"shopify": types.On()}})
	assert.True(t, qerrors.IsType(err, qerrors.TypeUnknownAddOn))

	withIntegrations, err := Get(EnterpriseIntegrations)
	require.NoError(t, err)
	q, err := pricing.ComputeQuote(withIntegrations, types.QuoteInput{
		Volume:     1,
		Selections: types.Selections{"shopify": types.On(), "zapier": types.On()},
	})
	require.NoError(t, err)
	assert.Equal(t, "1536", q.Yearly.IntegrationFee.String())
}

func TestEnterpriseStepPolicy(t *testing.T) {
	book, err := Get(EnterpriseStep)
	require.NoError(t, err)

	q, err := pricing.ComputeQuote(book, types.QuoteInput{Volume: 7_000_000})
	require.NoError(t, err)
	assert.Equal(t, pricing.PolicyStepMultiplier, q.Policy)
	assert.Equal(t, "39564", q.Yearly.PlatformFee.String())
}
