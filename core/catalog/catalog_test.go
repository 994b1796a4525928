package catalog

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"enterprise-quote/core/types"
)

func testCatalog(t *testing.T) *Catalog {
	t.Helper()
	c := NewCatalog()
	require.NoError(t, c.Register(types.AddOn{ID: "core", Name: "Core", Bucket: types.BucketModule, Kind: types.KindAlwaysOn}))
	require.NoError(t, c.Register(types.AddOn{ID: "circularity", Name: "Circularity", Bucket: types.BucketModule, Kind: types.KindFlat, UnitPrice: decimal.NewFromInt(179)}))
	require.NoError(t, c.Register(types.AddOn{ID: "customDomain", Name: "Custom Domain", Bucket: types.BucketConfiguration, Kind: types.KindPerUnit, UnitPrice: decimal.NewFromInt(50)}))
	require.NoError(t, c.Register(types.AddOn{ID: "salesforce", Name: "Salesforce", Bucket: types.BucketIntegration, Kind: types.KindFlat, UnitPrice: decimal.NewFromInt(99)}))
	return c
}

func TestRegisterKeepsOrderAndDefaultsPeriod(t *testing.T) {
	c := testCatalog(t)

	all := c.All()
	require.Len(t, all, 4)
	assert.Equal(t, []string{"core", "circularity", "customDomain", "salesforce"},
		[]string{all[0].ID, all[1].ID, all[2].ID, all[3].ID})

	entry, ok := c.Get("circularity")
	require.True(t, ok)
	assert.Equal(t, types.PeriodMonthly, entry.Period)
}

func TestRegisterRejectsBadEntries(t *testing.T) {
	c := testCatalog(t)

	tests := []struct {
		name  string
		entry types.AddOn
	}{
		{"duplicate id", types.AddOn{ID: "core", Bucket: types.BucketModule, Kind: types.KindFlat}},
		{"missing id", types.AddOn{Bucket: types.BucketModule, Kind: types.KindFlat}},
		{"unknown bucket", types.AddOn{ID: "x", Bucket: "addon", Kind: types.KindFlat}},
		{"unknown kind", types.AddOn{ID: "y", Bucket: types.BucketModule, Kind: "tiered"}},
		{"negative price", types.AddOn{ID: "z", Bucket: types.BucketModule, Kind: types.KindFlat, UnitPrice: decimal.NewFromInt(-1)}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Error(t, c.Register(tt.entry))
		})
	}
	assert.Equal(t, 4, c.Len())
}

func TestListByBucketAndStats(t *testing.T) {
	c := testCatalog(t)

	modules := c.ListByBucket(types.BucketModule)
	require.Len(t, modules, 2)
	assert.Equal(t, "core", modules[0].ID)

	stats := c.Stats()
	assert.Equal(t, 4, stats.Total)
	assert.Equal(t, BucketStats{Total: 2, Flat: 1, AlwaysOn: 1}, stats.ByBucket[types.BucketModule])
	assert.Equal(t, BucketStats{Total: 1, PerUnit: 1}, stats.ByBucket[types.BucketConfiguration])
}

func TestGetMissing(t *testing.T) {
	c := testCatalog(t)
	_, ok := c.Get("nope")
	assert.False(t, ok)
}
