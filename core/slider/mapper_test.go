package slider

import (
	"math"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"enterprise-quote/core/types"
)

func enterpriseTiers() types.TierTable {
	return types.TierTable{
		{Label: "Tier 1", Min: 0, Max: 499_999, PricePer1000: decimal.RequireFromString("4.5")},
		{Label: "Tier 2", Min: 500_000, Max: 4_999_999, PricePer1000: decimal.RequireFromString("3.25")},
		{Label: "Tier 3", Min: 5_000_000, Max: 10_000_000, PricePer1000: decimal.RequireFromString("1.75")},
		{Label: "Tier 4", Min: 10_000_001, Max: 50_000_000, PricePer1000: decimal.RequireFromString("1.25")},
		{Label: "Tier 5", Min: 50_000_001, Max: 200_000_000, PricePer1000: decimal.RequireFromString("0.5")},
	}
}

func newMapper(t *testing.T) *Mapper {
	t.Helper()
	m, err := NewMapper(enterpriseTiers())
	require.NoError(t, err)
	return m
}

func TestPositionToVolume(t *testing.T) {
	m := newMapper(t)
	assert.Equal(t, 20.0, m.BandWidth())

	tests := []struct {
		name     string
		position float64
		volume   int64
	}{
		{"left end", 0, 0},
		{"middle of tier 1", 10, 250_000},
		{"boundary belongs to lower band", 20, 499_999},
		{"one step into tier 2", 21, 725_000},
		{"right end", 100, 200_000_000},
		{"below range clamps", -5, 0},
		{"above range clamps", 150, 200_000_000},
		{"NaN clamps to left end", math.NaN(), 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.volume, m.PositionToVolume(tt.position))
		})
	}
}

func TestVolumeToPosition(t *testing.T) {
	m := newMapper(t)

	assert.Equal(t, 0.0, m.VolumeToPosition(0))
	assert.Equal(t, 0.0, m.VolumeToPosition(-10))
	assert.Equal(t, 100.0, m.VolumeToPosition(200_000_000))
	assert.Equal(t, 100.0, m.VolumeToPosition(300_000_000))
	assert.InDelta(t, 20.0, m.VolumeToPosition(499_999), 1e-9)
	assert.InDelta(t, 20.0, m.VolumeToPosition(500_000), 1e-9)
	assert.InDelta(t, 30.0, m.VolumeToPosition(2_750_000), 1e-4)
	assert.InDelta(t, 60.0, m.VolumeToPosition(10_000_000), 1e-9)
}

func sampleVolumes(tiers types.TierTable) []int64 {
	var volumes []int64
	for _, tier := range tiers {
		volumes = append(volumes, tier.Min, tier.Min+1, tier.Min+tier.Span()/3, (tier.Min+tier.Max)/2, tier.Max-1, tier.Max)
	}
	return volumes
}

func TestVolumeRoundTrip(t *testing.T) {
	m := newMapper(t)

	for _, v := range sampleVolumes(enterpriseTiers()) {
		exact := m.PositionToVolume(m.VolumeToPosition(v))
		assert.LessOrEqual(t, abs(exact-v), int64(1), "volume %d came back as %d", v, exact)

		// a UI control only reports whole positions
		stepped := m.PositionToVolume(math.Round(m.VolumeToPosition(v)))
		assert.LessOrEqual(t, abs(stepped-v), m.Resolution(v), "volume %d came back as %d", v, stepped)
	}
}

func TestPositionRoundTrip(t *testing.T) {
	m := newMapper(t)

	for pos := 0; pos <= 100; pos++ {
		back := m.VolumeToPosition(m.PositionToVolume(float64(pos)))
		assert.InDelta(t, float64(pos), back, 1e-3, "position %d", pos)
	}
}

func TestPositionToVolumeIsMonotonic(t *testing.T) {
	m := newMapper(t)

	prev := int64(-1)
	for pos := 0.0; pos <= 100; pos += 0.25 {
		v := m.PositionToVolume(pos)
		require.GreaterOrEqual(t, v, prev, "position %.2f", pos)
		prev = v
	}
}

func TestBandsAndTierAt(t *testing.T) {
	m := newMapper(t)

	bands := m.Bands()
	require.Len(t, bands, 5)
	assert.Equal(t, 40.0, bands[2].Start)
	assert.Equal(t, 60.0, bands[2].End)
	assert.Equal(t, 50.0, bands[2].Center())

	assert.Equal(t, 0, m.TierAt(0))
	assert.Equal(t, 0, m.TierAt(20))
	assert.Equal(t, 1, m.TierAt(20.01))
	assert.Equal(t, 4, m.TierAt(100))
	assert.Equal(t, 4, m.TierAt(1000))
}

func TestResolution(t *testing.T) {
	m := newMapper(t)

	assert.Equal(t, int64(25_000), m.Resolution(100))
	assert.Equal(t, int64(7_500_000), m.Resolution(199_999_999))
	assert.Equal(t, int64(25_000), m.Resolution(-1))
	assert.Equal(t, int64(7_500_000), m.Resolution(999_999_999))
}

func TestNewMapperRejectsBrokenTables(t *testing.T) {
	_, err := NewMapper(nil)
	assert.Error(t, err)

	broken := enterpriseTiers()
	broken[3].Min = 10_000_005
	_, err = NewMapper(broken)
	assert.Error(t, err)
}

func abs(v int64) int64 {
	if v < 0 {
		return -v
	}
	return v
}
