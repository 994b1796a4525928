package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	qerrors "enterprise-quote/internal/errors"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)

	cfg, err = Load(filepath.Join(t.TempDir(), "missing.yaml"))
	require.NoError(t, err)
	assert.Equal(t, "enterprise", cfg.Pricing.Preset)
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "quote.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
pricing:
  preset: enterprise-step
  currency: USD
  billing_period: yearly
output:
  default_format: json
  no_color: true
`), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "enterprise-step", cfg.Pricing.Preset)
	assert.Equal(t, "USD", cfg.Pricing.Currency)
	assert.Equal(t, "yearly", cfg.Pricing.BillingPeriod)
	assert.Equal(t, "json", cfg.Output.DefaultFormat)
	assert.True(t, cfg.Output.NoColor)
	// untouched keys keep their defaults
	assert.False(t, cfg.Output.ShowDetails)
	assert.Equal(t, ".", cfg.Export.Directory)
	assert.Equal(t, "info", cfg.Logging.Level)
}

func TestEnvironmentOverrides(t *testing.T) {
	path := filepath.Join(t.TempDir(), "quote.yaml")
	require.NoError(t, os.WriteFile(path, []byte("pricing:\n  preset: enterprise-step\n"), 0o644))

	t.Setenv("QUOTE_PRICING_PRESET", "enterprise-integrations")
	t.Setenv("QUOTE_OUTPUT_SHOW_TIERS", "true")
	t.Setenv("QUOTE_LOGGING_LEVEL", "debug")

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "enterprise-integrations", cfg.Pricing.Preset)
	assert.True(t, cfg.Output.ShowTiers)
	assert.Equal(t, "debug", cfg.Logging.Level)
}

func TestLoadInvalid(t *testing.T) {
	dir := t.TempDir()

	broken := filepath.Join(dir, "broken.yaml")
	require.NoError(t, os.WriteFile(broken, []byte("pricing: [\n"), 0o644))
	_, err := Load(broken)
	require.Error(t, err)
	assert.True(t, qerrors.IsType(err, qerrors.TypeConfig))

	t.Setenv("QUOTE_PRICING_CURRENCY", "XYZ")
	_, err = Load("")
	require.Error(t, err)
	assert.True(t, qerrors.IsType(err, qerrors.TypeConfig))
}

func TestValidate(t *testing.T) {
	cfg := Default()
	require.NoError(t, cfg.Validate())

	cfg.Pricing.BillingPeriod = "weekly"
	assert.Error(t, cfg.Validate())

	cfg = Default()
	cfg.Pricing.Preset = ""
	assert.Error(t, cfg.Validate())

	cfg.Pricing.PriceBookPath = "book.hcl"
	assert.NoError(t, cfg.Validate())
}

func TestSaveRoundTrip(t *testing.T) {
	for _, name := range []string{"config.yaml", "config.json", "nested/dir/config.toml"} {
		t.Run(name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), name)

			cfg := Default()
			cfg.Pricing.PriceBookPath = "/etc/quote/book.hcl"
			cfg.Pricing.Currency = "GBP"
			cfg.Output.ShowTiers = true
			cfg.Export.Directory = "/tmp/quotes"
			require.NoError(t, cfg.Save(path))

			loaded, err := Load(path)
			require.NoError(t, err)
			assert.Equal(t, cfg, loaded)
		})
	}
}

func TestGlobal(t *testing.T) {
	orig := Get()
	defer Set(orig)

	cfg := Default()
	cfg.Pricing.Preset = "enterprise-step"
	Set(cfg)
	assert.Equal(t, "enterprise-step", Get().Pricing.Preset)
}
