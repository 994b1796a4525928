// Package config provides configuration management.
// Values come from defaults, an optional config file and QUOTE_* environment
// variables, in increasing order of precedence.
package config

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"

	"enterprise-quote/core/presets"
	"enterprise-quote/core/types"
	qerrors "enterprise-quote/internal/errors"
	"enterprise-quote/internal/logging"
)

// EnvPrefix prefixes environment overrides, e.g. QUOTE_PRICING_PRESET
const EnvPrefix = "QUOTE"

// Config is the main application configuration
type Config struct {
	// Version is the configuration version
	Version string `mapstructure:"version" yaml:"version"`

	// Pricing selects the price book and display defaults
	Pricing PricingConfig `mapstructure:"pricing" yaml:"pricing"`

	// Output contains output configuration
	Output OutputConfig `mapstructure:"output" yaml:"output"`

	// Export contains document export configuration
	Export ExportConfig `mapstructure:"export" yaml:"export"`

	// Logging contains logging configuration
	Logging logging.Config `mapstructure:"logging" yaml:"logging"`
}

// PricingConfig contains pricing-related settings
type PricingConfig struct {
	// Preset is the built-in price book used when no file is given
	Preset string `mapstructure:"preset" yaml:"preset"`

	// PriceBookPath is an HCL price book; it wins over Preset
	PriceBookPath string `mapstructure:"pricebook_path" yaml:"pricebook_path"`

	// Currency is the display currency code; empty uses the book's
	Currency string `mapstructure:"currency" yaml:"currency"`

	// BillingPeriod is "monthly" or "yearly"
	BillingPeriod string `mapstructure:"billing_period" yaml:"billing_period"`
}

// OutputConfig contains output-related settings
type OutputConfig struct {
	// DefaultFormat is the default output format
	DefaultFormat string `mapstructure:"default_format" yaml:"default_format"`

	// ShowTiers includes the tier table
	ShowTiers bool `mapstructure:"show_tiers" yaml:"show_tiers"`

	// ShowDetails shows the usage walk and line items
	ShowDetails bool `mapstructure:"show_details" yaml:"show_details"`

	// NoColor disables ANSI colors
	NoColor bool `mapstructure:"no_color" yaml:"no_color"`
}

// ExportConfig contains export settings
type ExportConfig struct {
	// Directory receives exported documents named without a path
	Directory string `mapstructure:"directory" yaml:"directory"`
}

// Default returns a default configuration
func Default() *Config {
	return &Config{
		Version: "1.0",
		Pricing: PricingConfig{
			Preset:        presets.Default,
			BillingPeriod: string(types.PeriodMonthly),
		},
		Output: OutputConfig{
			DefaultFormat: "cli",
			ShowTiers:     false,
			ShowDetails:   false,
		},
		Export: ExportConfig{
			Directory: ".",
		},
		Logging: logging.DefaultConfig(),
	}
}

// values flattens c into viper keys
func (c *Config) values() map[string]interface{} {
	return map[string]interface{}{
		"version":                c.Version,
		"pricing.preset":         c.Pricing.Preset,
		"pricing.pricebook_path": c.Pricing.PriceBookPath,
		"pricing.currency":       c.Pricing.Currency,
		"pricing.billing_period": c.Pricing.BillingPeriod,
		"output.default_format":  c.Output.DefaultFormat,
		"output.show_tiers":      c.Output.ShowTiers,
		"output.show_details":    c.Output.ShowDetails,
		"output.no_color":        c.Output.NoColor,
		"export.directory":       c.Export.Directory,
		"logging.level":          c.Logging.Level,
		"logging.format":         c.Logging.Format,
		"logging.output":         c.Logging.Output,
		"logging.development":    c.Logging.Development,
	}
}

func newViper() *viper.Viper {
	v := viper.New()
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// every key needs a default for AutomaticEnv to reach it during Unmarshal
	for key, value := range Default().values() {
		v.SetDefault(key, value)
	}
	return v
}

// Load loads configuration from a file.
// An empty path or a missing file yields defaults plus environment overrides.
func Load(path string) (*Config, error) {
	v := newViper()

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			if !errors.Is(err, fs.ErrNotExist) {
				return nil, qerrors.Config("failed to read "+path, err)
			}
		}
	}

	config := &Config{}
	if err := v.Unmarshal(config); err != nil {
		return nil, qerrors.Config("failed to decode configuration", err)
	}
	if err := config.Validate(); err != nil {
		return nil, err
	}
	return config, nil
}

// Exists reports whether a config file is present at path
func Exists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

// Validate checks values that would otherwise fail late
func (c *Config) Validate() error {
	if c.Pricing.Preset == "" && c.Pricing.PriceBookPath == "" {
		return qerrors.New(qerrors.TypeConfig, "pricing.preset or pricing.pricebook_path is required")
	}
	if c.Pricing.Currency != "" {
		if _, err := types.ParseCurrency(c.Pricing.Currency); err != nil {
			return qerrors.Config("pricing.currency", err)
		}
	}
	if _, err := types.ParseBillingPeriod(c.Pricing.BillingPeriod); err != nil {
		return qerrors.Config("pricing.billing_period", err)
	}
	return nil
}

// Save saves configuration to a file; the format follows the extension
func (c *Config) Save(path string) error {
	// Ensure directory exists
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return qerrors.Config("failed to create "+dir, err)
	}

	v := viper.New()
	for key, value := range c.values() {
		v.Set(key, value)
	}
	if filepath.Ext(path) == "" {
		v.SetConfigType("yaml")
	}
	if err := v.WriteConfigAs(path); err != nil {
		return qerrors.Config("failed to write "+path, err)
	}
	return nil
}

// Global configuration instance
var globalConfig = Default()

// Get returns the global configuration
func Get() *Config {
	return globalConfig
}

// Set sets the global configuration
func Set(config *Config) {
	globalConfig = config
}
