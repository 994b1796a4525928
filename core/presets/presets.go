// Package presets provides the built-in price books.
// Each calculator variant is a preset over the same engine.
package presets

import (
	"sort"

	"github.com/shopspring/decimal"

	"enterprise-quote/core/catalog"
	"enterprise-quote/core/pricing"
	"enterprise-quote/core/types"
	qerrors "enterprise-quote/internal/errors"
)

const (
	// Enterprise is the standard calculator
	Enterprise = "enterprise"

	// EnterpriseStep charges the platform fee per tier reached
	EnterpriseStep = "enterprise-step"

	// EnterpriseIntegrations adds the integration catalog
	EnterpriseIntegrations = "enterprise-integrations"

	// Default is used when nothing is configured
	Default = Enterprise
)

type builder struct {
	description string
	build       func() *pricing.PriceBook
}

var builtins = map[string]builder{
	Enterprise: {
		description: "Five-tier enterprise pricing with modules and configuration options",
		build:       enterprise,
	},
	EnterpriseStep: {
		description: "Enterprise tiers with a cumulative per-tier platform fee",
		build:       enterpriseStep,
	},
	EnterpriseIntegrations: {
		description: "Enterprise pricing plus the integration catalog",
		build:       enterpriseIntegrations,
	},
}

// Names lists the built-in presets in sorted order
func Names() []string {
	names := make([]string, 0, len(builtins))
	for name := range builtins {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Get builds a fresh copy of a built-in price book
func Get(name string) (*pricing.PriceBook, error) {
	b, ok := builtins[name]
	if !ok {
		return nil, qerrors.NotFound("preset", name)
	}
	book := b.build()
	book.Name = name
	book.Description = b.description
	return book, nil
}

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

// EnterpriseTiers is the five-band volume table shared by the enterprise presets
func EnterpriseTiers() types.TierTable {
	return types.TierTable{
		{Label: "Tier 1", Min: 0, Max: 499_999, PricePer1000: dec("4.5"), Inclusive: 0, Price: dec("13188")},
		{Label: "Tier 2", Min: 500_000, Max: 4_999_999, PricePer1000: dec("3.25"), Inclusive: 500_000, Price: dec("17188")},
		{Label: "Tier 3", Min: 5_000_000, Max: 10_000_000, PricePer1000: dec("1.75"), Inclusive: 5_000_000, Price: dec("31813")},
		{Label: "Tier 4", Min: 10_000_001, Max: 50_000_000, PricePer1000: dec("1.25"), Inclusive: 10_000_000, Price: dec("38813")},
		{Label: "Tier 5", Min: 50_000_001, Max: 200_000_000, PricePer1000: dec("0.5"), Inclusive: 50_000_000, Price: dec("88813")},
	}
}

func modules() []types.AddOn {
	return []types.AddOn{
		{ID: "core", Name: "Core", Bucket: types.BucketModule, Kind: types.KindAlwaysOn},
		{ID: "customerConnection", Name: "Consumer Connection", Bucket: types.BucketModule, Kind: types.KindFlat, UnitPrice: dec("249"),
			Badge: &types.Badge{Label: "Popular", Color: "blue"}},
		{ID: "brandProtection", Name: "Brand Protection", Bucket: types.BucketModule, Kind: types.KindFlat, UnitPrice: dec("199"),
			Badge: &types.Badge{Label: "Security", Color: "purple"}},
		{ID: "circularity", Name: "Circularity", Bucket: types.BucketModule, Kind: types.KindFlat, UnitPrice: dec("179")},
		{ID: "integratedWarranty", Name: "Integrated Warranty", Bucket: types.BucketModule, Kind: types.KindFlat, UnitPrice: dec("149")},
		{ID: "lostAndFound", Name: "Lost & Found", Bucket: types.BucketModule, Kind: types.KindFlat, UnitPrice: dec("89")},
	}
}

func configuration() []types.AddOn {
	return []types.AddOn{
		{ID: "multiLanguage", Name: "Multilanguage support", Bucket: types.BucketConfiguration, Kind: types.KindFlat, UnitPrice: dec("75")},
		{ID: "customDomain", Name: "Custom Domain", Bucket: types.BucketConfiguration, Kind: types.KindPerUnit, UnitPrice: dec("50")},
		{ID: "additionalBrands", Name: "Additional Brands", Bucket: types.BucketConfiguration, Kind: types.KindPerUnit, UnitPrice: dec("50")},
	}
}

func integrations() []types.AddOn {
	return []types.AddOn{
		{ID: "shopify", Name: "Shopify", Bucket: types.BucketIntegration, Kind: types.KindFlat, UnitPrice: dec("99")},
		{ID: "salesforce", Name: "Salesforce Commerce Cloud", Bucket: types.BucketIntegration, Kind: types.KindFlat, UnitPrice: dec("199"),
			Badge: &types.Badge{Label: "Enterprise", Color: "purple"}},
		{ID: "sapCommerce", Name: "SAP Commerce", Bucket: types.BucketIntegration, Kind: types.KindFlat, UnitPrice: dec("249")},
		{ID: "hubspot", Name: "HubSpot", Bucket: types.BucketIntegration, Kind: types.KindFlat, UnitPrice: dec("79")},
		{ID: "klaviyo", Name: "Klaviyo", Bucket: types.BucketIntegration, Kind: types.KindFlat, UnitPrice: dec("59")},
		{ID: "zapier", Name: "Zapier", Bucket: types.BucketIntegration, Kind: types.KindFlat, UnitPrice: dec("29"),
			Badge: &types.Badge{Label: "Popular", Color: "blue"}},
		{ID: "webhooks", Name: "Webhooks", Bucket: types.BucketIntegration, Kind: types.KindFlat, UnitPrice: dec("0")},
	}
}

func enterprise() *pricing.PriceBook {
	cat := catalog.NewCatalog().
		MustRegister(modules()...).
		MustRegister(configuration()...)
	return &pricing.PriceBook{
		Currency: types.CurrencyEUR,
		Tiers:    EnterpriseTiers(),
		Policy:   pricing.TierPricePolicy{},
		Catalog:  cat,
	}
}

func enterpriseStep() *pricing.PriceBook {
	book := enterprise()
	book.Policy = pricing.StepMultiplierPolicy{BaseFee: dec("13188")}
	return book
}

func enterpriseIntegrations() *pricing.PriceBook {
	book := enterprise()
	book.Catalog.MustRegister(integrations()...)
	return book
}
