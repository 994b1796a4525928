// Package hcl loads price books from HCL files.
//
// A price book file declares top-level attributes, one "tier" block per volume
// band and one "addon" block per catalog item. Expressions may use the
// variables k (1,000) and m (1,000,000):
//
//	name            = "custom"
//	currency        = "EUR"
//	platform_policy = "tier_price"
//
//	tier "Tier 1" {
//	  min            = 0
//	  max            = 500 * k - 1
//	  price_per_1000 = 4.5
//	  inclusive      = 0
//	  price          = 13188
//	}
//
//	addon "brandProtection" {
//	  name   = "Brand Protection"
//	  bucket = "module"
//	  kind   = "flat"
//	  price  = 199
//	}
package hcl

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/shopspring/decimal"
	"github.com/zclconf/go-cty/cty"

	"enterprise-quote/core/catalog"
	"enterprise-quote/core/pricing"
	"enterprise-quote/core/types"
	qerrors "enterprise-quote/internal/errors"
)

type bookFile struct {
	Name            string         `hcl:"name,optional"`
	Description     string         `hcl:"description,optional"`
	Currency        string         `hcl:"currency,optional"`
	PlatformPolicy  string         `hcl:"platform_policy,optional"`
	PlatformBaseFee hcl.Expression `hcl:"platform_base_fee,optional"`
	Tiers           []tierBlock    `hcl:"tier,block"`
	AddOns          []addonBlock   `hcl:"addon,block"`
}

type tierBlock struct {
	Label        string         `hcl:"label,label"`
	Min          int64          `hcl:"min"`
	Max          int64          `hcl:"max"`
	PricePer1000 hcl.Expression `hcl:"price_per_1000"`
	Inclusive    int64          `hcl:"inclusive,optional"`
	Price        hcl.Expression `hcl:"price,optional"`
}

type addonBlock struct {
	ID         string         `hcl:"id,label"`
	Name       string         `hcl:"name,optional"`
	Bucket     string         `hcl:"bucket"`
	Kind       string         `hcl:"kind,optional"`
	Price      hcl.Expression `hcl:"price,optional"`
	Period     string         `hcl:"period,optional"`
	Badge      string         `hcl:"badge,optional"`
	BadgeColor string         `hcl:"badge_color,optional"`
}

// Variables are the names available in price-book expressions
func Variables() map[string]cty.Value {
	return map[string]cty.Value{
		"k": cty.NumberIntVal(1_000),
		"m": cty.NumberIntVal(1_000_000),
	}
}

// Loader parses price-book files
type Loader struct {
	parser *hclparse.Parser
	ctx    *hcl.EvalContext
}

// NewLoader creates a new price-book loader
func NewLoader() *Loader {
	return &Loader{
		parser: hclparse.NewParser(),
		ctx:    &hcl.EvalContext{Variables: Variables()},
	}
}

// LoadFile reads and parses a price-book file.
// A book without a name is named after the file.
func LoadFile(path string) (*pricing.PriceBook, error) {
	return NewLoader().LoadFile(path)
}

// LoadFile reads and parses a price-book file
func (l *Loader) LoadFile(path string) (*pricing.PriceBook, error) {
	src, err := os.ReadFile(path)
	if err != nil {
		return nil, qerrors.Wrapf(qerrors.TypeNotFound, err, "failed to read price book %s", path)
	}

	book, err := l.Parse(src, path)
	if err != nil {
		return nil, err
	}
	if book.Name == "" {
		book.Name = strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	}
	return book, nil
}

// Parse decodes a price book from HCL source
func (l *Loader) Parse(src []byte, filename string) (*pricing.PriceBook, error) {
	file, diags := l.parser.ParseHCL(src, filename)
	if diags.HasErrors() {
		return nil, diagError(filename, diags)
	}

	var doc bookFile
	if diags := gohcl.DecodeBody(file.Body, l.ctx, &doc); diags.HasErrors() {
		return nil, diagError(filename, diags)
	}

	book, diags := l.build(&doc)
	if diags.HasErrors() {
		return nil, diagError(filename, diags)
	}
	if err := book.Validate(); err != nil {
		return nil, err
	}
	return book, nil
}

func (l *Loader) build(doc *bookFile) (*pricing.PriceBook, hcl.Diagnostics) {
	var diags hcl.Diagnostics

	currency := types.CurrencyEUR
	if doc.Currency != "" {
		c, err := types.ParseCurrency(doc.Currency)
		if err != nil {
			diags = append(diags, errorDiag("Invalid currency", err.Error(), nil))
		}
		currency = c
	}

	baseFee, moreDiags := l.number(doc.PlatformBaseFee, decimal.Zero)
	diags = append(diags, moreDiags...)
	policy, err := pricing.PolicyByName(doc.PlatformPolicy, baseFee)
	if err != nil {
		diags = append(diags, errorDiag("Invalid platform policy", err.Error(), nil))
	}

	tiers := make(types.TierTable, 0, len(doc.Tiers))
	for _, tb := range doc.Tiers {
		rate, moreDiags := l.number(tb.PricePer1000, decimal.Zero)
		diags = append(diags, moreDiags...)
		price, moreDiags := l.number(tb.Price, decimal.Zero)
		diags = append(diags, moreDiags...)

		tiers = append(tiers, types.Tier{
			Label:        tb.Label,
			Min:          tb.Min,
			Max:          tb.Max,
			PricePer1000: rate,
			Inclusive:    tb.Inclusive,
			Price:        price,
		})
	}

	cat := catalog.NewCatalog()
	for _, ab := range doc.AddOns {
		price, moreDiags := l.number(ab.Price, decimal.Zero)
		diags = append(diags, moreDiags...)

		kind := types.Kind(ab.Kind)
		if kind == "" {
			kind = types.KindFlat
		}
		name := ab.Name
		if name == "" {
			name = ab.ID
		}

		entry := types.AddOn{
			ID:        ab.ID,
			Name:      name,
			Bucket:    types.Bucket(ab.Bucket),
			Kind:      kind,
			UnitPrice: price,
			Period:    types.BillingPeriod(ab.Period),
		}
		if ab.Badge != "" {
			entry.Badge = &types.Badge{Label: ab.Badge, Color: ab.BadgeColor}
		}
		if err := cat.Register(entry); err != nil {
			diags = append(diags, errorDiag("Invalid addon", err.Error(), nil))
		}
	}

	return &pricing.PriceBook{
		Name:        doc.Name,
		Description: doc.Description,
		Currency:    currency,
		Tiers:       tiers,
		Policy:      policy,
		Catalog:     cat,
	}, diags
}

// number evaluates a numeric expression exactly. A missing or null
// expression yields def.
func (l *Loader) number(expr hcl.Expression, def decimal.Decimal) (decimal.Decimal, hcl.Diagnostics) {
	if expr == nil {
		return def, nil
	}
	val, diags := expr.Value(l.ctx)
	if diags.HasErrors() {
		return def, diags
	}
	if val.IsNull() {
		return def, nil
	}
	rng := expr.Range()
	if !val.IsKnown() || val.Type() != cty.Number {
		return def, hcl.Diagnostics{errorDiag("Invalid number", "a number is required", &rng)}
	}

	d, err := decimal.NewFromString(val.AsBigFloat().Text('f', -1))
	if err != nil {
		return def, hcl.Diagnostics{errorDiag("Invalid number", err.Error(), &rng)}
	}
	return d, nil
}

func errorDiag(summary, detail string, subject *hcl.Range) *hcl.Diagnostic {
	return &hcl.Diagnostic{
		Severity: hcl.DiagError,
		Summary:  summary,
		Detail:   detail,
		Subject:  subject,
	}
}

func diagError(filename string, diags hcl.Diagnostics) error {
	var msgs []string
	for _, diag := range diags {
		if diag.Severity != hcl.DiagError {
			continue
		}
		line := 0
		if diag.Subject != nil {
			line = diag.Subject.Start.Line
		}
		msg := diag.Summary
		if diag.Detail != "" {
			msg += ": " + diag.Detail
		}
		if line > 0 {
			msg = fmt.Sprintf("line %d: %s", line, msg)
		}
		msgs = append(msgs, msg)
	}
	return qerrors.Newf(qerrors.TypeParsing, "%s: %s", filename, strings.Join(msgs, "; ")).
		WithContext("diagnostics", len(msgs))
}
