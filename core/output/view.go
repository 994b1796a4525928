package output

import (
	"github.com/shopspring/decimal"

	"enterprise-quote/core/types"
)

// QuoteView is the serialized form of a report.
// Money is rendered as fixed two-place strings.
type QuoteView struct {
	PriceBook      string      `json:"price_book" yaml:"price_book"`
	Currency       string      `json:"currency" yaml:"currency"`
	Volume         int64       `json:"volume" yaml:"volume"`
	Period         string      `json:"period" yaml:"period"`
	Policy         string      `json:"platform_policy" yaml:"platform_policy"`
	SliderPosition float64     `json:"slider_position" yaml:"slider_position"`
	Clamped        bool        `json:"clamped,omitempty" yaml:"clamped,omitempty"`
	Tier           TierView    `json:"tier" yaml:"tier"`
	Fees           FeesView    `json:"fees" yaml:"fees"`
	Monthly        FeesView    `json:"monthly" yaml:"monthly"`
	Yearly         FeesView    `json:"yearly" yaml:"yearly"`
	RatePer1000    string      `json:"rate_per_1000" yaml:"rate_per_1000"`
	Usage          []UsageView `json:"usage,omitempty" yaml:"usage,omitempty"`
	Items          []ItemView  `json:"items,omitempty" yaml:"items,omitempty"`
	Tiers          []TierView  `json:"tiers,omitempty" yaml:"tiers,omitempty"`
}

// FeesView is a breakdown in one period
type FeesView struct {
	PlatformFee      string `json:"platform_fee" yaml:"platform_fee"`
	VariableFee      string `json:"variable_fee" yaml:"variable_fee"`
	AddOnFee         string `json:"addon_fee" yaml:"addon_fee"`
	ConfigurationFee string `json:"configuration_fee" yaml:"configuration_fee"`
	IntegrationFee   string `json:"integration_fee" yaml:"integration_fee"`
	TotalCost        string `json:"total_cost" yaml:"total_cost"`
}

// TierView is one row of the tier table
type TierView struct {
	Label        string `json:"label" yaml:"label"`
	Min          int64  `json:"min" yaml:"min"`
	Max          int64  `json:"max" yaml:"max"`
	PricePer1000 string `json:"price_per_1000" yaml:"price_per_1000"`
	Inclusive    int64  `json:"inclusive" yaml:"inclusive"`
	PlatformFee  string `json:"platform_fee,omitempty" yaml:"platform_fee,omitempty"`
}

// UsageView is one step of the usage walk, in the display period
type UsageView struct {
	Tier         string `json:"tier" yaml:"tier"`
	Units        int64  `json:"units" yaml:"units"`
	PricePer1000 string `json:"price_per_1000" yaml:"price_per_1000"`
	Amount       string `json:"amount" yaml:"amount"`
}

// ItemView is one contributing add-on, in the display period
type ItemView struct {
	ID        string `json:"id" yaml:"id"`
	Name      string `json:"name" yaml:"name"`
	Bucket    string `json:"bucket" yaml:"bucket"`
	Quantity  int64  `json:"quantity" yaml:"quantity"`
	UnitPrice string `json:"unit_price" yaml:"unit_price"`
	Amount    string `json:"amount" yaml:"amount"`
}

func fixed(d decimal.Decimal) string {
	return d.StringFixed(2)
}

// NewFeesView renders a breakdown rounded to cents
func NewFeesView(b types.Breakdown) FeesView {
	b = b.Round(2)
	return FeesView{
		PlatformFee:      fixed(b.PlatformFee),
		VariableFee:      fixed(b.VariableFee),
		AddOnFee:         fixed(b.AddOnFee),
		ConfigurationFee: fixed(b.ConfigurationFee),
		IntegrationFee:   fixed(b.IntegrationFee),
		TotalCost:        fixed(b.TotalCost),
	}
}

// NewTierView renders a tier
func NewTierView(t types.Tier) TierView {
	v := TierView{
		Label:        t.Label,
		Min:          t.Min,
		Max:          t.Max,
		PricePer1000: t.PricePer1000.String(),
		Inclusive:    t.Inclusive,
	}
	if !t.Price.IsZero() {
		v.PlatformFee = fixed(t.Price)
	}
	return v
}

// TierViews renders a tier table
func TierViews(tiers types.TierTable) []TierView {
	views := make([]TierView, len(tiers))
	for i, t := range tiers {
		views[i] = NewTierView(t)
	}
	return views
}

// NewQuoteView flattens a report for serialization
func NewQuoteView(r *Report) (*QuoteView, error) {
	if err := r.validate(); err != nil {
		return nil, err
	}
	q := r.Quote
	period := q.Period

	v := &QuoteView{
		PriceBook:      r.Book,
		Currency:       r.Currency.Code,
		Volume:         q.Volume,
		Period:         string(period),
		Policy:         q.Policy,
		SliderPosition: r.Position,
		Clamped:        r.Clamped,
		Tier: TierView{
			Label:        q.Tier.Label,
			Min:          q.Tier.Min,
			Max:          q.Tier.Max,
			PricePer1000: q.Tier.PricePer1000.String(),
			Inclusive:    q.Tier.Inclusive,
		},
		Fees:        NewFeesView(q.Fees()),
		Monthly:     NewFeesView(q.ToMonthly()),
		Yearly:      NewFeesView(q.ToYearly()),
		RatePer1000: q.RatePer1000().StringFixed(4),
	}

	for _, u := range q.Usage {
		v.Usage = append(v.Usage, UsageView{
			Tier:         u.Tier,
			Units:        u.Units,
			PricePer1000: u.PricePer1000.String(),
			Amount:       fixed(period.FromYearly(u.Amount)),
		})
	}
	for _, it := range q.Items {
		v.Items = append(v.Items, ItemView{
			ID:        it.ID,
			Name:      it.Name,
			Bucket:    string(it.Bucket),
			Quantity:  it.Quantity,
			UnitPrice: fixed(period.FromYearly(it.UnitPrice)),
			Amount:    fixed(period.FromYearly(it.Amount)),
		})
	}
	if r.ShowTiers {
		v.Tiers = TierViews(r.Tiers)
	}
	return v, nil
}
