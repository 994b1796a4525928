package output

import (
	"fmt"
	"io"

	"enterprise-quote/core/slider"
	"enterprise-quote/core/types"
	"enterprise-quote/core/ui"
)

// SliderWidth is the number of cells in the rendered slider track
const SliderWidth = 60

// CLIFormatter renders a quote as colored terminal tables
type CLIFormatter struct{}

// Format returns FormatCLI
func (CLIFormatter) Format() Format { return FormatCLI }

// Render writes the report
func (CLIFormatter) Render(out io.Writer, r *Report) error {
	if err := r.validate(); err != nil {
		return err
	}
	w := ui.NewWriter(out, r.NoColor)
	q := r.Quote
	cur := r.Currency
	fees := q.Fees()

	title := "Quote"
	if r.Book != "" {
		title += " · " + r.Book
	}
	w.Header(title)

	w.Println("%s %s", w.Color(ui.Dim, "Volume:"), Volume(q.Volume))
	if r.Clamped {
		w.Warning("volume clamped to the maximum of %s", Volume(q.Volume))
	}
	w.Println("%s %s (includes %s)", w.Color(ui.Dim, "Tier:  "), w.Color(ui.Bold, q.Tier.Label), Volume(q.Tier.Inclusive))
	w.Println("%s %s", w.Color(ui.Dim, "Period:"), q.Period)
	w.Println("")

	if len(r.Tiers) > 0 {
		if err := RenderSlider(w, r.Tiers, r.Position); err != nil {
			return err
		}
		w.Println("")
	}

	w.SubHeader("Fees (" + q.Period.Suffix() + ")")
	tbl := w.NewTable("Fee", "Amount").AlignRight(1)
	for _, row := range feeRows(cur, fees) {
		tbl.AddRow(row[0], row[1])
	}
	tbl.Render()
	w.Println("")

	if r.ShowDetails {
		renderDetails(w, r)
	}

	if r.ShowTiers && len(r.Tiers) > 0 {
		w.SubHeader("Tiers")
		RenderTierTable(w, r.Tiers, cur, q.Tier.Index)
		w.Println("")
	}

	summary := w.NewQuoteSummary()
	summary.Total = Money(cur, fees.TotalCost)
	summary.Period = " " + q.Period.Suffix()
	other := types.PeriodYearly
	if q.Period == types.PeriodYearly {
		other = types.PeriodMonthly
	}
	summary.Alternate = Money(cur, q.Yearly.In(other).TotalCost) + " " + other.Suffix()
	summary.Tier = q.Tier.Label
	if q.Volume > 0 {
		summary.Rate = Rate(cur, q.RatePer1000()) + " per 1,000 per year"
	}
	summary.Render()
	return nil
}

func renderDetails(w *ui.Writer, r *Report) {
	q := r.Quote
	cur := r.Currency

	if len(q.Usage) > 0 {
		w.SubHeader("Usage")
		tbl := w.NewTable("Tier", "Units", "Per 1,000", "Amount").AlignRight(1, 2, 3)
		for _, u := range q.Usage {
			tbl.AddRow(u.Tier, Volume(u.Units), Rate(cur, u.PricePer1000), Money(cur, q.Period.FromYearly(u.Amount)))
		}
		tbl.Render()
		w.Println("")
	}

	fees := q.Fees()
	for _, bucket := range types.Buckets {
		items := q.ItemsIn(bucket)
		if len(items) == 0 {
			continue
		}
		w.SubHeader(bucket.Title())
		tbl := w.NewTable("Option", "Qty", "Unit price", "Amount").AlignRight(1, 2, 3)
		for _, it := range items {
			tbl.AddRow(it.Name, fmt.Sprintf("%d", it.Quantity),
				Money(cur, q.Period.FromYearly(it.UnitPrice)), Money(cur, q.Period.FromYearly(it.Amount)))
		}
		if len(items) > 1 {
			tbl.AddRow("Subtotal", "", "", Money(cur, fees.Bucket(bucket)))
		}
		tbl.Render()
		w.Println("")
	}
}

// RenderTierTable prints tiers with their volume range and prices.
// The matched tier, if any, is marked.
func RenderTierTable(w *ui.Writer, tiers types.TierTable, cur types.Currency, matched int) {
	tbl := w.NewTable("", "Tier", "Volume", "Per 1,000", "Includes", "Platform fee").AlignRight(3, 4, 5)
	for i, t := range tiers {
		marker := ""
		if i == matched {
			marker = "▶"
		}
		tbl.AddRow(marker, t.Label, VolumeRange(t), Rate(cur, t.PricePer1000), Volume(t.Inclusive), Money(cur, t.Price))
	}
	tbl.Render()
}

// SliderLabels places each tier label at the center of its band
func SliderLabels(m *slider.Mapper) []ui.SliderLabel {
	bands := m.Bands()
	labels := make([]ui.SliderLabel, len(bands))
	for i, b := range bands {
		labels[i] = ui.SliderLabel{Position: b.Center(), Text: b.Tier.Label}
	}
	return labels
}

// RenderSlider prints the slider track for tiers with the knob at pos
func RenderSlider(w *ui.Writer, tiers types.TierTable, pos float64) error {
	m, err := slider.NewMapper(tiers)
	if err != nil {
		return err
	}
	bar := w.NewSliderBar(SliderWidth)
	bar.Position = slider.ClampPosition(pos)
	bar.Labels = SliderLabels(m)
	bar.Render()
	return nil
}
