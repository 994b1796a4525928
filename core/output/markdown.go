package output

import (
	"fmt"
	"io"

	"enterprise-quote/core/types"
)

// MarkdownFormatter writes a quote report suitable for a PR or ticket
type MarkdownFormatter struct{}

// Format returns FormatMarkdown
func (MarkdownFormatter) Format() Format { return FormatMarkdown }

// Render writes the report
func (MarkdownFormatter) Render(w io.Writer, r *Report) error {
	if err := r.validate(); err != nil {
		return err
	}
	q := r.Quote
	fees := q.Fees()
	suffix := q.Period.Suffix()
	cur := r.Currency

	fmt.Fprintln(w, "# Quote")
	fmt.Fprintln(w, "")
	if r.Book != "" {
		fmt.Fprintf(w, "**Price book:** %s  \n", r.Book)
	}
	fmt.Fprintf(w, "**Volume:** %s  \n", Volume(q.Volume))
	fmt.Fprintf(w, "**Tier:** %s (includes %s)  \n", q.Tier.Label, Volume(q.Tier.Inclusive))
	fmt.Fprintf(w, "**Total:** %s %s\n", Money(cur, fees.TotalCost), suffix)
	fmt.Fprintln(w, "")

	fmt.Fprintln(w, "## Summary")
	fmt.Fprintln(w, "")
	fmt.Fprintf(w, "| Fee | Amount (%s) |\n", suffix)
	fmt.Fprintln(w, "|-----|-------:|")
	for _, row := range feeRows(cur, fees) {
		fmt.Fprintf(w, "| %s | %s |\n", row[0], row[1])
	}
	fmt.Fprintf(w, "| **Total** | **%s** |\n", Money(cur, fees.TotalCost))

	if len(q.Items) > 0 {
		fmt.Fprintln(w, "")
		fmt.Fprintln(w, "## Selected options")
		fmt.Fprintln(w, "")
		fmt.Fprintln(w, "| Option | Bucket | Qty | Amount |")
		fmt.Fprintln(w, "|--------|--------|----:|-------:|")
		for _, it := range q.Items {
			fmt.Fprintf(w, "| %s | %s | %d | %s |\n",
				it.Name, it.Bucket.Title(), it.Quantity, Money(cur, q.Period.FromYearly(it.Amount)))
		}
	}

	if r.ShowTiers && len(r.Tiers) > 0 {
		fmt.Fprintln(w, "")
		fmt.Fprintln(w, "## Tiers")
		fmt.Fprintln(w, "")
		fmt.Fprintln(w, "| Tier | Volume | Price per 1,000 |")
		fmt.Fprintln(w, "|------|--------|----------------:|")
		for _, t := range r.Tiers {
			fmt.Fprintf(w, "| %s | %s | %s |\n", t.Label, VolumeRange(t), Rate(cur, t.PricePer1000))
		}
	}

	return nil
}

// feeRows lists the buckets of a breakdown; empty add-on buckets are skipped
func feeRows(cur types.Currency, b types.Breakdown) [][2]string {
	rows := [][2]string{
		{"Platform fee", Money(cur, b.PlatformFee)},
		{"Variable fee", Money(cur, b.VariableFee)},
	}
	for _, bucket := range types.Buckets {
		amount := b.Bucket(bucket)
		if amount.IsZero() {
			continue
		}
		rows = append(rows, [2]string{bucket.Title(), Money(cur, amount)})
	}
	return rows
}
