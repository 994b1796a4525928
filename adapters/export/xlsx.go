// Package export writes quote documents.
// A document is a report stamped with a reference and a creation time.
package export

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/xuri/excelize/v2"

	"enterprise-quote/core/output"
	"enterprise-quote/core/types"
	qerrors "enterprise-quote/internal/errors"
)

// Sheet names, in workbook order
const (
	SheetSummary = "Summary"
	SheetUsage   = "Usage"
	SheetItems   = "Items"
	SheetTiers   = "Tiers"
)

// numFmtMoney is the built-in "#,##0.00" format
const numFmtMoney = 4

// Document is an exportable quote
type Document struct {
	// Reference identifies the document
	Reference uuid.UUID

	// CreatedAt is when the document was produced
	CreatedAt time.Time

	// Report is the quote being exported
	Report *output.Report
}

// NewDocument stamps a report with a fresh reference
func NewDocument(r *output.Report) *Document {
	return &Document{
		Reference: uuid.New(),
		CreatedAt: time.Now().UTC(),
		Report:    r,
	}
}

// FileName is the default file name for the document
func (d *Document) FileName() string {
	return fmt.Sprintf("quote_%s_%s.xlsx", d.CreatedAt.Format("20060102_150405"), d.Reference.String()[:8])
}

// SaveXLSX writes the workbook to path
func SaveXLSX(path string, doc *Document) error {
	var buf bytes.Buffer
	if err := WriteXLSX(&buf, doc); err != nil {
		return err
	}
	if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
		return qerrors.Export("failed to write "+path, err)
	}
	return nil
}

// WriteXLSX writes the document as a workbook with Summary, Usage, Items
// and Tiers sheets. Money cells hold amounts rounded to cents.
func WriteXLSX(w io.Writer, doc *Document) error {
	if doc == nil || doc.Report == nil || doc.Report.Quote == nil {
		return qerrors.New(qerrors.TypeExport, "document has no quote")
	}

	f := excelize.NewFile()
	defer func() { _ = f.Close() }()

	wb, err := newWorkbook(f)
	if err != nil {
		return qerrors.Export("failed to create workbook", err)
	}

	for _, step := range []struct {
		name string
		fill func(*Document) error
	}{
		{SheetSummary, wb.summary},
		{SheetUsage, wb.usage},
		{SheetItems, wb.items},
		{SheetTiers, wb.tiers},
	} {
		if err := step.fill(doc); err != nil {
			return qerrors.Export("failed to fill sheet "+step.name, err)
		}
	}

	if err := f.Write(w); err != nil {
		return qerrors.Export("failed to write workbook", err)
	}
	return nil
}

type workbook struct {
	f      *excelize.File
	bold   int
	money  int
	totals int
}

func newWorkbook(f *excelize.File) (*workbook, error) {
	// the default sheet becomes the summary
	if err := f.SetSheetName(f.GetSheetName(f.GetActiveSheetIndex()), SheetSummary); err != nil {
		return nil, err
	}
	for _, name := range []string{SheetUsage, SheetItems, SheetTiers} {
		if _, err := f.NewSheet(name); err != nil {
			return nil, err
		}
	}

	bold, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return nil, err
	}
	money, err := f.NewStyle(&excelize.Style{NumFmt: numFmtMoney})
	if err != nil {
		return nil, err
	}
	totals, err := f.NewStyle(&excelize.Style{NumFmt: numFmtMoney, Font: &excelize.Font{Bold: true}})
	if err != nil {
		return nil, err
	}

	return &workbook{f: f, bold: bold, money: money, totals: totals}, nil
}

func cents(d decimal.Decimal) float64 {
	return d.Round(2).InexactFloat64()
}

// setRow writes values starting at column A of row
func (wb *workbook) setRow(sheet string, row int, values ...interface{}) error {
	cell, err := excelize.CoordinatesToCellName(1, row)
	if err != nil {
		return err
	}
	return wb.f.SetSheetRow(sheet, cell, &values)
}

// style applies a style to columns [fromCol, toCol] of row
func (wb *workbook) style(sheet string, row, fromCol, toCol, style int) error {
	from, err := excelize.CoordinatesToCellName(fromCol, row)
	if err != nil {
		return err
	}
	to, err := excelize.CoordinatesToCellName(toCol, row)
	if err != nil {
		return err
	}
	return wb.f.SetCellStyle(sheet, from, to, style)
}

func (wb *workbook) header(sheet string, values ...interface{}) error {
	if err := wb.setRow(sheet, 1, values...); err != nil {
		return err
	}
	return wb.style(sheet, 1, 1, len(values), wb.bold)
}

type feeRow struct {
	label string
	month decimal.Decimal
	year  decimal.Decimal
}

func (wb *workbook) summary(doc *Document) error {
	r := doc.Report
	q := r.Quote
	monthly := q.ToMonthly()
	yearly := q.ToYearly()

	info := [][]interface{}{
		{"Reference", doc.Reference.String()},
		{"Created", doc.CreatedAt.Format(time.RFC3339)},
		{"Price book", r.Book},
		{"Currency", r.Currency.Code},
		{"Volume", q.Volume},
		{"Billing period", string(q.Period)},
		{"Tier", q.Tier.Label},
		{"Included volume", q.Tier.Inclusive},
		{"Platform policy", q.Policy},
	}
	row := 1
	for _, values := range info {
		if err := wb.setRow(SheetSummary, row, values...); err != nil {
			return err
		}
		if err := wb.style(SheetSummary, row, 1, 1, wb.bold); err != nil {
			return err
		}
		row++
	}

	row++
	if err := wb.setRow(SheetSummary, row, "Fee", "Monthly", "Yearly"); err != nil {
		return err
	}
	if err := wb.style(SheetSummary, row, 1, 3, wb.bold); err != nil {
		return err
	}
	row++

	fees := []feeRow{
		{"Platform fee", monthly.PlatformFee, yearly.PlatformFee},
		{"Variable fee", monthly.VariableFee, yearly.VariableFee},
	}
	for _, b := range types.Buckets {
		fees = append(fees, feeRow{b.Title(), monthly.Bucket(b), yearly.Bucket(b)})
	}
	fees = append(fees, feeRow{"Total", monthly.TotalCost, yearly.TotalCost})

	for i, fee := range fees {
		if err := wb.setRow(SheetSummary, row, fee.label, cents(fee.month), cents(fee.year)); err != nil {
			return err
		}
		style := wb.money
		if i == len(fees)-1 {
			style = wb.totals
		}
		if err := wb.style(SheetSummary, row, 2, 3, style); err != nil {
			return err
		}
		row++
	}

	if q.Volume > 0 {
		if err := wb.setRow(SheetSummary, row+1, "Yearly price per 1,000", q.RatePer1000().Round(4).InexactFloat64()); err != nil {
			return err
		}
	}
	return wb.f.SetColWidth(SheetSummary, "A", "C", 24)
}

func (wb *workbook) usage(doc *Document) error {
	q := doc.Report.Quote
	if err := wb.header(SheetUsage, "Tier", "Units", "Price per 1,000", "Monthly", "Yearly"); err != nil {
		return err
	}
	for i, u := range q.Usage {
		row := i + 2
		if err := wb.setRow(SheetUsage, row, u.Tier, u.Units, u.PricePer1000.InexactFloat64(),
			cents(types.PeriodMonthly.FromYearly(u.Amount)), cents(u.Amount)); err != nil {
			return err
		}
		if err := wb.style(SheetUsage, row, 4, 5, wb.money); err != nil {
			return err
		}
	}
	return wb.f.SetColWidth(SheetUsage, "A", "E", 16)
}

func (wb *workbook) items(doc *Document) error {
	q := doc.Report.Quote
	if err := wb.header(SheetItems, "ID", "Name", "Bucket", "Kind", "Quantity", "Monthly unit price", "Monthly", "Yearly"); err != nil {
		return err
	}
	for i, it := range q.Items {
		row := i + 2
		if err := wb.setRow(SheetItems, row, it.ID, it.Name, it.Bucket.Title(), string(it.Kind), it.Quantity,
			cents(types.PeriodMonthly.FromYearly(it.UnitPrice)),
			cents(types.PeriodMonthly.FromYearly(it.Amount)),
			cents(it.Amount)); err != nil {
			return err
		}
		if err := wb.style(SheetItems, row, 6, 8, wb.money); err != nil {
			return err
		}
	}
	return wb.f.SetColWidth(SheetItems, "A", "H", 18)
}

func (wb *workbook) tiers(doc *Document) error {
	r := doc.Report
	if err := wb.header(SheetTiers, "Tier", "Min", "Max", "Price per 1,000", "Included", "Platform fee", "Matched"); err != nil {
		return err
	}
	for i, t := range r.Tiers {
		row := i + 2
		matched := ""
		if i == r.Quote.Tier.Index {
			matched = "yes"
		}
		if err := wb.setRow(SheetTiers, row, t.Label, t.Min, t.Max, t.PricePer1000.InexactFloat64(),
			t.Inclusive, cents(t.Price), matched); err != nil {
			return err
		}
		if err := wb.style(SheetTiers, row, 6, 6, wb.money); err != nil {
			return err
		}
	}
	return wb.f.SetColWidth(SheetTiers, "A", "G", 16)
}
