package export

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"enterprise-quote/core/output"
	"enterprise-quote/core/presets"
	"enterprise-quote/core/pricing"
	"enterprise-quote/core/types"
	qerrors "enterprise-quote/internal/errors"
)

func sampleDocument(t *testing.T) *Document {
	t.Helper()
	book, err := presets.Get(presets.Enterprise)
	require.NoError(t, err)

	q, err := pricing.ComputeQuote(book, types.QuoteInput{
		Volume:        1_000_000,
		BillingPeriod: types.PeriodMonthly,
		Selections: types.Selections{
			"customerConnection": types.On(),
			"additionalBrands":   types.Units(2),
		},
	})
	require.NoError(t, err)

	return &Document{
		Reference: uuid.MustParse("6f1c2a9e-2b1d-4c55-9a57-0d6c8f1e2a3b"),
		CreatedAt: time.Date(2026, 3, 14, 9, 30, 0, 0, time.UTC),
		Report: &output.Report{
			Quote:    q,
			Book:     book.Name,
			Currency: book.Currency,
			Tiers:    book.Tiers,
		},
	}
}

func openWorkbook(t *testing.T, data []byte) *excelize.File {
	t.Helper()
	f, err := excelize.OpenReader(bytes.NewReader(data))
	require.NoError(t, err)
	t.Cleanup(func() { _ = f.Close() })
	return f
}

func rows(t *testing.T, f *excelize.File, sheet string) [][]string {
	t.Helper()
	out, err := f.GetRows(sheet, excelize.Options{RawCellValue: true})
	require.NoError(t, err)
	return out
}

func find(rows [][]string, label string) []string {
	for _, r := range rows {
		if len(r) > 0 && r[0] == label {
			return r
		}
	}
	return nil
}

func TestWriteXLSX(t *testing.T) {
	doc := sampleDocument(t)

	var buf bytes.Buffer
	require.NoError(t, WriteXLSX(&buf, doc))

	f := openWorkbook(t, buf.Bytes())
	assert.Equal(t, []string{SheetSummary, SheetUsage, SheetItems, SheetTiers}, f.GetSheetList())

	summary := rows(t, f, SheetSummary)
	assert.Equal(t, []string{"Reference", "6f1c2a9e-2b1d-4c55-9a57-0d6c8f1e2a3b"}, find(summary, "Reference"))
	assert.Equal(t, []string{"Created", "2026-03-14T09:30:00Z"}, find(summary, "Created"))
	assert.Equal(t, []string{"Tier", "Tier 2"}, find(summary, "Tier"))
	assert.Equal(t, []string{"Volume", "1000000"}, find(summary, "Volume"))
	assert.Equal(t, []string{"Platform fee", "1432.33", "17188"}, find(summary, "Platform fee"))
	assert.Equal(t, []string{"Modules", "249", "2988"}, find(summary, "Modules"))
	assert.Equal(t, []string{"Integrations", "0", "0"}, find(summary, "Integrations"))
	assert.Equal(t, []string{"Total", "2104.25", "25251"}, find(summary, "Total"))
	assert.Equal(t, []string{"Yearly price per 1,000", "25.251"}, find(summary, "Yearly price per 1,000"))

	usage := rows(t, f, SheetUsage)
	require.Len(t, usage, 3)
	assert.Equal(t, []string{"Tier 1", "500000", "4.5", "187.5", "2250"}, usage[1])
	assert.Equal(t, []string{"Tier 2", "500000", "3.25", "135.42", "1625"}, usage[2])

	items := rows(t, f, SheetItems)
	brands := find(items, "additionalBrands")
	require.NotNil(t, brands)
	assert.Equal(t, []string{"additionalBrands", "Additional Brands", "Configuration Options", "per_unit", "2", "50", "100", "1200"}, brands)

	tiers := rows(t, f, SheetTiers)
	require.Len(t, tiers, 6)
	assert.Equal(t, "yes", tiers[2][6])
	require.GreaterOrEqual(t, len(tiers[5]), 6)
	assert.Equal(t, []string{"Tier 5", "50000001", "200000000", "0.5", "50000000", "88813"}, tiers[5][:6])
}

func TestWriteXLSXWithoutQuote(t *testing.T) {
	err := WriteXLSX(&bytes.Buffer{}, &Document{})
	require.Error(t, err)
	assert.True(t, qerrors.IsType(err, qerrors.TypeExport))
}

func TestSaveXLSX(t *testing.T) {
	doc := sampleDocument(t)
	assert.Equal(t, "quote_20260314_093000_6f1c2a9e.xlsx", doc.FileName())

	path := filepath.Join(t.TempDir(), doc.FileName())
	require.NoError(t, SaveXLSX(path, doc))

	f, err := excelize.OpenFile(path)
	require.NoError(t, err)
	defer f.Close()
	assert.Len(t, f.GetSheetList(), 4)

	err = SaveXLSX(filepath.Join(t.TempDir(), "missing", "dir", "q.xlsx"), doc)
	require.Error(t, err)
	assert.True(t, qerrors.IsType(err, qerrors.TypeExport))
}

func TestNewDocument(t *testing.T) {
	a := NewDocument(&output.Report{})
	b := NewDocument(&output.Report{})
	assert.NotEqual(t, a.Reference, b.Reference)
	assert.True(t, strings.HasPrefix(a.FileName(), "quote_"))
	assert.WithinDuration(t, time.Now().UTC(), a.CreatedAt, time.Minute)
}
