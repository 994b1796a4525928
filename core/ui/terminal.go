// Package ui - Terminal user interface
// Colored CLI output with tables, the quote summary box and the slider bar.
package ui

import (
	"fmt"
	"io"
	"os"
	"strings"
	"unicode/utf8"
)

// Colors for terminal output
const (
	Reset   = "\033[0m"
	Bold    = "\033[1m"
	Dim     = "\033[2m"
	Red     = "\033[31m"
	Green   = "\033[32m"
	Yellow  = "\033[33m"
	Blue    = "\033[34m"
	Magenta = "\033[35m"
	Cyan    = "\033[36m"
	White   = "\033[37m"
)

// BadgeColor maps a catalog badge color name to an ANSI color
func BadgeColor(name string) string {
	switch strings.ToLower(name) {
	case "blue":
		return Blue
	case "purple", "magenta":
		return Magenta
	case "green":
		return Green
	case "red":
		return Red
	case "yellow", "orange":
		return Yellow
	case "cyan":
		return Cyan
	default:
		return White
	}
}

// Writer is the UI output destination
type Writer struct {
	out       io.Writer
	noColor   bool
	verbosity int
}

// NewWriter creates a UI writer
func NewWriter(out io.Writer, noColor bool) *Writer {
	if out == nil {
		out = os.Stdout
	}
	return &Writer{
		out:       out,
		noColor:   noColor,
		verbosity: 1,
	}
}

// SetVerbosity sets output verbosity (0=quiet, 1=normal, 2=verbose)
func (w *Writer) SetVerbosity(level int) {
	w.verbosity = level
}

// Color applies color if enabled
func (w *Writer) Color(c, text string) string {
	if w.noColor || c == "" {
		return text
	}
	return c + text + Reset
}

// Print writes formatted text
func (w *Writer) Print(format string, args ...interface{}) {
	fmt.Fprintf(w.out, format, args...)
}

// Println writes a line with newline
func (w *Writer) Println(format string, args ...interface{}) {
	fmt.Fprintf(w.out, format+"\n", args...)
}

// Header prints a section header
func (w *Writer) Header(title string) {
	w.Println("")
	w.Println("%s", w.Color(Bold+Cyan, "━━━ "+title+" ━━━"))
	w.Println("")
}

// SubHeader prints a subsection header
func (w *Writer) SubHeader(title string) {
	w.Println("%s", w.Color(Bold, "▸ "+title))
}

// Success prints a success message
func (w *Writer) Success(format string, args ...interface{}) {
	msg := fmt.Sprintf(format, args...)
	w.Println("%s%s", w.Color(Green, "✓ "), msg)
}

// Warning prints a warning
func (w *Writer) Warning(format string, args ...interface{}) {
	msg := fmt.Sprintf(format, args...)
	w.Println("%s%s", w.Color(Yellow, "⚠ "), msg)
}

// Error prints an error
func (w *Writer) Error(format string, args ...interface{}) {
	msg := fmt.Sprintf(format, args...)
	w.Println("%s%s", w.Color(Red, "✗ "), msg)
}

// Info prints an info message
func (w *Writer) Info(format string, args ...interface{}) {
	if w.verbosity < 1 {
		return
	}
	msg := fmt.Sprintf(format, args...)
	w.Println("%s%s", w.Color(Blue, "ℹ "), msg)
}

// Debug prints a debug message
func (w *Writer) Debug(format string, args ...interface{}) {
	if w.verbosity < 2 {
		return
	}
	msg := fmt.Sprintf(format, args...)
	w.Println("%s", w.Color(Dim, "  "+msg))
}

// Align is a table column alignment
type Align int

const (
	AlignLeft Align = iota
	AlignRight
)

// Table renders a table
type Table struct {
	w       *Writer
	headers []string
	aligns  []Align
	rows    [][]string
	widths  []int
}

// NewTable creates a table
func (w *Writer) NewTable(headers ...string) *Table {
	widths := make([]int, len(headers))
	for i, h := range headers {
		widths[i] = utf8.RuneCountInString(h)
	}
	return &Table{
		w:       w,
		headers: headers,
		aligns:  make([]Align, len(headers)),
		rows:    [][]string{},
		widths:  widths,
	}
}

// AlignRight right-aligns the given columns
func (t *Table) AlignRight(cols ...int) *Table {
	for _, c := range cols {
		if c >= 0 && c < len(t.aligns) {
			t.aligns[c] = AlignRight
		}
	}
	return t
}

// AddRow adds a row to the table
func (t *Table) AddRow(cells ...string) {
	// Pad or truncate cells to match header count
	row := make([]string, len(t.headers))
	for i := range row {
		if i < len(cells) {
			row[i] = cells[i]
		}
		if n := utf8.RuneCountInString(row[i]); n > t.widths[i] {
			t.widths[i] = n
		}
	}
	t.rows = append(t.rows, row)
}

func (t *Table) line(cells []string) string {
	var b strings.Builder
	for i, cell := range cells {
		if i > 0 {
			b.WriteString(" │ ")
		}
		pad := strings.Repeat(" ", t.widths[i]-utf8.RuneCountInString(cell))
		if t.aligns[i] == AlignRight {
			b.WriteString(pad + cell)
		} else {
			b.WriteString(cell + pad)
		}
	}
	return strings.TrimRight(b.String(), " ")
}

// Render prints the table
func (t *Table) Render() {
	t.w.Println("%s", t.w.Color(Bold, t.line(t.headers)))

	sep := make([]string, len(t.widths))
	for i, w := range t.widths {
		sep[i] = strings.Repeat("─", w)
	}
	t.w.Println("%s", strings.Join(sep, "─┼─"))

	for _, row := range t.rows {
		t.w.Println("%s", t.line(row))
	}
}

// QuoteSummary renders the total box of a quote
type QuoteSummary struct {
	w *Writer

	// Total is the formatted total in the display period
	Total string

	// Period is the display period suffix, e.g. "/month"
	Period string

	// Alternate is the total in the other period, e.g. "€25,251.00/year"
	Alternate string

	// Tier describes the matched tier
	Tier string

	// Rate is the formatted effective price per 1,000 units
	Rate string
}

// NewQuoteSummary creates a quote summary
func (w *Writer) NewQuoteSummary() *QuoteSummary {
	return &QuoteSummary{w: w}
}

// Render prints the quote summary
func (s *QuoteSummary) Render() {
	lines := []struct {
		color string
		text  string
	}{
		{Green, "Total: " + s.Total + s.Period},
	}
	if s.Alternate != "" {
		lines = append(lines, struct {
			color string
			text  string
		}{Dim, "       " + s.Alternate})
	}
	if s.Tier != "" {
		lines = append(lines, struct {
			color string
			text  string
		}{"", "Tier:  " + s.Tier})
	}
	if s.Rate != "" {
		lines = append(lines, struct {
			color string
			text  string
		}{Dim, "Rate:  " + s.Rate})
	}

	width := 35
	for _, l := range lines {
		if n := utf8.RuneCountInString(l.text) + 4; n > width {
			width = n
		}
	}

	s.w.Println("%s", s.w.Color(Bold, "╭"+strings.Repeat("─", width)+"╮"))
	for _, l := range lines {
		pad := strings.Repeat(" ", width-utf8.RuneCountInString(l.text)-2)
		s.w.Println("%s%s%s", s.w.Color(Bold, "│"), s.w.Color(l.color, "  "+l.text+pad), s.w.Color(Bold, "│"))
	}
	s.w.Println("%s", s.w.Color(Bold, "╰"+strings.Repeat("─", width)+"╯"))
}

// SliderBar renders a horizontal slider track with a knob and tier labels
type SliderBar struct {
	w *Writer

	// Width is the number of track cells
	Width int

	// Position is the knob position on [0, 100]
	Position float64

	// Labels are tier labels drawn at band centers
	Labels []SliderLabel
}

// SliderLabel is a caption anchored at a slider position
type SliderLabel struct {
	Position float64
	Text     string
}

// NewSliderBar creates a slider bar
func (w *Writer) NewSliderBar(width int) *SliderBar {
	if width < 10 {
		width = 10
	}
	return &SliderBar{w: w, Width: width}
}

func (b *SliderBar) cell(pos float64) int {
	if pos < 0 {
		pos = 0
	}
	if pos > 100 {
		pos = 100
	}
	c := int(pos/100*float64(b.Width-1) + 0.5)
	if c >= b.Width {
		c = b.Width - 1
	}
	return c
}

// Track returns the uncolored track line
func (b *SliderBar) Track() string {
	knob := b.cell(b.Position)
	return strings.Repeat("━", knob) + "●" + strings.Repeat("─", b.Width-knob-1)
}

// Captions returns the label line; labels that would overlap are skipped
func (b *SliderBar) Captions() string {
	line := []rune(strings.Repeat(" ", b.Width))
	next := 0
	for _, l := range b.Labels {
		text := []rune(l.Text)
		start := b.cell(l.Position) - len(text)/2
		if start < next {
			start = next
		}
		if start+len(text) > len(line) {
			continue
		}
		copy(line[start:], text)
		next = start + len(text) + 1
	}
	return strings.TrimRight(string(line), " ")
}

// Render prints the slider
func (b *SliderBar) Render() {
	track := b.Track()
	knob := b.cell(b.Position)
	filled := string([]rune(track)[:knob])
	rest := string([]rune(track)[knob+1:])
	b.w.Println("%s%s%s", b.w.Color(Cyan, filled), b.w.Color(Bold, "●"), b.w.Color(Dim, rest))
	if len(b.Labels) > 0 {
		b.w.Println("%s", b.w.Color(Dim, b.Captions()))
	}
}
