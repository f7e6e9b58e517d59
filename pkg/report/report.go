package report

import (
	"errors"
	"fmt"
	"time"
	"unicode/utf8"

	"github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/page"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"
	"github.com/shopspring/decimal"

	"github.com/Jesus1025/ventas-api/pkg/currency"
)

// maxDescription is the rendered width of the description column; stored
// descriptions are unbounded and truncated here only.
const maxDescription = 35

// Row is one detail line of the report, already in display order.
type Row struct {
	Date        time.Time
	Document    string
	Description string
	Gross       decimal.Decimal
	CreatedBy   string

	// Highlight renders the row with a grey band across the full width.
	Highlight bool
}

// Summary holds the three monthly totals shown below the title.
type Summary struct {
	TotalNet   decimal.Decimal
	TotalVAT   decimal.Decimal
	TotalGross decimal.Decimal
}

// ErrNoRows is returned when Generate is invoked with an empty record set.
// Callers are expected to prevent that upstream.
var ErrNoRows = errors.New("report: no detail rows to render")

// Filename returns the conventional document name for a report month.
func Filename(year int, month time.Month) string {
	return fmt.Sprintf("SalesReport_%d_%02d.pdf", year, int(month))
}

// MonthLabel derives the displayed period label from a record date.
func MonthLabel(date time.Time) string {
	return fmt.Sprintf("%s %d", date.Month(), date.Year())
}

// Generator renders one month of sales into a printable PDF document.
type Generator struct {
	layout Layout
}

// NewGenerator creates a Generator with the default page layout.
func NewGenerator() *Generator {
	return &Generator{layout: DefaultLayout()}
}

// Generate renders the report. All rows must belong to the same calendar
// month; the period label is derived from the first row.
func (g *Generator) Generate(rows []Row, summary Summary) ([]byte, error) {
	if len(rows) == 0 {
		return nil, ErrNoRows
	}

	cfg := config.NewBuilder().
		WithPageSize(pagesize.Letter).
		WithLeftMargin(SideMargin).
		WithTopMargin(g.layout.TopMargin).
		WithRightMargin(SideMargin).
		Build()
	m := maroto.New(cfg)

	label := MonthLabel(rows[0].Date)
	next := 0
	for pageIdx, count := range g.layout.Paginate(len(rows)) {
		p := page.New()
		if pageIdx == 0 {
			p.Add(headerRows(label, summary)...)
		}
		for i := 0; i < count; i++ {
			p.Add(detailRow(rows[next]))
			next++
		}
		m.AddPages(p)
	}

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("rendering sales report: %w", err)
	}
	return doc.GetBytes(), nil
}

// headerRows builds the title, summary and table-header block shown on the
// first page only. Row heights sum to HeaderHeight.
func headerRows(monthLabel string, s Summary) []core.Row {
	return []core.Row{
		row.New(12).Add(text.NewCol(12, "Reporte de Ventas - "+monthLabel, props.Text{
			Size:  16,
			Style: fontstyle.Bold,
		})),
		row.New(8).Add(text.NewCol(12, "Resumen General del Mes", props.Text{
			Size:  12,
			Style: fontstyle.Bold,
			Top:   2,
		})),
		row.New(5).Add(text.NewCol(12, "Total Ventas Netas: "+currency.Format(s.TotalNet), props.Text{Size: 11, Left: 4})),
		row.New(5).Add(text.NewCol(12, "Total IVA (19%): "+currency.Format(s.TotalVAT), props.Text{Size: 11, Left: 4})),
		row.New(5).Add(text.NewCol(12, "Total Ventas Brutas: "+currency.Format(s.TotalGross), props.Text{Size: 11, Left: 4})),
		row.New(7).Add(col.New(12)),
		row.New(10).Add(text.NewCol(12, "Detalle de Ventas del Mes", props.Text{
			Size:  12,
			Style: fontstyle.Bold,
			Top:   3,
		})),
		row.New(8).Add(
			text.NewCol(2, "Fecha", props.Text{Size: 10, Style: fontstyle.Bold}),
			text.NewCol(2, "Tipo Doc.", props.Text{Size: 10, Style: fontstyle.Bold}),
			text.NewCol(4, "Descripción", props.Text{Size: 10, Style: fontstyle.Bold}),
			text.NewCol(2, "Bruto", props.Text{Size: 10, Style: fontstyle.Bold, Align: align.Right}),
			text.NewCol(2, "Usuario", props.Text{Size: 10, Style: fontstyle.Bold}),
		),
	}
}

func detailRow(r Row) core.Row {
	desc := r.Description
	if utf8.RuneCountInString(desc) > maxDescription {
		desc = string([]rune(desc)[:maxDescription])
	}

	detail := row.New(RowHeight).Add(
		text.NewCol(2, r.Date.Format("2006-01-02"), props.Text{Size: 9}),
		text.NewCol(2, r.Document, props.Text{Size: 9}),
		text.NewCol(4, desc, props.Text{Size: 9}),
		text.NewCol(2, currency.Format(r.Gross), props.Text{Size: 9, Align: align.Right}),
		text.NewCol(2, r.CreatedBy, props.Text{Size: 9}),
	)
	if r.Highlight {
		detail = detail.WithStyle(&props.Cell{
			BackgroundColor: &props.Color{Red: 220, Green: 220, Blue: 220},
		})
	}
	return detail
}
