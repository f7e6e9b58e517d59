package report

// Page geometry in millimeters. Letter page with one-inch margins, matching
// the printable document the report is exported as.
const (
	PageHeight   = 279.4
	SideMargin   = 25.4
	TopMargin    = 25.4
	BottomMargin = 25.4

	// RowHeight is the fixed height of one detail row.
	RowHeight = 5.0

	// HeaderHeight is the title, summary and table-header block rendered at
	// the top of the first page only. Twelve row-heights.
	HeaderHeight = 60.0
)

// Layout models the vertical pagination of the report: a cursor starts below
// the header block on page one, each detail row consumes a fixed height, and
// a row that would cross into the bottom margin starts a new page.
type Layout struct {
	PageHeight   float64
	TopMargin    float64
	BottomMargin float64
	HeaderHeight float64
	RowHeight    float64
}

// DefaultLayout returns the layout used for the monthly sales report.
func DefaultLayout() Layout {
	return Layout{
		PageHeight:   PageHeight,
		TopMargin:    TopMargin,
		BottomMargin: BottomMargin,
		HeaderHeight: HeaderHeight,
		RowHeight:    RowHeight,
	}
}

// usable returns the vertical space available for content on one page.
func (l Layout) usable() float64 {
	return l.PageHeight - l.TopMargin - l.BottomMargin
}

// Paginate splits n detail rows into per-page counts. The header block
// occupies the top of the first page; every later page is detail rows only.
func (l Layout) Paginate(n int) []int {
	if n <= 0 {
		return nil
	}

	pages := []int{}
	cursor := l.HeaderHeight
	count := 0
	for i := 0; i < n; i++ {
		if cursor+l.RowHeight > l.usable() {
			pages = append(pages, count)
			count = 0
			cursor = 0
		}
		cursor += l.RowHeight
		count++
	}
	return append(pages, count)
}
