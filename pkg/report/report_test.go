package report

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleRows(n int) []Row {
	day := time.Date(2025, time.March, 14, 0, 0, 0, 0, time.UTC)
	rows := make([]Row, 0, n)
	for i := 0; i < n; i++ {
		rows = append(rows, Row{
			Date:        day,
			Document:    "Boleta",
			Description: "Llavero personalizado",
			Gross:       decimal.NewFromInt(11900),
			CreatedBy:   "bastian",
			Highlight:   i%2 == 0,
		})
	}
	return rows
}

func sampleSummary() Summary {
	return Summary{
		TotalNet:   decimal.NewFromInt(100000),
		TotalVAT:   decimal.NewFromInt(19000),
		TotalGross: decimal.NewFromInt(119000),
	}
}

func TestGenerate_ProducesPDF(t *testing.T) {
	g := NewGenerator()

	out, err := g.Generate(sampleRows(3), sampleSummary())

	require.NoError(t, err)
	require.NotEmpty(t, out)
	assert.Equal(t, "%PDF", string(out[:4]))
}

func TestGenerate_LongDescriptionAndManyRows(t *testing.T) {
	g := NewGenerator()
	rows := sampleRows(60)
	rows[0].Description = "Página Web XYZ (Adelanto 1/2) con mantención mensual incluida por doce meses"

	out, err := g.Generate(rows, sampleSummary())

	require.NoError(t, err)
	require.NotEmpty(t, out)
	// Sixty rows split [33, 27], so the page tree must hold exactly two pages.
	assert.Contains(t, string(out), "/Count 2")
}

func TestGenerate_EmptyInput(t *testing.T) {
	g := NewGenerator()

	out, err := g.Generate(nil, Summary{})

	assert.ErrorIs(t, err, ErrNoRows)
	assert.Nil(t, out)
}

func TestFilename(t *testing.T) {
	assert.Equal(t, "SalesReport_2025_03.pdf", Filename(2025, time.March))
	assert.Equal(t, "SalesReport_2026_12.pdf", Filename(2026, time.December))
}

func TestMonthLabel(t *testing.T) {
	date := time.Date(2025, time.March, 14, 0, 0, 0, 0, time.UTC)
	assert.Equal(t, "March 2025", MonthLabel(date))
}
