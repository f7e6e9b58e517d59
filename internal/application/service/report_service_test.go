package service

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"

	"github.com/Jesus1025/ventas-api/internal/domain/entity"
	"github.com/Jesus1025/ventas-api/internal/domain/enum"
	"github.com/Jesus1025/ventas-api/pkg/apperror"
	"github.com/Jesus1025/ventas-api/pkg/clock"
	"github.com/Jesus1025/ventas-api/pkg/report"
)

func newReportService(t *testing.T) (*ReportService, *SaleService) {
	t.Helper()
	repo := newTestRepo(t)
	logger := zaptest.NewLogger(t)
	clk := clock.Fixed(testDay)
	return NewReportService(repo, report.NewGenerator(), clk, logger),
		NewSaleService(repo, clk, logger)
}

func TestMonthlyReport_RendersCurrentMonth(t *testing.T) {
	reports, sales := newReportService(t)
	ctx := context.Background()

	_, err := sales.CreateSale(ctx, &CreateSaleInput{
		DocumentType: enum.DocumentTypeReceipt,
		BusinessType: enum.BusinessTypePrinting,
		Description:  "Llavero personalizado",
		GrossAmount:  decimal.NewFromInt(11900),
		CreatedBy:    "bastian",
	})
	require.NoError(t, err)

	year, month := reports.CurrentPeriod()
	assert.Equal(t, 2025, year)
	assert.Equal(t, time.March, month)

	rep, err := reports.MonthlyReport(ctx, year, month)
	require.NoError(t, err)
	assert.Equal(t, "SalesReport_2025_03.pdf", rep.Filename)
	require.NotEmpty(t, rep.Content)
	assert.Equal(t, "%PDF", string(rep.Content[:4]))
}

func TestMonthlyReport_EmptyMonthIsNotFound(t *testing.T) {
	reports, _ := newReportService(t)

	rep, err := reports.MonthlyReport(context.Background(), 2024, time.January)

	assert.Nil(t, rep)
	require.Error(t, err)
	assert.Equal(t, 404, apperror.GetAppError(err).Code)
}

func TestBuildRows_HighlightsWebDesignOnly(t *testing.T) {
	day := time.Date(2025, time.March, 2, 0, 0, 0, 0, time.UTC)
	sales := []entity.Sale{
		{ID: 4, Date: day, DocumentType: enum.DocumentTypeReceipt, BusinessType: enum.BusinessTypeWebDesign, NetAmount: decimal.NewFromInt(1000), CreatedBy: "constanza"},
		{ID: 3, Date: day, DocumentType: enum.DocumentTypeInvoice, BusinessType: enum.BusinessTypePrinting, NetAmount: decimal.NewFromInt(2000), CreatedBy: "bastian"},
		{ID: 2, Date: day, DocumentType: enum.DocumentTypeReceipt, BusinessType: enum.BusinessTypeWebDesign, NetAmount: decimal.NewFromInt(3000), CreatedBy: "bastian"},
		{ID: 1, Date: day, DocumentType: enum.DocumentTypeInvoice, BusinessType: enum.BusinessTypePrinting, NetAmount: decimal.NewFromInt(4000), CreatedBy: "constanza"},
	}

	rows, _ := buildRows(sales)

	require.Len(t, rows, 4)
	for i, row := range rows {
		if sales[i].BusinessType == enum.BusinessTypeWebDesign {
			assert.True(t, row.Highlight, "row %d must be highlighted", i)
		} else {
			assert.False(t, row.Highlight, "row %d must not be highlighted", i)
		}
	}
}

func TestBuildRows_SummaryTotals(t *testing.T) {
	day := time.Date(2025, time.March, 2, 0, 0, 0, 0, time.UTC)
	sales := []entity.Sale{
		{ID: 2, Date: day, DocumentType: enum.DocumentTypeReceipt, BusinessType: enum.BusinessTypePrinting, NetAmount: decimal.NewFromInt(100000), CreatedBy: "bastian"},
		{ID: 1, Date: day, DocumentType: enum.DocumentTypeInvoice, BusinessType: enum.BusinessTypeWebDesign, NetAmount: decimal.NewFromInt(50000), CreatedBy: "constanza"},
	}

	rows, summary := buildRows(sales)

	assert.True(t, summary.TotalNet.Equal(decimal.NewFromInt(150000)), "net = %s", summary.TotalNet)
	assert.True(t, summary.TotalVAT.Equal(decimal.NewFromInt(28500)), "vat = %s", summary.TotalVAT)
	assert.True(t, summary.TotalGross.Equal(decimal.NewFromInt(178500)), "gross = %s", summary.TotalGross)
	assert.True(t, rows[0].Gross.Equal(decimal.NewFromInt(119000)))
}

func TestMonthlyReport_PreservesCanonicalRowOrder(t *testing.T) {
	repo := newTestRepo(t)
	sales := NewSaleService(repo, clock.Fixed(testDay), zaptest.NewLogger(t))
	ctx := context.Background()

	// Same day inserts: the most recent id must come first in the report.
	for _, desc := range []string{"primera venta", "segunda venta", "tercera venta"} {
		_, err := sales.CreateSale(ctx, &CreateSaleInput{
			DocumentType: enum.DocumentTypeReceipt,
			BusinessType: enum.BusinessTypePrinting,
			Description:  desc,
			GrossAmount:  decimal.NewFromInt(1190),
			CreatedBy:    "bastian",
		})
		require.NoError(t, err)
	}

	stored, err := repo.ListByMonth(ctx, 2025, time.March)
	require.NoError(t, err)
	rows, _ := buildRows(stored)

	require.Len(t, rows, 3)
	got := []string{rows[0].Description, rows[1].Description, rows[2].Description}
	assert.Equal(t, []string{"tercera venta", "segunda venta", "primera venta"}, got)
}
