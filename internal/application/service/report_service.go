package service

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"go.uber.org/zap"

	"github.com/Jesus1025/ventas-api/internal/domain/entity"
	"github.com/Jesus1025/ventas-api/internal/domain/enum"
	"github.com/Jesus1025/ventas-api/internal/domain/repository"
	"github.com/Jesus1025/ventas-api/pkg/apperror"
	"github.com/Jesus1025/ventas-api/pkg/clock"
	"github.com/Jesus1025/ventas-api/pkg/report"
	"github.com/Jesus1025/ventas-api/pkg/tax"
)

// ReportService produces the monthly printable sales report
type ReportService struct {
	saleRepo  repository.SaleRepository
	generator *report.Generator
	clock     clock.Clock
	logger    *zap.Logger
}

// NewReportService creates a new report service
func NewReportService(saleRepo repository.SaleRepository, generator *report.Generator, clk clock.Clock, logger *zap.Logger) *ReportService {
	return &ReportService{
		saleRepo:  saleRepo,
		generator: generator,
		clock:     clk,
		logger:    logger,
	}
}

// MonthlyReport is the rendered artifact for one report month.
type MonthlyReport struct {
	Filename string
	Content  []byte
}

// CurrentPeriod returns the report period for today's date.
func (s *ReportService) CurrentPeriod() (int, time.Month) {
	today := s.clock.Today()
	return today.Year(), today.Month()
}

// MonthlyReport renders the sales report for the given calendar month. A
// month with no recorded sales is rejected here so the generator is never
// invoked on an empty record set.
func (s *ReportService) MonthlyReport(ctx context.Context, year int, month time.Month) (*MonthlyReport, error) {
	sales, err := s.saleRepo.ListByMonth(ctx, year, month)
	if err != nil {
		s.logger.Error("failed to load sales for report",
			zap.Int("year", year),
			zap.String("month", month.String()),
			zap.Error(err))
		return nil, fmt.Errorf("%w: %v", apperror.ErrStoreUnavailable, err)
	}
	if len(sales) == 0 {
		return nil, apperror.NewNotFoundError(fmt.Sprintf("Sales for %s %d", month, year))
	}

	rows, summary := buildRows(sales)
	content, err := s.generator.Generate(rows, summary)
	if err != nil {
		s.logger.Error("failed to render report", zap.Error(err))
		return nil, apperror.NewAppError(http.StatusInternalServerError, "Failed to render report")
	}

	s.logger.Info("monthly report generated",
		zap.Int("year", year),
		zap.String("month", month.String()),
		zap.Int("records", len(sales)))

	return &MonthlyReport{
		Filename: report.Filename(year, month),
		Content:  content,
	}, nil
}

// buildRows maps ledger records to report rows and accumulates the summary
// totals. Web design sales carry the highlight flag.
func buildRows(sales []entity.Sale) ([]report.Row, report.Summary) {
	rows := make([]report.Row, 0, len(sales))
	var summary report.Summary

	for _, sale := range sales {
		breakdown := tax.FromNet(sale.NetAmount)
		summary.TotalNet = summary.TotalNet.Add(breakdown.Net)
		summary.TotalVAT = summary.TotalVAT.Add(breakdown.VAT)
		summary.TotalGross = summary.TotalGross.Add(breakdown.Gross)

		rows = append(rows, report.Row{
			Date:        sale.Date,
			Document:    sale.DocumentType.Label(),
			Description: sale.Description,
			Gross:       breakdown.Gross,
			CreatedBy:   sale.CreatedBy,
			Highlight:   sale.BusinessType == enum.BusinessTypeWebDesign,
		})
	}
	return rows, summary
}
