package service

import (
	"context"
	"errors"
	"fmt"
	"net"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/Jesus1025/ventas-api/internal/domain/entity"
	"github.com/Jesus1025/ventas-api/internal/domain/enum"
	"github.com/Jesus1025/ventas-api/internal/domain/repository"
	"github.com/Jesus1025/ventas-api/pkg/apperror"
	"github.com/Jesus1025/ventas-api/pkg/clock"
	"github.com/Jesus1025/ventas-api/pkg/tax"
)

// SaleService handles sale ledger operations
type SaleService struct {
	saleRepo repository.SaleRepository
	clock    clock.Clock
	logger   *zap.Logger
}

// NewSaleService creates a new sale service
func NewSaleService(saleRepo repository.SaleRepository, clk clock.Clock, logger *zap.Logger) *SaleService {
	return &SaleService{
		saleRepo: saleRepo,
		clock:    clk,
		logger:   logger,
	}
}

// CreateSaleInput represents the create sale input. GrossAmount is the
// tax-inclusive amount as entered by the operator.
type CreateSaleInput struct {
	DocumentType enum.DocumentType
	BusinessType enum.BusinessType
	Description  string
	GrossAmount  decimal.Decimal
	CreatedBy    string
}

// CreateSale derives the net amount from the gross input, stamps the record
// with today's date and persists it. The stored record is returned with the
// derived tax fields attached.
func (s *SaleService) CreateSale(ctx context.Context, input *CreateSaleInput) (*entity.TaxedSale, error) {
	if input.GrossAmount.IsNegative() {
		return nil, apperror.NewBadRequestError("Gross amount must not be negative")
	}
	if !input.DocumentType.IsValid() {
		return nil, apperror.NewBadRequestError("Unknown document type")
	}
	if !input.BusinessType.IsValid() {
		return nil, apperror.NewBadRequestError("Unknown business type")
	}

	breakdown := tax.FromGross(input.GrossAmount)
	sale := &entity.Sale{
		Date:         s.clock.Today(),
		DocumentType: input.DocumentType,
		BusinessType: input.BusinessType,
		Description:  input.Description,
		NetAmount:    breakdown.Net,
		CreatedBy:    input.CreatedBy,
	}

	if err := s.saleRepo.Create(ctx, sale); err != nil {
		s.logger.Error("failed to record sale",
			zap.String("created_by", input.CreatedBy),
			zap.Error(err))
		return nil, writeError(err)
	}

	s.logger.Info("sale recorded",
		zap.Int64("sale_id", sale.ID),
		zap.String("business_type", string(sale.BusinessType)),
		zap.String("created_by", sale.CreatedBy))

	taxed := withTax(*sale)
	return &taxed, nil
}

// ListSales returns the full ledger in (date desc, id desc) order with the
// derived vat and gross amounts recomputed at read time.
func (s *SaleService) ListSales(ctx context.Context) ([]entity.TaxedSale, error) {
	sales, err := s.saleRepo.List(ctx)
	if err != nil {
		s.logger.Error("failed to list sales", zap.Error(err))
		return nil, fmt.Errorf("%w: %v", apperror.ErrStoreUnavailable, err)
	}

	taxed := make([]entity.TaxedSale, 0, len(sales))
	for _, sale := range sales {
		taxed = append(taxed, withTax(sale))
	}
	return taxed, nil
}

// DeleteSale removes a sale by id. Deleting an id that does not exist is a
// successful no-op.
func (s *SaleService) DeleteSale(ctx context.Context, id int64) error {
	if err := s.saleRepo.Delete(ctx, id); err != nil {
		s.logger.Error("failed to delete sale", zap.Int64("sale_id", id), zap.Error(err))
		return writeError(err)
	}

	s.logger.Info("sale deleted", zap.Int64("sale_id", id))
	return nil
}

// writeError classifies a failed write: a store that could not be reached at
// all maps to ErrStoreUnavailable, anything the store rejected or rolled back
// maps to ErrTransactionFailed.
func writeError(err error) error {
	var netErr net.Error
	if errors.As(err, &netErr) || errors.Is(err, gorm.ErrInvalidDB) {
		return fmt.Errorf("%w: %v", apperror.ErrStoreUnavailable, err)
	}
	return fmt.Errorf("%w: %v", apperror.ErrTransactionFailed, err)
}

func withTax(sale entity.Sale) entity.TaxedSale {
	breakdown := tax.FromNet(sale.NetAmount)
	return entity.TaxedSale{
		Sale:          sale,
		VATAmount:     breakdown.VAT,
		GrossAmount:   breakdown.Gross,
		BusinessLabel: sale.BusinessType.Label(),
	}
}
