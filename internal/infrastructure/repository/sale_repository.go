package repository

import (
	"context"
	"time"

	"gorm.io/gorm"

	"github.com/Jesus1025/ventas-api/internal/domain/entity"
	domainRepo "github.com/Jesus1025/ventas-api/internal/domain/repository"
)

type saleRepository struct {
	db *gorm.DB
}

// NewSaleRepository creates a new sale repository
func NewSaleRepository(db *gorm.DB) domainRepo.SaleRepository {
	return &saleRepository{db: db}
}

func (r *saleRepository) Create(ctx context.Context, sale *entity.Sale) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return tx.Create(sale).Error
	})
}

func (r *saleRepository) List(ctx context.Context) ([]entity.Sale, error) {
	var sales []entity.Sale
	err := r.db.WithContext(ctx).
		Order("date DESC, id DESC").
		Find(&sales).Error
	return sales, err
}

func (r *saleRepository) ListByMonth(ctx context.Context, year int, month time.Month) ([]entity.Sale, error) {
	start := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	end := start.AddDate(0, 1, 0)

	var sales []entity.Sale
	err := r.db.WithContext(ctx).
		Where("date >= ? AND date < ?", start, end).
		Order("date DESC, id DESC").
		Find(&sales).Error
	return sales, err
}

func (r *saleRepository) Delete(ctx context.Context, id int64) error {
	// Zero rows affected is not an error: deleting an unknown id is a no-op.
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return tx.Delete(&entity.Sale{}, "id = ?", id).Error
	})
}
