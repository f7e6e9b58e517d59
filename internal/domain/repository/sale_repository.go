package repository

import (
	"context"
	"time"

	"github.com/Jesus1025/ventas-api/internal/domain/entity"
)

// SaleRepository defines the interface for sale ledger data operations.
// Listing order is always (date desc, id desc), stable under any insertion
// order and under deletions.
type SaleRepository interface {
	// Create persists a new sale as a single atomic transaction and assigns
	// its id. On failure no partial row is visible afterward.
	Create(ctx context.Context, sale *entity.Sale) error

	// List returns the full ledger in canonical order.
	List(ctx context.Context) ([]entity.Sale, error)

	// ListByMonth returns the records of one calendar month in canonical order.
	ListByMonth(ctx context.Context, year int, month time.Month) ([]entity.Sale, error)

	// Delete removes the record with the given id as a single atomic
	// transaction. A missing id is a successful no-op.
	Delete(ctx context.Context, id int64) error
}
