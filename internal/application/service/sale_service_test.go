package service

import (
	"context"
	"errors"
	"fmt"
	"net"
	"testing"
	"time"

	"github.com/glebarez/sqlite"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"
	"gorm.io/gorm"

	"github.com/Jesus1025/ventas-api/internal/domain/entity"
	"github.com/Jesus1025/ventas-api/internal/domain/enum"
	domainRepo "github.com/Jesus1025/ventas-api/internal/domain/repository"
	infraRepo "github.com/Jesus1025/ventas-api/internal/infrastructure/repository"
	"github.com/Jesus1025/ventas-api/pkg/apperror"
	"github.com/Jesus1025/ventas-api/pkg/clock"
)

func newTestRepo(t *testing.T) domainRepo.SaleRepository {
	t.Helper()

	dsn := fmt.Sprintf("file:svc_%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&entity.Sale{}))

	return infraRepo.NewSaleRepository(db)
}

// failingCreateRepo simulates a store whose write transactions fail and roll
// back while reads keep working.
type failingCreateRepo struct {
	domainRepo.SaleRepository
}

func (r *failingCreateRepo) Create(ctx context.Context, sale *entity.Sale) error {
	return errors.New("connection reset during commit")
}

// unreachableRepo simulates a store that cannot be dialed at all.
type unreachableRepo struct {
	domainRepo.SaleRepository
}

func (r *unreachableRepo) Create(ctx context.Context, sale *entity.Sale) error {
	return &net.OpError{Op: "dial", Net: "tcp", Err: errors.New("connection refused")}
}

func (r *unreachableRepo) Delete(ctx context.Context, id int64) error {
	return &net.OpError{Op: "dial", Net: "tcp", Err: errors.New("connection refused")}
}

var testDay = time.Date(2025, time.March, 14, 0, 0, 0, 0, time.UTC)

func newSaleService(t *testing.T, repo domainRepo.SaleRepository) *SaleService {
	t.Helper()
	return NewSaleService(repo, clock.Fixed(testDay), zaptest.NewLogger(t))
}

func TestCreateSale_DerivesNetAndStampsDate(t *testing.T) {
	svc := newSaleService(t, newTestRepo(t))

	sale, err := svc.CreateSale(context.Background(), &CreateSaleInput{
		DocumentType: enum.DocumentTypeInvoice,
		BusinessType: enum.BusinessTypeWebDesign,
		Description:  "Página Web XYZ (Adelanto 1/2)",
		GrossAmount:  decimal.NewFromInt(119000),
		CreatedBy:    "alice",
	})

	require.NoError(t, err)
	assert.NotZero(t, sale.ID)
	assert.True(t, sale.Date.Equal(testDay))

	one := decimal.NewFromInt(1)
	assert.True(t, sale.NetAmount.Sub(decimal.NewFromInt(100000)).Abs().LessThanOrEqual(one),
		"net = %s", sale.NetAmount)
	assert.True(t, sale.VATAmount.Sub(decimal.NewFromInt(19000)).Abs().LessThanOrEqual(one),
		"vat = %s", sale.VATAmount)
	assert.True(t, sale.GrossAmount.Sub(decimal.NewFromInt(119000)).Abs().LessThanOrEqual(one),
		"gross = %s", sale.GrossAmount)
}

func TestCreateSale_RejectsNegativeGross(t *testing.T) {
	svc := newSaleService(t, newTestRepo(t))

	sale, err := svc.CreateSale(context.Background(), &CreateSaleInput{
		DocumentType: enum.DocumentTypeReceipt,
		BusinessType: enum.BusinessTypePrinting,
		Description:  "venta inválida",
		GrossAmount:  decimal.NewFromInt(-1),
		CreatedBy:    "bastian",
	})

	assert.Nil(t, sale)
	require.Error(t, err)
	assert.Equal(t, 400, apperror.GetAppError(err).Code)
}

func TestCreateSale_RejectsUnknownEnums(t *testing.T) {
	svc := newSaleService(t, newTestRepo(t))

	_, err := svc.CreateSale(context.Background(), &CreateSaleInput{
		DocumentType: enum.DocumentType("Recibo"),
		BusinessType: enum.BusinessTypePrinting,
		GrossAmount:  decimal.NewFromInt(1000),
		CreatedBy:    "bastian",
	})
	require.Error(t, err)

	_, err = svc.CreateSale(context.Background(), &CreateSaleInput{
		DocumentType: enum.DocumentTypeReceipt,
		BusinessType: enum.BusinessType("2d"),
		GrossAmount:  decimal.NewFromInt(1000),
		CreatedBy:    "bastian",
	})
	require.Error(t, err)
}

func TestCreateSale_FailedWriteLeavesLedgerUnchanged(t *testing.T) {
	repo := newTestRepo(t)
	svc := newSaleService(t, &failingCreateRepo{SaleRepository: repo})

	sale, err := svc.CreateSale(context.Background(), &CreateSaleInput{
		DocumentType: enum.DocumentTypeReceipt,
		BusinessType: enum.BusinessTypePrinting,
		Description:  "venta perdida",
		GrossAmount:  decimal.NewFromInt(5950),
		CreatedBy:    "bastian",
	})

	assert.Nil(t, sale)
	assert.ErrorIs(t, err, apperror.ErrTransactionFailed)

	listed, listErr := svc.ListSales(context.Background())
	require.NoError(t, listErr)
	assert.Empty(t, listed, "no partial row may be visible after a failed add")
}

func TestSale_UnreachableStoreIsReportedAsUnavailable(t *testing.T) {
	repo := &unreachableRepo{SaleRepository: newTestRepo(t)}
	svc := newSaleService(t, repo)
	ctx := context.Background()

	_, err := svc.CreateSale(ctx, &CreateSaleInput{
		DocumentType: enum.DocumentTypeReceipt,
		BusinessType: enum.BusinessTypePrinting,
		Description:  "venta sin conexión",
		GrossAmount:  decimal.NewFromInt(1190),
		CreatedBy:    "bastian",
	})
	assert.ErrorIs(t, err, apperror.ErrStoreUnavailable)
	assert.NotErrorIs(t, err, apperror.ErrTransactionFailed)

	err = svc.DeleteSale(ctx, 1)
	assert.ErrorIs(t, err, apperror.ErrStoreUnavailable)
}

func TestListSales_AttachesDerivedFields(t *testing.T) {
	repo := newTestRepo(t)
	svc := newSaleService(t, repo)
	ctx := context.Background()

	_, err := svc.CreateSale(ctx, &CreateSaleInput{
		DocumentType: enum.DocumentTypeReceipt,
		BusinessType: enum.BusinessTypePrinting,
		Description:  "Llavero personalizado",
		GrossAmount:  decimal.NewFromInt(11900),
		CreatedBy:    "bastian",
	})
	require.NoError(t, err)

	sales, err := svc.ListSales(ctx)
	require.NoError(t, err)
	require.Len(t, sales, 1)

	got := sales[0]
	assert.True(t, got.VATAmount.Equal(got.NetAmount.Mul(decimal.NewFromFloat(0.19)).Round(4)))
	assert.True(t, got.GrossAmount.Equal(got.NetAmount.Add(got.VATAmount)))
	assert.Equal(t, "Impresión 3D", got.BusinessLabel)
}

func TestDeleteSale_UnknownIDReportsSuccess(t *testing.T) {
	svc := newSaleService(t, newTestRepo(t))

	assert.NoError(t, svc.DeleteSale(context.Background(), 424242))
}
