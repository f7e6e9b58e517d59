package entity

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/Jesus1025/ventas-api/internal/domain/enum"
)

// Sale is one recorded sales transaction. Records are immutable once
// created; the only lifecycle operation besides creation is deletion.
// The net amount is the only monetary field persisted.
type Sale struct {
	ID           int64             `gorm:"primaryKey;autoIncrement;index:idx_sales_date_id,priority:2" json:"id"`
	Date         time.Time         `gorm:"type:date;not null;index:idx_sales_date_id,priority:1" json:"date"`
	DocumentType enum.DocumentType `gorm:"size:20;not null" json:"document_type"`
	BusinessType enum.BusinessType `gorm:"size:10;not null" json:"business_type"`
	Description  string            `gorm:"type:text" json:"description"`
	NetAmount    decimal.Decimal   `gorm:"type:numeric(14,4);not null" json:"net_amount"`
	CreatedBy    string            `gorm:"size:100;not null" json:"created_by"`
}

// TableName returns the table name for the Sale model
func (Sale) TableName() string {
	return "sales"
}

// TaxedSale is the read-time projection of a Sale with the derived tax
// components attached. VAT and gross are never persisted; they are
// recomputed from the net amount on every read.
type TaxedSale struct {
	Sale
	VATAmount     decimal.Decimal `json:"vat_amount"`
	GrossAmount   decimal.Decimal `json:"gross_amount"`
	BusinessLabel string          `json:"business_label"`
}
