package request

// CreateSaleRequest represents a sale registration request. The gross amount
// is tax-inclusive, as entered by the operator.
type CreateSaleRequest struct {
	DocumentType string  `json:"document_type" binding:"required,oneof=Boleta Factura"`
	BusinessType string  `json:"business_type" binding:"required,oneof=3d web"`
	Description  string  `json:"description" binding:"required"`
	GrossAmount  float64 `json:"gross_amount" binding:"min=0"`
}

// MonthlyReportRequest represents the report period query parameters. Both
// default to the current month when omitted.
type MonthlyReportRequest struct {
	Year  int `form:"year" binding:"omitempty,min=2000,max=2200"`
	Month int `form:"month" binding:"omitempty,min=1,max=12"`
}
