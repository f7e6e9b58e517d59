package enum

// DocumentType identifies the fiscal document issued for a sale. The values
// are the text labels persisted in the sales table.
type DocumentType string

const (
	DocumentTypeReceipt DocumentType = "Boleta"
	DocumentTypeInvoice DocumentType = "Factura"
)

// IsValid reports whether the value is one of the two known document types.
func (d DocumentType) IsValid() bool {
	switch d {
	case DocumentTypeReceipt, DocumentTypeInvoice:
		return true
	}
	return false
}

// Label returns the display label used on reports.
func (d DocumentType) Label() string {
	return string(d)
}
