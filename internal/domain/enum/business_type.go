package enum

// BusinessType classifies the revenue line of a sale. The values are the
// short text codes persisted in the sales table.
type BusinessType string

const (
	BusinessTypePrinting  BusinessType = "3d"
	BusinessTypeWebDesign BusinessType = "web"
)

// IsValid reports whether the value is one of the two known revenue lines.
func (b BusinessType) IsValid() bool {
	switch b {
	case BusinessTypePrinting, BusinessTypeWebDesign:
		return true
	}
	return false
}

// Label returns the display name of the revenue line.
func (b BusinessType) Label() string {
	switch b {
	case BusinessTypePrinting:
		return "Impresión 3D"
	case BusinessTypeWebDesign:
		return "Diseño Web"
	}
	return string(b)
}
